package searcher

import (
	"factorgame/experiments/metrics"
	"factorgame/game"
	"factorgame/utils"
)

type Option func(m *Minimax)

// Minimax searches to the end of the game with alpha-beta pruning. Player1
// maximizes the result and Player2 minimizes it.
type Minimax struct {
	visitor Visitor
	metrics metrics.Collector
	path    []int
	last    metrics.SearchMetric
}

func WithVisitor(visitor Visitor) Option {
	return func(m *Minimax) {
		if visitor != nil {
			m.visitor = visitor
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best move for the player to move and its minimax
// value. Among equally valued moves the lowest numbered one wins. Returns
// game.NoMove when there is nothing to play.
func (m *Minimax) FindMove(state game.View) (int, int) {
	m.metrics.Start()
	m.path = m.path[:0]

	minimizing := !state.IsPlayer1Turn()
	bestValue := worst(minimizing)
	bestMove := game.NoMove
	// Moves are searched high to low, which tends to prune more
	for _, move := range utils.Reversed(state.AllLegalMoves()) {
		child := state.Copy()
		child.ApplyMove(move)

		// Bound by the best sibling so far. The bound is one wider than the
		// best value so a cutoff never reports a false tie.
		alpha, beta := NegInf, PosInf
		if bestMove != game.NoMove {
			if minimizing {
				beta = bestValue + 1
			} else {
				alpha = bestValue - 1
			}
		}

		m.path = append(m.path, move)
		value := m.value(child, alpha, beta)
		m.path = m.path[:len(m.path)-1]

		if value == bestValue || better(minimizing, value, bestValue) {
			bestValue = value
			bestMove = move
		}
	}

	m.last = m.metrics.Complete(bestValue)
	return bestMove, bestValue
}

// Value returns the minimax value of state.
func (m *Minimax) Value(state game.View) int {
	m.metrics.Start()
	m.path = m.path[:0]
	value := m.value(state, NegInf, PosInf)
	m.last = m.metrics.Complete(value)
	return value
}

// Metrics returns the metrics of the last search; zero unless the searcher
// was built WithMetrics.
func (m *Minimax) Metrics() metrics.SearchMetric {
	return m.last
}

func (m *Minimax) value(state game.View, alpha, beta int) int {
	m.metrics.AddNode()
	if m.visitor != nil {
		m.visitor(m.path)
	}
	if state.IsGameOver() {
		m.metrics.AddLeaf()
		return state.Result()
	}

	minimizing := !state.IsPlayer1Turn()
	value := worst(minimizing)
	for _, move := range utils.Reversed(state.AllLegalMoves()) {
		child := state.Copy()
		child.ApplyMove(move)

		m.path = append(m.path, move)
		var v int
		if minimizing {
			v = m.value(child, alpha, min(beta, value))
		} else {
			v = m.value(child, max(alpha, value), beta)
		}
		m.path = m.path[:len(m.path)-1]

		if minimizing && v < alpha {
			m.metrics.AddCutoff()
			return alpha
		}
		if !minimizing && v > beta {
			m.metrics.AddCutoff()
			return beta
		}
		if better(minimizing, v, value) {
			value = v
		}
	}
	return value
}

// Exhaustive returns the minimax value of state without any pruning.
func Exhaustive(state game.View) int {
	if state.IsGameOver() {
		return state.Result()
	}
	minimizing := !state.IsPlayer1Turn()
	value := worst(minimizing)
	for _, move := range state.AllLegalMoves() {
		child := state.Copy()
		child.ApplyMove(move)
		if v := Exhaustive(child); better(minimizing, v, value) {
			value = v
		}
	}
	return value
}
