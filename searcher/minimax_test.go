package searcher

import (
	"testing"

	"factorgame/game"

	"github.com/stretchr/testify/require"
)

var _ Searcher = (*Minimax)(nil)

func newGame(t *testing.T, size int, penalties bool) *game.GameState {
	t.Helper()
	gs, err := game.New(size, penalties)
	require.NoError(t, err)
	return gs
}

// reachable collects every distinct state reachable from gs.
func reachable(gs *game.GameState) []*game.GameState {
	seen := map[game.StateHash]bool{}
	states := []*game.GameState{}
	var visit func(s *game.GameState)
	visit = func(s *game.GameState) {
		if seen[s.Hash()] {
			return
		}
		seen[s.Hash()] = true
		states = append(states, s)
		if s.IsGameOver() {
			return
		}
		for _, move := range s.AllLegalMoves() {
			next, err := s.Play(move)
			if err != nil {
				panic(err)
			}
			visit(next)
		}
	}
	visit(gs)
	return states
}

func countNodes(state game.View) int {
	if state.IsGameOver() {
		return 1
	}
	nodes := 1
	for _, move := range state.AllLegalMoves() {
		child := state.Copy()
		child.ApplyMove(move)
		nodes += countNodes(child)
	}
	return nodes
}

func TestMinimaxValue(t *testing.T) {
	t.Run("pruning never changes the value", func(t *testing.T) {
		for _, penalties := range []bool{true, false} {
			for _, s := range reachable(newGame(t, 8, penalties)) {
				require.Equal(t, Exhaustive(s), NewMinimax().Value(s),
					"Pruned and exhaustive values should agree (penalties=%v)", penalties)
			}
		}
	})

	t.Run("finished game is worth its result", func(t *testing.T) {
		gs := newGame(t, 2, true)
		gs.ApplyMove(2)

		require.Equal(t, 1, NewMinimax().Value(gs))
		require.Equal(t, 1, Exhaustive(gs))
	})
}

func TestMinimaxFindMove(t *testing.T) {
	t.Run("deterministic on a small board", func(t *testing.T) {
		gs := newGame(t, 4, true)

		move1, value1 := NewMinimax().FindMove(gs)
		move2, value2 := NewMinimax().FindMove(gs)

		require.Equal(t, move1, move2)
		require.Equal(t, value1, value2)
		require.Equal(t, Exhaustive(gs), value1, "Should report the game theoretic value")
	})

	t.Run("picks the lowest numbered optimal move", func(t *testing.T) {
		for _, penalties := range []bool{true, false} {
			for _, s := range reachable(newGame(t, 9, penalties)) {
				if s.IsGameOver() {
					continue
				}
				optimal := Exhaustive(s)
				expected := game.NoMove
				for _, move := range s.AllLegalMoves() {
					next, _ := s.Play(move)
					if Exhaustive(next) == optimal {
						expected = move
						break
					}
				}

				move, value := NewMinimax().FindMove(s)

				require.Equal(t, optimal, value)
				require.Equal(t, expected, move, "Ties should go to the lowest numbered move")
			}
		}
	})

	t.Run("does not modify the state", func(t *testing.T) {
		gs := newGame(t, 12, true)
		gs.ApplyMove(12)
		before := gs.Copy()

		NewMinimax().FindMove(gs)

		require.Equal(t, before, gs)
	})

	t.Run("no legal moves", func(t *testing.T) {
		gs := newGame(t, 2, true)
		gs.ApplyMove(2)

		move, _ := NewMinimax().FindMove(gs)

		require.Equal(t, game.NoMove, move)
	})

	t.Run("pending penalty forces a pass", func(t *testing.T) {
		gs := newGame(t, 10, true)
		gs.ApplyMove(1)
		gs.ApplyMove(10)

		move, _ := NewMinimax().FindMove(gs)

		require.Equal(t, game.Pass, move)
	})
}

func TestMinimaxObservability(t *testing.T) {
	t.Run("visitor sees every node", func(t *testing.T) {
		gs := newGame(t, 10, true)
		visits := 0
		var firstMoves []int
		m := NewMinimax(WithMetrics(), WithVisitor(func(path []int) {
			visits++
			if len(path) == 1 {
				firstMoves = append(firstMoves, path[0])
			}
		}))

		m.FindMove(gs)

		require.Equal(t, m.Metrics().Nodes, visits)
		require.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, firstMoves,
			"Root moves should be searched in descending order")
	})

	t.Run("pruning visits fewer nodes", func(t *testing.T) {
		gs := newGame(t, 10, true)
		m := NewMinimax(WithMetrics())

		m.FindMove(gs)
		metric := m.Metrics()

		require.Less(t, metric.Nodes, countNodes(gs)-1)
		require.Positive(t, metric.Cutoffs)
		require.Positive(t, metric.Leaves)
		require.Equal(t, Exhaustive(gs), metric.Value)
	})

	t.Run("metrics stay empty by default", func(t *testing.T) {
		m := NewMinimax()
		m.FindMove(newGame(t, 6, true))

		require.Zero(t, m.Metrics().Nodes)
	})
}
