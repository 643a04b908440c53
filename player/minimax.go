package player

import (
	"factorgame/experiments/metrics"
	"factorgame/game"
	"factorgame/searcher"

	"github.com/rs/zerolog/log"
)

// Minimax plays perfectly by searching every line to the end of the game.
type Minimax struct {
	search *searcher.Minimax
}

func NewMinimax(withMetrics bool, options ...searcher.Option) *Minimax {
	if withMetrics {
		options = append(options, searcher.WithMetrics())
	}
	return &Minimax{search: searcher.NewMinimax(options...)}
}

func (m *Minimax) SelectMove(state game.View) int {
	move, _ := m.search.FindMove(state)
	return move
}

func (m *Minimax) LastMetric() metrics.SearchMetric {
	return m.search.Metrics()
}

// newDebugVisitor logs the current search path and the number of nodes
// visited so far, once every interval nodes.
func newDebugVisitor(interval int) searcher.Visitor {
	nodes := 0
	return func(path []int) {
		nodes++
		if nodes%interval == 0 {
			log.Debug().Ints("path", path).Int("nodes", nodes).Msg("searching")
		}
	}
}
