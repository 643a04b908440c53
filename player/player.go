package player

import (
	"fmt"
	"io"
	"time"

	"factorgame/experiments/metrics"
	"factorgame/game"
	"factorgame/meta"
	"factorgame/searcher"
)

// Player picks a move for whoever is to move in state. Implementations must
// not modify state and must return a legal move, or game.NoMove if they
// cannot produce one.
type Player interface {
	SelectMove(state game.View) int
}

// Reporter is implemented by players that search and can describe their last
// search.
type Reporter interface {
	LastMetric() metrics.SearchMetric
}

type Kind string

const (
	KindRandom  Kind = "random"
	KindGreedy  Kind = "greedy"
	KindMinimax Kind = "minimax"
	KindHuman   Kind = "human"
)

// Kinds lists the automated player kinds.
var Kinds = []Kind{KindRandom, KindGreedy, KindMinimax}

// Factory builds players by kind.
type Factory struct {
	Seed    uint64    // Random player seed, 0 picks one from the clock
	Metrics bool      // Collect search metrics for minimax players
	Debug   bool      // Log minimax search progress at debug level
	In      io.Reader // Human player input
	Out     io.Writer // Human player prompts
}

func (f Factory) New(kind Kind) (Player, error) {
	switch kind {
	case KindRandom:
		seed := f.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return NewRandom(seed), nil
	case KindGreedy:
		return NewGreedy(), nil
	case KindMinimax:
		if f.Debug {
			return NewMinimax(f.Metrics, searcher.WithVisitor(newDebugVisitor(meta.DEBUG_NODE_INTERVAL))), nil
		}
		return NewMinimax(f.Metrics), nil
	case KindHuman:
		if f.In == nil || f.Out == nil {
			return nil, fmt.Errorf("human player needs an input and an output")
		}
		return NewHuman(f.In, f.Out), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}
