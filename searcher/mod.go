package searcher

import (
	"math"

	"factorgame/game"
)

// Sentinels for a side that has not found a move yet
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// Searcher picks a move for the player to move along with its value.
type Searcher interface {
	FindMove(state game.View) (move int, value int)
}

// Visitor observes every position the search enters. path holds the moves
// from the search root and is reused between calls.
type Visitor func(path []int)

func worst(minimizing bool) int {
	if minimizing {
		return PosInf
	}
	return NegInf
}

func better(minimizing bool, v, best int) bool {
	if minimizing {
		return v < best
	}
	return v > best
}
