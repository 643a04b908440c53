package player

import (
	"math"

	"factorgame/game"
)

// Greedy plays the move that leaves it furthest ahead after one ply.
type Greedy struct{}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (g *Greedy) SelectMove(state game.View) int {
	maxResult := math.MinInt
	maxMove := game.NoMove
	for _, move := range state.AllLegalMoves() {
		next := state.Copy()
		next.ApplyMove(move)

		result := next.Result()
		if !state.IsPlayer1Turn() {
			// Player2 wants the result as low as possible
			result = -result
		}
		// Later moves win ties
		if result >= maxResult {
			maxResult = result
			maxMove = move
		}
	}
	return maxMove
}
