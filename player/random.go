package player

import (
	"factorgame/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) SelectMove(state game.View) int {
	moves := state.AllLegalMoves()
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[r.rng.Intn(len(moves))]
}
