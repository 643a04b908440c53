package game

import (
	"fmt"

	"factorgame/utils"
)

// ProperFactors returns every divisor k of n with k != n, ascending.
func ProperFactors(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("proper factors of %d: %w", n, ErrInvalidArgument)
	}
	if n == 1 {
		return []int{}, nil
	}

	// Divisors up to sqrt(n) ascend, their cofactors descend
	small := []int{}
	large := []int{}
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i && j != n {
			large = append(large, j)
		}
	}
	return append(small, utils.Reversed(large)...), nil
}

// OpenFactors returns the proper factors of square that are still open, i.e.
// the squares the opponent circles if square is played.
func (gs *GameState) OpenFactors(square int) []int {
	factors, err := ProperFactors(square)
	if err != nil {
		return []int{}
	}
	open := make([]int, 0, len(factors))
	for _, f := range factors {
		if gs.IsSquareOpen(f) {
			open = append(open, f)
		}
	}
	return open
}

// IsPenaltySquare reports whether circling square captures nothing for the
// opponent.
func (gs *GameState) IsPenaltySquare(square int) bool {
	return len(gs.OpenFactors(square)) == 0
}

func (gs *GameState) AllOpenSquares() []int {
	squares := []int{}
	for i, circled := range gs.board {
		if !circled {
			squares = append(squares, i+1)
		}
	}
	return squares
}

func (gs *GameState) AllNonPenaltySquares() []int {
	squares := []int{}
	for _, square := range gs.AllOpenSquares() {
		if !gs.IsPenaltySquare(square) {
			squares = append(squares, square)
		}
	}
	return squares
}

// IsLegalMove reports whether the active player may play move. A player with
// a pending penalty must pass, and passing is illegal otherwise.
func (gs *GameState) IsLegalMove(move int) bool {
	if move < 0 || move > len(gs.board) {
		return false
	}
	if gs.HasPendingPenalty(gs.ActivePlayer()) {
		return move == Pass
	}
	if move == Pass {
		return false
	}
	if !gs.IsSquareOpen(move) {
		return false
	}
	if gs.penaltiesActive {
		return true
	}
	return !gs.IsPenaltySquare(move)
}

// AllLegalMoves returns the legal moves for the active player, ascending.
func (gs *GameState) AllLegalMoves() []int {
	moves := []int{}
	for move := 0; move <= len(gs.board); move++ {
		if gs.IsLegalMove(move) {
			moves = append(moves, move)
		}
	}
	return moves
}

// IsGameOver reports whether no productive move remains. Penalty squares may
// still be open.
func (gs *GameState) IsGameOver() bool {
	return len(gs.AllNonPenaltySquares()) == 0
}
