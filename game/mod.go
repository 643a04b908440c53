package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIllegalMove     = errors.New("illegal move")
)

// Pass is the move a player makes to serve a pending penalty.
const Pass = 0

// NoMove is returned by move pickers when no legal move exists.
const NoMove = -1

type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	if p == NoPlayer {
		return "NoPlayer"
	}
	return fmt.Sprintf("Player%d", int(p))
}

type StateHash uint64

// View is a read-only view of a game. Callers that need to look ahead must
// work on Copy().
type View interface {
	BoardSize() int
	PenaltiesActive() bool
	IsSquareOpen(square int) bool
	AllOpenSquares() []int
	OpenFactors(square int) []int
	IsPenaltySquare(square int) bool
	AllNonPenaltySquares() []int
	IsLegalMove(move int) bool
	AllLegalMoves() []int
	IsGameOver() bool
	IsPlayer1Turn() bool
	ActivePlayer() Player
	HasPendingPenalty(player Player) bool
	Scores() (score1, score2 int)
	Result() int
	Winner() Player
	Hash() StateHash
	Copy() *GameState
}
