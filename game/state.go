package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"factorgame/meta"
	"factorgame/utils"
)

// GameState is the full state of a Factor Game: which squares are circled,
// the scores, whose turn it is and who must pass next.
type GameState struct {
	board           []bool // board[i] is square i+1, true once circled
	score1          int
	score2          int
	player1Turn     bool
	penalty1        bool // Player1 must pass on their next turn
	penalty2        bool // Player2 must pass on their next turn
	penaltiesActive bool // false makes penalty squares illegal
}

// New returns a game with boardSize open squares and Player1 to move.
func New(boardSize int, penaltiesActive bool) (*GameState, error) {
	if boardSize < 1 {
		return nil, fmt.Errorf("board size %d must be positive: %w", boardSize, ErrInvalidArgument)
	}
	return &GameState{
		board:           make([]bool, boardSize),
		player1Turn:     true,
		penaltiesActive: penaltiesActive,
	}, nil
}

// NewDefault returns a 30 square game with penalties active.
func NewDefault() *GameState {
	gs, err := New(meta.DEFAULT_BOARD_SIZE, meta.PENALTIES_ACTIVE)
	if err != nil {
		panic(err)
	}
	return gs
}

func (gs *GameState) Copy() *GameState {
	boardCopy := make([]bool, len(gs.board))
	copy(boardCopy, gs.board)

	return &GameState{
		board:           boardCopy,
		score1:          gs.score1,
		score2:          gs.score2,
		player1Turn:     gs.player1Turn,
		penalty1:        gs.penalty1,
		penalty2:        gs.penalty2,
		penaltiesActive: gs.penaltiesActive,
	}
}

func (gs *GameState) BoardSize() int {
	return len(gs.board)
}

func (gs *GameState) PenaltiesActive() bool {
	return gs.penaltiesActive
}

// IsSquareOpen reports whether square is on the board and not yet circled.
func (gs *GameState) IsSquareOpen(square int) bool {
	if square < 1 || square > len(gs.board) {
		return false
	}
	return !gs.board[square-1]
}

func (gs *GameState) IsPlayer1Turn() bool {
	return gs.player1Turn
}

func (gs *GameState) ActivePlayer() Player {
	if gs.player1Turn {
		return Player1
	}
	return Player2
}

func (gs *GameState) HasPendingPenalty(player Player) bool {
	switch player {
	case Player1:
		return gs.penalty1
	case Player2:
		return gs.penalty2
	default:
		return false
	}
}

func (gs *GameState) Scores() (int, int) {
	return gs.score1, gs.score2
}

// Result is score1 - score2; positive favors Player1.
func (gs *GameState) Result() int {
	return gs.score1 - gs.score2
}

// Winner returns the leading player once the game is over, NoPlayer on a
// draw or while the game is still running.
func (gs *GameState) Winner() Player {
	if !gs.IsGameOver() {
		return NoPlayer
	}
	switch result := gs.Result(); {
	case result > 0:
		return Player1
	case result < 0:
		return Player2
	default:
		return NoPlayer
	}
}

// ApplyMove plays move for the active player. An illegal move returns false
// and leaves the state untouched.
func (gs *GameState) ApplyMove(move int) bool {
	if !gs.IsLegalMove(move) {
		return false
	}

	if move == Pass {
		gs.setPenalty(gs.ActivePlayer(), false)
	} else {
		gs.board[move-1] = true
		// Factors must be read before any of them are circled
		factors := gs.OpenFactors(move)
		if len(factors) == 0 {
			gs.setPenalty(gs.ActivePlayer(), true)
		} else {
			for _, f := range factors {
				gs.board[f-1] = true
			}
			gs.award(gs.ActivePlayer(), move)
			gs.award(gs.ActivePlayer().Opponent(), utils.Sum(factors))
		}
	}

	gs.player1Turn = !gs.player1Turn
	return true
}

// Play returns a copy of the game with move applied.
func (gs *GameState) Play(move int) (*GameState, error) {
	next := gs.Copy()
	if !next.ApplyMove(move) {
		return nil, fmt.Errorf("%s cannot play %d: %w", gs.ActivePlayer(), move, ErrIllegalMove)
	}
	return next, nil
}

func (gs *GameState) setPenalty(player Player, pending bool) {
	if player == Player1 {
		gs.penalty1 = pending
	} else {
		gs.penalty2 = pending
	}
}

func (gs *GameState) award(player Player, points int) {
	if player == Player1 {
		gs.score1 += points
	} else {
		gs.score2 += points
	}
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash turn and penalties
	binary.Write(hasher, binary.LittleEndian, gs.player1Turn)
	binary.Write(hasher, binary.LittleEndian, gs.penalty1)
	binary.Write(hasher, binary.LittleEndian, gs.penalty2)
	binary.Write(hasher, binary.LittleEndian, gs.penaltiesActive)

	// Hash scores
	binary.Write(hasher, binary.LittleEndian, int64(gs.score1))
	binary.Write(hasher, binary.LittleEndian, int64(gs.score2))

	// Hash board
	binary.Write(hasher, binary.LittleEndian, gs.board)

	return StateHash(hasher.Sum64())
}
