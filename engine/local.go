package engine

import (
	"fmt"
	"io"
	"time"

	"factorgame/experiments/metrics"
	"factorgame/game"
	"factorgame/meta"
	"factorgame/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// LocalEngine hosts a game between two players in this process.
type LocalEngine struct {
	ID       string
	State    *game.GameState
	Players  [2]player.Player
	maxTurns int
	out      io.Writer
	colored  bool
}

// WithNarration prints the board and a line per move to out.
func WithNarration(out io.Writer, colored bool) Option {
	return func(e *LocalEngine) {
		e.out = out
		e.colored = colored
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithID(id string) Option {
	return func(e *LocalEngine) {
		if id != "" {
			e.ID = id
		}
	}
}

func New(state *game.GameState, player1, player2 player.Player, options ...Option) *LocalEngine {
	if state == nil || player1 == nil || player2 == nil {
		panic("engine needs a game and two players")
	}
	e := &LocalEngine{
		ID:       uuid.NewString(),
		State:    state,
		Players:  [2]player.Player{player1, player2},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until no productive move remains.
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        e.ID,
		BoardSize: e.State.BoardSize(),
		Penalties: e.State.PenaltiesActive(),
		StartTime: time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Debug().Str("game", e.ID).Int("size", e.State.BoardSize()).Bool("penalties", e.State.PenaltiesActive()).Msg("game started")
	e.narrate(game.Render(e.State, e.colored))

	step := 1
	for !e.State.IsGameOver() {
		if step > e.maxTurns {
			return e.State.Result(), e.complete(gameMetric, step-1), moveMetrics, fmt.Errorf("after %d turns: %w", e.maxTurns, ErrTurnLimit)
		}

		mover := e.State.ActivePlayer()
		agent := e.Players[int(mover)-1]
		// Players get their own copy so they cannot touch the hosted game
		move := agent.SelectMove(e.State.Copy())
		if move == game.NoMove {
			return e.State.Result(), e.complete(gameMetric, step-1), moveMetrics, fmt.Errorf("%s: %w", mover, ErrNoMove)
		}

		factors := e.State.OpenFactors(move)
		next, err := e.State.Play(move)
		if err != nil {
			return e.State.Result(), e.complete(gameMetric, step-1), moveMetrics, err
		}
		if move != game.Pass && len(factors) == 0 {
			gameMetric.PenaltyMoves++
		}

		moveMetric := metrics.MoveMetric{Step: step, Player: int(mover), Move: move}
		if reporter, ok := agent.(player.Reporter); ok {
			moveMetric.SearchMetric = reporter.LastMetric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		score1, score2 := next.Scores()
		log.Debug().Str("game", e.ID).Int("step", step).Stringer("player", mover).Int("move", move).
			Ints("captured", factors).Int("score1", score1).Int("score2", score2).Msg("move played")

		e.narrate(Narrate(mover, move, factors))
		e.State = next
		e.narrate(game.Render(e.State, e.colored))
		step++
	}

	gameMetric = e.complete(gameMetric, step-1)
	log.Debug().Str("game", e.ID).Int("result", gameMetric.Result).Int("moves", gameMetric.TotalMoves).Msg("game over")
	return gameMetric.Result, gameMetric, moveMetrics, nil
}

func (e *LocalEngine) complete(gameMetric metrics.GameMetric, moves int) metrics.GameMetric {
	gameMetric.Score1, gameMetric.Score2 = e.State.Scores()
	gameMetric.Result = e.State.Result()
	gameMetric.Winner = int(e.State.Winner())
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = moves
	return gameMetric
}

func (e *LocalEngine) narrate(text string) {
	if e.out == nil {
		return
	}
	fmt.Fprintln(e.out, text)
}
