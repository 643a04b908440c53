package player

import (
	"bytes"
	"strings"
	"testing"

	"factorgame/game"
	"factorgame/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, size int, penalties bool) *game.GameState {
	t.Helper()
	gs, err := game.New(size, penalties)
	require.NoError(t, err)
	return gs
}

// selfPlay plays p against itself and checks every move it makes.
func selfPlay(t *testing.T, p Player, gs *game.GameState) {
	t.Helper()
	for !gs.IsGameOver() {
		before := gs.Copy()
		move := p.SelectMove(gs)
		require.Equal(t, before, gs, "Players should not modify the state")
		require.True(t, gs.IsLegalMove(move), "Move %d should be legal", move)
		gs.ApplyMove(move)
	}
}

func TestPlayersMakeLegalMoves(t *testing.T) {
	players := map[string]Player{
		"random":  NewRandom(7),
		"greedy":  NewGreedy(),
		"minimax": NewMinimax(false),
	}
	for name, p := range players {
		t.Run(name, func(t *testing.T) {
			selfPlay(t, p, newGame(t, 12, true))
			selfPlay(t, p, newGame(t, 12, false))
		})
	}
}

func TestRandom(t *testing.T) {
	t.Run("same seed plays the same moves", func(t *testing.T) {
		gs := newGame(t, 30, true)
		r1, r2 := NewRandom(42), NewRandom(42)
		for i := 0; i < 20; i++ {
			require.Equal(t, r1.SelectMove(gs), r2.SelectMove(gs))
		}
	})

	t.Run("draws from every legal move", func(t *testing.T) {
		gs := newGame(t, 5, true)
		r := NewRandom(1)
		seen := map[int]bool{}
		for i := 0; i < 500; i++ {
			seen[r.SelectMove(gs)] = true
		}
		require.Len(t, seen, 5)
	})

	t.Run("no legal moves", func(t *testing.T) {
		gs := newGame(t, 2, true)
		gs.ApplyMove(2)
		require.Equal(t, game.NoMove, NewRandom(1).SelectMove(gs))
	})
}

func TestGreedy(t *testing.T) {
	t.Run("takes the biggest immediate gain", func(t *testing.T) {
		gs := newGame(t, 6, true)
		// 5 gains 5-1, more than any other square
		require.Equal(t, 5, NewGreedy().SelectMove(gs))
	})

	t.Run("plays from player 2's perspective", func(t *testing.T) {
		gs := newGame(t, 6, true)
		gs.ApplyMove(5)
		// 4 leaves the result at 2, every other move leaves it higher
		require.Equal(t, 4, NewGreedy().SelectMove(gs))
	})

	t.Run("later moves win ties", func(t *testing.T) {
		gs := newGame(t, 8, true)
		gs.ApplyMove(7)
		// 4 and 8 both leave the result at 4
		require.Equal(t, 8, NewGreedy().SelectMove(gs))
	})

	t.Run("serves a penalty", func(t *testing.T) {
		gs := newGame(t, 8, true)
		gs.ApplyMove(1)
		gs.ApplyMove(8)
		require.Equal(t, game.Pass, NewGreedy().SelectMove(gs))
	})
}

func TestMinimax(t *testing.T) {
	t.Run("matches the searcher", func(t *testing.T) {
		gs := newGame(t, 9, false)
		expected, _ := searcher.NewMinimax().FindMove(gs)

		require.Equal(t, expected, NewMinimax(false).SelectMove(gs))
	})

	t.Run("reports search metrics", func(t *testing.T) {
		p := NewMinimax(true)
		p.SelectMove(newGame(t, 9, true))

		var reporter Reporter = p
		require.Positive(t, reporter.LastMetric().Nodes)
	})

	t.Run("beats random play", func(t *testing.T) {
		for seed := uint64(1); seed <= 5; seed++ {
			gs := newGame(t, 10, true)
			players := map[game.Player]Player{
				game.Player1: NewMinimax(false),
				game.Player2: NewRandom(seed),
			}
			value := searcher.Exhaustive(gs)
			for !gs.IsGameOver() {
				gs.ApplyMove(players[gs.ActivePlayer()].SelectMove(gs))
			}
			require.GreaterOrEqual(t, gs.Result(), value,
				"Perfect play should never do worse than the game value")
		}
	})
}

func TestDebugVisitor(t *testing.T) {
	var buf bytes.Buffer
	logger := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = logger })

	t.Run("logs search progress", func(t *testing.T) {
		buf.Reset()
		p := NewMinimax(true, searcher.WithVisitor(newDebugVisitor(2)))
		p.SelectMove(newGame(t, 6, true))

		nodes := p.LastMetric().Nodes
		require.Equal(t, int(nodes)/2, strings.Count(buf.String(), `"message":"searching"`),
			"Should log once every 2 nodes")
		require.Contains(t, buf.String(), `"nodes":2`)
		require.Contains(t, buf.String(), `"path":[`)
	})

	t.Run("factory installs it in debug mode", func(t *testing.T) {
		p, err := Factory{Debug: true}.New(KindMinimax)
		require.NoError(t, err)
		require.IsType(t, &Minimax{}, p)
	})
}

func TestHuman(t *testing.T) {
	t.Run("re-prompts until a legal move", func(t *testing.T) {
		gs := newGame(t, 6, true)
		var out bytes.Buffer
		h := NewHuman(strings.NewReader("abc\n0\n 3 \n"), &out)

		require.Equal(t, 3, h.SelectMove(gs))
		require.Equal(t, 2, strings.Count(out.String(), "Illegal move. Please try again."))
		require.Equal(t, 3, strings.Count(out.String(), "Enter move: "))
	})

	t.Run("gives up when input ends", func(t *testing.T) {
		gs := newGame(t, 6, true)
		h := NewHuman(strings.NewReader("9\n"), &bytes.Buffer{})

		require.Equal(t, game.NoMove, h.SelectMove(gs))
	})
}

func TestFactory(t *testing.T) {
	t.Run("builds every kind", func(t *testing.T) {
		f := Factory{Seed: 3, In: strings.NewReader(""), Out: &bytes.Buffer{}}
		expected := map[Kind]Player{
			KindRandom:  &Random{},
			KindGreedy:  &Greedy{},
			KindMinimax: &Minimax{},
			KindHuman:   &Human{},
		}
		for kind, typ := range expected {
			p, err := f.New(kind)
			require.NoError(t, err)
			require.IsType(t, typ, p)
		}
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := Factory{}.New("oracle")
		require.Error(t, err)
	})

	t.Run("human needs input and output", func(t *testing.T) {
		_, err := Factory{}.New(KindHuman)
		require.Error(t, err)
	})
}
