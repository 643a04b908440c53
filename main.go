package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"factorgame/config"
	"factorgame/engine"
	"factorgame/experiments"
	"factorgame/experiments/metrics"
	"factorgame/game"
	"factorgame/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: factorgame <command> [flags]

commands:
  play        play one game and narrate it
  tournament  play every automated player against every other one
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	switch os.Args[1] {
	case "play":
		err = runPlay(cfg, os.Args[2:])
	case "tournament":
		err = runTournament(cfg, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", os.Args[1])
	}
}

// commonFlags registers flags shared by every command, defaulting to cfg.
func commonFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "Number of squares on the board")
	fs.BoolVar(&cfg.Penalties, "penalties", cfg.Penalties, "Allow penalty squares (a forced pass) instead of forbidding them")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for random players, 0 for the clock")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Give up on a game after this many turns")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "Colored output")
}

func setupLogging(cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen, NoColor: !cfg.Color})
	return nil
}

func runPlay(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	commonFlags(fs, &cfg)
	fs.StringVar(&cfg.Player1, "p1", cfg.Player1, "Player 1 kind: random, greedy, minimax or human")
	fs.StringVar(&cfg.Player2, "p2", cfg.Player2, "Player 2 kind: random, greedy, minimax or human")
	fs.Parse(args)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	state, err := game.New(cfg.BoardSize, cfg.Penalties)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	factory := player.Factory{
		Seed:    cfg.Seed,
		Metrics: true,
		Debug:   level <= zerolog.DebugLevel,
		In:      os.Stdin,
		Out:     os.Stdout,
	}
	player1, err := factory.New(player.Kind(cfg.Player1))
	if err != nil {
		return err
	}
	factory.Seed++
	player2, err := factory.New(player.Kind(cfg.Player2))
	if err != nil {
		return err
	}

	e := engine.New(state, player1, player2,
		engine.WithNarration(os.Stdout, cfg.Color),
		engine.WithMaxTurns(cfg.MaxTurns))
	result, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Printf("Game result: %d\n", result)
	log.Info().Str("game", gameMetric.ID).Int("result", result).Dur("duration", gameMetric.Duration).Msg("game finished")
	return nil
}

func runTournament(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("tournament", flag.ExitOnError)
	commonFlags(fs, &cfg)
	fs.IntVar(&cfg.Games, "games", cfg.Games, "Games per matchup")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory for result files")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "Show a progress bar")
	fs.Parse(args)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	tournament := experiments.Tournament{
		BoardSize: cfg.BoardSize,
		Penalties: cfg.Penalties,
		Games:     cfg.Games,
		Seed:      seed,
		MaxTurns:  cfg.MaxTurns,
		Progress:  cfg.Progress,
	}
	configs := experiments.DefaultAgents()
	results, err := tournament.Run(configs, experiments.RoundRobin(configs))
	if err != nil {
		return err
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, "round_robin")
	if err != nil {
		return err
	}
	if err := results.Write(writer, configs); err != nil {
		return err
	}

	fmt.Println()
	for _, standing := range results.Standings {
		fmt.Printf("%-8s wins %3d  losses %3d  draws %3d  margin %+d\n",
			standing.Agent.Kind, standing.Wins, standing.Losses, standing.Draws, standing.Margin)
	}
	log.Info().Str("run", results.RunID).Str("dir", writer.Dir()).Msg("tournament finished")
	return nil
}
