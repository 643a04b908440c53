package config

import (
	"fmt"

	"factorgame/player"
	"factorgame/utils"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the settings shared by the play and tournament commands.
// Command line flags override these values.
type Config struct {
	BoardSize int    `env:"FACTORGAME_BOARD_SIZE" envDefault:"20"`
	Penalties bool   `env:"FACTORGAME_PENALTIES"  envDefault:"false"`
	Player1   string `env:"FACTORGAME_PLAYER1"    envDefault:"minimax"`
	Player2   string `env:"FACTORGAME_PLAYER2"    envDefault:"greedy"`
	Games     int    `env:"FACTORGAME_GAMES"      envDefault:"20"`
	Seed      uint64 `env:"FACTORGAME_SEED"`
	MaxTurns  int    `env:"FACTORGAME_MAX_TURNS"  envDefault:"1000"`
	LogLevel  string `env:"FACTORGAME_LOG_LEVEL"  envDefault:"info"`
	OutputDir string `env:"FACTORGAME_OUTPUT_DIR" envDefault:"experiments"`
	Color     bool   `env:"FACTORGAME_COLOR"      envDefault:"true"`
	Progress  bool   `env:"FACTORGAME_PROGRESS"   envDefault:"true"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BoardSize < 1 {
		return fmt.Errorf("board size %d must be positive", c.BoardSize)
	}
	if c.Games < 1 {
		return fmt.Errorf("games %d must be positive", c.Games)
	}
	for _, kind := range []string{c.Player1, c.Player2} {
		if !validKind(player.Kind(kind)) {
			return fmt.Errorf("unknown player kind %q", kind)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

func validKind(kind player.Kind) bool {
	return kind == player.KindHuman || utils.Contains(player.Kinds, kind)
}
