package experiments

import (
	"fmt"

	"factorgame/engine"
	"factorgame/experiments/metrics"
	"factorgame/game"
	"factorgame/meta"
	"factorgame/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Tournament plays a number of games for each matchup of agents.
type Tournament struct {
	BoardSize int
	Penalties bool
	Games     int    // Per matchup
	Seed      uint64 // Seeds the random players
	MaxTurns  int
	Progress  bool // Show a progress bar
}

type Standing struct {
	Agent  metrics.AgentConfig
	Wins   int
	Losses int
	Draws  int
	Margin int // Sum of results from this agent's side
}

type Results struct {
	RunID     string
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Standings []Standing
}

// RoundRobin pairs every agent with every other agent, once as each player.
func RoundRobin(configs []metrics.AgentConfig) [][]metrics.AgentConfig {
	matchUps := [][]metrics.AgentConfig{}
	for _, config1 := range configs {
		for _, config2 := range configs {
			if config1.ID != config2.ID {
				matchUps = append(matchUps, []metrics.AgentConfig{config1, config2})
			}
		}
	}
	return matchUps
}

// DefaultAgents returns one agent per automated player kind.
func DefaultAgents() []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for i, kind := range player.Kinds {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Kind: string(kind)})
	}
	return configs
}

func (t Tournament) Run(configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Results, error) {
	games := t.Games
	if games <= 0 {
		games = meta.GAMES_PER_MATCHUP
	}
	results := Results{RunID: uuid.NewString()}
	rng := rand.New(rand.NewSource(t.Seed))
	bar := newBar(games*len(matchUps), "playing", t.Progress)
	defer bar.Finish()

	log.Info().Str("run", results.RunID).Msgf("starting tournament of %d matchups...", len(matchUps))

	count := 0
	for mi, matchup := range matchUps {
		if len(matchup) != 2 {
			return results, fmt.Errorf("matchup %d has %d agents, want 2", mi+1, len(matchup))
		}
		config1, config2 := matchup[0], matchup[1]
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			count++
			gameMetric, moveMetrics, err := t.runGame(config1, config2, rng.Uint64())
			if err != nil {
				return results, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			if err := bar.Add(1); err != nil {
				log.Debug().Err(err).Msg("failed to update progress bar")
			}
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	results.Standings = standings(configs, results.Games)
	log.Info().Str("run", results.RunID).Msgf("completed tournament of %d games", count)
	return results, nil
}

func (t Tournament) runGame(config1, config2 metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := game.New(t.BoardSize, t.Penalties)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	player1, err := player.Factory{Seed: seed, Metrics: true}.New(player.Kind(config1.Kind))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	// Offset the seed so mirrored random agents do not play identical moves
	player2, err := player.Factory{Seed: seed + 1, Metrics: true}.New(player.Kind(config2.Kind))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.New(state, player1, player2, engine.WithMaxTurns(t.MaxTurns))
	_, gameMetric, moveMetrics, err := e.Run()
	return gameMetric, moveMetrics, err
}

func standings(configs []metrics.AgentConfig, records []metrics.GameRecord) []Standing {
	index := map[int]int{}
	table := make([]Standing, len(configs))
	for i, config := range configs {
		index[config.ID] = i
		table[i].Agent = config
	}

	for _, record := range records {
		first, ok1 := index[record.Agent1]
		second, ok2 := index[record.Agent2]
		if !ok1 || !ok2 {
			continue
		}
		table[first].Margin += record.Result
		table[second].Margin -= record.Result
		switch game.Player(record.Winner) {
		case game.Player1:
			table[first].Wins++
			table[second].Losses++
		case game.Player2:
			table[first].Losses++
			table[second].Wins++
		default:
			table[first].Draws++
			table[second].Draws++
		}
	}
	return table
}

// Write stores agent configs, game records and move records under w.
func (r Results) Write(w *metrics.Writer, configs []metrics.AgentConfig) error {
	err := w.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = w.WriteGameRecords(r.Games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	err = w.WriteGameRecordsJSON(r.Games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = w.WriteMoveRecords(r.Moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}
