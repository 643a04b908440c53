package engine

import (
	"errors"

	"factorgame/experiments/metrics"
)

var (
	ErrNoMove    = errors.New("player returned no move")
	ErrTurnLimit = errors.New("turn limit reached")
)

type Engine interface {
	// Run plays the game to the end and returns the final result, score1 - score2
	Run() (result int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
