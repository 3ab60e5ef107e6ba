package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Engine interface {
	// Run plays a game till neither side can move or a max number of turns is reached.
	// The winner is game.Empty on a tie.
	Run() (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
