package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// FindMove picks one of legal for color and reports search metrics (if collected).
	// It returns false to pass.
	FindMove(b *game.Board, color game.Color, legal []game.LegalMove) (game.Cell, bool, metrics.SearchMetric)
	Name() string
}
