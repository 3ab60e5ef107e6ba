package engine

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	Board   *game.Board
	Agents  []agent.Agent // Agents[0] plays black, Agents[1] white
	Current game.Color
	passes  int
}

// NewLocalEngine sets up a game on a fresh board of the given size. Black moves first.
func NewLocalEngine(agents []agent.Agent, size int) *LocalEngine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	return &LocalEngine{
		Board:   game.NewBoard(size),
		Agents:  agents,
		Current: game.Black,
	}
}

func (e *LocalEngine) agentFor(color game.Color) agent.Agent {
	if color == game.White {
		return e.Agents[1]
	}
	return e.Agents[0]
}

// Run executes the entire game loop until the game is over.
func (e *LocalEngine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Current.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s (%v) is starting", e.agentFor(e.Current).Name(), e.Current)

	turn := 1
	for !game.Over(e.Board, e.passes) && turn <= meta.MAX_TURNS {
		color := e.Current
		a := e.agentFor(color)
		legal := game.LegalMoves(e.Board, color)

		mm := metrics.MoveMetric{Step: turn, Player: color.String()}
		if len(legal) > 0 {
			cell, ok, searchMetric := a.FindMove(e.Board, color, legal)
			mm.SearchMetric = searchMetric
			if ok {
				move, err := e.Board.Apply(cell, color, legal)
				if err != nil {
					log.Warn().Err(err).Msgf("%s returned an illegal move, playing %v instead", a.Name(), legal[0].Origin)
					move, err = e.Board.Apply(legal[0].Origin, color, legal)
				}
				if err != nil {
					log.Error().Err(err).Msgf("%s (%v) cannot play, counting a pass", a.Name(), color)
				} else {
					mm.Origin = fmt.Sprintf("%d,%d", move.Origin.X, move.Origin.Y)
					mm.Flips = move.FlipCount
				}
			}
		}

		if mm.Origin == "" {
			e.passes++
			gameMetric.Passes++
			log.Info().Msgf("%s (%v) passes", a.Name(), color)
		} else {
			e.passes = 0
			gameMetric.TotalMoves++
			log.Debug().Msgf("turn %d: %s (%v) played %s\n%s", turn, a.Name(), color, mm.Origin, e.Board)
		}
		moveMetrics = append(moveMetrics, mm)

		e.Current = game.Opponent(color)
		turn++
	}

	if !game.Over(e.Board, e.passes) {
		log.Warn().Msgf("stopped after %d turns without a result", meta.MAX_TURNS)
	}

	winner := game.Winner(e.Board)
	gameMetric.Winner = ResultName(winner)
	gameMetric.Black = e.Board.Black()
	gameMetric.White = e.Board.White()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().Msgf("game over after %d moves: %d - %d, winner %s", gameMetric.TotalMoves, gameMetric.Black, gameMetric.White, gameMetric.Winner)
	return winner, gameMetric, moveMetrics
}

// ResultName is the color name of the winner, or "tie".
func ResultName(winner game.Color) string {
	if winner == game.Empty {
		return "tie"
	}
	return winner.String()
}
