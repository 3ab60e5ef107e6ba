package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"
)

type evaluationAgent struct {
	searcher   *searcher.Searcher
	difficulty searcher.Difficulty
	name       string
}

// NewEvaluationAgent returns a computer player that always plays at difficulty.
func NewEvaluationAgent(s *searcher.Searcher, difficulty searcher.Difficulty) Agent {
	return evaluationAgent{searcher: s, difficulty: difficulty, name: meta.COMPUTER_NAME}
}

// NewNamedAgent is NewEvaluationAgent with a display name, for computer-vs-computer games.
func NewNamedAgent(name string, s *searcher.Searcher, difficulty searcher.Difficulty) Agent {
	return evaluationAgent{searcher: s, difficulty: difficulty, name: name}
}

func (a evaluationAgent) FindMove(b *game.Board, color game.Color, legal []game.LegalMove) (game.Cell, bool, metrics.SearchMetric) {
	move, ok, metric := a.searcher.Choose(b, color, legal, a.difficulty)
	return move.Origin, ok, metric
}

func (a evaluationAgent) Name() string {
	return a.name
}
