package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type Option func(s *Searcher)

// Searcher picks moves for the computer. It holds no game state between calls, but it
// is not safe for concurrent use because of its random source and metrics collector.
type Searcher struct {
	rand    *rand.Rand
	weights Weights
	metrics metrics.Collector
}

func WithRand(r *rand.Rand) Option {
	return func(s *Searcher) {
		if r != nil {
			s.rand = r
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rand = rand.New(rand.NewSource(seed))
	}
}

func WithWeights(weights Weights) Option {
	return func(s *Searcher) {
		s.weights = weights
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		rand:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		weights: DefaultWeights,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// ChooseMove returns the origin of the move color should play on b, or false when
// color has no legal move.
func (s *Searcher) ChooseMove(b *game.Board, color game.Color, difficulty Difficulty) (game.Cell, bool) {
	move, ok, _ := s.Choose(b, color, game.LegalMoves(b, color), difficulty)
	return move.Origin, ok
}

// Choose selects one of the caller's legal moves for color and reports the search
// metrics. The caller's slice is never modified.
func (s *Searcher) Choose(b *game.Board, color game.Color, legal []game.LegalMove, difficulty Difficulty) (game.LegalMove, bool, metrics.SearchMetric) {
	s.metrics.Start(difficulty.String(), len(legal))

	var move game.LegalMove
	var ok bool
	switch difficulty {
	case Easy:
		move, ok = pickRandom(legal, s.rand)
	case Medium:
		move, ok = pickGreedy(legal)
	default:
		h := heuristic{root: color, weights: s.weights, metrics: s.metrics}
		move, ok = h.evaluate(b, color, 1, slices.Clone(legal))
	}
	metric := s.metrics.Complete()

	if ok {
		log.Debug().Msgf("%s chose %v for %v (value %.3f, max tiles %d)", difficulty, move.Origin, color, move.MoveValue, move.MaxTiles)
	} else {
		log.Debug().Msgf("%s found no move for %v", difficulty, color)
	}
	return move, ok, metric
}
