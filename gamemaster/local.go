package gamemaster

import (
	"errors"
	"fmt"
	"othello/game"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("not the player's turn")
)

type Option func(s *Session)

// WithHints exposes the player's legal moves through Hints.
func WithHints(enabled bool) Option {
	return func(s *Session) {
		s.hints = enabled
	}
}

// WithScoreBook records the player's wins in book.
func WithScoreBook(book *ScoreBook) Option {
	return func(s *Session) {
		s.scores = book
	}
}

// Session is a game between a person, who plays black and moves first, and a computer
// agent playing white. The computer replies, and either side passes, inside Play.
type Session struct {
	board    *game.Board
	name     string
	computer agent.Agent
	hints    bool
	scores   *ScoreBook

	active game.Color
	legal  []game.LegalMove // active side's moves; nil once discarded
	passes int
	over   bool
	winner game.Color
}

func NewSession(name string, computer agent.Agent, size int, options ...Option) *Session {
	s := &Session{
		board:    game.NewBoard(size),
		name:     name,
		computer: computer,
		active:   game.Black,
	}
	for _, option := range options {
		option(s)
	}

	log.Info().Msgf("%s (black) vs %s (white) on a %dx%d board", name, computer.Name(), size, size)
	s.advance()
	return s
}

// Board returns a copy of the current position for display.
func (s *Session) Board() *game.Board {
	return s.board.Clone()
}

func (s *Session) Over() bool {
	return s.over
}

// Winner is the winning color once the game is over, game.Empty on a tie.
func (s *Session) Winner() game.Color {
	return s.winner
}

// Hints returns the player's legal moves when hints are enabled.
func (s *Session) Hints() []game.LegalMove {
	if !s.hints || s.over || s.active != game.Black {
		return nil
	}
	return s.legal
}

// Play places the player's tile at c. An illegal move leaves everything unchanged and
// wraps game.ErrIllegalMove.
func (s *Session) Play(c game.Cell) error {
	if s.over {
		return ErrGameOver
	}
	if s.active != game.Black {
		return ErrNotYourTurn
	}

	move, err := s.board.Apply(c, game.Black, s.legal)
	if err != nil {
		log.Warn().Err(err).Msgf("%s tried %v", s.name, c)
		return err
	}
	log.Info().Msgf("%s played %v flipping %d", s.name, move.Origin, move.FlipCount)

	s.passes = 0
	s.endTurn()
	s.advance()
	return nil
}

// endTurn discards the finished turn's moves, which also clears the hints.
func (s *Session) endTurn() {
	s.legal = nil
	s.active = game.Opponent(s.active)
}

// advance plays computer turns and passes until the player has a move or the game ends.
func (s *Session) advance() {
	for {
		if game.Over(s.board, s.passes) {
			s.finish()
			return
		}

		s.legal = game.LegalMoves(s.board, s.active)
		if len(s.legal) == 0 {
			s.passes++
			log.Info().Msgf("%v has no legal move and passes", s.active)
			s.endTurn()
			continue
		}

		if s.active == game.Black {
			return
		}

		cell, ok, _ := s.computer.FindMove(s.board, s.active, s.legal)
		if !ok {
			s.passes++
			s.endTurn()
			continue
		}
		move, err := s.board.Apply(cell, s.active, s.legal)
		if err != nil {
			log.Warn().Err(err).Msgf("%s returned an illegal move, playing %v instead", s.computer.Name(), s.legal[0].Origin)
			move, err = s.board.Apply(s.legal[0].Origin, s.active, s.legal)
		}
		if err != nil {
			log.Error().Err(err).Msgf("%s cannot play, counting a pass", s.computer.Name())
			s.passes++
			s.endTurn()
			continue
		}
		log.Info().Msgf("%s played %v flipping %d", s.computer.Name(), move.Origin, move.FlipCount)
		s.passes = 0
		s.endTurn()
	}
}

func (s *Session) finish() {
	s.over = true
	s.legal = nil
	s.winner = game.Winner(s.board)
	log.Info().Msgf("game over: %d - %d", s.board.Black(), s.board.White())

	if s.winner == game.Black && s.scores != nil {
		if err := s.scores.Record(s.name, s.board.Black()); err != nil {
			log.Error().Err(err).Msg("could not record the score")
		}
	}
}

// Banner announces the result: the winner's name, or a tie, and the final count.
func (s *Session) Banner() string {
	var headline string
	switch s.winner {
	case game.Black:
		headline = s.name + " Wins!"
	case game.White:
		headline = s.computer.Name() + " Wins!"
	default:
		headline = "Tie Game!"
	}
	if !s.over {
		headline = "Game in progress"
	}
	return fmt.Sprintf("%s\n%d - %d", headline, s.board.Black(), s.board.White())
}

// Score is the scoreboard line shown between turns.
func (s *Session) Score() string {
	return fmt.Sprintf("%s (black) %d - %d %s (white)", s.name, s.board.Black(), s.board.White(), s.computer.Name())
}

// Active is the color to move.
func (s *Session) Active() game.Color {
	return s.active
}
