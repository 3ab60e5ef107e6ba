package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned for a move that is not in the caller's legal move list.
// The board is left unchanged.
var ErrIllegalMove = errors.New("illegal move")

// Apply plays the move at origin for color, provided it appears in legal, the list the
// caller generated for this color and turn. The recorded flips are used, so a list that
// no longer matches the board is rejected rather than half applied.
func (b *Board) Apply(origin Cell, color Color, legal []LegalMove) (LegalMove, error) {
	if !b.InBounds(origin) || b.At(origin) != Empty {
		return LegalMove{}, fmt.Errorf("%w: %v is not an empty cell", ErrIllegalMove, origin)
	}

	move, ok := Find(legal, origin)
	if !ok || move.Color != color {
		return LegalMove{}, fmt.Errorf("%w: %v is not a legal move for %v", ErrIllegalMove, origin, color)
	}

	opponent := Opponent(color)
	for _, c := range move.Flips {
		if b.At(c) != opponent {
			return LegalMove{}, fmt.Errorf("%w: stale move list, %v no longer holds %v", ErrIllegalMove, c, opponent)
		}
	}

	b.play(move)
	return move, nil
}

// play applies a move generated from this exact position without validation.
func (b *Board) play(m LegalMove) {
	b.setCell(m.Origin, m.Color)
	for _, c := range m.Flips {
		b.setCell(c, m.Color)
	}
}

// Project returns a copy of b with m played on it. m must have been generated from b.
func (b *Board) Project(m LegalMove) *Board {
	nb := b.Clone()
	nb.play(m)
	return nb
}
