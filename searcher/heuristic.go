package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// heuristic is the Hard policy: a fixed-depth lookahead that alternates between the
// side choosing the move (root) and a naive model of its opponent.
type heuristic struct {
	root    game.Color
	weights Weights
	metrics metrics.Collector
}

// search generates side's moves on b and returns the best one at this ply.
func (h heuristic) search(b *game.Board, side game.Color, ply int) (game.LegalMove, bool) {
	return h.evaluate(b, side, ply, game.LegalMoves(b, side))
}

// evaluate scores moves, which must be side's legal moves on b, and picks the best.
//
// At the last ply a move is worth its flip count. Above it, each move is projected onto
// a copy of b, the reply is searched one ply deeper, and the move inherits the reply's
// value and max tiles before its own terms are added.
func (h heuristic) evaluate(b *game.Board, side game.Color, ply int, moves []game.LegalMove) (game.LegalMove, bool) {
	h.metrics.AddNode()

	for i := range moves {
		m := &moves[i]
		m.MoveValue = 0
		m.MaxTiles = 0

		if ply >= MaxDepth {
			m.MaxTiles = m.FlipCount
			m.MoveValue = float64(m.FlipCount)
			continue
		}

		next := b.Project(*m)
		h.metrics.AddClone()
		if reply, ok := h.search(next, game.Opponent(side), ply+1); ok {
			m.MaxTiles = reply.MaxTiles
			m.MoveValue = reply.MoveValue
		}

		if side == h.root {
			h.weighOwn(b, m, ply)
		} else {
			h.weighOpponent(b, m, ply)
		}
	}
	return pickBest(moves)
}

func (h heuristic) weighOwn(b *game.Board, m *game.LegalMove, ply int) {
	w := h.weights
	depth := float64(ply)

	m.MoveValue += float64(m.MaxTiles) * w.FlippedTile / depth

	switch {
	case m.IsCorner:
		m.MoveValue += w.Corner / depth
	case m.Group != nil && b.At(m.Group.Corner) == game.Empty:
		m.MoveValue -= w.XSquare / depth
	case m.IsEdge:
		m.MoveValue += w.Edge / depth
	}

	// Flipped tiles are the opponent's; the terms follow the side choosing the move.
	for _, c := range m.Flips {
		if group, ok := b.CornerGroupOf(c); ok && b.At(group.Corner) == game.Empty {
			m.MoveValue -= w.XSquareFlip / depth
		}
		if b.OnDiagonal(c) {
			m.MoveValue += w.DiagonalFlip / depth
		}
	}
}

func (h heuristic) weighOpponent(b *game.Board, m *game.LegalMove, ply int) {
	w := h.weights
	depth := float64(ply)

	m.MoveValue -= float64(m.MaxTiles) * w.OpponentFlippedTile / depth

	switch {
	case m.IsCorner:
		m.MoveValue -= w.OpponentCorner / depth
	case m.Group != nil && b.At(m.Group.Corner) == game.Empty:
		m.MoveValue += w.OpponentXSquare / depth
	case m.IsEdge:
		m.MoveValue -= w.OpponentEdge / depth
	}
}
