package game

import "golang.org/x/exp/slices"

// LegalMove is a move available to Color at Origin on the board it was generated from.
// MoveValue and MaxTiles are scratch fields owned by the searcher; they only carry
// meaning for the search pass that filled them in.
type LegalMove struct {
	Origin    Cell
	Color     Color
	Flips     []Cell
	FlipCount int
	Group     *CornerGroup // set when Origin is an X-square of Group
	IsCorner  bool
	IsEdge    bool

	MoveValue float64
	MaxTiles  int
}

// LegalMoves returns every move available to color, in row-major order of the origin.
// An empty result means color has to pass. Odd and degenerate sizes never have moves,
// whatever tiles have been placed on them.
func LegalMoves(b *Board, color Color) []LegalMove {
	if b.size < 2 || b.size%2 != 0 || (color != Black && color != White) {
		return nil
	}

	var moves []LegalMove
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			origin := Cell{x, y}
			if b.At(origin) != Empty {
				continue
			}

			var flips []Cell
			for _, d := range Directions {
				flips = append(flips, b.scan(origin, d, color)...)
			}
			if len(flips) == 0 {
				continue
			}

			move := LegalMove{
				Origin:    origin,
				Color:     color,
				Flips:     flips,
				FlipCount: len(flips),
				IsCorner:  b.IsCorner(origin),
				IsEdge:    b.IsEdge(origin),
			}
			if group, ok := b.CornerGroupOf(origin); ok {
				move.Group = group
			}
			moves = append(moves, move)
		}
	}
	return moves
}

// scan walks from origin along d and returns the run of opposing tiles closed off by a
// tile of color. A run that reaches an empty cell or the edge yields nothing.
func (b *Board) scan(origin Cell, d Direction, color Color) []Cell {
	opponent := Opponent(color)
	if opponent == Empty {
		return nil
	}

	var run []Cell
	c := Cell{origin.X + d.DX, origin.Y + d.DY}
	for {
		switch b.At(c) {
		case opponent:
			run = append(run, c)
		case color:
			return run
		default:
			return nil
		}
		c = Cell{c.X + d.DX, c.Y + d.DY}
	}
}

// Find returns the move in moves whose origin is c.
func Find(moves []LegalMove, c Cell) (LegalMove, bool) {
	i := slices.IndexFunc(moves, func(m LegalMove) bool {
		return m.Origin == c
	})
	if i < 0 {
		return LegalMove{}, false
	}
	return moves[i], true
}
