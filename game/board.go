package game

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// MaxSize is the largest supported board side.
const MaxSize = 16

// Board is the complete state of an Othello board. It is a plain value apart from the
// shared, read-only geometry, so copying a Board copies the position.
type Board struct {
	size  int
	cells [MaxSize * MaxSize]Color
	black int
	white int
	empty int
	geo   *geometry
}

// NewBoard creates a size x size board with the four starting tiles in the middle.
// Odd sizes get no starting tiles and sizes outside [0, MaxSize] degrade to an empty
// 0x0 board; neither ever has a legal move.
func NewBoard(size int) *Board {
	if size < 0 || size > MaxSize {
		log.Warn().Msgf("unsupported board size %d, using an empty board", size)
		size = 0
	}

	b := &Board{
		size:  size,
		empty: size * size,
		geo:   geometryFor(size),
	}

	if size > 0 && size%2 == 0 {
		mid := size / 2
		b.setCell(Cell{mid - 1, mid - 1}, White)
		b.setCell(Cell{mid, mid - 1}, Black)
		b.setCell(Cell{mid - 1, mid}, Black)
		b.setCell(Cell{mid, mid}, White)
	}
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < b.size && c.Y < b.size
}

// At returns the occupant of c, or Empty when c is off the board.
func (b *Board) At(c Cell) Color {
	if !b.InBounds(c) {
		return Empty
	}
	return b.cells[index(c)]
}

// Place puts a tile of the given color on an empty cell. It reports false and leaves
// the board untouched when c is off the board, already occupied, or color is Empty.
func (b *Board) Place(c Cell, color Color) bool {
	if color == Empty || !b.InBounds(c) || b.At(c) != Empty {
		return false
	}
	b.setCell(c, color)
	return true
}

// Remove empties c and returns the color that was there.
func (b *Board) Remove(c Cell) Color {
	if !b.InBounds(c) {
		return Empty
	}
	old := b.At(c)
	b.setCell(c, Empty)
	return old
}

// setCell is the only writer of cells; it keeps the tile counts in step.
func (b *Board) setCell(c Cell, color Color) {
	i := index(c)
	b.adjust(b.cells[i], -1)
	b.adjust(color, 1)
	b.cells[i] = color
}

func (b *Board) adjust(color Color, delta int) {
	switch color {
	case Black:
		b.black += delta
	case White:
		b.white += delta
	default:
		b.empty += delta
	}
}

func (b *Board) Black() int { return b.black }
func (b *Board) White() int { return b.white }
func (b *Board) EmptyCount() int { return b.empty }

// Count returns the number of cells holding color.
func (b *Board) Count(color Color) int {
	switch color {
	case Black:
		return b.black
	case White:
		return b.white
	}
	return b.empty
}

// Corners returns the four corner groups, or none for boards smaller than 2x2.
func (b *Board) Corners() []CornerGroup {
	return b.geo.corners
}

func (b *Board) IsCorner(c Cell) bool {
	return b.InBounds(c) && b.geo.corner[index(c)]
}

func (b *Board) IsEdge(c Cell) bool {
	return b.InBounds(c) && b.geo.edge[index(c)]
}

// OnDiagonal reports whether c lies on one of the two corner-to-corner diagonals.
func (b *Board) OnDiagonal(c Cell) bool {
	return b.InBounds(c) && b.geo.diagonal[index(c)]
}

// CornerGroupOf returns the group that has c as one of its X-squares.
func (b *Board) CornerGroupOf(c Cell) (*CornerGroup, bool) {
	if !b.InBounds(c) {
		return nil, false
	}
	gi := b.geo.xSquare[index(c)]
	if gi < 0 {
		return nil, false
	}
	return &b.geo.corners[gi], true
}

// String renders the board row by row: B and W for tiles, '.' for empty cells.
func (b *Board) String() string {
	return b.render(nil)
}

// StringWithHints renders the board and marks the origin of every hint with '*'.
func (b *Board) StringWithHints(hints []LegalMove) string {
	return b.render(hints)
}

func (b *Board) render(hints []LegalMove) string {
	hinted := make(map[Cell]bool, len(hints))
	for _, h := range hints {
		hinted[h.Origin] = true
	}

	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			c := Cell{x, y}
			switch b.At(c) {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				if hinted[c] {
					sb.WriteByte('*')
				} else {
					sb.WriteByte('.')
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
