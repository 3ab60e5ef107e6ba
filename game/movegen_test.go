package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func origins(moves []LegalMove) []Cell {
	cells := make([]Cell, len(moves))
	for i, m := range moves {
		cells[i] = m.Origin
	}
	return cells
}

func TestLegalMoves(t *testing.T) {
	t.Run("black opening moves on a standard board", func(t *testing.T) {
		moves := LegalMoves(NewBoard(8), Black)

		require.ElementsMatch(t, []Cell{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, origins(moves))
		for _, m := range moves {
			require.Equal(t, 1, m.FlipCount, "Every opening move flips one tile")
			require.Equal(t, Black, m.Color)
			require.False(t, m.IsCorner)
			require.False(t, m.IsEdge)
			require.Nil(t, m.Group)
			require.Zero(t, m.MoveValue)
			require.Zero(t, m.MaxTiles)
		}
	})

	t.Run("white opening moves on a standard board", func(t *testing.T) {
		moves := LegalMoves(NewBoard(8), White)

		require.ElementsMatch(t, []Cell{{4, 2}, {5, 3}, {2, 4}, {3, 5}}, origins(moves))
	})

	t.Run("moves come in row-major order", func(t *testing.T) {
		moves := LegalMoves(NewBoard(8), Black)

		require.Equal(t, []Cell{{3, 2}, {2, 3}, {5, 4}, {4, 5}}, origins(moves))
	})

	t.Run("flips only hold the opposing color", func(t *testing.T) {
		b := NewBoard(8)
		b.Place(Cell{2, 2}, White)
		b.Place(Cell{5, 5}, Black)

		for _, m := range LegalMoves(b, White) {
			require.Len(t, m.Flips, m.FlipCount)
			for _, c := range m.Flips {
				require.Equal(t, Black, b.At(c), "Flip %v of move %v should be black", c, m.Origin)
			}
		}
	})

	t.Run("flips are collected from several directions", func(t *testing.T) {
		b := clearedBoard(t)
		b.Place(Cell{3, 3}, White)
		b.Place(Cell{4, 3}, Black)
		b.Place(Cell{2, 4}, White)
		b.Place(Cell{2, 5}, Black)

		move, ok := Find(LegalMoves(b, Black), Cell{2, 3})
		require.True(t, ok)
		require.ElementsMatch(t, []Cell{{3, 3}, {2, 4}}, move.Flips)
		require.Equal(t, 2, move.FlipCount)
	})

	t.Run("corner move is flagged as corner and edge", func(t *testing.T) {
		b := clearedBoard(t)
		b.Place(Cell{1, 1}, White)
		b.Place(Cell{2, 2}, Black)

		moves := LegalMoves(b, Black)
		require.Equal(t, []Cell{{0, 0}}, origins(moves))
		require.True(t, moves[0].IsCorner)
		require.True(t, moves[0].IsEdge)
		require.Nil(t, moves[0].Group, "A corner is not an X-square")
	})

	t.Run("X-square move records its corner group", func(t *testing.T) {
		b := clearedBoard(t)
		b.Place(Cell{2, 2}, White)
		b.Place(Cell{3, 3}, Black)

		moves := LegalMoves(b, Black)
		require.Equal(t, []Cell{{1, 1}}, origins(moves))
		require.NotNil(t, moves[0].Group)
		require.Equal(t, Cell{0, 0}, moves[0].Group.Corner)
		require.False(t, moves[0].IsEdge)
	})

	t.Run("edge move is flagged as edge only", func(t *testing.T) {
		b := clearedBoard(t)
		b.Place(Cell{3, 1}, White)
		b.Place(Cell{3, 2}, Black)

		moves := LegalMoves(b, Black)
		require.Equal(t, []Cell{{3, 0}}, origins(moves))
		require.True(t, moves[0].IsEdge)
		require.False(t, moves[0].IsCorner)
		require.Nil(t, moves[0].Group)
	})

	t.Run("empty color has no moves", func(t *testing.T) {
		require.Empty(t, LegalMoves(NewBoard(8), Empty))
	})
}

func TestScan(t *testing.T) {
	right := Direction{1, 0}

	t.Run("run closed by an anchor is flippable", func(t *testing.T) {
		b := clearedBoard(t)
		for _, c := range []Cell{{2, 0}, {3, 0}, {4, 0}} {
			b.Place(c, White)
		}
		b.Place(Cell{5, 0}, Black)

		require.Equal(t, []Cell{{2, 0}, {3, 0}, {4, 0}}, b.scan(Cell{1, 0}, right, Black))
	})

	t.Run("run ending on an empty cell flips nothing", func(t *testing.T) {
		b := clearedBoard(t)
		for _, c := range []Cell{{2, 0}, {3, 0}, {4, 0}} {
			b.Place(c, White)
		}

		require.Empty(t, b.scan(Cell{1, 0}, right, Black))
	})

	t.Run("run reaching the edge flips nothing", func(t *testing.T) {
		b := clearedBoard(t)
		for x := 2; x < 8; x++ {
			b.Place(Cell{x, 0}, White)
		}

		require.Empty(t, b.scan(Cell{1, 0}, right, Black))
	})

	t.Run("adjacent anchor flips nothing", func(t *testing.T) {
		b := clearedBoard(t)
		b.Place(Cell{2, 0}, Black)

		require.Empty(t, b.scan(Cell{1, 0}, right, Black))
	})

	t.Run("scanning off the board flips nothing", func(t *testing.T) {
		b := clearedBoard(t)

		require.Empty(t, b.scan(Cell{7, 0}, right, Black))
		require.Empty(t, b.scan(Cell{0, 0}, Direction{-1, -1}, Black))
	})
}

func TestFind(t *testing.T) {
	legal := LegalMoves(NewBoard(8), Black)

	move, ok := Find(legal, Cell{5, 4})
	require.True(t, ok)
	require.Equal(t, Cell{5, 4}, move.Origin)
	require.Equal(t, []Cell{{4, 4}}, move.Flips)

	_, ok = Find(legal, Cell{0, 0})
	require.False(t, ok)
	_, ok = Find(nil, Cell{5, 4})
	require.False(t, ok)
}
