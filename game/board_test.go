package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireCounts(t *testing.T, b *Board) {
	t.Helper()
	require.Equal(t, b.Size()*b.Size(), b.Black()+b.White()+b.EmptyCount(),
		"Tile counts should always add up to the number of cells")

	black, white := 0, 0
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			switch b.At(Cell{x, y}) {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	require.Equal(t, black, b.Black(), "Black count should match the grid")
	require.Equal(t, white, b.White(), "White count should match the grid")
}

// clearedBoard returns an 8x8 board with the starting tiles removed.
func clearedBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard(8)
	for _, c := range []Cell{{3, 3}, {4, 3}, {3, 4}, {4, 4}} {
		b.Remove(c)
	}
	require.Equal(t, 64, b.EmptyCount())
	return b
}

func TestNewBoard(t *testing.T) {
	t.Run("standard board has four starting tiles", func(t *testing.T) {
		b := NewBoard(8)

		require.Equal(t, 8, b.Size())
		require.Equal(t, 2, b.Black())
		require.Equal(t, 2, b.White())
		require.Equal(t, 60, b.EmptyCount())
		require.Equal(t, White, b.At(Cell{3, 3}))
		require.Equal(t, Black, b.At(Cell{4, 3}))
		require.Equal(t, Black, b.At(Cell{3, 4}))
		require.Equal(t, White, b.At(Cell{4, 4}))
		requireCounts(t, b)
	})

	t.Run("small board renders its starting position", func(t *testing.T) {
		b := NewBoard(4)

		require.Equal(t, "....\n.WB.\n.BW.\n....\n", b.String())
	})

	t.Run("degenerate sizes never have legal moves", func(t *testing.T) {
		for _, size := range []int{0, 1, 2, 7, -2, MaxSize + 2} {
			b := NewBoard(size)

			requireCounts(t, b)
			require.Empty(t, LegalMoves(b, Black), "Size %d should have no black moves", size)
			require.Empty(t, LegalMoves(b, White), "Size %d should have no white moves", size)
		}
	})

	t.Run("unsupported sizes degrade to an empty board", func(t *testing.T) {
		b := NewBoard(MaxSize + 2)

		require.Equal(t, 0, b.Size())
		require.Empty(t, b.Corners())
		require.False(t, b.InBounds(Cell{0, 0}))
	})

	t.Run("odd board has no starting tiles", func(t *testing.T) {
		b := NewBoard(7)

		require.Equal(t, 49, b.EmptyCount())
		require.Zero(t, b.Black())
		require.Zero(t, b.White())
	})

	t.Run("odd board stays without moves after placing tiles", func(t *testing.T) {
		b := NewBoard(7)
		require.True(t, b.Place(Cell{3, 3}, White))
		require.True(t, b.Place(Cell{4, 3}, Black))

		require.Empty(t, LegalMoves(b, Black), "An anchored run on an odd board is not a move")
		require.Empty(t, LegalMoves(b, White))
		requireCounts(t, b)
	})
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(8)
	clone := b.Clone()

	require.True(t, clone.Place(Cell{0, 0}, Black))
	clone.Remove(Cell{3, 3})

	require.Equal(t, Empty, b.At(Cell{0, 0}), "Original should not see the clone's placement")
	require.Equal(t, White, b.At(Cell{3, 3}), "Original should not see the clone's removal")
	require.Equal(t, 60, b.EmptyCount())
	requireCounts(t, b)
	requireCounts(t, clone)
}

func TestBoardPlaceRemove(t *testing.T) {
	b := NewBoard(8)

	require.False(t, b.Place(Cell{3, 3}, Black), "Occupied cells cannot take a tile")
	require.False(t, b.Place(Cell{8, 0}, Black), "Off-board cells cannot take a tile")
	require.False(t, b.Place(Cell{0, 0}, Empty), "Empty is not a tile color")
	require.True(t, b.Place(Cell{0, 0}, Black))
	require.Equal(t, 3, b.Black())
	require.Equal(t, 59, b.EmptyCount())

	require.Equal(t, White, b.Remove(Cell{4, 4}))
	require.Equal(t, 1, b.White())
	require.Equal(t, 60, b.EmptyCount())
	require.Equal(t, Empty, b.Remove(Cell{-1, 2}))
	requireCounts(t, b)
}

func TestBoardGeometry(t *testing.T) {
	b := NewBoard(8)

	corners := b.Corners()
	require.Len(t, corners, 4)
	require.Equal(t, Cell{0, 0}, corners[0].Corner)
	require.Equal(t, Cell{7, 0}, corners[1].Corner)
	require.Equal(t, Cell{0, 7}, corners[2].Corner)
	require.Equal(t, Cell{7, 7}, corners[3].Corner)

	for _, c := range []Cell{{0, 0}, {7, 0}, {0, 7}, {7, 7}} {
		require.True(t, b.IsCorner(c), "%v should be a corner", c)
		require.True(t, b.IsEdge(c), "%v should be on an edge", c)
	}
	require.False(t, b.IsCorner(Cell{1, 0}))
	require.True(t, b.IsEdge(Cell{3, 7}))
	require.False(t, b.IsEdge(Cell{3, 6}))

	group, ok := b.CornerGroupOf(Cell{1, 1})
	require.True(t, ok)
	require.Equal(t, Cell{0, 0}, group.Corner)
	group, ok = b.CornerGroupOf(Cell{7, 6})
	require.True(t, ok)
	require.Equal(t, Cell{7, 7}, group.Corner)
	_, ok = b.CornerGroupOf(Cell{2, 2})
	require.False(t, ok, "Cells two steps from a corner are not X-squares")

	require.True(t, b.OnDiagonal(Cell{5, 5}))
	require.True(t, b.OnDiagonal(Cell{3, 4}))
	require.True(t, b.OnDiagonal(Cell{7, 0}))
	require.False(t, b.OnDiagonal(Cell{2, 4}))
}
