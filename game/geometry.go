package game

import "sync"

// CornerGroup is a corner cell together with the three X-squares around it.
type CornerGroup struct {
	Corner   Cell
	XSquares [3]Cell
}

// geometry holds the static per-size lookup tables shared by every board of that size.
// It is never mutated after construction, so clones share the pointer.
type geometry struct {
	size     int
	corners  []CornerGroup
	xSquare  [MaxSize * MaxSize]int8 // index into corners, -1 when not an X-square
	corner   [MaxSize * MaxSize]bool
	edge     [MaxSize * MaxSize]bool
	diagonal [MaxSize * MaxSize]bool
}

var geometries sync.Map // int -> *geometry

func geometryFor(size int) *geometry {
	if g, ok := geometries.Load(size); ok {
		return g.(*geometry)
	}
	g, _ := geometries.LoadOrStore(size, newGeometry(size))
	return g.(*geometry)
}

func newGeometry(size int) *geometry {
	g := &geometry{size: size}
	for i := range g.xSquare {
		g.xSquare[i] = -1
	}
	if size < 2 {
		return g
	}

	last := size - 1
	g.corners = []CornerGroup{
		{Corner: Cell{0, 0}, XSquares: [3]Cell{{1, 0}, {1, 1}, {0, 1}}},
		{Corner: Cell{last, 0}, XSquares: [3]Cell{{last - 1, 0}, {last - 1, 1}, {last, 1}}},
		{Corner: Cell{0, last}, XSquares: [3]Cell{{0, last - 1}, {1, last - 1}, {1, last}}},
		{Corner: Cell{last, last}, XSquares: [3]Cell{{last - 1, last}, {last - 1, last - 1}, {last, last - 1}}},
	}
	// Later groups win on overlap, which only happens on 2x2 boards.
	for gi, group := range g.corners {
		g.corner[index(group.Corner)] = true
		for _, x := range group.XSquares {
			g.xSquare[index(x)] = int8(gi)
		}
	}

	for i := 0; i < size; i++ {
		g.diagonal[index(Cell{i, i})] = true
		g.diagonal[index(Cell{i, last - i})] = true

		g.edge[index(Cell{i, 0})] = true
		g.edge[index(Cell{i, last})] = true
		g.edge[index(Cell{0, i})] = true
		g.edge[index(Cell{last, i})] = true
	}
	return g
}

// index maps an in-bounds cell to its slot in the fixed-stride cell array.
func index(c Cell) int {
	return c.Y*MaxSize + c.X
}
