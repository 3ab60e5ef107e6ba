package game

// Color is the occupant of a cell.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// Opponent returns the other player's color, or Empty for Empty.
func Opponent(c Color) Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// Cell addresses a square by board index. X is the column, Y is the row.
type Cell struct {
	X, Y int
}

// Direction is a unit step on the board.
type Direction struct {
	DX, DY int
}

// Directions lists the 8 scan vectors, (0,0) excluded.
var Directions = [8]Direction{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
