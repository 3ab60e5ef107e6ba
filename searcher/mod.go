package searcher

import "fmt"

// Difficulty selects the policy the computer uses to pick a move.
type Difficulty int

const (
	Easy   Difficulty = iota // uniform random legal move
	Medium                   // most flips, first found on ties
	Hard                     // fixed-depth heuristic lookahead
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty accepts the full names as well as the single letters e, m and h.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "e", "easy":
		return Easy, nil
	case "m", "medium":
		return Medium, nil
	case "h", "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// MaxDepth is the number of plies the Hard policy looks ahead.
const MaxDepth = 3

// Weights are the heuristic terms of the Hard policy. Every term is divided by the
// 1-based ply at which it is applied.
type Weights struct {
	// Plies of the side choosing the move.
	Corner       float64
	Edge         float64
	XSquare      float64 // subtracted while the corner is still empty
	FlippedTile  float64 // per tile of the best reachable flip count
	XSquareFlip  float64 // subtracted per flipped tile on an X-square of an empty corner
	DiagonalFlip float64 // per flipped tile on a corner-to-corner diagonal

	// Plies of the modeled opponent; signs are reversed.
	OpponentCorner      float64
	OpponentEdge        float64
	OpponentXSquare     float64
	OpponentFlippedTile float64
}

// DefaultWeights are the tuned weights used unless WithWeights overrides them.
var DefaultWeights = Weights{
	Corner:       0.7,
	Edge:         0.15,
	XSquare:      0.7,
	FlippedTile:  0.1,
	XSquareFlip:  0.2,
	DiagonalFlip: 0.15,

	OpponentCorner:      0.2,
	OpponentEdge:        0.1,
	OpponentXSquare:     0.4,
	OpponentFlippedTile: 0.05,
}
