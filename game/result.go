package game

import "othello/meta"

// Winner returns the color with strictly more tiles, or Empty on a tie.
func Winner(b *Board) Color {
	switch {
	case b.black > b.white:
		return Black
	case b.white > b.black:
		return White
	}
	return Empty
}

// Over reports whether play has ended: the board is full, or both sides have passed in
// a row.
func Over(b *Board, consecutivePasses int) bool {
	return b.empty == 0 || consecutivePasses >= meta.MAX_TURN_PASSES
}
