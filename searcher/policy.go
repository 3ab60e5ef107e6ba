package searcher

import (
	"othello/game"

	"golang.org/x/exp/rand"
)

func pickRandom(moves []game.LegalMove, r *rand.Rand) (game.LegalMove, bool) {
	if len(moves) == 0 {
		return game.LegalMove{}, false
	}
	return moves[r.Intn(len(moves))], true
}

// pickGreedy takes the move with the most flips; the earliest wins a tie.
func pickGreedy(moves []game.LegalMove) (game.LegalMove, bool) {
	if len(moves) == 0 {
		return game.LegalMove{}, false
	}
	best := 0
	for i := 1; i < len(moves); i++ {
		if moves[i].FlipCount > moves[best].FlipCount {
			best = i
		}
	}
	return moves[best], true
}

// pickBest takes the move with the greatest MoveValue. The comparison is strict, so the
// first of several equal moves in scan order is kept.
func pickBest(moves []game.LegalMove) (game.LegalMove, bool) {
	if len(moves) == 0 {
		return game.LegalMove{}, false
	}
	best := 0
	for i := 1; i < len(moves); i++ {
		if moves[i].MoveValue > moves[best].MoveValue {
			best = i
		}
	}
	return moves[best], true
}
