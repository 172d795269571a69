package searcher

import (
	"github.com/sei40kr/game-search-algorithms/game"
)

// trap is a board where the greedy first step (right, 5 points) leads away
// from the two 9s reachable by going down first.
func trap(maxTurns int) *game.GameState {
	return game.NewFromPoints([][]int{
		{0, 5, 0},
		{1, 0, 0},
		{9, 9, 0},
	}, maxTurns, game.Position{})
}

// play drives a clone of state with chooser until the game ends.
func play(chooser interface {
	ChooseAction(*game.GameState) game.Action
}, state *game.GameState) *game.GameState {
	next := state.Clone()
	for !next.IsGameOver() {
		next.Advance(chooser.ChooseAction(next))
	}
	return next
}
