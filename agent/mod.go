package agent

import (
	"github.com/sei40kr/game-search-algorithms/experiments/metrics"
	"github.com/sei40kr/game-search-algorithms/game"
)

// Agent chooses the next action of a single-mover game.
type Agent interface {
	ChooseAction(state *game.GameState) game.Action
}

// Player plays a whole game and returns its final state, leaving the input untouched.
type Player interface {
	PlayGame(state *game.GameState) *game.GameState
}

// Measured is implemented by strategies that can report on their latest search.
type Measured interface {
	LastSearch() metrics.SearchMetric
}

// Play drives a clone of state with a until the game is over.
func Play(a Agent, state *game.GameState) *game.GameState {
	next := state.Clone()
	for !next.IsGameOver() {
		next.Advance(a.ChooseAction(next))
	}
	return next
}

// Adapter turns an Agent into a Player.
type Adapter struct {
	Agent
}

func (a Adapter) PlayGame(state *game.GameState) *game.GameState {
	return Play(a.Agent, state)
}
