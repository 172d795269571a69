package searcher

import (
	"github.com/sei40kr/game-search-algorithms/experiments/metrics"
	"github.com/sei40kr/game-search-algorithms/game"
)

// teleport moves mover i of state to a uniformly random cell. The mover index
// is drawn first, then the row, then the column.
func teleport(source game.Source, state *game.GameState, i int) {
	state.SetMoverPosition(i, source.Intn(state.Height()), source.Intn(state.Width()))
}

// neighbor relocates one uniformly chosen mover of a clone of state and plays
// the clone out greedily. A finished state is only relocated.
func neighbor(source game.Source, state *game.GameState, m metrics.Collector) *game.GameState {
	next := state.Clone()
	teleport(source, next, source.Intn(next.NumMovers()))
	return rollout(next, m)
}

// rollout advances state greedily to the end of the game, in place.
func rollout(state *game.GameState, m metrics.Collector) *game.GameState {
	for !state.IsGameOver() {
		state.AutoAdvance()
	}
	m.AddRollout()
	return state
}

// RandomPlacement drops every mover on a random cell and plays the game out.
type RandomPlacement struct {
	settings
}

func NewRandomPlacement(options ...Option) *RandomPlacement {
	r := &RandomPlacement{settings: newSettings(options)}
	r.requireSource()
	return r
}

func (r *RandomPlacement) PlayGame(state *game.GameState) *game.GameState {
	r.start()
	defer r.complete()

	next := state.Clone()
	for i := 0; i < next.NumMovers(); i++ {
		teleport(r.source, next, i)
	}
	return rollout(next, r.metrics)
}
