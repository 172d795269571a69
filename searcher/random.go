package searcher

import "github.com/sei40kr/game-search-algorithms/game"

// Random picks a uniformly random valid action every turn.
type Random struct {
	settings
}

func NewRandom(options ...Option) *Random {
	r := &Random{settings: newSettings(options)}
	r.requireSource()
	return r
}

func (r *Random) ChooseAction(state *game.GameState) game.Action {
	actions := state.ValidActions(0)
	if len(actions) == 0 {
		panic("no valid action")
	}
	return actions[r.source.Intn(len(actions))]
}
