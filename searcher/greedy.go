package searcher

import "github.com/sei40kr/game-search-algorithms/game"

// Greedy takes the action whose immediate result scores highest.
type Greedy struct {
	settings
}

func NewGreedy(options ...Option) *Greedy {
	return &Greedy{settings: newSettings(options)}
}

func (g *Greedy) ChooseAction(state *game.GameState) game.Action {
	g.start()
	defer g.complete()

	actions := state.ValidActions(0)
	if len(actions) == 0 {
		panic("no valid action")
	}

	best, bestScore := actions[0], -1
	for _, action := range actions {
		next := state.Clone()
		next.Advance(action)
		g.metrics.AddExpansion()

		if next.Score() > bestScore {
			best, bestScore = action, next.Score()
		}
	}
	return best
}
