package searcher

import (
	"github.com/rs/zerolog/log"
	"github.com/sei40kr/game-search-algorithms/game"
)

// BeamSearch keeps the width best states at each of depth plies and plays the
// first action of the best one. Nothing is reused between turns.
type BeamSearch struct {
	settings
}

func NewBeamSearch(options ...Option) *BeamSearch {
	return &BeamSearch{settings: newSettings(options)}
}

func (b *BeamSearch) ChooseAction(state *game.GameState) game.Action {
	b.start()
	defer b.complete()

	beam := []candidate{root(state)}
	for depth := 0; depth < b.depth; depth++ {
		next := NewFrontier()
		for _, c := range beam {
			if c.state.IsGameOver() {
				continue
			}
			for _, action := range c.state.ValidActions(0) {
				next.Push(c.child(action))
				b.metrics.AddExpansion()
			}
		}

		if next.IsEmpty() {
			log.Trace().Msgf("beam exhausted at depth %d", depth)
			break
		}
		beam = next.Best(b.width)
	}

	return beam[0].action()
}
