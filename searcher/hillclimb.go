package searcher

import (
	"github.com/rs/zerolog/log"
	"github.com/sei40kr/game-search-algorithms/game"
)

// HillClimb tries iterations neighbours of the best state so far and keeps a
// neighbour only when its score is strictly higher.
type HillClimb struct {
	settings
}

func NewHillClimb(options ...Option) *HillClimb {
	h := &HillClimb{settings: newSettings(options)}
	h.requireSource()
	return h
}

// PlayGame returns the best state found. The input itself is the first incumbent,
// so zero iterations return an unplayed clone of it.
func (h *HillClimb) PlayGame(state *game.GameState) *game.GameState {
	h.start()
	defer h.complete()

	best := state.Clone()
	improvements := 0

	for i := 0; i < h.iterations; i++ {
		next := neighbor(h.source, best, h.metrics)
		if next.Score() > best.Score() {
			best = next
			improvements++
		}
	}

	log.Debug().Msgf("hill climbing kept %d of %d neighbours, best score %d", improvements, h.iterations, best.Score())
	return best
}
