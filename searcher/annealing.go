package searcher

import (
	"math"

	"github.com/rs/zerolog/log"
	"github.com/sei40kr/game-search-algorithms/game"
)

// SimulatedAnnealing explores neighbours like HillClimb but may accept a worse
// neighbour with probability exp(delta/T), T falling linearly over the run.
type SimulatedAnnealing struct {
	settings
}

func NewSimulatedAnnealing(options ...Option) *SimulatedAnnealing {
	s := &SimulatedAnnealing{settings: newSettings(options)}
	s.requireSource()
	if s.tempStart <= 0 || s.tempEnd <= 0 {
		panic("annealing temperatures must be positive")
	}
	return s
}

func (s *SimulatedAnnealing) PlayGame(state *game.GameState) *game.GameState {
	best, _ := s.Anneal(state)
	return best
}

// Anneal returns the best state ever seen and the state accepted last. Both
// start as clones of the input.
func (s *SimulatedAnnealing) Anneal(state *game.GameState) (best, current *game.GameState) {
	s.start()
	defer s.complete()

	current = state.Clone()
	best = current
	accepted := 0

	for i := 0; i < s.iterations; i++ {
		next := neighbor(s.source, current, s.metrics)

		if next.Score() > best.Score() {
			best = next
		}

		delta := next.Score() - current.Score()
		if delta > 0 || s.source.Float64() < s.acceptance(delta, i) {
			current = next
			accepted++
		}
	}

	log.Debug().Msgf("annealing accepted %d of %d neighbours, best score %d", accepted, s.iterations, best.Score())
	return best, current
}

func (s *SimulatedAnnealing) temperature(i int) float64 {
	return s.tempStart + (s.tempEnd-s.tempStart)*float64(i)/float64(s.iterations)
}

func (s *SimulatedAnnealing) acceptance(delta, i int) float64 {
	return math.Min(1, math.Exp(float64(delta)/s.temperature(i)))
}
