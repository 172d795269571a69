package engine

import (
	"github.com/sei40kr/game-search-algorithms/experiments/metrics"
	"github.com/sei40kr/game-search-algorithms/game"
)

type Engine interface {
	// Run plays a clone of state to the end of the game
	Run(state *game.GameState) (final *game.GameState, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
