package engine

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sei40kr/game-search-algorithms/agent"
	"github.com/sei40kr/game-search-algorithms/experiments/metrics"
	"github.com/sei40kr/game-search-algorithms/game"
)

type LocalEngine struct {
	Name   string
	Player agent.Player
}

func NewLocalEngine(name string, player agent.Player) *LocalEngine {
	if player == nil {
		panic("engine needs a player")
	}
	return &LocalEngine{Name: name, Player: player}
}

// Run drives per-turn agents one action at a time, recording a metric per move;
// whole-game players are run in one call and reported as a single move.
func (e *LocalEngine) Run(state *game.GameState) (*game.GameState, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	log.Debug().Msgf("%s is starting at turn %d of %d", e.Name, state.Turn(), state.MaxTurns())

	var final *game.GameState
	var moveMetrics []metrics.MoveMetric
	if adapter, ok := e.Player.(agent.Adapter); ok {
		final, moveMetrics = e.runTurns(adapter.Agent, state)
	} else {
		final = e.Player.PlayGame(state)
		moveMetrics = []metrics.MoveMetric{{
			Step:         final.Turn(),
			Action:       "playout",
			Score:        final.Score(),
			SearchMetric: lastSearch(e.Player),
		}}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = final.Turn() - state.Turn()
	gameMetric.Score = final.Score()

	log.Debug().Msgf("%s finished with score %d in %v", e.Name, final.Score(), gameMetric.Duration)
	return final, gameMetric, moveMetrics
}

func (e *LocalEngine) runTurns(a agent.Agent, state *game.GameState) (*game.GameState, []metrics.MoveMetric) {
	next := state.Clone()
	var moveMetrics []metrics.MoveMetric

	for !next.IsGameOver() {
		action := a.ChooseAction(next)
		next.Advance(action)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         next.Turn(),
			Action:       action.String(),
			Score:        next.Score(),
			SearchMetric: lastSearch(a),
		})
		log.Trace().Msgf("%s turn %d: %s, score %d", e.Name, next.Turn(), action, next.Score())
	}
	return next, moveMetrics
}

func lastSearch(v any) metrics.SearchMetric {
	if m, ok := v.(agent.Measured); ok {
		return m.LastSearch()
	}
	return metrics.SearchMetric{}
}
