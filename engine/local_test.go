package engine

import (
	"testing"

	"github.com/sei40kr/game-search-algorithms/agent"
	"github.com/sei40kr/game-search-algorithms/game"
	"github.com/sei40kr/game-search-algorithms/searcher"
	"github.com/stretchr/testify/require"
)

func TestLocalEngine(t *testing.T) {
	t.Run("records a metric per move of a per-turn agent", func(t *testing.T) {
		state := game.NewMaze(3, 3, 3, 4)
		e := NewLocalEngine("greedy", agent.Adapter{Agent: searcher.NewGreedy(searcher.WithMetrics())})

		final, gameMetric, moveMetrics := e.Run(state)

		require.True(t, final.IsGameOver())
		require.Equal(t, 0, state.Turn())
		require.Len(t, moveMetrics, 4)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			require.GreaterOrEqual(t, mm.Expansions, int64(2))
		}
		require.Equal(t, final.Score(), moveMetrics[3].Score)
		require.Equal(t, 4, gameMetric.TotalMoves)
		require.Equal(t, final.Score(), gameMetric.Score)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
	})

	t.Run("reports a whole game as one playout", func(t *testing.T) {
		state := game.NewAutoMaze(3, 5, 5, 3, 5)
		h := searcher.NewHillClimb(searcher.WithSource(game.NewSource(1)), searcher.WithIterations(10), searcher.WithMetrics())

		final, gameMetric, moveMetrics := NewLocalEngine("hillclimb", h).Run(state)

		require.Len(t, moveMetrics, 1)
		require.Equal(t, "playout", moveMetrics[0].Action)
		require.Equal(t, final.Score(), moveMetrics[0].Score)
		require.Equal(t, int64(10), moveMetrics[0].Rollouts)
		require.Equal(t, 5, gameMetric.TotalMoves)
	})

	t.Run("needs a player", func(t *testing.T) {
		require.Panics(t, func() { NewLocalEngine("nobody", nil) })
	})
}
