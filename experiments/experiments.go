package experiments

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sei40kr/game-search-algorithms/agent"
	"github.com/sei40kr/game-search-algorithms/engine"
	"github.com/sei40kr/game-search-algorithms/experiments/metrics"
	"github.com/sei40kr/game-search-algorithms/game"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the final scores of one agent over a suite.
type Summary struct {
	Suite      string
	Agent      agent.Config
	Trials     int
	Mean       float64
	StdDev     float64
	Min        float64
	Max        float64
	Duration   time.Duration
	Expansions int64
	Rollouts   int64
}

// Run plays every agent of the suite on the same Trials games and summarizes
// their scores, best mean first.
func Run(suite Suite) ([]Summary, error) {
	if err := suite.Validate(); err != nil {
		return nil, err
	}

	log.Info().Msgf("starting %s suite with %d agents x %d trials...", suite.Name, len(suite.Agents), suite.Trials)

	summaries := make([]Summary, 0, len(suite.Agents))
	for ai, cfg := range suite.Agents {
		log.Info().Msgf("starting agent %d of %d: %s", ai+1, len(suite.Agents), cfg)

		summary, err := runAgent(suite, cfg)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)

		log.Info().Msgf("completed agent %s: mean score %.2f", cfg, summary.Mean)
	}

	log.Info().Msgf("completed %s suite", suite.Name)

	slices.SortStableFunc(summaries, func(a, b Summary) int {
		switch {
		case a.Mean > b.Mean:
			return -1
		case a.Mean < b.Mean:
			return 1
		}
		return 0
	})
	return summaries, nil
}

func runAgent(suite Suite, cfg agent.Config) (Summary, error) {
	scores := make([]float64, 0, suite.Trials)
	summary := Summary{Suite: suite.Name, Agent: cfg, Trials: suite.Trials}

	for i := 0; i < suite.Trials; i++ {
		seed := suite.Seed + uint64(i)
		player, err := agent.New(cfg, game.NewSource(^seed), true)
		if err != nil {
			return Summary{}, errors.Wrapf(err, "suite %s", suite.Name)
		}

		gameCfg := suite.Game
		gameCfg.Seed = seed
		e := engine.NewLocalEngine(cfg.String(), player)
		final, gameMetric, moveMetrics := e.Run(game.New(gameCfg))

		scores = append(scores, float64(final.Score()))
		summary.Duration += gameMetric.Duration
		for _, mm := range moveMetrics {
			summary.Expansions += mm.Expansions
			summary.Rollouts += mm.Rollouts
		}
	}

	summary.Mean, summary.StdDev = stat.MeanStdDev(scores, nil)
	if len(scores) < 2 {
		summary.StdDev = 0
	}
	summary.Min = floats.Min(scores)
	summary.Max = floats.Max(scores)
	return summary, nil
}

// Play runs a single game and returns its final state with per-move metrics.
func Play(gameCfg game.Config, cfg agent.Config, seed uint64) (*game.GameState, []metrics.MoveMetric, error) {
	if err := gameCfg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid game config")
	}
	if cfg.PerTurn() && gameCfg.Movers != 1 {
		return nil, nil, errors.Errorf("%s plays single-mover games only", cfg.Strategy)
	}

	player, err := agent.New(cfg, game.NewSource(seed), true)
	if err != nil {
		return nil, nil, err
	}

	e := engine.NewLocalEngine(cfg.String(), player)
	final, _, moveMetrics := e.Run(game.New(gameCfg))
	return final, moveMetrics, nil
}

// WriteReport renders summaries as CSV.
func WriteReport(w io.Writer, summaries []Summary) error {
	records := make([]metrics.SummaryRecord, len(summaries))
	for i, s := range summaries {
		records[i] = metrics.SummaryRecord{
			Suite:      s.Suite,
			Agent:      s.Agent.String(),
			Trials:     s.Trials,
			Mean:       s.Mean,
			StdDev:     s.StdDev,
			Min:        s.Min,
			Max:        s.Max,
			Duration:   s.Duration.String(),
			Expansions: s.Expansions,
			Rollouts:   s.Rollouts,
		}
	}
	return errors.Wrap(metrics.NewWriter(w).WriteSummaries(records), "failed to write report")
}
