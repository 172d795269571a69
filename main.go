package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sei40kr/game-search-algorithms/agent"
	"github.com/sei40kr/game-search-algorithms/experiments"
	"github.com/sei40kr/game-search-algorithms/experiments/metrics"
	"github.com/sei40kr/game-search-algorithms/game"
	"github.com/sei40kr/game-search-algorithms/meta"
)

func main() {
	mode := flag.String("mode", "play", "play a single game, or bench many")
	strategy := flag.String("agent", agent.BeamStrategy, "Strategy: random, greedy, beam, chokudai, random-placement, hillclimb, annealing")
	beamWidth := flag.Int("beam-width", meta.BEAM_WIDTH, "Candidates kept per depth")
	beamDepth := flag.Int("beam-depth", meta.BEAM_DEPTH, "Turns searched ahead")
	rounds := flag.Int("rounds", meta.CHOKUDAI_ROUNDS, "Chokudai widening rounds")
	iterations := flag.Int("iterations", meta.ITERATIONS, "Neighbours tried by local search")
	tempStart := flag.Float64("temp-start", meta.TEMP_START, "Initial annealing temperature")
	tempEnd := flag.Float64("temp-end", meta.TEMP_END, "Final annealing temperature")
	height := flag.Int("height", 0, "Board height (0 picks the demo size for the agent)")
	width := flag.Int("width", 0, "Board width (0 picks the demo size for the agent)")
	movers := flag.Int("movers", 0, "Number of movers (0 picks the demo count for the agent)")
	turns := flag.Int("turns", 0, "Maximum turns (0 picks the demo limit for the agent)")
	seed := flag.Uint64("seed", 0, "Random seed (0 seeds from the clock)")
	suitesPath := flag.String("suites", "", "YAML file of benchmark suites (default: the demo suites)")
	trials := flag.Int("trials", 0, "Override the number of trials of every suite")
	showMetrics := flag.Bool("metrics", false, "Print per-move search metrics as CSV")
	logLevel := flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	cfg := agent.Config{
		Strategy:   *strategy,
		Width:      *beamWidth,
		Depth:      *beamDepth,
		Rounds:     *rounds,
		Iterations: *iterations,
		TempStart:  *tempStart,
		TempEnd:    *tempEnd,
	}

	switch *mode {
	case "play":
		gameCfg := demoGame(cfg)
		override(&gameCfg.Height, *height)
		override(&gameCfg.Width, *width)
		override(&gameCfg.Movers, *movers)
		override(&gameCfg.MaxTurns, *turns)
		gameCfg.Seed = *seed
		err = play(gameCfg, cfg, *seed, *showMetrics)
	case "bench":
		err = bench(*suitesPath, *trials, *seed)
	default:
		err = errors.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

// demoGame returns the demonstration game matching the kind of strategy.
func demoGame(cfg agent.Config) game.Config {
	if cfg.PerTurn() {
		return game.Config{
			Height:      meta.MAZE_HEIGHT,
			Width:       meta.MAZE_WIDTH,
			Movers:      1,
			MaxTurns:    meta.MAZE_MAX_TURNS,
			RandomStart: true,
		}
	}
	return game.Config{
		Height:   meta.AUTO_MAZE_HEIGHT,
		Width:    meta.AUTO_MAZE_WIDTH,
		Movers:   meta.AUTO_MAZE_MOVERS,
		MaxTurns: meta.AUTO_MAZE_MAX_TURNS,

		Transposed: true,
	}
}

func override(dst *int, value int) {
	if value > 0 {
		*dst = value
	}
}

func play(gameCfg game.Config, cfg agent.Config, seed uint64, showMetrics bool) error {
	log.Info().Msgf("playing %s on a %dx%d board with %d movers for %d turns (seed %d)",
		cfg, gameCfg.Height, gameCfg.Width, gameCfg.Movers, gameCfg.MaxTurns, seed)

	final, moveMetrics, err := experiments.Play(gameCfg, cfg, ^seed)
	if err != nil {
		return err
	}

	fmt.Print(final)
	if showMetrics {
		return metrics.NewWriter(os.Stdout).WriteMoveMetrics(moveMetrics)
	}
	return nil
}

func bench(suitesPath string, trials int, seed uint64) error {
	suites := experiments.DefaultSuites()
	if suitesPath != "" {
		f, err := os.Open(suitesPath)
		if err != nil {
			return errors.Wrap(err, "failed to open suites")
		}
		defer f.Close()

		if suites, err = experiments.LoadSuites(f); err != nil {
			return err
		}
	}

	var summaries []experiments.Summary
	for _, suite := range suites {
		if trials > 0 {
			suite.Trials = trials
		}
		if suite.Seed == 0 {
			suite.Seed = seed
		}

		s, err := experiments.Run(suite)
		if err != nil {
			return err
		}
		summaries = append(summaries, s...)
	}

	return experiments.WriteReport(os.Stdout, summaries)
}
