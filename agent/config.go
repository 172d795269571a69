package agent

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sei40kr/game-search-algorithms/game"
	"github.com/sei40kr/game-search-algorithms/searcher"
)

// Strategy names accepted by New.
const (
	RandomStrategy          = "random"
	GreedyStrategy          = "greedy"
	BeamStrategy            = "beam"
	ChokudaiStrategy        = "chokudai"
	RandomPlacementStrategy = "random-placement"
	HillClimbStrategy       = "hillclimb"
	AnnealingStrategy       = "annealing"
)

// Config selects a strategy and its parameters. Zero parameters fall back to defaults.
type Config struct {
	ID         int     `yaml:"id"`
	Strategy   string  `yaml:"strategy"`
	Width      int     `yaml:"width"`
	Depth      int     `yaml:"depth"`
	Rounds     int     `yaml:"rounds"`
	Iterations int     `yaml:"iterations"`
	TempStart  float64 `yaml:"tempStart"`
	TempEnd    float64 `yaml:"tempEnd"`
}

// PerTurn reports whether the strategy chooses one action at a time, which
// restricts it to single-mover games.
func (c Config) PerTurn() bool {
	switch c.Strategy {
	case RandomStrategy, GreedyStrategy, BeamStrategy, ChokudaiStrategy:
		return true
	}
	return false
}

// Randomized reports whether the strategy draws from a source.
func (c Config) Randomized() bool {
	switch c.Strategy {
	case GreedyStrategy, BeamStrategy, ChokudaiStrategy:
		return false
	}
	return true
}

func (c Config) Validate() error {
	var result *multierror.Error
	switch c.Strategy {
	case RandomStrategy, GreedyStrategy, BeamStrategy, ChokudaiStrategy,
		RandomPlacementStrategy, HillClimbStrategy, AnnealingStrategy:
	default:
		result = multierror.Append(result, errors.Errorf("unknown strategy %q", c.Strategy))
	}
	if c.Width < 0 {
		result = multierror.Append(result, errors.Errorf("width must not be negative, got %d", c.Width))
	}
	if c.Depth < 0 {
		result = multierror.Append(result, errors.Errorf("depth must not be negative, got %d", c.Depth))
	}
	if c.Rounds < 0 {
		result = multierror.Append(result, errors.Errorf("rounds must not be negative, got %d", c.Rounds))
	}
	if c.Iterations < 0 {
		result = multierror.Append(result, errors.Errorf("iterations must not be negative, got %d", c.Iterations))
	}
	if c.TempStart < 0 || c.TempEnd < 0 {
		result = multierror.Append(result, errors.Errorf("temperatures must not be negative, got %v..%v", c.TempStart, c.TempEnd))
	}
	if (c.TempStart == 0) != (c.TempEnd == 0) {
		result = multierror.Append(result, errors.New("set both temperatures or neither"))
	}
	return result.ErrorOrNil()
}

// String names the strategy and the parameters that were set.
func (c Config) String() string {
	s := c.Strategy
	switch c.Strategy {
	case BeamStrategy:
		s += fmt.Sprintf("(w=%d,d=%d)", c.Width, c.Depth)
	case ChokudaiStrategy:
		s += fmt.Sprintf("(w=%d,d=%d,c=%d)", c.Width, c.Depth, c.Rounds)
	case HillClimbStrategy:
		s += fmt.Sprintf("(n=%d)", c.Iterations)
	case AnnealingStrategy:
		s += fmt.Sprintf("(n=%d,t=%v..%v)", c.Iterations, c.TempStart, c.TempEnd)
	}
	return s
}

func (c Config) options(source game.Source, withMetrics bool) []searcher.Option {
	options := []searcher.Option{
		searcher.WithWidth(c.Width),
		searcher.WithDepth(c.Depth),
		searcher.WithRounds(c.Rounds),
		searcher.WithSource(source),
		searcher.WithTemperature(c.TempStart, c.TempEnd),
	}
	if c.Iterations > 0 {
		options = append(options, searcher.WithIterations(c.Iterations))
	}
	if withMetrics {
		options = append(options, searcher.WithMetrics())
	}
	return options
}

// New builds the player described by cfg. Randomized strategies draw from source.
func New(cfg Config, source game.Source, withMetrics bool) (Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid agent config %s", cfg)
	}
	if cfg.Randomized() && source == nil {
		return nil, errors.Errorf("strategy %s needs a random source", cfg.Strategy)
	}
	options := cfg.options(source, withMetrics)

	switch cfg.Strategy {
	case RandomStrategy:
		return Adapter{searcher.NewRandom(options...)}, nil
	case GreedyStrategy:
		return Adapter{searcher.NewGreedy(options...)}, nil
	case BeamStrategy:
		return Adapter{searcher.NewBeamSearch(options...)}, nil
	case ChokudaiStrategy:
		return Adapter{searcher.NewChokudaiSearch(options...)}, nil
	case RandomPlacementStrategy:
		return searcher.NewRandomPlacement(options...), nil
	case HillClimbStrategy:
		return searcher.NewHillClimb(options...), nil
	case AnnealingStrategy:
		return searcher.NewSimulatedAnnealing(options...), nil
	}
	return nil, errors.Errorf("unknown strategy %q", cfg.Strategy)
}
