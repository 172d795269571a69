package experiments

import (
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sei40kr/game-search-algorithms/agent"
	"github.com/sei40kr/game-search-algorithms/game"
	"github.com/sei40kr/game-search-algorithms/meta"
	"gopkg.in/yaml.v3"
)

// Suite benchmarks several agents on the same sequence of seeded games.
type Suite struct {
	Name   string         `yaml:"name"`
	Trials int            `yaml:"trials"` // games per agent
	Seed   uint64         `yaml:"seed"`   // seed of the first game; trial i uses Seed+i
	Game   game.Config    `yaml:"game"`
	Agents []agent.Config `yaml:"agents"`
}

func (s Suite) Validate() error {
	var result *multierror.Error
	if s.Trials < 1 {
		result = multierror.Append(result, errors.Errorf("suite %q needs at least one trial, got %d", s.Name, s.Trials))
	}
	if err := s.Game.Validate(); err != nil {
		result = multierror.Append(result, errors.Wrapf(err, "suite %q game", s.Name))
	}
	if len(s.Agents) == 0 {
		result = multierror.Append(result, errors.Errorf("suite %q has no agents", s.Name))
	}
	for _, cfg := range s.Agents {
		if err := cfg.Validate(); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "suite %q agent %d", s.Name, cfg.ID))
		}
		if cfg.PerTurn() && s.Game.Movers != 1 {
			result = multierror.Append(result, errors.Errorf("suite %q agent %d: %s plays single-mover games only", s.Name, cfg.ID, cfg.Strategy))
		}
	}
	return result.ErrorOrNil()
}

// LoadSuites decodes a YAML list of suites; unknown fields are rejected.
func LoadSuites(r io.Reader) ([]Suite, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var suites []Suite
	if err := decoder.Decode(&suites); err != nil {
		return nil, errors.Wrap(err, "failed to decode suites")
	}
	for _, suite := range suites {
		if err := suite.Validate(); err != nil {
			return nil, err
		}
	}
	return suites, nil
}

// DefaultSuites reproduces the demonstration games: per-turn strategies on the
// small maze and local search on the multi-mover maze.
func DefaultSuites() []Suite {
	return []Suite{
		{
			Name:   "maze",
			Trials: meta.TRIALS,
			Game: game.Config{
				Height:      meta.MAZE_HEIGHT,
				Width:       meta.MAZE_WIDTH,
				Movers:      1,
				MaxTurns:    meta.MAZE_MAX_TURNS,
				RandomStart: true,
			},
			Agents: []agent.Config{
				{ID: 1, Strategy: agent.RandomStrategy},
				{ID: 2, Strategy: agent.GreedyStrategy},
				{ID: 3, Strategy: agent.BeamStrategy, Width: meta.BEAM_WIDTH, Depth: meta.BEAM_DEPTH},
				{ID: 4, Strategy: agent.ChokudaiStrategy, Width: meta.BEAM_WIDTH, Depth: meta.BEAM_DEPTH, Rounds: meta.CHOKUDAI_ROUNDS},
			},
		},
		{
			Name:   "auto-maze",
			Trials: meta.TRIALS,
			Game: game.Config{
				Height:   meta.AUTO_MAZE_HEIGHT,
				Width:    meta.AUTO_MAZE_WIDTH,
				Movers:   meta.AUTO_MAZE_MOVERS,
				MaxTurns: meta.AUTO_MAZE_MAX_TURNS,

				Transposed: true,
			},
			Agents: []agent.Config{
				{ID: 5, Strategy: agent.RandomPlacementStrategy},
				{ID: 6, Strategy: agent.HillClimbStrategy, Iterations: meta.ITERATIONS},
				{ID: 7, Strategy: agent.AnnealingStrategy, Iterations: meta.ITERATIONS, TempStart: meta.TEMP_START, TempEnd: meta.TEMP_END},
			},
		},
	}
}
