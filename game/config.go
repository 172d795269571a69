package game

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Config describes how to build the initial state of a game.
type Config struct {
	Height      int    `yaml:"height"`
	Width       int    `yaml:"width"`
	Movers      int    `yaml:"movers"`
	MaxTurns    int    `yaml:"maxTurns"`
	Seed        uint64 `yaml:"seed"`
	RandomStart bool   `yaml:"randomStart"` // draw each mover's start cell after the board

	// Transposed collects and renders the cell at (col, row) while move choice and
	// teleports read (row, col). Requires a square board.
	Transposed bool `yaml:"transposed"`
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Height < 1 || c.Width < 1 {
		result = multierror.Append(result, errors.Errorf("board must be at least 1x1, got %dx%d", c.Height, c.Width))
	} else if c.Height < 2 && c.Width < 2 {
		result = multierror.Append(result, errors.New("a 1x1 board leaves no legal move"))
	}
	if c.Movers < 1 {
		result = multierror.Append(result, errors.Errorf("need at least one mover, got %d", c.Movers))
	}
	if c.MaxTurns < 0 {
		result = multierror.Append(result, errors.Errorf("max turns must not be negative, got %d", c.MaxTurns))
	}
	if c.Transposed && c.Height != c.Width {
		result = multierror.Append(result, errors.Errorf("transposed indexing needs a square board, got %dx%d", c.Height, c.Width))
	}
	return result.ErrorOrNil()
}
