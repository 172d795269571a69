package searcher

import (
	"github.com/sei40kr/game-search-algorithms/experiments/metrics"
	"github.com/sei40kr/game-search-algorithms/game"
	"github.com/sei40kr/game-search-algorithms/meta"
)

type Option func(s *settings)

// settings holds the knobs shared by every strategy; each strategy reads the ones it needs.
type settings struct {
	width      int
	depth      int
	rounds     int
	iterations int
	tempStart  float64
	tempEnd    float64
	source     game.Source
	metrics    metrics.Collector
	last       metrics.SearchMetric
}

func WithWidth(width int) Option {
	return func(s *settings) {
		if width > 0 {
			s.width = width
		}
	}
}

func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithRounds(rounds int) Option {
	return func(s *settings) {
		if rounds > 0 {
			s.rounds = rounds
		}
	}
}

func WithIterations(iterations int) Option {
	return func(s *settings) {
		if iterations >= 0 {
			s.iterations = iterations
		}
	}
}

// WithTemperature sets the annealing schedule, interpolated linearly from start to end.
func WithTemperature(start, end float64) Option {
	return func(s *settings) {
		if start > 0 && end > 0 {
			s.tempStart = start
			s.tempEnd = end
		}
	}
}

func WithSource(source game.Source) Option {
	return func(s *settings) {
		if source != nil {
			s.source = source
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		width:      meta.BEAM_WIDTH,
		depth:      meta.BEAM_DEPTH,
		rounds:     meta.CHOKUDAI_ROUNDS,
		iterations: meta.ITERATIONS,
		tempStart:  meta.TEMP_START,
		tempEnd:    meta.TEMP_END,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s *settings) requireSource() {
	if s.source == nil {
		panic("randomized strategy needs a source")
	}
}

func (s *settings) start() {
	s.metrics.Start()
}

func (s *settings) complete() {
	s.last = s.metrics.Complete()
}

// LastSearch returns the metrics of the most recent call, zero unless WithMetrics was given.
func (s *settings) LastSearch() metrics.SearchMetric {
	return s.last
}
