package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes the work behind one search call.
type SearchMetric struct {
	Duration   time.Duration
	Expansions int64 // states generated by applying an action to a clone
	Rollouts   int64 // candidates played out to the end of the game
}

type MoveMetric struct {
	Step   int
	Action string
	Score  int // score after the move
	SearchMetric
}

type GameMetric struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Score      int
}

type Collector interface {
	Start()
	AddExpansion()
	AddRollout()
	Complete() SearchMetric
}

type collector struct {
	startTime  time.Time
	expansions atomic.Int64
	rollouts   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start() {
	m.startTime = time.Now()
	m.expansions.Store(0)
	m.rollouts.Store(0)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:   time.Since(m.startTime),
		Expansions: m.expansions.Load(),
		Rollouts:   m.rollouts.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddExpansion()          {}
func (m *dummyCollector) AddRollout()            {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
