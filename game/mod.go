package game

import "golang.org/x/exp/rand"

// Source supplies the uniform draws consumed by every randomized component.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSource returns a PCG-backed source; identical seeds produce identical streams.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Minimum and maximum (exclusive) point value of a fresh cell.
const (
	MinPoint = 1
	MaxPoint = 10
)
