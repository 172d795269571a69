package searcher

import (
	"github.com/sei40kr/game-search-algorithms/game"
	"github.com/sei40kr/game-search-algorithms/utils"
)

// candidate is a hypothetical state together with the first action taken from the
// real state towards it. The root has no first action yet.
type candidate struct {
	state *game.GameState
	first game.Action
	taken bool
}

func root(state *game.GameState) candidate {
	return candidate{state: state.Clone()}
}

// child applies action to a clone of c's state.
func (c candidate) child(action game.Action) candidate {
	next := c.state.Clone()
	next.Advance(action)

	first := c.first
	if !c.taken {
		first = action
	}
	return candidate{state: next, first: first, taken: true}
}

// action returns the first action, panicking for a root that never expanded.
func (c candidate) action() game.Action {
	if !c.taken {
		panic("search found no action")
	}
	return c.first
}

type entry struct {
	candidate
	seq int
}

// Frontier orders candidates by score, earlier insertions first among equal scores.
type Frontier struct {
	heap *utils.Heap[entry]
	seq  int
}

func NewFrontier() *Frontier {
	return &Frontier{heap: utils.NewHeap(func(a, b entry) bool {
		if sa, sb := a.state.Score(), b.state.Score(); sa != sb {
			return sa > sb
		}
		return a.seq < b.seq
	})}
}

func (f *Frontier) Len() int { return f.heap.Len() }

func (f *Frontier) IsEmpty() bool { return f.heap.IsEmpty() }

func (f *Frontier) Push(c candidate) {
	f.heap.Push(entry{candidate: c, seq: f.seq})
	f.seq++
}

func (f *Frontier) Peek() candidate {
	return f.heap.Peek().candidate
}

func (f *Frontier) Pop() candidate {
	return f.heap.Pop().candidate
}

// Best removes and returns up to n candidates, best first.
func (f *Frontier) Best(n int) []candidate {
	best := make([]candidate, 0, min(n, f.Len()))
	for len(best) < n && !f.IsEmpty() {
		best = append(best, f.Pop())
	}
	return best
}
