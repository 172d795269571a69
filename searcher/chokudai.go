package searcher

import (
	"github.com/rs/zerolog/log"
	"github.com/sei40kr/game-search-algorithms/game"
)

// ChokudaiSearch keeps one frontier per depth and, each round, moves up to width
// of the best candidates of every level one ply deeper. Repeated rounds widen the
// tree; the answer comes from the deepest level reached.
type ChokudaiSearch struct {
	settings
}

func NewChokudaiSearch(options ...Option) *ChokudaiSearch {
	return &ChokudaiSearch{settings: newSettings(options)}
}

func (c *ChokudaiSearch) ChooseAction(state *game.GameState) game.Action {
	c.start()
	defer c.complete()

	levels := c.search(state)
	for t := c.depth; t >= 0; t-- {
		if !levels[t].IsEmpty() {
			log.Trace().Msgf("chokudai answer from depth %d of %d", t, c.depth)
			return levels[t].Peek().action()
		}
	}
	panic("search found no action")
}

// search runs every round and returns the frontier of each depth, root first.
func (c *ChokudaiSearch) search(state *game.GameState) []*Frontier {
	levels := make([]*Frontier, c.depth+1)
	for i := range levels {
		levels[i] = NewFrontier()
	}
	levels[0].Push(root(state))

	for round := 0; round < c.rounds; round++ {
		for t := 0; t < c.depth; t++ {
			c.expand(levels[t], levels[t+1])
		}
	}
	return levels
}

// expand pops up to width candidates from current into next, stopping at an empty
// level or at a finished game.
func (c *ChokudaiSearch) expand(current, next *Frontier) {
	for i := 0; i < c.width; i++ {
		if current.IsEmpty() || current.Peek().state.IsGameOver() {
			return
		}

		parent := current.Pop()
		for _, action := range parent.state.ValidActions(0) {
			next.Push(parent.child(action))
			c.metrics.AddExpansion()
		}
	}
}
