package game

import (
	"fmt"
	"strings"
)

// Position is a mover's cell.
type Position struct {
	Row int
	Col int
}

// GameState is one point-collection game: a board shared by one or more movers.
// Advance, AutoAdvance and SetMoverPosition are the only mutators; searches explore
// alternatives on clones.
type GameState struct {
	board      Board
	movers     []Position
	turn       int
	maxTurns   int
	score      int
	transposed bool
}

// New builds the initial state described by cfg. It panics on an invalid config;
// call cfg.Validate first when the config comes from user input.
func New(cfg Config) *GameState {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid game config: %v", err))
	}

	src := NewSource(cfg.Seed)
	gs := &GameState{
		board:      newBoard(cfg.Height, cfg.Width, src),
		movers:     make([]Position, cfg.Movers),
		maxTurns:   cfg.MaxTurns,
		transposed: cfg.Transposed,
	}
	if cfg.RandomStart {
		for i := range gs.movers {
			gs.movers[i] = Position{Row: src.Intn(cfg.Height), Col: src.Intn(cfg.Width)}
		}
	}
	return gs
}

// NewMaze returns a single-mover game whose mover starts on a seeded random cell.
func NewMaze(seed uint64, height, width, maxTurns int) *GameState {
	return New(Config{Height: height, Width: width, Movers: 1, MaxTurns: maxTurns, Seed: seed, RandomStart: true})
}

// NewAutoMaze returns a game whose movers all start in the top-left corner, with
// the transposed collection of the multi-mover maze. The board must be square.
func NewAutoMaze(seed uint64, height, width, movers, maxTurns int) *GameState {
	return New(Config{Height: height, Width: width, Movers: movers, MaxTurns: maxTurns, Seed: seed, Transposed: true})
}

// NewFromPoints builds a game over a fixed board, for hand-made puzzles and tests.
// Rows must have equal length and every mover must be on the board.
func NewFromPoints(points [][]int, maxTurns int, movers ...Position) *GameState {
	if len(points) == 0 || len(points[0]) == 0 {
		panic("board must not be empty")
	}
	if len(movers) == 0 {
		panic("need at least one mover")
	}

	height, width := len(points), len(points[0])
	flat := make([]int, 0, height*width)
	for _, row := range points {
		if len(row) != width {
			panic("board rows must have equal length")
		}
		for _, p := range row {
			if p < 0 {
				panic("point values must not be negative")
			}
		}
		flat = append(flat, row...)
	}

	gs := &GameState{
		board:    Board{height: height, width: width, points: flat},
		movers:   make([]Position, len(movers)),
		maxTurns: maxTurns,
	}
	for i, m := range movers {
		if !gs.board.Contains(m.Row, m.Col) {
			panic(fmt.Sprintf("mover %d starts off the board", i))
		}
		gs.movers[i] = m
	}
	return gs
}

// Clone returns a deep copy that shares nothing mutable with gs.
func (gs *GameState) Clone() *GameState {
	movers := make([]Position, len(gs.movers))
	copy(movers, gs.movers)

	return &GameState{
		board:      gs.board.clone(),
		movers:     movers,
		turn:       gs.turn,
		maxTurns:   gs.maxTurns,
		score:      gs.score,
		transposed: gs.transposed,
	}
}

func (gs *GameState) Height() int    { return gs.board.height }
func (gs *GameState) Width() int     { return gs.board.width }
func (gs *GameState) Turn() int      { return gs.turn }
func (gs *GameState) MaxTurns() int  { return gs.maxTurns }
func (gs *GameState) Score() int     { return gs.score }
func (gs *GameState) NumMovers() int { return len(gs.movers) }

// Mover returns the position of mover i.
func (gs *GameState) Mover(i int) Position {
	gs.checkMover(i)
	return gs.movers[i]
}

// Player returns the position of the only mover of a single-mover game.
func (gs *GameState) Player() Position {
	if len(gs.movers) != 1 {
		panic(fmt.Sprintf("state has %d movers, not one", len(gs.movers)))
	}
	return gs.movers[0]
}

// Point returns the value still collectable at (row, col).
func (gs *GameState) Point(row, col int) int {
	return gs.board.Point(row, col)
}

// IsGameOver reports whether the turn limit has been reached.
func (gs *GameState) IsGameOver() bool {
	return gs.turn >= gs.maxTurns
}

// ValidActions returns, in Up, Down, Left, Right order, every step that keeps
// mover i on the board.
func (gs *GameState) ValidActions(i int) []Action {
	gs.checkMover(i)

	m := gs.movers[i]
	actions := make([]Action, 0, len(Actions))
	if m.Row > 0 {
		actions = append(actions, Up)
	}
	if m.Row < gs.board.height-1 {
		actions = append(actions, Down)
	}
	if m.Col > 0 {
		actions = append(actions, Left)
	}
	if m.Col < gs.board.width-1 {
		actions = append(actions, Right)
	}
	return actions
}

// Advance plays one round: mover i takes actions[i], in index order, then the turn
// counter moves on. It takes exactly one action per mover.
func (gs *GameState) Advance(actions ...Action) {
	if gs.IsGameOver() {
		panic("cannot advance a finished game")
	}
	if len(actions) != len(gs.movers) {
		panic(fmt.Sprintf("got %d actions for %d movers", len(actions), len(gs.movers)))
	}

	for i, action := range actions {
		gs.move(i, action)
	}
	gs.turn++
}

// AutoAdvance plays one round in which every mover steps to its valid neighbour
// holding the most points, the first such neighbour in action order on ties.
func (gs *GameState) AutoAdvance() {
	if gs.IsGameOver() {
		panic("cannot advance a finished game")
	}

	for i := range gs.movers {
		gs.move(i, gs.BestLocalAction(i))
	}
	gs.turn++
}

// BestLocalAction returns the valid action of mover i whose destination holds
// the most points.
func (gs *GameState) BestLocalAction(i int) Action {
	actions := gs.ValidActions(i)
	if len(actions) == 0 {
		panic("mover has no valid action")
	}

	m := gs.movers[i]
	best, bestPoint := actions[0], -1
	for _, action := range actions {
		dr, dc := action.delta()
		if p := gs.board.Point(m.Row+dr, m.Col+dc); p > bestPoint {
			best, bestPoint = action, p
		}
	}
	return best
}

// SetMoverPosition teleports mover i and collects the destination as if visited.
func (gs *GameState) SetMoverPosition(i, row, col int) {
	gs.checkMover(i)
	if !gs.board.Contains(row, col) {
		panic(fmt.Sprintf("position (%d, %d) is off the %dx%d board", row, col, gs.board.height, gs.board.width))
	}

	gs.movers[i] = Position{Row: row, Col: col}
	gs.score += gs.board.collect(row, col)
}

func (gs *GameState) move(i int, action Action) {
	m := &gs.movers[i]
	dr, dc := action.delta()
	row, col := m.Row+dr, m.Col+dc
	if !gs.board.Contains(row, col) {
		panic(fmt.Sprintf("action %s takes mover %d off the board", action, i))
	}

	m.Row, m.Col = row, col
	if gs.transposed {
		row, col = col, row
	}
	gs.score += gs.board.collect(row, col)
}

func (gs *GameState) checkMover(i int) {
	if i < 0 || i >= len(gs.movers) {
		panic(fmt.Sprintf("invalid mover index %d for %d movers", i, len(gs.movers)))
	}
}

// String renders the turn, the score and the board: '@' for a mover, the digit of
// an uncollected cell, '.' for a collected one.
func (gs *GameState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn:\t%d\n", gs.turn)
	fmt.Fprintf(&sb, "score:\t%d\n", gs.score)

	for row := 0; row < gs.board.height; row++ {
		for col := 0; col < gs.board.width; col++ {
			r, c := row, col
			if gs.transposed {
				r, c = col, row
			}
			switch p := gs.board.Point(r, c); {
			case gs.occupied(row, col):
				sb.WriteByte('@')
			case p > 0:
				fmt.Fprintf(&sb, "%d", p)
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (gs *GameState) occupied(row, col int) bool {
	for _, m := range gs.movers {
		if m.Row == row && m.Col == col {
			return true
		}
	}
	return false
}
