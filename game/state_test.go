package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("same seed builds the same game", func(t *testing.T) {
		cfg := Config{Height: 4, Width: 6, Movers: 2, MaxTurns: 5, Seed: 42, RandomStart: true}

		a, b := New(cfg), New(cfg)

		require.Equal(t, a, b, "States built from identical configs should be identical")
	})

	t.Run("different seeds build different boards", func(t *testing.T) {
		a := NewMaze(1, 5, 5, 4)
		b := NewMaze(2, 5, 5, 4)

		require.NotEqual(t, a.board.points, b.board.points, "25 draws from different seeds should differ")
	})

	t.Run("point values lie in [1, 10)", func(t *testing.T) {
		gs := NewAutoMaze(7, 8, 8, 3, 5)

		for _, p := range gs.board.points {
			require.GreaterOrEqual(t, p, MinPoint)
			require.Less(t, p, MaxPoint)
		}
	})

	t.Run("auto maze movers start in the corner", func(t *testing.T) {
		gs := NewAutoMaze(7, 5, 5, 3, 5)

		for i := 0; i < gs.NumMovers(); i++ {
			require.Equal(t, Position{}, gs.Mover(i))
		}
		require.Equal(t, 0, gs.Score(), "Placing movers at construction should not collect")
		require.Equal(t, 0, gs.Turn())
	})

	t.Run("auto maze collects transposed", func(t *testing.T) {
		gs := NewAutoMaze(7, 5, 5, 1, 5)
		want := gs.Point(1, 0)

		gs.Advance(Right)

		require.Equal(t, want, gs.Score())
		require.Equal(t, 0, gs.Point(1, 0))
		require.Equal(t, Position{Row: 0, Col: 1}, gs.Mover(0))
	})

	t.Run("auto maze needs a square board", func(t *testing.T) {
		require.Panics(t, func() { NewAutoMaze(7, 4, 5, 2, 5) })
	})

	t.Run("maze mover starts on the board", func(t *testing.T) {
		for seed := uint64(0); seed < 50; seed++ {
			gs := NewMaze(seed, 3, 4, 4)
			p := gs.Player()
			require.True(t, gs.board.Contains(p.Row, p.Col), "Mover should start on the board")
		}
	})

	t.Run("panics on an invalid config", func(t *testing.T) {
		require.Panics(t, func() {
			New(Config{Height: 3, Width: 3, Movers: 0, MaxTurns: 1})
		})
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("accepts a sane config", func(t *testing.T) {
		require.NoError(t, Config{Height: 3, Width: 3, Movers: 1, MaxTurns: 4}.Validate())
	})

	t.Run("reports every violation", func(t *testing.T) {
		err := Config{Height: 0, Width: 3, Movers: 0, MaxTurns: -1}.Validate()

		require.Error(t, err)
		require.Contains(t, err.Error(), "3 errors occurred")
	})

	t.Run("rejects a board without legal moves", func(t *testing.T) {
		require.Error(t, Config{Height: 1, Width: 1, Movers: 1}.Validate())
	})

	t.Run("rejects transposed indexing on a rectangular board", func(t *testing.T) {
		require.Error(t, Config{Height: 2, Width: 3, Movers: 1, Transposed: true}.Validate())
	})
}

func TestValidActions(t *testing.T) {
	points := [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}

	t.Run("top-left corner", func(t *testing.T) {
		gs := NewFromPoints(points, 4, Position{0, 0})
		require.Equal(t, []Action{Down, Right}, gs.ValidActions(0))
	})

	t.Run("bottom-right corner", func(t *testing.T) {
		gs := NewFromPoints(points, 4, Position{2, 2})
		require.Equal(t, []Action{Up, Left}, gs.ValidActions(0))
	})

	t.Run("centre", func(t *testing.T) {
		gs := NewFromPoints(points, 4, Position{1, 1})
		require.Equal(t, []Action{Up, Down, Left, Right}, gs.ValidActions(0))
	})

	t.Run("panics on an invalid mover index", func(t *testing.T) {
		gs := NewFromPoints(points, 4, Position{1, 1})
		require.Panics(t, func() { gs.ValidActions(1) })
		require.Panics(t, func() { gs.ValidActions(-1) })
	})
}

func TestAdvance(t *testing.T) {
	points := [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}

	t.Run("moves, collects and ends the round", func(t *testing.T) {
		gs := NewFromPoints(points, 4, Position{0, 0})

		gs.Advance(Right)

		require.Equal(t, Position{0, 1}, gs.Player())
		require.Equal(t, 2, gs.Score(), "Destination value should be added to the score")
		require.Equal(t, 0, gs.Point(0, 1), "Destination should be zeroed")
		require.Equal(t, 1, gs.Turn())
	})

	t.Run("revisiting a collected cell adds nothing", func(t *testing.T) {
		gs := NewFromPoints(points, 4, Position{0, 0})

		gs.Advance(Right)
		gs.Advance(Left)
		gs.Advance(Right)

		require.Equal(t, 2+1, gs.Score(), "Only the first visit of each cell should count")
	})

	t.Run("all movers move before the turn ends", func(t *testing.T) {
		gs := NewFromPoints(points, 4, Position{0, 0}, Position{2, 2})

		gs.Advance(Down, Up)

		require.Equal(t, Position{1, 0}, gs.Mover(0))
		require.Equal(t, Position{1, 2}, gs.Mover(1))
		require.Equal(t, 4+6, gs.Score())
		require.Equal(t, 1, gs.Turn(), "A round should count as a single turn")
	})

	t.Run("score and turn never decrease and stop at the limit", func(t *testing.T) {
		gs := NewFromPoints(points, 3, Position{1, 1})

		prevScore, prevTurn := gs.Score(), gs.Turn()
		for !gs.IsGameOver() {
			gs.Advance(gs.ValidActions(0)[0])
			require.GreaterOrEqual(t, gs.Score(), prevScore)
			require.Equal(t, prevTurn+1, gs.Turn())
			prevScore, prevTurn = gs.Score(), gs.Turn()
		}
		require.Equal(t, gs.MaxTurns(), gs.Turn(), "Turn should stop exactly at the limit")
	})

	t.Run("panics on a finished game", func(t *testing.T) {
		gs := NewFromPoints(points, 0, Position{0, 0})

		require.True(t, gs.IsGameOver())
		require.Panics(t, func() { gs.Advance(Right) })
	})

	t.Run("panics on a wrong number of actions", func(t *testing.T) {
		gs := NewFromPoints(points, 4, Position{0, 0}, Position{1, 1})
		require.Panics(t, func() { gs.Advance(Right) })
	})

	t.Run("panics on a move off the board", func(t *testing.T) {
		gs := NewFromPoints(points, 4, Position{0, 0})
		require.Panics(t, func() { gs.Advance(Up) })
	})
}

func TestAutoAdvance(t *testing.T) {
	t.Run("each mover takes its richest neighbour", func(t *testing.T) {
		gs := NewFromPoints([][]int{
			{0, 3, 1},
			{9, 5, 6},
			{7, 8, 2},
		}, 2, Position{0, 0}, Position{2, 2})

		gs.AutoAdvance()

		require.Equal(t, Position{1, 0}, gs.Mover(0))
		require.Equal(t, Position{2, 1}, gs.Mover(1))
		require.Equal(t, 9+8, gs.Score())
		require.Equal(t, 1, gs.Turn())
	})

	t.Run("ties go to the first action in order", func(t *testing.T) {
		gs := NewFromPoints([][]int{
			{0, 4, 0},
			{4, 0, 4},
			{0, 4, 0},
		}, 1, Position{1, 1})

		require.Equal(t, Up, gs.BestLocalAction(0))
	})

	t.Run("later movers see cells collected earlier in the round", func(t *testing.T) {
		gs := NewFromPoints([][]int{
			{0, 9, 0},
			{1, 0, 1},
		}, 1, Position{0, 0}, Position{0, 2})

		gs.AutoAdvance()

		require.Equal(t, Position{0, 1}, gs.Mover(0))
		require.Equal(t, Position{1, 2}, gs.Mover(1), "Second mover should skip the collected cell")
		require.Equal(t, 10, gs.Score())
	})
}

func TestSetMoverPosition(t *testing.T) {
	points := [][]int{
		{1, 2},
		{3, 4},
	}

	t.Run("teleport collects the destination", func(t *testing.T) {
		gs := NewFromPoints(points, 2, Position{0, 0})

		gs.SetMoverPosition(0, 1, 1)

		require.Equal(t, Position{1, 1}, gs.Player())
		require.Equal(t, 4, gs.Score())
		require.Equal(t, 0, gs.Point(1, 1))
		require.Equal(t, 0, gs.Turn(), "Teleporting should not advance the turn")
	})

	t.Run("panics on an invalid mover index", func(t *testing.T) {
		gs := NewFromPoints(points, 2, Position{0, 0})
		require.Panics(t, func() { gs.SetMoverPosition(1, 0, 0) })
	})

	t.Run("panics on an off-board position", func(t *testing.T) {
		gs := NewFromPoints(points, 2, Position{0, 0})
		require.Panics(t, func() { gs.SetMoverPosition(0, 2, 0) })
	})
}

func TestClone(t *testing.T) {
	gs := NewAutoMaze(3, 4, 4, 2, 5)
	clone := gs.Clone()

	clone.Advance(Down, Right)

	require.Equal(t, 0, gs.Turn(), "Original should be untouched")
	require.Equal(t, Position{}, gs.Mover(0))
	require.NotEqual(t, gs.Point(1, 0), clone.Point(1, 0), "Boards should not be shared")
}

func TestNewFromPoints(t *testing.T) {
	t.Run("copies the movers", func(t *testing.T) {
		movers := []Position{{0, 0}}
		gs := NewFromPoints([][]int{{1, 2}}, 1, movers...)

		movers[0] = Position{0, 1}

		require.Equal(t, Position{0, 0}, gs.Player())
	})

	t.Run("rejects malformed boards", func(t *testing.T) {
		require.Panics(t, func() { NewFromPoints(nil, 1, Position{}) })
		require.Panics(t, func() { NewFromPoints([][]int{{1, 2}, {3}}, 1, Position{}) })
		require.Panics(t, func() { NewFromPoints([][]int{{1, -2}}, 1, Position{}) })
		require.Panics(t, func() { NewFromPoints([][]int{{1, 2}}, 1) })
		require.Panics(t, func() { NewFromPoints([][]int{{1, 2}}, 1, Position{1, 0}) })
	})
}

func TestPlayer(t *testing.T) {
	gs := NewAutoMaze(3, 4, 4, 2, 5)
	require.Panics(t, func() { gs.Player() }, "Player is only defined for a single mover")
}

func TestTransposed(t *testing.T) {
	gs := NewFromPoints([][]int{
		{1, 2},
		{3, 4},
	}, 2, Position{0, 0})
	gs.transposed = true

	gs.Advance(Right)

	require.Equal(t, Position{0, 1}, gs.Player())
	require.Equal(t, 3, gs.Score(), "Transposed state should collect the cell at (col, row)")
	require.Equal(t, 0, gs.Point(1, 0))
	require.Equal(t, 2, gs.Point(0, 1))
}

func TestString(t *testing.T) {
	gs := NewFromPoints([][]int{
		{1, 2, 3},
		{4, 5, 6},
	}, 3, Position{0, 0})
	gs.Advance(Right)
	gs.Advance(Down)

	expected := "turn:\t2\n" +
		"score:\t7\n" +
		"1.3\n" +
		"4@6\n"
	require.Equal(t, expected, gs.String())
}

func TestActionString(t *testing.T) {
	require.Equal(t, "up", Up.String())
	require.Equal(t, "right", Right.String())
	require.Equal(t, "Action(9)", Action(9).String())
}
