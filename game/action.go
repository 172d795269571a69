package game

import "fmt"

// Action is a one-cell step of a mover.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
)

// Actions lists every action in the order ValidActions reports them.
var Actions = [...]Action{Up, Down, Left, Right}

func (a Action) delta() (dr, dc int) {
	switch a {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	panic(fmt.Sprintf("unknown action %d", int(a)))
}

func (a Action) String() string {
	switch a {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}
