// meta/meta.go
package meta

// BEAM_WIDTH is the default number of candidates kept per depth.
const BEAM_WIDTH = 2

// BEAM_DEPTH is the default number of turns searched ahead.
const BEAM_DEPTH = 4

// CHOKUDAI_ROUNDS is the default number of widening passes of chokudai search.
const CHOKUDAI_ROUNDS = 2

// ITERATIONS is the default number of neighbours tried by local search.
const ITERATIONS = 10000

// TEMP_START and TEMP_END bound the annealing schedule.
const TEMP_START = 500.0
const TEMP_END = 10.0

// Demonstration games.
const (
	MAZE_HEIGHT    = 3
	MAZE_WIDTH     = 3
	MAZE_MAX_TURNS = 4

	AUTO_MAZE_HEIGHT    = 5
	AUTO_MAZE_WIDTH     = 5
	AUTO_MAZE_MOVERS    = 3
	AUTO_MAZE_MAX_TURNS = 5
)

// TRIALS is the default number of games averaged by a benchmark.
const TRIALS = 100
