package game

// Board holds the point value of every cell, row-major.
type Board struct {
	height int
	width  int
	points []int
}

// newBoard draws every value from src, row by row.
func newBoard(height, width int, src Source) Board {
	points := make([]int, height*width)
	for i := range points {
		points[i] = MinPoint + src.Intn(MaxPoint-MinPoint)
	}
	return Board{height: height, width: width, points: points}
}

func (b Board) Height() int { return b.height }
func (b Board) Width() int  { return b.width }

// Contains reports whether (row, col) lies on the board.
func (b Board) Contains(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// Point returns the value still collectable at (row, col).
func (b Board) Point(row, col int) int {
	return b.points[b.index(row, col)]
}

// collect zeroes the cell and returns what it held.
func (b Board) collect(row, col int) int {
	i := b.index(row, col)
	p := b.points[i]
	b.points[i] = 0
	return p
}

func (b Board) clone() Board {
	points := make([]int, len(b.points))
	copy(points, b.points)
	return Board{height: b.height, width: b.width, points: points}
}

func (b Board) index(row, col int) int {
	if !b.Contains(row, col) {
		panic("cell out of bounds")
	}
	return row*b.width + col
}
