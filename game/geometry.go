package game

import "fmt"

// Index addresses a cell by row and column, row 0 being the top of the board.
type Index struct {
	Row int
	Col int
}

func NewIndex(row, col int) Index {
	return Index{Row: row, Col: col}
}

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.Row, i.Col)
}

// Step returns the index n diagonal steps away along d. The result may lie
// outside any board; callers check bounds.
func (i Index) Step(d Direction, n int) Index {
	return Index{Row: i.Row + d.DRow*n, Col: i.Col + d.DCol*n}
}

// Direction is a diagonal unit vector
type Direction struct {
	DRow int
	DCol int
}

var (
	NW = Direction{DRow: -1, DCol: -1}
	NE = Direction{DRow: -1, DCol: 1}
	SW = Direction{DRow: 1, DCol: -1}
	SE = Direction{DRow: 1, DCol: 1}
)

// Directions is the fixed enumeration order used for move generation
var Directions = [4]Direction{NW, NE, SW, SE}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
}

// displacement splits the vector from -> to into a diagonal direction and a
// step count. ok is false when the vector is not a non-zero diagonal.
func displacement(from, to Index) (d Direction, steps int, ok bool) {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	if dr == 0 || abs(dr) != abs(dc) {
		return Direction{}, 0, false
	}
	return Direction{DRow: sign(dr), DCol: sign(dc)}, abs(dr), true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
