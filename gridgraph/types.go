package gridgraph

import "fmt"

// Direction is one of the four cardinal unit moves. Direction d and
// (d+2) mod 4 are mutual reverses.
type Direction int

const (
	// NoDirection marks a state that has not moved yet (the search origin).
	NoDirection Direction = -1
	// East moves one column right.
	East Direction = iota - 1
	// South moves one row down.
	South
	// West moves one column left.
	West
	// North moves one row up.
	North
)

// Directions lists the four cardinal moves in index order.
var Directions = [4]Direction{East, South, West, North}

// deltas[d] is the (row, col) offset of a unit move in direction d.
var deltas = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Valid reports whether d is one of the four cardinal moves.
func (d Direction) Valid() bool {
	return d >= East && d <= North
}

// Reverse returns the opposite direction. NoDirection reverses to itself.
func (d Direction) Reverse() Direction {
	if !d.Valid() {
		return NoDirection
	}
	return (d + 2) % 4
}

// Delta returns the (row, col) offset of a single step in direction d,
// or (0, 0) for NoDirection.
func (d Direction) Delta() (dr, dc int) {
	if !d.Valid() {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	case NoDirection:
		return "none"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Point addresses a grid cell by row and column.
type Point struct {
	Row, Col int
}

// Step returns the point n unit moves away in direction d.
func (p Point) Step(d Direction, n int) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable rows×cols matrix of non-negative costs.
// cells[r][c] is the cost of entering (r, c).
type Grid struct {
	rows, cols int
	cells      [][]int64
}
