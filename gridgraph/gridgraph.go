package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of
// non-negative costs. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNegativeCost if any cell
// is below zero. All three match ErrMalformedInput.
// Algorithmic complexity: O(rows×cols) time and memory.
func NewGrid(values [][]int64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), w, ErrNonRectangular)
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("cell (%d,%d)=%d: %w", r, c, v, ErrNegativeCost)
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int64, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int64, w)
		copy(cells[r], values[r])
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Dimensions returns the number of rows and columns.
// Complexity: O(1).
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether p lies within the grid boundaries.
func (g *Grid) Contains(p Point) bool {
	return g.InBounds(p.Row, p.Col)
}

// Cost returns the cost of entering (row, col), or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) Cost(row, col int) (int64, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("(%d,%d) outside %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
	}
	return g.cells[row][col], nil
}

// CostAt is Cost addressed by Point.
func (g *Grid) CostAt(p Point) (int64, error) {
	return g.Cost(p.Row, p.Col)
}

// Lookup returns the cost of entering p and whether p lies inside the grid.
// It never allocates, for use in search inner loops.
// Complexity: O(1).
func (g *Grid) Lookup(p Point) (int64, bool) {
	if !g.Contains(p) {
		return 0, false
	}
	return g.cells[p.Row][p.Col], true
}

// Origin returns the top-left cell, the conventional search start.
func (g *Grid) Origin() Point {
	return Point{}
}

// FarCorner returns the bottom-right cell, the conventional destination.
func (g *Grid) FarCorner() Point {
	return Point{Row: g.rows - 1, Col: g.cols - 1}
}

// String renders the grid as one line per row in a form Parse reads back.
// Single-digit costs are written back-to-back; if any cost has more than
// one digit, cells are separated by spaces instead.
func (g *Grid) String() string {
	sep := ""
	for _, row := range g.cells {
		for _, v := range row {
			if v > 9 {
				sep = " "
			}
		}
	}
	var sb strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteString(sep)
			}
			fmt.Fprintf(&sb, "%d", v)
		}
	}
	return sb.String()
}
