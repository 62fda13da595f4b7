package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/crucible/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or negative inputs
// and that every rejection also matches ErrMalformedInput.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int64
		err  error
	}{
		{"EmptyRows", [][]int64{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int64{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int64{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"NegativeCost", [][]int64{{1, 2}, {3, -4}}, gridgraph.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
			if !errors.Is(err, gridgraph.ErrMalformedInput) {
				t.Errorf("NewGrid(%v) error = %v; want match of ErrMalformedInput", tc.grid, err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]int64{{1, 2}, {3, 4}}
	g, err := gridgraph.NewGrid(in)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	in[0][0] = 9

	got, err := g.Cost(0, 0)
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if got != 1 {
		t.Errorf("Cost(0,0) = %d after input mutation; want 1", got)
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int64{
		{0, 1, 0},
		{1, 0, 1},
	})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	valid := [][2]int{{0, 0}, {1, 2}, {1, 1}}
	for _, rc := range valid {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

//----------------------------------------------------------------------------//
// Cost, Dimensions and corner Tests
//----------------------------------------------------------------------------//

// TestCost returns stored values inside the grid and ErrOutOfBounds outside it.
func TestCost(t *testing.T) {
	g, _ := gridgraph.NewGrid([][]int64{
		{1, 2, 3},
		{4, 5, 6},
	})

	if v, err := g.Cost(1, 2); err != nil || v != 6 {
		t.Errorf("Cost(1,2) = %d, %v; want 6, nil", v, err)
	}
	if v, err := g.CostAt(gridgraph.Point{Row: 0, Col: 1}); err != nil || v != 2 {
		t.Errorf("CostAt(0,1) = %d, %v; want 2, nil", v, err)
	}
	for _, rc := range [][2]int{{2, 0}, {0, 3}, {-1, -1}} {
		if _, err := g.Cost(rc[0], rc[1]); !errors.Is(err, gridgraph.ErrOutOfBounds) {
			t.Errorf("Cost(%d,%d) error = %v; want ErrOutOfBounds", rc[0], rc[1], err)
		}
	}
}

// TestLookup verifies the comma-ok accessor agrees with Cost inside the grid
// and reports false outside it.
func TestLookup(t *testing.T) {
	g, _ := gridgraph.NewGrid([][]int64{
		{1, 2, 3},
		{4, 5, 6},
	})

	if v, ok := g.Lookup(gridgraph.Point{Row: 1, Col: 0}); !ok || v != 4 {
		t.Errorf("Lookup(1,0) = %d, %v; want 4, true", v, ok)
	}
	for _, p := range []gridgraph.Point{{Row: 2, Col: 0}, {Row: 0, Col: 3}, {Row: -1, Col: 0}} {
		if v, ok := g.Lookup(p); ok || v != 0 {
			t.Errorf("Lookup(%v) = %d, %v; want 0, false", p, v, ok)
		}
	}
}

// TestDimensionsAndCorners verifies the reported shape and the conventional endpoints.
func TestDimensionsAndCorners(t *testing.T) {
	g, _ := gridgraph.NewGrid([][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 0, 1, 2},
	})

	rows, cols := g.Dimensions()
	if rows != 3 || cols != 4 {
		t.Errorf("Dimensions() = %d×%d; want 3×4", rows, cols)
	}
	if o := g.Origin(); o != (gridgraph.Point{}) {
		t.Errorf("Origin() = %v; want (0,0)", o)
	}
	if f := g.FarCorner(); f != (gridgraph.Point{Row: 2, Col: 3}) {
		t.Errorf("FarCorner() = %v; want (2,3)", f)
	}
}

// TestString renders single-digit grids compactly and wider costs space-separated.
func TestString(t *testing.T) {
	g, _ := gridgraph.NewGrid([][]int64{{1, 2}, {3, 4}})
	if got, want := g.String(), "12\n34"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}

	wide, _ := gridgraph.NewGrid([][]int64{{1, 12}, {3, 4}})
	if got, want := wide.String(), "1 12\n3 4"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
