// SPDX-License-Identifier: MIT
// Package: crucible/builder
//
// impl_grid.go — implementation of the Grid(rows, cols) constructor family.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewCells).
//   • Draws cfg.costFn(cfg.rng) once per cell in row-major order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time:  O(rows*cols) draws.
//   • Space: O(rows*cols) for the cost matrix (copied once more by gridgraph.NewGrid).
//
// Determinism:
//   • Stable draw order: r ascending, then c ascending.
//   • Identical grids for a fixed seed and cost function.

package builder

import (
	"github.com/katalvlaran/crucible/gridgraph"
)

// File-local constants: method tags and minima.
const (
	methodGrid    = "Grid"
	methodLine    = "Line"
	methodUniform = "Uniform"
	minGridDim    = 1
)

// Grid builds a rows×cols cost grid, drawing every cell from the configured
// CostFn (DefaultCostFn unless overridden).
func Grid(rows, cols int, opts ...BuilderOption) (*gridgraph.Grid, error) {
	return buildGrid(methodGrid, rows, cols, newBuilderConfig(opts...))
}

// Line builds a 1×n grid, the single-row corridor on which only one
// eastward run can reach the far end.
func Line(n int, opts ...BuilderOption) (*gridgraph.Grid, error) {
	return buildGrid(methodLine, 1, n, newBuilderConfig(opts...))
}

// Uniform builds a rows×cols grid whose every cell costs cost.
// Panics if cost < 0 (see ConstantCostFn).
func Uniform(rows, cols int, cost int64) (*gridgraph.Grid, error) {
	return buildGrid(methodUniform, rows, cols, newBuilderConfig(WithConstantCost(cost)))
}

// buildGrid validates the shape, draws every cell, and hands the matrix to
// gridgraph.NewGrid.
func buildGrid(method string, rows, cols int, cfg builderConfig) (*gridgraph.Grid, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if rows < minGridDim || cols < minGridDim {
		return nil, builderErrorf(method, "rows=%d, cols=%d (each must be ≥ %d)", ErrTooFewCells, rows, cols, minGridDim)
	}

	// 2) Draw all cells in deterministic row-major order.
	values := make([][]int64, rows)
	for r := 0; r < rows; r++ {
		values[r] = make([]int64, cols)
		for c := 0; c < cols; c++ {
			values[r][c] = cfg.costFn(cfg.rng)
		}
	}

	// 3) A CostFn that yields negatives is surfaced as gridgraph.ErrNegativeCost.
	g, err := gridgraph.NewGrid(values)
	if err != nil {
		return nil, builderErrorf(method, "NewGrid(%dx%d)", err, rows, cols)
	}
	return g, nil
}
