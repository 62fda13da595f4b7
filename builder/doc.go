// Package builder provides deterministic, functional-options constructors for
// synthetic cost grids: fixtures for tests, inputs for benchmarks, and the
// `crucible generate` command.
//
// The package offers the following key components:
//
//   - Constructors:
//     – Grid(rows, cols, opts...):   rows×cols grid, one CostFn draw per cell.
//     – Line(n, opts...):            1×n grid.
//     – Uniform(rows, cols, cost):   every cell holds the same cost.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the cost function.
//   - Cell-cost distributions (CostFn implementations):
//     – DefaultCostFn:   constant DefaultCellCost.
//     – ConstantCostFn:  fixed user-provided value.
//     – UniformCostFn:   uniform integer ∼U[min,max].
//
// Guarantees:
//
//   - Determinism: the same options and seed always yield the same grid;
//     cells are drawn in row-major order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewCells) for invalid build parameters,
//     wrapped with method context.
package builder
