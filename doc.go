// Package crucible finds minimum-cost routes across digit cost grids for
// movers that cannot go straight forever: every straight run must cover
// between a minimum and a maximum number of cells, after which the mover
// turns 90 degrees. It never reverses.
//
// The module is organized as small, independent packages:
//
//	gridgraph/ — immutable cost grid, Direction and Point, text parser
//	pqueue/    — generic binary min-heap keyed by int64 priority
//	dijkstra/  — constrained shortest-path search over (cell, heading) states
//	builder/   — deterministic grid generators for tests and benchmarks
//	internal/config/ — YAML configuration with environment overrides
//	internal/runner/ — concurrent multi-variant solving with structured logs
//	cmd/crucible/    — the crucible command line
//
// Quick example (the published 13x13 map):
//
//	g, _ := gridgraph.ParseString(input)
//	res, _ := dijkstra.ShortestCornerPath(g, 1, 3)   // res.Cost == 102
//	res, _ = dijkstra.ShortestCornerPath(g, 4, 10)   // res.Cost == 94
//
// Entering a cell costs its digit; the start cell is free. Grids without a
// legal route report Reachable == false rather than an error.
//
//	go install github.com/katalvlaran/crucible/cmd/crucible@latest
package crucible
