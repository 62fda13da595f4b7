// Package dijkstra provides a constrained-movement shortest-path search on
// grids of non-negative entry costs: Dijkstra's algorithm generalized to
// states that remember the direction of the last move.
//
// Overview:
//
//   - A move ("macro-edge") picks a direction other than the last one and
//     its reverse, then runs between minRun and maxRun cells straight ahead,
//     paying the cost of every cell entered. From the origin all four
//     directions are open.
//   - Runs shorter than minRun are bookkeeping only; the traveler cannot
//     stop there. Runs longer than maxRun do not exist; a longer straight
//     line is impossible because two consecutive moves never share a direction.
//   - The search key is (cell, last direction). The legal next moves depend
//     on that direction alone, so the rest of the path history is irrelevant.
//
// When to use:
//
//   - Vehicle or crucible routing where momentum forbids short hops or long
//     straights (the two published variants use [1,3] and [4,10]).
//   - Any grid search whose move rule depends on a bounded window of history:
//     fold the window into the state key.
//
// Key features:
//
//   - Functional options (WithContext, WithMaxCost, WithOnPop) tune behavior
//     without changing the call signature.
//   - Unreachable destinations are a normal outcome (Result.Reachable == false),
//     not an error.
//   - Every invocation owns its cost table, finalized set and frontier; grids
//     are immutable, so concurrent searches may share one grid.
//
// Performance and complexity:
//
//   - Time:  O(S·k·log S), S = 5·rows·cols states, k ≤ 4·maxRun relaxations
//     per expanded state.
//   - Space: O(S) for the cost table and finalized set; the queue holds one
//     entry per improving relaxation under the lazy decrease-key strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:      the grid pointer is nil.
//   - ErrBadRunBounds: minRun < 1 or minRun > maxRun.
//   - ErrBadMaxCost:   (via panic) WithMaxCost was given a negative value.
//   - gridgraph.ErrOutOfBounds: start or end is outside the grid.
//   - context errors:  the WithContext context ended mid-search.
//
// API reference:
//
//	func ShortestConstrainedPath(
//	    g *gridgraph.Grid,
//	    start, end gridgraph.Point,
//	    minRun, maxRun int,
//	    opts ...Option,
//	) (Result, error)
//
//	func ShortestCornerPath(g *gridgraph.Grid, minRun, maxRun int, opts ...Option) (Result, error)
//
// See also:
//
//   - gridgraph.Parse: build a Grid from the digit-per-cell puzzle text.
//   - pqueue.Queue: the lazy-deletion frontier.
package dijkstra
