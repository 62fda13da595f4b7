// Package dijkstra implements a constrained-movement variant of Dijkstra's
// shortest-path algorithm on cost grids.
//
// A traveler moves in straight runs ("macro-edges") of minRun..maxRun cells,
// then must turn 90°; it may neither continue in the direction it just ran
// nor reverse. Every entered cell adds its cost. The search state is
// therefore the cell plus the direction that reached it, not the cell alone.
//
// Complexity:
//
//   - Time:  O(S·k·log S) where S = rows·cols·5 states and k = 2·maxRun moves
//     generated per expansion (4·maxRun from the origin).
//   - Space: O(S) for the cost table and finalized set, plus one queue entry
//     per improving relaxation.
//
// Notes on implementation choices:
//
//   - Macro-edges are generated on demand from the grid; no edge list exists.
//   - A run that leaves the grid stops: every longer run in that direction
//     would leave it too.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries once their state is finalized.
//   - The destination check happens at extraction, before the finalized
//     check, so the first extraction of any state at the destination wins.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/pqueue"
)

// ShortestConstrainedPath returns the minimum total entered-cell cost of a
// path from start to end whose straight runs are minRun..maxRun cells long.
//
// Returns:
//
//   - Result.Reachable == false (with a nil error) if no legal path exists.
//   - err: ErrNilGrid, ErrBadRunBounds, gridgraph.ErrOutOfBounds (for start
//     or end), or the context's error if it ends before the search does.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. 1 ≤ minRun ≤ maxRun (ErrBadRunBounds).
//  3. start and end must be inside g (gridgraph.ErrOutOfBounds).
//
// The origin's own cost is never counted; start == end costs 0. Routes whose
// total would exceed math.MaxInt64 are treated like routes over the cap.
func ShortestConstrainedPath(
	g *gridgraph.Grid,
	start, end gridgraph.Point,
	minRun, maxRun int,
	opts ...Option,
) (Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = DefaultOptions().Ctx
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGrid
	}
	bounds := RunBounds{Min: minRun, Max: maxRun}
	if err := bounds.Validate(); err != nil {
		return Result{}, err
	}
	if _, err := g.CostAt(start); err != nil {
		return Result{}, fmt.Errorf("dijkstra: start: %w", err)
	}
	if _, err := g.CostAt(end); err != nil {
		return Result{}, fmt.Errorf("dijkstra: end: %w", err)
	}

	rows, cols := g.Dimensions()
	r := &runner{
		g:         g,
		options:   cfg,
		bounds:    bounds,
		end:       end,
		cost:      make(map[State]int64, rows*cols),
		finalized: make(map[State]struct{}, rows*cols),
		pq:        pqueue.New[State](rows * cols),
	}

	// 3) Seed and run
	r.init(start)
	return r.process()
}

// ShortestCornerPath runs ShortestConstrainedPath from the top-left cell to
// the bottom-right cell of g.
func ShortestCornerPath(g *gridgraph.Grid, minRun, maxRun int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	return ShortestConstrainedPath(g, g.Origin(), g.FarCorner(), minRun, maxRun, opts...)
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g         *gridgraph.Grid      // The input grid; read-only.
	options   Options              // Context, cost cap, observer.
	bounds    RunBounds            // Legal run lengths.
	end       gridgraph.Point      // Destination cell.
	cost      map[State]int64      // Best known cost per state.
	finalized map[State]struct{}   // States whose cost is proven minimal.
	pq        *pqueue.Queue[State] // Frontier with lazy deletion.
	res       Result               // Counters accumulated while running.
}

// init records the origin state at cost 0 and queues it.
func (r *runner) init(start gridgraph.Point) {
	origin := State{Pos: start, Last: gridgraph.NoDirection}
	r.cost[origin] = 0
	r.pq.Push(0, origin)
	r.res.Pushed++
}

// process is the core loop. It repeatedly extracts the cheapest frontier
// entry, returns when that entry sits on the destination, and otherwise
// finalizes the state and expands its macro-edges.
func (r *runner) process() (Result, error) {
	ctx := r.options.Ctx
	for !r.pq.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		// 1) Pop the cheapest entry. The loop guard makes ErrEmptyQueue impossible.
		c, s, err := r.pq.PopMin()
		if err != nil {
			return Result{}, err
		}
		if r.options.OnPop != nil {
			r.options.OnPop(c, s)
		}

		// 2) Costs come out non-decreasing, so nothing cheaper remains.
		if c > r.options.MaxCost {
			break
		}

		// 3) First extraction at the destination is optimal.
		if s.Pos == r.end {
			r.res.Cost = c
			r.res.Reachable = true
			return r.res, nil
		}

		// 4) Skip stale duplicates.
		if _, done := r.finalized[s]; done {
			continue
		}
		r.finalized[s] = struct{}{}
		r.res.Finalized++

		// 5) Expand.
		r.expand(c, s)
	}

	return r.res, nil
}

// expand relaxes every macro-edge leaving s. A macro-edge turns away from
// s.Last (never continuing straight or reversing) and runs minRun..maxRun
// cells; shorter prefixes only accumulate cost.
func (r *runner) expand(c int64, s State) {
	for _, d := range gridgraph.Directions {
		if d == s.Last || d == s.Last.Reverse() {
			continue
		}

		// c <= MaxCost holds for every expanded state, so MaxCost-c never
		// overflows and bounds the run's total without risking wraparound.
		budget := r.options.MaxCost - c
		var increase int64
		for dist := 1; dist <= r.bounds.Max; dist++ {
			p := s.Pos.Step(d, dist)
			w, ok := r.g.Lookup(p)
			if !ok {
				// Off the grid: every longer run is off the grid too.
				break
			}
			if w > budget-increase {
				// Over the cap (or past math.MaxInt64); longer runs only cost more.
				break
			}
			increase += w

			if dist < r.bounds.Min {
				continue
			}

			next := State{Pos: p, Last: d}
			nc := c + increase
			// Only strictly better costs are recorded and queued.
			if old, seen := r.cost[next]; seen && old <= nc {
				continue
			}
			r.cost[next] = nc
			r.pq.Push(nc, next)
			r.res.Pushed++
		}
	}
}
