// Package dijkstra defines core types and configuration options
// for the constrained-movement shortest-path search on cost grids.
//
// Options:
//
//	– Context:  checked between queue extractions; its error aborts the search.
//	– MaxCost:  optional cap on accumulated cost; costlier states are not expanded.
//	– OnPop:    observer invoked for every extracted frontier entry.
//
// Errors (sentinel):
//
//	– ErrNilGrid       if the provided grid pointer is nil.
//	– ErrBadRunBounds  if minRun < 1 or minRun > maxRun.
//	– ErrBadMaxCost    if MaxCost < 0 (via panic in WithMaxCost).
//	– gridgraph.ErrOutOfBounds if start or end lies outside the grid.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by the constrained search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to the search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadRunBounds indicates run-length bounds violating 1 ≤ minRun ≤ maxRun.
	ErrBadRunBounds = errors.New("dijkstra: run bounds must satisfy 1 <= minRun <= maxRun")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// RunBounds is the inclusive range of straight-run lengths a single move
// may cover before the traveler must turn.
type RunBounds struct {
	Min int // shortest legal run, ≥ 1
	Max int // longest legal run, ≥ Min
}

// Presets for the two published puzzle variants.
var (
	// Crucible turns after at most three blocks.
	Crucible = RunBounds{Min: 1, Max: 3}
	// UltraCrucible needs four blocks before turning and may run up to ten.
	UltraCrucible = RunBounds{Min: 4, Max: 10}
)

// Validate returns ErrBadRunBounds unless 1 ≤ Min ≤ Max.
func (b RunBounds) Validate() error {
	if b.Min < 1 || b.Min > b.Max {
		return fmt.Errorf("%w: got [%d,%d]", ErrBadRunBounds, b.Min, b.Max)
	}
	return nil
}

func (b RunBounds) String() string {
	return fmt.Sprintf("[%d,%d]", b.Min, b.Max)
}

// State is the unit of finalization: a cell plus the direction of the move
// that arrived there. Last is gridgraph.NoDirection only for the origin.
type State struct {
	Pos  gridgraph.Point
	Last gridgraph.Direction
}

// Result reports the outcome of one search.
//
// Reachable is false when the frontier emptied before the destination was
// extracted; Cost is then meaningless (zero). Finalized and Pushed count the
// accepted extractions and the queue insertions, stale duplicates included.
type Result struct {
	Cost      int64
	Reachable bool
	Finalized int
	Pushed    int
}

// Options configures the behavior of the constrained search.
type Options struct {
	Ctx     context.Context           // cancellation; nil means context.Background()
	MaxCost int64                     // states costlier than this are not expanded
	OnPop   func(cost int64, s State) // observer for every extracted entry; may be nil
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithContext makes the search check ctx between extractions and return
// ctx.Err() once it is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithMaxCost caps the accumulated cost explored. States whose cost exceeds
// max are never expanded, so a destination beyond the cap is reported as
// unreachable. Must pass a non-negative value; negative values panic with
// ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithOnPop registers fn to observe every (cost, state) extracted from the
// frontier, stale duplicates included, in extraction order.
func WithOnPop(fn func(cost int64, s State)) Option {
	return func(o *Options) {
		o.OnPop = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Ctx:     context.Background().
//   - MaxCost: math.MaxInt64 (no cap).
//   - OnPop:   nil.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxCost: math.MaxInt64,
	}
}
