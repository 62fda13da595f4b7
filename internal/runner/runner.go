// Package runner solves one puzzle grid for several movement variants.
//
// Each variant is an independent constrained search over the same immutable
// grid, so the variants run concurrently under one errgroup; the first
// failure cancels the rest. Answers come back in variant order.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/internal/config"
)

// ErrNoVariants is returned when Solve is called without variants.
var ErrNoVariants = errors.New("runner: no variants to solve")

// Variant names one pair of run-length bounds.
type Variant struct {
	Name   string
	Bounds dijkstra.RunBounds
}

// Answer is the outcome of one variant.
type Answer struct {
	Variant   string
	Bounds    dijkstra.RunBounds
	Cost      int64
	Reachable bool
	Finalized int
	Pushed    int
	Elapsed   time.Duration
}

// String renders the answer the way the CLI prints it.
func (a Answer) String() string {
	if !a.Reachable {
		return fmt.Sprintf("%s: unreachable", a.Variant)
	}
	return fmt.Sprintf("%s: %d", a.Variant, a.Cost)
}

// Options tunes every search a Runner starts.
type Options struct {
	Timeout time.Duration // per-variant deadline; 0 disables it
	MaxCost *int64        // cost cap passed to dijkstra.WithMaxCost; nil disables it
}

// Runner solves grids with a fixed logger and options.
type Runner struct {
	logger *zap.Logger
	opts   Options
}

// New returns a Runner. A nil logger is replaced with zap.NewNop().
func New(logger *zap.Logger, opts Options) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, opts: opts}
}

// FromConfig builds the runner options and variant list described by cfg.
func FromConfig(cfg *config.Config) (Options, []Variant) {
	variants := make([]Variant, 0, len(cfg.Variants))
	for _, v := range cfg.Variants {
		variants = append(variants, Variant{Name: v.Name, Bounds: v.Bounds()})
	}
	return Options{Timeout: cfg.GetTimeout(), MaxCost: cfg.MaxCost}, variants
}

// SolveFile parses the grid at path and solves it for every variant.
func (r *Runner) SolveFile(ctx context.Context, path string, variants []Variant) ([]Answer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	g, err := gridgraph.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	rows, cols := g.Dimensions()
	r.logger.Debug("Grid loaded",
		zap.String("path", path),
		zap.Int("rows", rows),
		zap.Int("cols", cols))

	return r.Solve(ctx, g, variants)
}

// Solve runs a corner-to-corner search on g for every variant concurrently.
// Unreachable destinations are answers, not errors. The first failing
// variant cancels the others and its error is returned.
func (r *Runner) Solve(ctx context.Context, g *gridgraph.Grid, variants []Variant) ([]Answer, error) {
	if len(variants) == 0 {
		return nil, ErrNoVariants
	}

	answers := make([]Answer, len(variants))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, v := range variants {
		eg.Go(func() error {
			a, err := r.solveOne(egCtx, g, v)
			if err != nil {
				return fmt.Errorf("variant %q: %w", v.Name, err)
			}
			answers[i] = a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return answers, nil
}

// solveOne runs one variant under the configured deadline and cost cap.
func (r *Runner) solveOne(ctx context.Context, g *gridgraph.Grid, v Variant) (Answer, error) {
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	opts := []dijkstra.Option{dijkstra.WithContext(ctx)}
	if r.opts.MaxCost != nil {
		opts = append(opts, dijkstra.WithMaxCost(*r.opts.MaxCost))
	}

	log := r.logger.With(zap.String("variant", v.Name), zap.Stringer("bounds", v.Bounds))
	log.Debug("Search started")

	start := time.Now()
	res, err := dijkstra.ShortestCornerPath(g, v.Bounds.Min, v.Bounds.Max, opts...)
	elapsed := time.Since(start)
	if err != nil {
		log.Warn("Search failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return Answer{}, err
	}

	log.Info("Search finished",
		zap.Bool("reachable", res.Reachable),
		zap.Int64("cost", res.Cost),
		zap.Int("finalized", res.Finalized),
		zap.Int("pushed", res.Pushed),
		zap.Duration("elapsed", elapsed))

	return Answer{
		Variant:   v.Name,
		Bounds:    v.Bounds,
		Cost:      res.Cost,
		Reachable: res.Reachable,
		Finalized: res.Finalized,
		Pushed:    res.Pushed,
		Elapsed:   elapsed,
	}, nil
}
