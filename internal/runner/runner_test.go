package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/internal/config"
	"github.com/katalvlaran/crucible/internal/runner"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const referenceMap = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

var publishedVariants = []runner.Variant{
	{Name: "crucible", Bounds: dijkstra.Crucible},
	{Name: "ultra", Bounds: dijkstra.UltraCrucible},
}

func TestSolve_PublishedVariants(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := runner.New(zap.New(core), runner.Options{})

	g, err := gridgraph.ParseString(referenceMap)
	require.NoError(t, err)

	answers, err := r.Solve(context.Background(), g, publishedVariants)
	require.NoError(t, err)
	require.Len(t, answers, 2)

	require.Equal(t, "crucible", answers[0].Variant)
	require.Equal(t, int64(102), answers[0].Cost)
	require.True(t, answers[0].Reachable)
	require.Equal(t, "ultra", answers[1].Variant)
	require.Equal(t, int64(94), answers[1].Cost)
	require.Equal(t, "crucible: 102", answers[0].String())

	finished := logs.FilterMessage("Search finished")
	require.Equal(t, 2, finished.Len())
	for _, entry := range finished.All() {
		require.Contains(t, entry.ContextMap(), "cost")
		require.Contains(t, entry.ContextMap(), "variant")
	}
}

func TestSolve_NoVariants(t *testing.T) {
	r := runner.New(nil, runner.Options{})
	g, err := gridgraph.ParseString("12\n34")
	require.NoError(t, err)

	_, err = r.Solve(context.Background(), g, nil)
	require.ErrorIs(t, err, runner.ErrNoVariants)
}

func TestSolve_UnreachableIsAnswer(t *testing.T) {
	r := runner.New(nil, runner.Options{})
	g, err := gridgraph.ParseString("11\n11")
	require.NoError(t, err)

	answers, err := r.Solve(context.Background(), g, []runner.Variant{
		{Name: "long", Bounds: dijkstra.RunBounds{Min: 3, Max: 5}},
	})
	require.NoError(t, err)
	require.False(t, answers[0].Reachable)
	require.Equal(t, "long: unreachable", answers[0].String())
}

func TestSolve_BadBoundsFailsRun(t *testing.T) {
	r := runner.New(nil, runner.Options{})
	g, err := gridgraph.ParseString(referenceMap)
	require.NoError(t, err)

	_, err = r.Solve(context.Background(), g, []runner.Variant{
		publishedVariants[0],
		{Name: "broken", Bounds: dijkstra.RunBounds{Min: 5, Max: 2}},
	})
	require.ErrorIs(t, err, dijkstra.ErrBadRunBounds)
	require.Contains(t, err.Error(), `"broken"`)
}

func TestSolve_CanceledContext(t *testing.T) {
	r := runner.New(nil, runner.Options{})
	g, err := gridgraph.ParseString(referenceMap)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Solve(ctx, g, publishedVariants)
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestSolve_MaxCost(t *testing.T) {
	r := runner.New(nil, runner.Options{MaxCost: config.Int64(100)})
	g, err := gridgraph.ParseString(referenceMap)
	require.NoError(t, err)

	answers, err := r.Solve(context.Background(), g, publishedVariants)
	require.NoError(t, err)
	require.False(t, answers[0].Reachable, "102 exceeds the cap")
	require.True(t, answers[1].Reachable, "94 fits under the cap")

	zero := runner.New(nil, runner.Options{MaxCost: config.Int64(0)})
	answers, err = zero.Solve(context.Background(), g, publishedVariants)
	require.NoError(t, err)
	require.False(t, answers[0].Reachable)
	require.False(t, answers[1].Reachable)
}

func TestSolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(referenceMap), 0644))

	r := runner.New(zap.NewNop(), runner.Options{})
	answers, err := r.SolveFile(context.Background(), path, publishedVariants[1:])
	require.NoError(t, err)
	require.Equal(t, int64(94), answers[0].Cost)

	_, err = r.SolveFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), publishedVariants)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("12\n3"), 0644))
	_, err = r.SolveFile(context.Background(), bad, publishedVariants)
	require.ErrorIs(t, err, gridgraph.ErrMalformedInput)
}

func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Timeout = "2s"
	cfg.MaxCost = config.Int64(500)

	opts, variants := runner.FromConfig(cfg)
	require.NotNil(t, opts.MaxCost)
	require.Equal(t, int64(500), *opts.MaxCost)
	require.Equal(t, "2s", opts.Timeout.String())
	require.Equal(t, publishedVariants, variants)
}
