// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestNewBuilderConfig_Defaults verifies the deterministic defaults.
func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng == nil {
		t.Fatal("default rng must not be nil")
	}
	if got := cfg.costFn(cfg.rng); got != DefaultCellCost {
		t.Errorf("default costFn: expected %d, got %d", DefaultCellCost, got)
	}
}

// TestCostOptions_LastWins verifies that later options override earlier ones.
func TestCostOptions_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithConstantCost(4), WithConstantCost(7))
	if got := cfg.costFn(cfg.rng); got != 7 {
		t.Errorf("last WithConstantCost should win: expected 7, got %d", got)
	}

	cfg = newBuilderConfig(WithUniformCost(2, 2), WithCostFn(func(_ *rand.Rand) int64 { return 9 }))
	if got := cfg.costFn(cfg.rng); got != 9 {
		t.Errorf("WithCostFn after WithUniformCost: expected 9, got %d", got)
	}
}

// TestRandOptions verifies that WithRand installs the exact source and that
// WithSeed(0) draws the same stream as the package default.
func TestRandOptions(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(99))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Error("WithRand did not install the provided source")
	}

	a := newBuilderConfig(WithSeed(0))
	b := newBuilderConfig()
	for i := 0; i < 5; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("draw %d: WithSeed(0)=%d, default=%d", i, x, y)
		}
	}

	c := newBuilderConfig(WithSeed(defaultRNGSeed + 1))
	d := newBuilderConfig()
	if c.rng.Int63() == d.rng.Int63() {
		t.Error("distinct seeds should produce distinct first draws")
	}
}
