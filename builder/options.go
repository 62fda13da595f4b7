// SPDX-License-Identifier: MIT
// Package: crucible/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before grid construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic cost functions.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Seed 0 selects the package default seed.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithCostFn overrides the per-cell cost generator. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithConstantCost sets a fixed cell cost via ConstantCostFn.
// Complexity: O(1).
func WithConstantCost(cost int64) BuilderOption {
	return WithCostFn(ConstantCostFn(cost))
}

// WithUniformCost sets costs ∼ U[min,max] via UniformCostFn.
// Complexity: O(1).
func WithUniformCost(min, max int64) BuilderOption {
	return WithCostFn(UniformCostFn(min, max))
}
