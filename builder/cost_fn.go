// cost_fn.go — cell-cost distributions for grid constructors.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultCellCost is the cost assigned to each cell when no custom CostFn is provided.
const DefaultCellCost int64 = 1

// CostFn produces a cell cost given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and never return a negative value.
type CostFn func(rng *rand.Rand) int64

// DefaultCostFn always returns DefaultCellCost.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultCostFn(_ *rand.Rand) int64 {
	return DefaultCellCost
}

// ConstantCostFn returns a CostFn that always yields the provided value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantCostFn(value int64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformCostFn returns a CostFn sampling integers uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min.
// If rng is nil, yields min to maintain a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformCostFn(min, max int64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
