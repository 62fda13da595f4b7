// SPDX-License-Identifier: MIT
// Package: crucible/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w (see builderErrorf).
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX..., XCostFn).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewCells indicates that rows, cols or n is smaller than one.
// Usage: if errors.Is(err, ErrTooFewCells) { /* report invalid size */ }.
var ErrTooFewCells = errors.New("builder: grid dimension too small")

// builderErrorf prefixes err with the constructor name and a formatted detail.
func builderErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
