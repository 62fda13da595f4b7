package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates the input cannot form a rectangular grid of
	// non-negative costs. Every construction sentinel below wraps it.
	ErrMalformedInput = errors.New("gridgraph: malformed input")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = fmt.Errorf("%w: cell cost must be non-negative", ErrMalformedInput)
	// ErrBadCell indicates a text cell that is not a decimal digit.
	ErrBadCell = fmt.Errorf("%w: cell is not a decimal digit", ErrMalformedInput)

	// ErrOutOfBounds indicates a coordinate outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
