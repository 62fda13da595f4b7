// Package gridgraph models a rectangular 2D grid of non-negative integer
// cell costs as the implicit graph searched by the dijkstra package.
//
// What:
//
//   - Grid wraps an immutable rows×cols matrix of costs; the cost of a cell
//     is incurred when a traveler enters it.
//   - Point addresses a cell by (Row, Col); Direction names the four
//     cardinal unit moves (East, South, West, North) with reverses two
//     indices apart.
//   - Parse turns the digit-per-cell puzzle text into a Grid.
//
// Why:
//
//   - Adjacency is implied by the grid itself, so searches generate moves
//     on demand instead of materializing an edge list.
//
// Complexity:
//
//   - NewGrid, Parse: O(rows×cols) time and memory (deep copy).
//   - Cost, InBounds, Dimensions: O(1).
//
// Errors:
//
//   - ErrMalformedInput: umbrella for every construction failure below.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative cost.
//   - ErrBadCell: a text cell is not a decimal digit.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package gridgraph
