// Package grid provides the coordinate model shared by every search in
// gridsearch: immutable row/column coordinates, rectangular bounds,
// cardinal directions, canonical position sets and a parsed text grid.
//
// What:
//
//   - Coord is a (Row, Col) value ordered lexicographically.
//   - Bounds is an inclusive-min / exclusive-max rectangle used only for
//     containment checks.
//   - Direction enumerates Up, Down, Left, Right with Reverse and Axis.
//   - Positions is a sorted, de-duplicated tuple of coordinates with a
//     stable Key, suitable as a history or memoization key.
//   - Grid wraps the row-major lines of a puzzle input.
//
// Neighbor order:
//
//	up, down, left, right, then (with diagonals) up-left, up-right,
//	down-left, down-right.
//
// The order matters for reproducible traces but not for correctness.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMarkerNotFound: a required marker (e.g. start) is absent.
//   - ErrNotDigit: a weight grid contains a non-digit cell.
//   - ErrBadDirection: a direction label cannot be parsed.
package grid
