// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix surface shared by Dense and Fixed.
package matrix

// Matrix is a width×height grid of float64 values addressed by (x, y),
// where x selects the column and y the row.
//
// Both the runtime-sized *Dense and every instantiation of Fixed implement it,
// so the kernels in impl_linear_algebra.go accept either; *Dense operands hit
// a flat-buffer fast path, anything else goes through Value.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// Value retrieves the element in column x, row y.
	// Returns ErrOutOfRange if x∉[0,Width()) or y∉[0,Height()).
	Value(x, y int) (float64, error)
}
