// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions; panics are reserved for programmer errors
// on the fixed-size surface, where shapes are part of the type.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so that wrapped chains read as
// "Mul: ValidateMulCompatible: matrix: dimension mismatch" and stay greppable.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> numeric policy (NaN/Inf) -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (column x or row y) is outside valid bounds.
	// Public indexers (Value/SetValue) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Width != b.Height, or MulVec
	// where the vector dimension differs from the matrix height.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was written while the Dense was
	// built WithValidateNaNInf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a zero pivot is encountered during LU or
	// inversion (no pivoting, deterministic).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidRange is returned by RandomFill when min > max or a bound is
	// not finite.
	ErrInvalidRange = errors.New("matrix: invalid value range")
)
