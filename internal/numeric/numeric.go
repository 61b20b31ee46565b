// SPDX-License-Identifier: MIT

// Package numeric holds the scalar kernels shared by the vector and matrix
// packages: tolerant float comparison and NaN-ignoring min/max folds.
//
// Purpose:
//   - Keep a single source of truth for the comparison rule so that vectors,
//     fixed vectors and both matrix variants agree bit-for-bit.
//   - Stay allocation-free; every helper is a leaf function.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// MachineEpsilon is the float64 unit roundoff (2^-52).
const MachineEpsilon = 2.220446049250313e-16

// DefaultEpsilon is the default comparison tolerance: a small multiple of
// machine epsilon, wide enough to absorb a few roundings in a chain of ops.
const DefaultEpsilon = 10 * MachineEpsilon

// Equal reports whether a and b are equal within eps, either absolutely
// (|a-b| ≤ eps) or relative to the larger magnitude (|a-b| ≤ eps·max(|a|,|b|)).
// Complexity: O(1).
func Equal[T constraints.Float](a, b, eps T) bool {
	diff := abs(a - b)
	if diff <= eps {
		return true
	}

	return diff <= eps*max(abs(a), abs(b))
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T constraints.Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MinNum returns the smaller of acc and x. A NaN operand is dropped in favour
// of the other one, whichever side it sits on; only two NaNs give NaN.
func MinNum[T constraints.Float](acc, x T) T {
	if x < acc || acc != acc {
		return x
	}

	return acc
}

// MaxNum mirrors MinNum for the upper bound.
func MaxNum[T constraints.Float](acc, x T) T {
	if x > acc || acc != acc {
		return x
	}

	return acc
}

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
