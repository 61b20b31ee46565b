// SPDX-License-Identifier: MIT

// Package vector - shared read-only kernels.
//
// Purpose:
//   - Implement every reduction (dot, length, distance), the tolerant
//     comparison and the textual form once, for both Vector and Fixed.
//   - Both flavours satisfy the unexported components interface; the generic
//     helpers below are instantiated per flavour, so there is no interface
//     boxing on the hot path.
//
// Complexity quicksheet:
//   - dot/sumSquares/distance/equal: O(n) time, O(1) space.
//   - format: O(n) time and space.
package vector

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/tensormath/internal/numeric"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "{"
	_fmtClose = " }"
	_fmtSep   = " "
	_fmtPrec  = 6 // matches the fixed six-decimal diagnostic format
)

// components is the read-only surface shared by Vector and Fixed.
type components interface {
	Dim() int
	at(i int) float64 // unchecked; callers guarantee 0 <= i < Dim()
}

// dot returns Σ a[i]*b[i]. Callers guarantee equal dimensions.
func dot[V components](a, b V) float64 {
	sum := 0.0
	n := a.Dim()
	for i := 0; i < n; i++ {
		sum += a.at(i) * b.at(i)
	}

	return sum
}

// length returns the Euclidean norm: square root of the sum of squares.
func length[V components](v V) float64 {
	sum := 0.0
	n := v.Dim()
	for i := 0; i < n; i++ {
		x := v.at(i)
		sum += x * x
	}

	return math.Sqrt(sum)
}

// distance returns ||a - b|| without materializing the difference.
func distance[V components](a, b V) float64 {
	sum := 0.0
	n := a.Dim()
	for i := 0; i < n; i++ {
		d := a.at(i) - b.at(i)
		sum += d * d
	}

	return math.Sqrt(sum)
}

// equal compares componentwise under the tolerant rule; dimension mismatch is
// simply "not equal".
func equal[V components](a, b V, eps float64) bool {
	n := a.Dim()
	if n != b.Dim() {
		return false
	}
	for i := 0; i < n; i++ {
		if !numeric.Equal(a.at(i), b.at(i), eps) {
			return false
		}
	}

	return true
}

// equalScalar reports whether every component equals s within eps.
func equalScalar[V components](v V, s, eps float64) bool {
	n := v.Dim()
	for i := 0; i < n; i++ {
		if !numeric.Equal(v.at(i), s, eps) {
			return false
		}
	}

	return true
}

// format renders "{ v0 v1 ... }" with six decimals per component.
func format[V components](v V) string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	n := v.Dim()
	for i := 0; i < n; i++ {
		sb.WriteString(_fmtSep)
		sb.WriteString(strconv.FormatFloat(v.at(i), 'f', _fmtPrec, 64))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
