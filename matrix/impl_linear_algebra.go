// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix and matrix×vector products,
// transpose, scalar scaling, tolerant equality, and the Doolittle LU /
// inverse pair. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Conventions:
//   - (x, y) = (column, row). Mul requires a.Width == b.Height and yields a
//     b.Width × a.Height matrix with out(x, y) = row_y(a) · col_x(b).
//   - MulVec treats the vector as a row vector on the left: it requires
//     v.Dim == m.Height and yields out[x] = v · col_x(m), so len(out) == m.Width.
//   - Every kernel materializes non-Dense operands once (asDense) and then runs
//     on the flat column-major buffers; results are always fresh *Dense values.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tensormath/internal/numeric"
	"github.com/katalvlaran/tensormath/vector"
)

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opInverse   = "Inverse"
	opLU        = "LU"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a column-major copy
// read through Value. Callers validate m first.
// Complexity: O(1) for *Dense, O(w*h) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Width(), m.Height())
	if err != nil {
		return nil, err
	}
	var x, y int
	var v float64
	for x = 0; x < out.w; x++ {
		for y = 0; y < out.h; y++ {
			if v, err = m.Value(x, y); err != nil {
				return nil, err
			}
			out.data[x*out.h+y] = v
		}
	}

	return out, nil
}

// binaryDense validates a and b with check and materializes both.
func binaryDense(a, b Matrix, check func(a, b Matrix) error) (*Dense, *Dense, error) {
	if err := check(a, b); err != nil {
		return nil, nil, err
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, nil, err
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, nil, err
	}

	return ad, bd, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(w*h), Space O(w*h) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	ad, bd, err := binaryDense(a, b, ValidateBinarySameShape)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out, err := NewDense(ad.w, ad.h)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for i := range out.data {
		out.data[i] = ad.data[i] + sign*bd.data[i]
	}

	return out, nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Width == b.Height).
//   - Stage 2: allocate b.Width × a.Height result.
//   - Stage 3: triple loop x → y → k, out(x,y) = Σ_k a(k,y)·b(x,k).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed x→y→k order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(b.Width · a.Height · a.Width), Space O(b.Width · a.Height).
func Mul(a, b Matrix) (*Dense, error) {
	ad, bd, err := binaryDense(a, b, ValidateMulCompatible)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(bd.w, ad.h)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var x, y, k int
	var sum float64
	inner := ad.w
	for x = 0; x < out.w; x++ {
		bcol := bd.col(x)
		for y = 0; y < out.h; y++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				sum += ad.data[k*ad.h+y] * bcol[k]
			}
			out.data[x*out.h+y] = sum
		}
	}

	return out, nil
}

// MulVec returns v · m, the row vector v multiplied from the left:
// out[x] = Σ_y v[y]·m(x,y) = v · col_x(m).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (v.Dim() != m.Height()).
//
// Complexity:
//   - Time O(w*h), Space O(w).
func MulVec(m Matrix, v vector.Vector) (vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return vector.Vector{}, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v.Dim(), m.Height()); err != nil {
		return vector.Vector{}, matrixErrorf(opMulVec, err)
	}
	md, err := asDense(m)
	if err != nil {
		return vector.Vector{}, matrixErrorf(opMulVec, err)
	}

	vals := v.Components()
	out := make([]float64, md.w)
	var x, y int
	var sum float64
	for x = 0; x < md.w; x++ {
		col := md.col(x)
		sum = ZeroSum
		for y = 0; y < md.h; y++ {
			sum += vals[y] * col[y]
		}
		out[x] = sum
	}

	return vector.Of(out...)
}

// Transpose returns mᵀ (h×w). Complexity: O(w*h).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(md.h, md.w)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var x, y int
	for x = 0; x < md.w; x++ {
		for y = 0; y < md.h; y++ {
			// (x,y) in m becomes (y,x) in out; out has height md.w.
			out.data[y*out.h+x] = md.data[x*md.h+y]
		}
	}

	return out, nil
}

// Scale returns α·m. Complexity: O(w*h).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := md.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// Hadamard returns the element-wise product a ⊙ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Hadamard(a, b Matrix) (*Dense, error) {
	ad, bd, err := binaryDense(a, b, ValidateBinarySameShape)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	out, err := NewDense(ad.w, ad.h)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	for i := range out.data {
		out.data[i] = ad.data[i] * bd.data[i]
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and every element pair is
// equal under the tolerant rule (WithEpsilon, default DefaultEpsilon). The
// comparison walks column by column. Nil operands and shape mismatches are
// simply "not equal".
// Complexity: O(w*h).
func Equal(a, b Matrix, opts ...Option) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	eps := gatherOptions(opts...).eps
	w, h := a.Width(), a.Height()
	var x, y int
	for x = 0; x < w; x++ {
		for y = 0; y < h; y++ {
			av, errA := a.Value(x, y)
			bv, errB := b.Value(x, y)
			if errA != nil || errB != nil || !numeric.Equal(av, bv, eps) {
				return false
			}
		}
	}

	return true
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting). Indices below are (row i, column j); in column-major storage
// that element sits at j*n + i.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (if U[i,i]==0 during factorization).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - A zero pivot can occur for non-singular inputs that need row exchanges
//     (e.g. a permutation matrix); callers needing those should pivot upstream.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := a.w
	L, err := NewSquare(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewSquare(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	L.SetIdentity()

	at := func(i, j int) int { return j*n + i }
	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[at(i, k)] * U.data[at(k, j)]
			}
			U.data[at(i, j)] = a.data[at(i, j)] - sum
		}

		pivot = U.data[at(i, i)]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[at(j, k)] * U.data[at(k, i)]
			}
			L.data[at(j, i)] = (a.data[at(j, i)] - sum) / pivot
		}
	}

	return L, U, nil
}

// Inverse returns m⁻¹ via LU and one forward/backward substitution per column
// of the identity.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (propagated from LU).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (*Dense, error) {
	L, U, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := L.w
	inv, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	at := func(i, j int) int { return j*n + i }
	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
	)
	for col = 0; col < n; col++ {
		// L*y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[at(i, k)] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// U*x = y, written straight into column col (contiguous).
		x := inv.col(col)
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += U.data[at(i, k)] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[at(i, i)] // pivots checked by LU
		}
	}

	return inv, nil
}
