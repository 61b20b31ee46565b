// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of width w and height h.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(w, h int) (*Dense, error) {
	return NewDense(w, h)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewSquare(n)
	if err != nil {
		return nil, err
	}
	I.SetIdentity()

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Width(), m.Height())
}

// IdentityLike returns I with dimension = Width(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Width())
}

// ToDense copies any Matrix into a fresh *Dense (a *Dense input is cloned).
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone(), nil
	}

	return asDense(m)
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(b.Width · a.Height · a.Width).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
func HadamardProd(a, b Matrix) (*Dense, error) { return Hadamard(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// Chain multiplies left to right: ms[0] × ms[1] × ... .
// Errors: ErrNilMatrix when ms is empty or holds nil, ErrDimensionMismatch.
func Chain(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf("Chain", ErrNilMatrix)
	}
	acc, err := ToDense(ms[0])
	if err != nil {
		return nil, matrixErrorf("Chain", err)
	}
	for _, m := range ms[1:] {
		if acc, err = Mul(acc, m); err != nil {
			return nil, matrixErrorf("Chain", err)
		}
	}

	return acc, nil
}
