// SPDX-License-Identifier: MIT

// Package matrix - Fixed, the compile-time-sized matrix.
//
// Purpose:
//   - Carry width and height in the type so shape errors between different
//     instantiations are compile errors; a Matrix4 cannot be added to a Matrix3.
//   - Keep value semantics: a Fixed is an array of vector.Fixed columns inside a
//     struct; it never allocates and copies on assignment.
//
// Type parameters:
//   - W: the row array type; len(W) is the width.
//   - H: the column array type; len(H) is the height.
//   - C: the column storage, an array of len(W) columns of type vector.Fixed[H].
//
// Go has no integer type parameters, so W and len(C) are two spellings of the
// width. The aliases below keep them consistent; a hand-written instantiation
// that disagrees panics with ErrDimensionMismatch on first use.
//
// Error policy:
//   - Value/SetValue keep the error-returning contract of Matrix.
//   - Everything else treats shape and index violations as programmer errors
//     and panics (Row, Column, non-square Mul/Transposed/Inverse shapes).
package matrix

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tensormath/vector"
)

const (
	ctxFixed        = "Fixed"
	ctxFixedDense   = "Fixed.SetDense"
	ctxFixedInverse = "Fixed.Inverse"
)

// fixedErrorf mirrors denseErrorf for the fixed-size surface.
func fixedErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Fixed.%s(%d,%d): %w", method, x, y, err)
}

// Columns lists the column-storage array types for a Fixed with height len(H).
type Columns[H vector.Array] interface {
	[1]vector.Fixed[H] | [2]vector.Fixed[H] | [3]vector.Fixed[H] | [4]vector.Fixed[H] |
		[5]vector.Fixed[H] | [6]vector.Fixed[H] | [7]vector.Fixed[H] | [8]vector.Fixed[H]
}

// Fixed is a len(W)×len(H) matrix stored as len(W) fixed columns.
// The zero value is the zero matrix.
type Fixed[W, H vector.Array, C Columns[H]] struct {
	cols C
}

// Common fixed-size matrices. Matrix4x3 is 4 wide and 3 tall; Matrix4x1 is the
// one-row matrix that converts to and from a Vector4.
type (
	Matrix2   = Fixed[[2]float64, [2]float64, [2]vector.Vector2]
	Matrix3   = Fixed[[3]float64, [3]float64, [3]vector.Vector3]
	Matrix4   = Fixed[[4]float64, [4]float64, [4]vector.Vector4]
	Matrix4x3 = Fixed[[4]float64, [3]float64, [4]vector.Vector3]
	Matrix4x1 = Fixed[[4]float64, [1]float64, [4]vector.Fixed[[1]float64]]
)

var (
	_ Matrix = Matrix4{}
	_ Matrix = Matrix4x3{}
)

// FixedFromVector builds a one-row style matrix whose first row is v; every
// other cell is zero. ToVector is its inverse.
func FixedFromVector[W, H vector.Array, C Columns[H]](v vector.Fixed[W]) Fixed[W, H, C] {
	var m Fixed[W, H, C]
	m.SetRow(0, v)

	return m
}

// FixedFromDense copies d into a Fixed of the same shape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func FixedFromDense[W, H vector.Array, C Columns[H]](d *Dense) (Fixed[W, H, C], error) {
	var m Fixed[W, H, C]
	err := m.SetDense(d)

	return m, err
}

// Width returns the number of columns. It panics when W and C disagree.
func (m Fixed[W, H, C]) Width() int {
	var w W
	if len(w) != len(m.cols) {
		panic(matrixErrorf(ctxFixed, ErrDimensionMismatch))
	}

	return len(w)
}

// Height returns the number of rows.
func (m Fixed[W, H, C]) Height() int {
	var h H
	return len(h)
}

func (m Fixed[W, H, C]) inRange(x, y int) bool {
	return x >= 0 && x < m.Width() && y >= 0 && y < m.Height()
}

// Value returns the element in column x, row y.
// Errors: ErrOutOfRange.
func (m Fixed[W, H, C]) Value(x, y int) (float64, error) {
	if !m.inRange(x, y) {
		return 0, fixedErrorf(ctxValue, x, y, ErrOutOfRange)
	}

	return m.cols[x].MustAt(y), nil
}

// SetValue stores v in column x, row y.
// Errors: ErrOutOfRange.
func (m *Fixed[W, H, C]) SetValue(x, y int, v float64) error {
	if !m.inRange(x, y) {
		return fixedErrorf(ctxSetValue, x, y, ErrOutOfRange)
	}
	m.set(x, y, v)

	return nil
}

// set writes an in-range cell. Columns are values, so write back the copy.
func (m *Fixed[W, H, C]) set(x, y int, v float64) {
	col := m.cols[x]
	col.MustSet(y, v)
	m.cols[x] = col
}

// SetZero sets every element to 0.
func (m *Fixed[W, H, C]) SetZero() { m.cols = *new(C) }

// SetIdentity writes 1 on the main diagonal and 0 elsewhere (any rectangle).
func (m *Fixed[W, H, C]) SetIdentity() {
	m.SetZero()
	n := min(m.Width(), m.Height())
	for i := 0; i < n; i++ {
		m.set(i, i, 1)
	}
}

// FillArray copies flat in row-major order; a shorter flat fills only the
// leading cells and values beyond Width()*Height() are ignored.
func (m *Fixed[W, H, C]) FillArray(flat []float64) {
	w := m.Width()
	n := min(len(flat), w*m.Height())
	for i := 0; i < n; i++ {
		m.set(i%w, i/w, flat[i])
	}
}

// Array returns the elements in row-major order.
func (m Fixed[W, H, C]) Array() []float64 {
	w, h := m.Width(), m.Height()
	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = m.cols[x].MustAt(y)
		}
	}

	return out
}

// Row returns row y as a fixed vector of the matrix width.
// Panics when y is out of range.
func (m Fixed[W, H, C]) Row(y int) vector.Fixed[W] {
	var out vector.Fixed[W]
	w := m.Width()
	for x := 0; x < w; x++ {
		out.MustSet(x, m.cols[x].MustAt(y))
	}

	return out
}

// Column returns column x. Panics when x is out of range.
func (m Fixed[W, H, C]) Column(x int) vector.Fixed[H] {
	if x < 0 || x >= m.Width() {
		panic(fixedErrorf(ctxColumn, x, 0, ErrOutOfRange))
	}

	return m.cols[x]
}

// SetRow overwrites row y with v. Panics when y is out of range.
func (m *Fixed[W, H, C]) SetRow(y int, v vector.Fixed[W]) {
	w := m.Width()
	for x := 0; x < w; x++ {
		m.set(x, y, v.MustAt(x))
	}
}

// SetColumn overwrites column x with v. Panics when x is out of range.
func (m *Fixed[W, H, C]) SetColumn(x int, v vector.Fixed[H]) {
	if x < 0 || x >= m.Width() {
		panic(fixedErrorf(ctxSetColumn, x, 0, ErrOutOfRange))
	}
	m.cols[x] = v
}

// Mul returns the product m × o. Both operands share one type, so the product
// is only defined for square shapes; a non-square instantiation panics with
// ErrDimensionMismatch. Use the package-level Mul for rectangular products.
// Complexity: O(n^3).
func (m Fixed[W, H, C]) Mul(o Fixed[W, H, C]) Fixed[W, H, C] {
	n := m.Width()
	if n != m.Height() {
		panic(matrixErrorf(opMul, ErrDimensionMismatch))
	}

	var out Fixed[W, H, C]
	var x, y, k int
	var sum float64
	for x = 0; x < n; x++ {
		bcol := o.cols[x]
		var col vector.Fixed[H]
		for y = 0; y < n; y++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				sum += m.cols[k].MustAt(y) * bcol.MustAt(k)
			}
			col.MustSet(y, sum)
		}
		out.cols[x] = col
	}

	return out
}

// MulVec returns v · m: out[x] = v · col_x(m). The height-sized input maps to
// a width-sized output, so the shapes are checked by the compiler.
func (m Fixed[W, H, C]) MulVec(v vector.Fixed[H]) vector.Fixed[W] {
	var out vector.Fixed[W]
	w := m.Width()
	for x := 0; x < w; x++ {
		out.MustSet(x, v.Dot(m.cols[x]))
	}

	return out
}

// Add returns m + o.
func (m Fixed[W, H, C]) Add(o Fixed[W, H, C]) Fixed[W, H, C] {
	w := m.Width()
	for x := 0; x < w; x++ {
		m.cols[x] = m.cols[x].Add(o.cols[x])
	}

	return m
}

// Sub returns m - o.
func (m Fixed[W, H, C]) Sub(o Fixed[W, H, C]) Fixed[W, H, C] {
	w := m.Width()
	for x := 0; x < w; x++ {
		m.cols[x] = m.cols[x].Sub(o.cols[x])
	}

	return m
}

// Scale returns α·m.
func (m Fixed[W, H, C]) Scale(alpha float64) Fixed[W, H, C] {
	w := m.Width()
	for x := 0; x < w; x++ {
		m.cols[x] = m.cols[x].Scale(alpha)
	}

	return m
}

// Transposed returns mᵀ. Only square shapes keep the same type; a non-square
// instantiation panics with ErrDimensionMismatch (use Transpose for those).
func (m Fixed[W, H, C]) Transposed() Fixed[W, H, C] {
	n := m.Width()
	if n != m.Height() {
		panic(matrixErrorf(opTranspose, ErrDimensionMismatch))
	}
	var out Fixed[W, H, C]
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			out.set(y, x, m.cols[x].MustAt(y))
		}
	}

	return out
}

// Equal reports whether every column of m equals the matching column of o
// under the tolerant rule (WithEpsilon, default DefaultEpsilon).
func (m Fixed[W, H, C]) Equal(o Fixed[W, H, C], opts ...Option) bool {
	opt := gatherOptions(opts...).vectorOption()
	w := m.Width()
	for x := 0; x < w; x++ {
		if !m.cols[x].Equal(o.cols[x], opt) {
			return false
		}
	}

	return true
}

// ToVector returns the first row, the inverse of FixedFromVector.
func (m Fixed[W, H, C]) ToVector() vector.Fixed[W] { return m.Row(0) }

// ToDense copies m into a fresh *Dense of the same shape.
func (m Fixed[W, H, C]) ToDense() *Dense {
	d, _ := NewDense(m.Width(), m.Height()) // both > 0 by type
	for x := 0; x < d.w; x++ {
		copy(d.col(x), m.cols[x].Components())
	}

	return d
}

// SetDense overwrites m with the contents of d.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m left unchanged).
func (m *Fixed[W, H, C]) SetDense(d *Dense) error {
	if err := ValidateNotNil(d); err != nil {
		return matrixErrorf(ctxFixedDense, err)
	}
	if err := ValidateSameShape(*m, d); err != nil {
		return matrixErrorf(ctxFixedDense, err)
	}
	for x := 0; x < d.w; x++ {
		col, err := vector.NewFixed[H](d.col(x)...)
		if err != nil {
			return matrixErrorf(ctxFixedDense, err)
		}
		m.cols[x] = col
	}

	return nil
}

// Inverse returns m⁻¹ computed by the Dense LU kernel.
// Errors: ErrDimensionMismatch (non-square), ErrSingular.
func (m Fixed[W, H, C]) Inverse() (Fixed[W, H, C], error) {
	var out Fixed[W, H, C]
	inv, err := Inverse(m)
	if err != nil {
		return out, matrixErrorf(ctxFixedInverse, err)
	}
	if err = out.SetDense(inv); err != nil {
		return out, matrixErrorf(ctxFixedInverse, err)
	}

	return out, nil
}

// RandomFill overwrites every element with a value drawn uniformly from
// [lo, hi), column by column. A nil rng uses the global source.
// Errors: ErrInvalidRange.
func (m *Fixed[W, H, C]) RandomFill(rng *rand.Rand, lo, hi float64) error {
	if err := ValidateRange(lo, hi); err != nil {
		return matrixErrorf(ctxRandomFill, err)
	}
	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	}
	w, h := m.Width(), m.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			m.set(x, y, lo+draw()*(hi-lo))
		}
	}

	return nil
}

// String renders one line per row: "[ v0 v1 ... ]\n".
func (m Fixed[W, H, C]) String() string { return formatRows(m) }
