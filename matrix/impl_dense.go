// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Own a single contiguous column-major buffer: column x occupies
//     data[x*h : (x+1)*h], so a column is a contiguous vector and the element
//     (x, y) lives at offset x*h + y.
//   - Guarantee safety at the public surface: Value/SetValue return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce an optional numeric policy (rejection of NaN/Inf) captured at
//     construction.
//
// Complexity quicksheet:
//   - NewDense: O(w*h) zero-init; Value/SetValue: O(1); Clone/Array/FillArray: O(w*h);
//     Row: O(w); Column: O(h); Resized: O(w'*h').

package matrix

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/tensormath/vector"
)

// ---------- error context tags ----------

const (
	ctxValue      = "Value"
	ctxSetValue   = "SetValue"
	ctxRow        = "Row"
	ctxColumn     = "Column"
	ctxSetColumn  = "SetColumn"
	ctxFillArray  = "FillArray"
	ctxApply      = "Apply"
	ctxResized    = "Resized"
	ctxRandomFill = "RandomFill"
	ctxFromVector = "FromVector"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = " ]\n"
	_fmtSep      = " "
	_fmtPrec     = 6
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Inputs:
//   - method: context tag (ctxValue/ctxSetValue/...)
//   - x, y: column and row coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, x, y, err)
}

// Dense is a concrete column-major matrix.
//   - w,h hold dimensions (width = number of columns, height = number of rows).
//   - data is a flat buffer of length w*h; column x is data[x*h:(x+1)*h].
//   - validateNaNInf enables optional NaN/Inf rejection (policy from options.go).
type Dense struct {
	w, h           int
	data           []float64
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a w×h zero matrix (w columns, h rows).
//
// Implementation:
//   - Stage 1: validate w>0 && h>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (numeric policy).
//   - Stage 3: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func NewDense(w, h int, opts ...Option) (*Dense, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		w:              w,
		h:              h,
		data:           make([]float64, w*h),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewSquare creates an n×n zero matrix.
func NewSquare(n int, opts ...Option) (*Dense, error) {
	return NewDense(n, n, opts...)
}

// FromVector builds a flat 1-row matrix (width = v.Dim(), height = 1) whose
// only row is v. ToVector is its inverse.
// Errors: ErrInvalidDimensions for an empty vector.
func FromVector(v vector.Vector, opts ...Option) (*Dense, error) {
	m, err := NewDense(v.Dim(), 1, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromVector, err)
	}
	copy(m.data, v.Components()) // h == 1: column-major == row order

	return m, nil
}

// FromColumn builds a single-column matrix (width 1, height = v.Dim()).
// Errors: ErrInvalidDimensions for an empty vector.
func FromColumn(v vector.Vector, opts ...Option) (*Dense, error) {
	m, err := NewDense(1, v.Dim(), opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromVector, err)
	}
	copy(m.data, v.Components())

	return m, nil
}

// Width returns the number of columns.
func (m *Dense) Width() int { return m.w }

// Height returns the number of rows.
func (m *Dense) Height() int { return m.h }

// Shape returns (width, height).
func (m *Dense) Shape() (w, h int) { return m.w, m.h }

// indexOf computes the column-major offset x*h + y or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(x, y int) (int, error) {
	if x < 0 || x >= m.w {
		return 0, ErrOutOfRange
	}
	if y < 0 || y >= m.h {
		return 0, ErrOutOfRange
	}

	return x*m.h + y, nil
}

// Value returns the element in column x, row y, or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Value(x, y int) (float64, error) {
	off, err := m.indexOf(x, y)
	if err != nil {
		return 0, denseErrorf(ctxValue, x, y, err)
	}

	return m.data[off], nil
}

// SetValue stores v in column x, row y.
//
// Errors:
//   - ErrOutOfRange for bounds.
//   - ErrNaNInf for non-finite v when the matrix was built WithValidateNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) SetValue(x, y int, v float64) error {
	off, err := m.indexOf(x, y)
	if err != nil {
		return denseErrorf(ctxSetValue, x, y, err)
	}
	if m.validateNaNInf {
		if err = ValidateFinite(v); err != nil {
			return denseErrorf(ctxSetValue, x, y, err)
		}
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(w*h).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		w:              m.w,
		h:              m.h,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// SetZero sets every element to 0.
func (m *Dense) SetZero() {
	clear(m.data)
}

// SetIdentity writes 1 on the main diagonal (x == y) and 0 elsewhere.
// Defined for any rectangle; the diagonal stops at min(w, h).
func (m *Dense) SetIdentity() {
	clear(m.data)
	n := min(m.w, m.h)
	for i := 0; i < n; i++ {
		m.data[i*m.h+i] = 1
	}
}

// FillArray copies flat into the matrix in row-major order: left to right,
// then top to bottom.
//
// Behavior highlights:
//   - A shorter flat fills only the leading cells; the rest keep their values.
//   - Values beyond w*h are ignored.
//   - Under WithValidateNaNInf the whole prefix is checked before any write,
//     so a rejected call leaves the matrix unchanged.
//
// Errors:
//   - ErrNaNInf (policy only).
//
// Complexity:
//   - Time O(min(len(flat), w*h)).
func (m *Dense) FillArray(flat []float64) error {
	n := min(len(flat), m.w*m.h)
	if m.validateNaNInf {
		for i := 0; i < n; i++ {
			if err := ValidateFinite(flat[i]); err != nil {
				return denseErrorf(ctxFillArray, i%m.w, i/m.w, err)
			}
		}
	}
	for i := 0; i < n; i++ {
		x, y := i%m.w, i/m.w
		m.data[x*m.h+y] = flat[i]
	}

	return nil
}

// Array returns the elements in row-major order; FillArray(Array()) is the
// identity.
// Complexity: O(w*h).
func (m *Dense) Array() []float64 {
	out := make([]float64, m.w*m.h)
	var x, y int
	for y = 0; y < m.h; y++ {
		for x = 0; x < m.w; x++ {
			out[y*m.w+x] = m.data[x*m.h+y]
		}
	}

	return out
}

// Row builds a new vector holding row y (one element per column).
// Errors: ErrOutOfRange.
// Complexity: O(w); strided reads.
func (m *Dense) Row(y int) (vector.Vector, error) {
	if y < 0 || y >= m.h {
		return vector.Vector{}, denseErrorf(ctxRow, 0, y, ErrOutOfRange)
	}
	vals := make([]float64, m.w)
	for x := 0; x < m.w; x++ {
		vals[x] = m.data[x*m.h+y]
	}

	return vector.Of(vals...)
}

// Column returns a copy of column x. Columns are never aliased across
// instances; mutate through SetColumn.
// Errors: ErrOutOfRange.
// Complexity: O(h); contiguous read.
func (m *Dense) Column(x int) (vector.Vector, error) {
	if x < 0 || x >= m.w {
		return vector.Vector{}, denseErrorf(ctxColumn, x, 0, ErrOutOfRange)
	}

	return vector.Of(m.col(x)...)
}

// SetColumn overwrites column x with v.
// Errors: ErrOutOfRange, ErrDimensionMismatch (v.Dim() != Height()), ErrNaNInf (policy).
func (m *Dense) SetColumn(x int, v vector.Vector) error {
	if x < 0 || x >= m.w {
		return denseErrorf(ctxSetColumn, x, 0, ErrOutOfRange)
	}
	if err := ValidateVecLen(v.Dim(), m.h); err != nil {
		return denseErrorf(ctxSetColumn, x, 0, err)
	}
	vals := v.Components()
	if m.validateNaNInf {
		for y, f := range vals {
			if err := ValidateFinite(f); err != nil {
				return denseErrorf(ctxSetColumn, x, y, err)
			}
		}
	}
	copy(m.col(x), vals)

	return nil
}

// col returns the live storage of column x. Internal only.
func (m *Dense) col(x int) []float64 {
	return m.data[x*m.h : (x+1)*m.h]
}

// Resized returns a new w×h matrix holding the overlapping sub-rectangle of m;
// newly introduced cells are zero. The numeric policy is preserved.
// Errors: ErrInvalidDimensions.
// Complexity: O(w*h).
func (m *Dense) Resized(w, h int) (*Dense, error) {
	out, err := NewDense(w, h)
	if err != nil {
		return nil, matrixErrorf(ctxResized, err)
	}
	out.validateNaNInf = m.validateNaNInf
	cw, ch := min(m.w, w), min(m.h, h)
	for x := 0; x < cw; x++ {
		copy(out.data[x*h:x*h+ch], m.data[x*m.h:x*m.h+ch])
	}

	return out, nil
}

// ToVector returns the first row, the inverse of FromVector.
func (m *Dense) ToVector() (vector.Vector, error) {
	return m.Row(0)
}

// RandomFill overwrites every element with a value drawn uniformly from
// [lo, hi) using rng, in column-major order. A nil rng uses the global source.
// Errors: ErrInvalidRange when lo > hi or a bound is not finite.
// Complexity: O(w*h).
func (m *Dense) RandomFill(rng *rand.Rand, lo, hi float64) error {
	if err := ValidateRange(lo, hi); err != nil {
		return matrixErrorf(ctxRandomFill, err)
	}
	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	}
	span := hi - lo
	for i := range m.data {
		m.data[i] = lo + draw()*span
	}

	return nil
}

// Do visits each element in column-major order and calls f(x, y, v); it stops
// early when f returns false.
// Complexity: O(w*h), Space O(1).
func (m *Dense) Do(f func(x, y int, v float64) bool) {
	var x, y, base int
	for x = 0; x < m.w; x++ {
		base = x * m.h
		for y = 0; y < m.h; y++ {
			if !f(x, y, m.data[base+y]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(x, y, v) in place, column-major.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Complexity:
//   - Time O(w*h), Space O(1).
func (m *Dense) Apply(f func(x, y int, v float64) float64) error {
	var x, y, base int
	var nv float64
	for x = 0; x < m.w; x++ {
		base = x * m.h
		for y = 0; y < m.h; y++ {
			nv = f(x, y, m.data[base+y])
			if m.validateNaNInf {
				if err := ValidateFinite(nv); err != nil {
					return denseErrorf(ctxApply, x, y, err)
				}
			}
			m.data[base+y] = nv
		}
	}

	return nil
}

// String renders one line per row: "[ v0 v1 ... ]\n", six decimals each.
// Complexity: O(w*h).
func (m *Dense) String() string {
	return formatRows(m)
}

// formatRows renders any Matrix row by row; shared with Fixed.
func formatRows(m Matrix) string {
	var b strings.Builder
	w, h := m.Width(), m.Height()
	for y := 0; y < h; y++ {
		b.WriteString(_fmtRowOpen)
		for x := 0; x < w; x++ {
			v, _ := m.Value(x, y) // in range by construction
			b.WriteString(_fmtSep)
			b.WriteString(strconv.FormatFloat(v, 'f', _fmtPrec, 64))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
