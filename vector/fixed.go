// SPDX-License-Identifier: MIT

// Package vector - Fixed, the compile-time-sized flavour.
//
// Purpose:
//   - Carry the dimension in the type: Fixed[[3]float64] and Fixed[[4]float64]
//     are different types, so mixing them is a compile error and binary
//     operations need no runtime validation.
//   - Keep value semantics: a Fixed is a plain array inside a struct; it never
//     allocates and copies on assignment.
//
// Notes:
//   - Go has no integer type parameters; the dimension is carried by the array
//     type in the Array constraint (1..8 components).
//   - Indexing goes through len(v.data) loops; range over a type parameter
//     with several array lengths is not available.
package vector

import (
	"math"

	"github.com/katalvlaran/tensormath/internal/numeric"
)

// Array lists the backing array types a Fixed vector may use.
type Array interface {
	[1]float64 | [2]float64 | [3]float64 | [4]float64 |
		[5]float64 | [6]float64 | [7]float64 | [8]float64
}

// Fixed is a vector whose dimension is fixed by its array type A.
// The zero value is the zero vector.
type Fixed[A Array] struct {
	data A
}

// Common fixed-size vectors.
type (
	Vector2 = Fixed[[2]float64]
	Vector3 = Fixed[[3]float64]
	Vector4 = Fixed[[4]float64]
)

// NewFixed builds a fixed vector from an explicit literal list.
// Errors: ErrDimensionMismatch when len(values) differs from the dimension of A.
func NewFixed[A Array](values ...float64) (Fixed[A], error) {
	var out Fixed[A]
	if len(values) != len(out.data) {
		return out, vectorErrorf(opNew, ErrDimensionMismatch)
	}
	for i := 0; i < len(values); i++ {
		out.data[i] = values[i]
	}

	return out, nil
}

// MustFixed is NewFixed for literals known to match; it panics otherwise.
func MustFixed[A Array](values ...float64) Fixed[A] {
	v, err := NewFixed[A](values...)
	if err != nil {
		panic(err)
	}

	return v
}

// Splat returns a fixed vector with every component set to s.
func Splat[A Array](s float64) Fixed[A] {
	var out Fixed[A]
	out.SetScalar(s)

	return out
}

// FixedFrom converts a runtime-sized vector into a fixed one.
// Errors: ErrDimensionMismatch when v.Dim() differs from the dimension of A.
func FixedFrom[A Array](v Vector) (Fixed[A], error) {
	var out Fixed[A]
	if v.Dim() != len(out.data) {
		return out, vectorErrorf(opConvert, ErrDimensionMismatch)
	}
	for i := 0; i < len(out.data); i++ {
		out.data[i] = v.data[i]
	}

	return out, nil
}

// Dim returns the number of components (a property of the type).
func (v Fixed[A]) Dim() int { return len(v.data) }

func (v Fixed[A]) at(i int) float64 { return v.data[i] }

// At returns component i.
// Errors: ErrIndexOutOfRange when i is outside [0, Dim()).
func (v Fixed[A]) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, indexErrorf(opAt, i, len(v.data))
	}

	return v.data[i], nil
}

// Set assigns component i.
// Errors: ErrIndexOutOfRange when i is outside [0, Dim()).
func (v *Fixed[A]) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return indexErrorf(opSet, i, len(v.data))
	}
	v.data[i] = x

	return nil
}

// MustAt is the unchecked fast path of At: it panics when i is outside
// [0, Dim()).
func (v Fixed[A]) MustAt(i int) float64 { return v.component(i) }

// MustSet is the fast path of Set; it panics when i is outside [0, Dim()).
func (v *Fixed[A]) MustSet(i int, x float64) {
	if i < 0 || i >= len(v.data) {
		panic(indexErrorf(opSet, i, len(v.data)))
	}
	v.data[i] = x
}

// X returns component 0.
func (v Fixed[A]) X() float64 { return v.data[0] }

// Y returns component 1. Panics if Dim() < 2.
func (v Fixed[A]) Y() float64 { return v.component(1) }

// Z returns component 2. Panics if Dim() < 3.
func (v Fixed[A]) Z() float64 { return v.component(2) }

// W returns component 3. Panics if Dim() < 4.
func (v Fixed[A]) W() float64 { return v.component(3) }

func (v Fixed[A]) component(i int) float64 {
	if i < 0 || i >= len(v.data) {
		panic(indexErrorf(opAt, i, len(v.data)))
	}

	return v.data[i]
}

// Components returns the values as a fresh slice.
func (v Fixed[A]) Components() []float64 {
	out := make([]float64, len(v.data))
	for i := 0; i < len(v.data); i++ {
		out[i] = v.data[i]
	}

	return out
}

// ToVector converts v into a runtime-sized Vector.
func (v Fixed[A]) ToVector() Vector { return Vector{data: v.Components()} }

// SetValues copies as many values as fit; see Vector.SetValues.
func (v *Fixed[A]) SetValues(values []float64) {
	n := min(len(v.data), len(values))
	for i := 0; i < n; i++ {
		v.data[i] = values[i]
	}
}

// SetScalar sets every component to s.
func (v *Fixed[A]) SetScalar(s float64) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] = s
	}
}

// SetZero sets every component to 0.
func (v *Fixed[A]) SetZero() { v.data = *new(A) }

// ---------- scalar operations ----------

// AddScalar returns v + s componentwise.
func (v Fixed[A]) AddScalar(s float64) Fixed[A] {
	v.AddScalarInPlace(s)
	return v
}

// SubScalar returns v - s componentwise.
func (v Fixed[A]) SubScalar(s float64) Fixed[A] {
	v.SubScalarInPlace(s)
	return v
}

// Scale returns v * s componentwise.
func (v Fixed[A]) Scale(s float64) Fixed[A] {
	v.ScaleInPlace(s)
	return v
}

// DivScalar returns v / s componentwise.
func (v Fixed[A]) DivScalar(s float64) Fixed[A] {
	v.DivScalarInPlace(s)
	return v
}

// AddScalarInPlace performs v += s.
func (v *Fixed[A]) AddScalarInPlace(s float64) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] += s
	}
}

// SubScalarInPlace performs v -= s.
func (v *Fixed[A]) SubScalarInPlace(s float64) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] -= s
	}
}

// ScaleInPlace performs v *= s.
func (v *Fixed[A]) ScaleInPlace(s float64) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] *= s
	}
}

// DivScalarInPlace performs v /= s.
func (v *Fixed[A]) DivScalarInPlace(s float64) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] /= s
	}
}

// Neg returns -v.
func (v Fixed[A]) Neg() Fixed[A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] = -v.data[i]
	}

	return v
}

// ---------- vector operations ----------

// Add returns v + o.
func (v Fixed[A]) Add(o Fixed[A]) Fixed[A] {
	v.AddInPlace(o)
	return v
}

// Sub returns v - o.
func (v Fixed[A]) Sub(o Fixed[A]) Fixed[A] {
	v.SubInPlace(o)
	return v
}

// Mul returns the componentwise product v ⊙ o.
func (v Fixed[A]) Mul(o Fixed[A]) Fixed[A] {
	v.MulInPlace(o)
	return v
}

// Div returns the componentwise quotient.
func (v Fixed[A]) Div(o Fixed[A]) Fixed[A] {
	v.DivInPlace(o)
	return v
}

// AddInPlace performs v += o.
func (v *Fixed[A]) AddInPlace(o Fixed[A]) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] += o.data[i]
	}
}

// SubInPlace performs v -= o.
func (v *Fixed[A]) SubInPlace(o Fixed[A]) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] -= o.data[i]
	}
}

// MulInPlace performs v *= o componentwise.
func (v *Fixed[A]) MulInPlace(o Fixed[A]) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] *= o.data[i]
	}
}

// DivInPlace performs v /= o componentwise.
func (v *Fixed[A]) DivInPlace(o Fixed[A]) {
	for i := 0; i < len(v.data); i++ {
		v.data[i] /= o.data[i]
	}
}

// ---------- comparison ----------

// Equal reports whether every pair of components is equal within tolerance.
func (v Fixed[A]) Equal(o Fixed[A], opts ...Option) bool {
	return equal(v, o, Gather(opts...).eps)
}

// EqualScalar reports whether every component equals s within tolerance.
func (v Fixed[A]) EqualScalar(s float64, opts ...Option) bool {
	return equalScalar(v, s, Gather(opts...).eps)
}

// ---------- reductions ----------

// Length returns the Euclidean norm ||v||.
func (v Fixed[A]) Length() float64 { return length(v) }

// Dot returns Σ v[i]*o[i].
func (v Fixed[A]) Dot(o Fixed[A]) float64 { return dot(v, o) }

// Distance returns ||v - o||.
func (v Fixed[A]) Distance(o Fixed[A]) float64 { return distance(v, o) }

// ---------- derived vectors ----------

// Normalized returns v / ||v||; a zero vector yields NaN components.
func (v Fixed[A]) Normalized() Fixed[A] { return v.DivScalar(v.Length()) }

// Inverse returns 1/v componentwise. Handy for slab tests, where zero
// components become ±Inf and rule the axis out without branching.
func (v Fixed[A]) Inverse() Fixed[A] { return Splat[A](1).Div(v) }

// Abs returns |v| componentwise.
func (v Fixed[A]) Abs() Fixed[A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] = math.Abs(v.data[i])
	}

	return v
}

// Min returns the componentwise minimum of v and o. A NaN component loses to
// the other operand's component.
func (v Fixed[A]) Min(o Fixed[A]) Fixed[A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] = numeric.MinNum(v.data[i], o.data[i])
	}

	return v
}

// Max returns the componentwise maximum of v and o.
func (v Fixed[A]) Max(o Fixed[A]) Fixed[A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] = numeric.MaxNum(v.data[i], o.data[i])
	}

	return v
}

// Reflect mirrors v about the hyperplane with normal n: v - 2·(v·n / n·n)·n.
func (v Fixed[A]) Reflect(n Fixed[A]) Fixed[A] {
	return v.Sub(n.Scale(2 * v.Dot(n) / n.Dot(n)))
}

// Resized extracts components [start, end) into a runtime-sized vector,
// zero-filling indices past Dim(). Errors: ErrInvalidRange.
func (v Fixed[A]) Resized(start, end int) (Vector, error) {
	return v.ToVector().Resized(start, end)
}

// String renders "{ v0 v1 ... }" with six decimals.
func (v Fixed[A]) String() string { return format(v) }
