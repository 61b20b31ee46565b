// SPDX-License-Identifier: MIT

// Package vector - Vector, the runtime-sized flavour.
//
// Purpose:
//   - Own a flat []float64 whose length is fixed at construction.
//   - Guarantee safety at the public surface: accessors and binary operations
//     return sentinel errors instead of panicking.
//   - Produce fresh vectors from the value forms; mutate only through the
//     pointer-receiver ...InPlace forms.
//
// Complexity quicksheet:
//   - New/Filled/Of/Clone: O(n); At/Set: O(1); elementwise ops: O(n).
package vector

import (
	"math"

	"github.com/katalvlaran/tensormath/internal/numeric"
)

// Vector is a runtime-sized vector of float64 values.
// The zero value has dimension 0 and is only useful as a placeholder.
type Vector struct {
	data []float64 // owned storage, len == dimension
}

var _ components = Vector{}

// New returns a zero-filled vector of dimension dim.
// Errors: ErrInvalidDimension when dim <= 0.
func New(dim int) (Vector, error) {
	if dim <= 0 {
		return Vector{}, vectorErrorf(opNew, ErrInvalidDimension)
	}

	return Vector{data: make([]float64, dim)}, nil
}

// Filled returns a vector of dimension dim with every component set to s.
func Filled(dim int, s float64) (Vector, error) {
	v, err := New(dim)
	if err != nil {
		return Vector{}, err
	}
	v.SetScalar(s)

	return v, nil
}

// Of builds a vector from an explicit literal list. The dimension equals
// len(values); the slice is copied.
func Of(values ...float64) (Vector, error) {
	if len(values) == 0 {
		return Vector{}, vectorErrorf(opNew, ErrInvalidDimension)
	}
	data := make([]float64, len(values))
	copy(data, values)

	return Vector{data: data}, nil
}

// MustOf is Of for literals known to be valid; it panics on an empty list.
func MustOf(values ...float64) Vector {
	v, err := Of(values...)
	if err != nil {
		panic(err)
	}

	return v
}

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v.data) }

func (v Vector) at(i int) float64 { return v.data[i] }

// At returns component i.
// Errors: ErrIndexOutOfRange when i is outside [0, Dim()).
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, indexErrorf(opAt, i, len(v.data))
	}

	return v.data[i], nil
}

// Set assigns component i.
// Errors: ErrIndexOutOfRange when i is outside [0, Dim()).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return indexErrorf(opSet, i, len(v.data))
	}
	v.data[i] = x

	return nil
}

// X returns component 0. Panics if the vector is empty.
func (v Vector) X() float64 { return v.component(0) }

// Y returns component 1. Panics if Dim() < 2.
func (v Vector) Y() float64 { return v.component(1) }

// Z returns component 2. Panics if Dim() < 3.
func (v Vector) Z() float64 { return v.component(2) }

// W returns component 3. Panics if Dim() < 4.
func (v Vector) W() float64 { return v.component(3) }

func (v Vector) component(i int) float64 {
	if i >= len(v.data) {
		panic(indexErrorf(opAt, i, len(v.data)))
	}

	return v.data[i]
}

// Components returns a copy of the underlying values.
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy that shares no storage with v.
func (v Vector) Clone() Vector {
	return Vector{data: v.Components()}
}

// SetValues copies as many values as fit; extra values are ignored and
// missing ones leave the existing components untouched.
func (v *Vector) SetValues(values []float64) {
	copy(v.data, values)
}

// SetScalar sets every component to s.
func (v *Vector) SetScalar(s float64) {
	for i := range v.data {
		v.data[i] = s
	}
}

// SetZero sets every component to 0.
func (v *Vector) SetZero() { v.SetScalar(0) }

// ---------- scalar operations (never fail) ----------

// mapScalar returns a fresh vector with out[i] = fn(v[i]).
func (v Vector) mapScalar(fn func(x float64) float64) Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = fn(x)
	}

	return Vector{data: out}
}

// AddScalar returns v + s componentwise.
func (v Vector) AddScalar(s float64) Vector {
	return v.mapScalar(func(x float64) float64 { return x + s })
}

// SubScalar returns v - s componentwise.
func (v Vector) SubScalar(s float64) Vector {
	return v.mapScalar(func(x float64) float64 { return x - s })
}

// Scale returns v * s componentwise.
func (v Vector) Scale(s float64) Vector {
	return v.mapScalar(func(x float64) float64 { return x * s })
}

// DivScalar returns v / s componentwise. Division by zero follows IEEE-754.
func (v Vector) DivScalar(s float64) Vector {
	return v.mapScalar(func(x float64) float64 { return x / s })
}

// AddScalarInPlace performs v += s.
func (v *Vector) AddScalarInPlace(s float64) {
	for i := range v.data {
		v.data[i] += s
	}
}

// SubScalarInPlace performs v -= s.
func (v *Vector) SubScalarInPlace(s float64) {
	for i := range v.data {
		v.data[i] -= s
	}
}

// ScaleInPlace performs v *= s.
func (v *Vector) ScaleInPlace(s float64) {
	for i := range v.data {
		v.data[i] *= s
	}
}

// DivScalarInPlace performs v /= s.
func (v *Vector) DivScalarInPlace(s float64) {
	for i := range v.data {
		v.data[i] /= s
	}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.mapScalar(func(x float64) float64 { return -x })
}

// ---------- vector operations (validated) ----------

// zip returns out[i] = fn(v[i], o[i]) after validating dimensions.
func (v Vector) zip(o Vector, tag string, fn func(x, y float64) float64) (Vector, error) {
	if len(v.data) != len(o.data) {
		return Vector{}, vectorErrorf(tag, ErrDimensionMismatch)
	}
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = fn(x, o.data[i])
	}

	return Vector{data: out}, nil
}

// zipInPlace performs v[i] = fn(v[i], o[i]) after validating dimensions.
func (v *Vector) zipInPlace(o Vector, tag string, fn func(x, y float64) float64) error {
	if len(v.data) != len(o.data) {
		return vectorErrorf(tag, ErrDimensionMismatch)
	}
	for i, x := range v.data {
		v.data[i] = fn(x, o.data[i])
	}

	return nil
}

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }
func div(x, y float64) float64 { return x / y }

// Add returns v + o. Errors: ErrDimensionMismatch.
func (v Vector) Add(o Vector) (Vector, error) { return v.zip(o, opAdd, add) }

// Sub returns v - o. Errors: ErrDimensionMismatch.
func (v Vector) Sub(o Vector) (Vector, error) { return v.zip(o, opSub, sub) }

// Mul returns the componentwise product v ⊙ o. Errors: ErrDimensionMismatch.
func (v Vector) Mul(o Vector) (Vector, error) { return v.zip(o, opMul, mul) }

// Div returns the componentwise quotient. Errors: ErrDimensionMismatch.
func (v Vector) Div(o Vector) (Vector, error) { return v.zip(o, opDiv, div) }

// AddInPlace performs v += o. Errors: ErrDimensionMismatch (v untouched).
func (v *Vector) AddInPlace(o Vector) error { return v.zipInPlace(o, opAdd, add) }

// SubInPlace performs v -= o. Errors: ErrDimensionMismatch (v untouched).
func (v *Vector) SubInPlace(o Vector) error { return v.zipInPlace(o, opSub, sub) }

// MulInPlace performs v *= o componentwise. Errors: ErrDimensionMismatch.
func (v *Vector) MulInPlace(o Vector) error { return v.zipInPlace(o, opMul, mul) }

// DivInPlace performs v /= o componentwise. Errors: ErrDimensionMismatch.
func (v *Vector) DivInPlace(o Vector) error { return v.zipInPlace(o, opDiv, div) }

// ---------- comparison ----------

// Equal reports whether v and o have the same dimension and every pair of
// components is equal within the configured tolerance.
func (v Vector) Equal(o Vector, opts ...Option) bool {
	return equal(v, o, Gather(opts...).eps)
}

// EqualScalar reports whether every component equals s within tolerance.
func (v Vector) EqualScalar(s float64, opts ...Option) bool {
	return equalScalar(v, s, Gather(opts...).eps)
}

// ---------- reductions ----------

// Length returns the Euclidean norm ||v||.
func (v Vector) Length() float64 { return length(v) }

// Dot returns Σ v[i]*o[i]. Errors: ErrDimensionMismatch.
func (v Vector) Dot(o Vector) (float64, error) {
	if len(v.data) != len(o.data) {
		return 0, vectorErrorf(opDot, ErrDimensionMismatch)
	}

	return dot(v, o), nil
}

// Distance returns ||v - o||. Errors: ErrDimensionMismatch.
func (v Vector) Distance(o Vector) (float64, error) {
	if len(v.data) != len(o.data) {
		return 0, vectorErrorf(opDistance, ErrDimensionMismatch)
	}

	return distance(v, o), nil
}

// ---------- derived vectors ----------

// Normalized returns v / ||v||. A zero vector yields NaN components; callers
// that cannot rule this out should check Length first.
func (v Vector) Normalized() Vector { return v.DivScalar(v.Length()) }

// Inverse returns 1/v componentwise (zeros map to ±Inf).
func (v Vector) Inverse() Vector {
	return v.mapScalar(func(x float64) float64 { return 1 / x })
}

// Abs returns |v| componentwise.
func (v Vector) Abs() Vector { return v.mapScalar(math.Abs) }

// Min returns the componentwise minimum of v and o; NaN components are
// dropped in favour of the other operand. Errors: ErrDimensionMismatch.
func (v Vector) Min(o Vector) (Vector, error) { return v.zip(o, opMin, numeric.MinNum[float64]) }

// Max returns the componentwise maximum of v and o, dropping NaN like Min.
// Errors: ErrDimensionMismatch.
func (v Vector) Max(o Vector) (Vector, error) { return v.zip(o, opMax, numeric.MaxNum[float64]) }

// Reflect mirrors v about the hyperplane with normal n:
// v - 2·(v·n / n·n)·n. Errors: ErrDimensionMismatch.
func (v Vector) Reflect(n Vector) (Vector, error) {
	if len(v.data) != len(n.data) {
		return Vector{}, vectorErrorf(opReflect, ErrDimensionMismatch)
	}
	k := 2 * dot(v, n) / dot(n, n)
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x - k*n.data[i]
	}

	return Vector{data: out}, nil
}

// Cross returns the right-handed cross product v × o.
// Errors: ErrDimensionMismatch unless both operands are 3-dimensional.
func (v Vector) Cross(o Vector) (Vector, error) {
	if len(v.data) != 3 || len(o.data) != 3 {
		return Vector{}, vectorErrorf(opCross, ErrDimensionMismatch)
	}
	a, b := v.data, o.data

	return Vector{data: []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// Resized extracts components [start, end) into a new vector of dimension
// end-start. Indices past Dim() are zero-filled.
// Errors: ErrInvalidRange when start < 0 or end <= start.
func (v Vector) Resized(start, end int) (Vector, error) {
	if start < 0 || end <= start {
		return Vector{}, vectorErrorf(opResized, ErrInvalidRange)
	}
	out := make([]float64, end-start)
	if start < len(v.data) {
		copy(out, v.data[start:min(end, len(v.data))])
	}

	return Vector{data: out}, nil
}

// String renders "{ v0 v1 ... }" with six decimals.
func (v Vector) String() string { return format(v) }
