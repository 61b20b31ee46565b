// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for the runtime-sized Vector.
package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tensormath/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimension ensures constructors reject non-positive dimensions.
func TestNewInvalidDimension(t *testing.T) {
	_, err := vector.New(0)
	require.ErrorIs(t, err, vector.ErrInvalidDimension)

	_, err = vector.Filled(-3, 1)
	require.ErrorIs(t, err, vector.ErrInvalidDimension)

	_, err = vector.Of()
	require.ErrorIs(t, err, vector.ErrInvalidDimension)

	require.Panics(t, func() { vector.MustOf() })
}

// TestComparison mirrors the canonical equality cases; everything else relies on it.
func TestComparison(t *testing.T) {
	a := vector.MustOf(0, 1, 2)
	b := vector.MustOf(0, 1, 2)
	require.True(t, a.Equal(b), "equals failed")

	a = vector.MustOf(math.Copysign(0, -1), 1, 2.0)
	require.True(t, a.Equal(b), "negative zero must compare equal")

	a = vector.MustOf(0.0, 1.001, 1.99)
	require.False(t, a.Equal(b), "not equals failed")

	a = vector.MustOf(3.5, 3.5, 3.5)
	assert.True(t, a.EqualScalar(3.5), "scalar equals failed")
	assert.False(t, a.EqualScalar(3.6))

	// Different dimensions are simply not equal.
	assert.False(t, vector.MustOf(1, 2).Equal(vector.MustOf(1, 2, 0)))

	// A looser tolerance accepts what the default rejects.
	assert.True(t, vector.MustOf(1.0005).Equal(vector.MustOf(1.0), vector.WithEpsilon(1e-3)))
	assert.Panics(t, func() { vector.WithEpsilon(-1) })
	assert.Panics(t, func() { vector.WithEpsilon(math.NaN()) })
}

// TestGeneralOperations covers zero/scalar/list construction, assignment and copy.
func TestGeneralOperations(t *testing.T) {
	empty, err := vector.New(4)
	require.NoError(t, err)
	assert.True(t, empty.Equal(vector.MustOf(0, 0, 0, 0)), "zero initialization failed: %v", empty)

	filled, err := vector.Filled(3, 3)
	require.NoError(t, err)
	assert.True(t, filled.Equal(vector.MustOf(3, 3, 3)), "scalar fill failed: %v", filled)

	listAssign, err := vector.New(3)
	require.NoError(t, err)
	listAssign.SetValues([]float64{1, 2, 3})
	assert.True(t, listAssign.Equal(vector.MustOf(1, 2, 3)))

	// Partial SetValues keeps the tail; extra values are ignored.
	listAssign.SetValues([]float64{9})
	assert.True(t, listAssign.Equal(vector.MustOf(9, 2, 3)))
	listAssign.SetValues([]float64{4, 5, 6, 7})
	assert.True(t, listAssign.Equal(vector.MustOf(4, 5, 6)))

	listAssign.SetZero()
	assert.True(t, listAssign.EqualScalar(0))
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	orig := vector.MustOf(1, 2, 3)
	clone := orig.Clone()
	require.NoError(t, clone.Set(0, 42))

	x, err := orig.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x)

	// Components is a copy as well.
	comps := orig.Components()
	comps[1] = -1
	assert.Equal(t, 2.0, orig.Y())
}

// TestValueChanges covers indexed access and the named accessors.
func TestValueChanges(t *testing.T) {
	v := vector.MustOf(1, 2, 3)
	x0, err := v.At(0)
	require.NoError(t, err)
	require.NoError(t, v.Set(0, x0))
	v.SetValues([]float64{v.X(), v.Y(), v.Z()})
	assert.True(t, v.Equal(vector.MustOf(1, 2, 3)))

	_, err = v.At(3)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	require.ErrorIs(t, v.Set(7, 1), vector.ErrIndexOutOfRange)

	assert.Panics(t, func() { _ = v.W() })
	assert.Equal(t, 4.0, vector.MustOf(1, 2, 3, 4).W())
}

// TestScalarArithmetic chains operations that undo each other.
func TestScalarArithmetic(t *testing.T) {
	expected := vector.MustOf(1, 1, 1)

	v := vector.MustOf(1, 1, 1)
	v.AddScalarInPlace(2)
	v.SubScalarInPlace(3)
	v = v.AddScalar(3)
	v = v.SubScalar(2)
	v.SubScalarInPlace(-1)
	v.AddScalarInPlace(-1)
	require.True(t, v.Equal(expected), "scalar addition failed: %v", v)

	v.ScaleInPlace(2)
	v.DivScalarInPlace(2)
	v = v.Scale(4)
	v = v.DivScalar(2)
	v.ScaleInPlace(0.25)
	v.DivScalarInPlace(0.5)
	require.True(t, v.Equal(expected), "scalar multiplication failed: %v", v)

	neg := vector.MustOf(-1, -1, -1).Neg()
	require.True(t, neg.Equal(expected), "negation failed: %v", neg)
}

// TestVectorArithmetic covers the add/sub and mul/div round trips.
func TestVectorArithmetic(t *testing.T) {
	expected := vector.MustOf(1, 2, 3)
	a := vector.MustOf(1, 2, 3)
	b := vector.MustOf(5.22, 3.12, 2.0)

	require.NoError(t, a.AddInPlace(b))
	require.NoError(t, a.SubInPlace(b))
	a, err := a.Add(b)
	require.NoError(t, err)
	a, err = a.Sub(b)
	require.NoError(t, err)
	require.True(t, a.Equal(expected), "vector addition failed: %v", a)

	require.NoError(t, a.MulInPlace(b))
	require.NoError(t, a.DivInPlace(b))
	a, err = a.Mul(b)
	require.NoError(t, err)
	a, err = a.Div(b)
	require.NoError(t, err)
	require.True(t, a.Equal(expected), "vector multiplication failed: %v", a)
}

// TestDimensionMismatch ensures every binary operation rejects unequal dimensions.
func TestDimensionMismatch(t *testing.T) {
	a := vector.MustOf(1, 2, 3)
	b := vector.MustOf(1, 2)

	binary := map[string]func(vector.Vector, vector.Vector) (vector.Vector, error){
		"Add":     vector.Vector.Add,
		"Sub":     vector.Vector.Sub,
		"Mul":     vector.Vector.Mul,
		"Div":     vector.Vector.Div,
		"Min":     vector.Vector.Min,
		"Max":     vector.Vector.Max,
		"Reflect": vector.Vector.Reflect,
		"Cross":   vector.Vector.Cross,
	}
	for name, fn := range binary {
		t.Run(name, func(t *testing.T) {
			_, err := fn(a, b)
			require.ErrorIs(t, err, vector.ErrDimensionMismatch)
		})
	}

	before := a.Clone()
	require.ErrorIs(t, a.AddInPlace(b), vector.ErrDimensionMismatch)
	require.ErrorIs(t, a.SubInPlace(b), vector.ErrDimensionMismatch)
	require.ErrorIs(t, a.MulInPlace(b), vector.ErrDimensionMismatch)
	require.ErrorIs(t, a.DivInPlace(b), vector.ErrDimensionMismatch)
	require.True(t, a.Equal(before), "failed in-place op must not mutate")

	_, err := a.Dot(b)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = a.Distance(b)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	// Cross is only defined for 3D operands, even when dimensions agree.
	_, err = vector.MustOf(1, 2, 3, 4).Cross(vector.MustOf(1, 2, 3, 4))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestUtilities covers reductions and derived vectors.
func TestUtilities(t *testing.T) {
	assert.Equal(t, 5.0, vector.MustOf(5, 0).Length())
	assert.Equal(t, 5.0, vector.MustOf(5, 0, 0, 0, 0, 0, 0).Length())
	assert.Equal(t, 2.0, vector.MustOf(1, 1, 1, 1).Length())
	assert.Equal(t, 5.0, vector.MustOf(4, 3).Length())

	unit := vector.MustOf(4, 3).Normalized()
	assert.True(t, unit.Equal(vector.MustOf(4.0/5.0, 3.0/5.0)), "normalize: %v", unit)
	assert.Equal(t, 2, unit.Dim())

	cases := []struct {
		name string
		a, b vector.Vector
		want float64
	}{
		{"simple", vector.MustOf(2, 2), vector.MustOf(1, 1), 4},
		{"mixed signs", vector.MustOf(7, 0, -2), vector.MustOf(1, -1, 4), -1},
		{"decimal", vector.MustOf(0, 0.1, 0.2, 0.3), vector.MustOf(0.3, 0.2, 0.1, 0), 0.04},
	}
	for _, tc := range cases {
		t.Run("dot/"+tc.name, func(t *testing.T) {
			got, err := tc.a.Dot(tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-15)
		})
	}

	dist, err := vector.MustOf(0, 0, 0).Distance(vector.MustOf(0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	dist, err = vector.MustOf(5, 0).Distance(vector.MustOf(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 4.0, dist)
	dist, err = vector.MustOf(3, 2, 0).Distance(vector.MustOf(-1, -1, 0))
	require.NoError(t, err)
	assert.Equal(t, 5.0, dist)

	a := vector.MustOf(50, -10, 0, 5)
	b := vector.MustOf(-40, 30, 0, 10)
	minAB, err := a.Min(b)
	require.NoError(t, err)
	minBA, err := b.Min(a)
	require.NoError(t, err)
	maxAB, err := a.Max(b)
	require.NoError(t, err)
	maxBA, err := b.Max(a)
	require.NoError(t, err)
	assert.True(t, minAB.Equal(vector.MustOf(-40, -10, 0, 5)))
	assert.True(t, minBA.Equal(minAB))
	assert.True(t, maxAB.Equal(vector.MustOf(50, 30, 0, 10)))
	assert.True(t, maxBA.Equal(maxAB))

	withNaN := vector.MustOf(math.NaN(), 3)
	minNaN, err := vector.MustOf(1, 5).Min(withNaN)
	require.NoError(t, err)
	assert.True(t, minNaN.Equal(vector.MustOf(1, 3)))
	maxNaN, err := withNaN.Max(vector.MustOf(1, 5))
	require.NoError(t, err)
	assert.True(t, maxNaN.Equal(vector.MustOf(1, 5)))

	assert.True(t, vector.MustOf(0, -1.5, -2).Abs().Equal(vector.MustOf(0, 1.5, 2)))
	assert.True(t, vector.MustOf(2, -4, 0.5).Inverse().Equal(vector.MustOf(0.5, -0.25, 2)))
	assert.True(t, math.IsInf(vector.MustOf(0).Inverse().X(), 1))

	side, err := vector.MustOf(0, 0, 1).Cross(vector.MustOf(1, 0, 0))
	require.NoError(t, err)
	assert.True(t, side.Equal(vector.MustOf(0, 1, 0)), "cross: %v", side)

	reflected, err := vector.MustOf(2, 1).Reflect(vector.MustOf(0, 1))
	require.NoError(t, err)
	assert.True(t, reflected.Equal(vector.MustOf(2, -1)), "reflect: %v", reflected)
}

// TestResized covers sub-range extraction and zero fill past the end.
func TestResized(t *testing.T) {
	v := vector.MustOf(1, 2, 3)

	cases := []struct {
		name       string
		start, end int
		want       vector.Vector
	}{
		{"prefix", 0, 2, vector.MustOf(1, 2)},
		{"grow", 1, 5, vector.MustOf(2, 3, 0, 0)},
		{"past end", 5, 7, vector.MustOf(0, 0)},
		{"identity", 0, 3, vector.MustOf(1, 2, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := v.Resized(tc.start, tc.end)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v want %v", got, tc.want)
		})
	}

	_, err := v.Resized(2, 2)
	require.ErrorIs(t, err, vector.ErrInvalidRange)
	_, err = v.Resized(-1, 2)
	require.ErrorIs(t, err, vector.ErrInvalidRange)
}

// TestString checks the six-decimal diagnostic format.
func TestString(t *testing.T) {
	assert.Equal(t, "{ 1.000000 2.500000 -3.000000 }", vector.MustOf(1, 2.5, -3).String())
	assert.Equal(t, "{ }", vector.Vector{}.String())
}
