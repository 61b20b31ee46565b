// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/tensormath/matrix"
	"github.com/katalvlaran/tensormath/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const algebraTol = 1e-12

func TestAddSub(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{2.0, 4.5, 4.2, 0})
	b := NewFilledDense(t, 2, 2, []float64{2.0, 4.1, 4.1, 0})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(sum, NewFilledDense(t, 2, 2, []float64{4, 8.6, 8.3, 0})), "addition:\n%v", sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(diff, NewFilledDense(t, 2, 2, []float64{0, 0.4, 0.1, 0})), "subtraction:\n%v", diff)

	// Operands are untouched.
	assert.Equal(t, []float64{2.0, 4.5, 4.2, 0}, a.Array())
}

// TestMulScenario multiplies [[1,2],[3,4]] by [[2,0],[1,2]] (row-major inputs).
func TestMulScenario(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{2, 0, 1, 2})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 10, 8}, got.Array())

	prod, err := matrix.Product(a, b)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(got, prod))
}

func TestMulRectangular(t *testing.T) {
	// a: 3 wide, 2 tall; b: 2 wide, 3 tall.
	a := NewFilledDense(t, 3, 2, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	b := NewFilledDense(t, 2, 3, []float64{
		7, 8,
		9, 10,
		11, 12,
	})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Width())
	require.Equal(t, 2, got.Height())
	assert.Equal(t, []float64{58, 64, 139, 154}, got.Array())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulVec multiplies the row vector (3,4,2) into a 4-wide, 3-tall matrix.
func TestMulVec(t *testing.T) {
	m := NewFilledDense(t, 4, 3, []float64{
		13, 9, 7, 15,
		8, 7, 4, 6,
		6, 4, 0, 3,
	})
	got, err := matrix.MulVec(m, vector.MustOf(3, 4, 2))
	require.NoError(t, err)
	assert.True(t, got.Equal(vector.MustOf(83, 63, 37, 75)), "got %v", got)

	_, err = matrix.MulVec(m, vector.MustOf(1, 2, 3, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var nilDense *matrix.Dense
	_, err = matrix.MulVec(nilDense, vector.MustOf(1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulAssociativityProperty(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		A := RandFilledDense(t, 3, 4, seed)
		B := RandFilledDense(t, 5, 3, seed+100)
		C := RandFilledDense(t, 2, 5, seed+200)

		AB, err := matrix.Mul(A, B)
		require.NoError(t, err)
		left, err := matrix.Mul(AB, C)
		require.NoError(t, err)

		BC, err := matrix.Mul(B, C)
		require.NoError(t, err)
		right, err := matrix.Mul(A, BC)
		require.NoError(t, err)

		require.True(t, matrix.Equal(left, right, matrix.WithEpsilon(algebraTol)), "seed %d", seed)

		chained, err := matrix.Chain(A, B, C)
		require.NoError(t, err)
		require.True(t, matrix.Equal(chained, left, matrix.WithEpsilon(0)), "Chain is left-to-right")
	}
}

func TestIdentityNeutral(t *testing.T) {
	A := RandFilledDense(t, 3, 4, 42)
	right, err := matrix.NewIdentity(A.Width())
	require.NoError(t, err)
	left, err := matrix.NewIdentity(A.Height())
	require.NoError(t, err)

	AI, err := matrix.Mul(A, right)
	require.NoError(t, err)
	IA, err := matrix.Mul(left, A)
	require.NoError(t, err)

	assert.True(t, matrix.Equal(AI, A))
	assert.True(t, matrix.Equal(IA, A))

	like, err := matrix.IdentityLike(right)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(like, right))
	_, err = matrix.IdentityLike(A)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestShapeErrors(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 3, 2)
	var nilDense *matrix.Dense

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Hadamard(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sum(a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Chain()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEqual(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	assert.True(t, matrix.Equal(a, a.Clone()))
	assert.False(t, matrix.Equal(a, MustDense(t, 2, 2)))
	assert.False(t, matrix.Equal(a, MustDense(t, 4, 1)), "shape mismatch is not equal")
	assert.False(t, matrix.Equal(a, nil))

	near := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4.001})
	assert.False(t, matrix.Equal(a, near))
	assert.True(t, matrix.Equal(a, near, matrix.WithEpsilon(1e-2)))
}

func TestTransposeScaleHadamard(t *testing.T) {
	a := NewFilledDense(t, 3, 2, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	at, err := matrix.T(a)
	require.NoError(t, err)
	assert.Equal(t, 2, at.Width())
	assert.Equal(t, 3, at.Height())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.Array())

	scaled, err := matrix.ScaleBy(a, -2)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -4, -6, -8, -10, -12}, scaled.Array())

	had, err := matrix.HadamardProd(a, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 9, 16, 25, 36}, had.Array())
}

func TestLU(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{4, 3, 6, 3})
	L, U, err := matrix.LU(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1.5, 1}, L.Array())
	assert.Equal(t, []float64{4, 3, 0, -1.5}, U.Array())

	back, err := matrix.Mul(L, U)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(back, a))

	_, _, err = matrix.LU(MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverse(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{4, 7, 2, 6})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	want := NewFilledDense(t, 2, 2, []float64{0.6, -0.7, -0.2, 0.4})
	assert.True(t, matrix.Equal(inv, want, matrix.WithEpsilon(algebraTol)), "inverse:\n%v", inv)

	for name, flat := range map[string][]float64{
		"rank deficient": {1, 2, 2, 4},
		"needs pivoting": {0, 1, 1, 0},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.Inverse(NewFilledDense(t, 2, 2, flat))
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

// TestInterfaceHidingFallback ensures the Value-based path matches the *Dense one.
func TestInterfaceHidingFallback(t *testing.T) {
	a := RandFilledDense(t, 3, 3, 7)
	b := RandFilledDense(t, 3, 3, 8)

	for name, op := range map[string]func(x, y matrix.Matrix) (*matrix.Dense, error){
		"Add":      matrix.Add,
		"Sub":      matrix.Sub,
		"Mul":      matrix.Mul,
		"Hadamard": matrix.Hadamard,
	} {
		t.Run(name, func(t *testing.T) {
			fast, err := op(a, b)
			require.NoError(t, err)
			slow, err := op(hide{a}, hide{b})
			require.NoError(t, err)
			require.Equal(t, fast.Array(), slow.Array())
		})
	}
}

// toMGL copies a Matrix4 into mathgl's column-major Mat4.
func toMGL(m matrix.Matrix4) mgl64.Mat4 {
	var g mgl64.Mat4
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			v, _ := m.Value(x, y)
			g.Set(y, x, v)
		}
	}

	return g
}

// TestAgainstMathGL cross-checks the kernels with an independent 4×4 implementation.
func TestAgainstMathGL(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		A := RandMatrix4(t, seed)
		B := RandMatrix4(t, seed+1000)
		gA, gB := toMGL(A), toMGL(B)

		prod, err := matrix.Mul(A, B)
		require.NoError(t, err)
		gProd := gA.Mul4(gB)
		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				require.InDelta(t, gProd.At(y, x), MustValue(t, prod, x, y), algebraTol, "seed %d (%d,%d)", seed, x, y)
			}
		}
		require.True(t, A.Mul(B).Equal(mustFixed4(t, prod), matrix.WithEpsilon(0)), "Fixed.Mul agrees with Mul")

		v := vector.Vec4(0.5, -1, 2, 0.25)
		got := A.MulVec(v)
		want := gA.Transpose().Mul4x1(mgl64.Vec4{0.5, -1, 2, 0.25})
		for i := 0; i < 4; i++ {
			require.InDelta(t, want[i], got.MustAt(i), algebraTol, "seed %d [%d]", seed, i)
		}
	}
}

func mustFixed4(tb testing.TB, d *matrix.Dense) matrix.Matrix4 {
	tb.Helper()
	var m matrix.Matrix4
	if err := m.SetDense(d); err != nil {
		tb.Fatalf("SetDense: %v", err)
	}

	return m
}
