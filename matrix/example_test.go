// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tensormath/matrix"
	"github.com/katalvlaran/tensormath/vector"
)

// ExampleMul multiplies two 2×2 matrices filled in row-major order.
func ExampleMul() {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(2, 2)
	_ = a.FillArray([]float64{1, 2, 3, 4})
	_ = b.FillArray([]float64{2, 0, 1, 2})

	p, _ := matrix.Mul(a, b)
	fmt.Print(p)

	_, err := matrix.Mul(a, matrix.Matrix4{})
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// [ 4.000000 4.000000 ]
	// [ 10.000000 8.000000 ]
	// true
}

// ExampleMulVec multiplies a row vector into a 4-wide, 3-tall matrix.
func ExampleMulVec() {
	m, _ := matrix.NewDense(4, 3)
	_ = m.FillArray([]float64{
		13, 9, 7, 15,
		8, 7, 4, 6,
		6, 4, 0, 3,
	})
	out, _ := matrix.MulVec(m, vector.MustOf(3, 4, 2))
	fmt.Println(out)
	// Output:
	// { 83.000000 63.000000 37.000000 75.000000 }
}

// ExampleFixed_Inverse inverts a Matrix2 and checks the round trip.
func ExampleFixed_Inverse() {
	var m, id matrix.Matrix2
	m.FillArray([]float64{4, 7, 2, 6})
	id.SetIdentity()

	inv, err := m.Inverse()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)
	fmt.Println(m.Mul(inv).Equal(id, matrix.WithEpsilon(1e-12)))
	// Output:
	// [ 0.600000 -0.700000 ]
	// [ -0.200000 0.400000 ]
	// true
}
