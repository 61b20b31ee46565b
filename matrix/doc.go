// SPDX-License-Identifier: MIT

// Package matrix offers column-major matrices in two flavours.
//
// The matrix package provides:
//
//   - Dense, a runtime-sized width×height matrix backed by one contiguous
//     column-major buffer. Every fallible operation returns a sentinel error
//     (ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch, ...).
//   - Fixed[W, H, C], a compile-time-sized matrix made of vector.Fixed
//     columns, with the aliases Matrix2, Matrix3, Matrix4, Matrix4x3 and
//     Matrix4x1. Shapes are part of the type; misuse is a compile error or,
//     where Go cannot express the constraint, a panic.
//   - Kernels over the Matrix interface: Add, Sub, Mul, MulVec, Transpose,
//     Scale, Hadamard, LU, Inverse and Equal, plus facades (Sum, Diff,
//     Product, Chain, ...).
//
// Coordinates are (x, y) = (column, row). FillArray and Array serialize in
// row-major order. MulVec multiplies a row vector from the left, so its input
// has the matrix height and its output the matrix width.
//
// See the examples in this package for usage patterns.
package matrix
