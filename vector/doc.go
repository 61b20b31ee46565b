// SPDX-License-Identifier: MIT

// Package vector provides N-dimensional float64 vectors in two flavours.
//
// The vector package provides:
//
//   - Vector, a runtime-sized vector backed by an owned slice. Operations that
//     combine two vectors validate dimensions and return ErrDimensionMismatch.
//   - Fixed[A], a value-type vector whose dimension is fixed by its array type
//     parameter (Vector2, Vector3, Vector4 and friends). Dimension agreement is
//     checked by the compiler, so binary operations never fail.
//
// Both flavours share the same reductions, the same tolerant comparison
// (|a-b| ≤ ε or |a-b| ≤ ε·max(|a|,|b|)) and the same textual form
// "{ 1.000000 2.000000 }".
//
// Vector is a handle: plain assignment shares storage, Clone copies it.
// Fixed values copy on assignment like any Go array.
package vector
