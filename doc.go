// SPDX-License-Identifier: MIT

// Package tensormath is a small linear-algebra and 3D-geometry toolkit:
// N-dimensional vectors, matrices in runtime-sized and compile-time-sized
// flavours, an axis-aligned bounding volume, and a pinhole camera that turns
// screen coordinates into world-space rays.
//
// What is inside?
//
//	vector/           dynamic Vector and fixed Fixed[A] (Vector2/3/4), tolerant equality
//	matrix/           dynamic *Dense (column-major) and fixed Fixed[W,H,C] (Matrix2/3/4, Matrix4x3)
//	geometry/         BoundingVolume (AABB), Ray, Camera
//	internal/numeric/ shared epsilon comparison and NaN-ignoring min/max
//
// Data flows bottom-up: vector ← matrix ← geometry. The geometry package
// uses only the fixed-size types, so dimension mistakes there are compile
// errors.
//
// Conventions shared by every package:
//   - Matrix coordinates are (x, y) = (column, row).
//   - FillArray/Array are row-major; storage is column-major.
//   - Vectors multiply matrices from the left (row vectors).
//   - Fallible operations return sentinel errors wrapped with an operation
//     tag; match them with errors.Is. Must* helpers and fixed-shape contract
//     violations panic.
//
// Quick example:
//
//	a := vector.Vec3(1, 2, 3)
//	b := vector.Vec3(5.22, 3.12, 2.0)
//	a.Add(b).Sub(b).Equal(a) // true
//
//	go get github.com/katalvlaran/tensormath
package tensormath
