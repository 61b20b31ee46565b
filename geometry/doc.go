// SPDX-License-Identifier: MIT

// Package geometry builds 3D scene primitives on the fixed-size vector and
// matrix types: an axis-aligned BoundingVolume, a Ray, and a perspective
// Camera that turns normalized screen coordinates into world-space rays.
//
// Only the fixed-size types are used here (vector.Vector3, matrix.Matrix4),
// so every dimension check happens at compile time and nothing allocates on
// the ray path.
//
// Typical flow:
//
//	cam, err := geometry.NewCamera(pos, dir, 16.0/9.0, 60)
//	uv, err := cam.ScreenPosition(px, py, width, height)
//	r := cam.Ray(uv)
//	hit := box.IntersectsRay(r.Origin, r.InverseDirection())
//
// A Camera is not safe for concurrent mutation; callers synchronize.
package geometry
