// SPDX-License-Identifier: MIT

package geometry

import "github.com/katalvlaran/tensormath/vector"

// Ray is a half-line starting at Origin and running along Direction.
// Direction need not be unit length.
type Ray struct {
	Origin    vector.Vector3
	Direction vector.Vector3
}

// At returns the point Origin + t·Direction.
func (r Ray) At(t float64) vector.Vector3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// InverseDirection returns 1/Direction per component, the form IntersectsRay
// expects. Zero components become ±Inf.
func (r Ray) InverseDirection() vector.Vector3 { return r.Direction.Inverse() }

// Hits reports whether r enters b in front of its origin.
func (r Ray) Hits(b BoundingVolume) bool {
	return b.IntersectsRay(r.Origin, r.InverseDirection())
}
