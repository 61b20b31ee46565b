// SPDX-License-Identifier: MIT

// Package geometry - BoundingVolume, an axis-aligned box.
//
// Invariant: Min()[i] ≤ Max()[i] on every axis. Every constructor and
// combinator keeps it, so the fields stay unexported.
package geometry

import (
	"math"

	"github.com/katalvlaran/tensormath/internal/numeric"
	"github.com/katalvlaran/tensormath/vector"
)

// BoundingVolume is an axis-aligned box spanned by two corners.
// The zero value is the degenerate box at the origin.
type BoundingVolume struct {
	min, max vector.Vector3
}

// NewBoundingVolume returns the box spanned by two arbitrary corners; the
// minimum and maximum are taken per axis.
func NewBoundingVolume(a, b vector.Vector3) BoundingVolume {
	return BoundingVolume{min: a.Min(b), max: a.Max(b)}
}

// BoundingVolumeFromPoints returns the smallest box containing every point.
// Errors: ErrEmptyPointCloud.
// Complexity: O(n).
func BoundingVolumeFromPoints(points []vector.Vector3) (BoundingVolume, error) {
	if len(points) == 0 {
		return BoundingVolume{}, geometryErrorf(opFromPoints, ErrEmptyPointCloud)
	}
	b := BoundingVolume{min: points[0], max: points[0]}
	for _, p := range points[1:] {
		b = b.Expand(p)
	}

	return b, nil
}

// Min returns the lower corner.
func (b BoundingVolume) Min() vector.Vector3 { return b.min }

// Max returns the upper corner.
func (b BoundingVolume) Max() vector.Vector3 { return b.max }

// Center returns the midpoint of the box.
func (b BoundingVolume) Center() vector.Vector3 { return b.min.Add(b.max).Scale(0.5) }

// Size returns the edge lengths along x, y and z.
func (b BoundingVolume) Size() vector.Vector3 { return b.max.Sub(b.min) }

// Contains reports whether p lies inside the box or on its boundary.
func (b BoundingVolume) Contains(p vector.Vector3) bool {
	for i := 0; i < 3; i++ {
		c := p.MustAt(i)
		if c < b.min.MustAt(i) || c > b.max.MustAt(i) {
			return false
		}
	}

	return true
}

// Expand returns the smallest box containing both b and p.
func (b BoundingVolume) Expand(p vector.Vector3) BoundingVolume {
	return BoundingVolume{min: b.min.Min(p), max: b.max.Max(p)}
}

// Union returns the smallest box containing both b and o.
func (b BoundingVolume) Union(o BoundingVolume) BoundingVolume {
	return BoundingVolume{min: b.min.Min(o.min), max: b.max.Max(o.max)}
}

// Intersects reports whether b and o overlap. Touching faces count as overlap.
// Every axis is tested independently: the boxes intersect iff on each axis
// b.min ≤ o.max and b.max ≥ o.min.
func (b BoundingVolume) Intersects(o BoundingVolume) bool {
	for i := 0; i < 3; i++ {
		if b.min.MustAt(i) > o.max.MustAt(i) || b.max.MustAt(i) < o.min.MustAt(i) {
			return false
		}
	}

	return true
}

// IntersectsRay runs the slab test for the ray starting at origin with
// component-wise inverse direction invDir (see Ray.InverseDirection).
//
// Implementation:
//   - Stage 1: per axis, t1 = (min-origin)·inv and t2 = (max-origin)·inv.
//   - Stage 2: fold tMin = max(tMin, min(t1,t2)) and tMax = min(tMax, max(t1,t2))
//     so the interval only shrinks. A zero direction component gives ±Inf
//     slabs that need no special case.
//   - 0·Inf yields NaN only when the ray runs inside a face plane of that
//     axis. The boundary counts as inside (see Contains), so such an axis
//     places no constraint and is skipped, whichever face is grazed.
//   - Stage 3: hit iff tMax > max(tMin, 0), i.e. the box is not missed and
//     not entirely behind the origin.
//
// Complexity: O(1).
func (b BoundingVolume) IntersectsRay(origin, invDir vector.Vector3) bool {
	tMin, tMax := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		o, inv := origin.MustAt(i), invDir.MustAt(i)
		t1 := (b.min.MustAt(i) - o) * inv
		t2 := (b.max.MustAt(i) - o) * inv
		if math.IsNaN(t1) || math.IsNaN(t2) {
			continue
		}
		tMin = numeric.MaxNum(tMin, numeric.MinNum(t1, t2))
		tMax = numeric.MinNum(tMax, numeric.MaxNum(t1, t2))
	}

	return tMax > max(tMin, 0)
}

// String renders the two corners.
func (b BoundingVolume) String() string {
	return "BoundingVolume{ min: " + b.min.String() + " max: " + b.max.String() + " }"
}
