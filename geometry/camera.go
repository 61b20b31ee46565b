// SPDX-License-Identifier: MIT

// Package geometry - Camera, a pinhole camera for ray generation.
//
// Purpose:
//   - Hold the pose (position, direction, up) and lens (aspect, fov).
//   - Keep the view plane (lower-left corner, horizontal and vertical spans)
//     in sync with them: every mutator validates, updates and re-derives
//     before returning, so a stale plane is never observable.
//
// Conventions:
//   - direction points from the look-at target back to the camera; rays
//     leave the camera along -direction.
//   - The view plane sits one unit in front of the camera and is
//     2·tan(fov/2) tall.
//
// Errors:
//   - ErrZeroVector, ErrInvalidAspect, ErrInvalidFOV, ErrInvalidResolution.
//     A failed mutator leaves the camera unchanged.
package geometry

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/tensormath/internal/numeric"
	"github.com/katalvlaran/tensormath/matrix"
	"github.com/katalvlaran/tensormath/vector"
)

// Camera generates world-space rays from normalized screen coordinates.
type Camera struct {
	position  vector.Vector3
	direction vector.Vector3 // unit
	up        vector.Vector3
	aspect    float64
	fov       float64 // radians

	lowerLeft  vector.Vector3
	horizontal vector.Vector3
	vertical   vector.Vector3

	log *slog.Logger
}

// NewCamera builds a camera at position facing along -direction, with the
// given aspect ratio (width/height) and vertical field of view in degrees.
// direction is normalized on input.
//
// Errors:
//   - ErrZeroVector: direction or the WithUp vector has zero length.
//   - ErrInvalidAspect, ErrInvalidFOV.
func NewCamera(position, direction vector.Vector3, aspect, fovDegrees float64, opts ...CameraOption) (*Camera, error) {
	o := gatherCameraOptions(opts...)

	dir, err := unit(direction)
	if err != nil {
		return nil, geometryErrorf(opNewCamera, err)
	}
	if _, err = unit(o.up); err != nil {
		return nil, geometryErrorf(opNewCamera, err)
	}
	if err = validateAspect(aspect); err != nil {
		return nil, geometryErrorf(opNewCamera, err)
	}
	fov := degToRad(fovDegrees)
	if err = validateFOV(fov); err != nil {
		return nil, geometryErrorf(opNewCamera, err)
	}

	c := &Camera{
		position:  position,
		direction: dir,
		up:        o.up,
		aspect:    aspect,
		fov:       fov,
		log:       o.logger,
	}
	c.derive()

	return c, nil
}

// SetLookAt points the camera at target: direction becomes
// normalize(position - target).
// Errors: ErrZeroVector when target equals the position.
func (c *Camera) SetLookAt(target vector.Vector3) error {
	dir, err := unit(c.position.Sub(target))
	if err != nil {
		return geometryErrorf(opSetLookAt, err)
	}
	c.direction = dir
	c.derive()

	return nil
}

// SetFOVDegrees sets the vertical field of view in degrees.
// Errors: ErrInvalidFOV unless 0 < deg < 180.
func (c *Camera) SetFOVDegrees(deg float64) error {
	return c.SetFOVRadians(degToRad(deg))
}

// SetFOVRadians sets the vertical field of view in radians.
// Errors: ErrInvalidFOV unless 0 < rad < π.
func (c *Camera) SetFOVRadians(rad float64) error {
	if err := validateFOV(rad); err != nil {
		return geometryErrorf(opSetFOV, err)
	}
	c.fov = rad
	c.derive()

	return nil
}

// SetAspectRatio sets width/height of the view plane.
// Errors: ErrInvalidAspect.
func (c *Camera) SetAspectRatio(aspect float64) error {
	if err := validateAspect(aspect); err != nil {
		return geometryErrorf(opSetAspect, err)
	}
	c.aspect = aspect
	c.derive()

	return nil
}

// SetPosition moves the camera; the direction is kept.
func (c *Camera) SetPosition(p vector.Vector3) {
	c.position = p
	c.derive()
}

// SetUp replaces the world-up vector.
// Errors: ErrZeroVector.
func (c *Camera) SetUp(up vector.Vector3) error {
	if _, err := unit(up); err != nil {
		return geometryErrorf(opSetUp, err)
	}
	c.up = up
	c.derive()

	return nil
}

// derive recomputes the view plane from the pose and lens.
func (c *Camera) derive() {
	viewHeight := 2 * math.Tan(c.fov/2)
	viewWidth := c.aspect * viewHeight

	side := vector.Cross(c.up, c.direction)
	if numeric.Equal(side.Length(), 0, numeric.DefaultEpsilon) {
		c.log.Warn("camera basis is degenerate: up is parallel to direction",
			"up", c.up,
			"direction", c.direction,
		)
	}
	hDir := side.Normalized()

	c.horizontal = hDir.Scale(viewWidth)
	c.vertical = vector.Cross(c.direction, hDir).Scale(viewHeight)
	c.lowerLeft = c.position.
		Sub(c.horizontal.Scale(0.5)).
		Sub(c.vertical.Scale(0.5)).
		Sub(c.direction)

	c.log.Debug("camera view plane derived",
		"position", c.position,
		"direction", c.direction,
		"fov_rad", c.fov,
		"aspect", c.aspect,
		"lower_left", c.lowerLeft,
	)
}

// RayOrigin returns the origin shared by every camera ray.
func (c *Camera) RayOrigin() vector.Vector3 { return c.position }

// RayDirection maps screen (u, v) in [0,1]² to the unnormalized direction
// lowerLeft + horizontal·u + vertical·v - position. (0,0) is the lower-left
// corner of the view plane; (0.5, 0.5) is -direction.
func (c *Camera) RayDirection(screen vector.Vector2) vector.Vector3 {
	return c.lowerLeft.
		Add(c.horizontal.Scale(screen.X())).
		Add(c.vertical.Scale(screen.Y())).
		Sub(c.position)
}

// Ray returns the full ray through screen (u, v).
func (c *Camera) Ray(screen vector.Vector2) Ray {
	return Ray{Origin: c.position, Direction: c.RayDirection(screen)}
}

// ScreenPosition maps pixel (x, y) on a width×height grid to [0,1]² via
// x/(width-1), y/(height-1), so the last pixel lands exactly on 1.
// Errors: ErrInvalidResolution when width or height is below 2.
func (c *Camera) ScreenPosition(x, y float64, width, height int) (vector.Vector2, error) {
	if width < 2 || height < 2 {
		return vector.Vector2{}, geometryErrorf(opScreenPosition, ErrInvalidResolution)
	}

	return vector.Vec2(x/float64(width-1), y/float64(height-1)), nil
}

// ViewMatrix returns the world-to-camera transform for row vectors, to be
// applied as m.MulVec(vector.Extend(p, 1)). Camera space has x along the
// horizontal span, y along the vertical span and z along the viewing
// direction (-direction), with the camera at the origin.
func (c *Camera) ViewMatrix() matrix.Matrix4 {
	right := c.horizontal.Normalized()
	upward := c.vertical.Normalized()
	forward := c.direction.Neg()

	var m matrix.Matrix4
	m.SetColumn(0, vector.Extend(right, -right.Dot(c.position)))
	m.SetColumn(1, vector.Extend(upward, -upward.Dot(c.position)))
	m.SetColumn(2, vector.Extend(forward, -forward.Dot(c.position)))
	m.SetColumn(3, vector.Vec4(0, 0, 0, 1))

	return m
}

// Position returns the camera position.
func (c *Camera) Position() vector.Vector3 { return c.position }

// Direction returns the unit vector from the look-at target to the camera.
func (c *Camera) Direction() vector.Vector3 { return c.direction }

// Up returns the world-up vector.
func (c *Camera) Up() vector.Vector3 { return c.up }

// AspectRatio returns width/height.
func (c *Camera) AspectRatio() float64 { return c.aspect }

// FOVRadians returns the vertical field of view in radians.
func (c *Camera) FOVRadians() float64 { return c.fov }

// FOVDegrees returns the vertical field of view in degrees.
func (c *Camera) FOVDegrees() float64 { return c.fov * 180 / math.Pi }

// LowerLeftCorner returns the lower-left corner of the view plane.
func (c *Camera) LowerLeftCorner() vector.Vector3 { return c.lowerLeft }

// Horizontal returns the horizontal span of the view plane.
func (c *Camera) Horizontal() vector.Vector3 { return c.horizontal }

// Vertical returns the vertical span of the view plane.
func (c *Camera) Vertical() vector.Vector3 { return c.vertical }

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

// unit normalizes v, rejecting zero or non-finite lengths.
func unit(v vector.Vector3) (vector.Vector3, error) {
	l := v.Length()
	if l == 0 || !numeric.IsFinite(l) {
		return v, ErrZeroVector
	}

	return v.DivScalar(l), nil
}

func validateAspect(a float64) error {
	if !(a > 0) || !numeric.IsFinite(a) {
		return ErrInvalidAspect
	}

	return nil
}

func validateFOV(rad float64) error {
	if !(rad > 0 && rad < math.Pi) {
		return ErrInvalidFOV
	}

	return nil
}
