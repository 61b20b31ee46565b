// SPDX-License-Identifier: MIT
// Package geometry: sentinel error set.
// Constructors and Camera mutators validate their input up front and return
// one of these, wrapped with an operation tag; the receiver is left unchanged
// on error. Match with errors.Is.

package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPointCloud is returned when a bounding volume is folded over no points.
	ErrEmptyPointCloud = errors.New("geometry: empty point cloud")

	// ErrZeroVector indicates a direction or up vector of zero (or non-finite) length.
	ErrZeroVector = errors.New("geometry: zero-length vector")

	// ErrInvalidAspect indicates an aspect ratio that is not a positive finite number.
	ErrInvalidAspect = errors.New("geometry: aspect ratio must be > 0")

	// ErrInvalidFOV indicates a field of view outside the open interval (0, π).
	ErrInvalidFOV = errors.New("geometry: field of view out of range")

	// ErrInvalidResolution indicates a screen smaller than 2×2 pixels.
	ErrInvalidResolution = errors.New("geometry: resolution must be at least 2x2")
)

const (
	opNewCamera      = "NewCamera"
	opSetLookAt      = "SetLookAt"
	opSetFOV         = "SetFOV"
	opSetAspect      = "SetAspectRatio"
	opSetUp          = "SetUp"
	opScreenPosition = "ScreenPosition"
	opFromPoints     = "BoundingVolumeFromPoints"
)

// geometryErrorf wraps err with an operation tag. Only call with a non-nil err.
func geometryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
