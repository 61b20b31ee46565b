// SPDX-License-Identifier: MIT

// Package geometry: functional options for NewCamera.
//
// Defaults:
//   - up: world-up (0, 0, 1), DefaultUp.
//   - logger: a handler that discards everything.
//
// Options only record values; NewCamera validates them so a bad up vector
// surfaces as ErrZeroVector instead of a panic.
package geometry

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/tensormath/vector"
)

// DefaultUp is the world-up axis used when WithUp is not given.
var DefaultUp = vector.Vec3(0, 0, 1)

// CameraOption configures NewCamera.
type CameraOption func(*cameraOptions)

type cameraOptions struct {
	up     vector.Vector3
	logger *slog.Logger
}

// WithUp sets the world-up vector that orients the view plane.
func WithUp(up vector.Vector3) CameraOption {
	return func(o *cameraOptions) { o.up = up }
}

// WithLogger routes camera diagnostics to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) CameraOption {
	return func(o *cameraOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherCameraOptions(user ...CameraOption) cameraOptions {
	o := cameraOptions{
		up:     DefaultUp,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
