// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All fallible operations return these sentinels, optionally wrapped with an
// operation tag via vectorErrorf; callers match them with errors.Is.
// Panics are reserved for programmer errors (Must* helpers, X/Y/Z/W on a
// too-short vector, invalid options).

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a requested dimension is not positive.
	ErrInvalidDimension = errors.New("vector: dimension must be > 0")

	// ErrDimensionMismatch indicates operands of different dimensions, or a
	// literal list whose length differs from the fixed target dimension.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrIndexOutOfRange indicates a component index outside [0, Dim()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidRange is returned by Resized for an empty or negative range.
	ErrInvalidRange = errors.New("vector: invalid component range")
)

// Operation tags for uniform error wrapping.
const (
	opNew      = "New"
	opAt       = "At"
	opSet      = "Set"
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opDiv      = "Div"
	opDot      = "Dot"
	opDistance = "Distance"
	opMin      = "Min"
	opMax      = "Max"
	opReflect  = "Reflect"
	opCross    = "Cross"
	opResized  = "Resized"
	opConvert  = "FixedFrom"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Only call with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps ErrIndexOutOfRange with the offending index and dimension.
func indexErrorf(tag string, i, dim int) error {
	return fmt.Errorf("%s(%d) on dim %d: %w", tag, i, dim, ErrIndexOutOfRange)
}
