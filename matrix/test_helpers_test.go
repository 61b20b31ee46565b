// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tensormath/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions, so the
// kernels take the Value-based materialization path instead of the *Dense one.
type hide struct{ matrix.Matrix }

// MustDense allocates a w×h *Dense or fails the test.
func MustDense(tb testing.TB, w, h int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(w, h)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", w, h, err)
	}

	return m
}

// NewFilledDense builds a w×h *Dense from a row-major flat slice.
func NewFilledDense(tb testing.TB, w, h int, vals []float64) *matrix.Dense {
	tb.Helper()
	if len(vals) != w*h {
		tb.Fatalf("NewFilledDense: want %d values, got %d", w*h, len(vals))
	}
	d := MustDense(tb, w, h)
	if err := d.FillArray(vals); err != nil {
		tb.Fatalf("FillArray: %v", err)
	}

	return d
}

// MustValue reads (x, y) or fails the test.
func MustValue(tb testing.TB, m matrix.Matrix, x, y int) float64 {
	tb.Helper()
	v, err := m.Value(x, y)
	if err != nil {
		tb.Fatalf("Value(%d,%d): %v", x, y, err)
	}

	return v
}

// RandFilledDense returns a new w×h Dense filled with deterministic U(-1,1).
func RandFilledDense(tb testing.TB, w, h int, seed int64) *matrix.Dense {
	tb.Helper()
	d := MustDense(tb, w, h)
	if err := d.RandomFill(rand.New(rand.NewSource(seed)), -1, 1); err != nil {
		tb.Fatalf("RandomFill: %v", err)
	}

	return d
}

// RandMatrix4 returns a Matrix4 filled with deterministic U(-1,1).
func RandMatrix4(tb testing.TB, seed int64) matrix.Matrix4 {
	tb.Helper()
	var m matrix.Matrix4
	if err := m.RandomFill(rand.New(rand.NewSource(seed)), -1, 1); err != nil {
		tb.Fatalf("RandomFill: %v", err)
	}

	return m
}
