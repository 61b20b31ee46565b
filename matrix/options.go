// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for comparison and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - eps feeds Equal (both Dense and Fixed) through the same tolerant rule the
//     vector package uses: |a-b| ≤ eps OR |a-b| ≤ eps·max(|a|,|b|).
//   - validateNaNInf is a per-Dense policy captured at construction; it guards
//     SetValue and FillArray. Fixed matrices are plain values and never validate.
package matrix

import (
	"github.com/katalvlaran/tensormath/internal/numeric"
	"github.com/katalvlaran/tensormath/vector"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by Equal: 10 × float64 machine epsilon.
	DefaultEpsilon = numeric.DefaultEpsilon

	// DefaultValidateNaNInf toggles strict finite-value validation on SetValue
	// and FillArray. Off by default: IEEE-754 semantics (Inf from 1/0, NaN from
	// 0/0) are part of the arithmetic contract.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the tolerance used by Equal.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if !numeric.IsFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes a new Dense reject NaN and ±Inf in SetValue and
// FillArray with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default IEEE-754 policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts over the defaults. Exposed for callers that
// want to inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// vectorOption forwards the tolerance to per-column vector comparisons.
func (o Options) vectorOption() vector.Option { return vector.WithEpsilon(o.eps) }

// gatherOptions applies user-provided Option setters on top of defaults.
//
// Determinism:
//   - Stable for a given sequence of setters (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
