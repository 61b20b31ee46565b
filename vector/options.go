// SPDX-License-Identifier: MIT

// Package vector: functional configuration for tolerant comparison.
//
// Design goals:
//   - Deterministic behavior: no global state; defaults are constants.
//   - Safe by construction: WithX panics on nonsensical values (programmer error).
package vector

import "github.com/katalvlaran/tensormath/internal/numeric"

// DefaultEpsilon is the comparison tolerance used by Equal and EqualScalar
// when no WithEpsilon option is given (10 × float64 machine epsilon).
const DefaultEpsilon = numeric.DefaultEpsilon

const panicEpsilonInvalid = "vector: WithEpsilon: eps must be finite, non-negative"

// Option mutates comparison options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance used by Equal and EqualScalar.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if !numeric.IsFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Gather resolves opts on top of the defaults. Exported so the matrix
// package can forward its own options without duplicating the policy.
func Gather(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
