// SPDX-License-Identifier: MIT

package spring

// Config holds the physical parameters of a spring. It is immutable once
// built; both values are guaranteed to be >= 0.
type Config[F Float] struct {
	angularFreq  F
	dampingRatio F
}

// NewConfig builds a Config from an angular frequency (radians per time unit)
// and a damping ratio. Negative values and NaN are clamped to zero.
//
// Example:
//
//	cfg := NewConfig(5.0, 0.5) // under-damped, ~0.8 oscillations per second
func NewConfig[F Float](angularFreq, dampingRatio F) Config[F] {
	return Config[F]{
		angularFreq:  nonNegative(angularFreq),
		dampingRatio: nonNegative(dampingRatio),
	}
}

// AngularFreq returns the clamped angular frequency.
func (c Config[F]) AngularFreq() F { return c.angularFreq }

// DampingRatio returns the clamped damping ratio.
func (c Config[F]) DampingRatio() F { return c.dampingRatio }

// Params derives the regime parameters of c. Same as NewParams(c).
func (c Config[F]) Params() Params[F] { return NewParams(c) }

// nonNegative maps negatives, -0 and NaN to 0.
func nonNegative[F Float](x F) F {
	if !(x > 0) {
		return 0
	}
	return x
}
