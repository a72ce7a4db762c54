// SPDX-License-Identifier: MIT

// Package spring defines the numeric constraint, machine epsilon and the
// damping regime enum shared by every spring type.
package spring

import "math"

// Float is the set of IEEE-754 types a spring can be computed in.
// Named types such as `type Meters float64` are accepted.
type Float interface {
	~float32 | ~float64
}

// Epsilon returns the machine epsilon of F: the gap between 1 and the next
// representable value (2^-23 for float32, 2^-52 for float64).
func Epsilon[F Float]() F {
	one := F(1)
	if one+F(0x1p-30) == one {
		return F(0x1p-23)
	}

	return F(0x1p-52)
}

// Regime is the qualitative damping behavior selected for a Config.
type Regime int

const (
	// Static: angular frequency below epsilon, the spring never moves.
	Static Regime = iota
	// OverDamped: damping ratio above 1, two decaying exponential modes.
	OverDamped
	// CriticallyDamped: damping ratio within epsilon of 1.
	CriticallyDamped
	// UnderDamped: damping ratio below 1, oscillatory decay.
	UnderDamped
)

// String returns a lowercase, hyphenated regime name.
func (r Regime) String() string {
	switch r {
	case Static:
		return "static"
	case OverDamped:
		return "over-damped"
	case CriticallyDamped:
		return "critically-damped"
	case UnderDamped:
		return "under-damped"
	default:
		return "unknown"
	}
}

// The standard library works in float64; results are rounded back to F.

func sqrt[F Float](x F) F { return F(math.Sqrt(float64(x))) }

func exp[F Float](x F) F { return F(math.Exp(float64(x))) }

func sincos[F Float](x F) (sin, cos F) {
	s, c := math.Sincos(float64(x))
	return F(s), F(c)
}

func abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}
