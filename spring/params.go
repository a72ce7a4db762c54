// SPDX-License-Identifier: MIT

package spring

// Params are the regime-tagged constants derived from a Config. Exactly one
// regime is active; only that regime's payload is meaningful. Params is a
// comparable value, so callers may cache it or use it as a map key.
//
// The zero value is Static.
type Params[F Float] struct {
	regime Regime

	// OverDamped
	zb, z1, z2 F
	// CriticallyDamped
	angularFreq F
	// UnderDamped
	oz, a F
}

// NewParams classifies cfg and precomputes its regime constants.
//
// Classification, with ε = Epsilon[F]():
//
//	ω < ε        → Static
//	ζ > 1 + ε    → OverDamped       zb = ω·√(ζ²-1), z1 = -ωζ - zb, z2 = -ωζ + zb
//	ζ < 1 - ε    → UnderDamped      oz = ωζ, a = ω·√(1-ζ²)
//	otherwise    → CriticallyDamped
//
// The conversion is pure and total.
func NewParams[F Float](cfg Config[F]) Params[F] {
	eps := Epsilon[F]()
	freq, damping := cfg.angularFreq, cfg.dampingRatio

	if freq < eps {
		return Params[F]{regime: Static}
	}

	switch {
	case damping > 1+eps:
		za := -freq * damping
		zb := freq * sqrt(damping*damping-1)
		return Params[F]{regime: OverDamped, zb: zb, z1: za - zb, z2: za + zb}

	case damping < 1-eps:
		return Params[F]{
			regime: UnderDamped,
			oz:     freq * damping,
			a:      freq * sqrt(1-damping*damping),
		}

	default:
		return Params[F]{regime: CriticallyDamped, angularFreq: freq}
	}
}

// Regime reports which variant is active.
func (p Params[F]) Regime() Regime { return p.regime }

// OverDamped returns the over-damped payload; ok is false for any other regime.
func (p Params[F]) OverDamped() (zb, z1, z2 F, ok bool) {
	if p.regime != OverDamped {
		return 0, 0, 0, false
	}
	return p.zb, p.z1, p.z2, true
}

// CriticallyDamped returns the critically-damped payload; ok is false for any
// other regime.
func (p Params[F]) CriticallyDamped() (angularFreq F, ok bool) {
	if p.regime != CriticallyDamped {
		return 0, false
	}
	return p.angularFreq, true
}

// UnderDamped returns the under-damped payload; ok is false for any other regime.
func (p Params[F]) UnderDamped() (oz, a F, ok bool) {
	if p.regime != UnderDamped {
		return 0, 0, false
	}
	return p.oz, p.a, true
}
