// SPDX-License-Identifier: MIT

package spring

import "time"

// TimeStep is the state-transition matrix for one Params and one delta-time:
//
//	x' = pp·x + pv·v
//	v' = vp·x + vv·v
//
// where x is the position relative to the equilibrium. A TimeStep is an
// immutable value; derive it once per (Params, delta) and apply it to any
// number of springs.
//
// The zero value is NOT the identity (it snaps every spring to its
// equilibrium with zero velocity); use Identity for a no-op step.
type TimeStep[F Float] struct {
	pp, pv F
	vp, vv F
}

// Identity returns the no-op time step {pp:1, pv:0, vp:0, vv:1}.
func Identity[F Float]() TimeStep[F] {
	return TimeStep[F]{pp: 1, vv: 1}
}

// NewTimeStep derives the closed-form coefficients advancing a spring with
// parameters p by delta. Any delta is accepted: zero yields the identity and
// a negative delta steps backwards in time.
//
// Complexity: O(1); at most two exp calls, or one exp and one sincos.
func NewTimeStep[F Float](p Params[F], delta F) TimeStep[F] {
	switch p.regime {
	case OverDamped:
		return overDamped(p.zb, p.z1, p.z2, delta)
	case CriticallyDamped:
		return criticallyDamped(p.angularFreq, delta)
	case UnderDamped:
		return underDamped(p.oz, p.a, delta)
	default:
		return Identity[F]()
	}
}

// overDamped superposes the two real modes e^(z1·t) and e^(z2·t).
func overDamped[F Float](zb, z1, z2, delta F) TimeStep[F] {
	e1 := exp(z1 * delta)
	e2 := exp(z2 * delta)
	inv2zb := 1 / (2 * zb) // 1 / (z2 - z1)

	e1Over2zb := e1 * inv2zb
	e2Over2zb := e2 * inv2zb
	z1e1Over2zb := z1 * e1Over2zb
	z2e2Over2zb := z2 * e2Over2zb

	return TimeStep[F]{
		pp: e1Over2zb*z2 - z2e2Over2zb + e2,
		pv: -e1Over2zb + e2Over2zb,
		vp: (z1e1Over2zb - z2e2Over2zb + e2) * z2,
		vv: -z1e1Over2zb + z2e2Over2zb,
	}
}

// criticallyDamped is the repeated-root solution (x0 + (v0 + ω·x0)·t)·e^(-ω·t).
func criticallyDamped[F Float](freq, delta F) TimeStep[F] {
	e := exp(-freq * delta)
	timeExp := delta * e
	timeExpFreq := timeExp * freq

	return TimeStep[F]{
		pp: timeExpFreq + e,
		pv: timeExp,
		vp: -freq * timeExpFreq,
		vv: e - timeExpFreq,
	}
}

// underDamped is e^(-oz·t) modulated by cos(a·t) and sin(a·t).
func underDamped[F Float](oz, a, delta F) TimeStep[F] {
	e := exp(-oz * delta)
	sin, cos := sincos(a * delta)
	invA := 1 / a

	expSin := e * sin
	expCos := e * cos
	expOzSinOverA := e * oz * sin * invA

	return TimeStep[F]{
		pp: expCos + expOzSinOverA,
		pv: expSin * invA,
		vp: -expSin*a - oz*expOzSinOverA,
		vv: expCos - expOzSinOverA,
	}
}

// Coefficients returns the four matrix entries.
func (ts TimeStep[F]) Coefficients() (pp, pv, vp, vv F) {
	return ts.pp, ts.pv, ts.vp, ts.vv
}

// Step advances a (position, velocity) pair around equilibrium and returns
// the new pair. The equilibrium itself is a frame of reference and is not
// changed.
func (ts TimeStep[F]) Step(position, velocity, equilibrium F) (F, F) {
	x := position - equilibrium
	return x*ts.pp + velocity*ts.pv + equilibrium, x*ts.vp + velocity*ts.vv
}

// UpdateMany applies ts to each spring in order. Nil entries are skipped.
func (ts TimeStep[F]) UpdateMany(springs ...*Spring[F]) {
	for _, s := range springs {
		if s != nil {
			s.Update(ts)
		}
	}
}

// UpdateSlice applies ts to every element of springs in place.
func (ts TimeStep[F]) UpdateSlice(springs []Spring[F]) {
	for i := range springs {
		springs[i].Update(ts)
	}
}

// FPS returns the delta-time in seconds of one frame at n frames per second.
// It returns 0 for n <= 0.
func FPS(n int) float64 {
	if n <= 0 {
		return 0
	}
	return (time.Second / time.Duration(n)).Seconds()
}
