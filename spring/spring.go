// SPDX-License-Identifier: MIT

package spring

// Spring is the mutable state of one oscillator. The zero value is a spring
// at rest on a zero equilibrium.
//
// Spring is a plain value: copy it freely, but do not mutate one instance
// from several goroutines without synchronization.
type Spring[F Float] struct {
	Position    F // current position
	Velocity    F // current velocity
	Equilibrium F // target the position decays toward
}

// FromEquilibrium returns a spring resting at equilibrium with zero velocity.
// The position starts at zero, so the spring moves toward equilibrium on the
// first update.
func FromEquilibrium[F Float](equilibrium F) Spring[F] {
	return Spring[F]{Equilibrium: equilibrium}
}

// Update advances s in place using a precomputed time step.
func (s *Spring[F]) Update(ts TimeStep[F]) {
	s.Position, s.Velocity = ts.Step(s.Position, s.Velocity, s.Equilibrium)
}

// UpdateSingle derives a TimeStep for p and delta and applies it to s.
//
// When several springs share p and delta, or delta is constant across
// frames, derive the TimeStep once with NewTimeStep and call Update instead.
func (s *Spring[F]) UpdateSingle(p Params[F], delta F) {
	s.Update(NewTimeStep(p, delta))
}

// Settled reports whether s is within tolerance of its equilibrium and its
// speed is at most tolerance.
func (s Spring[F]) Settled(tolerance F) bool {
	return abs(s.Position-s.Equilibrium) <= tolerance && abs(s.Velocity) <= tolerance
}
