// SPDX-License-Identifier: MIT

package spring

import "fmt"

// Collection is a fixed-size group of springs sharing one Params, e.g. the
// axes of a 2D or 3D point. The size is set at construction and never
// changes; every sequence argument must match it.
//
// Per-slot positions, velocities and equilibriums are independent.
// A Collection is not safe for concurrent mutation.
type Collection[F Float] struct {
	params  Params[F]
	springs []Spring[F]
}

// NewCollection returns n zero-valued springs sharing p.
// Returns ErrInvalidLength if n < 0.
func NewCollection[F Float](p Params[F], n int) (*Collection[F], error) {
	return CollectionFromEquilibrium(p, n, 0)
}

// CollectionFromEquilibrium returns n springs sharing p, all resting on the
// same equilibrium. Returns ErrInvalidLength if n < 0.
func CollectionFromEquilibrium[F Float](p Params[F], n int, equilibrium F) (*Collection[F], error) {
	if n < 0 {
		return nil, fmt.Errorf("collection size %d: %w", n, ErrInvalidLength)
	}
	springs := make([]Spring[F], n)
	for i := range springs {
		springs[i] = FromEquilibrium(equilibrium)
	}

	return &Collection[F]{params: p, springs: springs}, nil
}

// CollectionFromEquilibriums returns n springs sharing p, slot i resting on
// equilibriums[i]. The slice is copied.
// Returns ErrInvalidLength if n < 0 or len(equilibriums) != n.
func CollectionFromEquilibriums[F Float](p Params[F], n int, equilibriums []F) (*Collection[F], error) {
	if n < 0 {
		return nil, fmt.Errorf("collection size %d: %w", n, ErrInvalidLength)
	}
	if len(equilibriums) != n {
		return nil, fmt.Errorf("got %d equilibriums for %d springs: %w", len(equilibriums), n, ErrInvalidLength)
	}
	springs := make([]Spring[F], n)
	for i, eq := range equilibriums {
		springs[i] = FromEquilibrium(eq)
	}

	return &Collection[F]{params: p, springs: springs}, nil
}

// Params returns the shared regime parameters.
func (c *Collection[F]) Params() Params[F] { return c.params }

// Len returns the number of slots.
func (c *Collection[F]) Len() int { return len(c.springs) }

// Update derives one TimeStep from the shared Params and delta and applies it
// to every slot.
func (c *Collection[F]) Update(delta F) {
	c.UpdateWith(NewTimeStep(c.params, delta))
}

// UpdateWith applies ts to every slot.
//
// ts need not be derived from c.Params(): all coefficients come from ts,
// which allows mixing time steps or configs within one collection.
func (c *Collection[F]) UpdateWith(ts TimeStep[F]) {
	ts.UpdateSlice(c.springs)
}

// Spring returns a copy of slot i.
func (c *Collection[F]) Spring(i int) (Spring[F], error) {
	if err := c.checkIndex(i); err != nil {
		return Spring[F]{}, err
	}
	return c.springs[i], nil
}

// Springs returns a copy of all slots in order.
func (c *Collection[F]) Springs() []Spring[F] {
	out := make([]Spring[F], len(c.springs))
	copy(out, c.springs)

	return out
}

// Settled reports whether every slot is settled within tolerance.
// An empty collection is settled.
func (c *Collection[F]) Settled(tolerance F) bool {
	for _, s := range c.springs {
		if !s.Settled(tolerance) {
			return false
		}
	}
	return true
}

// Positions returns every slot's position in slot order.
func (c *Collection[F]) Positions() []F { return c.gather(position[F]) }

// Velocities returns every slot's velocity in slot order.
func (c *Collection[F]) Velocities() []F { return c.gather(velocity[F]) }

// Equilibriums returns every slot's equilibrium in slot order.
func (c *Collection[F]) Equilibriums() []F { return c.gather(equilibrium[F]) }

// SetPosition sets slot i's position. Returns ErrIndexOutOfRange for a bad i.
func (c *Collection[F]) SetPosition(i int, v F) error { return c.setOne(i, v, position[F]) }

// SetVelocity sets slot i's velocity. Returns ErrIndexOutOfRange for a bad i.
func (c *Collection[F]) SetVelocity(i int, v F) error { return c.setOne(i, v, velocity[F]) }

// SetEquilibrium sets slot i's equilibrium. Returns ErrIndexOutOfRange for a bad i.
func (c *Collection[F]) SetEquilibrium(i int, v F) error { return c.setOne(i, v, equilibrium[F]) }

// SetPositions overwrites every slot's position. Returns ErrInvalidLength,
// leaving the collection untouched, if len(vs) != Len().
func (c *Collection[F]) SetPositions(vs []F) error { return c.setAll(vs, position[F]) }

// SetVelocities overwrites every slot's velocity. Returns ErrInvalidLength,
// leaving the collection untouched, if len(vs) != Len().
func (c *Collection[F]) SetVelocities(vs []F) error { return c.setAll(vs, velocity[F]) }

// SetEquilibriums overwrites every slot's equilibrium. Returns ErrInvalidLength,
// leaving the collection untouched, if len(vs) != Len().
func (c *Collection[F]) SetEquilibriums(vs []F) error { return c.setAll(vs, equilibrium[F]) }

// field selects one property of a spring.
type field[F Float] func(s *Spring[F]) *F

func position[F Float](s *Spring[F]) *F { return &s.Position }
func velocity[F Float](s *Spring[F]) *F { return &s.Velocity }
func equilibrium[F Float](s *Spring[F]) *F { return &s.Equilibrium }

func (c *Collection[F]) gather(f field[F]) []F {
	out := make([]F, len(c.springs))
	for i := range c.springs {
		out[i] = *f(&c.springs[i])
	}
	return out
}

func (c *Collection[F]) setOne(i int, v F, f field[F]) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	*f(&c.springs[i]) = v

	return nil
}

// setAll validates before writing so a failed call mutates nothing.
func (c *Collection[F]) setAll(vs []F, f field[F]) error {
	if len(vs) != len(c.springs) {
		return fmt.Errorf("got %d values for %d springs: %w", len(vs), len(c.springs), ErrInvalidLength)
	}
	for i, v := range vs {
		*f(&c.springs[i]) = v
	}

	return nil
}

func (c *Collection[F]) checkIndex(i int) error {
	if i < 0 || i >= len(c.springs) {
		return fmt.Errorf("index %d, len %d: %w", i, len(c.springs), ErrIndexOutOfRange)
	}
	return nil
}
