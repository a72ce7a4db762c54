package spring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dampspring/spring"
)

func underDamped() spring.Params[float64] {
	return spring.NewConfig(5.0, 0.5).Params()
}

// TestNewCollection_Constructors covers the three construction forms.
func TestNewCollection_Constructors(t *testing.T) {
	p := underDamped()

	c, err := spring.NewCollection(p, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, p, c.Params())
	assert.Equal(t, []spring.Spring[float64]{{}, {}, {}}, c.Springs())

	c, err = spring.CollectionFromEquilibrium(p, 2, 4.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4}, c.Equilibriums())
	assert.Equal(t, []float64{0, 0}, c.Positions())
	assert.Equal(t, []float64{0, 0}, c.Velocities())

	eqs := []float64{1, 2, 3}
	c, err = spring.CollectionFromEquilibriums(p, 3, eqs)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, c.Equilibriums())
	eqs[0] = 99
	assert.Equal(t, 1.0, c.Equilibriums()[0], "constructor must copy its input")

	c, err = spring.NewCollection(p, 0)
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Positions())
	assert.True(t, c.Settled(0), "empty collection is settled")
}

// TestNewCollection_InvalidLength checks negative sizes and mismatched
// equilibrium slices.
func TestNewCollection_InvalidLength(t *testing.T) {
	p := underDamped()

	_, err := spring.NewCollection(p, -1)
	assert.ErrorIs(t, err, spring.ErrInvalidLength)

	_, err = spring.CollectionFromEquilibrium(p, -2, 1.0)
	assert.ErrorIs(t, err, spring.ErrInvalidLength)

	_, err = spring.CollectionFromEquilibriums(p, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, spring.ErrInvalidLength)

	_, err = spring.CollectionFromEquilibriums(p, 2, nil)
	assert.ErrorIs(t, err, spring.ErrInvalidLength)

	_, err = spring.CollectionFromEquilibriums(p, -1, []float64{})
	assert.ErrorIs(t, err, spring.ErrInvalidLength)
}

// TestCollection_UpdateMatchesScalar: a collection update equals deriving one
// TimeStep and updating each spring individually.
func TestCollection_UpdateMatchesScalar(t *testing.T) {
	p := underDamped()
	eqs := []float64{1, 2, -3, 0.5}
	c, err := spring.CollectionFromEquilibriums(p, len(eqs), eqs)
	require.NoError(t, err)

	singles := make([]spring.Spring[float64], len(eqs))
	for i, eq := range eqs {
		singles[i] = spring.FromEquilibrium(eq)
	}

	for frame := 0; frame < 20; frame++ {
		c.Update(0.1)
		ts := spring.NewTimeStep(p, 0.1)
		for i := range singles {
			singles[i].Update(ts)
		}
	}

	assert.Equal(t, singles, c.Springs())
}

// TestCollection_UpdateWithForeignTimeStep: UpdateWith uses the given
// coefficients, not the collection's own params.
func TestCollection_UpdateWithForeignTimeStep(t *testing.T) {
	c, err := spring.CollectionFromEquilibrium(spring.NewConfig(0.0, 1.0).Params(), 2, 1.0)
	require.NoError(t, err)
	require.Equal(t, spring.Static, c.Params().Regime())

	c.Update(0.1)
	assert.Equal(t, []float64{0, 0}, c.Positions(), "static params never move")

	foreign := spring.NewTimeStep(underDamped(), 0.1)
	c.UpdateWith(foreign)

	want := spring.FromEquilibrium(1.0)
	want.Update(foreign)
	assert.Equal(t, []float64{want.Position, want.Position}, c.Positions())
	assert.Equal(t, []float64{want.Velocity, want.Velocity}, c.Velocities())
}

// TestCollection_SetSingle covers per-slot setters and their index check.
func TestCollection_SetSingle(t *testing.T) {
	c, err := spring.NewCollection(underDamped(), 2)
	require.NoError(t, err)

	require.NoError(t, c.SetPosition(0, 1.5))
	require.NoError(t, c.SetVelocity(1, -2))
	require.NoError(t, c.SetEquilibrium(1, 7))

	assert.Equal(t, []float64{1.5, 0}, c.Positions())
	assert.Equal(t, []float64{0, -2}, c.Velocities())
	assert.Equal(t, []float64{0, 7}, c.Equilibriums())

	s, err := c.Spring(1)
	require.NoError(t, err)
	assert.Equal(t, spring.Spring[float64]{Position: 0, Velocity: -2, Equilibrium: 7}, s)

	for _, i := range []int{-1, 2, 100} {
		assert.ErrorIs(t, c.SetPosition(i, 1), spring.ErrIndexOutOfRange, "index %d", i)
		assert.ErrorIs(t, c.SetVelocity(i, 1), spring.ErrIndexOutOfRange, "index %d", i)
		assert.ErrorIs(t, c.SetEquilibrium(i, 1), spring.ErrIndexOutOfRange, "index %d", i)
		_, err := c.Spring(i)
		assert.ErrorIs(t, err, spring.ErrIndexOutOfRange, "index %d", i)
	}
	assert.Equal(t, []float64{1.5, 0}, c.Positions(), "failed set must not mutate")
}

// TestCollection_SetAll covers bulk setters. A 3-element input on a 2-slot
// collection fails with ErrInvalidLength and leaves every slot untouched.
func TestCollection_SetAll(t *testing.T) {
	c, err := spring.CollectionFromEquilibriums(underDamped(), 2, []float64{1, 2})
	require.NoError(t, err)
	c.Update(0.1)
	before := c.Springs()

	assert.ErrorIs(t, c.SetPositions([]float64{1, 2, 3}), spring.ErrInvalidLength)
	assert.ErrorIs(t, c.SetVelocities([]float64{1, 2, 3}), spring.ErrInvalidLength)
	assert.ErrorIs(t, c.SetEquilibriums([]float64{1, 2, 3}), spring.ErrInvalidLength)
	assert.ErrorIs(t, c.SetPositions([]float64{1}), spring.ErrInvalidLength)
	assert.ErrorIs(t, c.SetPositions(nil), spring.ErrInvalidLength)
	assert.Equal(t, before, c.Springs(), "failed bulk set must not mutate")

	require.NoError(t, c.SetPositions([]float64{-1, -2}))
	require.NoError(t, c.SetVelocities([]float64{0.5, 0.25}))
	require.NoError(t, c.SetEquilibriums([]float64{10, 20}))
	assert.Equal(t, []spring.Spring[float64]{
		{Position: -1, Velocity: 0.5, Equilibrium: 10},
		{Position: -2, Velocity: 0.25, Equilibrium: 20},
	}, c.Springs())
}

// TestCollection_AccessorsReturnCopies: mutating returned slices does not
// affect the collection.
func TestCollection_AccessorsReturnCopies(t *testing.T) {
	c, err := spring.CollectionFromEquilibrium(underDamped(), 2, 3.0)
	require.NoError(t, err)

	c.Positions()[0] = 42
	c.Velocities()[0] = 42
	c.Equilibriums()[0] = 42
	c.Springs()[1].Position = 42

	assert.Equal(t, []float64{0, 0}, c.Positions())
	assert.Equal(t, []float64{0, 0}, c.Velocities())
	assert.Equal(t, []float64{3, 3}, c.Equilibriums())
}

// TestCollection_Settled: a collection settles only when every slot does.
func TestCollection_Settled(t *testing.T) {
	c, err := spring.CollectionFromEquilibriums(underDamped(), 2, []float64{1, 2})
	require.NoError(t, err)
	assert.False(t, c.Settled(1e-3))

	for i := 0; i < 200; i++ {
		c.Update(0.1)
	}
	assert.True(t, c.Settled(1e-6))

	require.NoError(t, c.SetVelocity(1, 5))
	assert.False(t, c.Settled(1e-6))
}
