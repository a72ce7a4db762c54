// Package spring advances damped harmonic oscillators ("springs") by an
// arbitrary time step using the exact closed-form solution, so stiff or
// heavily damped configurations stay stable at any frame rate.
//
// What:
//
//   - Config holds the physical parameters: angular frequency ω and damping ratio ζ.
//   - Params classifies a Config into one of four regimes (Static, OverDamped,
//     CriticallyDamped, UnderDamped) and caches the regime's constants.
//   - TimeStep is the 2×2 transition matrix for one Params and one delta-time.
//     It is the expensive part (exp, sin, cos) and is meant to be reused.
//   - Spring is the per-instance state (position, velocity, equilibrium).
//   - Collection bundles N springs that share one Params (2D/3D motion, UI bars).
//
// Why:
//
//   - Explicit Euler blows up for stiff springs; the analytic update never does.
//   - Deriving a TimeStep once and applying it to many springs amortizes the
//     transcendental cost across springs and frames.
//
// Usage:
//
//	params := spring.NewConfig(5.0, 0.5).Params()
//	step := spring.NewTimeStep(params, spring.FPS(60))
//
//	x, y := spring.FromEquilibrium(1.0), spring.FromEquilibrium(2.0)
//	for frame := 0; frame < 120; frame++ {
//		step.UpdateMany(&x, &y)
//	}
//
// Complexity:
//
//   - NewParams, NewTimeStep, Spring.Update: O(1), no allocation.
//   - Collection.Update / UpdateWith: O(N), one TimeStep per call.
//
// Errors:
//
//   - ErrInvalidLength: a sequence length differs from the collection size.
//   - ErrIndexOutOfRange: a slot index is outside [0, Len()).
//
// Everything else is total: negative parameters are clamped to zero and any
// delta-time, including zero and negative values, is accepted.
//
// # Thread Safety
//
// Config, Params and TimeStep are immutable values and may be shared freely
// between goroutines. Spring and Collection are mutated in place and are NOT
// safe for concurrent mutation; guard them externally if needed.
//
// The coefficients follow Ryan Juckett's "Damped Springs" derivation.
package spring
