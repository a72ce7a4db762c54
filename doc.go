// Package dampspring animates scalar values with damped harmonic oscillators
// ("springs") using the exact closed-form update instead of numerical
// integration.
//
// 🚀 What is dampspring?
//
//	A small, allocation-free, precision-generic library that brings together:
//		• Config: angular frequency ω and damping ratio ζ, clamped to >= 0
//		• Params: over-, critically-, under-damped or static, with cached constants
//		• TimeStep: the 2×2 transition matrix for one delta-time
//		• Spring and Collection: the state you update every frame
//
// ✨ Why choose dampspring?
//
//   - Stable at any frame rate: no Euler blow-ups for stiff springs
//   - Cheap: derive a TimeStep once, apply it to thousands of springs
//   - Generic: float32 or float64, epsilon tracks the precision
//   - Pure Go: no cgo, no I/O, no global state
//
// Under the hood, everything lives in one subpackage:
//
//	spring/    Config, Params, TimeStep, Spring, Collection, presets
//	examples/  runnable demos (1D, 2D, collection)
//
// Quick example:
//
//	params := spring.NewConfig(5.0, 0.5).Params()
//	step := spring.NewTimeStep(params, spring.FPS(60))
//	s := spring.FromEquilibrium(1.0)
//	s.Update(step)
//
//	go get github.com/katalvlaran/dampspring/spring
package dampspring
