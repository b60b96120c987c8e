// Package ode provides core primitives for integrating three-dimensional
// autonomous ODE systems.
//
// The package defines the fundamental types shared by the rest of the module:
//
//   - [State]: a point (x, y, z) in phase space
//   - [System]: the derivative function dX/dt = f(X)
//   - [Stepper]: a fixed-step numerical integrator
//
// # Example
//
//	sys, _ := attractor.New(attractor.TypeLorenz, []float64{10, 28, 8.0 / 3.0})
//	next := integrators.NewRK4().Step(sys, ode.State{1, 1, 1}, 0.01)
//
// Steppers are stateless; advancing a trajectory is a plain fold over the
// previous state.
package ode
