package integrators

import "github.com/san-kum/attractor/internal/ode"

// Euler is the explicit first-order method: one derivative evaluation per
// step, local truncation error O(dt^2).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys ode.System, s ode.State, dt float64) ode.State {
	d := sys.Derive(s)
	return ode.State{s[0] + dt*d[0], s[1] + dt*d[1], s[2] + dt*d[2]}
}
