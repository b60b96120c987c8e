package integrators

import "github.com/san-kum/attractor/internal/ode"

// RK4 is the classical fourth-order Runge-Kutta method: four derivative
// evaluations per step, local truncation error O(dt^5). Roughly 4x the cost
// of Euler per step for markedly higher accuracy.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys ode.System, s ode.State, dt float64) ode.State {
	k1 := sys.Derive(s)
	k2 := sys.Derive(s.Add(k1.Scale(dt * 0.5)))
	k3 := sys.Derive(s.Add(k2.Scale(dt * 0.5)))
	k4 := sys.Derive(s.Add(k3.Scale(dt)))

	dt6 := dt / 6.0
	return ode.State{
		s[0] + dt6*(k1[0]+2*k2[0]+2*k3[0]+k4[0]),
		s[1] + dt6*(k1[1]+2*k2[1]+2*k3[1]+k4[1]),
		s[2] + dt6*(k1[2]+2*k2[2]+2*k3[2]+k4[2]),
	}
}
