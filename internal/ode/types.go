package ode

import "math"

// State is a point in phase space: (x, y, z). It is a value type; steppers
// never mutate their input, each step produces a fresh State.
type State [3]float64

func (s State) Add(other State) State {
	return State{s[0] + other[0], s[1] + other[1], s[2] + other[2]}
}

func (s State) Scale(factor float64) State {
	return State{s[0] * factor, s[1] * factor, s[2] * factor}
}

func (s State) Sub(other State) State {
	return State{s[0] - other[0], s[1] - other[1], s[2] - other[2]}
}

func (s State) Norm() float64 {
	return math.Sqrt(s[0]*s[0] + s[1]*s[1] + s[2]*s[2])
}

// IsValid reports whether all components are finite. Divergent trajectories
// are not an error, but consumers may want to stop drawing them.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is the right-hand side of an autonomous ODE system dX/dt = f(X).
type System interface {
	Derive(s State) State
}

// Stepper advances a state by one time increment dt. Implementations must be
// stateless across calls: the same (s, dt) always yields the same result.
type Stepper interface {
	Step(sys System, s State, dt float64) State
}

// Configurable is implemented by systems whose parameters can be inspected
// and tuned at runtime (used by the live view).
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64)
}
