package sim

import "github.com/san-kum/attractor/internal/ode"

// Trajectory is the ordered state sequence produced by repeated stepping.
// Index 0 is the initial state; index i is the state after i steps. It is
// never mutated after Build returns.
type Trajectory []ode.State

// Build runs the stepping loop: steps+1 states, each depending only on the
// previous one. No divergence detection; unstable parameter choices
// propagate as Inf/NaN values, which is genuine behavior for these systems.
func Build(sys ode.System, stepper ode.Stepper, init ode.State, dt float64, steps int) Trajectory {
	traj := make(Trajectory, steps+1)
	traj[0] = init
	for i := 1; i <= steps; i++ {
		traj[i] = stepper.Step(sys, traj[i-1], dt)
	}
	return traj
}

func (t Trajectory) Len() int { return len(t) }

func (t Trajectory) At(i int) ode.State { return t[i] }

func (t Trajectory) Last() ode.State {
	return t[len(t)-1]
}

// Column extracts a single coordinate across all states (0=x, 1=y, 2=z).
func (t Trajectory) Column(axis int) []float64 {
	col := make([]float64, len(t))
	for i, s := range t {
		col[i] = s[axis]
	}
	return col
}

// Bounds returns per-axis minima and maxima, used to fit plots.
func (t Trajectory) Bounds() (min, max ode.State) {
	if len(t) == 0 {
		return
	}
	min, max = t[0], t[0]
	for _, s := range t[1:] {
		for i := 0; i < 3; i++ {
			if s[i] < min[i] {
				min[i] = s[i]
			}
			if s[i] > max[i] {
				max[i] = s[i]
			}
		}
	}
	return
}
