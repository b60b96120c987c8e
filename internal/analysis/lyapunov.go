// Package analysis provides chaos diagnostics for computed trajectories.
package analysis

import (
	"math"

	"github.com/san-kum/attractor/internal/ode"
)

// LyapunovExponent estimates the largest Lyapunov exponent with the
// two-trajectory separation method. A positive value indicates chaos.
//
// Two trajectories start a distance `perturbation` apart; their separation
// is renormalized every step so it never saturates, and the average
// logarithmic growth rate is returned.
func LyapunovExponent(sys ode.System, stepper ode.Stepper, x0 ode.State, dt float64, steps int, perturbation float64) float64 {
	if dt <= 0 || steps <= 0 || perturbation <= 0 {
		return 0
	}

	x := x0
	xp := x0
	xp[0] += perturbation

	d0 := perturbation
	sumLog := 0.0
	count := 0

	for i := 0; i < steps; i++ {
		x = stepper.Step(sys, x, dt)
		xp = stepper.Step(sys, xp, dt)

		sep := xp.Sub(x).Norm()
		if !x.IsValid() || math.IsNaN(sep) || math.IsInf(sep, 0) {
			break
		}

		if sep > 0 {
			sumLog += math.Log(sep / d0)
			count++

			// Renormalize the perturbed trajectory back to distance d0.
			scale := d0 / sep
			xp = x.Add(xp.Sub(x).Scale(scale))
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
