// Package integrators implements the fixed-step numerical methods used to
// advance attractor trajectories: explicit Euler and classical fourth-order
// Runge-Kutta.
package integrators

import (
	"fmt"

	"github.com/san-kum/attractor/internal/ode"
)

const (
	MethodEuler      = "euler"
	MethodRungeKutta = "runge-kutta"
)

// Methods lists the supported method names.
func Methods() []string {
	return []string{MethodEuler, MethodRungeKutta}
}

// New returns the stepper for a method name, or ErrUnknownMethod.
func New(method string) (ode.Stepper, error) {
	switch method {
	case MethodEuler:
		return NewEuler(), nil
	case MethodRungeKutta:
		return NewRK4(), nil
	}
	return nil, fmt.Errorf("%w: %q (expected one of %v)", ode.ErrUnknownMethod, method, Methods())
}
