package ode

import "errors"

// Domain errors surfaced by session configuration and computation.
var (
	// ErrUnknownType indicates an attractor type outside the supported set.
	ErrUnknownType = errors.New("ode: unknown attractor type")

	// ErrUnknownMethod indicates an unsupported integration method.
	ErrUnknownMethod = errors.New("ode: unknown integration method")

	// ErrNonPositiveStep indicates a step size <= 0.
	ErrNonPositiveStep = errors.New("ode: step size must be positive")

	// ErrNegativeSteps indicates a negative iteration count.
	ErrNegativeSteps = errors.New("ode: iteration count must not be negative")

	// ErrBadInitState indicates initial coordinates that are not exactly (x, y, z).
	ErrBadInitState = errors.New("ode: initial state must have exactly 3 components")

	// ErrParamCount indicates a parameter list whose length does not match
	// the attractor type.
	ErrParamCount = errors.New("ode: wrong parameter count")

	// ErrNotComputed indicates a cached trajectory was requested before any
	// successful calculation.
	ErrNotComputed = errors.New("ode: no trajectory computed yet")
)
