// Package sim wires attractor systems and steppers into full trajectory
// computations behind a validated session facade.
package sim

import (
	"fmt"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/integrators"
	"github.com/san-kum/attractor/internal/ode"
)

// DefaultInit is the initial state used when none is supplied.
var DefaultInit = ode.State{1, 1, 1}

// Config is a validated session configuration. Steps may be zero, in which
// case a calculation returns only the initial state.
type Config struct {
	Type   attractor.Type
	Dt     float64
	Steps  int
	Method string
	Init   ode.State
}

// Session owns a validated configuration and caches the most recent
// trajectory for reuse by plotting consumers. Sessions are not safe for
// concurrent use; independent computations get independent sessions.
type Session struct {
	cfg     Config
	stepper ode.Stepper
	cached  Trajectory
}

// New validates all configuration invariants eagerly and returns a session.
// init is either absent (defaults to (1,1,1)) or exactly three coordinates.
func New(typ string, dt float64, steps int, method string, init ...float64) (*Session, error) {
	t, err := attractor.Parse(typ)
	if err != nil {
		return nil, err
	}
	if dt <= 0 {
		return nil, fmt.Errorf("%w: got %g", ode.ErrNonPositiveStep, dt)
	}
	if steps < 0 {
		return nil, fmt.Errorf("%w: got %d", ode.ErrNegativeSteps, steps)
	}
	stepper, err := integrators.New(method)
	if err != nil {
		return nil, err
	}

	x0 := DefaultInit
	switch len(init) {
	case 0:
	case 3:
		x0 = ode.State{init[0], init[1], init[2]}
	default:
		return nil, fmt.Errorf("%w: got %d", ode.ErrBadInitState, len(init))
	}

	return &Session{
		cfg: Config{
			Type:   t,
			Dt:     dt,
			Steps:  steps,
			Method: method,
			Init:   x0,
		},
		stepper: stepper,
	}, nil
}

func (s *Session) Config() Config { return s.cfg }

// SetInit replaces the initial state and drops the cached trajectory.
func (s *Session) SetInit(x, y, z float64) {
	s.cfg.Init = ode.State{x, y, z}
	s.cached = nil
}

// Calculate validates the parameter list against the configured type, runs
// the stepping loop, and caches the result. Recomputation replaces the
// cache; invalid parameters leave it untouched.
func (s *Session) Calculate(params []float64) (Trajectory, error) {
	sys, err := attractor.New(s.cfg.Type, params)
	if err != nil {
		return nil, err
	}

	traj := Build(sys, s.stepper, s.cfg.Init, s.cfg.Dt, s.cfg.Steps)
	s.cached = traj
	return traj, nil
}

// Cached returns the most recently computed trajectory without
// recomputation, or ErrNotComputed before the first successful Calculate.
func (s *Session) Cached() (Trajectory, error) {
	if s.cached == nil {
		return nil, ode.ErrNotComputed
	}
	return s.cached, nil
}

// System builds the configured attractor with the given parameter list,
// validating arity the same way Calculate does.
func (s *Session) System(params []float64) (ode.System, error) {
	return attractor.New(s.cfg.Type, params)
}

// Stepper returns the configured integration method.
func (s *Session) Stepper() ode.Stepper { return s.stepper }

// Frames streams states to fn one at a time instead of materializing a
// trajectory, for animation consumers. fn receives the iteration index and
// state, starting with the initial state at index 0, and reports whether to
// continue; returning false stops without error. Frames does not touch the
// cache.
func (s *Session) Frames(params []float64, fn func(i int, x ode.State) bool) error {
	sys, err := s.System(params)
	if err != nil {
		return err
	}

	x := s.cfg.Init
	for i := 0; i <= s.cfg.Steps; i++ {
		if !fn(i, x) {
			return nil
		}
		x = s.stepper.Step(sys, x, s.cfg.Dt)
	}
	return nil
}
