package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/ode"
)

// circleDynamics rotates in the xy-plane: x(t) = cos t, y(t) = -sin t.
type circleDynamics struct{}

func (c *circleDynamics) Derive(s ode.State) ode.State {
	return ode.State{s[1], -s[0], 0}
}

func TestRK4Accuracy(t *testing.T) {
	dyn := &circleDynamics{}
	integ := NewRK4()

	x := ode.State{1.0, 0.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, dt)
	}

	elapsed := float64(steps) * dt
	expectedX := math.Cos(elapsed)
	expectedY := -math.Sin(elapsed)

	if math.Abs(x[0]-expectedX) > 1e-8 {
		t.Errorf("x error too large: got %.10f, expected %.10f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedY) > 1e-8 {
		t.Errorf("y error too large: got %.10f, expected %.10f", x[1], expectedY)
	}
}

func TestRK4SmallerLocalErrorThanEuler(t *testing.T) {
	sys, err := attractor.New(attractor.TypeLorenz, attractor.TypeLorenz.DefaultParams())
	if err != nil {
		t.Fatalf("building lorenz: %v", err)
	}

	x0 := ode.State{1, 1, 1}
	dt := 0.01

	// Reference: the same interval covered by many tiny RK4 substeps.
	ref := x0
	fine := NewRK4()
	const sub = 1000
	for i := 0; i < sub; i++ {
		ref = fine.Step(sys, ref, dt/sub)
	}

	eulerErr := NewEuler().Step(sys, x0, dt).Sub(ref).Norm()
	rk4Err := NewRK4().Step(sys, x0, dt).Sub(ref).Norm()

	if rk4Err >= eulerErr {
		t.Errorf("rk4 error %.3e not smaller than euler error %.3e", rk4Err, eulerErr)
	}
}

func TestSteppersStateless(t *testing.T) {
	dyn := &circleDynamics{}
	x := ode.State{0.3, -0.7, 0.1}

	for _, method := range Methods() {
		integ, err := New(method)
		if err != nil {
			t.Fatalf("New(%s) failed: %v", method, err)
		}

		first := integ.Step(dyn, x, 0.05)
		// Interleave unrelated steps; results must not depend on call history.
		integ.Step(dyn, ode.State{9, 9, 9}, 0.5)
		if got := integ.Step(dyn, x, 0.05); got != first {
			t.Errorf("%s: repeated step differs: %v != %v", method, got, first)
		}
	}
}

func TestNew_UnknownMethod(t *testing.T) {
	for _, name := range []string{"rk45", "", "runge_kutta", "RK4"} {
		if _, err := New(name); err == nil {
			t.Errorf("New(%q): expected error, got nil", name)
		}
	}
}
