package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/ode"
)

// A single Euler step is exactly state + dt*f(state) for every system.
func TestEulerSingleStep(t *testing.T) {
	integ := NewEuler()
	x := ode.State{1, 1, 1}
	dt := 0.01

	for _, name := range attractor.Types() {
		typ, _ := attractor.Parse(name)
		sys, err := attractor.New(typ, typ.DefaultParams())
		if err != nil {
			t.Fatalf("New(%s) failed: %v", typ, err)
		}

		d := sys.Derive(x)
		want := x.Add(d.Scale(dt))
		got := integ.Step(sys, x, dt)

		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-15 {
				t.Errorf("%s: Step = %v, want %v", typ, got, want)
				break
			}
		}
	}
}

func TestEulerLorenzKnownStep(t *testing.T) {
	sys, err := attractor.New(attractor.TypeLorenz, []float64{10, 28, 8.0 / 3.0})
	if err != nil {
		t.Fatalf("building lorenz: %v", err)
	}

	got := NewEuler().Step(sys, ode.State{1, 1, 1}, 0.01)

	// dx = 10(1-1) = 0, dy = 1*(28-1)-1 = 26, dz = 1*1 - 8/3 = -5/3
	want := ode.State{1.0, 1.26, 1 - 0.01*5.0/3.0}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("Step = %v, want %v", got, want)
		}
	}
}
