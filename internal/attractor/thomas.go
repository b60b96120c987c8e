package attractor

import (
	"math"

	"github.com/san-kum/attractor/internal/ode"
)

// Thomas is the cyclically symmetric Thomas system. Its single parameter b
// acts as damping; chaos appears below b ~ 0.208186.
type Thomas struct{ b float64 }

func NewThomas(b float64) *Thomas { return &Thomas{b} }

func (t *Thomas) Derive(s ode.State) ode.State {
	return ode.State{
		math.Sin(s[1]) - t.b*s[0],
		math.Sin(s[2]) - t.b*s[1],
		math.Sin(s[0]) - t.b*s[2],
	}
}

func (t *Thomas) GetParams() map[string]float64 {
	return map[string]float64{"b": t.b}
}

func (t *Thomas) SetParam(n string, v float64) {
	if n == "b" {
		t.b = v
	}
}
