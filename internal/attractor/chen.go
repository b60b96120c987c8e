package attractor

import "github.com/san-kum/attractor/internal/ode"

type Chen struct{ a, b, c float64 }

func NewChen(a, b, c float64) *Chen { return &Chen{a, b, c} }

// Derive calculates the Chen system derivatives.
func (ch *Chen) Derive(s ode.State) ode.State {
	return ode.State{
		ch.a * (s[1] - s[0]),
		(ch.c-ch.a)*s[0] - s[0]*s[2] + ch.c*s[1],
		s[0]*s[1] - ch.b*s[2],
	}
}

func (ch *Chen) GetParams() map[string]float64 {
	return map[string]float64{"a": ch.a, "b": ch.b, "c": ch.c}
}

func (ch *Chen) SetParam(n string, v float64) {
	switch n {
	case "a":
		ch.a = v
	case "b":
		ch.b = v
	case "c":
		ch.c = v
	}
}
