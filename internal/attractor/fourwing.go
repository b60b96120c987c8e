package attractor

import "github.com/san-kum/attractor/internal/ode"

type FourWing struct{ a, b, c float64 }

func NewFourWing(a, b, c float64) *FourWing { return &FourWing{a, b, c} }

// Derive calculates the four-wing system derivatives.
func (f *FourWing) Derive(s ode.State) ode.State {
	return ode.State{
		f.a*s[0] + s[1]*s[2],
		f.b*s[0] + f.c*s[1] - s[0]*s[2],
		-s[2] - s[0]*s[1],
	}
}

func (f *FourWing) GetParams() map[string]float64 {
	return map[string]float64{"a": f.a, "b": f.b, "c": f.c}
}

func (f *FourWing) SetParam(n string, v float64) {
	switch n {
	case "a":
		f.a = v
	case "b":
		f.b = v
	case "c":
		f.c = v
	}
}
