package attractor

import "github.com/san-kum/attractor/internal/ode"

type Lorenz struct{ sigma, rho, beta float64 }

func NewLorenz(sigma, rho, beta float64) *Lorenz { return &Lorenz{sigma, rho, beta} }

// Derive calculates the Lorenz system derivatives.
func (l *Lorenz) Derive(s ode.State) ode.State {
	return ode.State{l.sigma * (s[1] - s[0]), s[0]*(l.rho-s[2]) - s[1], s[0]*s[1] - l.beta*s[2]}
}

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "rho": l.rho, "beta": l.beta}
}

func (l *Lorenz) SetParam(n string, v float64) {
	switch n {
	case "sigma":
		l.sigma = v
	case "rho":
		l.rho = v
	case "beta":
		l.beta = v
	}
}
