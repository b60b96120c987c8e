package attractor

import (
	"fmt"

	"github.com/san-kum/attractor/internal/ode"
)

// Type identifies one of the supported strange attractors. The set is
// closed: anything else is rejected at configuration time.
type Type string

const (
	TypeLorenz   Type = "lorenz"
	TypeChen     Type = "chen"
	TypeFourWing Type = "four_wing"
	TypeThomas   Type = "thomas"
)

// Parse validates a type name coming from the CLI or a config file.
func Parse(name string) (Type, error) {
	switch Type(name) {
	case TypeLorenz, TypeChen, TypeFourWing, TypeThomas:
		return Type(name), nil
	}
	return "", fmt.Errorf("%w: %q (expected one of %v)", ode.ErrUnknownType, name, Types())
}

// Types lists the supported attractor names.
func Types() []string {
	return []string{string(TypeLorenz), string(TypeChen), string(TypeFourWing), string(TypeThomas)}
}

// ParamCount returns the exact number of parameters the type requires.
// Four-wing variants in the literature take 3 or 4 values; this module fixes
// the canonical 3-parameter form. Thomas takes a single damping parameter.
func (t Type) ParamCount() int {
	if t == TypeThomas {
		return 1
	}
	return 3
}

// DefaultParams returns the classic chaotic parameter set for the type,
// or nil for an unrecognized type.
func (t Type) DefaultParams() []float64 {
	switch t {
	case TypeLorenz:
		return []float64{10, 28, 8.0 / 3.0}
	case TypeChen:
		return []float64{35, 3, 28}
	case TypeFourWing:
		return []float64{0.2, 0.01, -0.4}
	case TypeThomas:
		return []float64{0.208186}
	}
	return nil
}

// New builds the derivative system for a type from a positional parameter
// list. The list length must match the type exactly; it is never padded or
// truncated.
func New(t Type, params []float64) (ode.System, error) {
	if len(params) != t.ParamCount() {
		return nil, fmt.Errorf("%w: %s requires %d, got %d",
			ode.ErrParamCount, t, t.ParamCount(), len(params))
	}

	switch t {
	case TypeLorenz:
		return NewLorenz(params[0], params[1], params[2]), nil
	case TypeChen:
		return NewChen(params[0], params[1], params[2]), nil
	case TypeFourWing:
		return NewFourWing(params[0], params[1], params[2]), nil
	case TypeThomas:
		return NewThomas(params[0]), nil
	}
	return nil, fmt.Errorf("%w: %q", ode.ErrUnknownType, t)
}
