package attractor

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/attractor/internal/ode"
)

func TestParse(t *testing.T) {
	for _, name := range Types() {
		typ, err := Parse(name)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", name, err)
		}
		if string(typ) != name {
			t.Errorf("Parse(%q) = %q", name, typ)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, name := range []string{"rossler", "", "Lorenz", "four wing"} {
		if _, err := Parse(name); !errors.Is(err, ode.ErrUnknownType) {
			t.Errorf("Parse(%q): expected ErrUnknownType, got %v", name, err)
		}
	}
}

func TestDefaultParams(t *testing.T) {
	for _, name := range Types() {
		typ := Type(name)
		params := typ.DefaultParams()
		if len(params) != typ.ParamCount() {
			t.Errorf("%s: default params have %d values, ParamCount says %d",
				typ, len(params), typ.ParamCount())
		}
		if _, err := New(typ, params); err != nil {
			t.Errorf("%s: default params rejected: %v", typ, err)
		}
	}
}

func TestDefaultParams_Unknown(t *testing.T) {
	if params := Type("rossler").DefaultParams(); params != nil {
		t.Errorf("unlisted type got default params %v, want nil", params)
	}
}

func TestNew_ParamCount(t *testing.T) {
	tests := []struct {
		typ    Type
		params []float64
		ok     bool
	}{
		{TypeLorenz, []float64{10, 28, 8.0 / 3.0}, true},
		{TypeLorenz, []float64{10, 28}, false},
		{TypeLorenz, []float64{10, 28, 2.6, 1.0}, false},
		{TypeChen, []float64{35, 3, 28}, true},
		{TypeChen, nil, false},
		{TypeFourWing, []float64{0.2, 0.01, -0.4}, true},
		{TypeFourWing, []float64{0.2}, false},
		{TypeThomas, []float64{0.2}, true},
		{TypeThomas, []float64{0.2, 0.3}, false},
		{TypeThomas, []float64{}, false},
	}

	for _, tt := range tests {
		sys, err := New(tt.typ, tt.params)
		if tt.ok {
			if err != nil {
				t.Errorf("New(%s, %v) failed: %v", tt.typ, tt.params, err)
			}
			if sys == nil {
				t.Errorf("New(%s, %v) returned nil system", tt.typ, tt.params)
			}
		} else {
			if !errors.Is(err, ode.ErrParamCount) {
				t.Errorf("New(%s, %v): expected ErrParamCount, got %v", tt.typ, tt.params, err)
			}
		}
	}
}

func stateNear(a, b ode.State, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestDerivatives(t *testing.T) {
	s := ode.State{1, 2, 3}

	tests := []struct {
		name   string
		typ    Type
		params []float64
		want   ode.State
	}{
		{
			// dx = 10(2-1), dy = 1*(28-3)-2, dz = 1*2 - (8/3)*3
			name: "lorenz", typ: TypeLorenz,
			params: []float64{10, 28, 8.0 / 3.0},
			want:   ode.State{10, 23, -6},
		},
		{
			// dx = 35(2-1), dy = (28-35)*1 - 1*3 + 28*2, dz = 1*2 - 3*3
			name: "chen", typ: TypeChen,
			params: []float64{35, 3, 28},
			want:   ode.State{35, 46, -7},
		},
		{
			// dx = 0.2*1 + 2*3, dy = 0.01*1 + (-0.4)*2 - 1*3, dz = -3 - 1*2
			name: "four_wing", typ: TypeFourWing,
			params: []float64{0.2, 0.01, -0.4},
			want:   ode.State{6.2, -3.79, -5},
		},
		{
			// dx = sin(2) - 0.2, dy = sin(3) - 0.4, dz = sin(1) - 0.6
			name: "thomas", typ: TypeThomas,
			params: []float64{0.2},
			want: ode.State{
				math.Sin(2) - 0.2,
				math.Sin(3) - 0.4,
				math.Sin(1) - 0.6,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, err := New(tt.typ, tt.params)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			got := sys.Derive(s)
			if !stateNear(got, tt.want, 1e-12) {
				t.Errorf("Derive(%v) = %v, want %v", s, got, tt.want)
			}
		})
	}
}

func TestDerive_Pure(t *testing.T) {
	sys, err := New(TypeLorenz, TypeLorenz.DefaultParams())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s := ode.State{1, 1, 1}
	first := sys.Derive(s)
	for i := 0; i < 5; i++ {
		if got := sys.Derive(s); got != first {
			t.Fatalf("Derive not deterministic: %v != %v", got, first)
		}
	}
	if s != (ode.State{1, 1, 1}) {
		t.Errorf("Derive mutated its input: %v", s)
	}
}

func TestConfigurable(t *testing.T) {
	for _, name := range Types() {
		typ, _ := Parse(name)
		sys, err := New(typ, typ.DefaultParams())
		if err != nil {
			t.Fatalf("New(%s) failed: %v", typ, err)
		}

		cfg, ok := sys.(ode.Configurable)
		if !ok {
			t.Fatalf("%s does not implement Configurable", typ)
		}

		params := cfg.GetParams()
		if len(params) != typ.ParamCount() {
			t.Errorf("%s: GetParams returned %d entries, want %d", typ, len(params), typ.ParamCount())
		}

		for k := range params {
			cfg.SetParam(k, 1.25)
		}
		for k, v := range cfg.GetParams() {
			if v != 1.25 {
				t.Errorf("%s: SetParam(%q) not applied, got %f", typ, k, v)
			}
		}
	}
}
