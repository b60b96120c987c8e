package config

var Presets = map[string]map[string]*Config{
	"lorenz": {
		"classic": {
			Attractor: "lorenz", Method: "euler", Dt: 0.01, Steps: 10000,
			Params: []float64{10, 28, 8.0 / 3.0},
		},
		"fine": {
			Attractor: "lorenz", Method: "runge-kutta", Dt: 0.005, Steps: 20000,
			Params: []float64{10, 28, 8.0 / 3.0},
		},
		"calm": {
			// rho below the chaotic threshold; spirals into a fixed point
			Attractor: "lorenz", Method: "runge-kutta", Dt: 0.01, Steps: 10000,
			Params: []float64{10, 14, 8.0 / 3.0},
		},
	},
	"chen": {
		"classic": {
			Attractor: "chen", Method: "runge-kutta", Dt: 0.002, Steps: 20000,
			Params: []float64{35, 3, 28},
		},
	},
	"four_wing": {
		"classic": {
			Attractor: "four_wing", Method: "runge-kutta", Dt: 0.05, Steps: 20000,
			Params: []float64{0.2, 0.01, -0.4},
			Init:   []float64{1.3, -0.18, 0.01},
		},
	},
	"thomas": {
		"classic": {
			Attractor: "thomas", Method: "runge-kutta", Dt: 0.05, Steps: 30000,
			Params: []float64{0.208186},
		},
		"labyrinth": {
			// b -> 0 approaches the chaotic "labyrinth" walk
			Attractor: "thomas", Method: "runge-kutta", Dt: 0.05, Steps: 30000,
			Params: []float64{0.1},
		},
	},
}

func GetPreset(attractor, preset string) *Config {
	attractorPresets, ok := Presets[attractor]
	if !ok {
		return nil
	}
	cfg, ok := attractorPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(attractor string) []string {
	attractorPresets, ok := Presets[attractor]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(attractorPresets))
	for name := range attractorPresets {
		names = append(names, name)
	}
	return names
}
