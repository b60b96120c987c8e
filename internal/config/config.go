package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt    = 0.01
	DefaultSteps = 10000
)

// Config mirrors the run command's inputs so runs can be described in a
// yaml file. Params and Init are positional; arity is validated by the
// session, not here.
type Config struct {
	Attractor string    `yaml:"attractor"`
	Method    string    `yaml:"method"`
	Dt        float64   `yaml:"dt"`
	Steps     int       `yaml:"steps"`
	Init      []float64 `yaml:"init,omitempty"`
	Params    []float64 `yaml:"params,flow"`
}

func DefaultConfig() *Config {
	return &Config{
		Attractor: "lorenz",
		Method:    "euler",
		Dt:        DefaultDt,
		Steps:     DefaultSteps,
		Params:    []float64{10, 28, 8.0 / 3.0},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
