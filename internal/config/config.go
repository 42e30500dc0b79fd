// Package config holds the run parameters for the sweep, the grid scan,
// and the output locations. Values load from YAML over defaults; CLI
// flags override on top.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultQ0      = 1.0
	DefaultX0      = 1.0
	DefaultGridMin = -2.0
	DefaultGridMax = 2.0
	DefaultStep    = 0.1
	DefaultDataDir = "data"
	DefaultFigDir  = "figures"
	DefaultResDir  = "results"
)

type Config struct {
	Sweep SweepConfig `yaml:"sweep"`
	Scan  ScanConfig  `yaml:"scan"`
	Paths PathsConfig `yaml:"paths"`
}

// SweepConfig parameterizes the F2 sampler. Q0 is the temporal component
// of the fixed reference vector.
type SweepConfig struct {
	Q0      float64   `yaml:"q0"`
	Omegas  []float64 `yaml:"omegas"`
	Kxs     []float64 `yaml:"kxs"`
	Ky      float64   `yaml:"ky"`
	Kz      float64   `yaml:"kz"`
	SkipTol float64   `yaml:"skip_tol"`
}

// ScanConfig parameterizes the healthy-band grid. X0 is the background
// scale shared with the report stage.
type ScanConfig struct {
	X0      float64     `yaml:"x0"`
	Pprime  RangeConfig `yaml:"pprime"`
	P2prime RangeConfig `yaml:"p2prime"`
}

type RangeConfig struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

type PathsConfig struct {
	Data    string `yaml:"data"`
	Figures string `yaml:"figures"`
	Results string `yaml:"results"`
}

func DefaultConfig() *Config {
	return &Config{
		Sweep: SweepConfig{
			Q0:      DefaultQ0,
			Omegas:  []float64{0.5, 1.0, 1.5, 2.0},
			Kxs:     []float64{0.5, 1.0, 1.5},
			SkipTol: 1e-8,
		},
		Scan: ScanConfig{
			X0:      DefaultX0,
			Pprime:  RangeConfig{Min: DefaultGridMin, Max: DefaultGridMax, Step: DefaultStep},
			P2prime: RangeConfig{Min: DefaultGridMin, Max: DefaultGridMax, Step: DefaultStep},
		},
		Paths: PathsConfig{
			Data:    DefaultDataDir,
			Figures: DefaultFigDir,
			Results: DefaultResDir,
		},
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
