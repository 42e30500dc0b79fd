package config

import "sort"

// Presets are named parameter sets for the scan grid. The sweep and paths
// keep their defaults unless a config file or flag says otherwise.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"fine": {
		Sweep: DefaultConfig().Sweep,
		Scan: ScanConfig{
			X0:      DefaultX0,
			Pprime:  RangeConfig{Min: -2.0, Max: 2.0, Step: 0.05},
			P2prime: RangeConfig{Min: -2.0, Max: 2.0, Step: 0.05},
		},
		Paths: DefaultConfig().Paths,
	},
	"wide": {
		Sweep: DefaultConfig().Sweep,
		Scan: ScanConfig{
			X0:      DefaultX0,
			Pprime:  RangeConfig{Min: -5.0, Max: 5.0, Step: 0.25},
			P2prime: RangeConfig{Min: -5.0, Max: 5.0, Step: 0.25},
		},
		Paths: DefaultConfig().Paths,
	},
	"coarse": {
		Sweep: DefaultConfig().Sweep,
		Scan: ScanConfig{
			X0:      DefaultX0,
			Pprime:  RangeConfig{Min: -2.0, Max: 2.0, Step: 0.5},
			P2prime: RangeConfig{Min: -2.0, Max: 2.0, Step: 0.5},
		},
		Paths: DefaultConfig().Paths,
	},
}

// GetPreset returns the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
