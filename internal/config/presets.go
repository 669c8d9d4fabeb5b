package config

import (
	"sort"

	"github.com/san-kum/vibelab/internal/beam"
)

var Presets = map[string]map[string]*Config{
	"oscillator": {
		"light": {
			Solver: "rk45",
			Oscillator: OscillatorConfig{
				Mass: 10, Damping: 1, Stiffness: 100, X0: 1, V0: -1, MaxTime: 100,
			},
		},
		"critical": {
			Solver: "rk45",
			Oscillator: OscillatorConfig{
				Mass: 1, Damping: 2, Stiffness: 1, X0: 1, V0: 0, MaxTime: 20,
			},
		},
		"sluggish": {
			Solver: "rk45",
			Oscillator: OscillatorConfig{
				Mass: 100, Damping: 1500, Stiffness: 2000, X0: 1, V0: 0, MaxTime: 50,
			},
		},
		"ringing": {
			Solver: "rk45",
			Oscillator: OscillatorConfig{
				Mass: 100, Damping: 2, Stiffness: 2000, X0: 0, V0: 1, MaxTime: 200,
			},
		},
	},
	"beam": {
		"aluminum": {
			Beam: BeamConfig{
				Modulus: 7.31e10, Inertia: 1.0 / 12.0 * 0.03 * 0.015 * 0.015 * 0.015,
				Density: 2747, Area: 0.015 * 0.03, Length: 0.4,
				Boundary: beam.ClampedFree.String(),
			},
			FRF: FRFConfig{Xin: 0.22, Xout: 0.22, Fmin: 0, Fmax: 1000, Zeta: 0.02},
		},
		"steel": {
			Beam: BeamConfig{
				Modulus: 2.0e11, Inertia: 1.0 / 12.0 * 0.03 * 0.015 * 0.015 * 0.015,
				Density: 7850, Area: 0.015 * 0.03, Length: 0.4,
				Boundary: beam.ClampedFree.String(),
			},
			FRF: FRFConfig{Xin: 0.22, Xout: 0.22, Fmin: 0, Fmax: 1500, Zeta: 0.01},
		},
		"bridge-deck": {
			Beam: BeamConfig{
				Modulus: 3.0e10, Inertia: 1.0 / 12.0 * 2.0 * 0.3 * 0.3 * 0.3,
				Density: 2400, Area: 2.0 * 0.3, Length: 12,
				Boundary: beam.PinnedPinned.String(),
			},
			FRF: FRFConfig{Xin: 6, Xout: 6, Fmin: 0, Fmax: 100, Zeta: 0.05},
		},
	},
}

// GetPreset returns a copy of the named preset, so callers can layer
// flag overrides on top without touching the table.
func GetPreset(group, preset string) *Config {
	groupPresets, ok := Presets[group]
	if !ok {
		return nil
	}
	cfg, ok := groupPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(group string) []string {
	groupPresets, ok := Presets[group]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(groupPresets))
	for name := range groupPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
