package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/vibelab/internal/beam"
	"github.com/san-kum/vibelab/internal/vibe"
)

const (
	DefaultMass      = 10.0
	DefaultDamping   = 1.0
	DefaultStiffness = 100.0
	DefaultX0        = 1.0
	DefaultV0        = -1.0
	DefaultMaxTime   = 100.0
	DefaultZeta      = 0.02
	DefaultFmax      = 1000.0
	DefaultProbe     = 0.22
)

type Config struct {
	Solver     string           `yaml:"solver"`
	Oscillator OscillatorConfig `yaml:"oscillator"`
	Forcing    ForcingConfig    `yaml:"forcing"`
	Beam       BeamConfig       `yaml:"beam"`
	FRF        FRFConfig        `yaml:"frf"`
}

type OscillatorConfig struct {
	Mass      float64 `yaml:"mass"`
	Damping   float64 `yaml:"damping"`
	Stiffness float64 `yaml:"stiffness"`
	X0        float64 `yaml:"x0"`
	V0        float64 `yaml:"v0"`
	MaxTime   float64 `yaml:"max_time"`
}

type ForcingConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	DriveFreq float64 `yaml:"drive_freq"`
}

type BeamConfig struct {
	Modulus  float64 `yaml:"modulus"`
	Inertia  float64 `yaml:"inertia"`
	Density  float64 `yaml:"density"`
	Area     float64 `yaml:"area"`
	Length   float64 `yaml:"length"`
	Boundary string  `yaml:"boundary"`
}

type FRFConfig struct {
	Xin  float64 `yaml:"xin"`
	Xout float64 `yaml:"xout"`
	Fmin float64 `yaml:"fmin"`
	Fmax float64 `yaml:"fmax"`
	Zeta float64 `yaml:"zeta"`
}

func DefaultConfig() *Config {
	al := beam.Aluminum()
	return &Config{
		Solver: "rk45",
		Oscillator: OscillatorConfig{
			Mass:      DefaultMass,
			Damping:   DefaultDamping,
			Stiffness: DefaultStiffness,
			X0:        DefaultX0,
			V0:        DefaultV0,
			MaxTime:   DefaultMaxTime,
		},
		Forcing: ForcingConfig{
			Amplitude: 1.0,
			DriveFreq: 2.0,
		},
		Beam: BeamConfig{
			Modulus:  al.E,
			Inertia:  al.I,
			Density:  al.Rho,
			Area:     al.A,
			Length:   al.L,
			Boundary: beam.ClampedFree.String(),
		},
		FRF: FRFConfig{
			Xin:  DefaultProbe,
			Xout: DefaultProbe,
			Fmin: 0,
			Fmax: DefaultFmax,
			Zeta: DefaultZeta,
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

// GetOscillator validates the oscillator section and builds the system.
func (c *Config) GetOscillator() (vibe.Oscillator, error) {
	return vibe.NewOscillator(c.Oscillator.Mass, c.Oscillator.Damping, c.Oscillator.Stiffness)
}

// GetInitialConditions returns the configured initial state.
func (c *Config) GetInitialConditions() vibe.InitialConditions {
	return vibe.InitialConditions{X0: c.Oscillator.X0, V0: c.Oscillator.V0}
}

// GetBeam validates the beam section and builds the parameters.
func (c *Config) GetBeam() (beam.Params, beam.Boundary, error) {
	p, err := beam.NewParams(c.Beam.Modulus, c.Beam.Inertia, c.Beam.Density, c.Beam.Area, c.Beam.Length)
	if err != nil {
		return beam.Params{}, 0, err
	}
	bc, err := beam.ParseBoundary(c.Beam.Boundary)
	if err != nil {
		return beam.Params{}, 0, err
	}
	return p, bc, nil
}
