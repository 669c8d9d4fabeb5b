package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/vibelab/internal/beam"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Solver != "rk45" {
		t.Errorf("expected solver rk45, got %s", cfg.Solver)
	}
	if cfg.Oscillator.Mass <= 0 {
		t.Error("mass should be positive")
	}
	if cfg.Oscillator.MaxTime <= 0 {
		t.Error("max time should be positive")
	}

	osc, err := cfg.GetOscillator()
	if err != nil {
		t.Fatalf("default oscillator should validate: %v", err)
	}
	if osc.Omega() <= 0 {
		t.Error("natural frequency should be positive")
	}

	p, bc, err := cfg.GetBeam()
	if err != nil {
		t.Fatalf("default beam should validate: %v", err)
	}
	if p.L != 0.4 {
		t.Errorf("expected 0.4 m beam, got %g", p.L)
	}
	if bc != beam.ClampedFree {
		t.Errorf("expected clamped-free default, got %v", bc)
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Oscillator.Mass = 42
	cfg.Beam.Boundary = beam.PinnedPinned.String()
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Oscillator.Mass != 42 {
		t.Errorf("expected mass 42, got %g", loaded.Oscillator.Mass)
	}
	if loaded.Beam.Boundary != "pinned-pinned" {
		t.Errorf("expected pinned-pinned, got %s", loaded.Beam.Boundary)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("oscillator:\n  mass: 5\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Oscillator.Mass != 5 {
		t.Errorf("expected mass 5, got %g", cfg.Oscillator.Mass)
	}
	if cfg.Oscillator.Stiffness != DefaultStiffness {
		t.Errorf("unset stiffness should keep default %g, got %g", DefaultStiffness, cfg.Oscillator.Stiffness)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("oscillator", "light")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Oscillator.Mass != 10 {
		t.Errorf("expected mass 10, got %f", cfg.Oscillator.Mass)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("oscillator", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "light"); cfg != nil {
		t.Error("expected nil for nonexistent group")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("beam"); len(presets) == 0 {
		t.Error("expected presets for beam")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent group")
	}
}

func TestBeamPresets_Validate(t *testing.T) {
	for name, cfg := range Presets["beam"] {
		if _, _, err := cfg.GetBeam(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
