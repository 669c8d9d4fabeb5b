package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/vibelab/internal/beam"
	"github.com/san-kum/vibelab/internal/sdof"
	"github.com/san-kum/vibelab/internal/vibe"
)

func mustStat(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestSaveFreeResponse(t *testing.T) {
	osc, err := vibe.NewOscillator(10, 1, 100)
	if err != nil {
		t.Fatalf("NewOscillator: %v", err)
	}
	res, err := sdof.Free(osc, vibe.InitialConditions{X0: 1, V0: -1}, 5)
	if err != nil {
		t.Fatalf("Free: %v", err)
	}

	path := filepath.Join(t.TempDir(), "free.png")
	if err := SaveFreeResponse(path, res); err != nil {
		t.Fatalf("SaveFreeResponse: %v", err)
	}
	mustStat(t, path)
}

func TestSavePhasePortrait(t *testing.T) {
	ts := &vibe.TimeSeries{
		Times: []float64{0, 1, 2},
		X:     []float64{1, 0, -1},
		V:     []float64{0, -1, 0},
	}
	path := filepath.Join(t.TempDir(), "phase.svg")
	if err := SavePhasePortrait(path, ts); err != nil {
		t.Fatalf("SavePhasePortrait: %v", err)
	}
	mustStat(t, path)
}

func TestSaveModeShapesAndFRF(t *testing.T) {
	p := beam.Aluminum()

	modes, err := beam.Modes(p, beam.ClampedFree, beam.ModeIndices(3), 200)
	if err != nil {
		t.Fatalf("Modes: %v", err)
	}
	dir := t.TempDir()
	shapes := filepath.Join(dir, "shapes.png")
	if err := SaveModeShapes(shapes, modes); err != nil {
		t.Fatalf("SaveModeShapes: %v", err)
	}
	mustStat(t, shapes)

	frf, err := beam.AssembleFRF(p, beam.ClampedFree, 0.22, 0.22, 1, 200, 0.02)
	if err != nil {
		t.Fatalf("AssembleFRF: %v", err)
	}
	mag := filepath.Join(dir, "frf.png")
	if err := SaveFRFMagnitude(mag, frf); err != nil {
		t.Fatalf("SaveFRFMagnitude: %v", err)
	}
	mustStat(t, mag)

	phase := filepath.Join(dir, "phase.png")
	if err := SaveFRFPhase(phase, frf); err != nil {
		t.Fatalf("SaveFRFPhase: %v", err)
	}
	mustStat(t, phase)
}

func TestSaveXY_InvalidData(t *testing.T) {
	if err := SaveXY("unused.png", "", "", "", []float64{1}, []float64{1, 2}); err == nil {
		t.Error("expected error for mismatched data")
	}
	if err := SaveXY("unused.png", "", "", "", nil, nil); err == nil {
		t.Error("expected error for empty data")
	}
}
