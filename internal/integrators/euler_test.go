package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/vibelab/internal/vibe"
)

func testOscillator(t *testing.T, m, c, k float64) vibe.Oscillator {
	t.Helper()
	osc, err := vibe.NewOscillator(m, c, k)
	if err != nil {
		t.Fatalf("NewOscillator: %v", err)
	}
	return osc
}

func TestEuler_DampedOscillator(t *testing.T) {
	osc := testOscillator(t, 1, 0.1, 1)
	times, states, err := Fixed(NewEuler(), osc, vibe.State{1, 0}, 8, 0.05)
	if err != nil {
		t.Fatalf("Fixed: %v", err)
	}

	if len(states) != 9 {
		t.Fatalf("expected 9 samples, got %d", len(states))
	}
	if math.Abs(times[8]-0.4) > 1e-12 {
		t.Errorf("expected final time 0.4, got %f", times[8])
	}

	// Engineering Vibration worked example, 8 steps of dt=0.05.
	wantX := []float64{1, 1, 0.9975, 0.9925125, 0.98505619, 0.97515588, 0.96284242, 0.94815265, 0.93112922}
	wantV := []float64{0, -0.05, -0.09975, -0.14912625, -0.19800624, -0.24626902, -0.29379547, -0.34046861, -0.3861739}
	for i, s := range states {
		if math.Abs(s[0]-wantX[i]) > 1e-7 {
			t.Errorf("x[%d]: expected %.8f, got %.8f", i, wantX[i], s[0])
		}
		if math.Abs(s[1]-wantV[i]) > 1e-7 {
			t.Errorf("v[%d]: expected %.8f, got %.8f", i, wantV[i], s[1])
		}
	}
}

func TestEuler_FirstOrderConvergence(t *testing.T) {
	osc := testOscillator(t, 1, 0, 1)
	exact := math.Cos(1.0)

	errAt := func(n int) float64 {
		dt := 1.0 / float64(n)
		_, states, err := Fixed(NewEuler(), osc, vibe.State{1, 0}, n, dt)
		if err != nil {
			t.Fatalf("Fixed: %v", err)
		}
		return math.Abs(states[n][0] - exact)
	}

	e1 := errAt(200)
	e2 := errAt(400)

	ratio := e1 / e2
	if ratio < 1.7 || ratio > 2.3 {
		t.Errorf("halving dt should halve the error (first order), got ratio %.3f", ratio)
	}
}

func TestFixed_InvalidArguments(t *testing.T) {
	osc := testOscillator(t, 1, 0, 1)

	if _, _, err := Fixed(NewEuler(), osc, vibe.State{1, 0}, 0, 0.05); err == nil {
		t.Error("expected error for zero step count")
	}
	if _, _, err := Fixed(NewEuler(), osc, vibe.State{1, 0}, 8, -0.05); err == nil {
		t.Error("expected error for negative step size")
	}
}
