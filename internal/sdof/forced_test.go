package sdof

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/vibelab/internal/vibe"
)

func TestForcedAnalytical_KnownResponse(t *testing.T) {
	ic := vibe.InitialConditions{X0: 1, V0: 0}
	tt, x, err := ForcedAnalytical(10, 100, ic, 0.5, 10, 100)
	if err != nil {
		t.Fatalf("ForcedAnalytical: %v", err)
	}

	if tt[0] != 0 {
		t.Errorf("expected t[0]=0, got %g", tt[0])
	}
	if math.Abs(x[0]-1) > 1e-12 {
		t.Errorf("x(0): expected 1, got %.10f", x[0])
	}

	// Spot-check against the closed form x(t) = (x0-b)cos(wt) + b*cos(wdr*t),
	// b = f0/(w^2 - wdr^2), w = sqrt(k/m).
	w := math.Sqrt(100.0 / 10.0)
	b := 1.0 / (w*w - 0.25)
	for _, i := range []int{1, 1000, len(tt) - 1} {
		want := (1-b)*math.Cos(w*tt[i]) + b*math.Cos(0.5*tt[i])
		if math.Abs(x[i]-want) > 1e-9 {
			t.Errorf("t=%.6f: expected %.9f, got %.9f", tt[i], want, x[i])
		}
	}
}

func TestForcedAnalytical_ResonanceRejected(t *testing.T) {
	// wdr == sqrt(k/m); the amplitude denominator vanishes.
	_, _, err := ForcedAnalytical(10, 100, vibe.InitialConditions{}, math.Sqrt(10), 10, 10)
	if !errors.Is(err, vibe.ErrResonance) {
		t.Fatalf("expected ErrResonance, got %v", err)
	}
}

func TestForced_MatchesAnalyticalWhenUndamped(t *testing.T) {
	osc := mustOscillator(t, 10, 0, 100)
	ic := vibe.InitialConditions{X0: 1, V0: 0}

	ts, err := Forced(osc, ic, 10, 0.5, 10)
	if err != nil {
		t.Fatalf("Forced: %v", err)
	}

	w := osc.Omega()
	b := (10.0 / 10.0) / (w*w - 0.25)
	for i, ti := range ts.Times {
		want := (1-b)*math.Cos(w*ti) + b*math.Cos(0.5*ti)
		if math.Abs(ts.X[i]-want) > 1e-5 {
			t.Fatalf("t=%.4f: integrated %.8f vs analytical %.8f", ti, ts.X[i], want)
		}
	}
}

func TestForced_DampedDecaysToSteadyState(t *testing.T) {
	osc := mustOscillator(t, 1, 1, 100)
	ts, err := Forced(osc, vibe.InitialConditions{X0: 1, V0: 0}, 5, 2, 60)
	if err != nil {
		t.Fatalf("Forced: %v", err)
	}

	// After many time constants only the particular solution remains;
	// its amplitude is F0/sqrt((k - m*wdr^2)^2 + (c*wdr)^2).
	want := 5.0 / math.Sqrt((100-4)*(100-4)+2*2)
	peak := 0.0
	for i, ti := range ts.Times {
		if ti < 40 {
			continue
		}
		if a := math.Abs(ts.X[i]); a > peak {
			peak = a
		}
	}
	if math.Abs(peak-want) > 0.05*want {
		t.Errorf("steady-state amplitude: expected about %.6f, got %.6f", want, peak)
	}
}

func TestForced_InvalidArguments(t *testing.T) {
	osc := mustOscillator(t, 1, 0.1, 1)
	if _, err := Forced(osc, vibe.InitialConditions{}, 1, 1, -1); err == nil {
		t.Error("expected error for negative max time")
	}
	if _, err := Forced(osc, vibe.InitialConditions{}, 1, -2, 1); err == nil {
		t.Error("expected error for negative drive frequency")
	}
	if _, err := Forced(osc, vibe.InitialConditions{}, 1, 1, 0.001); !errors.Is(err, vibe.ErrInvalidParameter) {
		t.Error("expected ErrInvalidParameter for a duration below the sampling floor")
	}
	if _, _, err := ForcedAnalytical(10, 100, vibe.InitialConditions{}, 0.5, 10, 0.0001); !errors.Is(err, vibe.ErrInvalidParameter) {
		t.Error("expected ErrInvalidParameter for an end time below the sampling floor")
	}
}
