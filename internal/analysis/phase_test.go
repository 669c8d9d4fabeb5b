package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/vibelab/internal/vibe"
)

// dampedSeries samples x = e^(-zeta*w*t)*cos(wd*t) and its derivative.
func dampedSeries(zeta, w, dt float64, n int) *vibe.TimeSeries {
	wd := w * math.Sqrt(1-zeta*zeta)
	ts := &vibe.TimeSeries{
		Times: make([]float64, n),
		X:     make([]float64, n),
		V:     make([]float64, n),
	}
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		env := math.Exp(-zeta * w * t)
		ts.Times[i] = t
		ts.X[i] = env * math.Cos(wd*t)
		ts.V[i] = -env * (zeta*w*math.Cos(wd*t) + wd*math.Sin(wd*t))
	}
	return ts
}

func TestEstimateZeta_LogDecrement(t *testing.T) {
	const zeta = 0.05
	ts := dampedSeries(zeta, 2*math.Pi, 0.001, 10000)

	got, ok := EstimateZeta(ts)
	if !ok {
		t.Fatal("expected a damping estimate")
	}
	if math.Abs(got-zeta) > 2e-3 {
		t.Errorf("expected zeta near %g, got %g", zeta, got)
	}
}

func TestEstimateZeta_NeedsPeaks(t *testing.T) {
	// Overdamped-like monotone decay never crosses v=0 downward twice.
	ts := &vibe.TimeSeries{
		Times: []float64{0, 1, 2},
		X:     []float64{1, 0.5, 0.25},
		V:     []float64{-1, -0.5, -0.25},
	}
	if _, ok := EstimateZeta(ts); ok {
		t.Error("expected no estimate without oscillation peaks")
	}
}

func TestPeaks_Decay(t *testing.T) {
	ts := dampedSeries(0.1, 2*math.Pi, 0.001, 5000)
	peaks := Peaks(ts)
	if len(peaks) < 3 {
		t.Fatalf("expected several peaks, got %d", len(peaks))
	}
	for i := 1; i < len(peaks); i++ {
		if peaks[i] >= peaks[i-1] {
			t.Errorf("peak %d should decay: %g >= %g", i, peaks[i], peaks[i-1])
		}
	}
}

func TestExtractPhasePortrait(t *testing.T) {
	ts := dampedSeries(0.05, 2*math.Pi, 0.01, 500)
	p := ExtractPhasePortrait(ts)
	if p == nil || len(p.Points) != 500 {
		t.Fatal("expected one point per sample")
	}
	if p.Points[0].X != 1 {
		t.Errorf("expected first point at x0=1, got %g", p.Points[0].X)
	}

	art := p.ToASCII(40, 12)
	if !strings.ContainsRune(art, '•') {
		t.Error("expected plotted points in the ASCII portrait")
	}
	if strings.Count(art, "\n") != 12 {
		t.Errorf("expected one line per row, got %d", strings.Count(art, "\n"))
	}

	if ExtractPhasePortrait(nil) != nil {
		t.Error("nil series should yield nil portrait")
	}
}
