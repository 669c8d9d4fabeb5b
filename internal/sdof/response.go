package sdof

import (
	"fmt"
	"math"

	"github.com/san-kum/vibelab/internal/vibe"
)

// ImpulseResponse returns the response of an underdamped oscillator to
// an impulse of magnitude f0 (N·s) applied at t=0.
func ImpulseResponse(osc vibe.Oscillator, f0, maxTime float64) ([]float64, []float64, error) {
	if maxTime <= 0 {
		return nil, nil, fmt.Errorf("max time must be positive, got %g: %w", maxTime, vibe.ErrInvalidParameter)
	}
	if osc.Regime() != vibe.Underdamped {
		return nil, nil, fmt.Errorf("impulse response requires zeta < 1, got %g: %w", osc.Zeta(), vibe.ErrInvalidParameter)
	}

	wn := osc.Omega()
	zeta := osc.Zeta()
	wd := osc.OmegaD()
	fo := f0 / osc.M

	t, err := sampleGrid(maxTime)
	if err != nil {
		return nil, nil, err
	}
	x := make([]float64, len(t))
	for i, ti := range t {
		x[i] = fo / (wd * math.Exp(zeta*wn*ti)) * math.Sin(wd*ti)
	}

	return t, x, nil
}

// StepResponse returns the response to a step force of magnitude f0
// applied at t=0, branching on the damping regime. Undamped systems
// (zeta == 0) are rejected.
func StepResponse(osc vibe.Oscillator, f0, maxTime float64) ([]float64, []float64, error) {
	if maxTime <= 0 {
		return nil, nil, fmt.Errorf("max time must be positive, got %g: %w", maxTime, vibe.ErrInvalidParameter)
	}

	wn := osc.Omega()
	zeta := osc.Zeta()
	fo := f0 / osc.M
	if zeta <= 0 {
		return nil, nil, fmt.Errorf("step response requires zeta > 0: %w", vibe.ErrInvalidParameter)
	}

	t, err := sampleGrid(maxTime)
	if err != nil {
		return nil, nil, err
	}
	x := make([]float64, len(t))

	switch osc.Regime() {
	case vibe.Underdamped:
		wd := osc.OmegaD()
		phi := math.Atan(zeta / math.Sqrt(1-zeta*zeta))
		for i, ti := range t {
			x[i] = fo / (wn * wn) * (1 - wn/wd*math.Exp(-zeta*wn*ti)*math.Cos(wd*ti-phi))
		}

	case vibe.CriticallyDamped:
		lam := -wn
		a1 := -fo / (wn * wn)
		a2 := -a1 * lam
		for i, ti := range t {
			x[i] = fo/(wn*wn) + a1*math.Exp(lam*ti) + a2*ti*math.Exp(lam*ti)
		}

	case vibe.Overdamped:
		s := math.Sqrt(zeta*zeta - 1)
		lam1 := -zeta*wn - wn*s
		lam2 := -zeta*wn + wn*s
		a2 := fo / (wn * wn * (lam2/lam1 - 1))
		a1 := -lam2 / lam1 * a2
		for i, ti := range t {
			x[i] = fo/(wn*wn) + a1*math.Exp(lam1*ti) + a2*math.Exp(lam2*ti)
		}
	}

	return t, x, nil
}
