package sdof

import (
	"fmt"
	"math"

	"github.com/san-kum/vibelab/internal/integrators"
	"github.com/san-kum/vibelab/internal/vibe"
)

// forcedSystem closes the oscillator and the harmonic drive
// F0*cos(wdr*t) over the state-space right-hand side.
type forcedSystem struct {
	osc vibe.Oscillator
	f0  float64 // force amplitude
	wdr float64 // drive frequency, rad/s
}

func (s forcedSystem) Derive(x vibe.State, t float64) vibe.State {
	o := s.osc
	return vibe.State{
		x[1],
		s.f0*math.Cos(s.wdr*t)/o.M - o.C/o.M*x[1] - o.K/o.M*x[0],
	}
}

func (s forcedSystem) Dim() int { return 2 }

// Forced integrates m*x'' + c*x' + k*x = F0*cos(wdr*t) from the given
// initial conditions over [0, maxTime].
func Forced(osc vibe.Oscillator, ic vibe.InitialConditions, f0, wdr, maxTime float64) (*vibe.TimeSeries, error) {
	if maxTime <= 0 {
		return nil, fmt.Errorf("max time must be positive, got %g: %w", maxTime, vibe.ErrInvalidParameter)
	}
	if wdr < 0 {
		return nil, fmt.Errorf("drive frequency must be non-negative, got %g: %w", wdr, vibe.ErrInvalidParameter)
	}

	sys := forcedSystem{osc: osc, f0: f0, wdr: wdr}
	times, err := sampleGrid(maxTime)
	if err != nil {
		return nil, err
	}
	states, err := integrators.NewRK45().Sample(sys, ic.State(), times, 1e-9)
	if err != nil {
		return nil, err
	}
	return seriesFromStates(times, states), nil
}

// ForcedAnalytical returns the closed-form response of the undamped
// oscillator to F0*cos(wdr*t). Driving at the natural frequency is a
// resonance and is reported as an error rather than dividing by zero.
func ForcedAnalytical(m, k float64, ic vibe.InitialConditions, wdr, f0Force, tf float64) ([]float64, []float64, error) {
	osc, err := vibe.NewOscillator(m, 0, k)
	if err != nil {
		return nil, nil, err
	}
	if tf <= 0 {
		return nil, nil, fmt.Errorf("end time must be positive, got %g: %w", tf, vibe.ErrInvalidParameter)
	}

	w := osc.Omega()
	if w == wdr {
		return nil, nil, fmt.Errorf("drive frequency %g rad/s: %w", wdr, vibe.ErrResonance)
	}

	f0 := f0Force / m
	beat := f0 / (w*w - wdr*wdr)
	n := int(tf / 0.000125)
	if n < 2 {
		return nil, nil, fmt.Errorf("end time %g s is below the sampling floor: %w", tf, vibe.ErrInvalidParameter)
	}
	t := vibe.Linspace(0, tf, n)
	x := make([]float64, len(t))
	for i, ti := range t {
		x[i] = ic.V0/w*math.Sin(w*ti) + (ic.X0-beat)*math.Cos(w*ti) + beat*math.Cos(wdr*ti)
	}

	return t, x, nil
}
