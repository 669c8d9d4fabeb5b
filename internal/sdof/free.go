package sdof

import (
	"fmt"
	"math"

	"github.com/san-kum/vibelab/internal/integrators"
	"github.com/san-kum/vibelab/internal/vibe"
)

// samplesPerSecond is the sampling density of the time-domain solvers.
const samplesPerSecond = 250

// sampleGrid returns the uniform output grid for a run of maxTime
// seconds. Durations too short to hold two samples at the standard
// density are rejected rather than producing a degenerate grid.
func sampleGrid(maxTime float64) ([]float64, error) {
	n := int(samplesPerSecond * maxTime)
	if n < 2 {
		return nil, fmt.Errorf("duration %g s is below the %g s sampling floor: %w",
			maxTime, 2.0/samplesPerSecond, vibe.ErrInvalidParameter)
	}
	return vibe.Linspace(0, maxTime, n), nil
}

// FreeResult is a free-response trajectory with the derived modal
// quantities of the oscillator that produced it.
type FreeResult struct {
	vibe.TimeSeries
	Zeta      float64
	Omega     float64
	OmegaD    float64
	Amplitude float64 // envelope amplitude A (underdamped only)
}

// Free integrates the unforced oscillator from the given initial
// conditions over [0, maxTime] and returns the trajectory along with
// the natural frequency, damping ratio, damped frequency and envelope
// amplitude.
func Free(osc vibe.Oscillator, ic vibe.InitialConditions, maxTime float64) (*FreeResult, error) {
	if maxTime <= 0 {
		return nil, fmt.Errorf("max time must be positive, got %g: %w", maxTime, vibe.ErrInvalidParameter)
	}

	omega := osc.Omega()
	zeta := osc.Zeta()
	omegaD := osc.OmegaD()

	times, err := sampleGrid(maxTime)
	if err != nil {
		return nil, err
	}
	states, err := integrators.NewRK45().Sample(osc, ic.State(), times, 1e-9)
	if err != nil {
		return nil, err
	}

	res := &FreeResult{
		TimeSeries: vibe.TimeSeries{
			Times: times,
			X:     make([]float64, len(states)),
			V:     make([]float64, len(states)),
		},
		Zeta:   zeta,
		Omega:  omega,
		OmegaD: omegaD,
	}
	for i, s := range states {
		res.X[i] = s[0]
		res.V[i] = s[1]
	}
	if zeta < 1 {
		res.Amplitude = math.Sqrt(ic.X0*ic.X0 + (ic.V0+omega*zeta*ic.X0)*(ic.V0+omega*zeta*ic.X0)/(omegaD*omegaD))
	}

	return res, nil
}

// Analytical returns the closed-form free response and velocity sampled
// at n+1 points spaced dt apart. The formula branches on the damping
// regime; the boundary zeta==1 takes the critically damped branch
// exactly, since the under- and overdamped forms are singular there.
func Analytical(osc vibe.Oscillator, ic vibe.InitialConditions, n int, dt float64) ([]float64, []float64, []float64, error) {
	if n <= 0 {
		return nil, nil, nil, fmt.Errorf("step count must be positive, got %d: %w", n, vibe.ErrInvalidParameter)
	}
	if dt <= 0 {
		return nil, nil, nil, fmt.Errorf("step size must be positive, got %g: %w", dt, vibe.ErrInvalidParameter)
	}

	w := osc.Omega()
	zeta := osc.Zeta()
	x0, v0 := ic.X0, ic.V0

	t := vibe.Linspace(0, float64(n)*dt, n+1)
	x := make([]float64, n+1)
	v := make([]float64, n+1)

	switch osc.Regime() {
	case vibe.Underdamped:
		wd := osc.OmegaD()
		amp := math.Sqrt(((v0+zeta*w*x0)*(v0+zeta*w*x0) + (x0*wd)*(x0*wd)) / (wd * wd))
		phi := math.Atan2(x0*wd, v0+zeta*w*x0)
		for i, ti := range t {
			env := amp * math.Exp(-zeta*w*ti)
			x[i] = env * math.Sin(wd*ti+phi)
			v[i] = env * (wd*math.Cos(wd*ti+phi) - zeta*w*math.Sin(wd*ti+phi))
		}

	case vibe.CriticallyDamped:
		a1 := x0
		a2 := v0 + w*x0
		for i, ti := range t {
			env := math.Exp(-w * ti)
			x[i] = (a1 + a2*ti) * env
			v[i] = (a2 - w*(a1+a2*ti)) * env
		}

	case vibe.Overdamped:
		s := math.Sqrt(zeta*zeta - 1)
		a1 := (-v0 + (-zeta+s)*w*x0) / (2 * w * s)
		a2 := (v0 + (zeta+s)*w*x0) / (2 * w * s)
		lam1 := (-zeta - s) * w
		lam2 := (-zeta + s) * w
		for i, ti := range t {
			e1 := a1 * math.Exp(lam1*ti)
			e2 := a2 * math.Exp(lam2*ti)
			x[i] = e1 + e2
			v[i] = lam1*e1 + lam2*e2
		}
	}

	return t, x, v, nil
}

// EulerSeries returns the free response by first-order explicit Euler
// stepping of the state-space model.
func EulerSeries(osc vibe.Oscillator, ic vibe.InitialConditions, n int, dt float64) (*vibe.TimeSeries, error) {
	times, states, err := integrators.Fixed(integrators.NewEuler(), osc, ic.State(), n, dt)
	if err != nil {
		return nil, err
	}
	return seriesFromStates(times, states), nil
}

// RK4Series returns the free response by classical fourth-order
// Runge-Kutta stepping of the state-space model.
func RK4Series(osc vibe.Oscillator, ic vibe.InitialConditions, n int, dt float64) (*vibe.TimeSeries, error) {
	times, states, err := integrators.Fixed(integrators.NewRK4(), osc, ic.State(), n, dt)
	if err != nil {
		return nil, err
	}
	return seriesFromStates(times, states), nil
}

func seriesFromStates(times []float64, states []vibe.State) *vibe.TimeSeries {
	ts := &vibe.TimeSeries{
		Times: times,
		X:     make([]float64, len(states)),
		V:     make([]float64, len(states)),
	}
	for i, s := range states {
		ts.X[i] = s[0]
		ts.V[i] = s[1]
	}
	return ts
}
