package vibe

import (
	"fmt"
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System is an ODE right-hand side dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

// Regime selects the closed-form solution branch of a damped oscillator.
type Regime int

const (
	Underdamped      Regime = iota // zeta < 1
	CriticallyDamped               // zeta == 1
	Overdamped                     // zeta > 1
)

func (r Regime) String() string {
	switch r {
	case Underdamped:
		return "underdamped"
	case CriticallyDamped:
		return "critically damped"
	case Overdamped:
		return "overdamped"
	}
	return "unknown"
}

// Oscillator is a single-degree-of-freedom mass-spring-damper,
// m*x'' + c*x' + k*x = f(t).
type Oscillator struct {
	M float64 // mass
	C float64 // damping
	K float64 // stiffness
}

func NewOscillator(m, c, k float64) (Oscillator, error) {
	if m <= 0 {
		return Oscillator{}, fmt.Errorf("mass must be positive, got %g: %w", m, ErrInvalidParameter)
	}
	if k <= 0 {
		return Oscillator{}, fmt.Errorf("stiffness must be positive, got %g: %w", k, ErrInvalidParameter)
	}
	if c < 0 {
		return Oscillator{}, fmt.Errorf("damping must be non-negative, got %g: %w", c, ErrInvalidParameter)
	}
	return Oscillator{M: m, C: c, K: k}, nil
}

// Omega returns the undamped natural frequency sqrt(k/m) in rad/s.
func (o Oscillator) Omega() float64 {
	return math.Sqrt(o.K / o.M)
}

// Zeta returns the damping ratio c/(2*omega*m).
func (o Oscillator) Zeta() float64 {
	return o.C / (2 * o.Omega() * o.M)
}

// OmegaD returns the damped natural frequency omega*sqrt(1-zeta^2).
// Only defined for the underdamped regime; NaN otherwise.
func (o Oscillator) OmegaD() float64 {
	z := o.Zeta()
	return o.Omega() * math.Sqrt(1-z*z)
}

func (o Oscillator) Regime() Regime {
	switch z := o.Zeta(); {
	case z < 1:
		return Underdamped
	case z == 1:
		return CriticallyDamped
	default:
		return Overdamped
	}
}

// Derive implements System for the unforced oscillator in state-space
// form: d/dt [x, v] = [v, -(k/m)x - (c/m)v].
func (o Oscillator) Derive(x State, t float64) State {
	return State{x[1], -o.K/o.M*x[0] - o.C/o.M*x[1]}
}

func (o Oscillator) Dim() int { return 2 }

// Energy returns the total mechanical energy at the given state.
func (o Oscillator) Energy(x State) float64 {
	return 0.5*o.M*x[1]*x[1] + 0.5*o.K*x[0]*x[0]
}

// InitialConditions holds displacement and velocity at t=0.
type InitialConditions struct {
	X0 float64
	V0 float64
}

func (ic InitialConditions) State() State { return State{ic.X0, ic.V0} }

// TimeSeries is a uniformly sampled (t, x, v) trajectory.
type TimeSeries struct {
	Times []float64
	X     []float64
	V     []float64
}

func (ts *TimeSeries) Len() int { return len(ts.Times) }

// At returns the i-th sample.
func (ts *TimeSeries) At(i int) (t, x, v float64) {
	return ts.Times[i], ts.X[i], ts.V[i]
}

// Linspace returns n evenly spaced samples over [start, stop], endpoints
// included. Matches the sampling convention used throughout the solvers.
// n < 1 yields nil.
func Linspace(start, stop float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
