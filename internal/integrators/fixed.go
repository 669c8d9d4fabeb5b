package integrators

import (
	"fmt"

	"github.com/san-kum/vibelab/internal/vibe"
)

// Integrator advances a state by one step of size dt.
type Integrator interface {
	Step(sys vibe.System, x vibe.State, t, dt float64) vibe.State
}

// Fixed runs n fixed-size steps from x0 and returns the n+1 sampled
// states together with the uniform time grid.
func Fixed(integ Integrator, sys vibe.System, x0 vibe.State, n int, dt float64) ([]float64, []vibe.State, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("step count must be positive, got %d: %w", n, vibe.ErrInvalidParameter)
	}
	if dt <= 0 {
		return nil, nil, fmt.Errorf("step size must be positive, got %g: %w", dt, vibe.ErrInvalidParameter)
	}

	times := vibe.Linspace(0, float64(n)*dt, n+1)
	states := make([]vibe.State, n+1)
	states[0] = x0.Clone()

	x := x0.Clone()
	for i := 0; i < n; i++ {
		x = integ.Step(sys, x, times[i], dt)
		if !x.IsValid() {
			return nil, nil, fmt.Errorf("at step %d: %w", i+1, vibe.ErrInvalidState)
		}
		states[i+1] = x.Clone()
	}

	return times, states, nil
}
