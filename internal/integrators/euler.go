package integrators

import "github.com/san-kum/vibelab/internal/vibe"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys vibe.System, x vibe.State, t, dt float64) vibe.State {
	dx := sys.Derive(x, t)
	result := make(vibe.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
