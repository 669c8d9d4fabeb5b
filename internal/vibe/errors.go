package vibe

import "errors"

// Domain errors for solver operations.
var (
	// ErrInvalidParameter indicates a non-positive mass, stiffness or
	// length, an out-of-range position, or a damping ratio outside the
	// branch a solver supports.
	ErrInvalidParameter = errors.New("vibe: invalid parameter")

	// ErrResonance indicates an undamped forced response was requested
	// with the excitation frequency equal to the natural frequency.
	ErrResonance = errors.New("vibe: excitation at undamped natural frequency")

	// ErrNonConvergence indicates FRF mode accumulation hit the mode cap
	// before covering the requested frequency band.
	ErrNonConvergence = errors.New("vibe: mode accumulation exceeded cap")

	// ErrUnsupportedBoundary indicates an unknown beam boundary condition.
	ErrUnsupportedBoundary = errors.New("vibe: unsupported boundary condition")

	// ErrInvalidState indicates an integrator produced NaN or Inf.
	ErrInvalidState = errors.New("vibe: invalid state (NaN or Inf detected)")
)
