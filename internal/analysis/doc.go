// Package analysis provides signal-level helpers around the vibration
// solvers: numerical Fourier series of sampled data, closed-form
// Fourier approximations, the undamped response spectrum for a ramp
// input, and phase-portrait extraction with log-decrement damping
// estimation.
package analysis
