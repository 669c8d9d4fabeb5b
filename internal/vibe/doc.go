// Package vibe provides the core types for vibration analysis.
//
// The package defines the fundamental values shared by every solver:
//
//   - [State]: vector representing a position/velocity state
//   - [System]: interface for ODE right-hand sides (dX/dt = f(X, t))
//   - [Oscillator]: a single-degree-of-freedom mass-spring-damper
//   - [Regime]: the damping regime selecting a closed-form solution branch
//
// # Example
//
//	osc, _ := vibe.NewOscillator(10, 1, 100)
//	fmt.Println(osc.Omega(), osc.Zeta(), osc.Regime())
//
// All values are immutable once constructed. Solvers never share mutable
// state, so repeated calls are independent and safe to run concurrently.
package vibe
