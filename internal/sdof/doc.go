// Package sdof solves single-degree-of-freedom vibration problems.
//
// Free response is available in closed form ([Analytical], branching on
// the damping regime) and by numerical integration ([Free], [EulerSeries],
// [RK4Series]). Forced response pairs an adaptive integration path
// ([Forced]) with the undamped analytical solution ([ForcedAnalytical]).
// The frequency-domain helpers ([SteadyState], [Transmissibility],
// [RotatingUnbalance]) evaluate the classical nondimensional response
// curves over a frequency-ratio grid.
package sdof
