// Package beam computes Euler-Bernoulli beam modal properties and
// frequency response functions.
//
// [Modes] returns natural frequencies and mass-normalized mode shapes
// for the six classical boundary conditions. Low-order eigenvalues come
// from precomputed roots of each boundary condition's transcendental
// characteristic equation; higher orders use the asymptotic closed
// forms. [AssembleFRF] sums single-mode contributions into a complex
// frequency response between two points on the beam.
package beam
