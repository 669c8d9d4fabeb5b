package beam

import (
	"fmt"
	"math"

	"github.com/san-kum/vibelab/internal/vibe"
	"gonum.org/v1/gonum/integrate"
)

// Params holds the Euler-Bernoulli beam properties.
type Params struct {
	E   float64 // Young's modulus
	I   float64 // second moment of area
	Rho float64 // density
	A   float64 // cross-section area
	L   float64 // length
}

func NewParams(e, i, rho, a, l float64) (Params, error) {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"modulus", e}, {"second moment", i}, {"density", rho}, {"area", a}, {"length", l},
	} {
		if v.value <= 0 {
			return Params{}, fmt.Errorf("%s must be positive, got %g: %w", v.name, v.value, vibe.ErrInvalidParameter)
		}
	}
	return Params{E: e, I: i, Rho: rho, A: a, L: l}, nil
}

// Aluminum returns the reference beam: 40 cm aluminum bar, 3 cm wide,
// 1.5 cm thick.
func Aluminum() Params {
	return Params{
		E:   7.31e10,
		I:   1.0 / 12.0 * 0.03 * 0.015 * 0.015 * 0.015,
		Rho: 2747,
		A:   0.015 * 0.03,
		L:   0.4,
	}
}

// Boundary is a classical beam boundary condition.
type Boundary int

const (
	FreeFree Boundary = iota
	ClampedFree
	ClampedPinned
	ClampedSliding
	ClampedClamped
	PinnedPinned
)

var boundaryNames = map[Boundary]string{
	FreeFree:       "free-free",
	ClampedFree:    "clamped-free",
	ClampedPinned:  "clamped-pinned",
	ClampedSliding: "clamped-sliding",
	ClampedClamped: "clamped-clamped",
	PinnedPinned:   "pinned-pinned",
}

func (b Boundary) String() string {
	if s, ok := boundaryNames[b]; ok {
		return s
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary maps a boundary-condition name to its tag.
func ParseBoundary(s string) (Boundary, error) {
	for b, name := range boundaryNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, vibe.ErrUnsupportedBoundary)
}

// Roots of the transcendental characteristic equations for low mode
// indices, indexed by mode number minus one. Higher indices use the
// asymptotic closed forms in beta.
var (
	freeFreeRoots       = []float64{0, 0, 4.73004074486, 7.8532046241, 10.995607838, 14.1371654913, 17.2787596574}
	clampedFreeRoots    = []float64{1.88, 4.69, 7.85, 10.99}
	clampedPinnedRoots  = []float64{3.93, 7.07, 10.21, 13.35}
	clampedSlidingRoots = []float64{2.37, 5.5, 8.64, 11.78}
	clampedClampedRoots = []float64{4.73, 7.85, 11, 14.14}
)

// beta returns the n-th eigenvalue (dimensionless root beta_n*L) for
// the boundary condition.
func beta(bc Boundary, n int) (float64, error) {
	switch bc {
	case FreeFree:
		if n <= len(freeFreeRoots) {
			return freeFreeRoots[n-1], nil
		}
		return (2*float64(n) - 3) * math.Pi / 2, nil
	case ClampedFree:
		if n <= len(clampedFreeRoots) {
			return clampedFreeRoots[n-1], nil
		}
		return (2*float64(n) - 1) * math.Pi / 2, nil
	case ClampedPinned:
		if n <= len(clampedPinnedRoots) {
			return clampedPinnedRoots[n-1], nil
		}
		return (4*float64(n) + 1) * math.Pi / 4, nil
	case ClampedSliding:
		if n <= len(clampedSlidingRoots) {
			return clampedSlidingRoots[n-1], nil
		}
		return (4*float64(n) - 1) * math.Pi / 4, nil
	case ClampedClamped:
		if n <= len(clampedClampedRoots) {
			return clampedClampedRoots[n-1], nil
		}
		return (2*float64(n) + 1) * math.Pi / 2, nil
	case PinnedPinned:
		return float64(n) * math.Pi, nil
	}
	return 0, fmt.Errorf("%v: %w", bc, vibe.ErrUnsupportedBoundary)
}

// sigma returns the mode-shape correction coefficient for the boundary
// condition at eigenvalue b. Each condition has its own ratio of
// hyperbolic and trigonometric terms; these must not be mixed up.
func sigma(bc Boundary, b float64) float64 {
	switch bc {
	case FreeFree, ClampedPinned, ClampedClamped:
		return (math.Cosh(b) - math.Cos(b)) / (math.Sinh(b) - math.Sin(b))
	case ClampedFree:
		return (math.Sinh(b) - math.Sin(b)) / (math.Cosh(b) - math.Cos(b))
	case ClampedSliding:
		return (math.Sinh(b) + math.Sin(b)) / (math.Cosh(b) - math.Cos(b))
	}
	return 0
}

// Mode is one beam eigenmode: its eigenvalue, natural frequency in
// rad/s, and the mass-normalized shape sampled over the beam.
type Mode struct {
	Index int
	Beta  float64
	Omega float64
	Shape []float64
}

// ModalResult carries the sampled positions shared by all mode shapes.
type ModalResult struct {
	X     []float64 // positions in [0, L]
	Modes []Mode
}

// ModeIndices expands a scalar mode count into the index list 1..n.
func ModeIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i + 1
	}
	return idx
}

// Modes computes natural frequencies and mass-normalized mode shapes
// for the requested mode indices. Indices need not be contiguous; each
// requested mode is computed and normalized independently.
func Modes(p Params, bc Boundary, indices []int, npoints int) (*ModalResult, error) {
	if _, err := NewParams(p.E, p.I, p.Rho, p.A, p.L); err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("no mode indices requested: %w", vibe.ErrInvalidParameter)
	}
	for _, n := range indices {
		if n < 1 {
			return nil, fmt.Errorf("mode index must be >= 1, got %d: %w", n, vibe.ErrInvalidParameter)
		}
	}
	if npoints < 2 {
		return nil, fmt.Errorf("need at least 2 sample points, got %d: %w", npoints, vibe.ErrInvalidParameter)
	}
	if _, ok := boundaryNames[bc]; !ok {
		return nil, fmt.Errorf("%v: %w", bc, vibe.ErrUnsupportedBoundary)
	}

	xi := vibe.Linspace(0, 1, npoints) // normalized position
	res := &ModalResult{
		X:     make([]float64, npoints),
		Modes: make([]Mode, len(indices)),
	}
	for i, v := range xi {
		res.X[i] = v * p.L
	}

	scale := math.Sqrt(p.E * p.I / (p.Rho * p.A * p.L * p.L * p.L * p.L))

	parallelFor(len(indices), 4, func(start, end int) {
		for mi := start; mi < end; mi++ {
			n := indices[mi]
			bn, _ := beta(bc, n)

			m := Mode{Index: n, Beta: bn, Shape: make([]float64, npoints)}
			switch {
			case bc == FreeFree && n == 1:
				// Rigid-body translation.
				m.Omega = 0
				for i := range m.Shape {
					m.Shape[i] = 1
				}
			case bc == FreeFree && n == 2:
				// Rigid-body rotation about the midpoint.
				m.Omega = 0
				for i, v := range xi {
					m.Shape[i] = v - 0.5
				}
			case bc == PinnedPinned:
				m.Omega = bn * bn * scale
				for i, v := range xi {
					m.Shape[i] = math.Sin(bn * v)
				}
			default:
				sig := sigma(bc, bn)
				m.Omega = bn * bn * scale
				for i, v := range xi {
					b := bn * v
					if bc == FreeFree {
						m.Shape[i] = math.Cosh(b) + math.Cos(b) - sig*(math.Sinh(b)+math.Sin(b))
					} else {
						m.Shape[i] = math.Cosh(b) - math.Cos(b) - sig*(math.Sinh(b)-math.Sin(b))
					}
				}
			}

			massNormalize(m.Shape, res.X, p)
			res.Modes[mi] = m
		}
	})

	return res, nil
}

// massNormalize scales the shape so the discrete quadrature of
// rho*A*U^2 over the beam equals one.
func massNormalize(shape, x []float64, p Params) {
	f := make([]float64, len(shape))
	for i, u := range shape {
		f[i] = p.Rho * p.A * u * u
	}
	norm := math.Sqrt(integrate.Trapezoidal(x, f))
	for i := range shape {
		shape[i] /= norm
	}
}
