package sdof

import (
	"fmt"
	"math"

	"github.com/san-kum/vibelab/internal/vibe"
)

// pointsPerRatio is the r-grid density of the frequency-ratio sweeps.
const pointsPerRatio = 100

// ratioGrid builds the frequency-ratio grid shared by the sweep
// functions, validating the damping ratios up front. The sweeps are
// all-or-nothing: one bad zeta fails the whole call.
func ratioGrid(zetas []float64, rmin, rmax float64) ([]float64, error) {
	if len(zetas) == 0 {
		return nil, fmt.Errorf("no damping ratios given: %w", vibe.ErrInvalidParameter)
	}
	for _, z := range zetas {
		if z < 0 || math.IsNaN(z) {
			return nil, fmt.Errorf("damping ratio must be non-negative, got %g: %w", z, vibe.ErrInvalidParameter)
		}
	}
	if rmax <= rmin {
		return nil, fmt.Errorf("frequency ratio range [%g, %g] is empty: %w", rmin, rmax, vibe.ErrInvalidParameter)
	}
	n := int(pointsPerRatio * (rmax - rmin))
	if n < 2 {
		n = 2
	}
	return vibe.Linspace(rmin, rmax, n), nil
}

// SteadyState returns the normalized complex steady-state amplitude
// 1/(1 - r^2 + 2i*zeta*r) for each damping ratio over the frequency
// ratio grid r in [rmin, rmax].
func SteadyState(zetas []float64, rmin, rmax float64) ([]float64, [][]complex128, error) {
	r, err := ratioGrid(zetas, rmin, rmax)
	if err != nil {
		return nil, nil, err
	}

	amp := make([][]complex128, len(zetas))
	for zi, z := range zetas {
		row := make([]complex128, len(r))
		for i, ri := range r {
			row[i] = 1 / complex(1-ri*ri, 2*z*ri)
		}
		amp[zi] = row
	}

	return r, amp, nil
}

// Transmissibility returns the displacement and force transmissibility
// ratios for each damping ratio over the frequency ratio grid.
func Transmissibility(zetas []float64, rmin, rmax float64) ([]float64, [][]float64, [][]float64, error) {
	r, err := ratioGrid(zetas, rmin, rmax)
	if err != nil {
		return nil, nil, nil, err
	}

	disp := make([][]float64, len(zetas))
	force := make([][]float64, len(zetas))
	for zi, z := range zetas {
		d := make([]float64, len(r))
		f := make([]float64, len(r))
		for i, ri := range r {
			tz := 2 * z * ri
			d[i] = math.Sqrt((1 + tz*tz) / ((1-ri*ri)*(1-ri*ri) + tz*tz))
			f[i] = ri * ri * d[i]
		}
		disp[zi] = d
		force[zi] = f
	}

	return r, disp, force, nil
}

// RotatingUnbalance returns the complex displacement response
// r/(1 - r^2 + 2i*zeta*r) of a system excited by a rotating unbalance
// of mass m0 at eccentricity e. When normalized is true the result is
// the dimensionless m*X/(m0*e); otherwise it is scaled to displacement.
func RotatingUnbalance(m, m0, e float64, zetas []float64, rmin, rmax float64, normalized bool) ([]float64, [][]complex128, error) {
	if m <= 0 {
		return nil, nil, fmt.Errorf("mass must be positive, got %g: %w", m, vibe.ErrInvalidParameter)
	}
	r, err := ratioGrid(zetas, rmin, rmax)
	if err != nil {
		return nil, nil, err
	}

	scale := complex(1, 0)
	if !normalized {
		scale = complex(m0*e/m, 0)
	}

	amp := make([][]complex128, len(zetas))
	for zi, z := range zetas {
		row := make([]complex128, len(r))
		for i, ri := range r {
			row[i] = scale * complex(ri, 0) / complex(1-ri*ri, 2*z*ri)
		}
		amp[zi] = row
	}

	return r, amp, nil
}
