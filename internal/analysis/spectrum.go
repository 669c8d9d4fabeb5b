package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/vibelab/internal/vibe"
)

// ResponseSpectrum computes the dimensionless maximum response of an
// undamped oscillator with natural frequency f (Hz) to a ramp input,
// as a function of the rise time. Returns the rise times and the
// normalized peak response (xk/F0)max at each.
func ResponseSpectrum(f float64) (t, rs []float64, err error) {
	if f <= 0 {
		return nil, nil, fmt.Errorf("natural frequency must be positive, got %g: %w", f, vibe.ErrInvalidParameter)
	}

	t = vibe.Linspace(0.001*4/f, 10/f, 200)
	w := 2 * math.Pi * f

	rs = make([]float64, len(t))
	for i, ti := range t {
		rs[i] = 1 + math.Sqrt(2*(1-math.Cos(w*ti)))/(w*ti)
	}

	return t, rs, nil
}
