package analysis

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/vibelab/internal/vibe"
)

// FourierSeries estimates Fourier coefficients of one period of a
// sampled signal. The returned slices are indexed by harmonic: a[0] is
// twice the mean, a[i] and b[i] are the cosine and sine coefficients of
// harmonic i (b[0] is always zero). The third result is the series
// truncated to the first n harmonics, evaluated on the sample grid.
func FourierSeries(dat []float64, n int) (a, b, approx []float64, err error) {
	if len(dat) < 2 {
		return nil, nil, nil, fmt.Errorf("need at least 2 samples, got %d: %w", len(dat), vibe.ErrInvalidParameter)
	}
	if n < 1 || n > len(dat)/2 {
		return nil, nil, nil, fmt.Errorf("harmonic count %d outside [1, %d]: %w",
			n, len(dat)/2, vibe.ErrInvalidParameter)
	}

	spec := fft.FFTReal(dat)
	half := float64(len(dat)) / 2

	a = make([]float64, len(spec))
	b = make([]float64, len(spec))
	for i, s := range spec {
		a[i] = real(s) / half
		if i > 0 {
			b[i] = -imag(s) / half
		}
	}

	approx = make([]float64, len(dat))
	for j := range approx {
		theta := 2 * math.Pi * float64(j) / float64(len(dat))
		v := a[0] / 2
		for i := 1; i < n; i++ {
			v += a[i]*math.Cos(float64(i)*theta) + b[i]*math.Sin(float64(i)*theta)
		}
		approx[j] = v
	}

	return a, b, approx, nil
}

// Coefficient produces the n-th Fourier coefficient of a closed-form
// series. Zero is a valid constant coefficient.
type Coefficient func(n int) float64

// ZeroCoefficient is the all-zero coefficient stream.
func ZeroCoefficient(int) float64 { return 0 }

// FourierApproximation evaluates a Fourier series with period T over
// three periods, using separate coefficient streams for odd and even
// harmonics. N is the number of terms; harmonics 1..N-1 are summed on
// top of the a0/2 offset.
func FourierApproximation(a0 float64, aodd, aeven, bodd, beven Coefficient, nTerms int, period float64) (t, f []float64, err error) {
	if nTerms < 1 {
		return nil, nil, fmt.Errorf("need at least 1 term, got %d: %w", nTerms, vibe.ErrInvalidParameter)
	}
	if period <= 0 {
		return nil, nil, fmt.Errorf("period must be positive, got %g: %w", period, vibe.ErrInvalidParameter)
	}

	dt := period / 400
	npts := int(3 * period / dt)
	t = make([]float64, npts)
	f = make([]float64, npts)
	for j := range t {
		t[j] = float64(j) * dt
		v := a0 / 2
		for n := 1; n < nTerms; n++ {
			an, bn := aodd, bodd
			if n%2 == 0 {
				an, bn = aeven, beven
			}
			arg := float64(n) * 2 * math.Pi * t[j] / period
			v += an(n)*math.Cos(arg) + bn(n)*math.Sin(arg)
		}
		f[j] = v
	}

	return t, f, nil
}
