package beam_test

import (
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vibelab/internal/beam"
	"github.com/san-kum/vibelab/internal/vibe"
)

var _ = Describe("AssembleFRF", func() {
	p := beam.Aluminum()

	It("covers the analysis band with a truncation margin", func() {
		frf, err := beam.AssembleFRF(p, beam.ClampedFree, 0.22, 0.22, 0, 1000, 0.02)
		Expect(err).NotTo(HaveOccurred())

		Expect(frf.Freqs).To(HaveLen(2001))
		Expect(frf.Freqs[0]).To(BeZero())
		Expect(frf.Freqs[2000]).To(Equal(1000.0))
		Expect(frf.Modes).To(HaveLen(len(frf.ModeFreqs)))
		Expect(frf.ModeFreqs[len(frf.ModeFreqs)-1]).To(BeNumerically(">=", 1.3*1000))
	})

	It("peaks at the natural frequencies", func() {
		frf, err := beam.AssembleFRF(p, beam.ClampedFree, 0.22, 0.22, 0, 1000, 0.02)
		Expect(err).NotTo(HaveOccurred())

		Expect(frf.ModeFreqs[0]).To(BeNumerically("~", 78.5, 1.0))

		nearest := func(f float64) int {
			best, idx := math.Inf(1), 0
			for i, fi := range frf.Freqs {
				if d := math.Abs(fi - f); d < best {
					best, idx = d, i
				}
			}
			return idx
		}

		atPeak := cmplx.Abs(frf.Sum[nearest(frf.ModeFreqs[0])])
		between := cmplx.Abs(frf.Sum[nearest((frf.ModeFreqs[0]+frf.ModeFreqs[1])/2)])
		Expect(atPeak).To(BeNumerically(">", 10*between))
	})

	It("sums the per-mode contributions", func() {
		frf, err := beam.AssembleFRF(p, beam.ClampedClamped, 0.1, 0.3, 10, 800, 0.03)
		Expect(err).NotTo(HaveOccurred())

		for i := range frf.Sum {
			var total complex128
			for _, row := range frf.Modes {
				total += row[i]
			}
			Expect(cmplx.Abs(frf.Sum[i] - total)).To(BeNumerically("<", 1e-12*cmplx.Abs(total)+1e-18))
		}
	})

	It("is reciprocal in drive and response points", func() {
		a, err := beam.AssembleFRF(p, beam.PinnedPinned, 0.1, 0.3, 10, 500, 0.02)
		Expect(err).NotTo(HaveOccurred())
		b, err := beam.AssembleFRF(p, beam.PinnedPinned, 0.3, 0.1, 10, 500, 0.02)
		Expect(err).NotTo(HaveOccurred())

		for i := range a.Sum {
			Expect(cmplx.Abs(a.Sum[i] - b.Sum[i])).To(BeNumerically("<", 1e-9))
		}
	})

	It("keeps free-free responses finite from zero frequency", func() {
		frf, err := beam.AssembleFRF(p, beam.FreeFree, 0.1, 0.3, 0, 1000, 0.02)
		Expect(err).NotTo(HaveOccurred())

		// Rigid-body modes are excluded from the sum; every
		// contributing mode is elastic.
		for _, f := range frf.ModeFreqs {
			Expect(f).To(BeNumerically(">", 0))
		}
		for i, v := range frf.Sum {
			Expect(cmplx.IsNaN(v)).To(BeFalse(), "sample %d is NaN", i)
			Expect(cmplx.IsInf(v)).To(BeFalse(), "sample %d is Inf", i)
		}
	})

	It("rejects locations off the beam and empty bands", func() {
		_, err := beam.AssembleFRF(p, beam.ClampedFree, -0.1, 0.2, 0, 1000, 0.02)
		Expect(err).To(MatchError(vibe.ErrInvalidParameter))

		_, err = beam.AssembleFRF(p, beam.ClampedFree, 0.1, p.L+0.1, 0, 1000, 0.02)
		Expect(err).To(MatchError(vibe.ErrInvalidParameter))

		_, err = beam.AssembleFRF(p, beam.ClampedFree, 0.1, 0.2, 500, 500, 0.02)
		Expect(err).To(MatchError(vibe.ErrInvalidParameter))

		_, err = beam.AssembleFRF(p, beam.ClampedFree, 0.1, 0.2, 0, 1000, -0.1)
		Expect(err).To(MatchError(vibe.ErrInvalidParameter))
	})

	It("fails rather than truncating when the band needs too many modes", func() {
		_, err := beam.AssembleFRF(p, beam.ClampedFree, 0.1, 0.2, 0, 5e6, 0.02)
		Expect(err).To(MatchError(vibe.ErrNonConvergence))
	})
})
