package beam_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vibelab/internal/beam"
	"github.com/san-kum/vibelab/internal/vibe"
)

// trapz integrates y over x with the trapezoid rule.
func trapz(x, y []float64) float64 {
	sum := 0.0
	for i := 1; i < len(x); i++ {
		sum += 0.5 * (y[i] + y[i-1]) * (x[i] - x[i-1])
	}
	return sum
}

func modalMass(p beam.Params, x, u []float64) float64 {
	f := make([]float64, len(u))
	for i, ui := range u {
		f[i] = p.Rho * p.A * ui * ui
	}
	return trapz(x, f)
}

var _ = Describe("Modes", func() {
	p := beam.Aluminum()

	It("uses exact eigenvalues for a pinned-pinned beam", func() {
		res, err := beam.Modes(p, beam.PinnedPinned, beam.ModeIndices(4), 500)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Modes).To(HaveLen(4))

		scale := math.Sqrt(p.E * p.I / (p.Rho * p.A * math.Pow(p.L, 4)))
		for i, m := range res.Modes {
			n := float64(i + 1)
			Expect(m.Beta).To(BeNumerically("~", n*math.Pi, 1e-12))
			Expect(m.Omega).To(BeNumerically("~", n*n*math.Pi*math.Pi*scale, 1e-6))
		}
	})

	It("reproduces the tabulated clamped-free eigenvalues", func() {
		res, err := beam.Modes(p, beam.ClampedFree, beam.ModeIndices(5), 500)
		Expect(err).NotTo(HaveOccurred())

		want := []float64{1.88, 4.69, 7.85, 10.99, (2*5 - 1) * math.Pi / 2}
		for i, m := range res.Modes {
			Expect(m.Beta).To(BeNumerically("~", want[i], 1e-12))
		}
	})

	It("places the fundamental clamped-free frequency of the aluminum beam near 78.5 Hz", func() {
		res, err := beam.Modes(p, beam.ClampedFree, []int{1}, 100)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Modes[0].Omega / (2 * math.Pi)).To(BeNumerically("~", 78.5, 1.0))
	})

	It("mass-normalizes every requested mode for every boundary condition", func() {
		bcs := []beam.Boundary{
			beam.FreeFree, beam.ClampedFree, beam.ClampedPinned,
			beam.ClampedSliding, beam.ClampedClamped, beam.PinnedPinned,
		}
		for _, bc := range bcs {
			res, err := beam.Modes(p, bc, beam.ModeIndices(4), 2000)
			Expect(err).NotTo(HaveOccurred(), "boundary %v", bc)
			for _, m := range res.Modes {
				Expect(modalMass(p, res.X, m.Shape)).To(
					BeNumerically("~", 1.0, 1e-6),
					"boundary %v mode %d", bc, m.Index)
			}
		}
	})

	It("produces mass-orthogonal pinned-pinned modes", func() {
		res, err := beam.Modes(p, beam.PinnedPinned, beam.ModeIndices(3), 2000)
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < len(res.Modes); i++ {
			for j := i + 1; j < len(res.Modes); j++ {
				f := make([]float64, len(res.X))
				for k := range f {
					f[k] = p.Rho * p.A * res.Modes[i].Shape[k] * res.Modes[j].Shape[k]
				}
				Expect(trapz(res.X, f)).To(BeNumerically("~", 0.0, 1e-6))
			}
		}
	})

	It("returns rigid-body modes for a free-free beam", func() {
		res, err := beam.Modes(p, beam.FreeFree, beam.ModeIndices(3), 400)
		Expect(err).NotTo(HaveOccurred())

		translation, rotation, elastic := res.Modes[0], res.Modes[1], res.Modes[2]
		Expect(translation.Omega).To(BeZero())
		Expect(rotation.Omega).To(BeZero())
		Expect(elastic.Omega).To(BeNumerically(">", 0))
		Expect(elastic.Beta).To(BeNumerically("~", 4.73004074486, 1e-12))

		// Translation is uniform; rotation is linear and crosses zero mid-span.
		for _, u := range translation.Shape {
			Expect(u).To(BeNumerically("~", translation.Shape[0], 1e-12))
		}
		mid := len(rotation.Shape) / 2
		Expect(rotation.Shape[mid]).To(BeNumerically("~", 0.0, 1e-2))
		Expect(rotation.Shape[0] * rotation.Shape[len(rotation.Shape)-1]).To(BeNumerically("<", 0))
	})

	It("indexes eigenvalues by mode number, not request position", func() {
		res, err := beam.Modes(p, beam.ClampedFree, []int{3}, 200)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Modes).To(HaveLen(1))
		Expect(res.Modes[0].Index).To(Equal(3))
		Expect(res.Modes[0].Beta).To(BeNumerically("~", 7.85, 1e-12))
	})

	It("matches the scalar-count and explicit-list forms", func() {
		a, err := beam.Modes(p, beam.ClampedClamped, beam.ModeIndices(3), 300)
		Expect(err).NotTo(HaveOccurred())
		b, err := beam.Modes(p, beam.ClampedClamped, []int{1, 2, 3}, 300)
		Expect(err).NotTo(HaveOccurred())

		for i := range a.Modes {
			Expect(a.Modes[i].Beta).To(Equal(b.Modes[i].Beta))
			Expect(a.Modes[i].Shape).To(Equal(b.Modes[i].Shape))
		}
	})

	It("rejects invalid parameters and requests", func() {
		_, err := beam.Modes(beam.Params{E: -1, I: 1, Rho: 1, A: 1, L: 1}, beam.PinnedPinned, []int{1}, 100)
		Expect(err).To(MatchError(vibe.ErrInvalidParameter))

		_, err = beam.Modes(p, beam.PinnedPinned, nil, 100)
		Expect(err).To(MatchError(vibe.ErrInvalidParameter))

		_, err = beam.Modes(p, beam.PinnedPinned, []int{0}, 100)
		Expect(err).To(MatchError(vibe.ErrInvalidParameter))

		_, err = beam.Modes(p, beam.PinnedPinned, []int{1}, 1)
		Expect(err).To(MatchError(vibe.ErrInvalidParameter))

		_, err = beam.Modes(p, beam.Boundary(42), []int{1}, 100)
		Expect(err).To(MatchError(vibe.ErrUnsupportedBoundary))
	})
})

var _ = Describe("ParseBoundary", func() {
	It("round-trips every boundary name", func() {
		for _, bc := range []beam.Boundary{
			beam.FreeFree, beam.ClampedFree, beam.ClampedPinned,
			beam.ClampedSliding, beam.ClampedClamped, beam.PinnedPinned,
		} {
			got, err := beam.ParseBoundary(bc.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(bc))
		}
	})

	It("rejects unknown names", func() {
		_, err := beam.ParseBoundary("simply-supported")
		Expect(err).To(MatchError(vibe.ErrUnsupportedBoundary))
	})
})
