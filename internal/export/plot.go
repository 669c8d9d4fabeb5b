// Package export renders solver results to PNG or SVG image files.
package export

import (
	"fmt"
	"image/color"
	"math"
	"math/cmplx"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/vibelab/internal/beam"
	"github.com/san-kum/vibelab/internal/sdof"
	"github.com/san-kum/vibelab/internal/vibe"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 6 * vg.Inch
)

var palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

func newLine(xs, ys []float64, c color.RGBA) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = c
	return line, nil
}

// SaveXY renders a single curve. The output format follows the file
// extension (.png or .svg).
func SaveXY(path, title, xlabel, ylabel string, xs, ys []float64) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return fmt.Errorf("export: mismatched or empty plot data (%d, %d)", len(xs), len(ys))
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	line, err := newLine(xs, ys, palette[0])
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())
	return p.Save(plotWidth, plotHeight, path)
}

// SaveFreeResponse renders displacement against time. Underdamped
// responses also get the decay envelope.
func SaveFreeResponse(path string, res *sdof.FreeResult) error {
	p := plot.New()
	p.Title.Text = "Displacement vs Time"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Displacement"

	line, err := newLine(res.Times, res.X, palette[0])
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())

	if res.Zeta < 1 {
		upper := make([]float64, len(res.Times))
		lower := make([]float64, len(res.Times))
		for i, t := range res.Times {
			env := res.Amplitude * math.Exp(-res.Zeta*res.Omega*t)
			upper[i], lower[i] = env, -env
		}
		for _, env := range [][]float64{upper, lower} {
			l, err := newLine(res.Times, env, palette[1])
			if err != nil {
				return err
			}
			l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
			l.LineStyle.Width = vg.Points(1)
			p.Add(l)
		}
	}

	return p.Save(plotWidth, plotHeight, path)
}

// SavePhasePortrait renders velocity against displacement.
func SavePhasePortrait(path string, ts *vibe.TimeSeries) error {
	return SaveXY(path, "Velocity vs Displacement", "Displacement", "Velocity", ts.X, ts.V)
}

// SaveModeShapes renders all mode shapes over the beam span.
func SaveModeShapes(path string, res *beam.ModalResult) error {
	p := plot.New()
	p.Title.Text = "Beam Mode Shapes"
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = "Normalized deflection"

	for i, m := range res.Modes {
		line, err := newLine(res.X, m.Shape, palette[i%len(palette)])
		if err != nil {
			return err
		}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("mode %d", m.Index), line)
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	return p.Save(plotWidth, plotHeight, path)
}

// SaveFRFMagnitude renders the total response and each modal
// contribution in dB.
func SaveFRFMagnitude(path string, frf *beam.FRF) error {
	p := plot.New()
	p.Title.Text = "Frequency Response"
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "FRF (dB)"

	db := func(vals []complex128) []float64 {
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = 20 * math.Log10(cmplx.Abs(v))
		}
		return out
	}

	sum, err := newLine(frf.Freqs, db(frf.Sum), palette[0])
	if err != nil {
		return err
	}
	sum.LineStyle.Width = vg.Points(2)
	p.Add(sum, plotter.NewGrid())
	p.Legend.Add("total", sum)

	for i, mode := range frf.Modes {
		line, err := newLine(frf.Freqs, db(mode), palette[(i+1)%len(palette)])
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(0.8)
		p.Add(line)
	}

	return p.Save(plotWidth, plotHeight, path)
}

// SaveFRFPhase renders the unwrapped phase of the total response in
// degrees.
func SaveFRFPhase(path string, frf *beam.FRF) error {
	phase := make([]float64, len(frf.Sum))
	prev := 0.0
	offset := 0.0
	for i, v := range frf.Sum {
		ph := cmplx.Phase(v)
		if i > 0 {
			if d := ph - prev; d > math.Pi {
				offset -= 2 * math.Pi
			} else if d < -math.Pi {
				offset += 2 * math.Pi
			}
		}
		prev = ph
		phase[i] = (ph + offset) * 180 / math.Pi
	}
	return SaveXY(path, "Frequency Response Phase", "Frequency (Hz)", "Phase (deg)", frf.Freqs, phase)
}
