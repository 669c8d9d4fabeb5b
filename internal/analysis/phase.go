package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/vibelab/internal/vibe"
)

// PhasePortrait holds the (x, v) trajectory of a solver run.
type PhasePortrait struct {
	Points []struct{ X, Y float64 }
}

// ExtractPhasePortrait pairs displacement and velocity samples from a
// time series.
func ExtractPhasePortrait(ts *vibe.TimeSeries) *PhasePortrait {
	if ts == nil || ts.Len() == 0 || len(ts.V) != ts.Len() {
		return nil
	}
	portrait := &PhasePortrait{
		Points: make([]struct{ X, Y float64 }, ts.Len()),
	}
	for i := range ts.Times {
		portrait.Points[i].X = ts.X[i]
		portrait.Points[i].Y = ts.V[i]
	}
	return portrait
}

// ToASCII renders the portrait as a character grid with axes.
func (p *PhasePortrait) ToASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	// Axes, where they cross the visible area.
	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Peaks returns the displacement at each oscillation peak, detected as
// a downward zero crossing of velocity with linear interpolation
// between samples.
func Peaks(ts *vibe.TimeSeries) []float64 {
	if ts == nil || ts.Len() < 2 || len(ts.V) != ts.Len() {
		return nil
	}
	var peaks []float64
	for i := 1; i < ts.Len(); i++ {
		v0, v1 := ts.V[i-1], ts.V[i]
		if v0 > 0 && v1 <= 0 {
			frac := v0 / (v0 - v1)
			peaks = append(peaks, ts.X[i-1]+frac*(ts.X[i]-ts.X[i-1]))
		}
	}
	return peaks
}

// EstimateZeta estimates the damping ratio of an underdamped free
// response from the logarithmic decrement of successive positive
// peaks. Returns false when fewer than two usable peaks exist.
func EstimateZeta(ts *vibe.TimeSeries) (float64, bool) {
	peaks := Peaks(ts)
	var decs []float64
	for i := 1; i < len(peaks); i++ {
		if peaks[i-1] > 0 && peaks[i] > 0 {
			decs = append(decs, math.Log(peaks[i-1]/peaks[i]))
		}
	}
	if len(decs) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, d := range decs {
		sum += d
	}
	delta := sum / float64(len(decs))
	return delta / math.Sqrt(4*math.Pi*math.Pi+delta*delta), true
}
