package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights a dot at (x, y) in sub-pixel coordinates. The canvas size
// in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCurve maps a sampled curve onto the canvas, connecting adjacent
// samples. Data coordinates [xmin, xmax] x [ymin, ymax] span the full
// sub-pixel grid, with y increasing upward.
func (c *Canvas) DrawCurve(xs, ys []float64, xmin, xmax, ymin, ymax float64) {
	if len(xs) != len(ys) || len(xs) == 0 || xmax <= xmin || ymax <= ymin {
		return
	}

	spw := float64(c.Width*2 - 1)
	sph := float64(c.Height*4 - 1)

	toPixel := func(x, y float64) (int, int) {
		px := int(math.Round((x - xmin) / (xmax - xmin) * spw))
		py := int(math.Round((ymax - y) / (ymax - ymin) * sph))
		return px, py
	}

	prevX, prevY := toPixel(xs[0], ys[0])
	c.Set(prevX, prevY)
	for i := 1; i < len(xs); i++ {
		px, py := toPixel(xs[i], ys[i])
		c.DrawLine(prevX, prevY, px, py)
		prevX, prevY = px, py
	}
}

// DrawAxis draws a horizontal line at data height y.
func (c *Canvas) DrawAxis(y, ymin, ymax float64) {
	if ymax <= ymin {
		return
	}
	sph := float64(c.Height*4 - 1)
	py := int(math.Round((ymax - y) / (ymax - ymin) * sph))
	c.DrawLine(0, py, c.Width*2-1, py)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
