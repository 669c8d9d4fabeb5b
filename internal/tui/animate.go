// Package tui animates beam mode shapes in the terminal.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/vibelab/internal/beam"
	"github.com/san-kum/vibelab/internal/viz"
)

const animFrame = 33 * time.Millisecond

type model struct {
	res      *beam.ModalResult
	boundary beam.Boundary

	cursor  int // selected mode
	phase   float64
	speed   float64
	paused  bool
	history []float64

	width  int
	height int
}

func newModel(res *beam.ModalResult, bc beam.Boundary) model {
	return model{
		res:      res,
		boundary: bc,
		speed:    1.0,
		history:  make([]float64, 0, 60),
		width:    80,
		height:   24,
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(animFrame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "escape":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
				m.history = m.history[:0]
			}
		case "right", "l", "tab":
			if m.cursor < len(m.res.Modes)-1 {
				m.cursor++
				m.history = m.history[:0]
			}
		case "+", "=":
			m.speed = math.Min(m.speed*2, 8)
		case "-", "_":
			m.speed = math.Max(m.speed/2, 0.25)
		case "0":
			m.speed = 1.0
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.paused {
			// One animation cycle per second at unit speed,
			// regardless of the physical frequency.
			m.phase += m.speed * 2 * math.Pi * animFrame.Seconds()
			mode := m.res.Modes[m.cursor]
			tip := mode.Shape[len(mode.Shape)-1] * math.Cos(m.phase)
			m.history = append(m.history, tip)
			if len(m.history) > 60 {
				m.history = m.history[1:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	mode := m.res.Modes[m.cursor]

	cw := m.width - 8
	ch := m.height - 10
	if cw < 40 {
		cw = 40
	}
	if ch < 8 {
		ch = 8
	}

	amp := 0.0
	for _, u := range mode.Shape {
		if a := math.Abs(u); a > amp {
			amp = a
		}
	}
	if amp == 0 {
		amp = 1
	}

	deflected := make([]float64, len(mode.Shape))
	scale := math.Cos(m.phase)
	for i, u := range mode.Shape {
		deflected[i] = u * scale
	}

	canvas := viz.NewCanvas(cw, ch)
	canvas.DrawAxis(0, -1.1*amp, 1.1*amp)
	canvas.DrawCurve(m.res.X, deflected, m.res.X[0], m.res.X[len(m.res.X)-1], -1.1*amp, 1.1*amp)

	var b strings.Builder
	status := viz.StatusRunning.Render("● running")
	if m.paused {
		status = viz.StatusPaused.Render("○ paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s  %s  %s\n",
		viz.Title.Render("beam modes"),
		viz.Dim.Render(m.boundary.String()),
		status))

	freq := mode.Omega / (2 * math.Pi)
	b.WriteString(fmt.Sprintf("   %s %s   %s %s   %s %s\n\n",
		viz.Dim.Render("mode"), viz.Value.Render(fmt.Sprintf("%d/%d", mode.Index, len(m.res.Modes))),
		viz.Dim.Render("beta"), viz.Value.Render(fmt.Sprintf("%.4f", mode.Beta)),
		viz.Dim.Render("freq"), viz.Accent.Render(fmt.Sprintf("%.2f Hz", freq))))

	for _, row := range strings.Split(strings.TrimRight(canvas.String(), "\n"), "\n") {
		b.WriteString("   " + row + "\n")
	}

	if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("\n   %s %s\n",
			viz.Dim.Render("tip"),
			viz.Title.Render(viz.Sparkline(m.history, 32))))
	}

	b.WriteString("\n" + viz.Dim.Render("   ←→ mode  space pause  ±speed  q quit") + "\n")
	return b.String()
}

// RunAnimation opens a full-screen animation of the computed modes.
func RunAnimation(res *beam.ModalResult, bc beam.Boundary) error {
	if len(res.Modes) == 0 {
		return fmt.Errorf("tui: no modes to animate")
	}
	p := tea.NewProgram(newModel(res, bc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
