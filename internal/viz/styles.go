package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/vibelab/internal/vibe"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	Dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	Value  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))

	StatusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	StatusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))

	regimeStyles = map[vibe.Regime]lipgloss.Style{
		vibe.Underdamped:      lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		vibe.CriticallyDamped: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		vibe.Overdamped:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
)

// RegimeBadge renders a colored damping-regime label.
func RegimeBadge(r vibe.Regime) string {
	if style, ok := regimeStyles[r]; ok {
		return style.Render(r.String())
	}
	return r.String()
}

// ProgressBar renders a fixed-width progress bar.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return Title.Render(strings.Repeat("━", filled)) +
		Dimmer.Render(strings.Repeat("─", width-filled))
}

// Sparkline renders a mini chart of recent values.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rng := maxVal - minVal
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var sb strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		idx := int((values[i*step] - minVal) / rng * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
