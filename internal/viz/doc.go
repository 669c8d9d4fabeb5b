// Package viz holds terminal drawing primitives: a braille-dot canvas
// for curve rendering and shared lipgloss styles.
package viz
