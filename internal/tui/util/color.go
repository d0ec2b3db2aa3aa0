package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"uricodec/internal/tui/state"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return termenv.EnvNoColor()
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
	Primary   lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	MutedDark lipgloss.AdaptiveColor
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.AdaptiveColor{Light: "#2451D6", Dark: "#3D6DFF"},
		Success:   lipgloss.AdaptiveColor{Light: "#1E7D58", Dark: "#2AA876"},
		Danger:    lipgloss.AdaptiveColor{Light: "#B52B27", Dark: "#D9534F"},
		Warning:   lipgloss.AdaptiveColor{Light: "#B87A12", Dark: "#F0AD4E"},
		Muted:     lipgloss.AdaptiveColor{Light: "#8A939B", Dark: "#6C757D"},
		MutedDark: lipgloss.AdaptiveColor{Light: "#4A4A4A", Dark: "#5A5A5A"},
	}
}

// Theme applies a color mode to the process-wide lipgloss renderer. The
// terminal background is probed once; auto falls back to that answer.
type Theme struct {
	detected bool
	noColor  bool
}

// NewTheme probes the terminal. Call before the program takes over stdin.
func NewTheme(noColor bool) *Theme {
	t := &Theme{noColor: NoColor(noColor)}
	if !t.noColor {
		t.detected = termenv.HasDarkBackground()
	}
	return t
}

// Dark reports the background the color mode resolves to.
func (t *Theme) Dark(c state.ColorMode) bool {
	switch c {
	case state.DARK:
		return true
	case state.LIGHT:
		return false
	default:
		return t.detected
	}
}

// Apply points lipgloss at the resolved background and returns it.
func (t *Theme) Apply(c state.ColorMode) bool {
	if t.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	dark := t.Dark(c)
	lipgloss.SetHasDarkBackground(dark)
	return dark
}

// NoColor reports whether styling is stripped.
func (t *Theme) NoColor() bool { return t.noColor }
