package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"uricodec/internal/tui/state"
	"uricodec/internal/tui/util"
)

type StatusBar struct {
	noColor bool
	palette util.Palette
}

func NewStatusBar(noColor bool) StatusBar {
	return StatusBar{noColor: noColor, palette: util.DefaultPalette()}
}

// View composes a concise status line reflecting key UI state. Decode errors
// use the danger color and notices the warning color.
func (b StatusBar) View(s state.UIState) string {
	mode := "[" + s.Codec.String() + "]"
	focus := "Focus: " + s.Focus.String()
	color := "Color: " + s.Color.String()
	wrap := "Wrap: Off"
	if s.Wrap {
		wrap = "Wrap: On"
	}
	width := fmt.Sprintf("W:%d", s.Width)

	parts := []string{mode, focus, color, wrap, width}
	if s.Err != nil {
		parts = append(parts, b.render("! "+s.Err.Error(), b.errorStyle()))
	}
	if s.Notice != "" {
		parts = append(parts, b.render(s.Notice, b.noticeStyle()))
	}
	return strings.Join(parts, "  ")
}

func (b StatusBar) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(b.palette.Danger).Bold(true)
}

func (b StatusBar) noticeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(b.palette.Warning)
}

func (b StatusBar) render(text string, st lipgloss.Style) string {
	if b.noColor {
		return text
	}
	return st.Render(text)
}
