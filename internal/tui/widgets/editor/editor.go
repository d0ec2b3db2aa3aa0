package editor

import (
	"github.com/charmbracelet/lipgloss"

	"uricodec/internal/tui/util"
)

type Editor struct {
	noColor bool
	palette util.Palette
}

func NewEditor(noColor bool) Editor {
	return Editor{noColor: noColor, palette: util.DefaultPalette()}
}

// View frames a pane body under its heading. The focused pane gets the
// primary border color; with color disabled the heading carries a marker.
func (e Editor) View(title, body string, focused bool, width int) string {
	heading := lipgloss.NewStyle().Bold(true)
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if width > 0 {
		// border + padding take 4 columns
		border = border.Width(max(width-4, 1))
	}
	if e.noColor {
		if focused {
			title = "> " + title
		}
	} else if focused {
		heading = heading.Foreground(e.palette.Primary)
		border = border.BorderForeground(e.palette.Primary)
	} else {
		border = border.BorderForeground(e.palette.Muted)
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading.Render(title), border.Render(body))
}
