package tagchips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"uricodec/internal/tui/state"
	"uricodec/internal/tui/util"
)

// View renders pane tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	noColor = util.NoColor(noColor)

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	style := chipStyle(t)
	return style.Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.MODE:
		return t.Label
	case state.DECODED_LEN:
		return fmt.Sprintf("Decoded %d", t.Value)
	case state.ENCODED_LEN:
		return fmt.Sprintf("Encoded %d", t.Value)
	case state.ESCAPES:
		return fmt.Sprintf("Escapes %d", t.Value)
	case state.MALFORMED:
		return fmt.Sprintf("Malformed @%d", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	white := lipgloss.Color("#FFFFFF")
	switch t.Kind {
	case state.MODE:
		return base.Background(p.Primary).Foreground(white)
	case state.DECODED_LEN:
		return base.Background(p.Muted).Foreground(white)
	case state.ENCODED_LEN:
		return base.Background(p.MutedDark).Foreground(white)
	case state.ESCAPES:
		return base.Background(p.Success).Foreground(white)
	case state.MALFORMED:
		return base.Background(p.Danger).Foreground(white)
	default:
		return base
	}
}
