package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"uricodec/internal/tui/state"
)

// Group is a titled set of bindings.
type Group struct {
	Title string
	Keys  []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current mode indicated.
// Disabled bindings are skipped.
func (HelpOverlay) View(s state.UIState, groups []Group) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Mode: %s, Color: %s)\n", s.Codec, s.Color)
	for _, g := range groups {
		fmt.Fprintf(&b, "\n%s:\n", g.Title)
		for _, k := range g.Keys {
			if !k.Enabled() {
				continue
			}
			h := k.Help()
			fmt.Fprintf(&b, "  %s: %s\n", h.Key, h.Desc)
		}
	}
	return b.String()
}
