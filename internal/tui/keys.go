package tui

import (
	"github.com/charmbracelet/bubbles/key"

	overlay "uricodec/internal/tui/widgets/helpoverlay"
)

// Function keys and otherwise unbound ctrl chords, so the textareas keep
// their editing keys.
type keyMap struct {
	Focus   key.Binding
	Mode    key.Binding
	Color   key.Binding
	Inspect key.Binding
	Wrap    key.Binding
	Copy    key.Binding
	Clear   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Focus:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch pane")),
		Mode:    key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "component/uri")),
		Color:   key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "color mode")),
		Inspect: key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "inspect escapes")),
		Wrap:    key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "wrap inspector")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy pane")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Mode, k.Color, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, g := range k.groups() {
		out = append(out, g.Keys)
	}
	return out
}

func (k keyMap) groups() []overlay.Group {
	return []overlay.Group{
		{Title: "Panes", Keys: []key.Binding{k.Focus, k.Copy, k.Clear}},
		{Title: "Transform", Keys: []key.Binding{k.Mode}},
		{Title: "View", Keys: []key.Binding{k.Color, k.Inspect, k.Wrap}},
		{Title: "App", Keys: []key.Binding{k.Help, k.Quit}},
	}
}
