package state

import "uricodec/internal/codec"

// Pane identifies one of the two text buffers.
type Pane int

const (
	DecodedPane Pane = iota
	EncodedPane
)

func (p Pane) String() string {
	if p == EncodedPane {
		return "Encoded"
	}
	return "Decoded"
}

// Direction is the transform that derives the other pane from p.
func (p Pane) Direction() codec.Direction {
	if p == EncodedPane {
		return codec.Decode
	}
	return codec.Encode
}

// ColorMode is the user's background preference. Auto defers to the terminal.
type ColorMode int

const (
	AUTO ColorMode = iota
	DARK
	LIGHT
)

func (c ColorMode) String() string {
	switch c {
	case DARK:
		return "dark"
	case LIGHT:
		return "light"
	default:
		return "auto"
	}
}

// UIState holds cross-widget UI state used by status bar, panes, and inspector.
type UIState struct {
	// Transform
	Codec codec.Mode
	Focus Pane

	// View
	Color   ColorMode
	Wrap    bool
	Inspect bool
	Help    bool

	// Layout
	Width   int
	Height  int
	MinCol  int
	Stacked bool

	// Last decode failure; nil when the panes agree.
	Err error

	// Notices and ephemeral messages
	Notice string
}
