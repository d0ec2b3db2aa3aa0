package state

import (
	"fmt"
	"strings"
)

// ToggleWrap flips the Wrap flag and returns a new state copy.
func ToggleWrap(s UIState) UIState {
	s.Wrap = !s.Wrap
	return s
}

// ToggleCodec switches between component and full-URI encoding and sets a brief notice.
func ToggleCodec(s UIState) UIState {
	s.Codec = s.Codec.Toggle()
	s.Notice = "[" + s.Codec.String() + "]"
	return s
}

// CycleColor advances auto -> dark -> light -> auto.
func CycleColor(s UIState) UIState {
	s.Color = (s.Color + 1) % 3
	s.Notice = "Color: " + s.Color.String()
	return s
}

// ParseColorMode accepts auto|dark|light.
func ParseColorMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return AUTO, nil
	case "dark":
		return DARK, nil
	case "light":
		return LIGHT, nil
	}
	return AUTO, fmt.Errorf("unknown color mode %q (want auto|dark|light)", v)
}

// ToggleFocus moves focus to the other pane.
func ToggleFocus(s UIState) UIState {
	if s.Focus == DecodedPane {
		s.Focus = EncodedPane
	} else {
		s.Focus = DecodedPane
	}
	return s
}

// ToggleInspect shows or hides the escape inspector.
func ToggleInspect(s UIState) UIState {
	s.Inspect = !s.Inspect
	return s
}

// ToggleHelp shows or hides the key help.
func ToggleHelp(s UIState) UIState {
	s.Help = !s.Help
	return s
}

// Resize updates dimensions and stacks the panes when too narrow for two columns.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	stacked := s.Width < 2*s.MinCol+3
	if stacked && !s.Stacked {
		s.Notice = "Narrow width: stacking panes"
	}
	s.Stacked = stacked
	return s
}

// Fail records a decode failure. The panes keep their text.
func Fail(s UIState, err error) UIState {
	s.Err = err
	return s
}

// Settle clears a previous failure after a successful transform.
func Settle(s UIState) UIState {
	s.Err = nil
	return s
}

// SetNotice replaces the ephemeral message.
func SetNotice(s UIState, msg string) UIState {
	s.Notice = msg
	return s
}
