package state

import (
	"errors"
	"testing"

	"uricodec/internal/codec"
)

func TestToggleWrap(t *testing.T) {
	s := UIState{Wrap: false}
	s = ToggleWrap(s)
	if !s.Wrap { t.Fatalf("expected Wrap to be true") }
}

func TestToggleCodecSetsNotice(t *testing.T) {
	s := UIState{Codec: codec.Component}
	s = ToggleCodec(s)
	if s.Codec != codec.FullURI || s.Notice != "[URI]" { t.Fatalf("expected URI mode and notice, got %v %q", s.Codec, s.Notice) }
	s = ToggleCodec(s)
	if s.Codec != codec.Component || s.Notice != "[URIComponent]" { t.Fatalf("expected component mode and notice, got %v %q", s.Codec, s.Notice) }
}

func TestCycleColorOrder(t *testing.T) {
	s := UIState{}
	want := []ColorMode{DARK, LIGHT, AUTO, DARK}
	for i, w := range want {
		s = CycleColor(s)
		if s.Color != w { t.Fatalf("step %d: got %v want %v", i, s.Color, w) }
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": AUTO, "Auto": AUTO, "dark": DARK, " LIGHT ": LIGHT} {
		got, err := ParseColorMode(in)
		if err != nil || got != want { t.Fatalf("%q: got %v, %v", in, got, err) }
	}
	if _, err := ParseColorMode("sepia"); err == nil { t.Fatalf("expected error for unknown color mode") }
}

func TestToggleFocus(t *testing.T) {
	s := UIState{}
	s = ToggleFocus(s)
	if s.Focus != EncodedPane { t.Fatalf("expected Encoded pane") }
	if s.Focus.Direction() != codec.Decode { t.Fatalf("encoded pane should derive by decoding") }
	s = ToggleFocus(s)
	if s.Focus != DecodedPane { t.Fatalf("expected Decoded pane") }
}

func TestResizeStacksWhenNarrow(t *testing.T) {
	s := UIState{MinCol: 20}
	s = Resize(s, 30, 20) // threshold = 2*20+3 = 43; 30 < 43 => stacked
	if !s.Stacked { t.Fatalf("expected stacked panes after resize fallback") }
	if s.Notice == "" { t.Fatalf("expected fallback notice to be set") }
	s = Resize(s, 120, 40)
	if s.Stacked { t.Fatalf("expected side-by-side panes when wide") }
}

func TestFailAndSettle(t *testing.T) {
	s := Fail(UIState{}, errors.New("bad"))
	if s.Err == nil { t.Fatalf("expected error recorded") }
	s = Settle(s)
	if s.Err != nil { t.Fatalf("expected error cleared") }
}
