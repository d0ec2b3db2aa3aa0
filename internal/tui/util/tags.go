package util

import (
	"errors"
	"unicode/utf8"

	"uricodec/internal/codec"
	"uricodec/internal/tui/state"
)

// ComputeTags calculates the status chips for a pair of panes given the
// decoded text, the encoded text, the active mode, and the last decode error.
//
// The returned slice preserves a stable order:
//   Mode, Decoded Len, Encoded Len, Escapes, Malformed
//
// Rules:
// - Lengths are in runes (Unicode code points).
// - Escapes counts well-formed %XX triples in the encoded text.
// - Malformed appears only when err is a decode failure; its Value is the
//   byte offset of the offending escape.
func ComputeTags(decoded, encoded string, mode codec.Mode, err error) []state.Tag {
	tags := make([]state.Tag, 0, 5)

	// 1) Mode
	tags = append(tags, state.Tag{Kind: state.MODE, Label: mode.String()})

	// 2) Decoded Length (N)
	tags = append(tags, state.Tag{Kind: state.DECODED_LEN, Value: utf8.RuneCountInString(decoded)})

	// 3) Encoded Length (M)
	tags = append(tags, state.Tag{Kind: state.ENCODED_LEN, Value: utf8.RuneCountInString(encoded)})

	// 4) Escapes
	tags = append(tags, state.Tag{Kind: state.ESCAPES, Value: codec.CountEscapes(encoded)})

	// 5) Malformed @offset
	var ce *codec.Error
	if errors.As(err, &ce) {
		tags = append(tags, state.Tag{Kind: state.MALFORMED, Value: ce.Offset})
	}

	return tags
}
