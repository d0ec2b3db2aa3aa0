package state

// TagKind enumerates the status chips shown under the panes.
type TagKind int

const (
	// Stable ordering for display: Mode, Decoded Len, Encoded Len, Escapes, Malformed
	MODE TagKind = iota
	DECODED_LEN
	ENCODED_LEN
	ESCAPES
	MALFORMED
)

// Tag represents a single status chip. Value is used for numeric counters
// (lengths, escape count, error offset). Label carries the mode name.
type Tag struct {
	Kind  TagKind
	Value int
	Label string
}
