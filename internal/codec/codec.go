// Package codec converts text to and from percent-encoded form using the two
// standard URI encoding schemes.
//
// Component encoding escapes everything except the unreserved set
// A-Z a-z 0-9 - _ . ! ~ * ' ( ). Full-URI encoding additionally leaves the
// structural characters ; / ? : @ & = + $ , # alone. All functions are pure
// and safe for concurrent use.
package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mode selects which encoder/decoder pair is active.
type Mode int

const (
	Component Mode = iota
	FullURI
)

func (m Mode) String() string {
	switch m {
	case Component:
		return "URIComponent"
	case FullURI:
		return "URI"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == FullURI {
		return Component
	}
	return FullURI
}

// ParseMode accepts the names used on the command line and in config files.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "component", "uricomponent", "uri-component", "":
		return Component, nil
	case "uri", "full", "fulluri", "full-uri":
		return FullURI, nil
	}
	return Component, fmt.Errorf("unknown mode %q (want component|uri)", s)
}

// Direction selects which half of the pair to invoke.
type Direction int

const (
	Encode Direction = iota
	Decode
)

func (d Direction) String() string {
	if d == Decode {
		return "decode"
	}
	return "encode"
}

const (
	unreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.!~*'()"
	reserved   = ";/?:@&=+$,#"
	upperhex   = "0123456789ABCDEF"
)

// Unescaped returns the ASCII characters the mode leaves as-is when encoding.
func Unescaped(m Mode) string {
	if m == FullURI {
		return unreserved + reserved
	}
	return unreserved
}

// Transform applies mode and direction to input. Only decoding can fail, and
// only with an *Error of kind MalformedEscape.
func Transform(m Mode, d Direction, input string) (string, error) {
	switch d {
	case Encode:
		return encode(input, m), nil
	case Decode:
		return decode(input, m)
	}
	return "", fmt.Errorf("unknown direction %d", int(d))
}

// EncodeString is Transform(m, Encode, s) without the error result.
func EncodeString(m Mode, s string) string { return encode(s, m) }

// DecodeString is Transform(m, Decode, s).
func DecodeString(m Mode, s string) (string, error) { return decode(s, m) }

func shouldEscape(c byte, m Mode) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	case ';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '#':
		return m != FullURI
	}
	return true
}

func encode(s string, m Mode) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i], m) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	var buf [utf8.UTFMax]byte
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if shouldEscape(c, m) {
				writeEscaped(&b, c)
			} else {
				b.WriteByte(c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		// Invalid bytes come out as RuneError, which encodes as U+FFFD.
		w := utf8.EncodeRune(buf[:], r)
		for _, x := range buf[:w] {
			writeEscaped(&b, x)
		}
		i += size
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperhex[c>>4])
	b.WriteByte(upperhex[c&15])
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// escapedByte reads the %XX triple at s[i:].
func escapedByte(s string, i int) (byte, error) {
	if i+2 >= len(s) {
		return 0, malformed(i, "incomplete escape")
	}
	if !ishex(s[i+1]) || !ishex(s[i+2]) {
		return 0, malformed(i, "invalid hex digits")
	}
	return unhex(s[i+1])<<4 | unhex(s[i+2]), nil
}

// seqLen returns the UTF-8 sequence length announced by lead byte c, or 0
// when c cannot start a sequence.
func seqLen(c byte) int {
	switch {
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	}
	return 0
}

func decode(s string, m Mode) (string, error) {
	first := strings.IndexByte(s, '%')
	if first < 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:first])
	for i := first; i < len(s); {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}
		start := i
		c, err := escapedByte(s, i)
		if err != nil {
			return "", err
		}
		i += 3
		if c < utf8.RuneSelf {
			if m == FullURI && strings.IndexByte(reserved, c) >= 0 {
				b.WriteString(s[start:i])
			} else {
				b.WriteByte(c)
			}
			continue
		}

		n := seqLen(c)
		if n == 0 {
			return "", malformed(start, "invalid UTF-8 lead byte")
		}
		var seq [utf8.UTFMax]byte
		seq[0] = c
		for k := 1; k < n; k++ {
			if i >= len(s) || s[i] != '%' {
				return "", malformed(start, "truncated UTF-8 sequence")
			}
			x, err := escapedByte(s, i)
			if err != nil {
				return "", err
			}
			if x&0xC0 != 0x80 {
				return "", malformed(start, "invalid UTF-8 continuation byte")
			}
			seq[k] = x
			i += 3
		}
		// utf8.Valid rejects overlong forms, surrogates and values past U+10FFFF.
		if !utf8.Valid(seq[:n]) {
			return "", malformed(start, "invalid UTF-8 sequence")
		}
		b.Write(seq[:n])
	}
	return b.String(), nil
}

// CountEscapes reports how many well-formed %XX triples s contains.
func CountEscapes(s string) int {
	n := 0
	for i := 0; i+2 < len(s); i++ {
		if s[i] == '%' && ishex(s[i+1]) && ishex(s[i+2]) {
			n++
			i += 2
		}
	}
	return n
}
