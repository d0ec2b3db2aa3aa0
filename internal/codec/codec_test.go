package codec

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var modes = []Mode{Component, FullURI}

func TestEmptyInput(t *testing.T) {
	for _, m := range modes {
		for _, d := range []Direction{Encode, Decode} {
			out, err := Transform(m, d, "")
			require.NoError(t, err, "%s/%s", m, d)
			assert.Equal(t, "", out, "%s/%s", m, d)
		}
	}
}

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", "abc"},
		{"a/b?c", "a%2Fb%3Fc"},
		{"café", "caf%C3%A9"},
		{"hello world", "hello%20world"},
		{"-_.!~*'()", "-_.!~*'()"},
		{";/?:@&=+$,#", "%3B%2F%3F%3A%40%26%3D%2B%24%2C%23"},
		{"100%", "100%25"},
		{"😀", "%F0%9F%98%80"},
		{"€", "%E2%82%AC"},
		{"a\nb", "a%0Ab"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeString(Component, tt.in), "input %q", tt.in)
	}
}

func TestEncodeFullURI(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a/b?c", "a/b?c"},
		{";/?:@&=+$,#", ";/?:@&=+$,#"},
		{"https://example.com/a b?q=ü#frag", "https://example.com/a%20b?q=%C3%BC#frag"},
		{"100%", "100%25"},
		{"[x]", "%5Bx%5D"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeString(FullURI, tt.in), "input %q", tt.in)
	}
}

func TestEncodeInvalidUTF8UsesReplacement(t *testing.T) {
	// A lone surrogate encoded the way some producers do (ED A0 80) is three
	// invalid bytes, not a code point.
	assert.Equal(t, "a%EF%BF%BDb", EncodeString(Component, "a\xffb"))
	assert.Equal(t, strings.Repeat("%EF%BF%BD", 3), EncodeString(FullURI, "\xed\xa0\x80"))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		mode     Mode
		in, want string
	}{
		{Component, "caf%C3%A9", "café"},
		{Component, "caf%c3%a9", "café"},
		{Component, "a%2Fb", "a/b"},
		{FullURI, "a%2Fb", "a%2Fb"},
		{FullURI, "a%2fb%20c", "a%2fb c"},
		{FullURI, "%23%3F%26", "%23%3F%26"},
		{Component, "%23%3F%26", "#?&"},
		{Component, "%F0%9F%98%80", "😀"},
		{FullURI, "a/b?c", "a/b?c"},
		{Component, "plain text", "plain text"},
	}
	for _, tt := range tests {
		got, err := DecodeString(tt.mode, tt.in)
		require.NoError(t, err, "%s %q", tt.mode, tt.in)
		assert.Equal(t, tt.want, got, "%s %q", tt.mode, tt.in)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{"100% done", 3},
		{"%", 0},
		{"abc%4", 3},
		{"%zz", 0},
		{"%4g", 0},
		{"%80", 0},
		{"ok%FF", 2},
		{"%C0%80", 0},
		{"%ED%A0%80", 0},
		{"%F4%90%80%80", 0},
		{"x%E2%82", 1},
		{"%E2%82%2", 6},
		{"%E2%82A", 0},
		{"%E2%41%AC", 0},
	}
	for _, m := range modes {
		for _, tt := range tests {
			_, err := Transform(m, Decode, tt.in)
			require.Error(t, err, "%s %q", m, tt.in)
			assert.True(t, errors.Is(err, ErrMalformedEscape), "%s %q: %v", m, tt.in, err)

			var ce *Error
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, MalformedEscape, ce.Kind)
			assert.Equal(t, tt.offset, ce.Offset, "%s %q", m, tt.in)
		}
	}
}

func TestDecodeWithoutPercentIsIdentity(t *testing.T) {
	for _, m := range modes {
		for _, s := range []string{"hello", "a/b?c=d&e", "café ☕", "  "} {
			got, err := DecodeString(m, s)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	}
}

var roundTripInputs = []string{
	"",
	"hello world",
	"café",
	"a/b?c=d&e=f#g",
	"100% done",
	"%2F already escaped",
	"日本語のテキスト",
	"emoji 😀👍🏽",
	"tabs\tand\nnewlines\r\n",
	"'quotes' \"double\" <angle>",
	strings.Repeat("x%y", 50),
}

func TestRoundTrip(t *testing.T) {
	for _, m := range modes {
		for _, s := range roundTripInputs {
			enc := EncodeString(m, s)
			dec, err := DecodeString(m, enc)
			require.NoError(t, err, "%s %q -> %q", m, s, enc)
			assert.Equal(t, s, dec, "%s round trip", m)
		}
	}
}

// FuzzRoundTrip checks decode(encode(s)) == s for any input in both modes.
// Invalid UTF-8 bytes come back as U+FFFD, one per byte.
func FuzzRoundTrip(f *testing.F) {
	for _, s := range roundTripInputs {
		f.Add(s)
	}
	f.Add("\xff\xfe")
	f.Add("ok\xe2\x82")
	f.Fuzz(func(t *testing.T, s string) {
		want := string([]rune(s))
		for _, m := range modes {
			enc := EncodeString(m, s)
			for i := 0; i < len(enc); i++ {
				if enc[i] >= utf8.RuneSelf {
					t.Fatalf("%s: non-ASCII byte in %q", m, enc)
				}
			}
			dec, err := DecodeString(m, enc)
			if err != nil {
				t.Fatalf("%s: decode(%q): %v", m, enc, err)
			}
			if dec != want {
				t.Fatalf("%s: round trip of %q gave %q, want %q", m, s, dec, want)
			}
		}
	})
}

func TestRoundTripInvalidUTF8(t *testing.T) {
	for _, m := range modes {
		dec, err := DecodeString(m, EncodeString(m, "a\xff\xfeb"))
		require.NoError(t, err)
		assert.Equal(t, "a\uFFFD\uFFFDb", dec)
	}
}

func TestReservedDivergence(t *testing.T) {
	assert.Equal(t, "a%2Fb%3Fc", EncodeString(Component, "a/b?c"))
	assert.Equal(t, "a/b?c", EncodeString(FullURI, "a/b?c"))
}

func TestEncodedOutputIsASCII(t *testing.T) {
	for _, m := range modes {
		out := EncodeString(m, "ünïcödé ✓ \x00")
		for i := 0; i < len(out); i++ {
			assert.Less(t, out[i], byte(0x80))
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"component", "URIComponent", " uri-component "} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Component, m)
	}
	for _, s := range []string{"uri", "URI", "full", "full-uri"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, FullURI, m)
	}
	_, err := ParseMode("base64")
	assert.Error(t, err)
}

func TestModeToggleAndString(t *testing.T) {
	assert.Equal(t, FullURI, Component.Toggle())
	assert.Equal(t, Component, FullURI.Toggle())
	assert.Equal(t, "URIComponent", Component.String())
	assert.Equal(t, "URI", FullURI.String())
}

func TestUnescaped(t *testing.T) {
	assert.NotContains(t, Unescaped(Component), "/")
	assert.Contains(t, Unescaped(FullURI), "/")
	for _, c := range []byte(Unescaped(FullURI)) {
		assert.Equal(t, string(c), EncodeString(FullURI, string(c)))
	}
}

func TestCountEscapes(t *testing.T) {
	assert.Equal(t, 0, CountEscapes("plain"))
	assert.Equal(t, 2, CountEscapes("caf%C3%A9"))
	assert.Equal(t, 1, CountEscapes("100% %41"))
	assert.Equal(t, 0, CountEscapes("%4"))
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				out, err := DecodeString(Component, EncodeString(Component, "café/ü"))
				if err != nil || out != "café/ü" {
					t.Errorf("got %q, %v", out, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestErrorMessage(t *testing.T) {
	_, err := DecodeString(Component, "100% done")
	require.Error(t, err)
	assert.Equal(t, "malformed escape at byte 3: invalid hex digits", err.Error())
}
