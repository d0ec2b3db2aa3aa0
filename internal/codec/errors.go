package codec

import (
	"errors"
	"fmt"
)

// Kind classifies a transform failure. Decoding is the only failing
// direction, so there is a single kind.
type Kind int

const (
	MalformedEscape Kind = iota + 1
)

func (k Kind) String() string {
	if k == MalformedEscape {
		return "malformed escape"
	}
	return "unknown"
}

// ErrMalformedEscape matches every decode failure under errors.Is.
var ErrMalformedEscape = errors.New("malformed escape")

// Error reports where and why decoding stopped. Offset is the byte index of
// the '%' that starts the offending escape or sequence.
type Error struct {
	Kind   Kind
	Offset int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at byte %d: %s", e.Kind, e.Offset, e.Detail)
}

func (e *Error) Is(target error) bool {
	return target == ErrMalformedEscape && e.Kind == MalformedEscape
}

func malformed(offset int, detail string) *Error {
	return &Error{Kind: MalformedEscape, Offset: offset, Detail: detail}
}
