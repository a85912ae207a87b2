package svgpath

import (
	"fmt"
	"strings"
)

type ErrorKind int

const (
	// The input ended while more data was required.
	UnexpectedEndOfStream ErrorKind = iota + 1
	// A byte that cannot appear at this position.
	UnexpectedData
	// A syntactically valid but semantically invalid value.
	InvalidValue
	// A specific byte was expected.
	InvalidChar
	// A specific string was expected.
	InvalidString
	// A malformed or non-finite number.
	InvalidNumber
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEndOfStream:
		return "UnexpectedEndOfStream"
	case UnexpectedData:
		return "UnexpectedData"
	case InvalidValue:
		return "InvalidValue"
	case InvalidChar:
		return "InvalidChar"
	case InvalidString:
		return "InvalidString"
	case InvalidNumber:
		return "InvalidNumber"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error describes malformed input. Pos is the 1-based character position of
// the offending data, or 0 for kinds that don't carry a position.
type Error struct {
	Kind ErrorKind
	Pos  int
	// Actual and Expected are only set for InvalidChar and InvalidString.
	Actual   string
	Expected []string
}

// Sentinel errors for use with errors.Is. A sentinel matches any *Error of the
// same kind, regardless of position.
var (
	ErrUnexpectedEndOfStream = &Error{Kind: UnexpectedEndOfStream}
	ErrUnexpectedData        = &Error{Kind: UnexpectedData}
	ErrInvalidValue          = &Error{Kind: InvalidValue}
	ErrInvalidChar           = &Error{Kind: InvalidChar}
	ErrInvalidString         = &Error{Kind: InvalidString}
	ErrInvalidNumber         = &Error{Kind: InvalidNumber}
)

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedEndOfStream:
		return "unexpected end of stream"
	case UnexpectedData:
		return fmt.Sprintf("unexpected data at position %d", e.Pos)
	case InvalidValue:
		return "invalid value"
	case InvalidChar, InvalidString:
		return fmt.Sprintf("expected '%s' not '%s' at position %d",
			strings.Join(e.Expected, "', '"), e.Actual, e.Pos)
	case InvalidNumber:
		return fmt.Sprintf("invalid number at position %d", e.Pos)
	default:
		return "invalid path data"
	}
}

// Is reports whether target is an *Error of the same kind. A target with a
// non-zero position must also match the position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Pos == 0 || t.Pos == e.Pos)
}

// errEndOfStream returns a new UnexpectedEndOfStream error. Callers may set
// its fields, so the sentinel is never returned.
func errEndOfStream() *Error {
	return &Error{Kind: UnexpectedEndOfStream}
}

func errAt(kind ErrorKind, pos int) *Error {
	return &Error{Kind: kind, Pos: pos}
}
