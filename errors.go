package colormap

import (
	"errors"
	"fmt"

	"github.com/gogpu/colormap/internal/locale"
)

// Sentinel errors. Every error returned by this package wraps one of these;
// test with errors.Is.
var (
	// ErrNullOrMissingInput reports a required sequence that is nil or empty.
	ErrNullOrMissingInput = errors.New("colormap: missing input")
	// ErrInvalidLength reports a fixed-length gradient built from the wrong number of samples.
	ErrInvalidLength = errors.New("colormap: invalid length")
	// ErrOutOfRange reports a channel, position, scale, size or index outside its domain.
	ErrOutOfRange = errors.New("colormap: out of range")
	// ErrUnsupportedFormat reports a pixel format with no known byte layout.
	ErrUnsupportedFormat = errors.New("colormap: unsupported pixel format")
	// ErrSyntax reports a color key string that cannot be parsed.
	ErrSyntax = errors.New("colormap: invalid syntax")
)

// MessageProvider maps an error code to human-readable text.
type MessageProvider interface {
	Message(code string) string
}

// Error describes a rejected argument.
type Error struct {
	// Code is the stable identifier of the error kind, e.g. "OutOfRange".
	Code string
	// Op is the operation that rejected the value.
	Op string
	// Value is the offending value.
	Value any
	// Message is the localized description of Code.
	Message string

	kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("colormap: %s: %s (%v)", e.Op, e.Message, e.Value)
}

// Unwrap returns the sentinel error for the error kind.
func (e *Error) Unwrap() error { return e.kind }

var codes = map[error]string{
	ErrNullOrMissingInput: locale.CodeNullOrMissingInput,
	ErrInvalidLength:      locale.CodeInvalidLength,
	ErrOutOfRange:         locale.CodeOutOfRange,
	ErrUnsupportedFormat:  locale.CodeUnsupportedFormat,
	ErrSyntax:             locale.CodeSyntax,
}

// newError builds an *Error of the given kind with text from msgs.
func newError(msgs MessageProvider, kind error, op string, value any) *Error {
	if msgs == nil {
		msgs = locale.Default
	}
	code := codes[kind]
	return &Error{
		Code:    code,
		Op:      op,
		Value:   value,
		Message: msgs.Message(code),
		kind:    kind,
	}
}
