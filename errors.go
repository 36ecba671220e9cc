package inkpad

import (
	"errors"
	"fmt"
)

// ErrUnsupportedElementKind is returned when an operation encounters an element kind it does not know.
var ErrUnsupportedElementKind = errors.New("unsupported element kind")

// ErrInvalidParameter is returned for arguments outside an operation's domain, such as a zero smoothing tension.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrInvalidFormat is returned by decoders for input that does not follow the file format.
var ErrInvalidFormat = errors.New("invalid format")

// Error is returned by all document operations. It records the component and operation that failed.
type Error struct {
	Component string
	Op        string
	Msg       string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Component, e.Op, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UnsupportedKindError returns an error wrapping ErrUnsupportedElementKind for the given component and operation. Decoders and renderers use it for elements they cannot dispatch on.
func UnsupportedKindError(component, op string, kind Kind) error {
	return &Error{component, op, fmt.Sprintf("unsupported element with kind %d", int(kind)), ErrUnsupportedElementKind}
}

func invalidParameterError(component, op, msg string) error {
	return &Error{component, op, msg, ErrInvalidParameter}
}

// FormatError returns an error wrapping ErrInvalidFormat for the given decoder.
func FormatError(component, msg string, args ...interface{}) error {
	return &Error{component, "decode", fmt.Sprintf(msg, args...), ErrInvalidFormat}
}
