package settings

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrCaptureNotAllowed is returned when a setting that takes no capture has one.
	ErrCaptureNotAllowed = errors.Base("capture not allowed")

	// ErrCaptureMissing is returned when a setting that needs a capture has none.
	ErrCaptureMissing = errors.Base("missing capture")
)

// UnknownKeyError reports a `#set!` key with no registered parser.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("invalid setting key %q", e.Key)
}

// ValueError reports a setting value of the wrong shape.
type ValueError struct {
	Expected string
	Got      string
	Err      error
}

func (e *ValueError) Error() string {
	msg := fmt.Sprintf("invalid value; expected %s, got %s", e.Expected, e.Got)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

func valueError(expected, got string, cause error) error {
	return errors.WithStack(&ValueError{Expected: expected, Got: got, Err: cause})
}
