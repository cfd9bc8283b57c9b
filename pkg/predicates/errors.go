package predicates

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrIndentStyleUnset is returned by indent! when no indent unit is set.
var ErrIndentStyleUnset = errors.Base(`"indent-style" not set`)

// UnknownOperatorError reports a predicate with no registered handler.
type UnknownOperatorError struct {
	Operator string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("invalid predicate operator %q", e.Operator)
}

// ArgError reports an argument of the wrong kind or value.
type ArgError struct {
	Index    int
	Expected string
	Got      string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("invalid argument #%d; expected %s, got %s", e.Index, e.Expected, e.Got)
}

// ArityError reports a wrong number of arguments.
type ArityError struct {
	Expected string
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("invalid number of arguments; expected %s, got %d", e.Expected, e.Got)
}

// CaptureError reports a problem with the nodes bound to a capture.
type CaptureError struct {
	Name string
	Msg  string
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("error in capture %q: %s", e.Name, e.Msg)
}
