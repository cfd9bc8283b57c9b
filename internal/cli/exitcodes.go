package cli

import (
	"github.com/charmbracelet/log"
	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/cook"
)

// Exit codes for cookfmt.
const (
	// ExitSuccess indicates the sources were formatted, or already were.
	ExitSuccess = 0

	// ExitFailure indicates a failure, or unformatted sources under --check.
	ExitFailure = 1
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// ErrorMessage returns the one-line message for err and, for directive
// errors, the nested cause. It returns "" for errors that were already
// reported, such as ErrUnformatted.
func ErrorMessage(err error) (string, error) {
	if err == nil || errors.Is(err, ErrUnformatted) {
		return "", nil
	}

	var directiveErr *cook.DirectiveError
	if errors.As(err, &directiveErr) {
		return directiveErr.Summary(), directiveErr.Err
	}
	return err.Error(), nil
}

// LogError logs err as a single error line through logger. The nested
// cause is logged by message only, without its stack trace.
func LogError(logger *log.Logger, err error) {
	summary, cause := ErrorMessage(err)
	switch {
	case summary == "":
	case cause != nil:
		logger.Error(summary, logging.FieldError, cause.Error())
	default:
		logger.Error(summary)
	}
}
