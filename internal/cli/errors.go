package cli

import (
	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/pkg/runner"
)

var (
	// ErrNoInputPiped is returned when no path is given and stdin is a
	// terminal.
	ErrNoInputPiped = errors.Base("no input piped and no source path given")

	// ErrLanguageUndetected is returned when a source's language could
	// not be determined.
	ErrLanguageUndetected = runner.ErrLanguageUndetected

	// ErrQueryFile is returned when a query file cannot be read.
	ErrQueryFile = errors.Base("failed to read query file")

	// ErrSourceFile is returned when a source cannot be read.
	ErrSourceFile = errors.Base("failed to read source")

	// ErrFormatFailed is returned when at least one file failed.
	ErrFormatFailed = errors.Base("formatting failed")

	// ErrUnformatted is returned by --check when a source would change.
	ErrUnformatted = errors.Base("sources are not formatted")

	// ErrStdinWrite is returned for --write without paths.
	ErrStdinWrite = errors.Base("cannot write standard input in place")
)
