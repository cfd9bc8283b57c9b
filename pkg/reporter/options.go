package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/cookfmt/pkg/config"
)

// Format is the output encoding.
type Format string

const (
	// FormatText is styled terminal output.
	FormatText Format = "text"
	// FormatJSON is one JSON document per run.
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format; "" means text.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if s == "" {
		f = FormatText
	}
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: text, json", s)
	}
	return f, nil
}

// IsValid reports whether f is known.
func (f Format) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for per-file errors and the summary
	// (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Mode selects what is reported for each file.
	Mode config.Mode

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSummary writes a one-line summary after the results.
	ShowSummary bool

	// Compact disables JSON indentation.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Mode:        config.ModePrint,
		Color:       "auto",
	}
}
