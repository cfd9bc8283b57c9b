// Package reporter writes formatting results.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/cookfmt/pkg/config"
	"github.com/yaklabco/cookfmt/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes output for the given result.
	// It returns the number of files that need or received formatting.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = defaults.ErrorWriter
	}
	if opts.Mode == "" {
		opts.Mode = defaults.Mode
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if !opts.Mode.IsValid() {
		return nil, fmt.Errorf("unsupported mode: %s", opts.Mode)
	}

	switch {
	case format == FormatJSON:
		return NewJSONReporter(opts), nil
	case opts.Mode == config.ModeDiff:
		return NewDiffReporter(opts), nil
	default:
		return NewTextReporter(opts), nil
	}
}

// displayPath makes path relative to workDir when that does not climb
// too far out of it.
func displayPath(path, workDir string) string {
	if workDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.Count(rel, "..") > 2 {
		return path
	}
	return rel
}
