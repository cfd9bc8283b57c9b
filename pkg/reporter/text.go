package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/cookfmt/internal/ui/pretty"
	"github.com/yaklabco/cookfmt/pkg/config"
	"github.com/yaklabco/cookfmt/pkg/runner"
)

// TextReporter writes formatted sources (print mode), the names of
// unformatted files (check mode), or the names of rewritten files
// (write mode).
type TextReporter struct {
	opts      Options
	styles    *pretty.Styles
	errStyles *pretty.Styles
	bw        *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:      opts,
		styles:    pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		errStyles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var count int
	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintln(r.opts.ErrorWriter, r.errStyles.FormatFileError(path, file.Error))
			continue
		}

		switch r.opts.Mode {
		case config.ModePrint:
			if _, err := r.bw.Write(file.Output); err != nil {
				return count, fmt.Errorf("write output: %w", err)
			}
			if file.Changed() {
				count++
			}
		case config.ModeCheck:
			if file.Changed() {
				fmt.Fprintln(r.bw, r.styles.FilePath.Render(path))
				count++
			}
		case config.ModeWrite:
			if file.Written {
				fmt.Fprintln(r.bw, r.styles.Dim.Render(path))
				count++
			}
		case config.ModeDiff:
			if file.Changed() {
				count++
			}
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.opts.ErrorWriter, r.errStyles.FormatSummaryOneLine(result.Stats, r.opts.Mode == config.ModeWrite))
	}

	return count, nil
}
