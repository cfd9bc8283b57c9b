package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/cookfmt/internal/ui/pretty"
	"github.com/yaklabco/cookfmt/pkg/runner"
)

// DiffReporter formats results as unified diffs in GitHub style.
type DiffReporter struct {
	opts      Options
	styles    *pretty.Styles
	errStyles *pretty.Styles
	bw        *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{
		opts:      opts,
		styles:    pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		errStyles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var filesWithDiffs, totalAdditions, totalDeletions int

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintln(r.opts.ErrorWriter, r.errStyles.FormatFileError(path, file.Error))
			continue
		}

		d := file.Diff(path)
		if !d.HasChanges() {
			continue
		}

		filesWithDiffs++
		totalAdditions += d.Additions
		totalDeletions += d.Deletions

		fmt.Fprint(r.bw, r.styles.FormatDiff(d, ""))
		fmt.Fprintln(r.bw)
	}

	if filesWithDiffs > 0 && r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.styles.FormatDiffStat(filesWithDiffs, totalAdditions, totalDeletions))
	}

	return filesWithDiffs, nil
}
