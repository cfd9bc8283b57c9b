package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cookfmt/pkg/runner"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 of 12 files need formatting, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, wrote bool) string {
	var parts []string

	checked := fmt.Sprintf("%d %s", stats.FilesProcessed, plural(stats.FilesProcessed, "file", "files"))

	switch {
	case wrote && stats.FilesWritten > 0:
		parts = append(parts, s.Success.Render(fmt.Sprintf("formatted %d of %s", stats.FilesWritten, checked)))
	case stats.FilesChanged > 0 && !wrote:
		parts = append(parts, s.Warning.Render(
			fmt.Sprintf("%d of %s %s formatting", stats.FilesChanged, checked, plural(stats.FilesChanged, "needs", "need"))))
	default:
		parts = append(parts, s.Success.Render("all formatted")+s.Dim.Render(" ("+checked+" checked)"))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatFileError formats a per-file failure as "path: error: msg".
func (s *Styles) FormatFileError(path string, err error) string {
	return s.FilePath.Render(path) + ": " + s.Error.Render("error:") + " " + err.Error()
}
