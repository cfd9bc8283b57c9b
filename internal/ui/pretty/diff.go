package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cookfmt/pkg/diff"
)

// FormatDiff renders d as a colored git-style unified diff.
// displayPath replaces d.Path in the headers when non-empty.
func (s *Styles) FormatDiff(d *diff.Diff, displayPath string) string {
	if !d.HasChanges() {
		return ""
	}
	if displayPath == "" {
		displayPath = strings.TrimPrefix(d.Path, "/")
	}

	var builder strings.Builder
	line := func(style func(...string) string, text string) {
		builder.WriteString(style(text))
		builder.WriteByte('\n')
	}

	line(s.DiffHeader.Render, fmt.Sprintf("diff --git a/%s b/%s", displayPath, displayPath))
	line(s.DiffRemove.Render, "--- a/"+displayPath)
	line(s.DiffAdd.Render, "+++ b/"+displayPath)

	for _, hunk := range d.Hunks {
		line(s.DiffHunk.Render, hunk.Header())
		for _, l := range hunk.Lines {
			text := l.Kind.Prefix() + l.Content
			switch l.Kind {
			case diff.LineAdd:
				line(s.DiffAdd.Render, text)
			case diff.LineRemove:
				line(s.DiffRemove.Render, text)
			default:
				line(s.DiffContext.Render, text)
			}
		}
	}

	return builder.String()
}

// FormatDiffStat formats a "N files changed, X insertions(+), Y deletions(-)"
// line.
func (s *Styles) FormatDiffStat(files, additions, deletions int) string {
	parts := []string{fmt.Sprintf("%d %s changed", files, plural(files, "file", "files"))}

	if additions > 0 {
		parts = append(parts, s.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", additions, plural(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, s.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", deletions, plural(deletions, "deletion", "deletions"))))
	}

	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
