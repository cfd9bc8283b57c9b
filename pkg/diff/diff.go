// Package diff renders unified diffs between a file and its formatted text.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff is a unified diff between original and modified content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	Hunks []Hunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// Hunk is a single hunk of a unified diff.
type Hunk struct {
	// OriginalStart is the 1-based line where the hunk starts in the original.
	OriginalStart int
	OriginalCount int

	// ModifiedStart is the 1-based line where the hunk starts in the modified.
	ModifiedStart int
	ModifiedCount int

	Lines []Line
}

// Line is a single line of a hunk.
type Line struct {
	Kind LineKind

	// Content is the line without its diff prefix or newline.
	Content string
}

// LineKind tells context lines from added and removed ones.
type LineKind int

const (
	// LineContext is an unchanged line.
	LineContext LineKind = iota

	// LineAdd is a line only in the modified content.
	LineAdd

	// LineRemove is a line only in the original content.
	LineRemove
)

// Prefix returns the unified diff marker for k.
func (k LineKind) Prefix() string {
	switch k {
	case LineAdd:
		return "+"
	case LineRemove:
		return "-"
	default:
		return " "
	}
}

// contextLines is the number of unchanged lines shown around changes.
const contextLines = 3

// Generate diffs original against modified line by line.
// It returns nil when they are equal.
func Generate(path string, original, modified []byte) *Diff {
	if string(original) == string(modified) {
		return nil
	}

	ops := lineOps(string(original), string(modified))
	hunks := groupIntoHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineAdd:
				d.Additions++
			case LineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String returns the diff in unified format, without the git header.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		builder.WriteString(hunk.Header())
		builder.WriteByte('\n')
		for _, line := range hunk.Lines {
			builder.WriteString(line.Kind.Prefix())
			builder.WriteString(line.Content)
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

// FullString returns the diff including the git header.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// HasChanges reports whether the diff contains any hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// Header returns the "@@ -a,b +c,d @@" line of h.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
}

type lineOp struct {
	kind    LineKind
	content string
}

// lineOps runs a line-mode diff and flattens it into one op per line.
func lineOps(original, modified string) []lineOp {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(original, modified)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var ops []lineOp
	for _, d := range diffs {
		kind := LineContext
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = LineAdd
		case diffmatchpatch.DiffDelete:
			kind = LineRemove
		case diffmatchpatch.DiffEqual:
		}
		for _, line := range splitLines(d.Text) {
			ops = append(ops, lineOp{kind: kind, content: line})
		}
	}
	return ops
}

// splitLines splits text into lines without their newlines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// groupIntoHunks groups ops into hunks, merging changes whose context
// would overlap.
func groupIntoHunks(ops []lineOp) []Hunk {
	type changeRange struct {
		start, end int
	}

	var ranges []changeRange
	inChange := false
	rangeStart := 0
	for ix, op := range ops {
		isChange := op.kind != LineContext
		switch {
		case isChange && !inChange:
			rangeStart = ix
			inChange = true
		case !isChange && inChange:
			ranges = append(ranges, changeRange{rangeStart, ix})
			inChange = false
		}
	}
	if inChange {
		ranges = append(ranges, changeRange{rangeStart, len(ops)})
	}

	var hunks []Hunk
	for ix := 0; ix < len(ranges); {
		mergeEnd := ix + 1
		for mergeEnd < len(ranges) && ranges[mergeEnd].start-ranges[mergeEnd-1].end <= contextLines*2 {
			mergeEnd++
		}

		hunks = append(hunks, buildHunk(ops, ranges[ix].start, ranges[mergeEnd-1].end))
		ix = mergeEnd
	}
	return hunks
}

func buildHunk(ops []lineOp, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := Hunk{OriginalStart: 1, ModifiedStart: 1}
	for _, op := range ops[:start] {
		if op.kind != LineAdd {
			hunk.OriginalStart++
		}
		if op.kind != LineRemove {
			hunk.ModifiedStart++
		}
	}

	for _, op := range ops[start:end] {
		hunk.Lines = append(hunk.Lines, Line{Kind: op.kind, Content: op.content})
		switch op.kind {
		case LineContext:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case LineRemove:
			hunk.OriginalCount++
		case LineAdd:
			hunk.ModifiedCount++
		}
	}
	return hunk
}
