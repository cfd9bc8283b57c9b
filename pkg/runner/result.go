package runner

import (
	"github.com/yaklabco/cookfmt/pkg/diff"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// FileOutcome is the result of formatting one file.
type FileOutcome struct {
	Path     string
	Language syntax.Language

	// Original and Output are the content before and after formatting.
	Original []byte
	Output   []byte

	// Edits is the number of edits the query made.
	Edits int

	// Written is set when the file was rewritten on disk.
	Written bool

	// Error is set if the file could not be processed.
	Error error
}

// Changed reports whether formatting altered the content.
func (o FileOutcome) Changed() bool {
	return o.Error == nil && string(o.Original) != string(o.Output)
}

// Diff returns the unified diff of the outcome, or nil.
func (o FileOutcome) Diff(path string) *diff.Diff {
	if !o.Changed() {
		return nil
	}
	return diff.Generate(path, o.Original, o.Output)
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesChanged    int
	FilesWritten    int
	FilesErrored    int
	EditsTotal      int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, in path order.
	Files []FileOutcome

	Stats Stats
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// HasChanges reports whether any file would change.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// Add appends an outcome and updates the stats.
func (r *Result) Add(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.EditsTotal += outcome.Edits
	if outcome.Changed() {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
}
