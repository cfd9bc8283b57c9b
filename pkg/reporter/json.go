package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/cookfmt/pkg/config"
	"github.com/yaklabco/cookfmt/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Mode    config.Mode      `json:"mode"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's outcome.
type JSONFileResult struct {
	Path     string `json:"path"`
	Language string `json:"language,omitempty"`
	Changed  bool   `json:"changed"`
	Written  bool   `json:"written,omitempty"`
	Edits    int    `json:"edits"`
	Diff     string `json:"diff,omitempty"`
	Error    string `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked int `json:"filesChecked"`
	FilesChanged int `json:"filesChanged"`
	FilesWritten int `json:"filesWritten"`
	FilesErrored int `json:"filesErrored"`
	Edits        int `json:"edits"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	if r.opts.Mode == config.ModeWrite {
		return output.Summary.FilesWritten, nil
	}
	return output.Summary.FilesChanged, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Mode:    r.opts.Mode,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)
		fileResult := JSONFileResult{
			Path:     path,
			Language: file.Language.String(),
			Changed:  file.Changed(),
			Written:  file.Written,
			Edits:    file.Edits,
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		} else if r.opts.Mode == config.ModeDiff {
			fileResult.Diff = file.Diff(path).FullString()
		}

		output.Files = append(output.Files, fileResult)
	}

	output.Summary = JSONSummary{
		FilesChecked: result.Stats.FilesProcessed,
		FilesChanged: result.Stats.FilesChanged,
		FilesWritten: result.Stats.FilesWritten,
		FilesErrored: result.Stats.FilesErrored,
		Edits:        result.Stats.EditsTotal,
	}

	return output
}
