package runner

import (
	"context"
	"runtime"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/cook"
	"github.com/yaklabco/cookfmt/pkg/fsutil"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// ErrNoQuery is returned for a file whose language has no query.
var ErrNoQuery = errors.Base("no query configured for language")

// Runner formats files discovered from Options.
type Runner struct{}

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers files and formats them concurrently, at most opts.Jobs at
// a time. Each document is formatted by a single goroutine. Per-file
// failures are recorded in the outcome; only discovery failures and
// cancellation are returned as errors.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	outcomes := make([]FileOutcome, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for ix, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return errors.WithStack(err)
			}
			outcomes[ix] = r.processFile(groupCtx, path, opts)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.Add(outcome)
	}

	logger.Debug("formatted files",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged)
	return result, nil
}

func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	ctx, logger := logging.WithFields(ctx, logging.FieldPath, path)

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}

	outcome := r.Format(ctx, path, content, opts)
	if outcome.Error != nil || !opts.Write || !outcome.Changed() {
		return outcome
	}

	if opts.Backup {
		if _, err := fsutil.CreateBackup(ctx, path); err != nil {
			outcome.Error = err
			return outcome
		}
	}
	written, err := fsutil.WriteFormatted(ctx, info, outcome.Output)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Written = written
	logger.Debug("wrote file", logging.FieldEdits, outcome.Edits)
	return outcome
}

// Format resolves the language and query for one in-memory source and
// cooks it. path is used for detection and reporting only; nothing is
// read or written.
func (r *Runner) Format(ctx context.Context, path string, content []byte, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path, Original: content}

	lang, err := ResolveLanguage(path, content, opts)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Language = lang

	query, err := queryFor(lang, opts)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	res, err := cook.Cook(ctx, lang, content, query, opts.Cook)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Output = res.Output
	outcome.Edits = res.Edits
	return outcome
}

func queryFor(lang syntax.Language, opts Options) (string, error) {
	if opts.Query != "" {
		return opts.Query, nil
	}
	if query, ok := opts.Queries[lang]; ok {
		return query, nil
	}
	return "", errors.WithDetails(ErrNoQuery, "language", lang.String())
}
