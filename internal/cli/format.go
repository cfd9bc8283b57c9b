package cli

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/internal/configloader"
	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/config"
	"github.com/yaklabco/cookfmt/pkg/cook"
	"github.com/yaklabco/cookfmt/pkg/reporter"
	"github.com/yaklabco/cookfmt/pkg/runner"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// stdinName is the display name of standard input.
const stdinName = "<stdin>"

type formatFlags struct {
	language string
	query    string
	write    bool
	diff     bool
	check    bool
	backup   bool
	jobs     int
	exclude  []string
	format   string
	compact  bool
}

func addFormatFlags(cmd *cobra.Command, flags *formatFlags) {
	cmd.Flags().StringVarP(&flags.language, "lang", "l", "", "source language (default: detect)")
	cmd.Flags().StringVarP(&flags.query, "query", "q", "", "query file applied to every source")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite sources in place")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a unified diff of the changes")
	cmd.Flags().BoolVar(&flags.check, "check", false, "list unformatted sources and fail if any")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a .orig copy of rewritten files")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of files formatted at once (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns of files to skip")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "disable JSON indentation")

	cmd.MarkFlagsMutuallyExclusive("write", "diff", "check")
}

// cliConfig maps explicitly set flags onto a config layer.
func (f *formatFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{
		Language: f.language,
		Query:    f.query,
		Jobs:     f.jobs,
		Backup:   f.backup,
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Exclude = f.exclude
	}
	switch {
	case f.write:
		cfg.Mode = config.ModeWrite
	case f.diff:
		cfg.Mode = config.ModeDiff
	case f.check:
		cfg.Mode = config.ModeCheck
	}
	return cfg
}

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return errors.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return errors.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    flags.cliConfig(cmd),
	})
	if err != nil {
		return errors.Errorf("failed to load configuration: %w", err)
	}
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	opts, err := runnerOptions(cfg)
	if err != nil {
		return err
	}
	opts.Paths = args
	opts.WorkingDir = workDir

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return errors.WithStack(err)
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	var result *runner.Result
	if len(args) == 0 {
		result, err = formatStdin(ctx, cmd.InOrStdin(), cfg.Mode, opts)
	} else {
		logger.Debug("starting run",
			logging.FieldPaths, opts.Paths,
			logging.FieldWorkingDir, opts.WorkingDir,
			logging.FieldJobs, opts.Jobs,
			logging.FieldWrite, opts.Write)
		result, err = runner.New().Run(ctx, opts)
	}
	if err != nil {
		return err
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Mode:        cfg.Mode,
		Color:       colorMode,
		ShowSummary: len(args) > 0 && cfg.Mode != config.ModePrint,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return errors.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return errors.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		return errors.WithDetails(ErrFormatFailed, "failed", result.Stats.FilesErrored)
	}
	if cfg.Mode == config.ModeCheck && result.HasChanges() {
		return errors.WithStack(ErrUnformatted)
	}
	return nil
}

// formatStdin cooks standard input. A failure is returned directly
// rather than reported as a file outcome.
func formatStdin(ctx context.Context, in io.Reader, mode config.Mode, opts runner.Options) (*runner.Result, error) {
	if mode == config.ModeWrite {
		return nil, errors.WithStack(ErrStdinWrite)
	}
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return nil, errors.WithStack(ErrNoInputPiped)
	}

	content, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Errorf("%w: %s", ErrSourceFile, err)
	}

	outcome := runner.New().Format(ctx, stdinName, content, opts)
	if outcome.Error != nil {
		return nil, outcome.Error
	}

	result := &runner.Result{}
	result.Stats.FilesDiscovered = 1
	result.Add(outcome)
	return result, nil
}

// runnerOptions translates the resolved configuration, reading every
// query file it names.
func runnerOptions(cfg *config.Config) (runner.Options, error) {
	defaults, err := configloader.SettingsDefaults(cfg.Defaults)
	if err != nil {
		return runner.Options{}, err
	}

	opts := runner.Options{
		ExcludeGlobs: cfg.Exclude,
		Jobs:         cfg.Jobs,
		Write:        cfg.Mode == config.ModeWrite,
		Backup:       cfg.Backup,
		Cook:         cook.Options{Defaults: defaults},
		Queries:      make(map[syntax.Language]string, len(cfg.Queries)),
		Extensions:   make(map[string]syntax.Language, len(cfg.Extensions)),
	}

	if cfg.Language != "" {
		if opts.Language, err = syntax.ParseLanguage(cfg.Language); err != nil {
			return runner.Options{}, err
		}
	}

	if cfg.Query != "" {
		if opts.Query, err = readQuery(cfg.Query); err != nil {
			return runner.Options{}, err
		}
	}

	for name, path := range cfg.Queries {
		lang, err := syntax.ParseLanguage(name)
		if err != nil {
			return runner.Options{}, err
		}
		if opts.Query != "" {
			continue
		}
		if opts.Queries[lang], err = readQuery(path); err != nil {
			return runner.Options{}, err
		}
	}

	for ext, name := range cfg.Extensions {
		lang, err := syntax.ParseLanguage(name)
		if err != nil {
			return runner.Options{}, err
		}
		opts.Extensions[ext] = lang
	}

	return opts, nil
}

func readQuery(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithDetails(errors.Errorf("%w: %s", ErrQueryFile, err), "path", path)
	}
	return string(content), nil
}
