// Package configloader resolves the effective configuration.
// It implements config discovery, hierarchical merging, environment
// variable overrides, and validation.
package configloader

import (
	"context"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where the project config search starts.
	// Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is a config file given with --config. When set, the
	// project search is skipped.
	ExplicitPath string

	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// CLIConfig holds values from flags, which take highest precedence.
	CLIConfig *config.Config
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	Config *config.Config
	Paths  *ConfigPaths

	// LoadedFrom lists the files that were loaded, in order.
	LoadedFrom []string

	// Warnings are non-fatal findings.
	Warnings []string
}

// Load merges all configuration sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (COOKFMT_*)
//  3. Explicit config file, or else the project config found upward
//  4. User config ($XDG_CONFIG_HOME/cookfmt/config.yaml)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		if workDir, err = os.Getwd(); err != nil {
			return nil, errors.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, errors.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layer := func(path string) error {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return err
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, path)
		return nil
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := layer(paths.User); err != nil {
			return nil, errors.Errorf("load user config: %w", err)
		}
	}

	switch {
	case opts.ExplicitPath != "":
		if err := layer(opts.ExplicitPath); err != nil {
			return nil, errors.Errorf("load explicit config: %w", err)
		}
	case !opts.IgnoreProjectConfig && paths.Project != "":
		if err := layer(paths.Project); err != nil {
			return nil, errors.Errorf("load project config: %w", err)
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, errors.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, errors.WithStack(&validation.Errors[0])
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// LoadFile reads one config file. Relative query paths are resolved
// against the file's directory.
func LoadFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, errors.WithDetails(err, "path", path)
	}

	dir := filepath.Dir(path)
	for lang, query := range cfg.Queries {
		if query != "" && !filepath.IsAbs(query) {
			cfg.Queries[lang] = filepath.Join(dir, query)
		}
	}
	return cfg, nil
}
