package runner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/pkg/fsutil"
	"github.com/yaklabco/cookfmt/pkg/langdetect"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// ErrLanguageUndetected is returned for an explicit file whose language
// cannot be determined.
var ErrLanguageUndetected = errors.Base("could not detect language")

// Discover finds the source files selected by opts.
// It returns a deterministically sorted list of absolute file paths.
//
// Explicitly named files are always kept. Files found by walking a
// directory are kept only when their language is known from the name.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, errors.Errorf("resolve working directory: %w", err)
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, errors.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			add(absPath)
			continue
		}

		discovered, err := walkDirectory(ctx, absPath, workDir, opts)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	slices.Sort(files)
	return files, nil
}

// ResolveLanguage picks the language of path: the forced language, an
// extension override, or detection from the name and content.
func ResolveLanguage(path string, content []byte, opts Options) (syntax.Language, error) {
	if opts.Language != "" {
		return opts.Language, nil
	}
	if lang, ok := opts.Extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return lang, nil
	}
	if lang, ok := langdetect.Detect(path, content); ok {
		return lang, nil
	}
	return "", errors.WithDetails(ErrLanguageUndetected, "path", path)
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.WithStack(err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return absPath, nil
}

func walkDirectory(ctx context.Context, root, workDir string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(workDir, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if isExcluded(relPath, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Unreadable targets are skipped.
			}
			if info.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				// WalkDir does not follow symlinks, so walk the target itself.
				subFiles, err := walkDirectory(ctx, realPath, workDir, opts)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") || strings.HasSuffix(entry.Name(), fsutil.BackupSuffix) ||
			isExcluded(relPath, opts.ExcludeGlobs) {
			return nil
		}

		if selected(path, opts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// selected reports whether a walked file has a known language, matching
// the forced one if any.
func selected(path string, opts Options) bool {
	lang, ok := opts.Extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		lang, ok = langdetect.Detect(path, nil)
	}
	if !ok {
		return false
	}
	return opts.Language == "" || opts.Language == lang
}

// isExcluded matches relPath against doublestar patterns. Patterns without
// a slash also match the base name.
func isExcluded(relPath string, patterns []string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, err := doublestar.Match(pattern, filepath.Base(relPath)); err == nil && ok {
				return true
			}
		}
	}
	return false
}
