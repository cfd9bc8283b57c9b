// Package runner formats many source files concurrently.
package runner

import (
	"github.com/yaklabco/cookfmt/pkg/cook"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the files or directories to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Language forces every file to one language. Directory walks then
	// keep only files detected as that language.
	Language syntax.Language

	// Extensions maps lowercase extensions (with leading dot) to a
	// language, overriding detection.
	Extensions map[string]syntax.Language

	// Query is applied to every file when set.
	Query string

	// Queries holds the query per language, used when Query is empty.
	Queries map[syntax.Language]string

	// ExcludeGlobs are doublestar patterns, relative to WorkingDir, of
	// files and directories to skip.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of files formatted at once.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Write rewrites changed files in place.
	Write bool

	// Backup keeps a sidecar copy of every file before it is rewritten.
	Backup bool

	// Cook is passed to every cook run.
	Cook cook.Options
}

// effectivePaths returns the paths to process, defaulting to ".".
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
