// Package config defines the cookfmt configuration types.
// These are plain data structures; discovery and merging live in
// internal/configloader.
package config

import (
	"maps"
	"slices"
)

// Mode selects what happens to formatted output.
type Mode string

const (
	// ModePrint writes the formatted text to stdout.
	ModePrint Mode = "print"
	// ModeWrite rewrites sources in place.
	ModeWrite Mode = "write"
	// ModeDiff prints a unified diff per changed source.
	ModeDiff Mode = "diff"
	// ModeCheck only reports whether sources would change.
	ModeCheck Mode = "check"
)

// IsValid returns true if the mode is known.
func (m Mode) IsValid() bool {
	switch m {
	case ModePrint, ModeWrite, ModeDiff, ModeCheck:
		return true
	default:
		return false
	}
}

// Defaults seed the global settings before any query runs.
type Defaults struct {
	// IndentStyle is the indentation unit, e.g. "    " or "\t".
	IndentStyle *string `yaml:"indent_style,omitempty"`

	// Cpl is the characters-per-line limit; 0 means unlimited.
	Cpl *uint `yaml:"cpl,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	// Language is used when a source's language cannot be detected.
	Language string `yaml:"language,omitempty"`

	// Queries maps a language name to the path of its query file.
	// Relative paths are resolved against the config file's directory.
	Queries map[string]string `yaml:"queries,omitempty"`

	// Extensions maps a file extension to a language name, overriding
	// detection.
	Extensions map[string]string `yaml:"extensions,omitempty"`

	// Exclude contains doublestar patterns of files to skip.
	Exclude []string `yaml:"exclude,omitempty"`

	// Jobs is the number of files formatted at once; 0 means all CPUs.
	Jobs int `yaml:"jobs,omitempty"`

	// Backup keeps a sidecar copy of every rewritten file.
	Backup bool `yaml:"backup,omitempty"`

	Defaults Defaults `yaml:"defaults,omitempty"`

	// CLI-level options (not persisted to config files).

	// Query is an explicit query file applied to every source.
	Query string `yaml:"-"`

	// Mode selects the output behavior.
	Mode Mode `yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Queries:    make(map[string]string),
		Extensions: make(map[string]string),
		Mode:       ModePrint,
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Queries = maps.Clone(c.Queries)
	clone.Extensions = maps.Clone(c.Extensions)
	clone.Exclude = slices.Clone(c.Exclude)
	if c.Defaults.IndentStyle != nil {
		style := *c.Defaults.IndentStyle
		clone.Defaults.IndentStyle = &style
	}
	if c.Defaults.Cpl != nil {
		cpl := *c.Defaults.Cpl
		clone.Defaults.Cpl = &cpl
	}
	return &clone
}
