package configloader

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/cookfmt/pkg/config"
	"github.com/yaklabco/cookfmt/pkg/settings"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "queries.rust").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown fields).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Language != "" {
		validateLanguage(result, "language", cfg.Language)
	}

	for _, name := range slices.Sorted(maps.Keys(cfg.Queries)) {
		field := "queries." + name
		validateLanguage(result, field, name)
		if cfg.Queries[name] == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Message: "query path must not be empty",
			})
		}
	}

	for _, ext := range slices.Sorted(maps.Keys(cfg.Extensions)) {
		field := "extensions." + ext
		if !strings.HasPrefix(ext, ".") {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   field,
				Value:   ext,
				Message: "extension has no leading dot and will never match",
			})
		}
		validateLanguage(result, field, cfg.Extensions[ext])
	}

	for i, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("exclude[%d]", i),
				Value:   pattern,
				Message: "invalid glob pattern",
			})
		}
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "must be zero (auto) or positive",
		})
	}

	if cfg.Defaults.Cpl != nil {
		if _, err := settings.NewCpl(*cfg.Defaults.Cpl); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "defaults.cpl",
				Value:   *cfg.Defaults.Cpl,
				Message: fmt.Sprintf("%v (allowed: 0 or %d..%d)", err, settings.CplMin, settings.CplMax),
			})
		}
	}

	if style := cfg.Defaults.IndentStyle; style != nil && *style == "" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "defaults.indent_style",
			Message: "empty indent style makes indent! a no-op",
		})
	}

	if cfg.Mode != "" && !cfg.Mode.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "mode",
			Value:   cfg.Mode,
			Message: "unknown mode (valid: print, write, diff, check)",
		})
	}

	return result
}

func validateLanguage(result *ValidationResult, field, name string) {
	if _, err := syntax.ParseLanguage(name); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   name,
			Message: "unsupported language",
		})
	}
}

// ValidateWithFile validates cfg and attributes findings to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

// SettingsDefaults converts configured defaults into the global option
// set the cook loop starts from.
func SettingsDefaults(defaults config.Defaults) (settings.Options, error) {
	var opts settings.Options
	if defaults.Cpl != nil {
		cpl, err := settings.NewCpl(*defaults.Cpl)
		if err != nil {
			return settings.Options{}, err
		}
		opts.Cpl = &cpl
	}
	if defaults.IndentStyle != nil {
		style := *defaults.IndentStyle
		opts.IndentStyle = &style
	}
	return opts, nil
}
