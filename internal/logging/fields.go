package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Run fields.
	FieldLanguage = "language"
	FieldQuery    = "query"
	FieldJobs     = "jobs"
	FieldWrite    = "write"
	FieldCheck    = "check"

	// Rule resolution fields.
	FieldPattern   = "pattern"
	FieldDirective = "directive"
	FieldScope     = "scope"
	FieldNode      = "node"
	FieldMatches   = "matches"
	FieldEdits     = "edits"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
