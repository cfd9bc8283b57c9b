package syntax

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// QueryError reports a query that failed to compile.
type QueryError struct {
	Row     uint
	Column  uint
	Message string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid query at %d:%d: %s", e.Row+1, e.Column+1, e.Message)
}

// Property is a `#set!` directive attached to a pattern.
type Property struct {
	Key     string
	Value   *string
	Capture *uint
}

// Arg is one argument of a general predicate: a capture or a string.
type Arg struct {
	Capture *uint
	String  *string
}

// IsCapture reports whether the argument names a capture.
func (a Arg) IsCapture() bool {
	return a.Capture != nil
}

// Predicate is a general (non-builtin) predicate attached to a pattern.
type Predicate struct {
	Operator string
	Args     []Arg
}

// Query is a compiled tree-sitter query bound to a language.
type Query struct {
	raw  *tree_sitter.Query
	lang Language
}

// CompileQuery compiles src against the grammar for lang.
// The caller must Close the returned query.
func CompileQuery(lang Language, src string) (*Query, error) {
	grammar := lang.Grammar()
	if grammar == nil {
		return nil, &UnsupportedLanguageError{Name: string(lang)}
	}

	raw, qerr := tree_sitter.NewQuery(grammar, src)
	if qerr != nil {
		return nil, &QueryError{Row: qerr.Row, Column: qerr.Column, Message: qerr.Message}
	}
	return &Query{raw: raw, lang: lang}, nil
}

// Close releases the query.
func (q *Query) Close() {
	if q.raw != nil {
		q.raw.Close()
		q.raw = nil
	}
}

// Language returns the language the query was compiled for.
func (q *Query) Language() Language {
	return q.lang
}

// PatternCount returns the number of patterns in the query.
func (q *Query) PatternCount() int {
	return int(q.raw.PatternCount())
}

// IsRooted reports whether the pattern has a single root node.
// Top-level predicates and directives are not rooted.
func (q *Query) IsRooted(pattern int) bool {
	return q.raw.IsPatternRooted(uint(pattern))
}

// Properties returns the `#set!` directives of pattern in source order.
func (q *Query) Properties(pattern int) []Property {
	raw := q.raw.PropertySettings(uint(pattern))
	props := make([]Property, 0, len(raw))
	for _, p := range raw {
		props = append(props, Property{Key: p.Key, Value: p.Value, Capture: p.CaptureId})
	}
	return props
}

// Predicates returns the general predicates of pattern in source order.
func (q *Query) Predicates(pattern int) []Predicate {
	raw := q.raw.GeneralPredicates(uint(pattern))
	preds := make([]Predicate, 0, len(raw))
	for _, p := range raw {
		args := make([]Arg, 0, len(p.Args))
		for _, a := range p.Args {
			args = append(args, Arg{Capture: a.CaptureId, String: a.String})
		}
		preds = append(preds, Predicate{Operator: p.Operator, Args: args})
	}
	return preds
}

// CaptureName returns the name of capture index id.
func (q *Query) CaptureName(id uint) string {
	names := q.raw.CaptureNames()
	if int(id) >= len(names) {
		return ""
	}
	return names[id]
}
