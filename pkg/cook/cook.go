// Package cook runs a query's directives over a parsed document and
// returns the rewritten text.
//
// Patterns are processed by ascending index, matches within a pattern in
// discovery order, and directives within a match in declaration order:
// every `#set!` first, then every predicate. Rooted patterns run with local
// scope, which is cleared after each match. Non-rooted patterns run with
// global scope and only their first match is processed, since their
// matches repeat across the whole file.
package cook

import (
	"context"

	"github.com/charmbracelet/log"
	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/editor"
	"github.com/yaklabco/cookfmt/pkg/predicates"
	"github.com/yaklabco/cookfmt/pkg/settings"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// Options configures a run.
type Options struct {
	// Parsers handles `#set!` keys. Nil uses the built-in parsers.
	Parsers *settings.Registry

	// Predicates handles predicate operators. Nil uses the built-ins.
	Predicates *predicates.Registry

	// Defaults seeds the global scope before any directive runs.
	Defaults settings.Options

	// Logger overrides the logger carried by the context.
	Logger *log.Logger
}

// Result is the outcome of a successful run.
type Result struct {
	Output  []byte
	Matches int
	Edits   int
}

// Cook parses src, compiles query, and applies it.
func Cook(ctx context.Context, lang syntax.Language, src []byte, query string, opts Options) (*Result, error) {
	tree, err := syntax.Parse(lang, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	q, err := syntax.CompileQuery(lang, query)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer q.Close()

	return Apply(ctx, tree, q, src, opts)
}

// Apply runs q's directives over tree, whose text is src.
func Apply(ctx context.Context, tree *syntax.Tree, q *syntax.Query, src []byte, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	parsers := opts.Parsers
	if parsers == nil {
		parsers = settings.NewDefaultRegistry()
	}
	preds := opts.Predicates
	if preds == nil {
		preds = predicates.NewDefaultRegistry()
	}

	ed := editor.New(src)
	state := settings.NewWithDefaults(opts.Defaults)
	matches := syntax.Collect(q, tree.RootNode(), src)
	logger.Debug("collected matches", logging.FieldMatches, matches.Len())

	for pattern := range q.PatternCount() {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		found := matches.ForPattern(pattern)
		if len(found) == 0 {
			continue
		}

		rooted := q.IsRooted(pattern)
		scope := settings.ScopeFor(rooted)
		props := q.Properties(pattern)
		calls := q.Predicates(pattern)
		logger.Debug("applying pattern", logging.FieldPattern, pattern, logging.FieldScope, scope,
			logging.FieldMatches, len(found))

		for _, match := range found {
			nodes := matches.Provider(match)

			settingCtx := &settings.Context{Scope: scope, Nodes: nodes, Settings: state, Logger: logger}
			for _, prop := range props {
				if err := parsers.Parse(settingCtx, prop); err != nil {
					return nil, &DirectiveError{Kind: KindSetting, Name: prop.Key, Pattern: pattern, Err: err}
				}
			}

			predCtx := &predicates.Context{
				Query:    q,
				Scope:    scope,
				Nodes:    nodes,
				Settings: state,
				Editor:   ed,
				Logger:   logger,
			}
			for _, call := range calls {
				if err := preds.Apply(predCtx, call); err != nil {
					return nil, &DirectiveError{Kind: KindPredicate, Name: call.Operator, Pattern: pattern, Err: err}
				}
			}

			state.Reset()

			if !rooted {
				logger.Debug("skipping redundant non-rooted matches", logging.FieldPattern, pattern)
				break
			}
		}
	}

	logger.Debug("applied query", logging.FieldEdits, ed.Len())
	return &Result{Output: ed.Bytes(), Matches: matches.Len(), Edits: ed.Len()}, nil
}
