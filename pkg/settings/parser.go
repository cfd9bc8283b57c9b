package settings

import (
	"cmp"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// Context is what a settings parser sees for one directive occurrence.
type Context struct {
	Scope    Scope
	Nodes    *syntax.Provider
	Settings *Settings
	Logger   *log.Logger
}

func (c *Context) log() *log.Logger {
	if c.Logger == nil {
		return logging.Default()
	}
	return c.Logger
}

// Parser handles one `#set!` key.
type Parser interface {
	// Key returns the setting key this parser handles.
	Key() string

	// Parse applies prop to ctx.Settings.
	Parse(ctx *Context, prop syntax.Property) error
}

// Registry maps setting keys to parsers.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]Parser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Parser)}
}

// NewDefaultRegistry returns a registry holding every built-in parser.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(CplParser{})
	r.Register(IgnoredParser{})
	r.Register(IndentRuleParser{})
	r.Register(IndentStyleParser{})
	return r
}

// Register adds parser, replacing any parser with the same key.
func (r *Registry) Register(parser Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey[parser.Key()] = parser
}

// Get looks up the parser for key.
func (r *Registry) Get(key string) (Parser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	parser, ok := r.byKey[key]
	return parser, ok
}

// Parse dispatches prop to the parser registered for its key.
func (r *Registry) Parse(ctx *Context, prop syntax.Property) error {
	parser, ok := r.Get(prop.Key)
	if !ok {
		return &UnknownKeyError{Key: prop.Key}
	}
	return parser.Parse(ctx, prop)
}

// Parsers returns all registered parsers sorted by key.
func (r *Registry) Parsers() []Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Parser, 0, len(r.byKey))
	for _, parser := range r.byKey {
		result = append(result, parser)
	}
	slices.SortFunc(result, func(a, b Parser) int {
		return cmp.Compare(a.Key(), b.Key())
	})
	return result
}
