// Package predicates implements the query predicates that rewrite source
// text: indentation, spacing, and debugging hooks.
package predicates

import (
	"cmp"
	"slices"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/editor"
	"github.com/yaklabco/cookfmt/pkg/settings"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// Context is what a predicate sees for one directive occurrence.
type Context struct {
	Query    *syntax.Query
	Scope    settings.Scope
	Nodes    *syntax.Provider
	Settings *settings.Settings
	Editor   *editor.Editor
	Logger   *log.Logger
}

func (c *Context) log() *log.Logger {
	if c.Logger == nil {
		return logging.Default()
	}
	return c.Logger
}

func (c *Context) captureName(id uint) string {
	if c.Query != nil {
		if name := c.Query.CaptureName(id); name != "" {
			return name
		}
	}
	return "#" + strconv.Itoa(int(id))
}

// Predicate handles one predicate operator.
type Predicate interface {
	// Name returns the operator, including its trailing "!".
	Name() string

	// Apply runs the predicate for one match.
	Apply(ctx *Context, args []syntax.Arg) error
}

// Registry maps operators to predicates.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Predicate
	aliases map[string]string // alias -> canonical name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]Predicate),
		aliases: make(map[string]string),
	}
}

// NewDefaultRegistry returns a registry holding every built-in predicate.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Indent{})
	r.Register(IndentOffset{})
	r.Register(Space{})
	r.Register(SpaceAll{})
	r.Register(Log())
	r.RegisterAlias("spacer!", SpaceAll{}.Name())
	return r
}

// Register adds predicate, replacing any predicate with the same name.
func (r *Registry) Register(predicate Predicate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[predicate.Name()] = predicate
}

// RegisterAlias maps alias to the predicate registered as name.
func (r *Registry) RegisterAlias(alias, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = name
}

// Get looks up a predicate by name or alias.
func (r *Registry) Get(name string) (Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if predicate, ok := r.byName[name]; ok {
		return predicate, true
	}
	if target, ok := r.aliases[name]; ok {
		predicate, ok := r.byName[target]
		return predicate, ok
	}
	return nil, false
}

// Apply dispatches pred to the predicate registered for its operator.
func (r *Registry) Apply(ctx *Context, pred syntax.Predicate) error {
	predicate, ok := r.Get(pred.Operator)
	if !ok {
		return &UnknownOperatorError{Operator: pred.Operator}
	}
	return predicate.Apply(ctx, pred.Args)
}

// Predicates returns all registered predicates sorted by name.
func (r *Registry) Predicates() []Predicate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Predicate, 0, len(r.byName))
	for _, predicate := range r.byName {
		result = append(result, predicate)
	}
	slices.SortFunc(result, func(a, b Predicate) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return result
}

// Aliases returns a copy of the alias table.
func (r *Registry) Aliases() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.aliases))
	for alias, name := range r.aliases {
		out[alias] = name
	}
	return out
}
