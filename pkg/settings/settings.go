// Package settings holds the scoped configuration consulted while rules run:
// document-wide (global) and per-match (local) options, plus a side table of
// settings attached to individual nodes.
package settings

// Scope selects which option set a directive writes to.
type Scope uint8

const (
	// Global options apply to the whole document.
	Global Scope = iota
	// Local options apply only while the current rooted match is processed.
	Local
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	if s == Local {
		return "local"
	}
	return "global"
}

// ScopeFor returns Local for rooted patterns and Global otherwise.
func ScopeFor(rooted bool) Scope {
	if rooted {
		return Local
	}
	return Global
}

// Options is one scope's option set. Nil fields are unset.
type Options struct {
	Cpl         *Cpl
	IndentStyle *string
}

// NodeSettings holds settings attached to a single node.
type NodeSettings struct {
	ignored    bool
	indentRule *IndentRule
}

// Ignored reports whether the node is ignored.
func (n *NodeSettings) Ignored() bool {
	return n.ignored
}

// Ignore sets the ignored flag and returns the previous value.
func (n *NodeSettings) Ignore(ignored bool) bool {
	old := n.ignored
	n.ignored = ignored
	return old
}

// IndentRule returns the node's indent rule, if any.
func (n *NodeSettings) IndentRule() (IndentRule, bool) {
	if n.indentRule == nil {
		return IndentRule{}, false
	}
	return *n.indentRule, true
}

// SetIndentRule sets the indent rule and returns the previous one.
func (n *NodeSettings) SetIndentRule(rule IndentRule) (IndentRule, bool) {
	old, had := n.IndentRule()
	n.indentRule = &rule
	return old, had
}

// Settings is the full configuration state for one document run.
type Settings struct {
	global Options
	local  Options
	nodes  map[uintptr]*NodeSettings
}

// New returns settings with every option unset.
func New() *Settings {
	return &Settings{nodes: make(map[uintptr]*NodeSettings)}
}

// NewWithDefaults returns settings whose global scope starts from defaults.
func NewWithDefaults(defaults Options) *Settings {
	s := New()
	s.global = defaults
	return s
}

// Cpl resolves the cpl: local if set, else global.
func (s *Settings) Cpl() (Cpl, bool) {
	switch {
	case s.local.Cpl != nil:
		return *s.local.Cpl, true
	case s.global.Cpl != nil:
		return *s.global.Cpl, true
	}
	return 0, false
}

// SetCpl writes cpl into scope and returns the previous value there.
func (s *Settings) SetCpl(cpl Cpl, scope Scope) (Cpl, bool) {
	opts := s.options(scope)
	var old Cpl
	had := opts.Cpl != nil
	if had {
		old = *opts.Cpl
	}
	opts.Cpl = &cpl
	return old, had
}

// IndentStyle resolves the indent unit: local if set, else global.
func (s *Settings) IndentStyle() (string, bool) {
	switch {
	case s.local.IndentStyle != nil:
		return *s.local.IndentStyle, true
	case s.global.IndentStyle != nil:
		return *s.global.IndentStyle, true
	}
	return "", false
}

// SetIndentStyle writes style into scope and returns the previous value there.
func (s *Settings) SetIndentStyle(style string, scope Scope) (string, bool) {
	opts := s.options(scope)
	var old string
	had := opts.IndentStyle != nil
	if had {
		old = *opts.IndentStyle
	}
	opts.IndentStyle = &style
	return old, had
}

// Reset clears the local scope.
func (s *Settings) Reset() {
	s.local = Options{}
}

// NodeEntry returns the mutable settings for node id, creating them.
func (s *Settings) NodeEntry(id uintptr) *NodeSettings {
	entry, ok := s.nodes[id]
	if !ok {
		entry = &NodeSettings{}
		s.nodes[id] = entry
	}
	return entry
}

// ForNode returns a copy of the settings for node id, if any were set.
func (s *Settings) ForNode(id uintptr) (NodeSettings, bool) {
	entry, ok := s.nodes[id]
	if !ok {
		return NodeSettings{}, false
	}
	return *entry, true
}

// IsIgnored reports whether node id is flagged ignored.
func (s *Settings) IsIgnored(id uintptr) bool {
	entry, ok := s.nodes[id]
	return ok && entry.ignored
}

func (s *Settings) options(scope Scope) *Options {
	if scope == Local {
		return &s.local
	}
	return &s.global
}
