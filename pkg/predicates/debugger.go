package predicates

import (
	"strconv"
	"strings"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// DebugFunc observes the state visible to a predicate.
type DebugFunc func(ctx *Context, args []syntax.Arg)

// Debugger is a predicate that hands its context to a callback and never
// edits anything.
type Debugger struct {
	name string
	fn   DebugFunc
}

// NewDebugger returns a Debugger registered under name.
func NewDebugger(name string, fn DebugFunc) *Debugger {
	return &Debugger{name: name, fn: fn}
}

// Name implements Predicate.
func (d *Debugger) Name() string { return d.name }

// Apply implements Predicate.
func (d *Debugger) Apply(ctx *Context, args []syntax.Arg) error {
	d.fn(ctx, args)
	return nil
}

// Log returns the `log!` predicate, which writes the scope, the resolved
// settings and every captured node at debug level.
func Log() *Debugger {
	return NewDebugger("log!", logMatch)
}

func logMatch(ctx *Context, args []syntax.Arg) {
	logger := ctx.log()

	label := ""
	var src []byte
	if ctx.Editor != nil {
		src = ctx.Editor.Bytes()
	}

	kv := []any{logging.FieldScope, ctx.Scope}
	if cpl, ok := ctx.Settings.Cpl(); ok {
		kv = append(kv, "cpl", cpl)
	}
	if style, ok := ctx.Settings.IndentStyle(); ok {
		kv = append(kv, "indent_style", strconv.Quote(style))
	}

	for _, arg := range args {
		if arg.String != nil {
			label = *arg.String
			continue
		}
		if arg.Capture == nil {
			continue
		}
		var nodes []string
		for _, node := range ctx.Nodes.Nodes(*arg.Capture) {
			desc := syntax.Describe(&node)
			if ctx.Editor != nil && ctx.Editor.Len() == 0 {
				desc += " " + strconv.Quote(syntax.Text(&node, src))
			}
			nodes = append(nodes, desc)
		}
		kv = append(kv, "@"+ctx.captureName(*arg.Capture), strings.Join(nodes, ", "))
	}

	msg := "match"
	if label != "" {
		msg = label
	}
	logger.Debug(msg, kv...)
}
