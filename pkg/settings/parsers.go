package settings

import (
	"strconv"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// CplParser handles `(#set! cpl <n>)`.
type CplParser struct{}

// Key implements Parser.
func (CplParser) Key() string { return "cpl" }

// Parse implements Parser.
func (CplParser) Parse(ctx *Context, prop syntax.Property) error {
	if prop.Capture != nil {
		return ErrCaptureNotAllowed
	}
	if prop.Value == nil {
		return valueError("cpl", "no value", nil)
	}

	cpl, err := ParseCpl(*prop.Value)
	if err != nil {
		return valueError("cpl", strconv.Quote(*prop.Value), err)
	}

	if old, had := ctx.Settings.SetCpl(cpl, ctx.Scope); had {
		ctx.log().Warn("cpl overwritten", logging.FieldScope, ctx.Scope, "old", old)
	}
	ctx.log().Debug("set cpl", logging.FieldScope, ctx.Scope, "cpl", cpl)
	return nil
}

// IndentStyleParser handles `(#set! indent-style "<unit>")`.
type IndentStyleParser struct{}

// Key implements Parser.
func (IndentStyleParser) Key() string { return "indent-style" }

// Parse implements Parser.
func (IndentStyleParser) Parse(ctx *Context, prop syntax.Property) error {
	if prop.Capture != nil {
		return ErrCaptureNotAllowed
	}
	if prop.Value == nil {
		return valueError("indentation style", "no value", nil)
	}
	if *prop.Value == "" {
		return valueError("indentation style", `""`, nil)
	}

	style := *prop.Value
	if old, had := ctx.Settings.SetIndentStyle(style, ctx.Scope); had {
		ctx.log().Warn("indent-style overwritten", logging.FieldScope, ctx.Scope, "old", strconv.Quote(old))
	}
	ctx.log().Debug("set indent-style", logging.FieldScope, ctx.Scope, "style", strconv.Quote(style))
	return nil
}

// IgnoredParser handles `(#set! @capture ignored)`.
type IgnoredParser struct{}

// Key implements Parser.
func (IgnoredParser) Key() string { return "ignored" }

// Parse implements Parser.
func (IgnoredParser) Parse(ctx *Context, prop syntax.Property) error {
	if prop.Capture == nil {
		return ErrCaptureMissing
	}
	if prop.Value != nil {
		return valueError("no value", strconv.Quote(*prop.Value), nil)
	}

	for _, node := range ctx.Nodes.Nodes(*prop.Capture) {
		if ctx.Settings.NodeEntry(node.Id()).Ignore(true) {
			ctx.log().Warn("ignored overwritten", logging.FieldNode, syntax.Describe(&node))
		}
		ctx.log().Debug("ignoring node", logging.FieldNode, syntax.Describe(&node))
	}
	return nil
}

// IndentRuleParser handles `(#set! @capture indent-rule "<rule>")`.
type IndentRuleParser struct{}

// Key implements Parser.
func (IndentRuleParser) Key() string { return "indent-rule" }

// Parse implements Parser.
func (IndentRuleParser) Parse(ctx *Context, prop syntax.Property) error {
	if prop.Capture == nil {
		return ErrCaptureMissing
	}
	if prop.Value == nil {
		return valueError("indentation rule", "no value", nil)
	}

	rule, err := ParseIndentRule(*prop.Value)
	if err != nil {
		return err
	}

	for _, node := range ctx.Nodes.Nodes(*prop.Capture) {
		if old, had := ctx.Settings.NodeEntry(node.Id()).SetIndentRule(rule); had {
			ctx.log().Warn("indent-rule overwritten", logging.FieldNode, syntax.Describe(&node), "old", old)
		}
		ctx.log().Debug("set indent-rule", logging.FieldNode, syntax.Describe(&node), "rule", rule)
	}
	return nil
}
