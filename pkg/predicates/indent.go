package predicates

import (
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/editor"
	"github.com/yaklabco/cookfmt/pkg/settings"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// Indent implements `(#indent! @capture ...)`.
//
// Every node bound to the captures is reindented according to its
// indent-rule, using the resolved indent-style as the unit.
type Indent struct{}

// Name implements Predicate.
func (Indent) Name() string { return "indent!" }

// Apply implements Predicate.
func (Indent) Apply(ctx *Context, args []syntax.Arg) error {
	style, ok := ctx.Settings.IndentStyle()
	if !ok {
		return errors.WithStack(ErrIndentStyleUnset)
	}

	for ix := range args {
		id, err := captureArg(ctx, args, ix)
		if err != nil {
			return err
		}

		for _, node := range ctx.Nodes.Nodes(id) {
			entry, _ := ctx.Settings.ForNode(node.Id())
			rule, ok := entry.IndentRule()
			if !ok {
				ctx.log().Warn("no indent-rule set", logging.FieldNode, syntax.Describe(&node))
				continue
			}

			if err := indentNode(ctx, id, node, rule, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func indentNode(ctx *Context, capture uint, node syntax.Node, rule settings.IndentRule, style string) error {
	ed := ctx.Editor
	h := ed.TrackSynced(node)

	indent, err := targetIndent(ctx, capture, h, rule, style)
	if err != nil {
		return err
	}

	start := h.StartPoint()
	prev, ok := ed.Prev(h)
	switch {
	case !ok:
		lineStart, _ := ed.LineStart(start.Row)
		ws := uint(leadingWhitespace(ed.Line(start.Row)))
		return ed.Replace(syntax.Range{
			StartByte:  lineStart,
			EndByte:    lineStart + ws,
			StartPoint: syntax.Point{Row: start.Row},
			EndPoint:   syntax.Point{Row: start.Row, Column: ws},
		}, indent)
	case prev.EndPoint().Row == start.Row:
		return ed.Replace(syntax.Range{
			StartByte:  prev.EndByte(),
			EndByte:    h.StartByte(),
			StartPoint: prev.EndPoint(),
			EndPoint:   start,
		}, "\n"+indent)
	default:
		lineStart, _ := ed.LineStart(start.Row)
		return ed.Replace(syntax.Range{
			StartByte:  lineStart,
			EndByte:    h.StartByte(),
			StartPoint: syntax.Point{Row: start.Row},
			EndPoint:   start,
		}, indent)
	}
}

func targetIndent(
	ctx *Context,
	capture uint,
	h *editor.Handle,
	rule settings.IndentRule,
	style string,
) (string, error) {
	ed := ctx.Editor

	switch rule.Kind {
	case settings.IndentAbsolute:
		return strings.Repeat(style, int(rule.N)), nil

	case settings.IndentOffset:
		anchor, ok := ctx.Nodes.NodeByID(rule.Anchor)
		if !ok {
			return "", errors.WithStack(&CaptureError{
				Name: ctx.captureName(capture),
				Msg:  "offset node not captured for " + syntax.Describe(h.Node()),
			})
		}
		ah := ed.TrackSynced(anchor)
		line := ed.Line(ah.StartPoint().Row)
		ws := leadingWhitespace(line)
		col := min(int(ah.StartPoint().Column), len(line))
		align := 0
		if col > ws {
			align = utf8.RuneCount(line[ws:col])
		}
		return string(line[:ws]) + strings.Repeat(" ", align), nil

	case settings.IndentPlus, settings.IndentMinus:
		parent, ok := ed.Parent(h)
		if !ok {
			return "", errors.WithStack(&CaptureError{
				Name: ctx.captureName(capture),
				Msg:  "no parent node for " + syntax.Describe(h.Node()),
			})
		}
		line := ed.Line(parent.StartPoint().Row)
		ws := string(line[:leadingWhitespace(line)])
		if rule.Kind == settings.IndentPlus {
			return ws + strings.Repeat(style, int(rule.N)), nil
		}
		cut := len(style) * int(rule.N)
		if cut > len(ws) {
			return "", errors.WithStack(&CaptureError{
				Name: ctx.captureName(capture),
				Msg:  "unable to indent " + syntax.Describe(h.Node()) + ` with rule "` + rule.String() + `"`,
			})
		}
		return ws[:len(ws)-cut], nil
	}

	return "", errors.Errorf("unknown indent rule kind %d", rule.Kind)
}
