package predicates

import (
	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/settings"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// IndentOffset implements `(#indent-offset! @nodes @anchor)`.
//
// It sets an offset indent-rule on every node of @nodes that aligns them
// with the single node captured by @anchor.
type IndentOffset struct{}

// Name implements Predicate.
func (IndentOffset) Name() string { return "indent-offset!" }

// Apply implements Predicate.
func (IndentOffset) Apply(ctx *Context, args []syntax.Arg) error {
	if len(args) != 2 {
		return errors.WithStack(&ArityError{Expected: "2", Got: len(args)})
	}

	anchorCapture, err := captureArg(ctx, args, 1)
	if err != nil {
		return err
	}
	anchors := ctx.Nodes.Nodes(anchorCapture)
	switch len(anchors) {
	case 0:
		return errors.WithStack(&CaptureError{Name: ctx.captureName(anchorCapture), Msg: "no node captured"})
	case 1:
	default:
		return errors.WithStack(&CaptureError{
			Name: ctx.captureName(anchorCapture),
			Msg:  "multiple nodes captured for offset",
		})
	}

	capture, err := captureArg(ctx, args, 0)
	if err != nil {
		return err
	}

	rule := settings.Offset(anchors[0].Id())
	for _, node := range ctx.Nodes.Nodes(capture) {
		if old, had := ctx.Settings.NodeEntry(node.Id()).SetIndentRule(rule); had {
			ctx.log().Warn("indent-rule overwritten", logging.FieldNode, syntax.Describe(&node), "old", old)
		}
		ctx.log().Debug("set indent-rule", logging.FieldNode, syntax.Describe(&node), "rule", rule)
	}
	return nil
}
