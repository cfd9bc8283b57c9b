package predicates

import (
	"strconv"

	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/pkg/editor"
	"github.com/yaklabco/cookfmt/pkg/settings"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// SpaceAll implements `(#space-all! @node ["sep"])`.
//
// Every pair of consecutive leaves under each captured node is separated
// by sep. Leaves whose immediate parent is ignored are skipped; deeper
// leaves of an ignored node are still spaced.
type SpaceAll struct{}

// Name implements Predicate.
func (SpaceAll) Name() string { return "space-all!" }

// Apply implements Predicate.
func (SpaceAll) Apply(ctx *Context, args []syntax.Arg) error {
	if len(args) != 1 && len(args) != 2 {
		return errors.WithStack(&ArityError{Expected: "1 or 2", Got: len(args)})
	}

	capture, err := captureArg(ctx, args, 0)
	if err != nil {
		return err
	}

	sep := " "
	if len(args) == 2 {
		if sep, err = stringArg(ctx, args, 1); err != nil {
			return err
		}
	}

	if isASCIIWhitespace(sep) {
		ctx.log().Debug("spacing all leaves", "sep", strconv.Quote(sep))
	} else {
		ctx.log().Warn("spacing with non-ASCII-whitespace separator", "sep", strconv.Quote(sep))
	}

	for _, node := range ctx.Nodes.Nodes(capture) {
		if err := spaceAll(ctx.Editor, ctx.Settings, node, sep); err != nil {
			return err
		}
	}
	return nil
}

func spaceAll(ed *editor.Editor, s *settings.Settings, node syntax.Node, sep string) error {
	leaves := syntax.Leaves(&node, func(leaf *syntax.Node) bool {
		parent := leaf.Parent()
		return parent != nil && s.IsIgnored(parent.Id())
	})
	if len(leaves) == 0 {
		return nil
	}

	prev := ed.TrackSynced(leaves[0])
	for _, leaf := range leaves[1:] {
		next := ed.TrackSynced(leaf)
		err := ed.Replace(syntax.Range{
			StartByte:  prev.EndByte(),
			EndByte:    next.StartByte(),
			StartPoint: prev.EndPoint(),
			EndPoint:   next.StartPoint(),
		}, sep)
		if err != nil {
			return err
		}
		if err := ed.SyncLast(next); err != nil {
			return err
		}
		prev = next
	}
	return nil
}
