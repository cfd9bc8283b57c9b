package predicates

import (
	"strconv"

	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/pkg/syntax"
)

func describeArg(ctx *Context, arg syntax.Arg) string {
	if arg.Capture != nil {
		return "capture @" + ctx.captureName(*arg.Capture)
	}
	if arg.String != nil {
		return strconv.Quote(*arg.String)
	}
	return "nothing"
}

// captureArg returns the capture index of args[ix].
func captureArg(ctx *Context, args []syntax.Arg, ix int) (uint, error) {
	arg := args[ix]
	if arg.Capture == nil {
		return 0, errors.WithStack(&ArgError{Index: ix, Expected: "capture", Got: describeArg(ctx, arg)})
	}
	return *arg.Capture, nil
}

// stringArg returns the literal of args[ix].
func stringArg(ctx *Context, args []syntax.Arg, ix int) (string, error) {
	arg := args[ix]
	if arg.String == nil {
		return "", errors.WithStack(&ArgError{Index: ix, Expected: "string", Got: describeArg(ctx, arg)})
	}
	return *arg.String, nil
}

// singleNode returns the one node bound to the capture in args[ix].
func singleNode(ctx *Context, args []syntax.Arg, ix int) (syntax.Node, error) {
	id, err := captureArg(ctx, args, ix)
	if err != nil {
		return syntax.Node{}, err
	}

	nodes := ctx.Nodes.Nodes(id)
	switch len(nodes) {
	case 0:
		return syntax.Node{}, errors.WithStack(&ArgError{
			Index:    ix,
			Expected: "capture capturing single node",
			Got:      "capture capturing no node",
		})
	case 1:
		return nodes[0], nil
	default:
		return syntax.Node{}, errors.WithStack(&ArgError{
			Index:    ix,
			Expected: "capture capturing one node only",
			Got:      "capture capturing multiple nodes",
		})
	}
}

func isASCIIWhitespace(s string) bool {
	for i := range len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\f', '\r':
		default:
			return false
		}
	}
	return true
}

// leadingWhitespace returns the length of the ASCII whitespace run at the
// start of line.
func leadingWhitespace(line []byte) int {
	n := 0
	for n < len(line) && isASCIIWhitespace(string(line[n])) {
		n++
	}
	return n
}
