// Package editor owns the mutable source text and the log of edits applied
// to it, and keeps node coordinates valid as that text changes.
package editor

import (
	"unicode/utf8"

	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// EndPoint returns the point reached by writing text starting at start.
// Rows advance on '\n' only; columns advance by the UTF-8 byte length of
// each character.
func EndPoint(text string, start syntax.Point) syntax.Point {
	end := start
	for _, r := range text {
		if r == '\n' {
			end.Row++
			end.Column = 0
			continue
		}
		end.Column += uint(utf8.RuneLen(r))
	}
	return end
}

func isPureInsertion(e syntax.InputEdit) bool {
	return e.StartByte == e.OldEndByte
}

// Reposition returns r corrected for a single edit e.
//
// Positions before the edit are unchanged. Positions at or after the old
// end shift by the edit's delta. Positions inside the replaced span
// collapse to the new end. A pure insertion at a node's start moves the
// node right; a pure insertion at a node's end does not extend it.
func Reposition(r syntax.Range, e syntax.InputEdit) syntax.Range {
	out := r
	out.StartByte, out.StartPoint = movePosition(r.StartByte, r.StartPoint, e, true)
	out.EndByte, out.EndPoint = movePosition(r.EndByte, r.EndPoint, e, false)
	if out.EndByte < out.StartByte {
		out.EndByte, out.EndPoint = out.StartByte, out.StartPoint
	}
	return out
}

func movePosition(b uint, p syntax.Point, e syntax.InputEdit, isStart bool) (uint, syntax.Point) {
	switch {
	case b < e.StartByte:
		return b, p
	case b == e.StartByte && !(isStart && isPureInsertion(e)):
		return b, p
	case b >= e.OldEndByte:
		return e.NewEndByte + (b - e.OldEndByte), shiftPoint(p, e)
	default:
		return e.NewEndByte, e.NewEndPosition
	}
}

func shiftPoint(p syntax.Point, e syntax.InputEdit) syntax.Point {
	if p.Row == e.OldEndPosition.Row {
		return syntax.Point{
			Row:    e.NewEndPosition.Row,
			Column: e.NewEndPosition.Column + (p.Column - e.OldEndPosition.Column),
		}
	}
	return syntax.Point{
		Row:    e.NewEndPosition.Row + (p.Row - e.OldEndPosition.Row),
		Column: p.Column,
	}
}
