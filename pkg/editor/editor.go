package editor

import (
	"bytes"
	"slices"

	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// ErrOutOfRange is returned when an edit addresses bytes outside the buffer.
var ErrOutOfRange = errors.Base("edit out of range")

// Editor owns a text buffer and the ordered log of edits applied to it.
// An Editor is not safe for concurrent use.
type Editor struct {
	buf   []byte
	edits []syntax.InputEdit
}

// New returns an editor over a copy of src.
func New(src []byte) *Editor {
	return &Editor{buf: bytes.Clone(src)}
}

// Insert inserts text at byte offset at, whose point is point.
func (e *Editor) Insert(at uint, point syntax.Point, text string) error {
	return e.apply(at, at, point, point, text)
}

// Remove deletes the bytes in r.
func (e *Editor) Remove(r syntax.Range) error {
	return e.apply(r.StartByte, r.EndByte, r.StartPoint, r.EndPoint, "")
}

// Replace replaces the bytes in r with text as a single edit.
func (e *Editor) Replace(r syntax.Range, text string) error {
	return e.apply(r.StartByte, r.EndByte, r.StartPoint, r.EndPoint, text)
}

func (e *Editor) apply(start, end uint, startPoint, endPoint syntax.Point, text string) error {
	if start > end || end > uint(len(e.buf)) {
		return errors.WithDetails(ErrOutOfRange, "start", start, "end", end, "len", len(e.buf))
	}

	edit := syntax.InputEdit{
		StartByte:      start,
		OldEndByte:     end,
		NewEndByte:     start + uint(len(text)),
		StartPosition:  startPoint,
		OldEndPosition: endPoint,
		NewEndPosition: EndPoint(text, startPoint),
	}

	e.buf = slices.Concat(e.buf[:start:start], []byte(text), e.buf[end:])
	e.edits = append(e.edits, edit)
	return nil
}

// Bytes returns the current buffer. The slice must not be modified.
func (e *Editor) Bytes() []byte {
	return e.buf
}

// String returns the current buffer as a string.
func (e *Editor) String() string {
	return string(e.buf)
}

// Len returns the number of edits in the log.
func (e *Editor) Len() int {
	return len(e.edits)
}

// Edits returns a copy of the edit log in application order.
func (e *Editor) Edits() []syntax.InputEdit {
	return slices.Clone(e.edits)
}

// Slice returns the current bytes in [start, end), clamped to the buffer.
func (e *Editor) Slice(start, end uint) []byte {
	n := uint(len(e.buf))
	end = min(end, n)
	start = min(start, end)
	return e.buf[start:end]
}

// LineStart returns the byte offset of the first byte of row.
func (e *Editor) LineStart(row uint) (uint, bool) {
	if row == 0 {
		return 0, true
	}
	seen := uint(0)
	for i, b := range e.buf {
		if b != '\n' {
			continue
		}
		seen++
		if seen == row {
			return uint(i) + 1, true
		}
	}
	return 0, false
}

// Line returns the contents of row without its terminating newline.
func (e *Editor) Line(row uint) []byte {
	start, ok := e.LineStart(row)
	if !ok {
		return nil
	}
	rest := e.buf[start:]
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}
