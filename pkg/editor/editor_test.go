package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cookfmt/pkg/editor"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

func pt(row, col uint) syntax.Point {
	return syntax.Point{Row: row, Column: col}
}

func rng(start, end uint, sp, ep syntax.Point) syntax.Range {
	return syntax.Range{StartByte: start, EndByte: end, StartPoint: sp, EndPoint: ep}
}

func TestEndPoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		start syntax.Point
		want  syntax.Point
	}{
		{"empty", "", pt(3, 4), pt(3, 4)},
		{"ascii", "abc", pt(0, 0), pt(0, 3)},
		{"multibyte columns count bytes", "💣💥", pt(0, 0), pt(0, 8)},
		{"newline", "\n", pt(0, 0), pt(1, 0)},
		{"newline resets column", "ab\ncd", pt(2, 7), pt(3, 2)},
		{"only LF advances rows", "\r\u000b\u000c\u0085\u2028\u2029", pt(0, 0), pt(0, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, editor.EndPoint(tt.text, tt.start))
		})
	}
}

func TestEditor_Insert(t *testing.T) {
	t.Parallel()

	ed := editor.New([]byte("fn f()\n{}"))

	require.NoError(t, ed.Insert(5, pt(0, 5), "bar: Bar"))
	assert.Equal(t, "fn f(bar: Bar)\n{}", ed.String())

	require.NoError(t, ed.Insert(4, pt(0, 4), "oo"))
	assert.Equal(t, "fn foo(bar: Bar)\n{}", ed.String())

	require.NoError(t, ed.Insert(18, pt(1, 1), " baz(); "))
	assert.Equal(t, "fn foo(bar: Bar)\n{ baz(); }", ed.String())

	require.NoError(t, ed.Insert(0, pt(0, 0), "pub\n"))
	assert.Equal(t, "pub\nfn foo(bar: Bar)\n{ baz(); }", ed.String())

	edits := ed.Edits()
	require.Len(t, edits, 4)
	assert.Equal(t, syntax.InputEdit{
		StartByte:      5,
		OldEndByte:     5,
		NewEndByte:     13,
		StartPosition:  pt(0, 5),
		OldEndPosition: pt(0, 5),
		NewEndPosition: pt(0, 13),
	}, edits[0])
	assert.Equal(t, pt(1, 0), edits[3].NewEndPosition)
	assert.Equal(t, uint(4), edits[3].NewEndByte)
}

func TestEditor_Remove(t *testing.T) {
	t.Parallel()

	ed := editor.New([]byte("pub\nfn foo(bar: Bar)\n{ baz(); }"))

	require.NoError(t, ed.Remove(rng(11, 19, pt(1, 7), pt(1, 15))))
	assert.Equal(t, "pub\nfn foo()\n{ baz(); }", ed.String())

	require.NoError(t, ed.Remove(rng(14, 22, pt(2, 1), pt(2, 9))))
	assert.Equal(t, "pub\nfn foo()\n{}", ed.String())

	require.NoError(t, ed.Remove(rng(0, 4, pt(0, 0), pt(1, 0))))
	assert.Equal(t, "fn foo()\n{}", ed.String())

	require.NoError(t, ed.Remove(rng(4, 6, pt(0, 4), pt(0, 6))))
	assert.Equal(t, "fn f()\n{}", ed.String())

	last := ed.Edits()[3]
	assert.Equal(t, last.StartByte, last.NewEndByte)
	assert.Equal(t, last.StartPosition, last.NewEndPosition)
	assert.Equal(t, uint(6), last.OldEndByte)
}

func TestEditor_Replace(t *testing.T) {
	t.Parallel()

	ed := editor.New([]byte("pub\nfn foo(bar: Bar)\n{ baz(); }"))

	require.NoError(t, ed.Replace(rng(11, 19, pt(1, 7), pt(1, 15)), ""))
	assert.Equal(t, "pub\nfn foo()\n{ baz(); }", ed.String())

	require.NoError(t, ed.Replace(rng(15, 21, pt(2, 2), pt(2, 8)), `"foo"`))
	assert.Equal(t, "pub\nfn foo()\n{ \"foo\" }", ed.String())

	require.NoError(t, ed.Replace(rng(12, 13, pt(1, 8), pt(2, 0)), " -> &'static str "))
	assert.Equal(t, "pub\nfn foo() -> &'static str { \"foo\" }", ed.String())

	require.NoError(t, ed.Replace(rng(0, 4, pt(0, 0), pt(1, 0)), ""))
	assert.Equal(t, "fn foo() -> &'static str { \"foo\" }", ed.String())

	require.Equal(t, 4, ed.Len())
	third := ed.Edits()[2]
	assert.Equal(t, uint(13), third.OldEndByte)
	assert.Equal(t, uint(12+len(" -> &'static str ")), third.NewEndByte)
	assert.Equal(t, pt(1, 25), third.NewEndPosition)
}

func TestEditor_OutOfRange(t *testing.T) {
	t.Parallel()

	ed := editor.New([]byte("abc"))

	err := ed.Insert(4, pt(0, 4), "x")
	require.ErrorIs(t, err, editor.ErrOutOfRange)

	err = ed.Remove(rng(2, 1, pt(0, 2), pt(0, 1)))
	require.ErrorIs(t, err, editor.ErrOutOfRange)

	assert.Equal(t, "abc", ed.String())
	assert.Zero(t, ed.Len())
}

func TestEditor_New_CopiesSource(t *testing.T) {
	t.Parallel()

	src := []byte("abc")
	ed := editor.New(src)
	require.NoError(t, ed.Insert(0, pt(0, 0), "x"))
	assert.Equal(t, "abc", string(src))
	assert.Equal(t, "xabc", string(ed.Bytes()))
}

func TestEditor_Lines(t *testing.T) {
	t.Parallel()

	ed := editor.New([]byte("one\n  two\n\nfour"))

	start, ok := ed.LineStart(1)
	require.True(t, ok)
	assert.Equal(t, uint(4), start)

	assert.Equal(t, "one", string(ed.Line(0)))
	assert.Equal(t, "  two", string(ed.Line(1)))
	assert.Empty(t, ed.Line(2))
	assert.Equal(t, "four", string(ed.Line(3)))

	_, ok = ed.LineStart(4)
	assert.False(t, ok)
	assert.Nil(t, ed.Line(9))

	assert.Equal(t, "two", string(ed.Slice(6, 9)))
	assert.Equal(t, "four", string(ed.Slice(11, 100)))
}
