package settings_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/pkg/settings"
)

func TestParseCpl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    settings.Cpl
		wantErr error
	}{
		{input: "0", want: 0},
		{input: "32", want: 32},
		{input: "79", want: 79},
		{input: "128", want: 128},
		{input: "133", wantErr: settings.ErrCplTooBig},
		{input: "255", wantErr: settings.ErrCplTooBig},
		{input: "29", wantErr: settings.ErrCplTooLittle},
		{input: "1", wantErr: settings.ErrCplTooLittle},
		{input: "XXX", wantErr: strconv.ErrSyntax},
		{input: "256", wantErr: strconv.ErrRange},
		{input: "-1", wantErr: strconv.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := settings.ParseCpl(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCpl_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unlimited", settings.Cpl(0).String())
	assert.True(t, settings.Cpl(0).Unlimited())
	assert.Equal(t, "79", settings.Cpl(79).String())
	assert.False(t, settings.Cpl(79).Unlimited())
}

func TestParseIndentRule(t *testing.T) {
	t.Parallel()

	ops := []struct {
		op   string
		make func(uint8) settings.IndentRule
	}{
		{"=", settings.Absolute},
		{"+", settings.Plus},
		{"-", settings.Minus},
	}

	for _, o := range ops {
		t.Run(o.op, func(t *testing.T) {
			t.Parallel()

			got, err := settings.ParseIndentRule(o.op + "0")
			require.NoError(t, err)
			assert.Equal(t, o.make(0), got)

			got, err = settings.ParseIndentRule(o.op + "12")
			require.NoError(t, err)
			assert.Equal(t, o.make(12), got)
			assert.Equal(t, o.op+"12", got.String())

			_, err = settings.ParseIndentRule(o.op + "-1")
			var nonDigit *settings.NonDigitError
			require.True(t, errors.As(err, &nonDigit))
			assert.Equal(t, '-', nonDigit.Char)

			_, err = settings.ParseIndentRule(o.op)
			require.ErrorIs(t, err, settings.ErrIndentRuleValue)

			_, err = settings.ParseIndentRule(o.op + "256")
			require.ErrorIs(t, err, strconv.ErrRange)
		})
	}
}

func TestParseIndentRule_Errors(t *testing.T) {
	t.Parallel()

	_, err := settings.ParseIndentRule("")
	require.ErrorIs(t, err, settings.ErrIndentRuleEmpty)

	_, err = settings.ParseIndentRule("#")
	require.ErrorIs(t, err, settings.ErrIndentRuleValue)

	_, err = settings.ParseIndentRule("#0")
	var opErr *settings.OperatorError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, '#', opErr.Op)
	assert.Equal(t, `invalid operator '#'`, opErr.Error())
}

func TestIndentRule_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "=2", settings.Absolute(2).String())
	assert.Equal(t, "+1", settings.Plus(1).String())
	assert.Equal(t, "-3", settings.Minus(3).String())
	assert.Equal(t, "#42", settings.Offset(42).String())
}

func TestScope(t *testing.T) {
	t.Parallel()

	assert.Equal(t, settings.Local, settings.ScopeFor(true))
	assert.Equal(t, settings.Global, settings.ScopeFor(false))
	assert.Equal(t, "local", settings.Local.String())
	assert.Equal(t, "global", settings.Global.String())
}

func TestSettings_Resolution(t *testing.T) {
	t.Parallel()

	for _, globalSet := range []bool{false, true} {
		for _, localSet := range []bool{false, true} {
			s := settings.New()
			if globalSet {
				s.SetCpl(40, settings.Global)
				s.SetIndentStyle("\t", settings.Global)
			}
			if localSet {
				s.SetCpl(0, settings.Local)
				s.SetIndentStyle("  ", settings.Local)
			}

			cpl, hasCpl := s.Cpl()
			style, hasStyle := s.IndentStyle()
			switch {
			case localSet:
				assert.True(t, hasCpl)
				assert.Equal(t, settings.Cpl(0), cpl)
				assert.True(t, hasStyle)
				assert.Equal(t, "  ", style)
			case globalSet:
				assert.True(t, hasCpl)
				assert.Equal(t, settings.Cpl(40), cpl)
				assert.Equal(t, "\t", style)
			default:
				assert.False(t, hasCpl)
				assert.False(t, hasStyle)
			}

			s.Reset()
			cpl, hasCpl = s.Cpl()
			assert.Equal(t, globalSet, hasCpl)
			if globalSet {
				assert.Equal(t, settings.Cpl(40), cpl)
			}
		}
	}
}

func TestSettings_SetReturnsPrevious(t *testing.T) {
	t.Parallel()

	s := settings.New()

	_, had := s.SetCpl(79, settings.Global)
	assert.False(t, had)

	old, had := s.SetCpl(90, settings.Global)
	assert.True(t, had)
	assert.Equal(t, settings.Cpl(79), old)

	_, had = s.SetCpl(100, settings.Local)
	assert.False(t, had, "local slot is independent of global")

	_, had = s.SetIndentStyle("  ", settings.Local)
	assert.False(t, had)
	oldStyle, had := s.SetIndentStyle("\t", settings.Local)
	assert.True(t, had)
	assert.Equal(t, "  ", oldStyle)
}

func TestSettings_Defaults(t *testing.T) {
	t.Parallel()

	cpl := settings.Cpl(80)
	style := "    "
	s := settings.NewWithDefaults(settings.Options{Cpl: &cpl, IndentStyle: &style})

	got, ok := s.Cpl()
	require.True(t, ok)
	assert.Equal(t, cpl, got)

	s.SetCpl(100, settings.Global)
	assert.Equal(t, settings.Cpl(80), cpl, "defaults are not mutated")
}

func TestSettings_NodeTable(t *testing.T) {
	t.Parallel()

	s := settings.New()

	_, ok := s.ForNode(7)
	assert.False(t, ok)
	assert.False(t, s.IsIgnored(7))

	entry := s.NodeEntry(7)
	assert.False(t, entry.Ignore(true))
	assert.True(t, entry.Ignore(true), "second write reports the overwrite")
	assert.True(t, s.IsIgnored(7))

	_, had := entry.SetIndentRule(settings.Plus(1))
	assert.False(t, had)
	old, had := s.NodeEntry(7).SetIndentRule(settings.Absolute(2))
	assert.True(t, had)
	assert.Equal(t, settings.Plus(1), old)

	got, ok := s.ForNode(7)
	require.True(t, ok)
	rule, ok := got.IndentRule()
	require.True(t, ok)
	assert.Equal(t, settings.Absolute(2), rule)
	assert.True(t, got.Ignored())

	s.Reset()
	assert.True(t, s.IsIgnored(7), "reset leaves node settings alone")
}
