package settings_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/internal/logging"
	"github.com/yaklabco/cookfmt/pkg/settings"
	"github.com/yaklabco/cookfmt/pkg/syntax"
)

func strptr(s string) *string { return &s }

func uintptrTo(n uint) *uint { return &n }

// fnContext parses a function and exposes its name node as capture 0.
func fnContext(t *testing.T, scope settings.Scope) (*settings.Context, *bytes.Buffer, syntax.Node) {
	t.Helper()

	src := "fn foo() {}"
	tree, err := syntax.Parse(syntax.Rust, []byte(src))
	require.NoError(t, err)
	t.Cleanup(tree.Close)

	fn := tree.RootNode().Child(0)
	require.NotNil(t, fn)
	name := fn.ChildByFieldName("name")
	require.NotNil(t, name)

	var logs bytes.Buffer
	ctx := &settings.Context{
		Scope:    scope,
		Nodes:    syntax.NewProvider(syntax.Match{Captures: []syntax.Capture{{Index: 0, Node: *name}}}),
		Settings: settings.New(),
		Logger:   logging.NewWithWriter(&logs, "debug"),
	}
	return ctx, &logs, *name
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := settings.NewDefaultRegistry()

	var keys []string
	for _, p := range reg.Parsers() {
		keys = append(keys, p.Key())
	}
	assert.Equal(t, []string{"cpl", "ignored", "indent-rule", "indent-style"}, keys)

	ctx, _, _ := fnContext(t, settings.Global)
	err := reg.Parse(ctx, syntax.Property{Key: "tabs", Value: strptr("yes")})
	var keyErr *settings.UnknownKeyError
	require.True(t, errors.As(err, &keyErr))
	assert.Equal(t, `invalid setting key "tabs"`, err.Error())
}

func TestCplParser(t *testing.T) {
	t.Parallel()

	reg := settings.NewDefaultRegistry()

	t.Run("sets scope slot and warns on overwrite", func(t *testing.T) {
		t.Parallel()

		ctx, logs, _ := fnContext(t, settings.Local)
		require.NoError(t, reg.Parse(ctx, syntax.Property{Key: "cpl", Value: strptr("79")}))
		require.NoError(t, reg.Parse(ctx, syntax.Property{Key: "cpl", Value: strptr("0")}))

		cpl, ok := ctx.Settings.Cpl()
		require.True(t, ok)
		assert.True(t, cpl.Unlimited())
		assert.Contains(t, logs.String(), "cpl overwritten")

		ctx.Settings.Reset()
		_, ok = ctx.Settings.Cpl()
		assert.False(t, ok)
	})

	t.Run("rejects capture", func(t *testing.T) {
		t.Parallel()

		ctx, _, _ := fnContext(t, settings.Global)
		err := reg.Parse(ctx, syntax.Property{Key: "cpl", Value: strptr("79"), Capture: uintptrTo(0)})
		require.ErrorIs(t, err, settings.ErrCaptureNotAllowed)
	})

	t.Run("requires value", func(t *testing.T) {
		t.Parallel()

		ctx, _, _ := fnContext(t, settings.Global)
		err := reg.Parse(ctx, syntax.Property{Key: "cpl"})
		var valErr *settings.ValueError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "invalid value; expected cpl, got no value", valErr.Error())
	})

	t.Run("wraps range errors", func(t *testing.T) {
		t.Parallel()

		ctx, _, _ := fnContext(t, settings.Global)
		err := reg.Parse(ctx, syntax.Property{Key: "cpl", Value: strptr("133")})
		require.ErrorIs(t, err, settings.ErrCplTooBig)
		assert.Contains(t, err.Error(), `got "133": cpl is too big`)
	})
}

func TestIndentStyleParser(t *testing.T) {
	t.Parallel()

	reg := settings.NewDefaultRegistry()
	ctx, _, _ := fnContext(t, settings.Global)

	require.NoError(t, reg.Parse(ctx, syntax.Property{Key: "indent-style", Value: strptr("  ")}))
	style, ok := ctx.Settings.IndentStyle()
	require.True(t, ok)
	assert.Equal(t, "  ", style)

	err := reg.Parse(ctx, syntax.Property{Key: "indent-style", Value: strptr("")})
	var valErr *settings.ValueError
	require.True(t, errors.As(err, &valErr))

	err = reg.Parse(ctx, syntax.Property{Key: "indent-style", Value: strptr("\t"), Capture: uintptrTo(0)})
	require.ErrorIs(t, err, settings.ErrCaptureNotAllowed)
}

func TestIgnoredParser(t *testing.T) {
	t.Parallel()

	reg := settings.NewDefaultRegistry()
	ctx, logs, name := fnContext(t, settings.Global)

	err := reg.Parse(ctx, syntax.Property{Key: "ignored"})
	require.ErrorIs(t, err, settings.ErrCaptureMissing)

	err = reg.Parse(ctx, syntax.Property{Key: "ignored", Capture: uintptrTo(0), Value: strptr("yes")})
	var valErr *settings.ValueError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "no value", valErr.Expected)

	require.NoError(t, reg.Parse(ctx, syntax.Property{Key: "ignored", Capture: uintptrTo(0)}))
	assert.True(t, ctx.Settings.IsIgnored(name.Id()))
	assert.NotContains(t, logs.String(), "ignored overwritten")

	require.NoError(t, reg.Parse(ctx, syntax.Property{Key: "ignored", Capture: uintptrTo(0)}))
	assert.Contains(t, logs.String(), "ignored overwritten")
}

func TestIndentRuleParser(t *testing.T) {
	t.Parallel()

	reg := settings.NewDefaultRegistry()
	ctx, logs, name := fnContext(t, settings.Local)

	require.NoError(t, reg.Parse(ctx, syntax.Property{Key: "indent-rule", Capture: uintptrTo(0), Value: strptr("+1")}))
	require.NoError(t, reg.Parse(ctx, syntax.Property{Key: "indent-rule", Capture: uintptrTo(0), Value: strptr("=2")}))

	entry, ok := ctx.Settings.ForNode(name.Id())
	require.True(t, ok)
	rule, ok := entry.IndentRule()
	require.True(t, ok)
	assert.Equal(t, settings.Absolute(2), rule)
	assert.Contains(t, logs.String(), "indent-rule overwritten")

	err := reg.Parse(ctx, syntax.Property{Key: "indent-rule", Capture: uintptrTo(0), Value: strptr("*1")})
	var opErr *settings.OperatorError
	require.True(t, errors.As(err, &opErr))

	err = reg.Parse(ctx, syntax.Property{Key: "indent-rule", Value: strptr("+1")})
	require.ErrorIs(t, err, settings.ErrCaptureMissing)

	err = reg.Parse(ctx, syntax.Property{Key: "indent-rule", Capture: uintptrTo(0)})
	var valErr *settings.ValueError
	require.True(t, errors.As(err, &valErr))
}
