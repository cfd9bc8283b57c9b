package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cookfmt/pkg/config"
)

func TestMode_IsValid(t *testing.T) {
	t.Parallel()

	for _, mode := range []config.Mode{config.ModePrint, config.ModeWrite, config.ModeDiff, config.ModeCheck} {
		assert.True(t, mode.IsValid(), mode)
	}
	assert.False(t, config.Mode("fix").IsValid())
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies", func(t *testing.T) {
		t.Parallel()

		style := "\t"
		cpl := uint(80)
		original := config.NewConfig()
		original.Queries["rust"] = "rust.scm"
		original.Exclude = []string{"vendor/**"}
		original.Defaults = config.Defaults{IndentStyle: &style, Cpl: &cpl}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)

		clone.Queries["go"] = "go.scm"
		clone.Exclude[0] = "target/**"
		*clone.Defaults.IndentStyle = "  "
		*clone.Defaults.Cpl = 100

		assert.NotContains(t, original.Queries, "go")
		assert.Equal(t, "vendor/**", original.Exclude[0])
		assert.Equal(t, "\t", *original.Defaults.IndentStyle)
		assert.Equal(t, uint(80), *original.Defaults.Cpl)
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
language: rust
queries:
  rust: queries/rust.scm
extensions:
  .h: c
exclude:
  - "vendor/**"
jobs: 4
backup: true
defaults:
  indent_style: "    "
  cpl: 100
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "rust", cfg.Language)
	assert.Equal(t, map[string]string{"rust": "queries/rust.scm"}, cfg.Queries)
	assert.Equal(t, map[string]string{".h": "c"}, cfg.Extensions)
	assert.Equal(t, []string{"vendor/**"}, cfg.Exclude)
	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.Backup)
	require.NotNil(t, cfg.Defaults.IndentStyle)
	assert.Equal(t, "    ", *cfg.Defaults.IndentStyle)
	require.NotNil(t, cfg.Defaults.Cpl)
	assert.Equal(t, uint(100), *cfg.Defaults.Cpl)
	assert.Equal(t, config.ModePrint, cfg.Mode)
}

func TestFromYAML_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("rules:\n  MD001: {}\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.FromYAML([]byte("jobs: many\n"))
	require.Error(t, err)

	cfg, err := config.FromYAML([]byte("  \n"))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Queries)
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	style := "  "
	cfg := config.NewConfig()
	cfg.Language = "go"
	cfg.Queries["go"] = "go.scm"
	cfg.Defaults.IndentStyle = &style
	cfg.Query = "not persisted"

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "not persisted")

	back, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "go", back.Language)
	assert.Equal(t, "go.scm", back.Queries["go"])
	assert.Equal(t, "  ", *back.Defaults.IndentStyle)
	assert.Empty(t, back.Query)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	tmpl := config.GenerateTemplate(config.TemplateOptions{
		Languages:   []string{"rust", "go"},
		IndentStyle: "\t",
		Cpl:         100,
	})

	cfg, err := config.FromYAML(tmpl)
	require.NoError(t, err)
	assert.Equal(t, "queries/rust.scm", cfg.Queries["rust"])
	assert.Equal(t, "queries/go.scm", cfg.Queries["go"])
	assert.Equal(t, []string{"vendor/**", "target/**"}, cfg.Exclude)
	assert.Equal(t, "\t", *cfg.Defaults.IndentStyle)
	assert.Equal(t, uint(100), *cfg.Defaults.Cpl)

	minimal, err := config.FromYAML(config.GenerateTemplate(config.TemplateOptions{}))
	require.NoError(t, err)
	assert.Empty(t, minimal.Queries)
	assert.Nil(t, minimal.Defaults.IndentStyle)
}
