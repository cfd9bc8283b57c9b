package pretty_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cookfmt/internal/ui/pretty"
	"github.com/yaklabco/cookfmt/pkg/diff"
	"github.com/yaklabco/cookfmt/pkg/runner"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	assert.Equal(t, "test", styles.Bold.Render("test"))
	assert.Equal(t, "test", styles.Error.Render("test"))
	assert.Equal(t, "test", styles.DiffAdd.Render("test"))
}

func TestIsColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled(pretty.ColorAlways, &buf))
	assert.False(t, pretty.IsColorEnabled(pretty.ColorNever, os.Stdout))
	assert.False(t, pretty.IsColorEnabled(pretty.ColorAuto, &buf), "buffer is not a TTY")
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled(pretty.ColorAuto, os.Stdout))
	assert.True(t, pretty.IsColorEnabled(pretty.ColorAlways, os.Stdout), "always overrides NO_COLOR")
}

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	d := diff.Generate("/src/main.rs", []byte("fn a(){}\n"), []byte("fn a() {}\n"))
	require.NotNil(t, d)

	want := "diff --git a/src/main.rs b/src/main.rs\n" +
		"--- a/src/main.rs\n" +
		"+++ b/src/main.rs\n" +
		"@@ -1,1 +1,1 @@\n" +
		"-fn a(){}\n" +
		"+fn a() {}\n"
	assert.Equal(t, want, styles.FormatDiff(d, ""))

	assert.Contains(t, styles.FormatDiff(d, "main.rs"), "diff --git a/main.rs b/main.rs\n")
	assert.Empty(t, styles.FormatDiff(nil, "x"))
}

func TestFormatDiffStat(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "1 file changed, 1 insertion(+), 2 deletions(-)", styles.FormatDiffStat(1, 1, 2))
	assert.Equal(t, "3 files changed", styles.FormatDiffStat(3, 0, 0))
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	tests := []struct {
		name  string
		stats runner.Stats
		wrote bool
		want  string
	}{
		{
			name:  "clean",
			stats: runner.Stats{FilesProcessed: 4},
			want:  "all formatted (4 files checked)\n",
		},
		{
			name:  "needs formatting",
			stats: runner.Stats{FilesProcessed: 12, FilesChanged: 3},
			want:  "3 of 12 files need formatting\n",
		},
		{
			name:  "one needs formatting",
			stats: runner.Stats{FilesProcessed: 1, FilesChanged: 1},
			want:  "1 of 1 file needs formatting\n",
		},
		{
			name:  "written with failure",
			stats: runner.Stats{FilesProcessed: 5, FilesChanged: 2, FilesWritten: 2, FilesErrored: 1},
			wrote: true,
			want:  "formatted 2 of 5 files, 1 failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats, tt.wrote))
		})
	}
}

func TestFormatFileError(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "a.rs: error: boom", styles.FormatFileError("a.rs", errors.New("boom")))
}
