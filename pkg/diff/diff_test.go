package diff_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cookfmt/pkg/diff"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for identical content", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, diff.Generate("main.rs", nil, nil))

		content := []byte("fn a() {}\nfn b() {}\n")
		assert.Nil(t, diff.Generate("main.rs", content, content))
	})

	t.Run("single line change", func(t *testing.T) {
		t.Parallel()

		d := diff.Generate("main.rs", []byte("fn foo(){}\n"), []byte("fn foo ( ) { }\n"))
		require.NotNil(t, d)
		assert.True(t, d.HasChanges())
		require.Len(t, d.Hunks, 1)
		assert.Equal(t, 1, d.Additions)
		assert.Equal(t, 1, d.Deletions)

		want := "--- a/main.rs\n" +
			"+++ b/main.rs\n" +
			"@@ -1,1 +1,1 @@\n" +
			"-fn foo(){}\n" +
			"+fn foo ( ) { }\n"
		assert.Equal(t, want, d.String())
	})

	t.Run("addition keeps context", func(t *testing.T) {
		t.Parallel()

		d := diff.Generate("a.go", []byte("l1\nl2\n"), []byte("l1\nl2\nl3\n"))
		require.NotNil(t, d)
		assert.Contains(t, d.String(), "+l3\n")
		assert.Contains(t, d.String(), " l1\n")
		assert.Equal(t, 1, d.Additions)
		assert.Equal(t, 0, d.Deletions)
	})

	t.Run("distant changes split into hunks", func(t *testing.T) {
		t.Parallel()

		var orig, mod []string
		for ix := range 20 {
			line := strings.Repeat("x", ix+1)
			orig = append(orig, line)
			mod = append(mod, line)
		}
		mod[1] = "changed"
		mod[18] = "changed"

		d := diff.Generate("f.c", []byte(strings.Join(orig, "\n")+"\n"), []byte(strings.Join(mod, "\n")+"\n"))
		require.NotNil(t, d)
		require.Len(t, d.Hunks, 2)

		assert.Equal(t, 1, d.Hunks[0].OriginalStart)
		assert.Equal(t, "@@ -1,5 +1,5 @@", d.Hunks[0].Header())
		assert.Equal(t, 16, d.Hunks[1].OriginalStart)
		assert.Equal(t, 16, d.Hunks[1].ModifiedStart)
	})

	t.Run("distinct lines render full body", func(t *testing.T) {
		t.Parallel()

		var orig, mod []string
		for ix := 1; ix <= 12; ix++ {
			line := fmt.Sprintf("line %02d", ix)
			orig = append(orig, line)
			mod = append(mod, line)
		}
		mod[1] = "LINE 02"
		mod[10] = "LINE 11"

		d := diff.Generate("f.c", []byte(strings.Join(orig, "\n")+"\n"), []byte(strings.Join(mod, "\n")+"\n"))
		require.NotNil(t, d)
		assert.Equal(t, 2, d.Additions)
		assert.Equal(t, 2, d.Deletions)

		want := "--- a/f.c\n" +
			"+++ b/f.c\n" +
			"@@ -1,5 +1,5 @@\n" +
			" line 01\n" +
			"-line 02\n" +
			"+LINE 02\n" +
			" line 03\n" +
			" line 04\n" +
			" line 05\n" +
			"@@ -8,5 +8,5 @@\n" +
			" line 08\n" +
			" line 09\n" +
			" line 10\n" +
			"-line 11\n" +
			"+LINE 11\n" +
			" line 12\n"
		assert.Equal(t, want, d.String())
	})

	t.Run("git header", func(t *testing.T) {
		t.Parallel()

		d := diff.Generate("/src/main.rs", []byte("a\n"), []byte("b\n"))
		require.NotNil(t, d)
		assert.Equal(t, "diff --git a/src/main.rs b/src/main.rs", d.GitHeader())
		assert.True(t, strings.HasPrefix(d.FullString(), d.GitHeader()+"\n--- a/src/main.rs\n"))
	})
}

func TestNilDiff(t *testing.T) {
	t.Parallel()

	var d *diff.Diff
	assert.False(t, d.HasChanges())
	assert.Empty(t, d.String())
	assert.Empty(t, d.FullString())
	assert.Empty(t, d.GitHeader())
}

func TestLineKind_Prefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " ", diff.LineContext.Prefix())
	assert.Equal(t, "+", diff.LineAdd.Prefix())
	assert.Equal(t, "-", diff.LineRemove.Prefix())
}
