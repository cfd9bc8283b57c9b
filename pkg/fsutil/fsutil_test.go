package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cookfmt/pkg/fsutil"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "main.rs")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns content and info", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "fn foo() {}\n")
		content, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "fn foo() {}\n", string(content))
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(len(content)), info.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(ctx, filepath.Join(t.TempDir(), "nope.rs"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(ctx, t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, _, err := fsutil.ReadFile(cancelled, writeFile(t, ""))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := fsutil.CheckModified(ctx, nil)
	require.ErrorIs(t, err, fsutil.ErrNilFileInfo)

	path := writeFile(t, "a")
	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.False(t, modified)

	require.NoError(t, os.WriteFile(path, []byte("ab"), 0o600))
	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)

	require.NoError(t, os.Remove(path))
	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestCheckModified_SameSizeAndTime(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeFile(t, "aaaa")
	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("bbbb"), 0o600))
	require.NoError(t, os.Chtimes(path, time.Now(), info.ModTime))

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified, "hash comparison catches same-size edits")
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes new file with default mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "new.go")
		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("package main\n"), 0))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "package main\n", string(got))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, stat.Mode().Perm())
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "old")
		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("new"), 0o600))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "main.rs", entries[0].Name())
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		err := fsutil.WriteAtomic(ctx, filepath.Join(t.TempDir(), "a", "b.rs"), []byte("x"), 0)
		require.Error(t, err)
	})
}

func TestWriteFormatted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes changed content", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "fn foo(){}\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		written, err := fsutil.WriteFormatted(ctx, info, []byte("fn foo ( ) { }\n"))
		require.NoError(t, err)
		assert.True(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "fn foo ( ) { }\n", string(got))
	})

	t.Run("skips unchanged content", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "fn foo() {}\n")
		content, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		written, err := fsutil.WriteFormatted(ctx, info, content)
		require.NoError(t, err)
		assert.False(t, written)
	})

	t.Run("refuses concurrent modification", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "fn foo() {}\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, []byte("fn bar() {}\n"), 0o600))

		_, err = fsutil.WriteFormatted(ctx, info, []byte("x"))
		require.ErrorIs(t, err, fsutil.ErrModified)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "fn bar() {}\n", string(got))
	})
}

func TestBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeFile(t, "v1")

	created, err := fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, path+".orig", fsutil.BackupPath(path))

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))

	created, err = fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.False(t, created, "an existing backup is kept")

	restored, err := fsutil.RestoreBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))
	assert.NoFileExists(t, fsutil.BackupPath(path))

	restored, err = fsutil.RestoreBackup(ctx, path)
	require.NoError(t, err)
	assert.False(t, restored)

	created, err = fsutil.CreateBackup(ctx, filepath.Join(t.TempDir(), "missing.rs"))
	require.NoError(t, err)
	assert.False(t, created)
}
