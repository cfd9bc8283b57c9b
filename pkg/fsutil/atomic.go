package fsutil

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// DefaultFileMode is used for new files when no mode is given.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic writes content to path through a temp file in the same
// directory followed by a rename. On error the original is untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return errors.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return errors.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return errors.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// WriteFormatted replaces a source read with ReadFile by its formatted
// content. It refuses when the file changed on disk in the meantime and
// reports whether anything was written.
func WriteFormatted(ctx context.Context, info *FileInfo, content []byte) (bool, error) {
	modified, err := CheckModified(ctx, info)
	if err != nil {
		return false, err
	}
	if modified {
		return false, errors.WithDetails(ErrModified, "path", info.Path)
	}

	if sha256.Sum256(content) == info.Hash {
		return false, nil
	}

	if err := WriteAtomic(ctx, info.Path, content, info.Mode.Perm()); err != nil {
		return false, err
	}
	return true, nil
}
