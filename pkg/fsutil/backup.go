package fsutil

import (
	"context"
	"os"

	"gitlab.com/tozd/go/errors"
)

// BackupSuffix is appended to a source path to name its backup.
const BackupSuffix = ".orig"

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies path to its sidecar backup unless one exists, so
// repeated runs keep the oldest content. It reports whether a backup was
// written.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.WithStack(err)
	}

	backupPath := BackupPath(path)
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Errorf("stat backup path: %w", err)
	}

	content, info, err := ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := WriteAtomic(ctx, backupPath, content, info.Mode.Perm()); err != nil {
		return false, errors.Errorf("write backup: %w", err)
	}
	return true, nil
}

// RestoreBackup puts the backup of path back in place and removes it.
// It reports whether a backup existed.
func RestoreBackup(ctx context.Context, path string) (bool, error) {
	backupPath := BackupPath(path)
	content, info, err := ReadFile(ctx, backupPath)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := WriteAtomic(ctx, path, content, info.Mode.Perm()); err != nil {
		return false, errors.Errorf("restore from backup: %w", err)
	}
	if err := os.Remove(backupPath); err != nil {
		return true, errors.Errorf("remove backup: %w", err)
	}
	return true, nil
}
