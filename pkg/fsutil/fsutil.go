// Package fsutil reads sources and writes formatted results back safely.
// It handles atomic writes, modification detection, and sidecar backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"os"
	"time"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNilFileInfo is returned when a nil FileInfo is passed.
	ErrNilFileInfo = errors.Base("nil FileInfo")

	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.Base("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.Base("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.Base("path is a directory")

	// ErrModified is returned when a file changed between read and write.
	ErrModified = errors.Base("file modified since it was read")
)

// FileInfo captures the state of a source file when it was read.
type FileInfo struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64

	// Hash is the SHA-256 of the content.
	Hash [32]byte
}

// ReadFile reads a file and returns its content along with metadata for
// later modification checks.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, nil, errors.WithDetails(ErrIsDirectory, "path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}

	return content, &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

func classify(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return errors.WithDetails(ErrNotFound, "path", path)
	case os.IsPermission(err):
		return errors.WithDetails(ErrPermissionDenied, "path", path)
	default:
		return errors.Errorf("read %s: %w", path, err)
	}
}

// CheckModified reports whether the file changed since info was taken.
// Mod time and size are compared first; the content hash settles ties.
func CheckModified(ctx context.Context, info *FileInfo) (bool, error) {
	if info == nil {
		return false, errors.WithStack(ErrNilFileInfo)
	}
	if err := ctx.Err(); err != nil {
		return false, errors.WithStack(err)
	}

	stat, err := os.Stat(info.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, errors.Errorf("stat %s: %w", info.Path, err)
	}

	if !stat.ModTime().Equal(info.ModTime) || stat.Size() != info.Size {
		return true, nil
	}

	content, err := os.ReadFile(info.Path)
	if err != nil {
		return false, errors.Errorf("read %s: %w", info.Path, err)
	}
	return sha256.Sum256(content) != info.Hash, nil
}
