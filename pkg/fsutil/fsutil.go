// Package fsutil reads and rewrites Markdown files safely.
//
// A file is read together with a FileState snapshot. Before formatted
// content replaces the file, the snapshot is compared with the file on disk
// so that an edit made while the formatter ran is never overwritten.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrModified indicates the file changed on disk after it was read.
	ErrModified = errors.New("file modified since it was read")

	// ErrNilState is returned when a nil FileState is passed.
	ErrNilState = errors.New("nil FileState")
)

// FileState is what a file looked like when it was read.
type FileState struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64

	// Hash is the SHA-256 of the content.
	Hash [32]byte
}

// ReadFile reads a file and snapshots its state.
func ReadFile(ctx context.Context, path string) ([]byte, *FileState, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}

	return content, &FileState{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

// Changed reports whether the file differs from state. A quick mod time and
// size comparison runs first; the content is hashed only when both match.
// A deleted file counts as changed.
func Changed(ctx context.Context, state *FileState) (bool, error) {
	if state == nil {
		return false, ErrNilState
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}

	stat, err := os.Stat(state.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat %s: %w", state.Path, err)
	}
	if !stat.ModTime().Equal(state.ModTime) || stat.Size() != state.Size {
		return true, nil
	}

	content, err := os.ReadFile(state.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", state.Path, err)
	}
	return sha256.Sum256(content) != state.Hash, nil
}

func classify(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}
