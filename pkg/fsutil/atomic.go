package fsutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode for newly created files.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic replaces path with content through a temp file in the same
// directory and a rename. A zero mode means DefaultFileMode. On error the
// target is left untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write atomic: %w", err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
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
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// Replace writes formatted content over the file described by state,
// keeping its mode. It returns false without writing when the content is
// already identical, and ErrModified when the file changed since it was read.
func Replace(ctx context.Context, state *FileState, content []byte, original []byte) (bool, error) {
	if state == nil {
		return false, ErrNilState
	}
	if bytes.Equal(original, content) {
		return false, nil
	}

	changed, err := Changed(ctx, state)
	if err != nil {
		return false, err
	}
	if changed {
		return false, fmt.Errorf("%w: %s", ErrModified, state.Path)
	}

	if err := WriteAtomic(ctx, state.Path, content, state.Mode.Perm()); err != nil {
		return false, err
	}
	return true, nil
}
