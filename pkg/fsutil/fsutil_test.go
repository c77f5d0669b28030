package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hongdown/pkg/fsutil"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and state", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "# hello\n")
		content, state, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, "# hello\n", string(content))
		assert.Equal(t, path, state.Path)
		assert.Equal(t, int64(len(content)), state.Size)
		assert.Equal(t, os.FileMode(0o644), state.Mode.Perm())
		assert.NotEqual(t, [32]byte{}, state.Hash)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := fsutil.ReadFile(ctx, writeFile(t, "x"))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestChanged(t *testing.T) {
	t.Parallel()

	t.Run("unchanged file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "same")
		_, state, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		changed, err := fsutil.Changed(context.Background(), state)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("rewritten file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "before")
		_, state, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("after!"), 0o644))
		changed, err := fsutil.Changed(context.Background(), state)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("same size and time but new content", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "aaaa")
		_, state, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("bbbb"), 0o644))
		require.NoError(t, os.Chtimes(path, time.Now(), state.ModTime))

		changed, err := fsutil.Changed(context.Background(), state)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("deleted file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "gone")
		_, state, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, os.Remove(path))
		changed, err := fsutil.Changed(context.Background(), state)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("nil state", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.Changed(context.Background(), nil)
		require.ErrorIs(t, err, fsutil.ErrNilState)
	})
}
