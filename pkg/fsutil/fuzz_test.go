package fsutil_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/hongdown/pkg/fsutil"
)

// FuzzReplace checks that Replace leaves exactly the new content on disk
// and reports a write only when the content differs.
func FuzzReplace(f *testing.F) {
	f.Add([]byte("# Title\n"), []byte("Title\n=====\n"))
	f.Add([]byte("same\n"), []byte("same\n"))
	f.Add([]byte(""), []byte("text\n"))
	f.Add([]byte("line  \r\n"), []byte("\x00\x01"))

	f.Fuzz(func(t *testing.T, original, formatted []byte) {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "doc.md")
		if err := os.WriteFile(path, original, 0o600); err != nil {
			t.Fatalf("seed file: %v", err)
		}

		read, state, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}

		written, err := fsutil.Replace(ctx, state, formatted, read)
		if err != nil {
			t.Fatalf("Replace failed: %v", err)
		}
		if written == bytes.Equal(original, formatted) {
			t.Errorf("written = %v for original %q and formatted %q", written, original, formatted)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if !bytes.Equal(got, formatted) {
			t.Errorf("content mismatch: got %d bytes, want %d", len(got), len(formatted))
		}
	})
}
