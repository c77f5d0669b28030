package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hongdown/pkg/diff"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		original      string
		formatted     string
		wantNil       bool
		wantAdditions int
		wantDeletions int
	}{
		{name: "identical", original: "a\nb\n", formatted: "a\nb\n", wantNil: true},
		{name: "both empty", wantNil: true},
		{name: "one line replaced", original: "# T\nbody\n", formatted: "T\n=\nbody\n", wantAdditions: 2, wantDeletions: 1},
		{name: "line added", original: "a\n", formatted: "a\nb\n", wantAdditions: 1},
		{name: "everything removed", original: "a\nb\n", formatted: "", wantDeletions: 2},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			d := diff.New("doc.md", testCase.original, testCase.formatted)
			if testCase.wantNil {
				assert.Nil(t, d)
				assert.False(t, d.HasChanges())
				return
			}
			require.NotNil(t, d)
			assert.True(t, d.HasChanges())
			assert.Equal(t, testCase.wantAdditions, d.Additions)
			assert.Equal(t, testCase.wantDeletions, d.Deletions)
		})
	}
}

func TestDiff_Unified(t *testing.T) {
	t.Parallel()

	d := diff.New("/docs/readme.md", "hello\nworld\n", "hello\nearth\n")
	require.NotNil(t, d)

	out, err := d.Unified()
	require.NoError(t, err)
	assert.Equal(t, "--- a/docs/readme.md\n+++ b/docs/readme.md\n@@ -1,2 +1,2 @@\n hello\n-world\n+earth\n", out)
	assert.Equal(t, "diff --git a/docs/readme.md b/docs/readme.md", d.GitHeader())
}

func TestDiff_UnifiedWithoutChanges(t *testing.T) {
	t.Parallel()

	var d *diff.Diff
	out, err := d.Unified()
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, d.GitHeader())
}
