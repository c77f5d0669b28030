package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hongdown/pkg/hongdown"
	"github.com/yaklabco/hongdown/pkg/reporter"
	"github.com/yaklabco/hongdown/pkg/runner"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:      "/work/a.md",
				Original:  "# A\n",
				Formatted: "A\n=\n",
				Changed:   true,
			},
			{
				Path:      "/work/docs/b.md",
				Original:  "| a |\n| - |\n| 1 | 2 |\n",
				Formatted: "| a |\n| - |\n| 1 | 2 |\n",
				Warnings:  []hongdown.Warning{{Line: 3, Message: "table row has 2 columns, expected 1 columns"}},
			},
			{
				Path:  "/work/c.md",
				Error: errors.New("permission denied"),
			},
		},
		Stats: runner.Stats{FilesDiscovered: 3, FilesFormatted: 2, FilesChanged: 1, FilesErrored: 1, WarningsTotal: 1},
	}
}

func newReporter(t *testing.T, format reporter.Format, buf *bytes.Buffer) reporter.Reporter {
	t.Helper()

	rep, err := reporter.New(reporter.Options{
		Writer:      buf,
		Format:      format,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  "/work",
	})
	require.NoError(t, err)
	return rep
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	changed, err := newReporter(t, reporter.FormatText, &buf).Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	want := "would reformat a.md\n" +
		"docs/b.md:3: warning: table row has 2 columns, expected 1 columns\n" +
		"c.md: error: permission denied\n" +
		"1 file would be reformatted, 1 warning, 1 error, 3 files checked\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_NoFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	changed, err := newReporter(t, reporter.FormatText, &buf).Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, changed)
	assert.Equal(t, "No files to format.\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	changed, err := newReporter(t, reporter.FormatJSON, &buf).Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Files, 3)
	assert.Equal(t, "a.md", out.Files[0].Path)
	assert.True(t, out.Files[0].Changed)
	assert.Empty(t, out.Files[0].Warnings)
	assert.Equal(t, 3, out.Files[1].Warnings[0].Line)
	assert.Equal(t, "permission denied", out.Files[2].Error)
	assert.Equal(t, reporter.JSONSummary{
		FilesChecked: 3, FilesChanged: 1, FilesErrored: 1, TotalWarnings: 1,
	}, out.Summary)
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	changed, err := newReporter(t, reporter.FormatDiff, &buf).Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	want := "diff --git a/a.md b/a.md\n" +
		"--- a/a.md\n" +
		"+++ b/a.md\n" +
		"@@ -1 +1,2 @@\n" +
		"-# A\n" +
		"+A\n" +
		"+=\n" +
		"\n" +
		"c.md: error: permission denied\n" +
		"1 file changed, 2 insertions(+), 1 deletion(-)\n"
	assert.Equal(t, want, buf.String())
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    reporter.Format
		wantErr bool
	}{
		{in: "", want: reporter.FormatText},
		{in: "text", want: reporter.FormatText},
		{in: "json", want: reporter.FormatJSON},
		{in: "diff", want: reporter.FormatDiff},
		{in: "sarif", wantErr: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.in, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(testCase.in)
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "xml"})
	require.Error(t, err)
}
