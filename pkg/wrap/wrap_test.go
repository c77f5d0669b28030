package wrap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hongdown/pkg/mdast"
	"github.com/yaklabco/hongdown/pkg/options"
	"github.com/yaklabco/hongdown/pkg/parser"
	"github.com/yaklabco/hongdown/pkg/wrap"
)

func paragraphLines(t *testing.T, src string, width int) []string {
	t.Helper()

	doc := parser.ParseString(src)
	require.NotEmpty(t, doc.Blocks)
	para, ok := doc.Blocks[0].(*mdast.Paragraph)
	require.True(t, ok)
	return wrap.Lines(para.Content, width)
}

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		width int
		want  []string
	}{
		{
			name:  "short line unchanged",
			src:   "A short line.",
			width: 80,
			want:  []string{"A short line."},
		},
		{
			name:  "soft breaks are joined",
			src:   "one\ntwo\nthree",
			width: 80,
			want:  []string{"one two three"},
		},
		{
			name:  "greedy fill",
			src:   "aaa bbb ccc ddd",
			width: 7,
			want:  []string{"aaa bbb", "ccc ddd"},
		},
		{
			name:  "long word gets its own line",
			src:   "a verylongword b",
			width: 5,
			want:  []string{"a", "verylongword", "b"},
		},
		{
			name:  "code span is not split",
			src:   "see `a b c d` here",
			width: 8,
			want:  []string{"see", "`a b c d`", "here"},
		},
		{
			name:  "link destination stays with its text",
			src:   "go [to docs](https://example.com/x) now",
			width: 10,
			want:  []string{"go [to", "docs](https://example.com/x)", "now"},
		},
		{
			name:  "hard breaks are kept",
			src:   "one  \ntwo\\\nthree four",
			width: 80,
			want:  []string{"one  ", `two\`, "three four"},
		},
		{
			name:  "heading marker is not moved to a line start",
			src:   "aaaa # bbb",
			width: 5,
			want:  []string{"aaaa #", "bbb"},
		},
		{
			name:  "list marker is not moved to a line start",
			src:   "aaaa 1. bbb",
			width: 5,
			want:  []string{"aaaa 1.", "bbb"},
		},
		{
			name:  "no break after a backslash",
			src:   `aaaa\ bbb`,
			width: 5,
			want:  []string{`aaaa\ bbb`},
		},
		{
			name:  "wide runes count double",
			src:   "日本語 日本語",
			width: 10,
			want:  []string{"日本語", "日本語"},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, paragraphLines(t, testCase.src, testCase.width))
		})
	}
}

func TestApply_ReducesWidthInContainers(t *testing.T) {
	t.Parallel()

	style := options.DefaultStyle()
	style.LineWidth = 13

	doc := parser.ParseString("> aaa bbb ccc\n\n- aaa bbb ccc\n")
	for _, node := range mdast.FindByKind(doc.Blocks, mdast.NodeListItem) {
		node.(*mdast.ListItem).Indent = 4
	}
	wrap.Apply(doc, style)

	quoted := doc.Blocks[0].(*mdast.BlockQuote).Blocks[0].(*mdast.Paragraph)
	assert.Equal(t, []string{"aaa bbb ccc"}, quoted.Wrapped)

	item := doc.Blocks[1].(*mdast.List).Items[0].Blocks[0].(*mdast.Paragraph)
	assert.Equal(t, []string{"aaa bbb", "ccc"}, item.Wrapped)
}

func TestLines_LongParagraphSplits(t *testing.T) {
	t.Parallel()

	src := strings.Repeat("word ", 30)
	lines := paragraphLines(t, src, 80)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 80)
	}
}
