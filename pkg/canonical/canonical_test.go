package canonical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hongdown/pkg/canonical"
	"github.com/yaklabco/hongdown/pkg/mdast"
	"github.com/yaklabco/hongdown/pkg/options"
	"github.com/yaklabco/hongdown/pkg/parser"
)

func apply(src string, style options.Style) *mdast.Document {
	doc := parser.ParseString(src)
	canonical.Apply(doc, style)
	return doc
}

func TestApply_HeadingStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		setextH1 bool
		setextH2 bool
		want     mdast.HeadingStyle
	}{
		{"h1 setext", "# Title\n", true, true, mdast.HeadingSetext},
		{"h1 atx when disabled", "Title\n=====\n", false, true, mdast.HeadingATX},
		{"h2 setext", "## Sub\n", true, true, mdast.HeadingSetext},
		{"h2 atx when disabled", "Sub\n---\n", true, false, mdast.HeadingATX},
		{"h3 always atx", "### Deep\n", true, true, mdast.HeadingATX},
		{"empty heading stays atx", "#\n", true, true, mdast.HeadingATX},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			style := options.DefaultStyle()
			style.SetextH1 = testCase.setextH1
			style.SetextH2 = testCase.setextH2

			doc := apply(testCase.src, style)
			require.Len(t, doc.Blocks, 1)
			assert.Equal(t, testCase.want, doc.Blocks[0].(*mdast.Heading).Style)
		})
	}
}

func TestApply_BulletMarkers(t *testing.T) {
	t.Parallel()

	doc := apply("* a\n* b\n  - nested\n", options.DefaultStyle())
	list := doc.Blocks[0].(*mdast.List)
	require.Len(t, list.Items, 2)

	for _, item := range list.Items {
		assert.Equal(t, " -  ", item.Marker)
		assert.Equal(t, 4, item.Indent)
	}

	nested := list.Items[1].Blocks[1].(*mdast.List)
	assert.Equal(t, " -  ", nested.Items[0].Marker)
}

func TestApply_BulletIndentWidth(t *testing.T) {
	t.Parallel()

	style := options.DefaultStyle()
	style.LeadingSpaces = 0
	style.TrailingSpaces = 1
	style.IndentWidth = 3

	doc := apply("- a\n", style)
	item := doc.Blocks[0].(*mdast.List).Items[0]
	assert.Equal(t, "-  ", item.Marker)
	assert.Equal(t, 3, item.Indent)
}

func TestApply_OrderedMarkers(t *testing.T) {
	t.Parallel()

	markers := func(list *mdast.List) []string {
		out := make([]string, len(list.Items))
		for i, item := range list.Items {
			out[i] = item.Marker
		}
		return out
	}

	t.Run("sequential numbers from start", func(t *testing.T) {
		t.Parallel()

		doc := apply("3. a\n3. b\n3. c\n", options.DefaultStyle())
		list := doc.Blocks[0].(*mdast.List)
		assert.Equal(t, []string{"3.  ", "4.  ", "5.  "}, markers(list))
	})

	t.Run("pad end", func(t *testing.T) {
		t.Parallel()

		src := "8. a\n9. b\n10. c\n"
		doc := apply(src, options.DefaultStyle())
		list := doc.Blocks[0].(*mdast.List)
		assert.Equal(t, []string{"8.  ", "9.  ", "10. "}, markers(list))
		assert.Equal(t, 4, list.Items[0].Indent)
	})

	t.Run("pad start", func(t *testing.T) {
		t.Parallel()

		style := options.DefaultStyle()
		style.OrderedListPad = options.PadStart
		doc := apply("9. a\n10. b\n", style)
		list := doc.Blocks[0].(*mdast.List)
		assert.Equal(t, []string{" 9. ", "10. "}, markers(list))
	})

	t.Run("delimiter alternates with depth", func(t *testing.T) {
		t.Parallel()

		doc := apply("1. a\n   1. b\n", options.DefaultStyle())
		outer := doc.Blocks[0].(*mdast.List)
		inner := outer.Items[0].Blocks[1].(*mdast.List)
		assert.Equal(t, "1.  ", outer.Items[0].Marker)
		assert.Equal(t, "1)  ", inner.Items[0].Marker)
	})
}

func TestApply_CodeFence(t *testing.T) {
	t.Parallel()

	t.Run("default tilde fence", func(t *testing.T) {
		t.Parallel()

		doc := apply("```go\nx\n```\n", options.DefaultStyle())
		code := doc.Blocks[0].(*mdast.CodeBlock)
		assert.Equal(t, byte('~'), code.FenceChar)
		assert.Equal(t, 4, code.FenceLength)
		assert.Equal(t, "go", code.Language)
	})

	t.Run("backtick fence longer than content runs", func(t *testing.T) {
		t.Parallel()

		style := options.DefaultStyle()
		style.FenceChar = "`"
		style.MinFenceLength = 3
		doc := apply("~~~markdown\n````\ninner\n````\n~~~\n", style)
		code := doc.Blocks[0].(*mdast.CodeBlock)
		assert.Equal(t, byte('`'), code.FenceChar)
		assert.Equal(t, 5, code.FenceLength)
	})

	t.Run("indented code becomes fenced with default language", func(t *testing.T) {
		t.Parallel()

		style := options.DefaultStyle()
		style.DefaultLanguage = "text"
		doc := apply("    code\n", style)
		code := doc.Blocks[0].(*mdast.CodeBlock)
		assert.False(t, code.Indented)
		assert.Equal(t, "text", code.Language)
	})

	t.Run("detected language", func(t *testing.T) {
		t.Parallel()

		style := options.DefaultStyle()
		style.DetectLanguage = true
		doc := apply("```\npackage main\n```\n", style)
		assert.Equal(t, "go", doc.Blocks[0].(*mdast.CodeBlock).Language)
	})
}

func TestApply_ThematicBreak(t *testing.T) {
	t.Parallel()

	style := options.DefaultStyle()
	style.ThematicBreakStyle = "* * *"
	style.ThematicBreakLeadingSpaces = 2

	doc := apply("___\n", style)
	assert.Equal(t, "  * * *", doc.Blocks[0].(*mdast.ThematicBreak).Text)
}

func TestApply_SeparatesAdjacentLists(t *testing.T) {
	t.Parallel()

	doc := apply("- a\n+ b\n", options.DefaultStyle())
	require.Len(t, doc.Blocks, 3)

	sep, ok := doc.Blocks[1].(*mdast.HTMLBlock)
	require.True(t, ok)
	assert.Equal(t, []string{"<!-- -->"}, sep.Lines)
}

func TestApply_LeavesVerbatimAlone(t *testing.T) {
	t.Parallel()

	src := "<!-- hongdown-disable-next-line -->\n# Title\n"
	doc := apply(src, options.DefaultStyle())
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, "# Title", doc.Blocks[1].(*mdast.Verbatim).Raw)
}
