package hongdown_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hongdown/pkg/hongdown"
	"github.com/yaklabco/hongdown/pkg/options"
)

func format(t *testing.T, input string, opts options.FormatOptions) string {
	t.Helper()

	out, err := hongdown.Format(input, opts)
	require.NoError(t, err)
	return out
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		opts  options.FormatOptions
		want  string
	}{
		{
			name:  "level one heading becomes setext",
			input: "# Hello\n\nWorld",
			want:  "Hello\n=====\n\nWorld\n",
		},
		{
			name:  "level three heading stays atx",
			input: "### Subsection\n\nContent",
			want:  "### Subsection\n\nContent\n",
		},
		{
			name:  "setext disabled strips closing hashes",
			input: "# Title #\n",
			opts:  options.FormatOptions{SetextH1: options.Ptr(false)},
			want:  "# Title\n",
		},
		{
			name:  "bullet markers",
			input: "* Item 1\n* Item 2",
			want:  " -  Item 1\n -  Item 2\n",
		},
		{
			name:  "custom bullet marker",
			input: "- a\n- b\n",
			opts: options.FormatOptions{
				UnorderedMarker: options.Ptr("*"),
				LeadingSpaces:   options.Ptr(0),
				TrailingSpaces:  options.Ptr(1),
				IndentWidth:     options.Ptr(2),
			},
			want: "* a\n* b\n",
		},
		{
			name:  "ordered list renumbered",
			input: "3. three\n3. four\n",
			want:  "3.  three\n4.  four\n",
		},
		{
			name:  "default fence is tilde",
			input: "```\ncode\n```\n",
			want:  "~~~~\ncode\n~~~~\n",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only input",
			input: "  \n\t\n\n",
			want:  "",
		},
		{
			name:  "short line is unchanged",
			input: "A short line that fits.\n",
			want:  "A short line that fits.\n",
		},
		{
			name:  "line width option",
			input: "aaa bbb ccc ddd\n",
			opts:  options.FormatOptions{LineWidth: options.Ptr(7)},
			want:  "aaa bbb\nccc ddd\n",
		},
		{
			name:  "typography",
			input: "\"Hi\" -- it's done...\n",
			opts: options.FormatOptions{
				CurlyDoubleQuotes: options.Ptr(true),
				CurlyApostrophes:  options.Ptr(true),
				Ellipsis:          options.Ptr(true),
				EnDash:            options.Ptr(true),
			},
			want: "“Hi” – it’s done…\n",
		},
		{
			name:  "typography leaves code alone",
			input: "`\"x\"...` and \"y\"\n",
			opts: options.FormatOptions{
				CurlyDoubleQuotes: options.Ptr(true),
				Ellipsis:          options.Ptr(true),
			},
			want: "`\"x\"...` and “y”\n",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, format(t, testCase.input, testCase.opts))
		})
	}
}

func TestFormat_BacktickFenceAroundBackticks(t *testing.T) {
	t.Parallel()

	input := "~~~~\n```go\nx := 1\n```\n~~~~\n"

	out := format(t, input, options.FormatOptions{FenceChar: options.Ptr("`")})
	assert.Equal(t, "````\n```go\nx := 1\n```\n````\n", out)
	assert.Contains(t, out, "````")

	out = format(t, input, options.FormatOptions{})
	assert.True(t, strings.HasPrefix(out, "~~~~\n"))
}

func TestFormat_LongLineSplits(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("lorem ipsum ", 12) + "\n"
	out := format(t, input, options.FormatOptions{})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 80)
	}
}

func TestFormat_DisableFile(t *testing.T) {
	t.Parallel()

	input := "<!-- hongdown-disable-file -->\n*  messy   list\n#   Heading\n"
	assert.Equal(t, input, format(t, input, options.FormatOptions{}))
}

func TestFormat_DisabledRegionIsByteIdentical(t *testing.T) {
	t.Parallel()

	region := "*  keep   this*\n+ odd  list"
	input := "# Title\n\n<!-- hongdown-disable -->\n" + region + "\n<!-- hongdown-enable -->\n\n* after\n"

	out := format(t, input, options.FormatOptions{})
	assert.Contains(t, out, region)
	assert.True(t, strings.HasPrefix(out, "Title\n=====\n"))
	assert.True(t, strings.HasSuffix(out, " -  after\n"))
}

func TestFormat_DirectivesInContainers(t *testing.T) {
	t.Parallel()

	t.Run("directive in a fenced block of a list item is code", func(t *testing.T) {
		t.Parallel()

		input := "1. step\n\n    ```\n    <!-- hongdown-disable -->\n    ```\n\n2. two\n"
		out := format(t, input, options.FormatOptions{})

		assert.Contains(t, out, "\n    <!-- hongdown-disable -->\n")
		assert.NotContains(t, out, "```")
		assert.True(t, strings.HasSuffix(out, "\n2.  two\n"))
		assert.Equal(t, out, format(t, out, options.FormatOptions{}))
	})

	t.Run("disabled block stays inside its list item", func(t *testing.T) {
		t.Parallel()

		input := "- a\n  <!-- hongdown-disable-next-line -->\n  *  x\n- b\n"
		want := " -  a\n    <!-- hongdown-disable-next-line -->\n    *  x\n -  b\n"

		out := format(t, input, options.FormatOptions{})
		assert.Equal(t, want, out)
		assert.Equal(t, out, format(t, out, options.FormatOptions{}))
	})
}

func TestFormat_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"headings":    "# One\n\nText\n\n## Two\n\n### Three ###\n",
		"lists":       "* a\n* b\n  1. x\n  2. y\n\n- c\n\n- d\n",
		"code":        "```go\nfunc main() {}\n```\n\n    indented\n",
		"quote":       "> quoted\n> text\n>\n> more\n",
		"table":       "|a|b|\n|:-|-:|\n|long cell|x|\n",
		"break":       "para\n\n***\n\nnext\n",
		"long":        strings.Repeat("words and more words ", 10) + "\n",
		"inline":      "Some *emph* and **strong** with `code` and [link](/x \"t\").\n",
		"front":       "---\ntitle: x\n---\n# T\n",
		"directive":   "<!-- hongdown-disable-next-line -->\n*  keep   this*\n\n# Title\n",
		"hard breaks": "one  \ntwo\\\nthree\n",
		"nested disable": "> <!-- hongdown-disable -->\n> *  raw*\n\n* item\n  <!-- hongdown-disable-next-section -->\n  text\n",
	}

	for name, input := range inputs {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			once := format(t, input, options.FormatOptions{})
			assert.Equal(t, once, format(t, once, options.FormatOptions{}))
		})
	}
}

func TestFormatWithWarnings_Tables(t *testing.T) {
	t.Parallel()

	t.Run("inconsistent columns", func(t *testing.T) {
		t.Parallel()

		input := "Intro\n\n| a | b |\n| --- | --- |\n| 1 | 2 | 3 |\n"
		res, err := hongdown.FormatWithWarnings(input, options.FormatOptions{})
		require.NoError(t, err)
		require.NotEmpty(t, res.Warnings)
		assert.Contains(t, res.Warnings[0].Message, "column")
		assert.Equal(t, 5, res.Warnings[0].Line)
	})

	t.Run("table directly after a paragraph", func(t *testing.T) {
		t.Parallel()

		input := "Para\n| a | b |\n|---|---|\n| 1 | 2 | 3 |\n"
		res, err := hongdown.FormatWithWarnings(input, options.FormatOptions{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.Output, "Para\n\n| a   | b   |\n"))
		require.NotEmpty(t, res.Warnings)
		assert.Contains(t, res.Warnings[0].Message, "column")
		assert.Equal(t, 4, res.Warnings[0].Line)
		assert.Equal(t, res.Output, format(t, res.Output, options.FormatOptions{}))
	})

	t.Run("consistent table", func(t *testing.T) {
		t.Parallel()

		input := "| a | b |\n| --- | --- |\n| 1 | 2 |\n"
		res, err := hongdown.FormatWithWarnings(input, options.FormatOptions{})
		require.NoError(t, err)
		assert.Empty(t, res.Warnings)
		assert.Equal(t, "| a   | b   |\n| --- | --- |\n| 1   | 2   |\n", res.Output)
	})
}

func TestFormat_ConfigError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  options.FormatOptions
		field string
	}{
		{name: "line width", opts: options.FormatOptions{LineWidth: options.Ptr(0)}, field: "lineWidth"},
		{name: "fence char", opts: options.FormatOptions{FenceChar: options.Ptr("*")}, field: "fenceChar"},
		{name: "min fence length", opts: options.FormatOptions{MinFenceLength: options.Ptr(2)}, field: "minFenceLength"},
		{name: "unordered marker", opts: options.FormatOptions{UnorderedMarker: options.Ptr("x")}, field: "unorderedMarker"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := hongdown.Format("# x\n", testCase.opts)
			var cfgErr *options.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, testCase.field, cfgErr.Field)
		})
	}
}

func TestFormat_Concurrent(t *testing.T) {
	t.Parallel()

	const workers = 8
	input := "# Hello\n\n* a\n* b\n"
	want := "Hello\n=====\n\n -  a\n -  b\n"

	var wg sync.WaitGroup
	outs := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			outs[i], errs[i] = hongdown.Format(input, options.FormatOptions{})
		}()
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, want, outs[i])
	}
}
