package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hongdown/pkg/config"
	"github.com/yaklabco/hongdown/pkg/options"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    config.Format
		wantErr bool
	}{
		{path: ".hongdown.toml", want: config.FormatTOML},
		{path: "dir/.hongdown.yaml", want: config.FormatYAML},
		{path: "HONGDOWN.YML", want: config.FormatYAML},
		{path: "config.json", wantErr: true},
		{path: "noext", wantErr: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.path, func(t *testing.T) {
			t.Parallel()

			got, err := config.FormatFromPath(testCase.path)
			if testCase.wantErr {
				require.ErrorIs(t, err, config.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestParse_TOML(t *testing.T) {
	t.Parallel()

	data := `
line_width = 100
include = ["docs/**/*.md"]
exclude = ["vendor/**"]

[heading]
setext_h1 = false

[list]
unordered_marker = "*"
leading_spaces = 0
trailing_spaces = 1
indent_width = 2

[ordered_list]
odd_level_marker = ")"
pad = "start"

[code_block]
fence_char = "` + "`" + `"
min_fence_length = 3
space_after_fence = true
default_language = "text"

[thematic_break]
style = "* * *"

[typography]
curly_double_quotes = true
em_dash = "--"
`

	cfg, err := config.Parse([]byte(data), config.FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, 100, *cfg.LineWidth)
	assert.Equal(t, []string{"docs/**/*.md"}, cfg.Include)
	assert.Equal(t, []string{"vendor/**"}, cfg.Exclude)
	assert.False(t, *cfg.Heading.SetextH1)
	assert.Nil(t, cfg.Heading.SetextH2)
	assert.Equal(t, "*", *cfg.List.UnorderedMarker)
	assert.Equal(t, 0, *cfg.List.LeadingSpaces)
	assert.Equal(t, ")", *cfg.OrderedList.OddLevelMarker)
	assert.Equal(t, "start", *cfg.OrderedList.Pad)
	assert.Equal(t, "`", *cfg.CodeBlock.FenceChar)
	assert.True(t, *cfg.CodeBlock.SpaceAfterFence)
	assert.Equal(t, "* * *", *cfg.ThematicBreak.Style)
	assert.True(t, *cfg.Typography.CurlyDoubleQuotes)
	assert.Equal(t, "--", cfg.Typography.EmDash.Resolve())

	_, err = options.Resolve(cfg.ToFormatOptions(), options.DefaultStyle())
	require.NoError(t, err)
}

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	data := `
line_width: 60
list:
  unordered_marker: "+"
typography:
  em_dash: true
`

	cfg, err := config.Parse([]byte(data), config.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, 60, *cfg.LineWidth)
	assert.Equal(t, "+", *cfg.List.UnorderedMarker)
	assert.Equal(t, options.DefaultEmDashPattern, cfg.Typography.EmDash.Resolve())
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	for _, format := range []config.Format{config.FormatTOML, config.FormatYAML} {
		cfg, err := config.Parse(nil, format)
		require.NoError(t, err, format)
		assert.Equal(t, options.FormatOptions{}, cfg.ToFormatOptions(), format)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		format  config.Format
		wantErr string
	}{
		{
			name:    "unknown toml key",
			data:    "[list]\nbullet = \"*\"\n",
			format:  config.FormatTOML,
			wantErr: "unknown keys: list.bullet",
		},
		{
			name:    "malformed toml",
			data:    "line_width = = 3",
			format:  config.FormatTOML,
			wantErr: "parse TOML",
		},
		{
			name:    "unknown yaml key",
			data:    "linewidth: 80\n",
			format:  config.FormatYAML,
			wantErr: "parse YAML",
		},
		{
			name:    "wrong em dash type",
			data:    "[typography]\nem_dash = 3\n",
			format:  config.FormatTOML,
			wantErr: "emDash must be a boolean or a string",
		},
		{
			name:    "unknown format",
			data:    "",
			format:  config.Format("ini"),
			wantErr: "unknown configuration format",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Parse([]byte(testCase.data), testCase.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.wantErr)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		LineWidth:  options.Ptr(90),
		Exclude:    []string{"vendor/**"},
		CodeBlock:  config.CodeBlockConfig{FenceChar: options.Ptr("`")},
		Typography: config.TypographyConfig{EmDash: options.EmDashPattern("--"), Ellipsis: options.Ptr(true)},
	}

	for _, format := range []config.Format{config.FormatTOML, config.FormatYAML} {
		format := format
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			data, err := config.Encode(cfg, format)
			require.NoError(t, err)
			assert.NotContains(t, string(data), "heading")

			decoded, err := config.Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, cfg.ToFormatOptions(), decoded.ToFormatOptions())
			assert.Equal(t, cfg.Exclude, decoded.Exclude)
		})
	}
}
