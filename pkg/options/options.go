// Package options defines the style options of the formatter.
//
// FormatOptions is the sparse record a caller supplies: every field is a
// pointer and nil means "use the default". Resolve overlays it on a default
// Style and validates the result. A Style is never modified after Resolve
// returns it.
package options

import "strings"

// Ordered list number padding.
const (
	PadStart = "start"
	PadEnd   = "end"
)

// FormatOptions is a sparse set of style options.
type FormatOptions struct {
	LineWidth *int `json:"lineWidth,omitempty" yaml:"lineWidth,omitempty"`

	SetextH1 *bool `json:"setextH1,omitempty" yaml:"setextH1,omitempty"`
	SetextH2 *bool `json:"setextH2,omitempty" yaml:"setextH2,omitempty"`

	UnorderedMarker *string `json:"unorderedMarker,omitempty" yaml:"unorderedMarker,omitempty"`
	LeadingSpaces   *int    `json:"leadingSpaces,omitempty" yaml:"leadingSpaces,omitempty"`
	TrailingSpaces  *int    `json:"trailingSpaces,omitempty" yaml:"trailingSpaces,omitempty"`
	IndentWidth     *int    `json:"indentWidth,omitempty" yaml:"indentWidth,omitempty"`

	OddLevelMarker         *string `json:"oddLevelMarker,omitempty" yaml:"oddLevelMarker,omitempty"`
	EvenLevelMarker        *string `json:"evenLevelMarker,omitempty" yaml:"evenLevelMarker,omitempty"`
	OrderedListPad         *string `json:"orderedListPad,omitempty" yaml:"orderedListPad,omitempty"`
	OrderedListIndentWidth *int    `json:"orderedListIndentWidth,omitempty" yaml:"orderedListIndentWidth,omitempty"`

	FenceChar       *string `json:"fenceChar,omitempty" yaml:"fenceChar,omitempty"`
	MinFenceLength  *int    `json:"minFenceLength,omitempty" yaml:"minFenceLength,omitempty"`
	SpaceAfterFence *bool   `json:"spaceAfterFence,omitempty" yaml:"spaceAfterFence,omitempty"`
	DefaultLanguage *string `json:"defaultLanguage,omitempty" yaml:"defaultLanguage,omitempty"`
	DetectLanguage  *bool   `json:"detectLanguage,omitempty" yaml:"detectLanguage,omitempty"`

	ThematicBreakStyle         *string `json:"thematicBreakStyle,omitempty" yaml:"thematicBreakStyle,omitempty"`
	ThematicBreakLeadingSpaces *int    `json:"thematicBreakLeadingSpaces,omitempty" yaml:"thematicBreakLeadingSpaces,omitempty"`

	CurlyDoubleQuotes *bool   `json:"curlyDoubleQuotes,omitempty" yaml:"curlyDoubleQuotes,omitempty"`
	CurlySingleQuotes *bool   `json:"curlySingleQuotes,omitempty" yaml:"curlySingleQuotes,omitempty"`
	CurlyApostrophes  *bool   `json:"curlyApostrophes,omitempty" yaml:"curlyApostrophes,omitempty"`
	Ellipsis          *bool   `json:"ellipsis,omitempty" yaml:"ellipsis,omitempty"`
	EnDash            *bool   `json:"enDash,omitempty" yaml:"enDash,omitempty"`
	EmDash            *EmDash `json:"emDash,omitempty" yaml:"emDash,omitempty"`
}

// Style is a fully resolved and validated set of style options.
// The json tags double as the field names reported in ConfigError.
type Style struct {
	LineWidth int `json:"lineWidth" toml:"line_width"`

	SetextH1 bool `json:"setextH1" toml:"setext_h1"`
	SetextH2 bool `json:"setextH2" toml:"setext_h2"`

	UnorderedMarker string `json:"unorderedMarker" toml:"unordered_marker"`
	LeadingSpaces   int    `json:"leadingSpaces" toml:"leading_spaces"`
	TrailingSpaces  int    `json:"trailingSpaces" toml:"trailing_spaces"`
	IndentWidth     int    `json:"indentWidth" toml:"indent_width"`

	OddLevelMarker         string `json:"oddLevelMarker" toml:"odd_level_marker"`
	EvenLevelMarker        string `json:"evenLevelMarker" toml:"even_level_marker"`
	OrderedListPad         string `json:"orderedListPad" toml:"ordered_list_pad"`
	OrderedListIndentWidth int    `json:"orderedListIndentWidth" toml:"ordered_list_indent_width"`

	FenceChar       string `json:"fenceChar" toml:"fence_char"`
	MinFenceLength  int    `json:"minFenceLength" toml:"min_fence_length"`
	SpaceAfterFence bool   `json:"spaceAfterFence" toml:"space_after_fence"`
	DefaultLanguage string `json:"defaultLanguage" toml:"default_language"`
	DetectLanguage  bool   `json:"detectLanguage" toml:"detect_language"`

	ThematicBreakStyle         string `json:"thematicBreakStyle" toml:"thematic_break_style"`
	ThematicBreakLeadingSpaces int    `json:"thematicBreakLeadingSpaces" toml:"thematic_break_leading_spaces"`

	CurlyDoubleQuotes bool `json:"curlyDoubleQuotes" toml:"curly_double_quotes"`
	CurlySingleQuotes bool `json:"curlySingleQuotes" toml:"curly_single_quotes"`
	CurlyApostrophes  bool `json:"curlyApostrophes" toml:"curly_apostrophes"`
	Ellipsis          bool `json:"ellipsis" toml:"ellipsis"`
	EnDash            bool `json:"enDash" toml:"en_dash"`

	// EmDash is the source pattern replaced by an em dash; empty disables it.
	EmDash string `json:"emDash" toml:"em_dash"`
}

// DefaultStyle returns the built-in defaults.
func DefaultStyle() Style {
	return Style{
		LineWidth:                  80,
		SetextH1:                   true,
		SetextH2:                   true,
		UnorderedMarker:            "-",
		LeadingSpaces:              1,
		TrailingSpaces:             2,
		IndentWidth:                4,
		OddLevelMarker:             ".",
		EvenLevelMarker:            ")",
		OrderedListPad:             PadEnd,
		OrderedListIndentWidth:     4,
		FenceChar:                  "~",
		MinFenceLength:             4,
		SpaceAfterFence:            false,
		DefaultLanguage:            "",
		ThematicBreakStyle:         "---",
		ThematicBreakLeadingSpaces: 0,
	}
}

// Ptr returns a pointer to v, for filling FormatOptions literals.
func Ptr[T any](v T) *T {
	return &v
}

// BulletMarker returns the full first-line prefix of a bullet list item.
func (s Style) BulletMarker() string {
	return spaces(s.LeadingSpaces) + s.UnorderedMarker + spaces(s.TrailingSpaces)
}

// OrderedDelimiter returns the ordered list delimiter for a 1-based list depth.
func (s Style) OrderedDelimiter(depth int) string {
	if depth%2 == 0 {
		return s.EvenLevelMarker
	}
	return s.OddLevelMarker
}

func spaces(n int) string {
	return strings.Repeat(" ", max(n, 0))
}
