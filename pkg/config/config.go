// Package config defines the on-disk configuration file of hongdown.
//
// A configuration file is sparse: every style field is optional and an
// unset field keeps the value from a lower-precedence source. Files are
// TOML or YAML and share one sectioned layout:
//
//	line_width = 80
//	include = ["docs/**/*.md"]
//	exclude = ["vendor/**"]
//
//	[heading]
//	setext_h1 = true
//
//	[list]
//	unordered_marker = "-"
//
// ToFormatOptions converts a Config into the options.FormatOptions the
// formatter consumes.
package config

import (
	"slices"

	"github.com/yaklabco/hongdown/pkg/options"
)

// FileName is the preferred project configuration file name.
const FileName = ".hongdown.toml"

// Config is the top-level structure of a configuration file.
type Config struct {
	// LineWidth is the target width for wrapped paragraphs.
	LineWidth *int `toml:"line_width,omitempty" yaml:"line_width,omitempty"`

	// Include lists glob patterns of files to format.
	Include []string `toml:"include,omitempty" yaml:"include,omitempty"`

	// Exclude lists glob patterns of files and directories to skip.
	Exclude []string `toml:"exclude,omitempty" yaml:"exclude,omitempty"`

	Heading       HeadingConfig       `toml:"heading,omitempty" yaml:"heading,omitempty"`
	List          ListConfig          `toml:"list,omitempty" yaml:"list,omitempty"`
	OrderedList   OrderedListConfig   `toml:"ordered_list,omitempty" yaml:"ordered_list,omitempty"`
	CodeBlock     CodeBlockConfig     `toml:"code_block,omitempty" yaml:"code_block,omitempty"`
	ThematicBreak ThematicBreakConfig `toml:"thematic_break,omitempty" yaml:"thematic_break,omitempty"`
	Typography    TypographyConfig    `toml:"typography,omitempty" yaml:"typography,omitempty"`
}

// HeadingConfig is the [heading] section.
type HeadingConfig struct {
	SetextH1 *bool `toml:"setext_h1,omitempty" yaml:"setext_h1,omitempty"`
	SetextH2 *bool `toml:"setext_h2,omitempty" yaml:"setext_h2,omitempty"`
}

// ListConfig is the [list] section for bullet lists.
type ListConfig struct {
	UnorderedMarker *string `toml:"unordered_marker,omitempty" yaml:"unordered_marker,omitempty"`
	LeadingSpaces   *int    `toml:"leading_spaces,omitempty" yaml:"leading_spaces,omitempty"`
	TrailingSpaces  *int    `toml:"trailing_spaces,omitempty" yaml:"trailing_spaces,omitempty"`
	IndentWidth     *int    `toml:"indent_width,omitempty" yaml:"indent_width,omitempty"`
}

// OrderedListConfig is the [ordered_list] section.
type OrderedListConfig struct {
	OddLevelMarker  *string `toml:"odd_level_marker,omitempty" yaml:"odd_level_marker,omitempty"`
	EvenLevelMarker *string `toml:"even_level_marker,omitempty" yaml:"even_level_marker,omitempty"`
	Pad             *string `toml:"pad,omitempty" yaml:"pad,omitempty"`
	IndentWidth     *int    `toml:"indent_width,omitempty" yaml:"indent_width,omitempty"`
}

// CodeBlockConfig is the [code_block] section.
type CodeBlockConfig struct {
	FenceChar       *string `toml:"fence_char,omitempty" yaml:"fence_char,omitempty"`
	MinFenceLength  *int    `toml:"min_fence_length,omitempty" yaml:"min_fence_length,omitempty"`
	SpaceAfterFence *bool   `toml:"space_after_fence,omitempty" yaml:"space_after_fence,omitempty"`
	DefaultLanguage *string `toml:"default_language,omitempty" yaml:"default_language,omitempty"`
	DetectLanguage  *bool   `toml:"detect_language,omitempty" yaml:"detect_language,omitempty"`
}

// ThematicBreakConfig is the [thematic_break] section.
type ThematicBreakConfig struct {
	Style         *string `toml:"style,omitempty" yaml:"style,omitempty"`
	LeadingSpaces *int    `toml:"leading_spaces,omitempty" yaml:"leading_spaces,omitempty"`
}

// TypographyConfig is the [typography] section.
type TypographyConfig struct {
	CurlyDoubleQuotes *bool           `toml:"curly_double_quotes,omitempty" yaml:"curly_double_quotes,omitempty"`
	CurlySingleQuotes *bool           `toml:"curly_single_quotes,omitempty" yaml:"curly_single_quotes,omitempty"`
	CurlyApostrophes  *bool           `toml:"curly_apostrophes,omitempty" yaml:"curly_apostrophes,omitempty"`
	Ellipsis          *bool           `toml:"ellipsis,omitempty" yaml:"ellipsis,omitempty"`
	EnDash            *bool           `toml:"en_dash,omitempty" yaml:"en_dash,omitempty"`
	EmDash            *options.EmDash `toml:"em_dash,omitempty" yaml:"em_dash,omitempty"`
}

// ToFormatOptions returns the style options set in the file. Unset fields
// stay nil.
func (c *Config) ToFormatOptions() options.FormatOptions {
	if c == nil {
		return options.FormatOptions{}
	}

	return options.FormatOptions{
		LineWidth: c.LineWidth,

		SetextH1: c.Heading.SetextH1,
		SetextH2: c.Heading.SetextH2,

		UnorderedMarker: c.List.UnorderedMarker,
		LeadingSpaces:   c.List.LeadingSpaces,
		TrailingSpaces:  c.List.TrailingSpaces,
		IndentWidth:     c.List.IndentWidth,

		OddLevelMarker:         c.OrderedList.OddLevelMarker,
		EvenLevelMarker:        c.OrderedList.EvenLevelMarker,
		OrderedListPad:         c.OrderedList.Pad,
		OrderedListIndentWidth: c.OrderedList.IndentWidth,

		FenceChar:       c.CodeBlock.FenceChar,
		MinFenceLength:  c.CodeBlock.MinFenceLength,
		SpaceAfterFence: c.CodeBlock.SpaceAfterFence,
		DefaultLanguage: c.CodeBlock.DefaultLanguage,
		DetectLanguage:  c.CodeBlock.DetectLanguage,

		ThematicBreakStyle:         c.ThematicBreak.Style,
		ThematicBreakLeadingSpaces: c.ThematicBreak.LeadingSpaces,

		CurlyDoubleQuotes: c.Typography.CurlyDoubleQuotes,
		CurlySingleQuotes: c.Typography.CurlySingleQuotes,
		CurlyApostrophes:  c.Typography.CurlyApostrophes,
		Ellipsis:          c.Typography.Ellipsis,
		EnDash:            c.Typography.EnDash,
		EmDash:            c.Typography.EmDash,
	}
}

// FromStyle returns a Config with every style field set from style.
// Include and Exclude are left empty.
func FromStyle(style options.Style) *Config {
	emDash := options.EmDashBool(false)
	if style.EmDash != "" {
		emDash = options.EmDashPattern(style.EmDash)
	}

	return &Config{
		LineWidth: options.Ptr(style.LineWidth),
		Heading: HeadingConfig{
			SetextH1: options.Ptr(style.SetextH1),
			SetextH2: options.Ptr(style.SetextH2),
		},
		List: ListConfig{
			UnorderedMarker: options.Ptr(style.UnorderedMarker),
			LeadingSpaces:   options.Ptr(style.LeadingSpaces),
			TrailingSpaces:  options.Ptr(style.TrailingSpaces),
			IndentWidth:     options.Ptr(style.IndentWidth),
		},
		OrderedList: OrderedListConfig{
			OddLevelMarker:  options.Ptr(style.OddLevelMarker),
			EvenLevelMarker: options.Ptr(style.EvenLevelMarker),
			Pad:             options.Ptr(style.OrderedListPad),
			IndentWidth:     options.Ptr(style.OrderedListIndentWidth),
		},
		CodeBlock: CodeBlockConfig{
			FenceChar:       options.Ptr(style.FenceChar),
			MinFenceLength:  options.Ptr(style.MinFenceLength),
			SpaceAfterFence: options.Ptr(style.SpaceAfterFence),
			DefaultLanguage: options.Ptr(style.DefaultLanguage),
			DetectLanguage:  options.Ptr(style.DetectLanguage),
		},
		ThematicBreak: ThematicBreakConfig{
			Style:         options.Ptr(style.ThematicBreakStyle),
			LeadingSpaces: options.Ptr(style.ThematicBreakLeadingSpaces),
		},
		Typography: TypographyConfig{
			CurlyDoubleQuotes: options.Ptr(style.CurlyDoubleQuotes),
			CurlySingleQuotes: options.Ptr(style.CurlySingleQuotes),
			CurlyApostrophes:  options.Ptr(style.CurlyApostrophes),
			Ellipsis:          options.Ptr(style.Ellipsis),
			EnDash:            options.Ptr(style.EnDash),
			EmDash:            emDash,
		},
	}
}

// Clone returns a copy of the configuration with its own pattern lists.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Include = slices.Clone(c.Include)
	clone.Exclude = slices.Clone(c.Exclude)
	return &clone
}

// Merge overlays override on base and returns the result. Style fields set in
// override win; non-empty Include and Exclude lists replace those of c.
// Neither argument is modified.
func Merge(base, override *Config) *Config {
	switch {
	case base == nil:
		return override.Clone()
	case override == nil:
		return base.Clone()
	}

	result := base.Clone()
	if len(override.Include) > 0 {
		result.Include = slices.Clone(override.Include)
	}
	if len(override.Exclude) > 0 {
		result.Exclude = slices.Clone(override.Exclude)
	}

	pick(&result.LineWidth, override.LineWidth)

	pick(&result.Heading.SetextH1, override.Heading.SetextH1)
	pick(&result.Heading.SetextH2, override.Heading.SetextH2)

	pick(&result.List.UnorderedMarker, override.List.UnorderedMarker)
	pick(&result.List.LeadingSpaces, override.List.LeadingSpaces)
	pick(&result.List.TrailingSpaces, override.List.TrailingSpaces)
	pick(&result.List.IndentWidth, override.List.IndentWidth)

	pick(&result.OrderedList.OddLevelMarker, override.OrderedList.OddLevelMarker)
	pick(&result.OrderedList.EvenLevelMarker, override.OrderedList.EvenLevelMarker)
	pick(&result.OrderedList.Pad, override.OrderedList.Pad)
	pick(&result.OrderedList.IndentWidth, override.OrderedList.IndentWidth)

	pick(&result.CodeBlock.FenceChar, override.CodeBlock.FenceChar)
	pick(&result.CodeBlock.MinFenceLength, override.CodeBlock.MinFenceLength)
	pick(&result.CodeBlock.SpaceAfterFence, override.CodeBlock.SpaceAfterFence)
	pick(&result.CodeBlock.DefaultLanguage, override.CodeBlock.DefaultLanguage)
	pick(&result.CodeBlock.DetectLanguage, override.CodeBlock.DetectLanguage)

	pick(&result.ThematicBreak.Style, override.ThematicBreak.Style)
	pick(&result.ThematicBreak.LeadingSpaces, override.ThematicBreak.LeadingSpaces)

	pick(&result.Typography.CurlyDoubleQuotes, override.Typography.CurlyDoubleQuotes)
	pick(&result.Typography.CurlySingleQuotes, override.Typography.CurlySingleQuotes)
	pick(&result.Typography.CurlyApostrophes, override.Typography.CurlyApostrophes)
	pick(&result.Typography.Ellipsis, override.Typography.Ellipsis)
	pick(&result.Typography.EnDash, override.Typography.EnDash)
	pick(&result.Typography.EmDash, override.Typography.EmDash)

	return result
}

func pick[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
