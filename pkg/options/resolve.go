package options

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// fieldOrder fixes which error is reported when several fields are invalid.
var fieldOrder = []string{ //nolint:gochecknoglobals // read-only lookup
	"lineWidth",
	"unorderedMarker", "leadingSpaces", "trailingSpaces", "indentWidth",
	"oddLevelMarker", "evenLevelMarker", "orderedListPad", "orderedListIndentWidth",
	"fenceChar", "minFenceLength", "defaultLanguage",
	"thematicBreakStyle", "thematicBreakLeadingSpaces",
	"emDash",
}

var thematicBreakPattern = regexp.MustCompile(`^(?:(?:\*[ \t]*){3,}|(?:-[ \t]*){3,}|(?:_[ \t]*){3,})$`)

// Resolve overlays opts on defaults and validates the result.
// It returns a *ConfigError naming the first invalid field.
func Resolve(opts FormatOptions, defaults Style) (Style, error) {
	style := defaults
	overlay(&style, opts)

	if err := style.Validate(); err != nil {
		return Style{}, err
	}
	return style, nil
}

// Validate checks every field against its domain.
func (s Style) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.LineWidth, validation.By(intAtLeast("line_width", 1))),
		validation.Field(&s.UnorderedMarker, validation.By(oneOf("unordered_marker", "-", "*", "+"))),
		validation.Field(&s.LeadingSpaces, validation.By(intBetween("leading_spaces", 0, 3))),
		validation.Field(&s.TrailingSpaces, validation.By(intBetween("trailing_spaces", 1, 4))),
		validation.Field(&s.IndentWidth, validation.By(intAtLeast("indent_width", 1))),
		validation.Field(&s.OddLevelMarker, validation.By(oneOf("odd_level_marker", ".", ")"))),
		validation.Field(&s.EvenLevelMarker, validation.By(oneOf("even_level_marker", ".", ")"))),
		validation.Field(&s.OrderedListPad, validation.By(oneOf("ordered_list_pad", PadStart, PadEnd))),
		validation.Field(&s.OrderedListIndentWidth, validation.By(intAtLeast("ordered_list_indent_width", 1))),
		validation.Field(&s.FenceChar, validation.By(oneOf("fence_char", "`", "~"))),
		validation.Field(&s.MinFenceLength, validation.By(intAtLeast("min_fence_length", 3))),
		validation.Field(&s.DefaultLanguage, validation.By(s.validLanguage)),
		validation.Field(&s.ThematicBreakStyle, validation.By(validThematicBreak)),
		validation.Field(&s.ThematicBreakLeadingSpaces,
			validation.By(intBetween("thematic_break_leading_spaces", 0, 3))),
		validation.Field(&s.EmDash, validation.By(validEmDash)),
	)
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}
	for _, field := range fieldOrder {
		if fieldErr, ok := errs[field]; ok {
			return &ConfigError{Field: field, Reason: fieldErr.Error()}
		}
	}
	return err
}

func intAtLeast(code string, low int) validation.RuleFunc {
	return func(value any) error {
		if n, _ := value.(int); n < low {
			return validation.NewError("hongdown.options."+code+"_invalid",
				"must be at least "+strconv.Itoa(low))
		}
		return nil
	}
}

func intBetween(code string, low, high int) validation.RuleFunc {
	return func(value any) error {
		if n, _ := value.(int); n < low || n > high {
			return validation.NewError("hongdown.options."+code+"_invalid",
				"must be between "+strconv.Itoa(low)+" and "+strconv.Itoa(high))
		}
		return nil
	}
}

func oneOf(code string, allowed ...string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		for _, candidate := range allowed {
			if s == candidate {
				return nil
			}
		}
		return validation.NewError("hongdown.options."+code+"_invalid",
			"must be one of "+quoteAll(allowed))
	}
}

func (s Style) validLanguage(value any) error {
	lang, _ := value.(string)
	if strings.ContainsAny(lang, " \t\r\n") {
		return validation.NewError("hongdown.options.default_language_invalid",
			"must not contain whitespace")
	}
	if s.FenceChar == "`" && strings.Contains(lang, "`") {
		return validation.NewError("hongdown.options.default_language_invalid",
			"must not contain a backtick when the fence character is a backtick")
	}
	return nil
}

func validThematicBreak(value any) error {
	if style, _ := value.(string); !thematicBreakPattern.MatchString(style) {
		return validation.NewError("hongdown.options.thematic_break_style_invalid",
			"must be three or more of the same character among -, * and _, optionally spaced")
	}
	return nil
}

func validEmDash(value any) error {
	pattern, _ := value.(string)
	if pattern != "" && strings.ContainsAny(pattern, " \t\r\n") {
		return validation.NewError("hongdown.options.em_dash_invalid",
			"pattern must not contain whitespace")
	}
	return nil
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ", ")
}

func overlay(style *Style, opts FormatOptions) {
	setIf(&style.LineWidth, opts.LineWidth)
	setIf(&style.SetextH1, opts.SetextH1)
	setIf(&style.SetextH2, opts.SetextH2)
	setIf(&style.UnorderedMarker, opts.UnorderedMarker)
	setIf(&style.LeadingSpaces, opts.LeadingSpaces)
	setIf(&style.TrailingSpaces, opts.TrailingSpaces)
	setIf(&style.IndentWidth, opts.IndentWidth)
	setIf(&style.OddLevelMarker, opts.OddLevelMarker)
	setIf(&style.EvenLevelMarker, opts.EvenLevelMarker)
	setIf(&style.OrderedListPad, opts.OrderedListPad)
	setIf(&style.OrderedListIndentWidth, opts.OrderedListIndentWidth)
	setIf(&style.FenceChar, opts.FenceChar)
	setIf(&style.MinFenceLength, opts.MinFenceLength)
	setIf(&style.SpaceAfterFence, opts.SpaceAfterFence)
	setIf(&style.DefaultLanguage, opts.DefaultLanguage)
	setIf(&style.DetectLanguage, opts.DetectLanguage)
	setIf(&style.ThematicBreakStyle, opts.ThematicBreakStyle)
	setIf(&style.ThematicBreakLeadingSpaces, opts.ThematicBreakLeadingSpaces)
	setIf(&style.CurlyDoubleQuotes, opts.CurlyDoubleQuotes)
	setIf(&style.CurlySingleQuotes, opts.CurlySingleQuotes)
	setIf(&style.CurlyApostrophes, opts.CurlyApostrophes)
	setIf(&style.Ellipsis, opts.Ellipsis)
	setIf(&style.EnDash, opts.EnDash)
	if opts.EmDash != nil {
		style.EmDash = opts.EmDash.Resolve()
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Merge combines two sparse option sets; fields set in override win.
func Merge(base, override FormatOptions) FormatOptions {
	result := base

	pick(&result.LineWidth, override.LineWidth)
	pick(&result.SetextH1, override.SetextH1)
	pick(&result.SetextH2, override.SetextH2)
	pick(&result.UnorderedMarker, override.UnorderedMarker)
	pick(&result.LeadingSpaces, override.LeadingSpaces)
	pick(&result.TrailingSpaces, override.TrailingSpaces)
	pick(&result.IndentWidth, override.IndentWidth)
	pick(&result.OddLevelMarker, override.OddLevelMarker)
	pick(&result.EvenLevelMarker, override.EvenLevelMarker)
	pick(&result.OrderedListPad, override.OrderedListPad)
	pick(&result.OrderedListIndentWidth, override.OrderedListIndentWidth)
	pick(&result.FenceChar, override.FenceChar)
	pick(&result.MinFenceLength, override.MinFenceLength)
	pick(&result.SpaceAfterFence, override.SpaceAfterFence)
	pick(&result.DefaultLanguage, override.DefaultLanguage)
	pick(&result.DetectLanguage, override.DetectLanguage)
	pick(&result.ThematicBreakStyle, override.ThematicBreakStyle)
	pick(&result.ThematicBreakLeadingSpaces, override.ThematicBreakLeadingSpaces)
	pick(&result.CurlyDoubleQuotes, override.CurlyDoubleQuotes)
	pick(&result.CurlySingleQuotes, override.CurlySingleQuotes)
	pick(&result.CurlyApostrophes, override.CurlyApostrophes)
	pick(&result.Ellipsis, override.Ellipsis)
	pick(&result.EnDash, override.EnDash)
	pick(&result.EmDash, override.EmDash)

	return result
}

func pick[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
