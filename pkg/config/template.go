package config

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/yaklabco/hongdown/pkg/options"
)

// templateHeader opens every generated configuration file.
const templateHeader = `# hongdown configuration
# Every setting is optional. Remove a line to use the built-in default.
`

// Template returns a commented configuration file that sets every style
// option to its value in style.
func Template(style options.Style, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return tomlTemplate(style), nil
	case FormatYAML:
		body, err := Encode(FromStyle(style), FormatYAML)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		buf.WriteString(templateHeader)
		buf.WriteByte('\n')
		buf.Write(body)
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func tomlTemplate(style options.Style) []byte {
	var buf bytes.Buffer
	buf.WriteString(templateHeader)

	w := func(comment, key, value string) {
		fmt.Fprintf(&buf, "\n# %s\n%s = %s\n", comment, key, value)
	}
	section := func(name string) {
		fmt.Fprintf(&buf, "\n[%s]\n", name)
	}

	w("Target width for wrapped paragraphs.", "line_width", strconv.Itoa(style.LineWidth))
	buf.WriteString("\n# Glob patterns of files to format, and of files or directories to skip.\n")
	buf.WriteString("# include = [\"**/*.md\"]\n")
	buf.WriteString("# exclude = [\"vendor/**\", \"node_modules/**\"]\n")

	section("heading")
	w("Underline level 1 headings with = instead of a leading #.", "setext_h1", strconv.FormatBool(style.SetextH1))
	w("Underline level 2 headings with - instead of a leading ##.", "setext_h2", strconv.FormatBool(style.SetextH2))

	section("list")
	w("Bullet character: -, * or +.", "unordered_marker", strconv.Quote(style.UnorderedMarker))
	w("Spaces before the bullet (0 to 3).", "leading_spaces", strconv.Itoa(style.LeadingSpaces))
	w("Spaces after the bullet (1 to 4).", "trailing_spaces", strconv.Itoa(style.TrailingSpaces))
	w("Indentation of nested content.", "indent_width", strconv.Itoa(style.IndentWidth))

	section("ordered_list")
	w("Delimiter at odd nesting depths: . or ).", "odd_level_marker", strconv.Quote(style.OddLevelMarker))
	w("Delimiter at even nesting depths: . or ).", "even_level_marker", strconv.Quote(style.EvenLevelMarker))
	w("Where numbers of different widths are padded: start or end.", "pad", strconv.Quote(style.OrderedListPad))
	w("Indentation of nested content.", "indent_width", strconv.Itoa(style.OrderedListIndentWidth))

	section("code_block")
	w("Fence character: ~ or `.", "fence_char", strconv.Quote(style.FenceChar))
	w("Shortest fence written (at least 3).", "min_fence_length", strconv.Itoa(style.MinFenceLength))
	w("Put a space between the fence and the language.", "space_after_fence", strconv.FormatBool(style.SpaceAfterFence))
	w("Language given to fences that have none.", "default_language", strconv.Quote(style.DefaultLanguage))
	w("Guess the language of untagged fences.", "detect_language", strconv.FormatBool(style.DetectLanguage))

	section("thematic_break")
	w("Text of a thematic break.", "style", strconv.Quote(style.ThematicBreakStyle))
	w("Spaces before a thematic break (0 to 3).", "leading_spaces", strconv.Itoa(style.ThematicBreakLeadingSpaces))

	section("typography")
	w("Replace straight double quotes with curly ones.", "curly_double_quotes",
		strconv.FormatBool(style.CurlyDoubleQuotes))
	w("Replace straight single quotes with curly ones.", "curly_single_quotes",
		strconv.FormatBool(style.CurlySingleQuotes))
	w("Replace apostrophes with a curly apostrophe.", "curly_apostrophes", strconv.FormatBool(style.CurlyApostrophes))
	w("Replace three periods with an ellipsis.", "ellipsis", strconv.FormatBool(style.Ellipsis))
	w("Replace -- with an en dash.", "en_dash", strconv.FormatBool(style.EnDash))

	emDash := "false"
	if style.EmDash != "" {
		emDash = strconv.Quote(style.EmDash)
	}
	w("Replace --- (or the given pattern) with an em dash.", "em_dash", emDash)

	return buf.Bytes()
}
