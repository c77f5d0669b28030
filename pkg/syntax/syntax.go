// Package syntax classifies single Markdown source lines.
//
// The predicates here are shared by the directive scanner, which needs to
// find block and section boundaries without building a tree, and by the
// parser.
package syntax

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	thematicBreakRegexp = regexp.MustCompile(
		`^ {0,3}((?:-[ \t]*){3,}|(?:_[ \t]*){3,}|(?:\*[ \t]*){3,})$`)

	// Capture group 1: heading opener.
	atxHeadingRegexp       = regexp.MustCompile(`^ {0,3}(#{1,6})(?:[ \t]|$)`)
	atxHeadingCloserRegexp = regexp.MustCompile(`(?:^|[ \t])#+[ \t]*$`)

	setextUnderlineRegexp = regexp.MustCompile(`^ {0,3}(=+|-+)[ \t]*$`)

	// Capture groups:
	// 1. Indent
	// 2. Fence punctuations (backquote fence)
	// 3. Untrimmed info string (backquote fence)
	// 4. Fence punctuations (tilde fence)
	// 5. Untrimmed info string (tilde fence)
	codeFenceRegexp = regexp.MustCompile("^( {0,3})(?:(`{3,})([^`]*)|(~{3,})(.*))$")

	codeFenceCloserRegexp = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})[ \t]*$")

	blockquoteMarkerRegexp = regexp.MustCompile(`^ {0,3}> ?`)

	// Capture groups:
	// 1. Indent
	// 2. bullet item punctuation
	// 3. ordered item start index
	// 4. ordered item punctuation
	// 5. trailing whitespace
	listMarkerRegexp = regexp.MustCompile(`^( {0,3})(?:([-+*])|([0-9]{1,9})([.)]))([ \t]+|$)`)

	linkDefinitionRegexp = regexp.MustCompile(
		`^ {0,3}\[((?:[^\]\\]|\\.)+)\]:[ \t]*(<[^>\n]*>|\S+)` +
			`(?:[ \t]+("(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'|\((?:[^)\\]|\\.)*\)))?[ \t]*$`)
)

// IsBlank reports whether line contains only spaces and tabs.
func IsBlank(line string) bool {
	return strings.Trim(line, " \t") == ""
}

// Indent returns the width of the leading whitespace of line, with tab stops
// every four columns.
func Indent(line string) int {
	width := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			width++
		case '\t':
			width += 4 - width%4
		default:
			return width
		}
	}
	return width
}

// StripIndent removes up to n columns of leading whitespace from line.
// A tab that straddles the boundary is replaced by the spaces it leaves over.
func StripIndent(line string, n int) string {
	width := 0
	for i := 0; i < len(line); i++ {
		if width >= n {
			return line[i:]
		}
		switch line[i] {
		case ' ':
			width++
		case '\t':
			next := width + 4 - width%4
			if next > n {
				return strings.Repeat(" ", next-n) + line[i+1:]
			}
			width = next
		default:
			return line[i:]
		}
	}
	return ""
}

// IsThematicBreak reports whether line is a thematic break.
func IsThematicBreak(line string) bool {
	return thematicBreakRegexp.MatchString(line)
}

// ATXHeading parses an ATX heading line, returning its level and its text
// with the optional closing sequence removed.
func ATXHeading(line string) (int, string, bool) {
	m := atxHeadingRegexp.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	text := line[len(m[0]):]
	if loc := atxHeadingCloserRegexp.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}
	return len(m[1]), strings.Trim(text, " \t"), true
}

// SetextUnderline reports whether line can underline a setext heading,
// returning the level it would give.
func SetextUnderline(line string) (int, bool) {
	m := setextUnderlineRegexp.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	if m[1][0] == '=' {
		return 1, true
	}
	return 2, true
}

// Fence describes an opening code fence.
type Fence struct {
	Indent int
	Char   byte
	Length int
	Info   string
}

// FenceOpen parses an opening code fence.
func FenceOpen(line string) (Fence, bool) {
	m := codeFenceRegexp.FindStringSubmatch(line)
	if m == nil {
		return Fence{}, false
	}
	if m[2] != "" {
		return Fence{Indent: len(m[1]), Char: '`', Length: len(m[2]), Info: strings.Trim(m[3], " \t")}, true
	}
	return Fence{Indent: len(m[1]), Char: '~', Length: len(m[4]), Info: strings.Trim(m[5], " \t")}, true
}

// Closes reports whether line closes the fence f.
func (f Fence) Closes(line string) bool {
	m := codeFenceCloserRegexp.FindStringSubmatch(line)
	return m != nil && m[1][0] == f.Char && len(m[1]) >= f.Length
}

// BlockQuote strips a block quote marker from line.
func BlockQuote(line string) (string, bool) {
	marker := blockquoteMarkerRegexp.FindString(line)
	if marker == "" {
		return line, false
	}
	return line[len(marker):], true
}

// ListMarker describes the marker of a list item.
type ListMarker struct {
	Indent  int
	Ordered bool

	// Bullet is -, * or + for bullet items.
	Bullet byte

	// Number and Delimiter are set for ordered items.
	Number    int
	Delimiter byte

	// Width is the column where the item content starts.
	Width int

	// Rest is the content of the first line.
	Rest string
}

// Empty reports whether the item's first line has no content.
func (m ListMarker) Empty() bool {
	return IsBlank(m.Rest)
}

// SameList reports whether two markers belong to the same list.
func (m ListMarker) SameList(other ListMarker) bool {
	if m.Ordered != other.Ordered {
		return false
	}
	if m.Ordered {
		return m.Delimiter == other.Delimiter
	}
	return m.Bullet == other.Bullet
}

// ParseListMarker parses the marker of a list item starting on line.
func ParseListMarker(line string) (ListMarker, bool) {
	if IsThematicBreak(line) {
		return ListMarker{}, false
	}
	m := listMarkerRegexp.FindStringSubmatch(line)
	if m == nil {
		return ListMarker{}, false
	}

	marker := ListMarker{Indent: len(m[1])}
	if m[2] != "" {
		marker.Bullet = m[2][0]
	} else {
		marker.Ordered = true
		marker.Number, _ = strconv.Atoi(m[3])
		marker.Delimiter = m[4][0]
	}

	markerEnd := len(m[0]) - len(m[5])
	rest := line[markerEnd:]
	spaces := Indent(rest)

	switch {
	case IsBlank(rest):
		marker.Width = markerEnd + 1
		marker.Rest = ""
	case spaces >= 5:
		marker.Width = markerEnd + 1
		marker.Rest = StripIndent(rest, 1)
	default:
		marker.Width = markerEnd + spaces
		marker.Rest = StripIndent(rest, spaces)
	}
	return marker, true
}

// CanInterruptParagraph reports whether a list item starting with m may
// interrupt a paragraph.
func (m ListMarker) CanInterruptParagraph() bool {
	if m.Empty() {
		return false
	}
	return !m.Ordered || m.Number == 1
}

// LinkDefinition is a parsed link reference definition.
type LinkDefinition struct {
	Label       string
	Destination string
	Title       string
}

// ParseLinkDefinition parses a single-line link reference definition.
func ParseLinkDefinition(line string) (LinkDefinition, bool) {
	m := linkDefinitionRegexp.FindStringSubmatch(line)
	if m == nil || strings.Trim(m[1], " \t") == "" {
		return LinkDefinition{}, false
	}
	return LinkDefinition{Label: m[1], Destination: m[2], Title: m[3]}, true
}

// StartsHeading reports whether the run of non-blank lines beginning at
// lines[0] is a heading: either an ATX heading line or paragraph text
// closed by a setext underline.
func StartsHeading(lines []string) bool {
	if len(lines) == 0 || IsBlank(lines[0]) {
		return false
	}
	if _, _, ok := ATXHeading(lines[0]); ok {
		return true
	}
	if !IsParagraphText(lines[0]) {
		return false
	}
	for _, line := range lines[1:] {
		if IsBlank(line) {
			return false
		}
		if _, ok := SetextUnderline(line); ok {
			return true
		}
		if !IsParagraphText(line) {
			return false
		}
	}
	return false
}

// IsParagraphText reports whether line would start or continue paragraph
// text rather than open another kind of block.
func IsParagraphText(line string) bool {
	if IsBlank(line) || Indent(line) >= 4 {
		return false
	}
	if _, _, ok := ATXHeading(line); ok {
		return false
	}
	if _, ok := FenceOpen(line); ok {
		return false
	}
	if _, ok := BlockQuote(line); ok {
		return false
	}
	if IsThematicBreak(line) {
		return false
	}
	if _, ok := ParseListMarker(line); ok {
		return false
	}
	if _, ok := HTMLBlockStart(line, true); ok {
		return false
	}
	return true
}

// ContinuesParagraph reports whether line, written without the marker of
// the container it sits in, lazily continues a paragraph whose last line is
// last.
func ContinuesParagraph(last, line string) bool {
	if IsBlank(last) || !IsParagraphText(strings.TrimLeft(last, " \t")) {
		return false
	}
	return IsParagraphText(strings.TrimLeft(line, " \t"))
}
