package parser

import (
	"regexp"
	"strings"

	"github.com/yaklabco/hongdown/pkg/mdast"
	"github.com/yaklabco/hongdown/pkg/syntax"
)

var (
	autolinkRegexp = regexp.MustCompile(`^<[A-Za-z][A-Za-z0-9.+-]{1,31}:[^<>\x00-\x20]*>`)
	emailRegexp    = regexp.MustCompile(
		"^<[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
			`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*>`)
	rawHTMLRegexp = regexp.MustCompile(`^(?:` + syntax.OpenTag + `|` + syntax.ClosingTag +
		`|(?s:<!--.*?-->)|(?s:<\?.*?\?>)|<![A-Za-z][^>]*>|(?s:<!\[CDATA\[.*?\]\]>))`)
)

// inlineScanner turns the text of a leaf block into a flat piece sequence.
type inlineScanner struct {
	src    string
	pos    int
	text   strings.Builder
	pieces []piece
}

// parseInlines parses the inline content of a heading, paragraph or table
// cell. Backslash escapes and entity references are kept as written.
func parseInlines(s string) []mdast.Inline {
	if s == "" {
		return nil
	}
	sc := &inlineScanner{src: s}
	sc.scan()
	return resolveEmphasis(sc.pieces)
}

func (sc *inlineScanner) flush() {
	if sc.text.Len() > 0 {
		sc.pieces = append(sc.pieces, piece{text: sc.text.String()})
		sc.text.Reset()
	}
}

func (sc *inlineScanner) emit(node mdast.Inline) {
	sc.flush()
	sc.pieces = append(sc.pieces, piece{node: node})
}

func (sc *inlineScanner) scan() {
	s := sc.src
	for sc.pos < len(s) {
		c := s[sc.pos]
		switch c {
		case '\\':
			sc.scanEscape()
		case '`':
			sc.scanCodeSpan()
		case '*', '_':
			end := sc.pos
			for end < len(s) && s[end] == c {
				end++
			}
			sc.flush()
			sc.pieces = append(sc.pieces, newDelimiterRun(s, sc.pos, end))
			sc.pos = end
		case '!':
			if sc.pos+1 < len(s) && s[sc.pos+1] == '[' && sc.scanLink(true) {
				continue
			}
			sc.text.WriteByte(c)
			sc.pos++
		case '[':
			if sc.scanLink(false) {
				continue
			}
			sc.text.WriteByte(c)
			sc.pos++
		case '<':
			if m := sc.matchTag(); m != "" {
				sc.emit(&mdast.RawHTML{Value: m})
				sc.pos += len(m)
				continue
			}
			sc.text.WriteByte(c)
			sc.pos++
		case '\n':
			sc.scanLineEnding()
		default:
			sc.text.WriteByte(c)
			sc.pos++
		}
	}
	sc.flush()
}

func (sc *inlineScanner) scanEscape() {
	s := sc.src
	if sc.pos+1 >= len(s) {
		sc.text.WriteByte('\\')
		sc.pos++
		return
	}
	next := s[sc.pos+1]
	switch {
	case next == '\n':
		sc.trimTrailingSpace()
		sc.emit(&mdast.HardBreak{Backslash: true})
		sc.pos += 2
		sc.skipLeadingSpace()
	case isASCIIPunctuation(next):
		sc.text.WriteString(s[sc.pos : sc.pos+2])
		sc.pos += 2
	default:
		sc.text.WriteByte('\\')
		sc.pos++
	}
}

func (sc *inlineScanner) scanLineEnding() {
	current := sc.text.String()
	trimmed := strings.TrimRight(current, " \t")
	hard := len(current)-len(strings.TrimRight(current, " ")) >= 2
	sc.text.Reset()
	sc.text.WriteString(trimmed)

	if hard {
		sc.emit(&mdast.HardBreak{})
	} else {
		sc.emit(&mdast.SoftBreak{})
	}
	sc.pos++
	sc.skipLeadingSpace()
}

func (sc *inlineScanner) trimTrailingSpace() {
	trimmed := strings.TrimRight(sc.text.String(), " \t")
	sc.text.Reset()
	sc.text.WriteString(trimmed)
}

func (sc *inlineScanner) skipLeadingSpace() {
	for sc.pos < len(sc.src) && (sc.src[sc.pos] == ' ' || sc.src[sc.pos] == '\t') {
		sc.pos++
	}
}

func (sc *inlineScanner) scanCodeSpan() {
	s := sc.src
	n := runLength(s, sc.pos, '`')
	end := findBacktickRun(s, sc.pos+n, n)
	if end < 0 {
		sc.text.WriteString(s[sc.pos : sc.pos+n])
		sc.pos += n
		return
	}
	value := strings.ReplaceAll(s[sc.pos+n:end], "\n", " ")
	sc.emit(&mdast.CodeSpan{Value: value, Fence: n})
	sc.pos = end + n
}

// findBacktickRun returns the start of the next run of exactly n backticks
// at or after from, or -1.
func findBacktickRun(s string, from, n int) int {
	for i := from; i < len(s); {
		if s[i] != '`' {
			i++
			continue
		}
		run := runLength(s, i, '`')
		if run == n {
			return i
		}
		i += run
	}
	return -1
}

func runLength(s string, from int, c byte) int {
	n := 0
	for from+n < len(s) && s[from+n] == c {
		n++
	}
	return n
}

func (sc *inlineScanner) matchTag() string {
	rest := sc.src[sc.pos:]
	for _, re := range []*regexp.Regexp{autolinkRegexp, emailRegexp, rawHTMLRegexp} {
		if m := re.FindString(rest); m != "" {
			return m
		}
	}
	return ""
}

// scanLink tries to parse an inline link or image at the current position.
// Reference links are left as text.
func (sc *inlineScanner) scanLink(image bool) bool {
	s := sc.src
	open := sc.pos
	if image {
		open++
	}
	closeIdx := findLabelEnd(s, open)
	if closeIdx < 0 || closeIdx+1 >= len(s) || s[closeIdx+1] != '(' {
		return false
	}
	dest, title, end, ok := parseLinkTail(s, closeIdx+2)
	if !ok {
		return false
	}

	label := s[open+1 : closeIdx]
	if image {
		sc.emit(&mdast.Image{Alt: label, Destination: dest, Title: title})
	} else {
		sc.emit(&mdast.Link{Children: parseInlines(label), Destination: dest, Title: title})
	}
	sc.pos = end
	return true
}

// findLabelEnd returns the index of the bracket closing the one at open.
func findLabelEnd(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '`':
			n := runLength(s, i, '`')
			if end := findBacktickRun(s, i+n, n); end >= 0 {
				i = end + n - 1
			} else {
				i += n - 1
			}
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseLinkTail parses `destination "title")` starting just after the
// opening parenthesis. It returns the destination and title as written and
// the index just past the closing parenthesis.
func parseLinkTail(s string, pos int) (string, string, int, bool) {
	pos = skipLinkSpace(s, pos)
	if pos >= len(s) {
		return "", "", 0, false
	}

	var dest string
	if s[pos] == '<' {
		end := pos + 1
		for end < len(s) && s[end] != '>' && s[end] != '\n' && s[end] != '<' {
			if s[end] == '\\' {
				end++
			}
			end++
		}
		if end >= len(s) || s[end] != '>' {
			return "", "", 0, false
		}
		dest = s[pos : end+1]
		pos = end + 1
	} else {
		start := pos
		depth := 0
	loop:
		for pos < len(s) {
			switch c := s[pos]; {
			case c == '\\' && pos+1 < len(s):
				pos += 2
				continue
			case c == '(':
				depth++
			case c == ')':
				if depth == 0 {
					break loop
				}
				depth--
			case c <= ' ':
				break loop
			}
			pos++
		}
		dest = s[start:pos]
	}

	afterDest := pos
	pos = skipLinkSpace(s, pos)
	if pos >= len(s) {
		return "", "", 0, false
	}

	var title string
	if pos > afterDest && (s[pos] == '"' || s[pos] == '\'' || s[pos] == '(') {
		closer := s[pos]
		if closer == '(' {
			closer = ')'
		}
		end := pos + 1
		for end < len(s) && s[end] != closer {
			if s[end] == '\\' {
				end++
			}
			end++
		}
		if end >= len(s) {
			return "", "", 0, false
		}
		title = s[pos : end+1]
		pos = skipLinkSpace(s, end+1)
	}

	if pos >= len(s) || s[pos] != ')' {
		return "", "", 0, false
	}
	return dest, title, pos + 1, true
}

func skipLinkSpace(s string, pos int) int {
	newlines := 0
	for pos < len(s) {
		switch s[pos] {
		case ' ', '\t':
		case '\n':
			newlines++
			if newlines > 1 {
				return pos
			}
		default:
			return pos
		}
		pos++
	}
	return pos
}

func isASCIIPunctuation(c byte) bool {
	return strings.IndexByte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", c) >= 0
}
