// Package typography replaces ASCII punctuation with typographic characters:
// curly quotes and apostrophes, ellipses and dashes.
//
// Only Text inlines are rewritten. Code spans, raw HTML, link destinations,
// code blocks and verbatim regions never change, and backslash-escaped
// characters are kept as written.
package typography

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/hongdown/pkg/mdast"
	"github.com/yaklabco/hongdown/pkg/options"
)

// Replacement characters.
const (
	LeftDoubleQuote  = '“'
	RightDoubleQuote = '”'
	LeftSingleQuote  = '‘'
	RightSingleQuote = '’'
	Apostrophe       = '’'
	Ellipsis         = '…'
	EnDash           = '–'
	EmDash           = '—'
)

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Enabled reports whether style turns on any substitution.
func Enabled(style options.Style) bool {
	return style.CurlyDoubleQuotes || style.CurlySingleQuotes || style.CurlyApostrophes ||
		style.Ellipsis || style.EnDash || style.EmDash != ""
}

// Apply rewrites the text of every heading, paragraph and table cell in doc.
func Apply(doc *mdast.Document, style options.Style) {
	if !Enabled(style) {
		return
	}

	//nolint:errcheck // the callback never fails
	mdast.WalkBlocks(doc.Blocks, func(b mdast.Block) error {
		for _, content := range mdast.InlineContent(b) {
			tr := &transformer{style: &style}
			tr.inlines(content)
		}
		return nil
	})
}

// String applies the substitutions to a single run of text.
func String(s string, style options.Style) string {
	tr := &transformer{style: &style}
	return tr.text(s)
}

// transformer carries the rune context across the nodes of one inline
// sequence, so that a quote after an emphasis span sees the emphasized text.
type transformer struct {
	style *options.Style

	// prev is the last rune emitted, or 0 at the start of the sequence.
	prev rune

	// openSingle counts single quotes opened and not yet closed.
	openSingle int
}

func (tr *transformer) inlines(content []mdast.Inline) {
	for _, n := range content {
		switch node := n.(type) {
		case *mdast.Text:
			node.Value = tr.text(node.Value)
		case *mdast.Emphasis, *mdast.Strong, *mdast.Link:
			tr.inlines(mdast.InlineChildren(n))
		case *mdast.CodeSpan, *mdast.Image:
			// Opaque, but reads like a word for the quote that follows.
			tr.prev = 'x'
		case *mdast.RawHTML:
			tr.prev = 0
		case *mdast.SoftBreak, *mdast.HardBreak:
			tr.prev = ' '
		default:
			mdast.Unreachable(n)
		}
	}
}

func (tr *transformer) text(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) && strings.IndexByte(asciiPunctuation, s[i+1]) >= 0 {
			out.WriteString(s[i : i+2])
			tr.prev = rune(s[i+1])
			i += 2
			continue
		}

		if n, r := tr.sequence(s[i:]); n > 0 {
			out.WriteRune(r)
			tr.prev = r
			i += n
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		next, _ := utf8.DecodeRuneInString(s[i+size:])
		switch r {
		case '"':
			if tr.style.CurlyDoubleQuotes {
				if tr.opening() {
					r = LeftDoubleQuote
				} else {
					r = RightDoubleQuote
				}
			}
		case '\'':
			r = tr.single(next)
		}

		out.WriteRune(r)
		tr.prev = r
		i += size
	}
	return out.String()
}

// sequence matches a multi-character substitution at the start of s,
// returning its length and replacement.
func (tr *transformer) sequence(s string) (int, rune) {
	if tr.style.Ellipsis && strings.HasPrefix(s, "...") {
		return 3, Ellipsis
	}
	if p := tr.style.EmDash; p != "" && strings.HasPrefix(s, p) {
		return len(p), EmDash
	}
	if tr.style.EnDash && strings.HasPrefix(s, "--") {
		return 2, EnDash
	}
	return 0, 0
}

func (tr *transformer) single(next rune) rune {
	opening := tr.opening()

	apostrophe := isWordRune(tr.prev) && isWordRune(next) ||
		opening && unicode.IsDigit(next) ||
		!opening && unicode.IsLetter(tr.prev) && tr.openSingle == 0
	if apostrophe {
		if tr.style.CurlyApostrophes {
			return Apostrophe
		}
		return '\''
	}

	if opening {
		tr.openSingle++
		if tr.style.CurlySingleQuotes {
			return LeftSingleQuote
		}
		return '\''
	}

	if tr.openSingle > 0 {
		tr.openSingle--
	}
	if tr.style.CurlySingleQuotes {
		return RightSingleQuote
	}
	return '\''
}

// opening reports whether a quote at the current position opens a quotation.
func (tr *transformer) opening() bool {
	switch tr.prev {
	case 0, '(', '[', '{', '<', '-', EnDash, EmDash, LeftDoubleQuote, LeftSingleQuote:
		return true
	}
	return unicode.IsSpace(tr.prev)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
