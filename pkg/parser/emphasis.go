package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/hongdown/pkg/mdast"
)

// piece is an element of the flat inline sequence built by the scanner.
// Exactly one of node, text or a delimiter run (delim != 0) is set.
type piece struct {
	node mdast.Inline
	text string

	delim    byte
	count    int
	orig     int
	canOpen  bool
	canClose bool
}

func (p piece) isDelim() bool {
	return p.delim != 0
}

// newDelimiterRun classifies the run of delimiter characters s[start:end]
// by the left- and right-flanking rules.
func newDelimiterRun(s string, start, end int) piece {
	char := s[start]
	prev, next := ' ', ' '
	if start > 0 {
		prev, _ = utf8.DecodeLastRuneInString(s[:start])
	}
	if end < len(s) {
		next, _ = utf8.DecodeRuneInString(s[end:])
	}

	left := !unicode.IsSpace(next) &&
		(!isPunctuation(next) || unicode.IsSpace(prev) || isPunctuation(prev))
	right := !unicode.IsSpace(prev) &&
		(!isPunctuation(prev) || unicode.IsSpace(next) || isPunctuation(next))

	run := piece{delim: char, count: end - start, orig: end - start}
	if char == '*' {
		run.canOpen = left
		run.canClose = right
	} else {
		run.canOpen = left && (!right || isPunctuation(prev))
		run.canClose = right && (!left || isPunctuation(next))
	}
	return run
}

func isPunctuation(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// resolveEmphasis pairs delimiter runs into Emphasis and Strong nodes and
// returns the resulting inline sequence.
func resolveEmphasis(pieces []piece) []mdast.Inline {
	for closer := 0; closer < len(pieces); closer++ {
		for pieces[closer].isDelim() && pieces[closer].canClose && pieces[closer].count > 0 {
			opener := findOpener(pieces, closer)
			if opener < 0 {
				break
			}

			use := 1
			if pieces[opener].count >= 2 && pieces[closer].count >= 2 {
				use = 2
			}
			children := flatten(pieces[opener+1 : closer])
			var node mdast.Inline
			if use == 2 {
				node = &mdast.Strong{Delim: pieces[closer].delim, Children: children}
			} else {
				node = &mdast.Emphasis{Delim: pieces[closer].delim, Children: children}
			}
			pieces[opener].count -= use
			pieces[closer].count -= use

			rebuilt := make([]piece, 0, len(pieces))
			rebuilt = append(rebuilt, pieces[:opener]...)
			if pieces[opener].count > 0 {
				rebuilt = append(rebuilt, pieces[opener])
			}
			rebuilt = append(rebuilt, piece{node: node})
			next := len(rebuilt)
			rebuilt = append(rebuilt, pieces[closer:]...)
			pieces = rebuilt
			closer = next
		}
	}
	return flatten(pieces)
}

func findOpener(pieces []piece, closer int) int {
	c := pieces[closer]
	for idx := closer - 1; idx >= 0; idx-- {
		o := pieces[idx]
		if !o.isDelim() || o.delim != c.delim || !o.canOpen || o.count == 0 {
			continue
		}
		// Rule of three: a run that can both open and close may not pair
		// with one whose combined length is a multiple of three.
		if (o.canClose || c.canOpen) && (o.orig+c.orig)%3 == 0 && (o.orig%3 != 0 || c.orig%3 != 0) {
			continue
		}
		return idx
	}
	return -1
}

// flatten converts pieces into inlines. Unmatched delimiters become text and
// adjacent text is merged.
func flatten(pieces []piece) []mdast.Inline {
	var out []mdast.Inline
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			out = append(out, &mdast.Text{Value: text.String()})
			text.Reset()
		}
	}

	for _, p := range pieces {
		switch {
		case p.isDelim():
			text.WriteString(strings.Repeat(string(p.delim), p.count))
		case p.node != nil:
			if t, ok := p.node.(*mdast.Text); ok {
				text.WriteString(t.Value)
				continue
			}
			flush()
			out = append(out, p.node)
		default:
			text.WriteString(p.text)
		}
	}
	flush()
	return out
}
