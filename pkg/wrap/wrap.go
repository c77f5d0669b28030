// Package wrap reflows paragraph text to the configured line width.
//
// Paragraph content is broken into words at spaces and soft line breaks,
// then refilled greedily. Code spans, raw HTML, images and link
// destinations are never split. Headings, tables and code are not wrapped.
package wrap

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/hongdown/pkg/mdast"
	"github.com/yaklabco/hongdown/pkg/options"
	"github.com/yaklabco/hongdown/pkg/serializer"
)

// quotePrefixWidth is the width of the "> " prefix of a block quote line.
const quotePrefixWidth = 2

// blockStartRegexp matches a word that would open a block if it began a
// line: a heading, list marker, quote, rule or underline, fence or HTML.
var blockStartRegexp = regexp.MustCompile(
	"^(?:#{1,6}|[-+*]|[0-9]{1,9}[.)]|>.*|=+|-+|\\*+|_+|```.*|~~~.*|<.*)$")

// Apply sets the wrapped lines of every paragraph in doc.
func Apply(doc *mdast.Document, style options.Style) {
	applyBlocks(doc.Blocks, style.LineWidth)
}

func applyBlocks(blocks []mdast.Block, width int) {
	for _, block := range blocks {
		switch node := block.(type) {
		case *mdast.Paragraph:
			node.Wrapped = Lines(node.Content, width)
		case *mdast.BlockQuote:
			applyBlocks(node.Blocks, width-quotePrefixWidth)
		case *mdast.List:
			for _, item := range node.Items {
				applyBlocks(item.Blocks, width-item.Indent)
			}
		case *mdast.ListItem:
			applyBlocks(node.Blocks, width-node.Indent)
		case *mdast.Heading, *mdast.CodeBlock, *mdast.ThematicBreak, *mdast.Table,
			*mdast.HTMLBlock, *mdast.Verbatim, *mdast.LinkDefinition, *mdast.FrontMatter:
			// Never wrapped.
		default:
			mdast.Unreachable(block)
		}
	}
}

// token is a word of a paragraph, or a forced line break.
type token struct {
	text string

	// hardBreak is the suffix that ends the line; empty for words.
	hardBreak string
}

// Lines fills the inline content into lines no wider than width where
// possible. A single word wider than width gets a line of its own.
func Lines(content []mdast.Inline, width int) []string {
	tokens := tokenize(content)

	var lines []string
	var words []string
	lineWidth := 0

	flush := func(suffix string) {
		lines = append(lines, strings.Join(words, " ")+suffix)
		words = words[:0]
		lineWidth = 0
	}

	for _, tok := range tokens {
		if tok.hardBreak != "" {
			// A break with nothing before it on the line would leave a blank
			// line, which ends the paragraph.
			if len(words) > 0 {
				flush(tok.hardBreak)
			}
			continue
		}

		w := runewidth.StringWidth(tok.text)
		switch {
		case len(words) == 0:
		case lineWidth+1+w <= width:
			lineWidth++
		case mustGlue(tok.text) || strings.HasSuffix(words[len(words)-1], `\`):
			lineWidth++
		default:
			flush("")
		}
		words = append(words, tok.text)
		lineWidth += w
	}
	if len(words) > 0 {
		flush("")
	}
	return lines
}

// mustGlue reports whether word may not start a line because it would be
// read as block syntax there.
func mustGlue(word string) bool {
	return blockStartRegexp.MatchString(word)
}

// tokenizer accumulates word fragments. Fragments with no space between
// them form one word.
type tokenizer struct {
	tokens []token
	word   strings.Builder
}

func tokenize(content []mdast.Inline) []token {
	tz := &tokenizer{}
	tz.inlines(content)
	tz.space()
	return tz.tokens
}

// space ends the current word.
func (tz *tokenizer) space() {
	if tz.word.Len() > 0 {
		tz.tokens = append(tz.tokens, token{text: tz.word.String()})
		tz.word.Reset()
	}
}

func (tz *tokenizer) glue(s string) {
	tz.word.WriteString(s)
}

func (tz *tokenizer) inlines(content []mdast.Inline) {
	for _, n := range content {
		switch node := n.(type) {
		case *mdast.Text:
			tz.text(node.Value)
		case *mdast.Emphasis:
			delim := string(node.Delim)
			tz.glue(delim)
			tz.inlines(node.Children)
			tz.glue(delim)
		case *mdast.Strong:
			delim := strings.Repeat(string(node.Delim), 2)
			tz.glue(delim)
			tz.inlines(node.Children)
			tz.glue(delim)
		case *mdast.CodeSpan:
			tz.glue(serializer.CodeSpan(node))
		case *mdast.Link:
			tz.glue("[")
			tz.inlines(node.Children)
			tz.glue("]" + serializer.LinkTail(node.Destination, node.Title))
		case *mdast.Image:
			tz.glue(serializer.Image(node))
		case *mdast.RawHTML:
			tz.glue(strings.ReplaceAll(node.Value, "\n", " "))
		case *mdast.SoftBreak:
			tz.space()
		case *mdast.HardBreak:
			tz.space()
			suffix := "  "
			if node.Backslash {
				suffix = `\`
			}
			tz.tokens = append(tz.tokens, token{hardBreak: suffix})
		default:
			mdast.Unreachable(n)
		}
	}
}

func (tz *tokenizer) text(s string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t':
			tz.space()
		default:
			tz.word.WriteByte(s[i])
		}
	}
}
