// Package serializer renders a canonicalized document tree back to Markdown.
//
// The serializer makes no style decisions of its own: markers, fences and
// heading styles come from the canonicalizer and paragraph lines from the
// wrapper. Verbatim regions are written exactly as they appeared in the
// source.
package serializer

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/hongdown/pkg/directive"
	"github.com/yaklabco/hongdown/pkg/mdast"
	"github.com/yaklabco/hongdown/pkg/syntax"
)

const (
	quotePrefix    = "> "
	minColumnWidth = 3
)

// Render returns the Markdown text of doc. Non-empty output ends with exactly
// one newline.
func Render(doc *mdast.Document) string {
	lines := blockLines(doc.Blocks, false)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// blockLines renders sibling blocks. Loose siblings are separated by one
// blank line; the children of a tight list item are not.
func blockLines(blocks []mdast.Block, tight bool) []string {
	var out []string
	for i, block := range blocks {
		afterParagraph := false
		if i > 0 {
			if !tight && !disabledBy(blocks[i-1], block) {
				out = append(out, "")
			}
			_, afterParagraph = blocks[i-1].(*mdast.Paragraph)
		}
		out = append(out, renderBlock(block, tight && afterParagraph)...)
	}
	return out
}

// disabledBy reports whether block is a region disabled by the directive
// comment prev. The region stays directly under its directive.
func disabledBy(prev, block mdast.Block) bool {
	if _, ok := block.(*mdast.Verbatim); !ok {
		return false
	}
	html, ok := prev.(*mdast.HTMLBlock)
	return ok && len(html.Lines) == 1 && directive.Parse(html.Lines[0]) != directive.KindNone
}

// renderBlock renders one block. glued is set when the block directly
// follows a paragraph line, where a setext underline or a dash rule would
// be read as part of that paragraph.
func renderBlock(block mdast.Block, glued bool) []string {
	switch node := block.(type) {
	case *mdast.Heading:
		return heading(node, glued)
	case *mdast.Paragraph:
		if node.Wrapped != nil {
			return node.Wrapped
		}
		return strings.Split(Inlines(node.Content), "\n")
	case *mdast.List:
		return list(node)
	case *mdast.ListItem:
		return blockLines(node.Blocks, false)
	case *mdast.CodeBlock:
		return codeBlock(node)
	case *mdast.ThematicBreak:
		if glued {
			return []string{strings.ReplaceAll(node.Text, "-", "*")}
		}
		return []string{node.Text}
	case *mdast.Table:
		return table(node)
	case *mdast.BlockQuote:
		return blockQuote(node)
	case *mdast.HTMLBlock:
		return node.Lines
	case *mdast.Verbatim:
		return strings.Split(node.Raw, "\n")
	case *mdast.LinkDefinition:
		line := "[" + node.Label + "]: " + node.Destination
		if node.Title != "" {
			line += " " + node.Title
		}
		return []string{line}
	case *mdast.FrontMatter:
		out := make([]string, 0, len(node.Lines)+2)
		out = append(out, node.Delimiter)
		out = append(out, node.Lines...)
		return append(out, node.Delimiter)
	default:
		mdast.Unreachable(block)
		return nil
	}
}

func heading(h *mdast.Heading, glued bool) []string {
	text := InlinesFlat(h.Content)

	// Setext text must read as a paragraph line on its own.
	if h.Style == mdast.HeadingSetext && !glued && syntax.IsParagraphText(text) {
		underline := "="
		if h.Level == 2 {
			underline = "-"
		}
		width := max(runewidth.StringWidth(text), 1)
		return []string{text, strings.Repeat(underline, width)}
	}

	hashes := strings.Repeat("#", h.Level)
	if text == "" {
		return []string{hashes}
	}
	if strings.HasSuffix(text, "#") && !strings.HasSuffix(text, `\#`) {
		// A trailing hash would be read as a closing sequence.
		text = text[:len(text)-1] + `\#`
	}
	return []string{hashes + " " + text}
}

func list(l *mdast.List) []string {
	var out []string
	for i, item := range l.Items {
		if i > 0 && !l.Tight {
			out = append(out, "")
		}

		child := blockLines(item.Blocks, l.Tight)
		if len(child) == 0 {
			out = append(out, strings.TrimRight(item.Marker, " "))
			continue
		}
		out = append(out, item.Marker+child[0])
		out = append(out, indent(child[1:], strings.Repeat(" ", item.Indent))...)
	}
	return out
}

func blockQuote(q *mdast.BlockQuote) []string {
	inner := blockLines(q.Blocks, false)
	if len(inner) == 0 {
		return []string{strings.TrimRight(quotePrefix, " ")}
	}
	out := make([]string, len(inner))
	for i, line := range inner {
		if line == "" {
			out[i] = strings.TrimRight(quotePrefix, " ")
		} else {
			out[i] = quotePrefix + line
		}
	}
	return out
}

// indent prefixes every non-blank line.
func indent(lines []string, prefix string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line != "" {
			out[i] = prefix + line
		}
	}
	return out
}

func codeBlock(code *mdast.CodeBlock) []string {
	char := code.FenceChar
	if char == 0 {
		char = '`'
	}
	fence := strings.Repeat(string(char), max(code.FenceLength, 3))

	open := fence
	if code.Language != "" {
		if code.InfoSpace {
			open += " "
		}
		open += code.Language
	}

	out := make([]string, 0, len(code.Lines)+2)
	out = append(out, open)
	out = append(out, code.Lines...)
	return append(out, fence)
}
