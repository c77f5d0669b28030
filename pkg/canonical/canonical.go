// Package canonical rewrites the presentation of a parsed document to the
// configured style: heading styles, list markers and indentation, code fences
// and thematic breaks. Inline content and verbatim regions are left alone.
package canonical

import (
	"strconv"
	"strings"

	"github.com/yaklabco/hongdown/pkg/langdetect"
	"github.com/yaklabco/hongdown/pkg/mdast"
	"github.com/yaklabco/hongdown/pkg/options"
)

// listSeparator keeps two adjacent lists apart when their canonical markers
// would otherwise join them into one list.
const listSeparator = "<!-- -->"

// maxMarkerGap is the widest run of spaces allowed between a list marker and
// the item content. Five or more spaces would start an indented code block.
const maxMarkerGap = 4

// Apply canonicalizes doc in place.
func Apply(doc *mdast.Document, style options.Style) {
	doc.Blocks = applyBlocks(doc.Blocks, &style)
}

func applyBlocks(blocks []mdast.Block, style *options.Style) []mdast.Block {
	for _, block := range blocks {
		applyBlock(block, style)
	}
	return separateLists(blocks)
}

func applyBlock(block mdast.Block, style *options.Style) {
	switch node := block.(type) {
	case *mdast.Heading:
		node.Style = headingStyle(node, style)
	case *mdast.List:
		applyList(node, style)
	case *mdast.ListItem:
		node.Blocks = applyBlocks(node.Blocks, style)
	case *mdast.CodeBlock:
		applyCodeBlock(node, style)
	case *mdast.ThematicBreak:
		node.Text = strings.Repeat(" ", style.ThematicBreakLeadingSpaces) + style.ThematicBreakStyle
	case *mdast.BlockQuote:
		node.Blocks = applyBlocks(node.Blocks, style)
	case *mdast.Paragraph, *mdast.Table, *mdast.HTMLBlock, *mdast.Verbatim,
		*mdast.LinkDefinition, *mdast.FrontMatter:
		// Nothing to canonicalize at block level.
	default:
		mdast.Unreachable(block)
	}
}

func headingStyle(h *mdast.Heading, style *options.Style) mdast.HeadingStyle {
	if len(h.Content) == 0 {
		return mdast.HeadingATX
	}
	if (h.Level == 1 && style.SetextH1) || (h.Level == 2 && style.SetextH2) {
		return mdast.HeadingSetext
	}
	return mdast.HeadingATX
}

func applyList(list *mdast.List, style *options.Style) {
	if list.Ordered {
		applyOrderedMarkers(list, style)
	} else {
		marker := style.BulletMarker()
		indent := max(style.IndentWidth, len(marker))
		indent = min(indent, style.LeadingSpaces+1+maxMarkerGap)
		for _, item := range list.Items {
			item.Marker = padRight(marker, indent)
			item.Indent = indent
		}
	}

	for _, item := range list.Items {
		item.Blocks = applyBlocks(item.Blocks, style)
	}
}

func applyOrderedMarkers(list *mdast.List, style *options.Style) {
	delim := style.OrderedDelimiter(list.Depth)

	numbers := make([]string, len(list.Items))
	for i := range list.Items {
		numbers[i] = strconv.Itoa(list.Start + i)
	}
	widest, narrowest := 0, len(numbers[0])
	for _, n := range numbers {
		widest = max(widest, len(n))
		narrowest = min(narrowest, len(n))
	}

	markerWidth := widest + len(delim)
	indent := max(style.OrderedListIndentWidth, markerWidth+1)
	if style.OrderedListPad == options.PadEnd {
		indent = max(markerWidth+1, min(indent, narrowest+len(delim)+maxMarkerGap))
	} else {
		indent = min(indent, markerWidth+maxMarkerGap)
	}

	for i, item := range list.Items {
		num := numbers[i]
		if style.OrderedListPad == options.PadStart {
			num = strings.Repeat(" ", widest-len(num)) + num
		}
		item.Marker = padRight(num+delim, indent)
		item.Indent = indent
	}
}

func applyCodeBlock(code *mdast.CodeBlock, style *options.Style) {
	if code.Language == "" && style.DetectLanguage {
		if lang, ok := langdetect.DetectLines(code.Lines); ok {
			code.Language = lang
		}
	}
	if code.Language == "" {
		code.Language = style.DefaultLanguage
	}

	char := style.FenceChar[0]
	if char == '`' && strings.ContainsRune(code.Language, '`') {
		// A backtick fence cannot carry an info string with a backtick.
		char = '~'
	}

	code.FenceChar = char
	code.FenceLength = max(style.MinFenceLength, longestFenceRun(code.Lines, char)+1)
	code.Indented = false
	code.InfoSpace = style.SpaceAfterFence
}

// longestFenceRun returns the longest run of char that starts a line of
// content, which a fence of the same character must exceed.
func longestFenceRun(lines []string, char byte) int {
	longest := 0
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		n := 0
		for n < len(trimmed) && trimmed[n] == char {
			n++
		}
		longest = max(longest, n)
	}
	return longest
}

// separateLists inserts a separator comment between adjacent lists of the
// same kind, which would render with identical markers and merge.
func separateLists(blocks []mdast.Block) []mdast.Block {
	var out []mdast.Block
	for i, block := range blocks {
		if i > 0 {
			prev, ok1 := blocks[i-1].(*mdast.List)
			cur, ok2 := block.(*mdast.List)
			if ok1 && ok2 && prev.Ordered == cur.Ordered {
				if out == nil {
					out = append(out, blocks[:i]...)
				}
				out = append(out, &mdast.HTMLBlock{
					Span:  mdast.Span{StartLine: cur.StartLine, EndLine: cur.StartLine},
					Lines: []string{listSeparator},
				})
			}
		}
		if out != nil {
			out = append(out, block)
		}
	}
	if out == nil {
		return blocks
	}
	return out
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
