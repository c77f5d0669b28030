// Package parser converts Markdown source into the mdast document tree.
//
// Parsing never fails. Disabled spans computed by the directive scanner
// become Verbatim blocks; everything else is parsed into headings,
// paragraphs, lists and the other block kinds, with best-effort recovery
// for malformed constructs such as unterminated fences.
package parser

import (
	"strings"

	"github.com/yaklabco/hongdown/pkg/directive"
	"github.com/yaklabco/hongdown/pkg/mdast"
)

// srcLine is a line of block content together with its original 1-based
// line number. Container parsing strips prefixes from text but keeps num.
type srcLine struct {
	text string
	num  int
}

// Parse builds the document tree for src. The spans must come from
// directive.Scan on the same source; a nil span list means the whole source
// is enabled.
func Parse(src []byte, spans []directive.Span) *mdast.Document {
	doc := mdast.NewDocument(src)
	if len(src) == 0 {
		return doc
	}
	if spans == nil {
		spans = []directive.Span{{Start: 0, End: len(src), Enabled: true}}
	}

	for idx, span := range spans {
		if !span.Enabled {
			doc.Blocks = append(doc.Blocks, &mdast.Verbatim{
				Span: mdast.Span{
					StartLine: doc.LineAt(span.Start),
					EndLine:   doc.LineAt(max(span.Start, span.End-1)),
				},
				Start: span.Start,
				End:   span.End,
				Raw:   string(src[span.Start:span.End]),
			})
			continue
		}

		lines := splitSpan(doc, span)
		if idx == 0 && span.Start == 0 {
			var front *mdast.FrontMatter
			front, lines = parseFrontMatter(lines)
			if front != nil {
				doc.Blocks = append(doc.Blocks, front)
			}
		}
		doc.Blocks = append(doc.Blocks, parseBlocks(lines, 0)...)
	}

	return doc
}

// ParseString is a convenience wrapper that scans directives and parses s.
func ParseString(s string) *mdast.Document {
	src := []byte(s)
	return Parse(src, directive.Scan(src))
}

// parseContainer parses the content of a list item or block quote. Directives
// written inside the container apply to its own lines only; the regions
// they disable become Verbatim blocks holding the content with the
// container's markers stripped.
func parseContainer(lines []srcLine, listDepth int) []mdast.Block {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}

	var blocks []mdast.Block
	pos := 0
	for _, region := range directive.ScanLines(texts) {
		blocks = append(blocks, parseBlocks(lines[pos:region.First], listDepth)...)
		blocks = append(blocks, &mdast.Verbatim{
			Span: mdast.Span{StartLine: lines[region.First].num, EndLine: lines[region.Last].num},
			Raw:  strings.Join(texts[region.First:region.Last+1], "\n"),
		})
		pos = region.Last + 1
	}
	return append(blocks, parseBlocks(lines[pos:], listDepth)...)
}

func splitSpan(doc *mdast.Document, span directive.Span) []srcLine {
	text := string(doc.Source[span.Start:span.End])
	first := doc.LineAt(span.Start)

	parts := strings.Split(text, "\n")
	lines := make([]srcLine, len(parts))
	for i, part := range parts {
		lines[i] = srcLine{text: strings.TrimSuffix(part, "\r"), num: first + i}
	}
	return lines
}
