package parser

import (
	"github.com/yaklabco/hongdown/pkg/mdast"
	"github.com/yaklabco/hongdown/pkg/syntax"
)

func (p *blockParser) parseList(first syntax.ListMarker) mdast.Block {
	list := &mdast.List{
		Ordered:   first.Ordered,
		Start:     first.Number,
		Bullet:    first.Bullet,
		Delimiter: first.Delimiter,
		Depth:     p.listDepth + 1,
	}

	loose := false
	for p.more() {
		marker, ok := syntax.ParseListMarker(p.peek().text)
		if !ok || !marker.SameList(first) {
			break
		}
		list.Items = append(list.Items, p.parseListItem(marker, list.Depth))

		// Look past blank lines for the next item of the same list.
		save := p.pos
		blanks := 0
		for p.more() && syntax.IsBlank(p.peek().text) {
			p.pos++
			blanks++
		}
		if !p.more() {
			p.pos = save
			break
		}
		next, ok := syntax.ParseListMarker(p.peek().text)
		if !ok || !next.SameList(first) {
			p.pos = save
			break
		}
		if blanks > 0 {
			loose = true
		}
	}

	for _, item := range list.Items {
		if hasBlockGap(item.Blocks) {
			loose = true
		}
	}

	list.Tight = !loose
	list.Span = mdast.Span{
		StartLine: list.Items[0].StartLine,
		EndLine:   list.Items[len(list.Items)-1].EndLine,
	}
	return list
}

// parseListItem consumes the lines of one item. Lines indented to the
// content column belong to the item; a less indented line ends it unless it
// lazily continues a paragraph. Trailing blank lines are left unconsumed.
func (p *blockParser) parseListItem(marker syntax.ListMarker, depth int) *mdast.ListItem {
	first := p.peek()
	p.pos++

	item := &mdast.ListItem{
		Span:  mdast.Span{StartLine: first.num, EndLine: first.num},
		Depth: depth,
	}

	var inner []srcLine
	if marker.Empty() {
		// An item may begin with at most one blank line.
		if !p.more() || syntax.IsBlank(p.peek().text) {
			return item
		}
	} else {
		inner = append(inner, srcLine{text: marker.Rest, num: first.num})
	}

	committed := len(inner)
	resume := p.pos
	for p.more() {
		line := p.peek()
		switch {
		case syntax.IsBlank(line.text):
			inner = append(inner, srcLine{num: line.num})
		case syntax.Indent(line.text) >= marker.Width:
			inner = append(inner, srcLine{text: syntax.StripIndent(line.text, marker.Width), num: line.num})
		case lazyContinuation(inner, line.text):
			inner = append(inner, line)
		default:
			item.Blocks = parseContainer(inner[:committed], depth)
			p.pos = resume
			return item
		}
		p.pos++
		if !syntax.IsBlank(line.text) {
			committed = len(inner)
			resume = p.pos
			item.EndLine = line.num
		}
	}

	item.Blocks = parseContainer(inner[:committed], depth)
	p.pos = resume
	return item
}

// hasBlockGap reports whether two adjacent blocks are separated by at least
// one blank source line.
func hasBlockGap(blocks []mdast.Block) bool {
	for i := 1; i < len(blocks); i++ {
		if blocks[i].Pos().StartLine > blocks[i-1].Pos().EndLine+1 {
			return true
		}
	}
	return false
}
