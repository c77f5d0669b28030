package parser

import (
	"strings"

	"github.com/yaklabco/hongdown/pkg/mdast"
	"github.com/yaklabco/hongdown/pkg/syntax"
)

const indentedCodeWidth = 4

// blockParser parses a sequence of lines into blocks. Container blocks
// collect their own lines, strip their markers and parse the result with a
// fresh blockParser.
type blockParser struct {
	lines     []srcLine
	pos       int
	listDepth int
}

func parseBlocks(lines []srcLine, listDepth int) []mdast.Block {
	p := &blockParser{lines: lines, listDepth: listDepth}
	return p.parse()
}

func (p *blockParser) more() bool {
	return p.pos < len(p.lines)
}

func (p *blockParser) peek() srcLine {
	return p.lines[p.pos]
}

func (p *blockParser) parse() []mdast.Block {
	var blocks []mdast.Block
	for p.more() {
		line := p.peek()
		if syntax.IsBlank(line.text) {
			p.pos++
			continue
		}
		blocks = append(blocks, p.parseBlock(line))
	}
	return blocks
}

func (p *blockParser) parseBlock(line srcLine) mdast.Block {
	if fence, ok := syntax.FenceOpen(line.text); ok {
		return p.parseFencedCode(fence)
	}
	if syntax.Indent(line.text) >= indentedCodeWidth {
		return p.parseIndentedCode()
	}
	if level, text, ok := syntax.ATXHeading(line.text); ok {
		p.pos++
		return &mdast.Heading{
			Span:    mdast.Span{StartLine: line.num, EndLine: line.num},
			Level:   level,
			Content: parseInlines(text),
			Style:   mdast.HeadingATX,
		}
	}
	if _, ok := syntax.BlockQuote(line.text); ok {
		return p.parseBlockQuote()
	}
	if syntax.IsThematicBreak(line.text) {
		p.pos++
		return &mdast.ThematicBreak{
			Span: mdast.Span{StartLine: line.num, EndLine: line.num},
			Text: strings.TrimSpace(line.text),
		}
	}
	if marker, ok := syntax.ParseListMarker(line.text); ok {
		return p.parseList(marker)
	}
	if html, ok := syntax.HTMLBlockStart(line.text, false); ok {
		return p.parseHTMLBlock(html)
	}
	if def, ok := syntax.ParseLinkDefinition(line.text); ok {
		p.pos++
		return &mdast.LinkDefinition{
			Span:        mdast.Span{StartLine: line.num, EndLine: line.num},
			Label:       def.Label,
			Destination: def.Destination,
			Title:       def.Title,
		}
	}
	if p.pos+1 < len(p.lines) && isTableStart(line.text, p.lines[p.pos+1].text) {
		return p.parseTable()
	}
	return p.parseParagraph()
}

func (p *blockParser) parseFencedCode(fence syntax.Fence) mdast.Block {
	open := p.peek()
	p.pos++

	code := &mdast.CodeBlock{
		Language:    fence.Info,
		FenceChar:   fence.Char,
		FenceLength: fence.Length,
	}
	end := open.num
	closed := false
	for p.more() {
		line := p.peek()
		p.pos++
		end = line.num
		if fence.Closes(line.text) {
			closed = true
			break
		}
		code.Lines = append(code.Lines, syntax.StripIndent(line.text, fence.Indent))
	}
	if !closed {
		// An unterminated fence runs to the end of its container. Trailing
		// blank lines are not part of the code.
		code.Lines = trimTrailingBlank(code.Lines)
	}
	code.Span = mdast.Span{StartLine: open.num, EndLine: end}
	return code
}

func (p *blockParser) parseIndentedCode() mdast.Block {
	start := p.peek().num
	var lines []string
	var nums []int
	for p.more() {
		line := p.peek()
		if !syntax.IsBlank(line.text) && syntax.Indent(line.text) < indentedCodeWidth {
			break
		}
		lines = append(lines, syntax.StripIndent(line.text, indentedCodeWidth))
		nums = append(nums, line.num)
		p.pos++
	}

	trimmed := trimTrailingBlank(lines)
	// Give trailing blank lines back; they separate blocks.
	p.pos -= len(lines) - len(trimmed)

	return &mdast.CodeBlock{
		Span:     mdast.Span{StartLine: start, EndLine: nums[len(trimmed)-1]},
		Lines:    trimmed,
		Indented: true,
	}
}

func (p *blockParser) parseBlockQuote() mdast.Block {
	start := p.peek().num
	end := start
	var inner []srcLine
	for p.more() {
		line := p.peek()
		if rest, ok := syntax.BlockQuote(line.text); ok {
			inner = append(inner, srcLine{text: rest, num: line.num})
		} else {
			if syntax.IsBlank(line.text) || !lazyContinuation(inner, line.text) {
				break
			}
			inner = append(inner, srcLine{text: line.text, num: line.num})
		}
		end = line.num
		p.pos++
	}

	return &mdast.BlockQuote{
		Span:   mdast.Span{StartLine: start, EndLine: end},
		Blocks: parseContainer(inner, p.listDepth),
	}
}

// lazyContinuation reports whether line may continue a paragraph that is
// still open at the end of inner without repeating the container marker.
func lazyContinuation(inner []srcLine, line string) bool {
	if len(inner) == 0 {
		return false
	}
	if insideFence(inner) {
		return false
	}
	return syntax.ContinuesParagraph(inner[len(inner)-1].text, line)
}

// insideFence reports whether inner ends inside an unclosed code fence.
func insideFence(inner []srcLine) bool {
	var open *syntax.Fence
	for _, l := range inner {
		if open != nil {
			if open.Closes(l.text) {
				open = nil
			}
			continue
		}
		if fence, ok := syntax.FenceOpen(l.text); ok {
			open = &fence
		}
	}
	return open != nil
}

func (p *blockParser) parseHTMLBlock(html syntax.HTMLBlock) mdast.Block {
	start := p.peek().num
	end := start
	var lines []string
	for p.more() {
		line := p.peek()
		if html.EndsAtBlankLine() && syntax.IsBlank(line.text) {
			break
		}
		lines = append(lines, line.text)
		end = line.num
		p.pos++
		if html.Closes(line.text) {
			break
		}
	}
	return &mdast.HTMLBlock{
		Span:  mdast.Span{StartLine: start, EndLine: end},
		Lines: lines,
	}
}

func (p *blockParser) parseParagraph() mdast.Block {
	first := p.peek()
	texts := []string{strings.TrimLeft(first.text, " \t")}
	end := first.num
	p.pos++

	for p.more() {
		line := p.peek()
		if syntax.IsBlank(line.text) {
			break
		}
		if level, ok := syntax.SetextUnderline(line.text); ok {
			p.pos++
			return &mdast.Heading{
				Span:    mdast.Span{StartLine: first.num, EndLine: line.num},
				Level:   level,
				Content: parseInlines(strings.TrimSpace(strings.Join(texts, "\n"))),
				Style:   mdast.HeadingSetext,
			}
		}
		if interruptsParagraph(line.text) {
			break
		}
		if p.pos+1 < len(p.lines) && isTableStart(line.text, p.lines[p.pos+1].text) {
			break
		}
		texts = append(texts, strings.TrimLeft(line.text, " \t"))
		end = line.num
		p.pos++
	}

	content := strings.Join(texts, "\n")
	return &mdast.Paragraph{
		Span:    mdast.Span{StartLine: first.num, EndLine: end},
		Content: parseInlines(strings.TrimRight(content, " \t")),
	}
}

func interruptsParagraph(line string) bool {
	if syntax.Indent(line) >= indentedCodeWidth {
		return false
	}
	if _, _, ok := syntax.ATXHeading(line); ok {
		return true
	}
	if _, ok := syntax.FenceOpen(line); ok {
		return true
	}
	if _, ok := syntax.BlockQuote(line); ok {
		return true
	}
	if syntax.IsThematicBreak(line) {
		return true
	}
	if marker, ok := syntax.ParseListMarker(line); ok && marker.CanInterruptParagraph() {
		return true
	}
	if _, ok := syntax.HTMLBlockStart(line, true); ok {
		return true
	}
	return false
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && syntax.IsBlank(lines[end-1]) {
		end--
	}
	return lines[:end]
}
