package parser

import (
	"regexp"
	"strings"

	"github.com/yaklabco/hongdown/pkg/mdast"
	"github.com/yaklabco/hongdown/pkg/syntax"
)

var delimiterRowRegexp = regexp.MustCompile(
	`^ {0,3}\|?[ \t]*:?-+:?[ \t]*(?:\|[ \t]*:?-+:?[ \t]*)*\|?[ \t]*$`)

// isTableStart reports whether header and delim open a pipe table. Both rows
// must contain a pipe so that a paragraph followed by a setext underline is
// never mistaken for a one-column table.
func isTableStart(header, delim string) bool {
	if syntax.Indent(header) >= indentedCodeWidth {
		return false
	}
	if !strings.Contains(header, "|") || !strings.Contains(delim, "|") {
		return false
	}
	return delimiterRowRegexp.MatchString(delim)
}

func (p *blockParser) parseTable() mdast.Block {
	header := p.peek()
	delim := p.lines[p.pos+1]
	p.pos += 2

	table := &mdast.Table{
		Header:        parseRow(header),
		DelimiterLine: delim.num,
	}
	for _, cell := range splitRow(delim.text) {
		table.Align = append(table.Align, parseAlignment(cell))
	}

	end := delim.num
	for p.more() {
		line := p.peek()
		if syntax.IsBlank(line.text) || interruptsParagraph(line.text) {
			break
		}
		table.Rows = append(table.Rows, parseRow(line))
		end = line.num
		p.pos++
	}

	table.Span = mdast.Span{StartLine: header.num, EndLine: end}
	return table
}

func parseRow(line srcLine) mdast.Row {
	cells := splitRow(line.text)
	row := mdast.Row{Line: line.num, Cells: make([]mdast.Cell, len(cells))}
	for i, cell := range cells {
		row.Cells[i] = mdast.Cell{Content: parseInlines(cell)}
	}
	return row
}

// splitRow splits a table row on unescaped pipes, dropping the optional
// leading and trailing pipe. Cell text is trimmed; escaped pipes stay escaped.
func splitRow(line string) []string {
	line = strings.Trim(line, " \t")
	if strings.HasPrefix(line, "|") {
		line = line[1:]
	}
	if strings.HasSuffix(line, "|") && !strings.HasSuffix(line, `\|`) {
		line = line[:len(line)-1]
	}

	var cells []string
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '|':
			cells = append(cells, strings.Trim(line[start:i], " \t"))
			start = i + 1
		}
	}
	return append(cells, strings.Trim(line[start:], " \t"))
}

func parseAlignment(cell string) mdast.Alignment {
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":")
	switch {
	case left && right:
		return mdast.AlignCenter
	case left:
		return mdast.AlignLeft
	case right:
		return mdast.AlignRight
	default:
		return mdast.AlignNone
	}
}
