package serializer

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/hongdown/pkg/mdast"
)

// table renders a pipe table with every column padded to its widest cell.
// Rows keep their own cell count; mismatches are reported by the table
// validator, not repaired here.
func table(t *mdast.Table) []string {
	header := rowTexts(t.Header)
	body := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		body[i] = rowTexts(row)
	}

	columns := len(t.Align)
	columns = max(columns, len(header))
	for _, row := range body {
		columns = max(columns, len(row))
	}

	widths := make([]int, columns)
	for i := range widths {
		widths[i] = minColumnWidth
	}
	measure := func(cells []string) {
		for i, cell := range cells {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(header)
	for _, row := range body {
		measure(row)
	}

	out := make([]string, 0, len(body)+2)
	out = append(out, formatRow(header, widths, t.Align))
	out = append(out, delimiterRow(widths, t.Align))
	for _, row := range body {
		out = append(out, formatRow(row, widths, t.Align))
	}
	return out
}

func rowTexts(row mdast.Row) []string {
	texts := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		texts[i] = InlinesFlat(cell.Content)
	}
	return texts
}

func alignment(align []mdast.Alignment, col int) mdast.Alignment {
	if col < len(align) {
		return align[col]
	}
	return mdast.AlignNone
}

func formatRow(cells []string, widths []int, align []mdast.Alignment) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for i, cell := range cells {
		sb.WriteByte(' ')
		sb.WriteString(pad(cell, widths[i], alignment(align, i)))
		sb.WriteString(" |")
	}
	return sb.String()
}

func pad(cell string, width int, align mdast.Alignment) string {
	gap := width - runewidth.StringWidth(cell)
	if gap <= 0 {
		return cell
	}
	switch align {
	case mdast.AlignRight:
		return strings.Repeat(" ", gap) + cell
	case mdast.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	case mdast.AlignNone, mdast.AlignLeft:
		return cell + strings.Repeat(" ", gap)
	default:
		return cell + strings.Repeat(" ", gap)
	}
}

func delimiterRow(widths []int, align []mdast.Alignment) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for i, a := range align {
		width := widths[i]
		var cell string
		switch a {
		case mdast.AlignLeft:
			cell = ":" + strings.Repeat("-", width-1)
		case mdast.AlignRight:
			cell = strings.Repeat("-", width-1) + ":"
		case mdast.AlignCenter:
			cell = ":" + strings.Repeat("-", width-2) + ":"
		case mdast.AlignNone:
			cell = strings.Repeat("-", width)
		default:
			cell = strings.Repeat("-", width)
		}
		sb.WriteByte(' ')
		sb.WriteString(cell)
		sb.WriteString(" |")
	}
	return sb.String()
}
