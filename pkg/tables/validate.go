// Package tables checks pipe tables for inconsistent column counts.
//
// Validation is read-only: it reports problems but never changes the
// document or the formatted output.
package tables

import (
	"fmt"

	"github.com/yaklabco/hongdown/pkg/mdast"
)

// Diagnostic is a non-fatal problem found in the source.
type Diagnostic struct {
	// Line is the 1-based source line of the offending row.
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Validate compares every table's header and body rows against its
// delimiter row, including tables nested in lists and block quotes.
// Diagnostics are returned in document order.
func Validate(doc *mdast.Document) []Diagnostic {
	var diags []Diagnostic

	//nolint:errcheck // the callback never fails
	mdast.WalkBlocks(doc.Blocks, func(b mdast.Block) error {
		if table, ok := b.(*mdast.Table); ok {
			diags = append(diags, validateTable(table)...)
		}
		return nil
	})

	return diags
}

func validateTable(table *mdast.Table) []Diagnostic {
	var diags []Diagnostic
	expected := len(table.Align)

	if got := len(table.Header.Cells); got != expected {
		diags = append(diags, Diagnostic{
			Line:    table.Header.Line,
			Message: fmt.Sprintf("table header has %d columns, delimiter row has %d columns", got, expected),
		})
	}

	for _, row := range table.Rows {
		if got := len(row.Cells); got != expected {
			diags = append(diags, Diagnostic{
				Line:    row.Line,
				Message: fmt.Sprintf("table row has %d columns, expected %d columns", got, expected),
			})
		}
	}

	return diags
}
