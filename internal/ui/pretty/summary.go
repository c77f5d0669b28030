package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/hongdown/pkg/runner"
)

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// FormatSummaryOneLine formats run statistics as a single line, e.g.
// "2 files would be reformatted, 1 warning, 5 files checked".
// With write set, changed files are reported as reformatted.
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, write bool) string {
	var parts []string

	switch {
	case stats.FilesChanged == 0:
		parts = append(parts, s.Success.Render("All files formatted"))
	case write:
		parts = append(parts, s.Success.Render(plural(stats.FilesWritten, "file")+" reformatted"))
	default:
		parts = append(parts, s.Failure.Render(plural(stats.FilesChanged, "file")+" would be reformatted"))
	}

	if stats.WarningsTotal > 0 {
		parts = append(parts, s.Warning.Render(plural(stats.WarningsTotal, "warning")))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(plural(stats.FilesErrored, "error")))
	}
	parts = append(parts, s.Dim.Render(plural(stats.FilesFormatted+stats.FilesErrored, "file")+" checked"))

	return strings.Join(parts, ", ") + "\n"
}
