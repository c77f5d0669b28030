package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/hongdown/internal/ui/pretty"
	"github.com/yaklabco/hongdown/pkg/diff"
	"github.com/yaklabco/hongdown/pkg/runner"
)

// DiffReporter writes a git-style unified diff for every changed file.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var files, additions, deletions int
	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)
		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}

		d := diff.New(path, file.Original, file.Formatted)
		if !d.HasChanges() {
			continue
		}
		if err := r.writeDiff(d); err != nil {
			return files, err
		}
		files++
		additions += d.Additions
		deletions += d.Deletions
	}

	if files > 0 && r.opts.ShowSummary {
		r.writeSummary(files, additions, deletions)
	}
	return files, nil
}

func (r *DiffReporter) writeDiff(d *diff.Diff) error {
	unified, err := d.Unified()
	if err != nil {
		return err
	}

	fmt.Fprintln(r.bw, r.styles.DiffHeader.Render(d.GitHeader()))
	for _, line := range strings.Split(strings.TrimSuffix(unified, "\n"), "\n") {
		fmt.Fprintln(r.bw, r.styleLine(line))
	}
	fmt.Fprintln(r.bw)
	return nil
}

func (r *DiffReporter) styleLine(line string) string {
	switch {
	case strings.HasPrefix(line, "@@"):
		return r.styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return r.styles.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return r.styles.DiffRemove.Render(line)
	default:
		return r.styles.DiffContext.Render(line)
	}
}

// writeSummary writes a summary line at the end.
func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	parts := []string{fmt.Sprintf("%d %s changed", files, pluralWord(files, "file", "files"))}
	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", additions, pluralWord(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", deletions, pluralWord(deletions, "deletion", "deletions"))))
	}
	fmt.Fprintln(r.bw, strings.Join(parts, ", "))
}

func pluralWord(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
