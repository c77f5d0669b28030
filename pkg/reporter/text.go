package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/hongdown/internal/ui/pretty"
	"github.com/yaklabco/hongdown/pkg/runner"
)

// TextReporter lists warnings and changed files as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to format."))
		}
		return 0, nil
	}

	changed := 0
	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}
		for _, w := range file.Warnings {
			fmt.Fprint(r.bw, r.styles.FormatWarning(path, w))
		}
		if !file.Changed {
			continue
		}

		changed++
		if r.opts.Write {
			fmt.Fprintf(r.bw, "%s %s\n", r.styles.Success.Render("reformatted"), r.styles.FilePath.Render(path))
		} else {
			fmt.Fprintf(r.bw, "%s %s\n", r.styles.Failure.Render("would reformat"), r.styles.FilePath.Render(path))
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, r.opts.Write))
	}
	return changed, nil
}
