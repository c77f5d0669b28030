package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/hongdown/pkg/hongdown"
	"github.com/yaklabco/hongdown/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string             `json:"path"`
	Changed  bool               `json:"changed"`
	Written  bool               `json:"written,omitempty"`
	Warnings []hongdown.Warning `json:"warnings"`
	Error    string             `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked  int `json:"filesChecked"`
	FilesChanged  int `json:"filesChanged"`
	FilesWritten  int `json:"filesWritten"`
	FilesErrored  int `json:"filesErrored"`
	TotalWarnings int `json:"totalWarnings"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesChanged, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		entry := JSONFileResult{
			Path:     displayPath(file.Path, r.opts.WorkingDir),
			Changed:  file.Changed,
			Written:  file.Written,
			Warnings: file.Warnings,
		}
		if entry.Warnings == nil {
			entry.Warnings = []hongdown.Warning{}
		}
		if file.Error != nil {
			entry.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}
		if file.Changed {
			output.Summary.FilesChanged++
		}
		if file.Written {
			output.Summary.FilesWritten++
		}
		output.Summary.TotalWarnings += len(file.Warnings)
		output.Summary.FilesChecked++

		output.Files = append(output.Files, entry)
	}

	return output
}
