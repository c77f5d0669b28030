package runner

import "github.com/yaklabco/hongdown/pkg/hongdown"

// FileOutcome is the result of formatting one file.
type FileOutcome struct {
	Path string

	// Original and Formatted hold the file content before and after
	// formatting. Formatted is empty when Error is set.
	Original  string
	Formatted string

	Warnings []hongdown.Warning

	// Changed reports whether formatting altered the content.
	Changed bool

	// Written reports whether the file on disk was replaced.
	Written bool

	Error error
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesFormatted  int
	FilesChanged    int
	FilesWritten    int
	FilesErrored    int
	WarningsTotal   int
}

// Result is the outcome of a run, with files in sorted path order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasChanges reports whether any file would be reformatted.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// HasWarnings reports whether any file produced a warning.
func (r *Result) HasWarnings() bool {
	return r != nil && r.Stats.WarningsTotal > 0
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	r.Stats.FilesFormatted++
	r.Stats.WarningsTotal += len(outcome.Warnings)
	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
}
