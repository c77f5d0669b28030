// Package diff produces unified diffs between a file and its formatted form.
package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// Diff is the difference between the original and formatted content of a
// single file.
type Diff struct {
	Path      string
	Original  string
	Formatted string

	// Additions and Deletions count changed lines.
	Additions int
	Deletions int
}

// New compares original with formatted. It returns nil when they are equal.
func New(path, original, formatted string) *Diff {
	if original == formatted {
		return nil
	}

	d := &Diff{Path: path, Original: original, Formatted: formatted}
	matcher := difflib.NewMatcher(splitLines(original), splitLines(formatted))
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'r':
			d.Deletions += op.I2 - op.I1
			d.Additions += op.J2 - op.J1
		case 'd':
			d.Deletions += op.I2 - op.I1
		case 'i':
			d.Additions += op.J2 - op.J1
		}
	}
	return d
}

// HasChanges reports whether d describes any change.
func (d *Diff) HasChanges() bool {
	return d != nil && d.Original != d.Formatted
}

// Unified renders d in unified diff format with a/ and b/ path prefixes.
func (d *Diff) Unified() (string, error) {
	if !d.HasChanges() {
		return "", nil
	}

	path := strings.TrimPrefix(d.Path, "/")
	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(d.Original),
		B:        splitLines(d.Formatted),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  contextLines,
	})
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", d.Path, err)
	}
	return out, nil
}

// GitHeader returns the "diff --git" line that precedes the unified diff.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// splitLines splits s after each newline. A final line without a newline
// gets one so that every diff line is terminated.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] += "\n"
	}
	return lines
}
