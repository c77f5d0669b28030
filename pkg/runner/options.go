// Package runner formats many Markdown files concurrently.
package runner

import "github.com/yaklabco/hongdown/pkg/options"

// Options controls a multi-file run.
type Options struct {
	// Paths are files or directories to process. Empty means the working
	// directory.
	Paths []string

	// WorkingDir resolves relative Paths and anchors glob patterns.
	// Empty means the process working directory.
	WorkingDir string

	// Extensions are the lowercase file extensions treated as Markdown.
	// Empty means DefaultExtensions.
	Extensions []string

	// Include and Exclude are glob patterns matched against paths relative
	// to WorkingDir, or against the base name. "**" crosses directories.
	Include []string
	Exclude []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of files formatted at once.
	// Zero or negative means runtime.NumCPU().
	Jobs int

	// Style is the resolved style every file is formatted with.
	Style options.Style

	// Write replaces files whose formatted content differs.
	Write bool

	// Verify checks that each formatted file renders to the same HTML as
	// its source before it is accepted.
	Verify bool
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
