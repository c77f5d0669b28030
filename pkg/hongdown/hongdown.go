// Package hongdown formats Markdown documents into a canonical style.
//
// Format and FormatWithWarnings are the library entry points. Both are safe
// for concurrent use: the default style profile is loaded once on first use
// and every call works on its own document tree.
package hongdown

import (
	"fmt"
	"strings"

	"github.com/yaklabco/hongdown/pkg/canonical"
	"github.com/yaklabco/hongdown/pkg/directive"
	"github.com/yaklabco/hongdown/pkg/engine"
	"github.com/yaklabco/hongdown/pkg/options"
	"github.com/yaklabco/hongdown/pkg/parser"
	"github.com/yaklabco/hongdown/pkg/serializer"
	"github.com/yaklabco/hongdown/pkg/tables"
	"github.com/yaklabco/hongdown/pkg/typography"
	"github.com/yaklabco/hongdown/pkg/wrap"
)

// Warning is a non-fatal diagnostic tied to a line of the input.
type Warning = tables.Diagnostic

// Result is the formatted document and the warnings found while formatting.
type Result struct {
	Output   string    `json:"output"`
	Warnings []Warning `json:"warnings"`
}

// Format returns input rewritten in the canonical style described by opts.
// The only errors are an invalid option, reported as *options.ConfigError,
// and a failure to load the built-in style profile.
func Format(input string, opts options.FormatOptions) (string, error) {
	res, err := FormatWithWarnings(input, opts)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// FormatWithWarnings is Format that also returns table diagnostics.
func FormatWithWarnings(input string, opts options.FormatOptions) (Result, error) {
	defaults, err := engine.Default().Ready()
	if err != nil {
		return Result{}, fmt.Errorf("load style profile: %w", err)
	}

	style, err := options.Resolve(opts, defaults)
	if err != nil {
		return Result{}, err
	}

	return formatStyle(input, style), nil
}

// FormatStyle formats input with an already resolved style. It skips option
// validation and is meant for callers that format many documents with one
// style, such as the file runner.
func FormatStyle(input string, style options.Style) Result {
	return formatStyle(input, style)
}

func formatStyle(input string, style options.Style) Result {
	if strings.TrimSpace(input) == "" {
		return Result{}
	}

	src := []byte(input)
	spans := directive.Scan(src)
	if wholeFileDisabled(spans, len(src)) {
		return Result{Output: input}
	}

	doc := parser.Parse(src, spans)
	canonical.Apply(doc, style)
	typography.Apply(doc, style)
	wrap.Apply(doc, style)
	warnings := tables.Validate(doc)

	return Result{
		Output:   serializer.Render(doc),
		Warnings: warnings,
	}
}

// wholeFileDisabled reports whether a disable-file directive switched off
// formatting for the entire input.
func wholeFileDisabled(spans []directive.Span, size int) bool {
	return len(spans) == 1 && !spans[0].Enabled && spans[0].Start == 0 && spans[0].End == size
}
