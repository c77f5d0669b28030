package reporter

import (
	"fmt"
	"slices"
)

// Format selects how a run is reported.
type Format string

// Report formats. FormatDiff prints a unified diff per changed file instead
// of a status line.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatDiff Format = "diff"
)

var knownFormats = []Format{FormatText, FormatJSON, FormatDiff}

// ParseFormat maps a --format value to a Format. The empty string means text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	if f := Format(name); f.IsValid() {
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q; valid formats: text, json, diff", name)
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f names a known format.
func (f Format) IsValid() bool {
	return slices.Contains(knownFormats, f)
}
