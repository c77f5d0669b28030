// Package directive finds the formatting-control comments in a document and
// computes which parts of it are exempt from formatting.
//
// Five directives are recognized, each written alone on a line as an HTML
// comment:
//
//	<!-- hongdown-disable-file -->
//	<!-- hongdown-disable-next-line -->
//	<!-- hongdown-disable-next-section -->
//	<!-- hongdown-disable -->
//	<!-- hongdown-enable -->
package directive

import (
	"regexp"
	"strings"
)

// Kind identifies a directive.
type Kind uint8

// Directive kinds.
const (
	KindNone Kind = iota
	KindDisableFile
	KindDisableNextLine
	KindDisableNextSection
	KindDisable
	KindEnable
)

func (k Kind) String() string {
	switch k {
	case KindDisableFile:
		return "hongdown-disable-file"
	case KindDisableNextLine:
		return "hongdown-disable-next-line"
	case KindDisableNextSection:
		return "hongdown-disable-next-section"
	case KindDisable:
		return "hongdown-disable"
	case KindEnable:
		return "hongdown-enable"
	case KindNone:
		return "none"
	default:
		return "unknown"
	}
}

// State is a state of the scanner.
type State uint8

// Scanner states.
const (
	StateEnabled State = iota
	StateDisabledUntilNextBlock
	StateDisabledUntilNextHeading
	StateDisabledOpen
)

func (s State) String() string {
	switch s {
	case StateEnabled:
		return "ENABLED"
	case StateDisabledUntilNextBlock:
		return "DISABLED_UNTIL_NEXT_BLOCK"
	case StateDisabledUntilNextHeading:
		return "DISABLED_UNTIL_NEXT_HEADING"
	case StateDisabledOpen:
		return "DISABLED_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Span is a byte range of the source and whether it is formatted.
type Span struct {
	Start   int
	End     int
	Enabled bool
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

var directivePattern = regexp.MustCompile(
	`^\s*<!--\s*hongdown-(disable-file|disable-next-line|disable-next-section|disable|enable)\s*-->\s*$`)

// Parse returns the directive written on line, or KindNone.
func Parse(line string) Kind {
	m := directivePattern.FindStringSubmatch(line)
	if m == nil {
		return KindNone
	}
	switch m[1] {
	case "disable-file":
		return KindDisableFile
	case "disable-next-line":
		return KindDisableNextLine
	case "disable-next-section":
		return KindDisableNextSection
	case "disable":
		return KindDisable
	case "enable":
		return KindEnable
	default:
		return KindNone
	}
}

// IsDirective reports whether line is one of the directive comments.
func IsDirective(line string) bool {
	return strings.Contains(line, "hongdown-") && Parse(line) != KindNone
}
