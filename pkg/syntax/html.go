package syntax

import (
	"fmt"
	"regexp"
)

const (
	tagName        = `[A-Za-z][A-Za-z0-9-]*`
	attributeName  = `[a-zA-Z_:][a-zA-Z0-9_.:-]*`
	attributeValue = `(?:[^"'=<>` + "`" + `\x00-\x20]+|'[^']*'|"[^"]*")`
	attribute      = `(?:[ \t\n]+` + attributeName + `(?:[ \t\n]*=[ \t\n]*` + attributeValue + `)?)`

	// OpenTag matches an HTML open tag.
	OpenTag = `<` + tagName + attribute + `*[ \t\n]*/?>`
	// ClosingTag matches an HTML closing tag.
	ClosingTag = `</` + tagName + `[ \t\n]*>`
)

var (
	html1Regexp       = regexp.MustCompile(`^ {0,3}<(?i:pre|script|style|textarea)(?:[ \t>]|$)`)
	html1CloserRegexp = regexp.MustCompile(`</(?i:pre|script|style|textarea)>`)
	html2Regexp       = regexp.MustCompile(`^ {0,3}<!--`)
	html2CloserRegexp = regexp.MustCompile(`-->`)
	html3Regexp       = regexp.MustCompile(`^ {0,3}<\?`)
	html3CloserRegexp = regexp.MustCompile(`\?>`)
	html4Regexp       = regexp.MustCompile(`^ {0,3}<![a-zA-Z]`)
	html4CloserRegexp = regexp.MustCompile(`>`)
	html5Regexp       = regexp.MustCompile(`^ {0,3}<!\[CDATA\[`)
	html5CloserRegexp = regexp.MustCompile(`\]\]>`)

	html6Regexp = regexp.MustCompile(`^ {0,3}</?(?i:address|article|aside|base|basefont|blockquote|body|caption|center|col|colgroup|dd|details|dialog|dir|div|dl|dt|fieldset|figcaption|figure|footer|form|frame|frameset|h1|h2|h3|h4|h5|h6|head|header|hr|html|iframe|legend|li|link|main|menu|menuitem|nav|noframes|ol|optgroup|option|p|param|section|summary|table|tbody|td|tfoot|th|thead|title|tr|track|ul)(?:[ \t>]|$|/>)`)
	html7Regexp = regexp.MustCompile(
		fmt.Sprintf(`^ {0,3}(?:%s|%s)[ \t]*$`, OpenTag, ClosingTag))
)

// HTMLBlock identifies which of the seven HTML block start conditions
// opened a block, and how that block ends.
type HTMLBlock struct {
	Condition int
	closer    *regexp.Regexp
}

// EndsAtBlankLine reports whether the block ends before the next blank line
// rather than at a closing pattern.
func (h HTMLBlock) EndsAtBlankLine() bool {
	return h.closer == nil
}

// Closes reports whether line contains the end condition of the block.
func (h HTMLBlock) Closes(line string) bool {
	return h.closer != nil && h.closer.MatchString(line)
}

// HTMLBlockStart reports whether line starts an HTML block. Condition 7 may
// not interrupt a paragraph, so it is only tried when inParagraph is false.
func HTMLBlockStart(line string, inParagraph bool) (HTMLBlock, bool) {
	switch {
	case html1Regexp.MatchString(line):
		return HTMLBlock{Condition: 1, closer: html1CloserRegexp}, true
	case html2Regexp.MatchString(line):
		return HTMLBlock{Condition: 2, closer: html2CloserRegexp}, true
	case html3Regexp.MatchString(line):
		return HTMLBlock{Condition: 3, closer: html3CloserRegexp}, true
	case html4Regexp.MatchString(line):
		return HTMLBlock{Condition: 4, closer: html4CloserRegexp}, true
	case html5Regexp.MatchString(line):
		return HTMLBlock{Condition: 5, closer: html5CloserRegexp}, true
	case html6Regexp.MatchString(line):
		return HTMLBlock{Condition: 6}, true
	case !inParagraph && html7Regexp.MatchString(line):
		return HTMLBlock{Condition: 7}, true
	default:
		return HTMLBlock{}, false
	}
}
