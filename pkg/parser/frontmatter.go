package parser

import (
	"bytes"
	"slices"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/yaklabco/hongdown/pkg/mdast"
)

// parseFrontMatter recognizes a YAML (---) or TOML (+++) metadata block at
// the very start of the document. The block is accepted only when its
// content parses as metadata; otherwise the lines are left to the block
// parser.
func parseFrontMatter(lines []srcLine) (*mdast.FrontMatter, []srcLine) {
	if len(lines) < 2 {
		return nil, lines
	}

	delim := strings.TrimRight(lines[0].text, " \t")
	var format string
	switch delim {
	case "---":
		format = "yaml"
	case "+++":
		format = "toml"
	default:
		return nil, lines
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		closing := strings.TrimRight(lines[i].text, " \t")
		if closing == delim || (format == "yaml" && closing == "...") {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, lines
	}

	body := make([]string, 0, end-1)
	for _, l := range lines[1:end] {
		body = append(body, l.text)
	}

	var raw bytes.Buffer
	raw.WriteString(delim + "\n")
	for _, l := range body {
		raw.WriteString(l + "\n")
	}
	raw.WriteString(delim + "\n")

	meta := map[string]any{}
	if _, err := frontmatter.MustParse(&raw, &meta); err != nil {
		return nil, lines
	}

	keys := make([]string, 0, len(meta))
	for key := range meta {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	front := &mdast.FrontMatter{
		Span:      mdast.Span{StartLine: lines[0].num, EndLine: lines[end].num},
		Delimiter: delim,
		Lines:     body,
		Format:    format,
		Keys:      keys,
	}
	return front, lines[end+1:]
}
