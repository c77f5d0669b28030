package directive

import (
	"github.com/yaklabco/hongdown/pkg/mdast"
	"github.com/yaklabco/hongdown/pkg/syntax"
)

// codeIndent is the indentation at which a line can only be code or
// paragraph continuation, never a directive.
const codeIndent = 4

// line is one line of a container as seen by the scanner.
type line struct {
	text      string
	blank     bool
	directive Kind

	// skipEnd is the index of the last line of a fence, list item or block
	// quote opened on this line, or -1. The lines in between belong to the
	// nested construct and are not scanned at this level.
	skipEnd int

	// inner holds the content of a list item or block quote opened on this
	// line, with its markers stripped.
	inner []string
}

// Region is an inclusive range of line indexes excluded from formatting.
type Region struct {
	First int
	Last  int
}

// Scan computes the enabled and disabled spans of src.
// The spans cover src completely, in order, without gaps or overlaps.
// Directive comments themselves are always enabled.
//
// Apart from disable-file, only directives at the top level of the
// document are seen here. A directive inside a list item or block quote
// applies within that container and is handled by ScanLines when the
// container is parsed.
func Scan(src []byte) []Span {
	if len(src) == 0 {
		return nil
	}

	infos := mdast.BuildLines(src)
	texts := make([]string, len(infos))
	for i, info := range infos {
		texts[i] = string(src[info.StartOffset:info.NewlineStart])
	}

	lines := splitLines(texts)
	if disablesFile(lines) {
		return []Span{{Start: 0, End: len(src), Enabled: false}}
	}

	return toSpans(src, infos, scan(lines))
}

// disablesFile reports whether a disable-file directive appears outside
// code at any container level.
func disablesFile(lines []line) bool {
	for _, l := range lines {
		if l.directive == KindDisableFile {
			return true
		}
		if l.inner != nil && disablesFile(splitLines(l.inner)) {
			return true
		}
	}
	return false
}

// ScanLines computes the disabled regions among the lines of one container,
// given with the container's markers and indentation stripped. A
// disable-file directive is left to Scan.
func ScanLines(texts []string) []Region {
	return scan(splitLines(texts))
}

func scan(lines []line) []Region {
	var disabled []Region
	state := StateEnabled
	regionStart := -1

	closeRegion := func(before int) {
		if regionStart >= 0 {
			if last := lastNonBlank(lines, regionStart, before); last >= regionStart {
				disabled = append(disabled, Region{First: regionStart, Last: last})
			}
		}
		regionStart = -1
	}

	for idx := 0; idx < len(lines); idx++ {
		cur := lines[idx]

		if cur.directive != KindNone {
			if state != StateEnabled && state != StateDisabledUntilNextBlock && cur.directive != KindEnable {
				// Further disabling directives inside a disabled region are content.
				if regionStart < 0 {
					regionStart = idx
				}
				continue
			}
			closeRegion(idx)
			state = transition(cur.directive)
			continue
		}

		switch state {
		case StateEnabled:
			if cur.skipEnd >= 0 {
				idx = cur.skipEnd
			}

		case StateDisabledUntilNextBlock:
			if cur.blank {
				continue
			}
			end := blockEnd(lines, idx)
			disabled = append(disabled, Region{First: idx, Last: end})
			state = StateEnabled
			idx = end

		case StateDisabledUntilNextHeading:
			if cur.blank {
				continue
			}
			if regionStart >= 0 && atHeading(lines, idx) {
				closeRegion(idx)
				state = StateEnabled
				idx-- // reprocess the heading line as enabled
				continue
			}
			if regionStart < 0 {
				regionStart = idx
			}
			if cur.skipEnd >= 0 {
				idx = cur.skipEnd
			}

		case StateDisabledOpen:
			if cur.blank {
				continue
			}
			if regionStart < 0 {
				regionStart = idx
			}
			if cur.skipEnd >= 0 {
				idx = cur.skipEnd
			}
		}
	}
	closeRegion(len(lines))

	return disabled
}

func transition(kind Kind) State {
	switch kind {
	case KindDisableNextLine:
		return StateDisabledUntilNextBlock
	case KindDisableNextSection:
		return StateDisabledUntilNextHeading
	case KindDisable:
		return StateDisabledOpen
	case KindEnable, KindNone, KindDisableFile:
		return StateEnabled
	default:
		return StateEnabled
	}
}

// splitLines classifies the lines of one container. Fences, list items and
// block quotes are recorded with their extent so their content is never
// mistaken for a directive at this level.
func splitLines(texts []string) []line {
	lines := make([]line, len(texts))
	for i, text := range texts {
		lines[i] = line{text: text, blank: syntax.IsBlank(text), skipEnd: -1}
	}

	inParagraph := false
	for idx := 0; idx < len(lines); idx++ {
		text := lines[idx].text
		if lines[idx].blank {
			inParagraph = false
			continue
		}
		if syntax.Indent(text) >= codeIndent {
			continue
		}

		end := -1
		if fence, ok := syntax.FenceOpen(text); ok {
			end = fenceEnd(lines, idx, fence)
		} else if rest, ok := syntax.BlockQuote(text); ok {
			end, lines[idx].inner = quoteEnd(lines, idx, rest)
		} else if marker, ok := syntax.ParseListMarker(text); ok && (!inParagraph || marker.CanInterruptParagraph()) {
			end, lines[idx].inner = itemEnd(lines, idx, marker)
		} else if IsDirective(text) {
			lines[idx].directive = Parse(text)
		}

		if end >= 0 {
			lines[idx].skipEnd = end
			idx = end
			inParagraph = false
			continue
		}
		inParagraph = lines[idx].directive == KindNone && (inParagraph || syntax.IsParagraphText(text))
	}

	return lines
}

func fenceEnd(lines []line, idx int, fence syntax.Fence) int {
	for j := idx + 1; j < len(lines); j++ {
		if fence.Closes(lines[j].text) {
			return j
		}
	}
	return len(lines) - 1
}

// itemEnd returns the last non-blank line of the list item opened at idx
// and the item's content.
func itemEnd(lines []line, idx int, marker syntax.ListMarker) (int, []string) {
	inner := []string{}
	if marker.Empty() {
		if idx+1 >= len(lines) || lines[idx+1].blank {
			return idx, inner
		}
	} else {
		inner = append(inner, marker.Rest)
	}

	end := idx
	for j := idx + 1; j < len(lines); j++ {
		text := lines[j].text
		switch {
		case lines[j].blank:
			inner = append(inner, "")
			continue
		case syntax.Indent(text) >= marker.Width:
			inner = append(inner, syntax.StripIndent(text, marker.Width))
		case lazy(inner, text):
			inner = append(inner, text)
		default:
			return end, inner
		}
		end = j
	}
	return end, inner
}

// quoteEnd returns the last line of the block quote opened at idx and the
// quote's content.
func quoteEnd(lines []line, idx int, rest string) (int, []string) {
	inner := []string{rest}
	end := idx
	for j := idx + 1; j < len(lines); j++ {
		text := lines[j].text
		if r, ok := syntax.BlockQuote(text); ok {
			inner = append(inner, r)
		} else {
			if lines[j].blank || !lazy(inner, text) {
				break
			}
			inner = append(inner, text)
		}
		end = j
	}
	return end, inner
}

// lazy reports whether text continues the paragraph left open at the end of
// a container's inner lines.
func lazy(inner []string, text string) bool {
	if len(inner) == 0 {
		return false
	}
	var open *syntax.Fence
	for _, l := range inner {
		if open != nil {
			if open.Closes(l) {
				open = nil
			}
			continue
		}
		if fence, ok := syntax.FenceOpen(l); ok {
			open = &fence
		}
	}
	if open != nil {
		return false
	}
	return syntax.ContinuesParagraph(inner[len(inner)-1], text)
}

// blockEnd returns the last line of the block starting at idx. The block
// never leaves the container being scanned.
func blockEnd(lines []line, idx int) int {
	end := idx
	for end < len(lines) {
		if lines[end].skipEnd >= 0 {
			end = lines[end].skipEnd
		}
		if end+1 >= len(lines) || lines[end+1].blank || lines[end+1].directive != KindNone {
			return end
		}
		end++
	}
	return len(lines) - 1
}

func atHeading(lines []line, idx int) bool {
	run := make([]string, 0, 4)
	for j := idx; j < len(lines) && !lines[j].blank; j++ {
		run = append(run, lines[j].text)
		if len(run) > 1 {
			if _, ok := syntax.SetextUnderline(lines[j].text); ok {
				break
			}
		}
	}
	if idx > 0 && !lines[idx-1].blank && lines[idx-1].directive == KindNone {
		// Only the first line of a paragraph can begin a setext heading.
		_, _, atx := syntax.ATXHeading(lines[idx].text)
		return atx
	}
	return syntax.StartsHeading(run)
}

func lastNonBlank(lines []line, from, before int) int {
	for j := before - 1; j >= from; j-- {
		if !lines[j].blank {
			return j
		}
	}
	return from - 1
}

func toSpans(src []byte, infos []mdast.LineInfo, disabled []Region) []Span {
	var spans []Span
	pos := 0
	for _, r := range disabled {
		start := infos[r.First].StartOffset
		end := infos[r.Last].NewlineStart
		if start > pos {
			spans = append(spans, Span{Start: pos, End: start, Enabled: true})
		}
		spans = append(spans, Span{Start: start, End: end, Enabled: false})
		pos = end
	}
	if pos < len(src) {
		spans = append(spans, Span{Start: pos, End: len(src), Enabled: true})
	}
	return spans
}

