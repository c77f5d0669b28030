package mdast

import "sort"

// Document is the root of one formatting operation.
type Document struct {
	// Source is the complete input.
	Source []byte

	// Lines is the line index of Source.
	Lines []LineInfo

	Blocks []Block
}

// LineInfo holds metadata for a single source line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewDocument builds the line index of src. Blocks are filled in by the parser.
func NewDocument(src []byte) *Document {
	return &Document{
		Source: src,
		Lines:  BuildLines(src),
	}
}

// BuildLines constructs line metadata from content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	// The last line may be empty or lack a trailing newline.
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// LineAt converts a byte offset to a 1-based line number.
// Returns 0 if the offset is out of range.
func (d *Document) LineAt(offset int) int {
	if offset < 0 || len(d.Lines) == 0 {
		return 0
	}
	if offset >= len(d.Source) {
		return len(d.Lines)
	}

	lineIdx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(d.Lines) {
		lineIdx = len(d.Lines) - 1
	}

	return lineIdx + 1
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (d *Document) LineContent(line int) []byte {
	if line < 1 || line > len(d.Lines) {
		return nil
	}

	lineInfo := d.Lines[line-1]
	return d.Source[lineInfo.StartOffset:lineInfo.NewlineStart]
}
