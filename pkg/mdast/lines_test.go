package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/hongdown/pkg/mdast"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	line := func(start, newline, end int) mdast.LineInfo {
		return mdast.LineInfo{StartOffset: start, NewlineStart: newline, EndOffset: end}
	}

	tests := []struct {
		name    string
		content string
		want    []mdast.LineInfo
	}{
		{"empty", "", []mdast.LineInfo{}},
		{"heading without newline", "# Title", []mdast.LineInfo{line(0, 7, 7)}},
		{"heading with newline", "# Title\n", []mdast.LineInfo{line(0, 7, 8), line(8, 8, 8)}},
		{"crlf newline is excluded from content", "# T\r\n", []mdast.LineInfo{line(0, 3, 5), line(5, 5, 5)}},
		{"blank line between blocks", "a\n\nb", []mdast.LineInfo{line(0, 1, 2), line(2, 2, 3), line(3, 4, 4)}},
		{"mixed endings", "a\r\nb\nc", []mdast.LineInfo{line(0, 1, 3), line(3, 4, 5), line(5, 6, 6)}},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, mdast.BuildLines([]byte(testCase.content)))
		})
	}
}

func TestDocument_LineAt(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument([]byte("Title\n=====\r\n\ntext"))

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{"first byte", 0, 1},
		{"newline belongs to its line", 5, 1},
		{"underline", 6, 2},
		{"carriage return", 11, 2},
		{"blank line", 13, 3},
		{"last line", 14, 4},
		{"past the end", 100, 4},
		{"negative", -1, 0},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, doc.LineAt(testCase.offset))
		})
	}
}

func TestDocument_LineContent(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument([]byte("> quote\r\n\n - item"))

	assert.Equal(t, 3, doc.LineCount())
	assert.Equal(t, "> quote", string(doc.LineContent(1)))
	assert.Empty(t, doc.LineContent(2))
	assert.Equal(t, " - item", string(doc.LineContent(3)))
	assert.Nil(t, doc.LineContent(0))
	assert.Nil(t, doc.LineContent(4))
	assert.Equal(t, 0, mdast.NewDocument(nil).LineCount())
}
