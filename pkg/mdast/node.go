// Package mdast defines the document tree the formatter works on.
//
// Block and Inline are closed sum types: every implementation lives in this
// package, and every pass over the tree switches exhaustively on the
// concrete type. A pass that meets a type it does not know calls Unreachable.
package mdast

import "fmt"

// NodeKind classifies a node of the document tree.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
const (
	// Block-level nodes.
	NodeHeading NodeKind = iota
	NodeParagraph
	NodeList
	NodeListItem
	NodeCodeBlock
	NodeThematicBreak
	NodeTable
	NodeBlockQuote
	NodeHTMLBlock
	NodeVerbatim
	NodeLinkDefinition
	NodeFrontMatter

	// Inline-level nodes.
	NodeText
	NodeEmphasis
	NodeStrong
	NodeCodeSpan
	NodeLink
	NodeImage
	NodeRawHTML
	NodeSoftBreak
	NodeHardBreak
)

var nodeKindNames = [...]string{
	NodeHeading:        "Heading",
	NodeParagraph:      "Paragraph",
	NodeList:           "List",
	NodeListItem:       "ListItem",
	NodeCodeBlock:      "CodeBlock",
	NodeThematicBreak:  "ThematicBreak",
	NodeTable:          "Table",
	NodeBlockQuote:     "BlockQuote",
	NodeHTMLBlock:      "HTMLBlock",
	NodeVerbatim:       "Verbatim",
	NodeLinkDefinition: "LinkDefinition",
	NodeFrontMatter:    "FrontMatter",
	NodeText:           "Text",
	NodeEmphasis:       "Emphasis",
	NodeStrong:         "Strong",
	NodeCodeSpan:       "CodeSpan",
	NodeLink:           "Link",
	NodeImage:          "Image",
	NodeRawHTML:        "RawHTML",
	NodeSoftBreak:      "SoftBreak",
	NodeHardBreak:      "HardBreak",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) && nodeKindNames[k] != "" {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", uint16(k))
}

// IsBlock returns true if this is a block-level kind.
func (k NodeKind) IsBlock() bool {
	return k <= NodeFrontMatter
}

// IsInline returns true if this is an inline-level kind.
func (k NodeKind) IsInline() bool {
	return k >= NodeText && k <= NodeHardBreak
}

// Span is the range of 1-based source lines a block was parsed from.
// Blocks created by a pass rather than by the parser have a zero Span.
type Span struct {
	StartLine int
	EndLine   int
}

// Pos returns the span itself; embedding Span gives every block this method.
func (s Span) Pos() Span {
	return s
}

// IsValid reports whether the span refers to real source lines.
func (s Span) IsValid() bool {
	return s.StartLine > 0 && s.EndLine >= s.StartLine
}

// Block is a block-level node.
type Block interface {
	Kind() NodeKind
	Pos() Span
	block()
}

// Inline is an inline-level node.
type Inline interface {
	Kind() NodeKind
	inline()
}

// Unreachable reports a node type that a pass does not handle.
// Reaching it is a programming defect, never a property of the input.
func Unreachable(node any) {
	panic(fmt.Sprintf("mdast: unhandled node type %T", node))
}
