package mdast

// Text is literal text. Value keeps the source backslash escapes.
type Text struct {
	Value string
}

// Emphasis is *text* or _text_.
type Emphasis struct {
	Delim    byte
	Children []Inline
}

// Strong is **text** or __text__.
type Strong struct {
	Delim    byte
	Children []Inline
}

// CodeSpan is `code`. Value is the content between the backtick runs.
type CodeSpan struct {
	Value string

	// Fence is the length of the backtick run.
	Fence int
}

// Link is an inline link [label](destination "title").
type Link struct {
	Children    []Inline
	Destination string

	// Title keeps its source delimiters; empty means no title.
	Title string
}

// Image is an inline image ![alt](destination "title").
type Image struct {
	Alt         string
	Destination string
	Title       string
}

// RawHTML is an inline HTML tag, comment or autolink.
type RawHTML struct {
	Value string
}

// SoftBreak is a line ending inside a paragraph.
type SoftBreak struct{}

// HardBreak is a forced line break.
type HardBreak struct {
	// Backslash marks the \ form; otherwise the break was trailing spaces.
	Backslash bool
}

func (*Text) Kind() NodeKind      { return NodeText }
func (*Emphasis) Kind() NodeKind  { return NodeEmphasis }
func (*Strong) Kind() NodeKind    { return NodeStrong }
func (*CodeSpan) Kind() NodeKind  { return NodeCodeSpan }
func (*Link) Kind() NodeKind      { return NodeLink }
func (*Image) Kind() NodeKind     { return NodeImage }
func (*RawHTML) Kind() NodeKind   { return NodeRawHTML }
func (*SoftBreak) Kind() NodeKind { return NodeSoftBreak }
func (*HardBreak) Kind() NodeKind { return NodeHardBreak }

func (*Text) inline()      {}
func (*Emphasis) inline()  {}
func (*Strong) inline()    {}
func (*CodeSpan) inline()  {}
func (*Link) inline()      {}
func (*Image) inline()     {}
func (*RawHTML) inline()   {}
func (*SoftBreak) inline() {}
func (*HardBreak) inline() {}
