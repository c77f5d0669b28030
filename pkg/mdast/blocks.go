package mdast

// HeadingStyle selects how a heading is written.
type HeadingStyle uint8

// Heading styles.
const (
	HeadingATX HeadingStyle = iota
	HeadingSetext
)

func (s HeadingStyle) String() string {
	if s == HeadingSetext {
		return "setext"
	}
	return "atx"
}

// Alignment is the alignment of a table column.
type Alignment uint8

// Column alignments.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Heading is an ATX or setext heading.
type Heading struct {
	Span

	// Level is 1 through 6.
	Level   int
	Content []Inline

	// Style is the source style after parsing and the output style after
	// canonicalization.
	Style HeadingStyle
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Span

	Content []Inline

	// Wrapped holds the rendered lines once the wrapper has run.
	// A nil Wrapped means the content is rendered with its own line breaks.
	Wrapped []string
}

// List is a bullet or ordered list.
type List struct {
	Span

	Ordered bool
	Tight   bool

	// Start is the first number of an ordered list.
	Start int

	// Bullet is the source bullet character (-, * or +) of a bullet list.
	Bullet byte

	// Delimiter is the source delimiter (. or )) of an ordered list.
	Delimiter byte

	// Depth counts enclosing lists, starting at 1.
	Depth int

	Items []*ListItem
}

// ListItem is one item of a List.
type ListItem struct {
	Span

	Blocks []Block

	// Depth equals the depth of the owning list.
	Depth int

	// Marker is the full first-line prefix, including padding,
	// set by the canonicalizer.
	Marker string

	// Indent is the width of the continuation-line prefix.
	Indent int
}

// CodeBlock is a fenced or indented code block.
type CodeBlock struct {
	Span

	// Language is the trimmed info string.
	Language    string
	FenceChar   byte
	FenceLength int

	// Lines are the raw content lines without the fence lines.
	Lines []string

	// Indented marks a code block written with four-space indentation.
	Indented bool

	// InfoSpace puts a space between the opening fence and the language.
	InfoSpace bool
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct {
	Span

	// Text is the source line after parsing and the output line after
	// canonicalization.
	Text string
}

// Cell is one cell of a table row.
type Cell struct {
	Content []Inline
}

// Row is a table row together with its source line.
type Row struct {
	Line  int
	Cells []Cell
}

// Table is a pipe table.
type Table struct {
	Span

	Header        Row
	DelimiterLine int
	Align         []Alignment
	Rows          []Row
}

// BlockQuote is a block quote.
type BlockQuote struct {
	Span

	Blocks []Block
}

// HTMLBlock is raw HTML passed through unchanged.
type HTMLBlock struct {
	Span

	Lines []string
}

// Verbatim is a source region excluded from formatting by a directive.
type Verbatim struct {
	Span

	// Start and End are byte offsets of Raw in the source. They are zero for
	// a region inside a list item or block quote, whose Raw holds the lines
	// with the container markers stripped.
	Start int
	End   int
	Raw   string
}

// LinkDefinition is a link reference definition such as [label]: /url "title".
type LinkDefinition struct {
	Span

	Label       string
	Destination string

	// Title keeps its source delimiters.
	Title string
}

// FrontMatter is a metadata block at the very start of a document.
type FrontMatter struct {
	Span

	// Delimiter is --- for YAML and +++ for TOML.
	Delimiter string

	// Lines are the raw lines between the delimiters.
	Lines []string

	// Format names the metadata language.
	Format string

	// Keys lists the top-level keys found in the metadata.
	Keys []string
}

func (*Heading) Kind() NodeKind        { return NodeHeading }
func (*Paragraph) Kind() NodeKind      { return NodeParagraph }
func (*List) Kind() NodeKind           { return NodeList }
func (*ListItem) Kind() NodeKind       { return NodeListItem }
func (*CodeBlock) Kind() NodeKind      { return NodeCodeBlock }
func (*ThematicBreak) Kind() NodeKind  { return NodeThematicBreak }
func (*Table) Kind() NodeKind          { return NodeTable }
func (*BlockQuote) Kind() NodeKind     { return NodeBlockQuote }
func (*HTMLBlock) Kind() NodeKind      { return NodeHTMLBlock }
func (*Verbatim) Kind() NodeKind       { return NodeVerbatim }
func (*LinkDefinition) Kind() NodeKind { return NodeLinkDefinition }
func (*FrontMatter) Kind() NodeKind    { return NodeFrontMatter }

func (*Heading) block()        {}
func (*Paragraph) block()      {}
func (*List) block()           {}
func (*ListItem) block()       {}
func (*CodeBlock) block()      {}
func (*ThematicBreak) block()  {}
func (*Table) block()          {}
func (*BlockQuote) block()     {}
func (*HTMLBlock) block()      {}
func (*Verbatim) block()       {}
func (*LinkDefinition) block() {}
func (*FrontMatter) block()    {}
