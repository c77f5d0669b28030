package mdast

// WalkFunc is the function signature for WalkBlocks callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(b Block) error

// Children returns the nested blocks of a container block.
// Leaf blocks have no children.
func Children(b Block) []Block {
	switch node := b.(type) {
	case *List:
		children := make([]Block, 0, len(node.Items))
		for _, item := range node.Items {
			children = append(children, item)
		}
		return children
	case *ListItem:
		return node.Blocks
	case *BlockQuote:
		return node.Blocks
	case *Heading, *Paragraph, *CodeBlock, *ThematicBreak, *Table,
		*HTMLBlock, *Verbatim, *LinkDefinition, *FrontMatter:
		return nil
	default:
		Unreachable(b)
		return nil
	}
}

// WalkBlocks performs a pre-order traversal over blocks and their children.
// Verbatim blocks are visited but have no children.
func WalkBlocks(blocks []Block, walkFunc WalkFunc) error {
	for _, b := range blocks {
		if err := walkFunc(b); err != nil {
			return err
		}
		if err := WalkBlocks(Children(b), walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// InlineFunc is the function signature for WalkInlines callbacks.
type InlineFunc func(n Inline) error

// InlineChildren returns the nested inlines of a container inline.
func InlineChildren(n Inline) []Inline {
	switch node := n.(type) {
	case *Emphasis:
		return node.Children
	case *Strong:
		return node.Children
	case *Link:
		return node.Children
	case *Text, *CodeSpan, *Image, *RawHTML, *SoftBreak, *HardBreak:
		return nil
	default:
		Unreachable(n)
		return nil
	}
}

// WalkInlines performs a pre-order traversal over inlines.
func WalkInlines(inlines []Inline, walkFunc InlineFunc) error {
	for _, n := range inlines {
		if err := walkFunc(n); err != nil {
			return err
		}
		if err := WalkInlines(InlineChildren(n), walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// InlineContent returns every inline sequence owned directly by a block,
// in document order. Container blocks return nil.
func InlineContent(b Block) [][]Inline {
	switch node := b.(type) {
	case *Heading:
		return [][]Inline{node.Content}
	case *Paragraph:
		return [][]Inline{node.Content}
	case *Table:
		out := make([][]Inline, 0, len(node.Header.Cells))
		for _, cell := range node.Header.Cells {
			out = append(out, cell.Content)
		}
		for _, row := range node.Rows {
			for _, cell := range row.Cells {
				out = append(out, cell.Content)
			}
		}
		return out
	case *List, *ListItem, *BlockQuote, *CodeBlock, *ThematicBreak,
		*HTMLBlock, *Verbatim, *LinkDefinition, *FrontMatter:
		return nil
	default:
		Unreachable(b)
		return nil
	}
}

// FindAll returns all blocks matching the predicate, in document order.
func FindAll(blocks []Block, predicate func(b Block) bool) []Block {
	var result []Block

	//nolint:errcheck,revive // the callback never returns an error
	WalkBlocks(blocks, func(b Block) error {
		if predicate(b) {
			result = append(result, b)
		}
		return nil
	})

	return result
}

// FindByKind returns all blocks of the specified kind.
func FindByKind(blocks []Block, kind NodeKind) []Block {
	return FindAll(blocks, func(b Block) bool {
		return b.Kind() == kind
	})
}

// PlainText concatenates the literal text of inlines, dropping markup.
// Soft and hard breaks become single spaces.
func PlainText(inlines []Inline) string {
	var out []byte
	for _, n := range inlines {
		switch node := n.(type) {
		case *Text:
			out = append(out, node.Value...)
		case *CodeSpan:
			out = append(out, node.Value...)
		case *RawHTML:
			out = append(out, node.Value...)
		case *Image:
			out = append(out, node.Alt...)
		case *SoftBreak, *HardBreak:
			out = append(out, ' ')
		case *Emphasis, *Strong, *Link:
			out = append(out, PlainText(InlineChildren(n))...)
		default:
			Unreachable(n)
		}
	}
	return string(out)
}
