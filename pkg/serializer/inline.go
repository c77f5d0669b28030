package serializer

import (
	"strings"

	"github.com/yaklabco/hongdown/pkg/mdast"
)

// Inlines renders inline content as Markdown. Soft breaks become newlines
// and hard breaks keep their source form.
func Inlines(content []mdast.Inline) string {
	var sb strings.Builder
	writeInlines(&sb, content, false)
	return sb.String()
}

// InlinesFlat renders inline content on a single line, turning every line
// break into a space. It is used where Markdown does not allow a line break,
// such as ATX headings and table cells.
func InlinesFlat(content []mdast.Inline) string {
	var sb strings.Builder
	writeInlines(&sb, content, true)
	return sb.String()
}

// CodeSpan renders a code span with its original backtick fence.
func CodeSpan(code *mdast.CodeSpan) string {
	fence := strings.Repeat("`", code.Fence)
	return fence + code.Value + fence
}

// LinkTail renders the parenthesized destination and title of a link or
// image.
func LinkTail(destination, title string) string {
	if title == "" {
		return "(" + destination + ")"
	}
	return "(" + destination + " " + strings.ReplaceAll(title, "\n", " ") + ")"
}

// Image renders an inline image.
func Image(img *mdast.Image) string {
	return "![" + strings.ReplaceAll(img.Alt, "\n", " ") + "]" + LinkTail(img.Destination, img.Title)
}

func writeInlines(sb *strings.Builder, content []mdast.Inline, flat bool) {
	for _, n := range content {
		switch node := n.(type) {
		case *mdast.Text:
			sb.WriteString(node.Value)
		case *mdast.Emphasis:
			sb.WriteByte(node.Delim)
			writeInlines(sb, node.Children, flat)
			sb.WriteByte(node.Delim)
		case *mdast.Strong:
			delim := string([]byte{node.Delim, node.Delim})
			sb.WriteString(delim)
			writeInlines(sb, node.Children, flat)
			sb.WriteString(delim)
		case *mdast.CodeSpan:
			sb.WriteString(CodeSpan(node))
		case *mdast.Link:
			sb.WriteByte('[')
			writeInlines(sb, node.Children, flat)
			sb.WriteByte(']')
			sb.WriteString(LinkTail(node.Destination, node.Title))
		case *mdast.Image:
			sb.WriteString(Image(node))
		case *mdast.RawHTML:
			if flat {
				sb.WriteString(strings.ReplaceAll(node.Value, "\n", " "))
			} else {
				sb.WriteString(node.Value)
			}
		case *mdast.SoftBreak:
			if flat {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('\n')
			}
		case *mdast.HardBreak:
			switch {
			case flat:
				sb.WriteByte(' ')
			case node.Backslash:
				sb.WriteString("\\\n")
			default:
				sb.WriteString("  \n")
			}
		default:
			mdast.Unreachable(n)
		}
	}
}
