// Package verify checks that formatting preserved the meaning of a document
// by comparing the HTML that goldmark renders for the input and the output.
//
// The comparison ignores differences the formatter makes on purpose:
// whitespace between and inside blocks, empty HTML comments used to keep
// lists apart, and typographic substitutions.
package verify

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// contextWidth is how much normalized HTML a MismatchError shows around
// the first difference.
const contextWidth = 40

var (
	emptyCommentRegexp = regexp.MustCompile(`<!--\s*-->`)
	betweenTagsRegexp  = regexp.MustCompile(`>\s+<`)
	whitespaceRegexp   = regexp.MustCompile(`\s+`)
	dashRunRegexp      = regexp.MustCompile(`-{2,}`)
	languageRegexp     = regexp.MustCompile(`<code class="language-[^"]*">`)
)

// typographyReplacer maps typographic characters back to the ASCII the
// renderer produces for their straight forms.
var typographyReplacer = strings.NewReplacer(
	"“", "&quot;",
	"”", "&quot;",
	"‘", "'",
	"’", "'",
	"…", "...",
	"—", "--",
	"–", "--",
)

// MismatchError reports that two documents render differently.
type MismatchError struct {
	// Offset is the byte offset of the first difference in the normalized
	// HTML of the original document.
	Offset int

	Original  string
	Formatted string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("formatted output renders differently at offset %d: %q != %q",
		e.Offset, excerpt(e.Original, e.Offset), excerpt(e.Formatted, e.Offset))
}

// Verifier renders documents with a fixed goldmark configuration.
type Verifier struct {
	md goldmark.Markdown

	// IgnoreLanguage treats code blocks as equal regardless of their
	// language class, for output with detected languages.
	IgnoreLanguage bool
}

// New returns a Verifier that renders CommonMark with the GFM extensions.
// Raw HTML is kept so that pass-through blocks take part in the comparison.
func New() *Verifier {
	return &Verifier{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Check returns nil when original and formatted render to equivalent HTML,
// or a *MismatchError describing the first difference.
func (v *Verifier) Check(original, formatted string) error {
	want, err := v.normalized(original)
	if err != nil {
		return fmt.Errorf("render original: %w", err)
	}
	got, err := v.normalized(formatted)
	if err != nil {
		return fmt.Errorf("render formatted: %w", err)
	}
	if want == got {
		return nil
	}
	return &MismatchError{
		Offset:    firstDifference(want, got),
		Original:  want,
		Formatted: got,
	}
}

// Check verifies with a default Verifier.
func Check(original, formatted string) error {
	return New().Check(original, formatted)
}

// Render returns the normalized HTML of src.
func (v *Verifier) Render(src string) (string, error) {
	return v.normalized(src)
}

func (v *Verifier) normalized(src string) (string, error) {
	var buf bytes.Buffer
	if err := v.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}

	out := buf.String()
	out = emptyCommentRegexp.ReplaceAllString(out, "")
	out = typographyReplacer.Replace(out)
	out = dashRunRegexp.ReplaceAllString(out, "--")
	if v.IgnoreLanguage {
		out = languageRegexp.ReplaceAllString(out, "<code>")
	}
	out = betweenTagsRegexp.ReplaceAllString(out, "><")
	out = whitespaceRegexp.ReplaceAllString(out, " ")
	return strings.TrimSpace(out), nil
}

func firstDifference(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func excerpt(s string, offset int) string {
	start := max(0, offset-contextWidth/2)
	end := min(len(s), offset+contextWidth/2)
	if start >= end {
		return ""
	}
	return s[start:end]
}
