// Package langdetect guesses the language of an untagged code block so the
// formatter can add an info string to its fence.
//
// Detection is conservative: a shebang wins, then a small set of strong
// textual signals, then the go-enry classifier when it reports a safe result.
// Anything else is reported as undetected and the fence stays untagged.
package langdetect

import (
	"bytes"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"
)

// Fence tags returned by the textual signals.
const (
	LangGo         = "go"
	LangPython     = "python"
	LangJavaScript = "javascript"
	LangJSON       = "json"
	LangYAML       = "yaml"
	LangHTML       = "html"
	LangSQL        = "sql"
	LangRust       = "rust"
	LangDockerfile = "dockerfile"
)

// classifierCandidates limits the enry classifier to languages that show up
// in documentation often enough to be worth guessing.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// signal is one textual rule. Rules are tried in order.
type signal struct {
	lang  string
	match func(src []byte, text string) bool
}

var signals = []signal{
	{LangGo, func(src []byte, _ string) bool {
		return bytes.HasPrefix(bytes.TrimSpace(src), []byte("package "))
	}},
	{LangPython, looksLikePython},
	{LangHTML, func(src []byte, _ string) bool {
		lower := bytes.ToLower(src)
		for _, marker := range []string{"<!doctype html", "<html", "<head>", "<body>"} {
			if bytes.Contains(lower, []byte(marker)) {
				return true
			}
		}
		return false
	}},
	{LangJSON, func(src []byte, _ string) bool {
		trimmed := bytes.TrimSpace(src)
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`"`))
	}},
	{LangDockerfile, func(src []byte, text string) bool {
		return strings.HasPrefix(strings.TrimSpace(text), "FROM ") ||
			(strings.Contains(text, "\nFROM ") && strings.Contains(text, "\nRUN ")) ||
			(strings.Contains(text, "WORKDIR ") && strings.Contains(text, "COPY "))
	}},
	{LangSQL, func(_ []byte, text string) bool {
		upper := strings.ToUpper(strings.TrimSpace(text))
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{LangRust, func(_ []byte, text string) bool {
		return strings.Contains(text, "fn main()") ||
			strings.Contains(text, "println!") ||
			strings.Contains(text, "let mut ")
	}},
	{LangJavaScript, func(_ []byte, text string) bool {
		return strings.Contains(text, "=>") ||
			strings.Contains(text, "const ") ||
			strings.Contains(text, "let ") ||
			strings.Contains(text, "console.log")
	}},
	{LangYAML, looksLikeYAML},
}

// Detect returns the fence tag for code, or false when no language can be
// determined with confidence.
func Detect(code []byte) (string, bool) {
	if len(bytes.TrimSpace(code)) == 0 {
		return "", false
	}

	if lang, safe := enry.GetLanguageByShebang(code); safe && lang != "" {
		return FenceTag(lang), true
	}

	text := string(code)
	for _, s := range signals {
		if s.match(code, text) {
			return s.lang, true
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(code, classifierCandidates); safe && lang != "" {
		return FenceTag(lang), true
	}
	return "", false
}

// DetectLines is Detect for the content lines of a code block.
func DetectLines(lines []string) (string, bool) {
	return Detect([]byte(strings.Join(lines, "\n")))
}

// FenceTag maps a linguist language name such as "Shell" or "JavaScript" to
// the tag conventionally written after a fence. The tag is the lexer alias
// that chroma registers for the language, preferring the lexer's own name.
func FenceTag(language string) string {
	lower := strings.ToLower(language)
	lexer := lexers.Get(language)
	if lexer == nil {
		return lower
	}
	cfg := lexer.Config()
	if len(cfg.Aliases) == 0 {
		return lower
	}
	for _, candidate := range []string{strings.ToLower(cfg.Name), lower} {
		if slices.Contains(cfg.Aliases, candidate) {
			return candidate
		}
	}
	return cfg.Aliases[0]
}

func looksLikePython(_ []byte, text string) bool {
	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return true
	}
	// Go imports use "import (".
	if strings.Contains(text, "import ") && !strings.Contains(text, "import (") {
		if strings.Contains(text, "from ") || strings.HasPrefix(strings.TrimSpace(text), "import ") {
			return true
		}
	}
	return strings.Contains(text, "__name__") || strings.Contains(text, "__main__")
}

// looksLikeYAML counts key: value lines and root-level list items.
func looksLikeYAML(src []byte, _ string) bool {
	keys := 0
	for _, line := range bytes.Split(src, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			keys++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			keys++
		}
	}
	return keys >= 2
}
