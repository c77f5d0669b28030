package configloader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/hongdown/pkg/config"
	"github.com/yaklabco/hongdown/pkg/options"
)

// EnvPrefix starts every environment variable read by the loader.
const EnvPrefix = "HONGDOWN_"

// envVar binds one environment variable to a configuration field.
type envVar struct {
	help  string
	apply func(cfg *config.Config, value string) error
}

// envVars maps variable names without the prefix to their fields.
//
//nolint:gochecknoglobals // read-only lookup table
var envVars = map[string]envVar{
	"LINE_WIDTH": {"target width for wrapped paragraphs",
		intField(func(c *config.Config) **int { return &c.LineWidth })},
	"INCLUDE": {"comma-separated glob patterns of files to format",
		func(c *config.Config, v string) error { c.Include = splitList(v); return nil }},
	"EXCLUDE": {"comma-separated glob patterns of paths to skip",
		func(c *config.Config, v string) error { c.Exclude = splitList(v); return nil }},

	"SETEXT_H1": {"underline level 1 headings",
		boolField(func(c *config.Config) **bool { return &c.Heading.SetextH1 })},
	"SETEXT_H2": {"underline level 2 headings",
		boolField(func(c *config.Config) **bool { return &c.Heading.SetextH2 })},

	"UNORDERED_MARKER": {"bullet character: -, * or +",
		stringField(func(c *config.Config) **string { return &c.List.UnorderedMarker })},
	"LEADING_SPACES": {"spaces before a bullet",
		intField(func(c *config.Config) **int { return &c.List.LeadingSpaces })},
	"TRAILING_SPACES": {"spaces after a bullet",
		intField(func(c *config.Config) **int { return &c.List.TrailingSpaces })},
	"INDENT_WIDTH": {"indentation of bullet list content",
		intField(func(c *config.Config) **int { return &c.List.IndentWidth })},

	"ODD_LEVEL_MARKER": {"ordered list delimiter at odd depths",
		stringField(func(c *config.Config) **string { return &c.OrderedList.OddLevelMarker })},
	"EVEN_LEVEL_MARKER": {"ordered list delimiter at even depths",
		stringField(func(c *config.Config) **string { return &c.OrderedList.EvenLevelMarker })},
	"ORDERED_LIST_PAD": {"ordered list number padding: start or end",
		stringField(func(c *config.Config) **string { return &c.OrderedList.Pad })},
	"ORDERED_LIST_INDENT_WIDTH": {"indentation of ordered list content",
		intField(func(c *config.Config) **int { return &c.OrderedList.IndentWidth })},

	"FENCE_CHAR": {"code fence character: ~ or `",
		stringField(func(c *config.Config) **string { return &c.CodeBlock.FenceChar })},
	"MIN_FENCE_LENGTH": {"shortest code fence",
		intField(func(c *config.Config) **int { return &c.CodeBlock.MinFenceLength })},
	"SPACE_AFTER_FENCE": {"space between fence and language",
		boolField(func(c *config.Config) **bool { return &c.CodeBlock.SpaceAfterFence })},
	"DEFAULT_LANGUAGE": {"language for untagged code blocks",
		stringField(func(c *config.Config) **string { return &c.CodeBlock.DefaultLanguage })},
	"DETECT_LANGUAGE": {"guess the language of untagged code blocks",
		boolField(func(c *config.Config) **bool { return &c.CodeBlock.DetectLanguage })},

	"THEMATIC_BREAK_STYLE": {"text of a thematic break",
		stringField(func(c *config.Config) **string { return &c.ThematicBreak.Style })},
	"THEMATIC_BREAK_LEADING_SPACES": {"spaces before a thematic break",
		intField(func(c *config.Config) **int { return &c.ThematicBreak.LeadingSpaces })},

	"CURLY_DOUBLE_QUOTES": {"curly double quotes",
		boolField(func(c *config.Config) **bool { return &c.Typography.CurlyDoubleQuotes })},
	"CURLY_SINGLE_QUOTES": {"curly single quotes",
		boolField(func(c *config.Config) **bool { return &c.Typography.CurlySingleQuotes })},
	"CURLY_APOSTROPHES": {"curly apostrophes",
		boolField(func(c *config.Config) **bool { return &c.Typography.CurlyApostrophes })},
	"ELLIPSIS": {"replace ... with an ellipsis",
		boolField(func(c *config.Config) **bool { return &c.Typography.Ellipsis })},
	"EN_DASH": {"replace -- with an en dash",
		boolField(func(c *config.Config) **bool { return &c.Typography.EnDash })},
	"EM_DASH": {"true, false, or the pattern replaced with an em dash", applyEmDash},
}

// FromEnv reads HONGDOWN_* variables through getenv. Unset and empty
// variables are skipped.
func FromEnv(getenv func(string) string) (*config.Config, error) {
	cfg := &config.Config{}
	for _, name := range sortedEnvNames() {
		value := getenv(EnvPrefix + name)
		if value == "" {
			continue
		}
		if err := envVars[name].apply(cfg, value); err != nil {
			return nil, fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
	}
	return cfg, nil
}

// EnvVars returns every supported variable with a short description.
func EnvVars() map[string]string {
	vars := make(map[string]string, len(envVars))
	for name, v := range envVars {
		vars[EnvPrefix+name] = v.help
	}
	return vars
}

func sortedEnvNames() []string {
	names := make([]string, 0, len(envVars))
	for name := range envVars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func intField(field func(*config.Config) **int) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		*field(cfg) = &n
		return nil
	}
}

func boolField(field func(*config.Config) **bool) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		*field(cfg) = &b
		return nil
	}
}

func stringField(field func(*config.Config) **string) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		*field(cfg) = &value
		return nil
	}
}

func applyEmDash(cfg *config.Config, value string) error {
	if b, err := strconv.ParseBool(value); err == nil {
		cfg.Typography.EmDash = options.EmDashBool(b)
		return nil
	}
	cfg.Typography.EmDash = options.EmDashPattern(value)
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
