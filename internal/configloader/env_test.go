package configloader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hongdown/internal/configloader"
	"github.com/yaklabco/hongdown/pkg/options"
)

func TestFromEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"HONGDOWN_LINE_WIDTH":        "100",
		"HONGDOWN_SETEXT_H2":         "false",
		"HONGDOWN_UNORDERED_MARKER":  "*",
		"HONGDOWN_ORDERED_LIST_PAD":  "start",
		"HONGDOWN_DETECT_LANGUAGE":   "1",
		"HONGDOWN_EXCLUDE":           "vendor/**, build/** ,",
		"HONGDOWN_CURLY_APOSTROPHES": "true",
		"HONGDOWN_EM_DASH":           "true",
		"HONGDOWN_FENCE_CHAR":        "",
		"UNRELATED":                  "x",
	}

	cfg, err := configloader.FromEnv(func(key string) string { return env[key] })
	require.NoError(t, err)

	assert.Equal(t, 100, *cfg.LineWidth)
	assert.False(t, *cfg.Heading.SetextH2)
	assert.Nil(t, cfg.Heading.SetextH1)
	assert.Equal(t, "*", *cfg.List.UnorderedMarker)
	assert.Equal(t, "start", *cfg.OrderedList.Pad)
	assert.True(t, *cfg.CodeBlock.DetectLanguage)
	assert.Nil(t, cfg.CodeBlock.FenceChar)
	assert.Equal(t, []string{"vendor/**", "build/**"}, cfg.Exclude)
	assert.True(t, *cfg.Typography.CurlyApostrophes)
	assert.Equal(t, options.DefaultEmDashPattern, cfg.Typography.EmDash.Resolve())
}

func TestFromEnv_EmDashPattern(t *testing.T) {
	t.Parallel()

	cfg, err := configloader.FromEnv(func(key string) string {
		if key == "HONGDOWN_EM_DASH" {
			return "--"
		}
		return ""
	})
	require.NoError(t, err)
	assert.Equal(t, "--", cfg.Typography.EmDash.Resolve())
}

func TestFromEnv_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"HONGDOWN_LINE_WIDTH": "wide",
		"HONGDOWN_SETEXT_H1":  "maybe",
	}

	for key, value := range tests {
		key := key
		value := value
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			_, err := configloader.FromEnv(func(k string) string {
				if k == key {
					return value
				}
				return ""
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestEnvVars(t *testing.T) {
	t.Parallel()

	vars := configloader.EnvVars()
	assert.Contains(t, vars, "HONGDOWN_LINE_WIDTH")
	assert.Contains(t, vars, "HONGDOWN_EM_DASH")
	for name, help := range vars {
		assert.True(t, strings.HasPrefix(name, configloader.EnvPrefix), name)
		assert.NotEmpty(t, help, name)
	}
}
