package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hongdown/internal/configloader"
	"github.com/yaklabco/hongdown/pkg/config"
	"github.com/yaklabco/hongdown/pkg/options"
)

// sandbox is a temporary repository with its own user config directory.
type sandbox struct {
	root string
	xdg  string
	env  map[string]string
}

func newSandbox(t *testing.T) *sandbox {
	t.Helper()

	base := t.TempDir()
	s := &sandbox{
		root: filepath.Join(base, "repo"),
		xdg:  filepath.Join(base, "xdg"),
		env:  map[string]string{},
	}
	require.NoError(t, os.MkdirAll(filepath.Join(s.root, ".git"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(s.xdg, "hongdown"), 0o755))
	s.env["XDG_CONFIG_HOME"] = s.xdg
	return s
}

func (s *sandbox) write(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *sandbox) getenv(key string) string {
	return s.env[key]
}

func (s *sandbox) options() configloader.LoadOptions {
	defaults := options.DefaultStyle()
	return configloader.LoadOptions{
		WorkingDir: s.root,
		Getenv:     s.getenv,
		Defaults:   &defaults,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	s := newSandbox(t)

	result, err := configloader.Load(context.Background(), s.options())
	require.NoError(t, err)

	assert.Equal(t, options.DefaultStyle(), result.Style)
	assert.Empty(t, result.LoadedFrom)
	assert.Empty(t, result.Paths.Project)
	assert.Empty(t, result.Paths.User)
}

func TestLoad_EngineDefaults(t *testing.T) {
	t.Parallel()

	s := newSandbox(t)
	opts := s.options()
	opts.Defaults = nil

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 80, result.Style.LineWidth)
	assert.Equal(t, "~", result.Style.FenceChar)
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	s := newSandbox(t)
	user := s.write(t, filepath.Join(s.xdg, "hongdown", "config.toml"),
		"line_width = 60\n[list]\nunordered_marker = \"*\"\nindent_width = 2\n[code_block]\nfence_char = \"`\"\n")
	project := s.write(t, filepath.Join(s.root, ".hongdown.yaml"),
		"line_width: 70\nlist:\n  unordered_marker: \"+\"\nexclude:\n  - vendor/**\n")
	explicit := s.write(t, filepath.Join(s.root, "ci", "strict.toml"),
		"line_width = 72\n[heading]\nsetext_h1 = false\n")
	s.env["HONGDOWN_LINE_WIDTH"] = "74"
	s.env["HONGDOWN_EM_DASH"] = "--"

	opts := s.options()
	opts.WorkingDir = filepath.Join(s.root, "docs", "guide")
	require.NoError(t, os.MkdirAll(opts.WorkingDir, 0o755))
	opts.ExplicitPath = explicit
	opts.CLIConfig = &config.Config{CodeBlock: config.CodeBlockConfig{MinFenceLength: options.Ptr(5)}}

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{user, project, explicit, "environment"}, result.LoadedFrom)
	assert.Equal(t, project, result.Paths.Project)

	style := result.Style
	assert.Equal(t, 74, style.LineWidth)
	assert.Equal(t, "+", style.UnorderedMarker)
	assert.Equal(t, 2, style.IndentWidth)
	assert.Equal(t, "`", style.FenceChar)
	assert.Equal(t, 5, style.MinFenceLength)
	assert.False(t, style.SetextH1)
	assert.True(t, style.SetextH2)
	assert.Equal(t, "--", style.EmDash)
	assert.Equal(t, []string{"vendor/**"}, result.Config.Exclude)
}

func TestLoad_IgnoreFlags(t *testing.T) {
	t.Parallel()

	s := newSandbox(t)
	s.write(t, filepath.Join(s.xdg, "hongdown", "config.toml"), "line_width = 60\n")
	s.write(t, filepath.Join(s.root, ".hongdown.toml"), "line_width = 70\n")
	s.env["HONGDOWN_LINE_WIDTH"] = "74"

	opts := s.options()
	opts.IgnoreUserConfig = true
	opts.IgnoreProjectConfig = true
	opts.IgnoreEnv = true

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 80, result.Style.LineWidth)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setup     func(t *testing.T, s *sandbox, opts *configloader.LoadOptions)
		wantLoad  bool
		wantField string
	}{
		{
			name: "malformed project file",
			setup: func(t *testing.T, s *sandbox, _ *configloader.LoadOptions) {
				t.Helper()
				s.write(t, filepath.Join(s.root, ".hongdown.toml"), "line_width = = 1\n")
			},
			wantLoad: true,
		},
		{
			name: "unknown key",
			setup: func(t *testing.T, s *sandbox, _ *configloader.LoadOptions) {
				t.Helper()
				s.write(t, filepath.Join(s.root, ".hongdown.toml"), "[list]\nmarker = \"*\"\n")
			},
			wantLoad: true,
		},
		{
			name: "missing explicit file",
			setup: func(_ *testing.T, s *sandbox, opts *configloader.LoadOptions) {
				opts.ExplicitPath = filepath.Join(s.root, "missing.toml")
			},
			wantLoad: true,
		},
		{
			name: "bad environment value",
			setup: func(_ *testing.T, s *sandbox, _ *configloader.LoadOptions) {
				s.env["HONGDOWN_INDENT_WIDTH"] = "wide"
			},
			wantLoad: true,
		},
		{
			name: "value out of range",
			setup: func(t *testing.T, s *sandbox, _ *configloader.LoadOptions) {
				t.Helper()
				s.write(t, filepath.Join(s.root, ".hongdown.toml"), "[code_block]\nfence_char = \"#\"\n")
			},
			wantField: "fenceChar",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			s := newSandbox(t)
			opts := s.options()
			testCase.setup(t, s, &opts)

			_, err := configloader.Load(context.Background(), opts)
			require.Error(t, err)

			if testCase.wantLoad {
				var loadErr *configloader.LoadError
				require.ErrorAs(t, err, &loadErr)
			}
			if testCase.wantField != "" {
				var cfgErr *options.ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, testCase.wantField, cfgErr.Field)
			}
		})
	}
}

func TestLoadFile_UnknownExtension(t *testing.T) {
	t.Parallel()

	s := newSandbox(t)
	path := s.write(t, filepath.Join(s.root, "hongdown.json"), "{}")

	_, err := configloader.LoadFile(path)
	require.ErrorIs(t, err, config.ErrUnknownFormat)
}
