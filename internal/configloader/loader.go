// Package configloader resolves hongdown configuration from the user file,
// the project file, an explicit --config file, HONGDOWN_* environment
// variables and command-line flags.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/hongdown/internal/logging"
	"github.com/yaklabco/hongdown/pkg/config"
	"github.com/yaklabco/hongdown/pkg/engine"
	"github.com/yaklabco/hongdown/pkg/options"
)

// LoadError reports a configuration source that could not be used.
type LoadError struct {
	// Source is the file path, or "environment".
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load config %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// sourceEnvironment names the environment in LoadError and LoadedFrom.
const sourceEnvironment = "environment"

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where the project search starts. Defaults to the
	// current directory.
	WorkingDir string

	// ExplicitPath is a file named with --config. It is loaded after the
	// project file and must exist.
	ExplicitPath string

	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// Getenv reads environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// Defaults is the style unset options fall back to. Defaults to the
	// style of the default engine.
	Defaults *options.Style

	// CLIConfig holds options set by flags. It has the highest precedence.
	CLIConfig *config.Config
}

// LoadResult is the resolved configuration.
type LoadResult struct {
	// Config is the merge of every source. Unset fields are nil.
	Config *config.Config

	// Style is Config resolved against the defaults and validated.
	Style options.Style

	Paths *ConfigPaths

	// LoadedFrom lists the sources that were applied, lowest precedence first.
	LoadedFrom []string
}

// Load merges every configuration source. Later sources win:
//
//  1. engine defaults
//  2. user config ($XDG_CONFIG_HOME/hongdown/config.toml)
//  3. project config (.hongdown.toml, .hongdown.yaml or .hongdown.yml)
//  4. explicit config (--config)
//  5. HONGDOWN_* environment variables
//  6. command-line flags
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		if workDir, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	defaults, err := resolveDefaults(opts.Defaults)
	if err != nil {
		return nil, err
	}

	paths, err := DiscoverPaths(ctx, workDir, getenv)
	if err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := &config.Config{}

	apply := func(path string) error {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return err
		}
		cfg = config.Merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, path)
		logger.Debug("loaded config", logging.FieldSource, path)
		return nil
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := apply(paths.User); err != nil {
			return nil, err
		}
	}
	if !opts.IgnoreProjectConfig && paths.Project != "" {
		if err := apply(paths.Project); err != nil {
			return nil, err
		}
	}
	if paths.Explicit != "" {
		if err := apply(paths.Explicit); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreEnv {
		envCfg, err := FromEnv(getenv)
		if err != nil {
			return nil, &LoadError{Source: sourceEnvironment, Err: err}
		}
		if !isEmpty(envCfg) {
			cfg = config.Merge(cfg, envCfg)
			result.LoadedFrom = append(result.LoadedFrom, sourceEnvironment)
		}
	}

	cfg = config.Merge(cfg, opts.CLIConfig)

	style, err := options.Resolve(cfg.ToFormatOptions(), defaults)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	result.Config = cfg
	result.Style = style
	return result, nil
}

func isEmpty(cfg *config.Config) bool {
	return len(cfg.Include) == 0 && len(cfg.Exclude) == 0 &&
		cfg.ToFormatOptions() == (options.FormatOptions{})
}

func resolveDefaults(defaults *options.Style) (options.Style, error) {
	if defaults != nil {
		return *defaults, nil
	}
	style, err := engine.Default().Ready()
	if err != nil {
		return options.Style{}, fmt.Errorf("load style profile: %w", err)
	}
	return style, nil
}

// LoadFile reads and decodes one configuration file. The format follows
// the file extension.
func LoadFile(path string) (*config.Config, error) {
	format, err := config.FormatFromPath(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Source: path, Err: fmt.Errorf("file not found: %w", err)}
		}
		return nil, &LoadError{Source: path, Err: err}
	}

	cfg, err := config.Parse(data, format)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return cfg, nil
}
