package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPaths holds the configuration files found for a run. Missing files
// are empty strings.
type ConfigPaths struct {
	// User is the per-user file, e.g. ~/.config/hongdown/config.toml.
	User string

	// Project is the nearest project file above the working directory.
	Project string

	// Explicit is the file named with --config.
	Explicit string
}

// ProjectConfigFiles are the project file names, in order of preference.
//
//nolint:gochecknoglobals // read-only lookup table
var ProjectConfigFiles = []string{
	".hongdown.toml",
	".hongdown.yaml",
	".hongdown.yml",
}

//nolint:gochecknoglobals // read-only lookup table
var userConfigFiles = []string{"config.toml", "config.yaml", "config.yml"}

//nolint:gochecknoglobals // read-only lookup table
var vcsRootMarkers = []string{".git", ".hg", ".svn", ".jj"}

// DiscoverPaths finds the user and project configuration files.
func DiscoverPaths(ctx context.Context, workDir string, getenv func(string) string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		User:    findUserConfig(getenv),
		Project: project,
	}, nil
}

// UserConfigDir returns $XDG_CONFIG_HOME/hongdown, falling back to
// ~/.config/hongdown. It returns "" when neither can be determined.
func UserConfigDir(getenv func(string) string) string {
	configHome := getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home := getenv("HOME")
		if home == "" {
			var err error
			if home, err = os.UserHomeDir(); err != nil {
				return ""
			}
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "hongdown")
}

func findUserConfig(getenv func(string) string) string {
	dir := UserConfigDir(getenv)
	if dir == "" {
		return ""
	}
	return firstExisting(dir, userConfigFiles)
}

// FindProjectConfig searches startDir and its parents for a project file.
// The search stops at a VCS root, the home directory or the filesystem
// root, whichever comes first.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		if startDir, err = os.Getwd(); err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	homeDir, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		if path := firstExisting(dir, ProjectConfigFiles); path != "" {
			return path, nil
		}
		if isVCSRoot(dir) || (homeDir != "" && dir == homeDir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
