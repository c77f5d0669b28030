package configloader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/hongdown/pkg/config"
	"github.com/yaklabco/hongdown/pkg/fsutil"
	"github.com/yaklabco/hongdown/pkg/options"
)

// ErrConfigExists is returned by WriteTemplate when the target file exists
// and overwriting was not allowed.
var ErrConfigExists = errors.New("configuration file already exists")

// InitOptions controls WriteTemplate.
type InitOptions struct {
	// Path is the file to write. Defaults to .hongdown.toml in the current
	// directory. The extension selects TOML or YAML.
	Path string

	// Style provides the values written to the file.
	Style options.Style

	// Overwrite replaces an existing file.
	Overwrite bool
}

// WriteTemplate writes a commented configuration file and returns its
// absolute path.
func WriteTemplate(ctx context.Context, opts InitOptions) (string, error) {
	path := opts.Path
	if path == "" {
		path = config.FileName
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	format, err := config.FormatFromPath(absPath)
	if err != nil {
		return "", err
	}

	if !opts.Overwrite && fileExists(absPath) {
		return absPath, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	content, err := config.Template(opts.Style, format)
	if err != nil {
		return "", fmt.Errorf("generate template: %w", err)
	}
	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return absPath, nil
}

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // fd fits in int
}

// Confirm writes question to out and reads a yes or no answer from in.
// Anything but y or yes is a no.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N] ", question); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
