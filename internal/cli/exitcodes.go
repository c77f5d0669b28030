package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/hongdown/internal/configloader"
	"github.com/yaklabco/hongdown/pkg/fsutil"
	"github.com/yaklabco/hongdown/pkg/options"
)

// Exit codes of the hongdown command.
const (
	// ExitSuccess means every file was already formatted or was rewritten.
	ExitSuccess = 0

	// ExitUnformatted means files would be reformatted (--check), or
	// formatting produced warnings under --strict.
	ExitUnformatted = 1

	// ExitUsage means invalid flags, arguments or configuration.
	ExitUsage = 2

	// ExitIOError means files could not be read, verified or written.
	ExitIOError = 3
)

// Errors that carry an exit status. The reporter has already described
// the problem when one of these is returned.
var (
	ErrUnformattedFiles = errors.New("some files are not formatted")
	ErrWarningsFound    = errors.New("formatting produced warnings")
	ErrFileErrors       = errors.New("some files could not be formatted")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var (
		pathErr   *fs.PathError
		loadErr   *configloader.LoadError
		configErr *options.ConfigError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUnformattedFiles), errors.Is(err, ErrWarningsFound):
		return ExitUnformatted
	case errors.As(err, &loadErr), errors.As(err, &configErr):
		return ExitUsage
	case errors.Is(err, ErrFileErrors),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitUsage
	}
}

// IsReported reports whether err only signals an exit status and needs no
// further message.
func IsReported(err error) bool {
	return errors.Is(err, ErrUnformattedFiles) ||
		errors.Is(err, ErrWarningsFound) ||
		errors.Is(err, ErrFileErrors)
}
