// Package logging configures the charmbracelet/log loggers used across
// hongdown. Diagnostics go to stderr so formatted output on stdout stays
// clean.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Prefix marks every diagnostic line written by the default logger.
const Prefix = "hongdown"

//nolint:gochecknoglobals // process-wide default logger
var (
	defaultMu     sync.RWMutex
	defaultLogger *log.Logger
)

// ParseLevel maps a level name to a log level. Unknown names map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a stderr logger at the given level.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w at the given level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		ReportTimestamp: false,
		ReportCaller:    false,
		Level:           ParseLevel(level),
	})
	return logger
}

// NewConsole creates an unprefixed info logger for messages addressed to
// the user, such as the result of the init command.
func NewConsole(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           log.InfoLevel,
	})
}

// Default returns the process-wide logger, creating it on first use.
func Default() *log.Logger {
	defaultMu.RLock()
	logger := defaultLogger
	defaultMu.RUnlock()
	if logger != nil {
		return logger
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger. A nil logger resets it.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetLevel updates the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
