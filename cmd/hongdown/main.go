// Package main is the entry point for the hongdown CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/yaklabco/hongdown/internal/cli"
	"github.com/yaklabco/hongdown/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := logging.Default()

	// Set only fails on an invalid GOMAXPROCS, which the runtime then ignores.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Debugf))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting",
		logging.FieldVersion, version,
		logging.FieldCommit, commit,
		logging.FieldBuilt, date,
	)

	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !cli.IsReported(err) {
		logger.Error("command failed", logging.FieldError, err)
	}
	return cli.ExitCode(err)
}
