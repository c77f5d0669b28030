// Package cli implements the hongdown command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/hongdown/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the hongdown command. Run with paths and no
// subcommand, it behaves like "hongdown format".
func NewRootCommand(info BuildInfo) *cobra.Command {
	global := &globalFlags{}
	flags := &formatFlags{}

	rootCmd := &cobra.Command{
		Use:   "hongdown [flags] [paths...]",
		Short: "A Markdown formatter with opinionated, reproducible output",
		Long: `hongdown rewrites Markdown documents into one canonical style.

Headings, lists, code fences, thematic breaks and tables are normalized and
paragraphs are rewrapped to the configured line width. Formatting is
idempotent, and regions marked with hongdown-disable directives are kept
byte for byte.

With paths and no subcommand, hongdown runs the format command.`,
		Example: `  hongdown README.md             Print the formatted file
  hongdown --write docs/         Rewrite every Markdown file under docs/
  hongdown --check .             Exit 1 if any file would change
  cat notes.md | hongdown --stdin`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if global.debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !flags.stdin {
				return cmd.Help()
			}
			return runFormat(cmd, args, global, flags)
		},
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "",
		"path to a configuration file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&global.color, "color", "auto", "colorize output: auto, always, never")
	addFormatFlags(rootCmd, flags)

	rootCmd.AddCommand(newFormatCommand(global))
	rootCmd.AddCommand(newInitCommand(global))
	rootCmd.AddCommand(newVersionCommand(info))

	help := &helpFormatter{colorMode: func() string { return global.color }}
	help.apply(rootCmd)

	return rootCmd
}
