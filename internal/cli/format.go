package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/hongdown/internal/configloader"
	"github.com/yaklabco/hongdown/internal/logging"
	"github.com/yaklabco/hongdown/internal/ui/pretty"
	"github.com/yaklabco/hongdown/pkg/config"
	"github.com/yaklabco/hongdown/pkg/diff"
	"github.com/yaklabco/hongdown/pkg/hongdown"
	"github.com/yaklabco/hongdown/pkg/options"
	"github.com/yaklabco/hongdown/pkg/reporter"
	"github.com/yaklabco/hongdown/pkg/runner"
	"github.com/yaklabco/hongdown/pkg/verify"
)

// stdinName labels standard input in messages and diffs.
const stdinName = "<stdin>"

type formatFlags struct {
	write  bool
	check  bool
	diff   bool
	stdin  bool
	strict bool
	verify bool
	output string
	jobs   int

	include []string
	exclude []string

	lineWidth       int
	unorderedMarker string
	indentWidth     int
	fenceChar       string
	defaultLanguage string
	detectLanguage  bool
	setextH1        bool
	setextH2        bool
}

func newFormatCommand(global *globalFlags) *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [paths...]",
		Short: "Format Markdown files",
		Long: `Format Markdown files.

Directories are searched for .md and .markdown files; hidden entries are
skipped. A single file is printed to standard output unless --write,
--check or --diff is given. Several files or directories are reported as a
summary of what would change.`,
		Example: `  hongdown format --write .
  hongdown format --check --format json docs/
  hongdown format --diff README.md
  hongdown format --stdin --line-width 72 < notes.md`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, global, flags)
		},
	}

	addFormatFlags(cmd, flags)
	return cmd
}

func addFormatFlags(cmd *cobra.Command, flags *formatFlags) {
	fs := cmd.Flags()
	fs.BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	fs.BoolVar(&flags.check, "check", false, "exit 1 if any file would be reformatted")
	fs.BoolVar(&flags.diff, "diff", false, "print a unified diff of the changes")
	fs.BoolVar(&flags.stdin, "stdin", false, "read from standard input and write to standard output")
	fs.BoolVar(&flags.strict, "strict", false, "exit 1 if formatting produced warnings")
	fs.BoolVar(&flags.verify, "verify", false, "check that formatted files render to the same HTML")
	fs.StringVar(&flags.output, "format", "text", "report format: text or json")
	fs.IntVarP(&flags.jobs, "jobs", "j", 0, "number of files formatted at once (0 = number of CPUs)")
	fs.StringSliceVar(&flags.include, "include", nil, "glob patterns of files to format")
	fs.StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns of paths to skip")

	fs.IntVar(&flags.lineWidth, "line-width", 0, "target width for wrapped paragraphs")
	fs.StringVar(&flags.unorderedMarker, "unordered-marker", "", "bullet character: -, * or +")
	fs.IntVar(&flags.indentWidth, "indent-width", 0, "indentation of bullet list content")
	fs.StringVar(&flags.fenceChar, "fence-char", "", "code fence character: ~ or `")
	fs.StringVar(&flags.defaultLanguage, "default-language", "", "language for untagged code blocks")
	fs.BoolVar(&flags.detectLanguage, "detect-language", false, "guess the language of untagged code blocks")
	fs.BoolVar(&flags.setextH1, "setext-h1", true, "underline level 1 headings")
	fs.BoolVar(&flags.setextH2, "setext-h2", true, "underline level 2 headings")

	cmd.MarkFlagsMutuallyExclusive("check", "write")
	cmd.MarkFlagsMutuallyExclusive("stdin", "write")
}

// overrides returns the options set on the command line. Flags left at
// their defaults do not override configuration files.
func (f *formatFlags) overrides(cmd *cobra.Command) *config.Config {
	changed := cmd.Flags().Changed
	cfg := &config.Config{}

	if changed("include") {
		cfg.Include = f.include
	}
	if changed("exclude") {
		cfg.Exclude = f.exclude
	}
	if changed("line-width") {
		cfg.LineWidth = options.Ptr(f.lineWidth)
	}
	if changed("unordered-marker") {
		cfg.List.UnorderedMarker = options.Ptr(f.unorderedMarker)
	}
	if changed("indent-width") {
		cfg.List.IndentWidth = options.Ptr(f.indentWidth)
	}
	if changed("fence-char") {
		cfg.CodeBlock.FenceChar = options.Ptr(f.fenceChar)
	}
	if changed("default-language") {
		cfg.CodeBlock.DefaultLanguage = options.Ptr(f.defaultLanguage)
	}
	if changed("detect-language") {
		cfg.CodeBlock.DetectLanguage = options.Ptr(f.detectLanguage)
	}
	if changed("setext-h1") {
		cfg.Heading.SetextH1 = options.Ptr(f.setextH1)
	}
	if changed("setext-h2") {
		cfg.Heading.SetextH2 = options.Ptr(f.setextH2)
	}
	return cfg
}

func runFormat(cmd *cobra.Command, args []string, global *globalFlags, flags *formatFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	outputFormat, err := reporter.ParseFormat(flags.output)
	if err != nil || outputFormat == reporter.FormatDiff {
		return fmt.Errorf("invalid --format %q: must be text or json", flags.output)
	}
	if flags.stdin && len(args) > 0 {
		return errors.New("--stdin does not take paths")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: global.configPath,
		CLIConfig:    flags.overrides(cmd),
	})
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved", logging.FieldConfig, loaded.LoadedFrom)

	if flags.stdin {
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read standard input: %w", err)
		}
		return formatOne(cmd, stdinName, string(input), loaded.Style, global, flags)
	}

	if path, ok := singleFile(args); ok && !flags.write && !flags.check && !flags.diff {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		return formatOne(cmd, path, string(content), loaded.Style, global, flags)
	}

	result, err := runner.Run(ctx, runner.Options{
		Paths:      args,
		WorkingDir: workDir,
		Include:    loaded.Config.Include,
		Exclude:    loaded.Config.Exclude,
		Jobs:       flags.jobs,
		Style:      loaded.Style,
		Write:      flags.write,
		Verify:     flags.verify,
	})
	if err != nil {
		return err
	}

	if flags.diff {
		outputFormat = reporter.FormatDiff
	}
	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      outputFormat,
		Color:       global.color,
		ShowSummary: true,
		Write:       flags.write,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
	)

	switch {
	case result.HasErrors():
		return ErrFileErrors
	case flags.check && result.HasChanges():
		return ErrUnformattedFiles
	case flags.strict && result.HasWarnings():
		return ErrWarningsFound
	default:
		return nil
	}
}

// singleFile reports whether args name exactly one regular file.
func singleFile(args []string) (string, bool) {
	if len(args) != 1 {
		return "", false
	}
	info, err := os.Stat(args[0])
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return args[0], true
}

// formatOne formats a single document held in memory. The formatted text
// goes to standard output; warnings go to standard error.
func formatOne(cmd *cobra.Command, name, input string, style options.Style, global *globalFlags, flags *formatFlags) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(global.color, stderr))

	res := hongdown.FormatStyle(input, style)
	changed := res.Output != input

	if flags.verify && changed {
		v := verify.New()
		v.IgnoreLanguage = style.DetectLanguage || style.DefaultLanguage != ""
		if err := v.Check(input, res.Output); err != nil {
			_, _ = fmt.Fprint(stderr, styles.FormatFileError(name, err))
			return ErrFileErrors
		}
	}

	for _, w := range res.Warnings {
		_, _ = fmt.Fprint(stderr, styles.FormatWarning(name, w))
	}

	switch {
	case flags.check:
		if changed {
			_, _ = fmt.Fprintf(stderr, "would reformat %s\n", name)
		}
	case flags.diff:
		if d := diff.New(name, input, res.Output); d != nil {
			unified, err := d.Unified()
			if err != nil {
				return fmt.Errorf("diff %s: %w", name, err)
			}
			if _, err := io.WriteString(stdout, unified); err != nil {
				return fmt.Errorf("write diff: %w", err)
			}
		}
	default:
		if _, err := io.WriteString(stdout, res.Output); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	switch {
	case flags.check && changed:
		return ErrUnformattedFiles
	case flags.strict && len(res.Warnings) > 0:
		return ErrWarningsFound
	default:
		return nil
	}
}
