package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/hongdown/internal/configloader"
	"github.com/yaklabco/hongdown/internal/logging"
	"github.com/yaklabco/hongdown/pkg/config"
	"github.com/yaklabco/hongdown/pkg/engine"
)

type initFlags struct {
	force  bool
	output string
}

func newInitCommand(global *globalFlags) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long: `Create a commented configuration file listing every style option with
its default value. The extension of --output selects TOML or YAML.`,
		Example: `  hongdown init
  hongdown init --output .hongdown.yaml
  hongdown init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, global, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", config.FileName, "file to write")

	return cmd
}

func runInit(cmd *cobra.Command, global *globalFlags, flags *initFlags) error {
	ctx := cmd.Context()
	console := logging.NewConsole(cmd.ErrOrStderr())

	// Start from the built-in style, with --config applied if given.
	style, err := engine.Default().Ready()
	if err != nil {
		return fmt.Errorf("load style profile: %w", err)
	}
	if global.configPath != "" {
		loaded, err := configloader.Load(ctx, configloader.LoadOptions{
			ExplicitPath:        global.configPath,
			IgnoreUserConfig:    true,
			IgnoreProjectConfig: true,
			IgnoreEnv:           true,
		})
		if err != nil {
			return err
		}
		style = loaded.Style
	}

	opts := configloader.InitOptions{Path: flags.output, Style: style, Overwrite: flags.force}
	path, err := configloader.WriteTemplate(ctx, opts)
	if errors.Is(err, configloader.ErrConfigExists) && configloader.IsInteractive() {
		overwrite, promptErr := configloader.Confirm(cmd.InOrStdin(), cmd.ErrOrStderr(),
			fmt.Sprintf("%s already exists. Overwrite?", flags.output))
		if promptErr != nil {
			return promptErr
		}
		if !overwrite {
			console.Info("kept existing configuration file", logging.FieldPath, path)
			return nil
		}
		opts.Overwrite = true
		path, err = configloader.WriteTemplate(ctx, opts)
	}
	if err != nil {
		if errors.Is(err, configloader.ErrConfigExists) {
			return fmt.Errorf("%w; use --force to overwrite", err)
		}
		return err
	}

	console.Info("created configuration file", logging.FieldPath, path)
	return nil
}
