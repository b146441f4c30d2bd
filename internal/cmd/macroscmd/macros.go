// Package macroscmd provides the macros listing command for dref.
package macroscmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-docs-collective/docref-cli/internal/config"
	"github.com/open-docs-collective/docref-cli/internal/macros"
	"github.com/open-docs-collective/docref-cli/internal/site"
	"github.com/open-docs-collective/docref-cli/internal/view"
)

type macrosOptions struct {
	configPath string
	output     string
	noColor    bool
}

// NewCmdMacros creates the macros command.
func NewCmdMacros() *cobra.Command {
	opts := &macrosOptions{}

	cmd := &cobra.Command{
		Use:     "macros",
		Aliases: []string{"ls"},
		Short:   "List registered macros",
		Long:    `List every macro name the renderer recognizes, with a short summary.`,
		Example: `  # List macros
  dref macros

  # Output as JSON
  dref macros -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runMacros(opts, nil)
		},
	}

	return cmd
}

func runMacros(opts *macrosOptions, builtins []macros.Builtin) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if builtins == nil {
		path := opts.configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		cfg, err := config.LoadWithEnv(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		builtins, err = site.Builtins(cfg)
		if err != nil {
			return err
		}
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	headers := []string{"NAME", "SUMMARY"}
	var rows [][]string
	for _, b := range builtins {
		rows = append(rows, []string{b.Name, b.Summary})
	}

	renderer.RenderTable(headers, rows)
	return nil
}
