// Package rendercmd provides the render command for dref.
package rendercmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-docs-collective/docref-cli/internal/config"
	"github.com/open-docs-collective/docref-cli/internal/render"
	"github.com/open-docs-collective/docref-cli/internal/site"
)

type renderOptions struct {
	outFile    string
	text       bool
	configPath string
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a single page",
		Long:  `Render one Markdown reference page to HTML on stdout or to a file.`,
		Example: `  # Render to stdout
  dref render content/web/api/element/arialevel/index.md

  # Render to a file
  dref render index.md --out index.html

  # Expand macros only, keep Markdown
  dref render index.md --text`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			return runRender(args[0], opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.outFile, "out", "", "Write output to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.text, "text", false, "Emit resolved Markdown without HTML conversion")

	return cmd
}

func runRender(path string, opts *renderOptions, renderer *render.Renderer) error {
	// Build the renderer unless one was injected for testing.
	if renderer == nil {
		cfg, err := config.LoadWithEnv(configPath(opts.configPath))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		renderer, err = site.NewRenderer(cfg)
		if err != nil {
			return err
		}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read page: %w", err)
	}

	var output string
	if opts.text {
		output, err = renderer.ResolvePage(source)
	} else {
		output, err = renderer.RenderPage(source)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if opts.outFile != "" {
		if err := os.WriteFile(opts.outFile, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Print(output)
	return nil
}

func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.DefaultConfigPath()
}
