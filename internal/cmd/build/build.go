// Package build provides the build command for dref.
package build

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-docs-collective/docref-cli/internal/config"
	"github.com/open-docs-collective/docref-cli/internal/render"
	"github.com/open-docs-collective/docref-cli/internal/site"
	"github.com/open-docs-collective/docref-cli/internal/view"
)

type buildOptions struct {
	contentDir string
	outDir     string
	jobs       int
	configPath string
	output     string
	noColor    bool
}

// NewCmdBuild creates the build command.
func NewCmdBuild() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the content tree",
		Long: `Render every Markdown page under the content directory into a
mirrored HTML tree in the output directory.

Pages render in parallel. A page that fails to render is reported and
skipped; its HTML is never written, so broken macro syntax cannot reach
published output.`,
		Example: `  # Render using the configured directories
  dref build

  # Override directories and worker count
  dref build --content ./content --out ./dist --jobs 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runBuild(opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.contentDir, "content", "", "Content directory (overrides config)")
	cmd.Flags().StringVar(&opts.outDir, "out", "", "Output directory (overrides config)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Number of parallel render workers")

	return cmd
}

func runBuild(opts *buildOptions, renderer *render.Renderer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if renderer == nil {
		renderer, err = site.NewRenderer(cfg)
		if err != nil {
			return err
		}
	}

	summary, err := renderer.RenderTree(cfg.ContentDir, cfg.OutputDir, render.TreeOptions{
		Jobs: cfg.Jobs,
	})
	if err != nil {
		return err
	}

	r := view.NewRenderer(view.Format(opts.output), opts.noColor)
	for _, failure := range summary.Failures {
		r.Error(failure.Error())
	}
	r.Success(fmt.Sprintf("rendered %d pages to %s", summary.Rendered, cfg.OutputDir))

	if summary.Failed() {
		return fmt.Errorf("%d pages failed to render", len(summary.Failures))
	}
	return nil
}

// loadConfig loads configuration and applies command-line overrides.
func loadConfig(opts *buildOptions) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.contentDir != "" {
		cfg.ContentDir = opts.contentDir
	}
	if opts.outDir != "" {
		cfg.OutputDir = opts.outDir
	}
	if opts.jobs > 0 {
		cfg.Jobs = opts.jobs
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'dref init' to configure)", err)
	}
	return cfg, nil
}
