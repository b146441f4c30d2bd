// Package check provides the check command for dref.
package check

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-docs-collective/docref-cli/internal/config"
	"github.com/open-docs-collective/docref-cli/internal/render"
	"github.com/open-docs-collective/docref-cli/internal/site"
	"github.com/open-docs-collective/docref-cli/internal/view"
	"github.com/open-docs-collective/docref-cli/pkg/macro"
	"github.com/open-docs-collective/docref-cli/pkg/page"
)

type checkOptions struct {
	contentDir string
	jobs       int
	configPath string
	output     string
	noColor    bool
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check macro usage across the content tree",
		Long: `Resolve every macro invocation in the content tree without writing
output. Each malformed invocation, unknown macro, or failing handler is
reported with its file, line, and column.`,
		Example: `  # Check the configured content tree
  dref check

  # Check a specific directory
  dref check --content ./content`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runCheck(opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.contentDir, "content", "", "Content directory (overrides config)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Number of parallel workers")

	return cmd
}

func runCheck(opts *checkOptions, renderer *render.Renderer) error {
	path := opts.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.contentDir != "" {
		cfg.ContentDir = opts.contentDir
	}
	if opts.jobs > 0 {
		cfg.Jobs = opts.jobs
	}
	if cfg.ContentDir == "" {
		return errors.New("content_dir is required (run 'dref init' to configure)")
	}

	if renderer == nil {
		renderer, err = site.NewRenderer(cfg)
		if err != nil {
			return err
		}
	}

	summary, err := renderer.RenderTree(cfg.ContentDir, "", render.TreeOptions{
		Jobs:      cfg.Jobs,
		CheckOnly: true,
	})
	if err != nil {
		return err
	}

	r := view.NewRenderer(view.Format(opts.output), opts.noColor)
	for _, failure := range summary.Failures {
		r.Error(describe(failure))
	}

	if summary.Failed() {
		return fmt.Errorf("%d of %d pages have macro errors",
			len(summary.Failures), len(summary.Failures)+summary.Rendered)
	}
	r.Success(fmt.Sprintf("%d pages checked, no macro errors", summary.Rendered))
	return nil
}

// describe formats a failure as file:line:col where the failing
// invocation's offset can be recovered from the error.
func describe(failure render.FileError) string {
	offset, ok := errorOffset(failure.Err)
	if !ok {
		return failure.Error()
	}

	source, err := os.ReadFile(failure.Path)
	if err != nil {
		return failure.Error()
	}
	p, err := page.Parse(source)
	if err != nil {
		return failure.Error()
	}

	line, col := macro.LineCol(string(source), p.BodyOffset+offset)
	return fmt.Sprintf("%s:%d:%d: %v", failure.Path, line, col, failure.Err)
}

// errorOffset extracts the body-relative byte offset from a macro error.
func errorOffset(err error) (int, bool) {
	var malformed *macro.MalformedError
	if errors.As(err, &malformed) {
		return malformed.Offset, true
	}
	var unknown *macro.UnknownMacroError
	if errors.As(err, &unknown) {
		return unknown.Offset, true
	}
	var handlerErr *macro.HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr.Offset, true
	}
	return 0, false
}
