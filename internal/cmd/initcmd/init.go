// Package initcmd provides the init command for dref.
package initcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-docs-collective/docref-cli/internal/config"
	"github.com/open-docs-collective/docref-cli/internal/macros"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		contentDir string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize dref configuration",
		Long: `Initialize dref with your content and output directories.

This command will guide you through setting up the content directory,
output directory, locale, and optional compat data file. The
configuration will be saved to ~/.config/dref/config.yml.`,
		Example: `  # Interactive setup
  dref init

  # Pre-populate the content directory
  dref init --content ./content`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(contentDir, outDir)
		},
	}

	cmd.Flags().StringVar(&contentDir, "content", "", "Content directory containing Markdown pages")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory for rendered HTML")

	return cmd
}

func runInit(prefillContent, prefillOut string) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		ContentDir: prefillContent,
		OutputDir:  prefillOut,
		Locale:     macros.DefaultLocale,
	}
	jobs := "4"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Content directory").
				Description("Directory containing your Markdown reference pages").
				Placeholder("./content").
				Value(&cfg.ContentDir).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("content directory is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Output directory").
				Description("Where rendered HTML files will be written").
				Placeholder("./dist").
				Value(&cfg.OutputDir).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("output directory is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Locale").
				Description("Locale used in generated doc links").
				Value(&cfg.Locale),

			huh.NewInput().
				Title("Compat data file").
				Description("Optional browser-compat-data JSON file").
				Placeholder("./data/compat.json").
				Value(&cfg.CompatData),

			huh.NewInput().
				Title("Render workers").
				Description("Number of pages rendered in parallel").
				Value(&jobs).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("must be a positive number")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Jobs, _ = strconv.Atoi(jobs)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("Configuration saved to %s\n", configPath)
	fmt.Println("Run 'dref build' to render your content tree.")
	return nil
}
