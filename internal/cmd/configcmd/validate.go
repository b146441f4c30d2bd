package configcmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-docs-collective/docref-cli/internal/bcd"
	"github.com/open-docs-collective/docref-cli/internal/config"
)

// NewCmdValidate creates the config validate command.
func NewCmdValidate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the current configuration",
		Long: `Check that the configured directories exist and that the compat data
file, if configured, parses.`,
		Example: `  # Validate config
  dref config validate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runValidate(noColor)
		},
	}

	return cmd
}

func runValidate(noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		_, _ = red.Printf("✗ Invalid config: %v\n", err)
		return fmt.Errorf("configuration is invalid")
	}
	_, _ = green.Println("✓ Config fields are valid")

	failed := false

	if info, err := os.Stat(cfg.ContentDir); err != nil || !info.IsDir() {
		_, _ = red.Printf("✗ Content directory not found: %s\n", cfg.ContentDir)
		failed = true
	} else {
		_, _ = green.Printf("✓ Content directory: %s\n", cfg.ContentDir)
	}

	if cfg.CompatData != "" {
		store, err := bcd.Load(cfg.CompatData)
		if err != nil {
			_, _ = red.Printf("✗ Compat data: %v\n", err)
			failed = true
		} else {
			_, _ = green.Printf("✓ Compat data: %d features\n", store.Len())
		}
	}

	if failed {
		return fmt.Errorf("configuration validation failed")
	}
	return nil
}
