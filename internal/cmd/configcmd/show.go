package configcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-docs-collective/docref-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current dref configuration with value source indicators.`,
		Example: `  # Show current config
  dref config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(noColor)
		},
	}

	return cmd
}

func runShow(noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	configPath := config.DefaultConfigPath()

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Printf("%-14s", label+":")
		if value == "" {
			_, _ = dim.Println("-")
			return
		}

		fmt.Print(value)

		source := "config"
		if fileErr != nil {
			source = "-"
		}
		if envVar != "" && os.Getenv(envVar) == value {
			source = envVar
		} else if fileValue != value && source == "config" {
			source = "-"
		}

		_, _ = dim.Printf("  (source: %s)\n", source)
	}

	printField("Content dir", cfg.ContentDir, fileCfg.ContentDir, "DREF_CONTENT_DIR")
	printField("Output dir", cfg.OutputDir, fileCfg.OutputDir, "DREF_OUTPUT_DIR")
	printField("Base path", cfg.BasePath, fileCfg.BasePath, "DREF_BASE_PATH")
	printField("Compat data", cfg.CompatData, fileCfg.CompatData, "DREF_COMPAT_DATA")
	printField("Locale", cfg.Locale, fileCfg.Locale, "DREF_LOCALE")
	if cfg.Jobs > 0 {
		printField("Jobs", strconv.Itoa(cfg.Jobs), strconv.Itoa(fileCfg.Jobs), "")
	}

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Println("(file not found)")
	}

	return nil
}
