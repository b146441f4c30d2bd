// Package root provides the root command for the dref CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-docs-collective/docref-cli/internal/cmd/build"
	"github.com/open-docs-collective/docref-cli/internal/cmd/check"
	"github.com/open-docs-collective/docref-cli/internal/cmd/completion"
	"github.com/open-docs-collective/docref-cli/internal/cmd/configcmd"
	"github.com/open-docs-collective/docref-cli/internal/cmd/importcmd"
	"github.com/open-docs-collective/docref-cli/internal/cmd/initcmd"
	"github.com/open-docs-collective/docref-cli/internal/cmd/macroscmd"
	"github.com/open-docs-collective/docref-cli/internal/cmd/rendercmd"
	"github.com/open-docs-collective/docref-cli/internal/version"
)

// NewCmdRoot creates the root command for dref.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dref",
		Short: "A renderer for reference documentation pages",
		Long: `dref renders Markdown reference documentation into HTML.

Pages carry YAML front matter (title, slug, browser-compat key) and
inline {{macro(...)}} invocations for cross-references, compatibility
tables, and status banners. dref expands the macros, converts the
Markdown, and writes the resulting HTML tree.

Get started by running: dref init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/dref/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("dref version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(rendercmd.NewCmdRender())
	cmd.AddCommand(build.NewCmdBuild())
	cmd.AddCommand(check.NewCmdCheck())
	cmd.AddCommand(macroscmd.NewCmdMacros())
	cmd.AddCommand(importcmd.NewCmdImport())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
