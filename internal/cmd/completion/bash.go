package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for dref.

To load completions in your current shell session:

  source <(dref completion bash)

To load completions for every new session:

  # Linux
  dref completion bash > /etc/bash_completion.d/dref

  # macOS (requires bash-completion)
  dref completion bash > $(brew --prefix)/etc/bash_completion.d/dref`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
