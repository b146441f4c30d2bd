package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdPowerShell creates the powershell completion command.
func NewCmdPowerShell() *cobra.Command {
	return &cobra.Command{
		Use:   "powershell",
		Short: "Generate powershell completion script",
		Long: `Generate powershell completion script for dref.

To load completions in your current shell session:

  dref completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output of the above
command to your powershell profile.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	}
}
