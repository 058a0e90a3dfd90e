package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for csvplot.

To load completions:

Bash (needs bash-completion v2):
  $ source <(csvplot completion bash)

Zsh:
  $ csvplot completion zsh > "${fpath[1]}/_csvplot"

Fish:
  $ csvplot completion fish > ~/.config/fish/completions/csvplot.fish

PowerShell:
  PS> csvplot completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completeFileExt completes positional arguments with files of the given
// extensions, one file per argument slot.
func completeFileExt(maxArgs int, exts ...string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if len(args) >= maxArgs {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return exts, cobra.ShellCompDirectiveFilterFileExt
	}
}

// registerFileFlagCompletion restricts a flag's file completion to exts.
func registerFileFlagCompletion(cmd *cobra.Command, flag string, exts ...string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, cobra.FixedCompletions(exts, cobra.ShellCompDirectiveFilterFileExt))
}
