package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/deck/pkg/arrange"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for deck.

To load completions:

Bash:
  $ source <(deck completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ deck completion bash > /etc/bash_completion.d/deck
  # macOS:
  $ deck completion bash > $(brew --prefix)/etc/bash_completion.d/deck

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ deck completion zsh > "${fpath[1]}/_deck"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ deck completion fish | source

  # To load completions for each session, execute once:
  $ deck completion fish > ~/.config/fish/completions/deck.fish

PowerShell:
  PS> deck completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> deck completion powershell > deck.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
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

	return cmd
}

// completeModes completes arrangement mode names for --mode flags.
func completeModes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	modes := []string{arrange.ModeFree.String()}
	for _, m := range arrange.Cycle {
		modes = append(modes, m.String())
	}
	return modes, cobra.ShellCompDirectiveNoFileComp
}

// completeWorkspaceFiles restricts positional completion to JSON files.
func completeWorkspaceFiles(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
}
