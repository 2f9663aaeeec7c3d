// Package completion provides the shell completion script generator.
package completion

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/internal/cmd/constants"
	"github.com/agentstation/cinemania/pkg/errors"
)

// NewCommand creates the completion command. It replaces cobra's default
// completion command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Generate shell completion scripts",
		Long: `Generate the autocompletion script for the given shell and write it to
standard output.

To load completions in your current bash session:

  source <(cinemania completion bash)

For zsh, write the script to a directory in your fpath:

  cinemania completion zsh > "${fpath[1]}/_cinemania"

For fish:

  cinemania completion fish > ~/.config/fish/completions/cinemania.fish`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(1),
		ValidArgs:             constants.Shells(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

func generate(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case constants.ShellBash:
		return root.GenBashCompletionV2(w, true)
	case constants.ShellZsh:
		return root.GenZshCompletion(w)
	case constants.ShellFish:
		return root.GenFishCompletion(w, true)
	case constants.ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return errors.NewValidationError("shell", shell, "must be one of: bash, zsh, fish, powershell")
}
