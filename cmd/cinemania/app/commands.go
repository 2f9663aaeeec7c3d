package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/cmd/cinemania/cmd/completion"
	"github.com/agentstation/cinemania/cmd/cinemania/cmd/export"
	"github.com/agentstation/cinemania/cmd/cinemania/cmd/genres"
	"github.com/agentstation/cinemania/cmd/cinemania/cmd/list"
	"github.com/agentstation/cinemania/cmd/cinemania/cmd/search"
	"github.com/agentstation/cinemania/cmd/cinemania/cmd/shell"
	"github.com/agentstation/cinemania/cmd/cinemania/cmd/show"
	"github.com/agentstation/cinemania/cmd/cinemania/cmd/validate"
	"github.com/agentstation/cinemania/cmd/cinemania/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(genres.NewCommand(a))
	rootCmd.AddCommand(shell.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(validate.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand())
}
