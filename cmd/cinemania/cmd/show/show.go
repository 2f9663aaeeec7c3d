// Package show provides the command that prints one movie in detail.
package show

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/internal/appcontext"
	"github.com/agentstation/cinemania/internal/cmd/cmdutil"
	"github.com/agentstation/cinemania/internal/cmd/output"
	"github.com/agentstation/cinemania/pkg/errors"
)

// NewCommand creates the show command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "show <code>",
		GroupID: "core",
		Short:   "Show the details of a movie",
		Aliases: []string{"view"},
		Args:    cobra.ExactArgs(1),
		Example: `  cinemania show -f movies.csv 42
  cinemania show -f movies.csv 42 -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("code", args[0], "must be a whole number")
			}

			store, err := cmdutil.LoadStore(cmd, app)
			if err != nil {
				return err
			}

			m, err := store.Get(code)
			if err != nil {
				return err
			}
			return output.WriteMovie(cmd.OutOrStdout(), cmdutil.Format(app), m)
		},
	}
}
