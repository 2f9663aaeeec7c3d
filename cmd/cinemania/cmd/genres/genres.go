// Package genres provides the command that prints the genre catalog.
package genres

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/internal/appcontext"
	"github.com/agentstation/cinemania/internal/cmd/cmdutil"
	"github.com/agentstation/cinemania/internal/cmd/output"
	"github.com/agentstation/cinemania/internal/cmd/table"
	"github.com/agentstation/cinemania/pkg/movies"
)

// NewCommand creates the genres command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "genres",
		GroupID: "core",
		Short:   "List the available genres",
		Long: `Genres prints the fixed genre catalog with the numbers that can be
used in place of a genre name when searching.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := cmdutil.Format(app)
			switch format {
			case output.FormatTable:
				return movies.WriteGenreList(cmd.OutOrStdout())
			case output.FormatWide:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), table.GenresToTableData())
			default:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), movies.Genres())
			}
		},
	}
}
