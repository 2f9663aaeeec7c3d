// Package export provides the command that writes the catalog to a file.
package export

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/internal/appcontext"
	"github.com/agentstation/cinemania/internal/cmd/alerts"
	"github.com/agentstation/cinemania/internal/cmd/cmdutil"
	"github.com/agentstation/cinemania/pkg/csvio"
)

// NewCommand creates the export command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "export <dest>",
		GroupID: "management",
		Short:   "Export the catalog to a new file",
		Long: `Export writes every loaded movie to dest in the catalog file format.
An existing file is never overwritten.`,
		Example: `  cinemania export -f movies.csv backup.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cmdutil.LoadStore(cmd, app)
			if err != nil {
				return err
			}

			if err := csvio.Export(cmd.Context(), store, args[0]); err != nil {
				return err
			}

			writer := alerts.NewFormatWriter(cmd.ErrOrStderr(), cmdutil.Format(app))
			return writer.WriteAlert(alerts.NewSuccess("Exported %d movies to %s", store.Len(), args[0]))
		},
	}
}
