// Package list provides the command that lists the movie catalog.
package list

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/internal/appcontext"
	"github.com/agentstation/cinemania/internal/cmd/cmdutil"
	"github.com/agentstation/cinemania/internal/cmd/output"
	"github.com/agentstation/cinemania/pkg/errors"
	"github.com/agentstation/cinemania/pkg/movies"
)

// Flags holds the list command flags.
type Flags struct {
	Sort  string
	Desc  bool
	Limit int
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Short:   "List movies in the catalog",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  cinemania list -f movies.csv                 # List all movies by code
  cinemania list -f movies.csv --sort title    # List movies by title
  cinemania list -f movies.csv --desc -l 10    # Ten highest codes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Sort, "sort", "code", "Sort by: code, title")
	cmd.Flags().BoolVar(&flags.Desc, "desc", false, "Sort in descending order")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "Limit number of results")

	return cmd
}

func run(cmd *cobra.Command, app appcontext.Interface, flags *Flags) error {
	store, err := cmdutil.LoadStore(cmd, app)
	if err != nil {
		return err
	}

	var indices []int
	switch flags.Sort {
	case "code", "":
		order := movies.Ascending
		if flags.Desc {
			order = movies.Descending
		}
		store.SortByCode(order)
		indices = cmdutil.AllIndices(store)
	case "title":
		indices = cmdutil.AllIndices(store)
		if err := store.SortByTitle(indices); err != nil {
			return err
		}
		if flags.Desc {
			slices.Reverse(indices)
		}
	default:
		return errors.NewValidationError("sort", flags.Sort, "must be one of: code, title")
	}

	if flags.Limit > 0 && len(indices) > flags.Limit {
		indices = indices[:flags.Limit]
	}

	app.Logger().Debug().Int("movies", len(indices)).Str("sort", flags.Sort).Msg("listing movies")

	format := cmdutil.Format(app)
	if format.IsTable() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Found %d movies\n", len(indices))
	}
	return output.WriteMovies(cmd.OutOrStdout(), format, cmdutil.MoviesAt(store, indices))
}
