// Package search provides the command that searches the movie catalog.
package search

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/internal/appcontext"
	"github.com/agentstation/cinemania/internal/cmd/cmdutil"
	"github.com/agentstation/cinemania/internal/cmd/output"
	"github.com/agentstation/cinemania/pkg/movies"
)

// NewCommand creates the search command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *cmdutil.ListFlags

	cmd := &cobra.Command{
		Use:     "search <title|genre|director|actor> <term>",
		GroupID: "core",
		Short:   "Search movies by title, genre, director or actor",
		Long: `Search finds movies matching a term.

Title and actor searches match any part of the name, ignoring case.
Director searches require the exact name. Genre searches accept a genre
name or its number from the genres command.`,
		Example: `  cinemania search -f movies.csv title knight
  cinemania search -f movies.csv genre Sci-Fi
  cinemania search -f movies.csv genre 16 --sort-title
  cinemania search -f movies.csv director "Christopher Nolan"`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: completeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := movies.ParseSearchKind(args[0])
			if err != nil {
				return err
			}
			return run(cmd, app, flags, kind, strings.Join(args[1:], " "))
		},
	}

	flags = cmdutil.AddListFlags(cmd)
	return cmd
}

// completeArgs completes the search kind, and genre names after "genre".
func completeArgs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	switch {
	case len(args) == 0:
		kinds := movies.SearchKinds()
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = string(k)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	case len(args) == 1 && args[0] == string(movies.ByGenre):
		genres := movies.Genres()
		names := make([]string, len(genres))
		for i, g := range genres {
			names[i] = g.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func run(cmd *cobra.Command, app appcontext.Interface, flags *cmdutil.ListFlags, kind movies.SearchKind, term string) error {
	store, err := cmdutil.LoadStore(cmd, app)
	if err != nil {
		return err
	}

	indices, err := store.Search(kind, term, flags.Limit)
	if err != nil {
		return err
	}
	if flags.SortTitle {
		if err := store.SortByTitle(indices); err != nil {
			return err
		}
	}

	app.Logger().Debug().
		Str("kind", string(kind)).
		Str("term", term).
		Int("matches", len(indices)).
		Msg("search finished")

	format := cmdutil.Format(app)
	if format.IsTable() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Found %d movies\n", len(indices))
	}
	return output.WriteMovies(cmd.OutOrStdout(), format, cmdutil.MoviesAt(store, indices))
}
