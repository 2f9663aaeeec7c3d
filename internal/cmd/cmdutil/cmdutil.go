// Package cmdutil provides helpers shared by the cinemania commands.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/internal/appcontext"
	"github.com/agentstation/cinemania/internal/cmd/output"
	"github.com/agentstation/cinemania/pkg/movies"
)

// ListFlags holds flags for commands that print a list of movies.
type ListFlags struct {
	Limit     int
	SortTitle bool
}

// AddListFlags adds the result shaping flags to a command.
func AddListFlags(cmd *cobra.Command) *ListFlags {
	flags := &ListFlags{}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")
	cmd.Flags().BoolVar(&flags.SortTitle, "sort-title", false,
		"Order results by title")

	return flags
}

// Format returns the app's output format, defaulting to table.
func Format(app appcontext.Interface) output.Format {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil || format == "" {
		return output.FormatTable
	}
	return format
}

// LoadStore returns the app's store for the command's context.
func LoadStore(cmd *cobra.Command, app appcontext.Interface) (*movies.Store, error) {
	return app.Store(cmd.Context())
}

// MoviesAt returns copies of the movies at the given store positions.
func MoviesAt(store *movies.Store, indices []int) []movies.Movie {
	ms := make([]movies.Movie, 0, len(indices))
	for _, i := range indices {
		ms = append(ms, store.At(i))
	}
	return ms
}

// AllIndices returns the positions of every movie in the store.
func AllIndices(store *movies.Store) []int {
	indices := make([]int, store.Len())
	for i := range indices {
		indices[i] = i
	}
	return indices
}
