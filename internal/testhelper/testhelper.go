// Package testhelper provides fixtures and helpers for command tests.
package testhelper

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/pkg/constants"
	"github.com/agentstation/cinemania/pkg/movies"
)

// SampleMovies returns a small catalog covering several genres, directors
// and actors.
func SampleMovies() []movies.Movie {
	return []movies.Movie{
		{
			Code:        3,
			Title:       "The Dark Knight",
			Genres:      []movies.Genre{movies.GenreAction, movies.GenreCrime, movies.GenreDrama},
			Description: "Batman faces the Joker.",
			Director:    "Christopher Nolan",
			Actors:      []string{"Christian Bale", "Heath Ledger"},
			Year:        2008,
			Duration:    152,
			Rating:      9.0,
			Favorite:    2500,
			Revenue:     1004.6,
		},
		{
			Code:        1,
			Title:       "Inception",
			Genres:      []movies.Genre{movies.GenreSciFi, movies.GenreThriller},
			Description: "A thief steals secrets through dreams.",
			Director:    "Christopher Nolan",
			Actors:      []string{"Leonardo DiCaprio", "Elliot Page"},
			Year:        2010,
			Duration:    148,
			Rating:      8.8,
			Favorite:    500,
			Revenue:     829.9,
		},
		{
			Code:     2,
			Title:    "Amelie",
			Genres:   []movies.Genre{movies.GenreComedy, movies.GenreRomance},
			Director: "Jean-Pierre Jeunet",
			Actors:   []string{"Audrey Tautou"},
			Year:     2001,
			Duration: 122,
			Rating:   8.3,
			Favorite: 120,
			Revenue:  174.2,
		},
	}
}

// NewStore returns a store holding the given movies, or the sample movies
// when none are given.
func NewStore(t testing.TB, ms ...movies.Movie) *movies.Store {
	t.Helper()

	if len(ms) == 0 {
		ms = SampleMovies()
	}
	store := movies.NewStore()
	for _, m := range ms {
		if err := store.Insert(m); err != nil {
			t.Fatalf("Failed to insert movie %d: %v", m.Code, err)
		}
	}
	return store
}

// WriteFile writes content to name inside a temporary directory and
// returns its path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// Result holds the output of an executed command.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// Execute runs cmd with args, feeding stdin, and captures its output.
func Execute(t testing.TB, cmd *cobra.Command, stdin string, args ...string) Result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}
