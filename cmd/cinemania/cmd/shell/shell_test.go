package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemania/internal/appcontext"
	"github.com/agentstation/cinemania/internal/testhelper"
	"github.com/agentstation/cinemania/pkg/csvio"
	"github.com/agentstation/cinemania/pkg/movies"
)

const quit = "0\ny\n"

// runShell feeds input to the shell over store and returns its output.
func runShell(t *testing.T, store *movies.Store, input string) string {
	t.Helper()
	app := appcontext.NewMock(store)
	res := testhelper.Execute(t, NewCommand(app), input)
	require.NoError(t, res.Err)
	return res.Stdout
}

func TestExit(t *testing.T) {
	out := runShell(t, testhelper.NewStore(t), quit)
	assert.Contains(t, out, "Welcome to CineMania!")
	assert.Contains(t, out, "8. Import movies from CSV file")
	assert.Contains(t, out, "Thank you for using CineMania!")
}

func TestEndOfInputExits(t *testing.T) {
	out := runShell(t, testhelper.NewStore(t), "")
	assert.Contains(t, out, "Enter your choice: ")

	out = runShell(t, testhelper.NewStore(t), "0\nn\n")
	assert.NotContains(t, out, "Thank you")
}

func TestMenuRejectsBadChoices(t *testing.T) {
	out := runShell(t, testhelper.NewStore(t), "12\nabc\n"+quit)
	assert.Contains(t, out, "Error: Value must be between 0 and 9.")
	assert.Contains(t, out, "Error: Invalid input. Please enter a number.")
}

func TestEmptyStoreMessages(t *testing.T) {
	store := movies.NewStore()
	out := runShell(t, store, "1\n2\n3\n5\n6\n7\n9\n"+quit)

	assert.Equal(t, 5, strings.Count(out, "No movies in database."))
	assert.Contains(t, out, "Database is already empty.")
	assert.Contains(t, out, "No movies to export.")
}

func TestAddMovie(t *testing.T) {
	store := movies.NewStore()
	input := "4\n" +
		"Heat\n" +
		"Opera\n" +
		"Crime, Drama, Opera\n" +
		"LA heist\n" +
		"Michael Mann\n" +
		"Al Pacino, Robert De Niro\n" +
		"1700\n1995\n" +
		"170\n" +
		"8,3\n" +
		"10\n" +
		"187.4\n" +
		quit

	out := runShell(t, store, input)

	assert.Contains(t, out, "Auto-generated code: 1")
	assert.Contains(t, out, "Unknown genre 'Opera' ignored.")
	assert.Contains(t, out, "At least one valid genre is required. Please try again.")
	assert.Contains(t, out, "Error: Value must be between 1888 and 2100.")
	assert.Contains(t, out, "Movie added successfully with code 1!")

	m, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Heat", m.Title)
	assert.Equal(t, []movies.Genre{movies.GenreCrime, movies.GenreDrama}, m.Genres)
	assert.Equal(t, "LA heist", m.Description)
	assert.Equal(t, []string{"Al Pacino", "Robert De Niro"}, m.Actors)
	assert.Equal(t, 1995, m.Year)
	assert.Equal(t, 170, m.Duration)
	assert.InDelta(t, 8.3, m.Rating, 1e-9)
	assert.Equal(t, 10, m.Favorite)
	assert.InDelta(t, 187.4, m.Revenue, 1e-9)
}

func TestAddMovieUsesNextFreeCode(t *testing.T) {
	store := testhelper.NewStore(t)
	input := "4\nHeat\nCrime\n\nMichael Mann\n\n1995\n170\n8.3\n10\n187.4\n" + quit

	out := runShell(t, store, input)
	assert.Contains(t, out, "Auto-generated code: 4")
	assert.True(t, store.Exists(4))
}

func TestAddMovieAbandoned(t *testing.T) {
	store := movies.NewStore()

	out := runShell(t, store, "4\n\n"+quit)
	assert.Contains(t, out, "Title cannot be empty.")

	out = runShell(t, store, "4\nHeat\nCrime\n\n\n"+quit)
	assert.Contains(t, out, "Director cannot be empty.")
	assert.Equal(t, 0, store.Len())
}

func TestAddMovieFullStore(t *testing.T) {
	store := movies.NewStore(movies.WithCapacity(1))
	require.NoError(t, store.Insert(testhelper.SampleMovies()[0]))

	out := runShell(t, store, "4\n"+quit)
	assert.Contains(t, out, "Database is full (maximum 1 movies).")
}

func TestEditMovie(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		check func(t *testing.T, m movies.Movie)
	}{
		{
			name:  "year",
			input: "5\n1\n3\n1999\n",
			want:  "Year updated successfully.",
			check: func(t *testing.T, m movies.Movie) { assert.Equal(t, 1999, m.Year) },
		},
		{
			name:  "rating with comma",
			input: "5\n1\n5\n9,1\n",
			want:  "Rating updated successfully.",
			check: func(t *testing.T, m movies.Movie) { assert.InDelta(t, 9.1, m.Rating, 1e-9) },
		},
		{
			name:  "genres",
			input: "5\n1\n2\nWar, Opera\n",
			want:  "Genres updated successfully.",
			check: func(t *testing.T, m movies.Movie) { assert.Equal(t, []movies.Genre{movies.GenreWar}, m.Genres) },
		},
		{
			name:  "no valid genre",
			input: "5\n1\n2\nOpera\n",
			want:  "Changes not saved.",
			check: func(t *testing.T, m movies.Movie) {
				assert.Equal(t, []movies.Genre{movies.GenreSciFi, movies.GenreThriller}, m.Genres)
			},
		},
		{
			name:  "empty title keeps old one",
			input: "5\n1\n1\n\n",
			want:  "New title: ",
			check: func(t *testing.T, m movies.Movie) { assert.Equal(t, "Inception", m.Title) },
		},
		{
			name:  "cancel",
			input: "5\n1\n0\n",
			want:  "Edit cancelled.",
			check: func(t *testing.T, m movies.Movie) { assert.Equal(t, 2010, m.Year) },
		},
		{
			name:  "unknown code",
			input: "5\n99\n",
			want:  "Movie with code 99 not found.",
			check: func(t *testing.T, m movies.Movie) { assert.Equal(t, "Inception", m.Title) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testhelper.NewStore(t)
			out := runShell(t, store, tt.input+quit)
			assert.Contains(t, out, tt.want)

			m, err := store.Get(1)
			require.NoError(t, err)
			tt.check(t, m)
		})
	}
}

func TestDeleteMovie(t *testing.T) {
	store := testhelper.NewStore(t)
	out := runShell(t, store, "6\n2\nn\n"+quit)
	assert.Contains(t, out, "Movie: Amelie")
	assert.Contains(t, out, "Deletion cancelled.")
	assert.True(t, store.Exists(2))

	out = runShell(t, store, "6\n2\ny\n"+quit)
	assert.Contains(t, out, "Movie with code 2 deleted successfully.")
	assert.False(t, store.Exists(2))

	out = runShell(t, store, "6\n2\n"+quit)
	assert.Contains(t, out, "Movie with code 2 not found.")
}

func TestClearMovies(t *testing.T) {
	store := testhelper.NewStore(t)
	out := runShell(t, store, "7\nno\n"+quit)
	assert.Contains(t, out, "Current number of movies: 3")
	assert.Contains(t, out, "Operation cancelled.")
	assert.Equal(t, 3, store.Len())

	out = runShell(t, store, "7\nYES\n"+quit)
	assert.Contains(t, out, "All movies cleared successfully.")
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 1, store.NextAvailableCode())
}

func TestViewMovie(t *testing.T) {
	out := runShell(t, testhelper.NewStore(t), "3\n1\n3\n42\n"+quit)
	assert.Contains(t, out, "Movie Details")
	assert.Contains(t, out, "Title:       Inception")
	assert.Contains(t, out, "Rating:      8.8/10")
	assert.Contains(t, out, "Movie with code 42 not found.")
}

func TestSearchMovies(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"title", "2\n1\nKNIGHT\n", []string{"Found 1 movie(s)", "The Dark Knight"}},
		{"genre number", "2\n2\n5\n", []string{"Available Genres:", "Found 1 movie(s)", "Amelie"}},
		{"director", "2\n3\nChristopher Nolan\n", []string{"Found 2 movie(s)"}},
		{"actor", "2\n4\naudrey\n", []string{"Found 1 movie(s)", "Amelie"}},
		{"no match", "2\n4\nnobody\n", []string{"No movies found."}},
		{"empty title", "2\n1\n\n", []string{"Search term cannot be empty."}},
		{"empty director", "2\n3\n\n", []string{"Director name cannot be empty."}},
		{"cancel", "2\n0\n", []string{"Search by:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runShell(t, testhelper.NewStore(t), tt.input+quit)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestSearchResultsSortedByTitle(t *testing.T) {
	out := runShell(t, testhelper.NewStore(t), "2\n3\nChristopher Nolan\n"+quit)
	results := out[strings.Index(out, "Search Results"):]
	assert.Less(t, strings.Index(results, "Inception"), strings.Index(results, "The Dark Knight"))
}

func TestListMovies(t *testing.T) {
	store := testhelper.NewStore(t)
	out := runShell(t, store, "1\n2\n2\n"+quit)

	assert.Contains(t, out, "Total movies: 3")
	assert.Contains(t, out, "Use pagination (25 lines per page)?")
	list := out[strings.Index(out, "Use pagination"):]
	assert.Less(t, strings.Index(list, "The Dark Knight"), strings.Index(list, "Amelie"))
	assert.Less(t, strings.Index(list, "Amelie"), strings.Index(list, "Inception"))
	assert.Equal(t, 3, store.At(0).Code)
}

func TestListMoviesPaged(t *testing.T) {
	app := appcontext.NewMock(testhelper.NewStore(t))
	app.PageSizeFunc = func() int { return 2 }

	res := testhelper.Execute(t, NewCommand(app), "1\n3\n1\nx\nn\np\nq\n"+quit)
	require.NoError(t, res.Err)

	assert.Equal(t, 3, strings.Count(res.Stdout, "Page 1 of 2 (Total movies: 3)"))
	assert.Equal(t, 1, strings.Count(res.Stdout, "Page 2 of 2 (Total movies: 3)"))
	assert.Contains(t, res.Stdout, "[P]revious page | [Q]uit: ")
	assert.Contains(t, res.Stdout, "Thank you for using CineMania!")
}

func TestListMoviesSinglePage(t *testing.T) {
	out := runShell(t, testhelper.NewStore(t), "1\n1\n1\n"+quit)
	assert.Contains(t, out, "Page 1 of 1 (Total movies: 3)")
	assert.NotContains(t, out, "[N]ext page")
}

const importCSV = csvio.Header + "\n" +
	"7;Heat;Crime, Drama;;Michael Mann;Al Pacino;1995;170;8,3;10;187,40\n" +
	"8;Old;Drama;;Someone;;1700;100;5,0;1;0,00\n"

func TestImportMovies(t *testing.T) {
	store := movies.NewStore()
	path := testhelper.WriteFile(t, "movies.csv", importCSV)

	out := runShell(t, store, "8\n"+path+"\n"+quit)
	assert.Contains(t, out, "Available space: 2000")
	assert.Contains(t, out, "Importing movies from '"+path+"'...")
	assert.Contains(t, out, "- 1 movies imported successfully")
	assert.Contains(t, out, "- 1 invalid lines skipped")
	assert.Contains(t, out, "Line 3 skipped")
	assert.True(t, store.Exists(7))

	out = runShell(t, store, "8\n"+path+"\n"+quit)
	assert.Contains(t, out, "Available space: 1999")
	assert.Contains(t, out, "- 0 movies imported successfully")
	assert.Contains(t, out, "- 1 duplicate movies skipped")
}

func TestImportMoviesErrors(t *testing.T) {
	out := runShell(t, movies.NewStore(), "8\n\n"+quit)
	assert.Contains(t, out, "Filename cannot be empty.")

	out = runShell(t, movies.NewStore(), "8\n"+filepath.Join(t.TempDir(), "missing.csv")+"\n"+quit)
	assert.Contains(t, out, "Could not import")
}

func TestExportMovies(t *testing.T) {
	store := testhelper.NewStore(t)
	dest := filepath.Join(t.TempDir(), "out.csv")

	out := runShell(t, store, "9\n"+dest+"\n"+quit)
	assert.Contains(t, out, "Number of movies to export: 3")
	assert.Contains(t, out, "Export complete: 3 movies exported to '"+dest+"'.")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), csvio.Header+"\n"))

	out = runShell(t, store, "9\n"+dest+"\n"+quit)
	assert.Contains(t, out, "File '"+dest+"' already exists. Export cancelled.")
}
