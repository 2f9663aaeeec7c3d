package movies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemania/pkg/errors"
)

func queryStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore()
	fixtures := []Movie{
		{Code: 3, Title: "The Dark Knight", Genres: []Genre{GenreAction, GenreCrime}, Director: "Christopher Nolan",
			Actors: []string{"Christian Bale", "Heath Ledger"}, Year: 2008, Duration: 152, Rating: 9.0, Revenue: 1004.6},
		{Code: 1, Title: "inception", Genres: []Genre{GenreSciFi, GenreThriller}, Director: "christopher nolan",
			Actors: []string{"Leonardo DiCaprio"}, Year: 2010, Duration: 148, Rating: 8.8, Revenue: 829.9},
		{Code: 2, Title: "Amelie", Genres: []Genre{GenreComedy, GenreRomance}, Director: "Jean-Pierre Jeunet",
			Actors: []string{"Audrey Tautou"}, Year: 2001, Duration: 122, Rating: 8.3, Revenue: 174.2},
		{Code: 4, Title: "Batman Begins", Genres: []Genre{GenreAction}, Director: "Christopher Nolan II",
			Actors: []string{"Christian Bale", "Michael Caine"}, Year: 2005, Duration: 140, Rating: 8.2, Revenue: 373.7},
	}
	for _, m := range fixtures {
		require.NoError(t, s.Insert(m))
	}
	return s
}

func TestSearchByTitle(t *testing.T) {
	s := queryStore(t)
	assert.Equal(t, []int{0, 2, 3}, s.SearchByTitle("A", 0))
	assert.Equal(t, []int{3}, s.SearchByTitle("MAN", 0))
	assert.Equal(t, []int{1}, s.SearchByTitle("INCEP", 0))
	assert.Equal(t, []int{0}, s.SearchByTitle("a", 1))

	got := s.SearchByTitle("Casablanca", 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchByDirectorIsExact(t *testing.T) {
	s := queryStore(t)
	assert.Equal(t, []int{0, 1}, s.SearchByDirector("CHRISTOPHER NOLAN", 0))
	assert.Empty(t, s.SearchByDirector("Nolan", 0))
}

func TestSearchByActor(t *testing.T) {
	s := queryStore(t)
	assert.Equal(t, []int{0, 3}, s.SearchByActor("bale", 0))
	assert.Equal(t, []int{3}, s.SearchByActor("caine", 10))
	assert.Empty(t, s.SearchByActor("Pacino", 0))
}

func TestSearchByGenre(t *testing.T) {
	s := queryStore(t)
	got, err := s.SearchByGenre(GenreAction, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, got)

	got, err = s.SearchByGenre(GenreWestern, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = s.SearchByGenre(Genre(-1), 0)
	assert.True(t, errors.IsValidationError(err))
}

func TestSearchDispatch(t *testing.T) {
	s := queryStore(t)

	got, err := s.Search(ByGenre, "16", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	got, err = s.Search(ByGenre, "romance", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got)

	_, err = s.Search(ByGenre, "Noir", 0)
	assert.True(t, errors.IsValidationError(err))

	_, err = s.Search(ByTitle, "  ", 0)
	assert.True(t, errors.IsValidationError(err))

	kind, err := ParseSearchKind("Actor")
	require.NoError(t, err)
	assert.Equal(t, ByActor, kind)
	_, err = ParseSearchKind("budget")
	assert.Error(t, err)
}

func TestSortByCode(t *testing.T) {
	s := queryStore(t)

	s.SortByCode(Ascending)
	var asc []int
	for _, m := range s.Movies() {
		asc = append(asc, m.Code)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, asc)

	s.SortByCode(Descending)
	var desc []int
	for _, m := range s.Movies() {
		desc = append(desc, m.Code)
	}
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSortByTitle(t *testing.T) {
	s := queryStore(t)
	indices := []int{0, 1, 2, 3}
	require.NoError(t, s.SortByTitle(indices))

	var titles []string
	for _, i := range indices {
		titles = append(titles, s.At(i).Title)
	}
	assert.Equal(t, []string{"Amelie", "Batman Begins", "inception", "The Dark Knight"}, titles)
	assert.Equal(t, "The Dark Knight", s.At(0).Title, "store order is untouched")

	bad := []int{0, 9}
	err := s.SortByTitle(bad)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, []int{0, 9}, bad)
}
