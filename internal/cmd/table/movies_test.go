package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemania/pkg/csvio"
	"github.com/agentstation/cinemania/pkg/errors"
	"github.com/agentstation/cinemania/pkg/movies"
)

func sampleMovie() movies.Movie {
	return movies.Movie{
		Code:     1,
		Title:    "Inception",
		Genres:   []movies.Genre{movies.GenreSciFi, movies.GenreThriller},
		Director: "Nolan",
		Actors:   []string{"Leonardo DiCaprio", "Elliot Page"},
		Year:     2010,
		Duration: 148,
		Rating:   8.8,
		Favorite: 1500,
		Revenue:  829.9,
	}
}

func TestMoviesToTableData(t *testing.T) {
	m := sampleMovie()
	data := MoviesToTableData([]movies.Movie{m}, false)

	require.Len(t, data.Headers, 9)
	require.Len(t, data.ColumnAlignment, 9)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, []string{"1", "Inception", "Sci-Fi, Thriller", "Nolan", "2010", "148", "8.8", "1,500", "829.90"}, data.Rows[0])

	wide := MoviesToTableData([]movies.Movie{m}, true)
	assert.Equal(t, "Actors", wide.Headers[10])
	assert.Equal(t, "-", wide.Rows[0][9])
	assert.Equal(t, "Leonardo DiCaprio, Elliot Page", wide.Rows[0][10])
}

func TestListTruncation(t *testing.T) {
	m := sampleMovie()
	m.Title = strings.Repeat("t", 45)
	m.Genres = []movies.Genre{movies.GenreAction, movies.GenreCrime, movies.GenreDrama, movies.GenreWar}

	row := MoviesToTableData([]movies.Movie{m}, false).Rows[0]
	assert.Equal(t, strings.Repeat("t", 37)+"...", row[1])
	assert.Equal(t, "Action, Crime, Drama, ...", row[2])
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "999,999,999", FormatNumber(999999999))
	assert.Equal(t, "-12,345", FormatNumber(-12345))
}

func TestWriteMovieDetail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMovieDetail(&buf, sampleMovie()))

	out := buf.String()
	assert.Contains(t, out, "Title:       Inception\n")
	assert.Contains(t, out, "Duration:    148 minutes\n")
	assert.Contains(t, out, "Rating:      8.8/10\n")
	assert.Contains(t, out, "Revenue:     829.90 million\n")
	assert.Contains(t, out, "Favorites:   1500\n")
}

func TestGenresToTableData(t *testing.T) {
	data := GenresToTableData()
	require.Len(t, data.Rows, movies.NumGenres)
	assert.Equal(t, []string{"16", "Sci-Fi"}, data.Rows[15])
}

func TestImportResultToTableData(t *testing.T) {
	r := &csvio.ImportResult{
		Skipped: []csvio.SkippedLine{
			{Line: 3, Code: 2, Reason: csvio.SkipInvalid, Err: errors.NewValidationError("year", 1700, "Invalid year")},
			{Line: 5, Reason: csvio.SkipInvalid},
		},
	}
	data := ImportResultToTableData(r)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "3", data.Rows[0][0])
	assert.Contains(t, data.Rows[0][3], "Invalid year")
	assert.Equal(t, "-", data.Rows[1][1])
	assert.Equal(t, "invalid", data.Rows[1][3])
}
