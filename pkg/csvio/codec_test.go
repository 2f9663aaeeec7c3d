package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemania/pkg/errors"
	"github.com/agentstation/cinemania/pkg/movies"
)

func inception() movies.Movie {
	return movies.Movie{
		Code:     1,
		Title:    "Inception",
		Genres:   []movies.Genre{movies.GenreSciFi, movies.GenreThriller},
		Director: "Nolan",
		Year:     2010,
		Duration: 148,
		Rating:   8.8,
		Favorite: 500,
		Revenue:  829.9,
	}
}

func TestDecodeMovie(t *testing.T) {
	fields := SplitFields(`7;Amelie;Comedy, Romance, Noir;"Paris; 2001";Jean-Pierre Jeunet;Audrey Tautou, , Mathieu Kassovitz;2001;122;8,3;12;174,20`)

	m, err := DecodeMovie(fields)
	require.NoError(t, err)
	assert.Equal(t, movies.Movie{
		Code:        7,
		Title:       "Amelie",
		Genres:      []movies.Genre{movies.GenreComedy, movies.GenreRomance},
		Description: "Paris; 2001",
		Director:    "Jean-Pierre Jeunet",
		Actors:      []string{"Audrey Tautou", "Mathieu Kassovitz"},
		Year:        2001,
		Duration:    122,
		Rating:      8.3,
		Favorite:    12,
		Revenue:     174.2,
	}, m)
}

func TestDecodeMovieAcceptsDotDecimals(t *testing.T) {
	m, err := DecodeMovie(SplitFields("1;T;Drama;;D;;2000;90;7.5;0;1.25"))
	require.NoError(t, err)
	assert.InDelta(t, 7.5, m.Rating, 1e-9)
	assert.InDelta(t, 1.25, m.Revenue, 1e-9)
	assert.Nil(t, m.Actors)
}

func TestDecodeMovieRejectsMalformedNumbers(t *testing.T) {
	_, err := DecodeMovie(SplitFields("1;T;Drama;;D;;year;90;7,5;0;1"))
	require.Error(t, err)

	var perr *errors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 7, perr.Column)
	assert.Contains(t, perr.Message, "year")

	_, err = DecodeMovie(SplitFields("1;T;Drama;;D"))
	assert.Error(t, err, "missing numeric columns are malformed")

	_, err = DecodeCode(SplitFields("abc;T"))
	assert.Error(t, err)
}

func TestFormatMovie(t *testing.T) {
	m := inception()
	m.Actors = []string{"Leonardo DiCaprio", "Elliot Page"}
	assert.Equal(t,
		"1;Inception;Sci-Fi, Thriller;;Nolan;Leonardo DiCaprio, Elliot Page;2010;148;8,8;500;829,90",
		FormatMovie(m))

	m.Description = `The "dream" heist; layered`
	assert.Contains(t, FormatMovie(m), `;"The ""dream"" heist; layered";`)

	m.Description = "plain text"
	assert.Contains(t, FormatMovie(m), ";plain text;")
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "8,8", FormatDecimal(8.8, 1))
	assert.Equal(t, "829,90", FormatDecimal(829.9, 2))
	assert.Equal(t, "0,00", FormatDecimal(0, 2))
	assert.Equal(t, "10,0", FormatDecimal(10, 1))
}

func TestEncoderWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.Encode(inception()))
	second := inception()
	second.Code = 2
	require.NoError(t, enc.Encode(second))
	require.NoError(t, enc.Flush())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "2;"))
}

func TestEncoderFlushWithoutMovies(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Flush())
	assert.Equal(t, Header+"\n", buf.String())
}
