package csvio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/cinemania/pkg/errors"
	"github.com/agentstation/cinemania/pkg/movies"
)

const formatName = "csv"

// Column positions.
const (
	colCode = iota
	colTitle
	colGenres
	colDescription
	colDirector
	colActors
	colYear
	colDuration
	colRating
	colFavorite
	colRevenue
)

var columnNames = strings.Split(Header, string(Separator))

// DecodeCode parses the code column of a split line.
func DecodeCode(fields []string) (int, error) {
	return parseInt(column(fields, colCode), colCode)
}

// DecodeMovie builds a movie from the columns of one line. Missing trailing
// columns are treated as empty. Unknown genre names are dropped, so the
// result may carry no genres and fail validation later. The movie is not
// validated here.
func DecodeMovie(fields []string) (movies.Movie, error) {
	var m movies.Movie
	var err error

	if m.Code, err = parseInt(column(fields, colCode), colCode); err != nil {
		return movies.Movie{}, err
	}
	m.Title = column(fields, colTitle)
	m.Genres, _ = movies.ParseGenreList(column(fields, colGenres))
	m.Description = column(fields, colDescription)
	m.Director = column(fields, colDirector)
	m.Actors = movies.ParseActorList(column(fields, colActors))

	if m.Year, err = parseInt(column(fields, colYear), colYear); err != nil {
		return movies.Movie{}, err
	}
	if m.Duration, err = parseInt(column(fields, colDuration), colDuration); err != nil {
		return movies.Movie{}, err
	}
	if m.Rating, err = parseDecimal(column(fields, colRating), colRating); err != nil {
		return movies.Movie{}, err
	}
	if m.Favorite, err = parseInt(column(fields, colFavorite), colFavorite); err != nil {
		return movies.Movie{}, err
	}
	if m.Revenue, err = parseDecimal(column(fields, colRevenue), colRevenue); err != nil {
		return movies.Movie{}, err
	}
	return m, nil
}

func column(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

func parseInt(s string, col int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, columnError(col, s, err)
	}
	return n, nil
}

func parseDecimal(s string, col int) (float64, error) {
	f, err := movies.ParseDecimal(s)
	if err != nil {
		return 0, columnError(col, s, err)
	}
	return f, nil
}

func columnError(col int, value string, err error) error {
	return &errors.ParseError{
		Format:  formatName,
		Column:  col + 1,
		Message: fmt.Sprintf("%s: %q is not a number", columnNames[col], value),
		Err:     err,
	}
}
