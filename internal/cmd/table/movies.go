package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agentstation/cinemania/pkg/csvio"
	"github.com/agentstation/cinemania/pkg/movies"
)

// Column widths used by the list view.
const (
	maxTitleWidth       = 40
	maxListedGenres     = 3
	maxDescriptionWidth = 60
)

// MoviesToTableData converts movies to table format. Wide output adds the
// description and the cast.
func MoviesToTableData(ms []movies.Movie, wide bool) Data {
	headers := []string{"Code", "Title", "Genres", "Director", "Year", "Dur", "Rating", "Favorite", "Revenue"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Description", "Actors")
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(ms))
	for _, m := range ms {
		row := []string{
			strconv.Itoa(m.Code),
			Truncate(m.Title, maxTitleWidth),
			FormatGenres(m.Genres),
			m.Director,
			strconv.Itoa(m.Year),
			strconv.Itoa(m.Duration),
			fmt.Sprintf("%.1f", m.Rating),
			FormatNumber(int64(m.Favorite)),
			fmt.Sprintf("%.2f", m.Revenue),
		}
		if wide {
			row = append(row,
				OrDash(Truncate(m.Description, maxDescriptionWidth)),
				OrDash(strings.Join(m.Actors, ", ")),
			)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// FormatGenres lists the first few genre names, marking any remainder.
func FormatGenres(genres []movies.Genre) string {
	if len(genres) <= maxListedGenres {
		return movies.JoinGenres(genres)
	}
	return movies.JoinGenres(genres[:maxListedGenres]) + ", ..."
}

// GenresToTableData lists the genre catalog with its selection numbers.
func GenresToTableData() Data {
	rows := make([][]string, 0, movies.NumGenres)
	for i, g := range movies.Genres() {
		rows = append(rows, []string{strconv.Itoa(i + 1), g.String()})
	}
	return Data{
		Headers:         []string{"#", "Genre"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft},
	}
}

// ImportResultToTableData summarizes an import, one row per skipped line.
func ImportResultToTableData(r *csvio.ImportResult) Data {
	rows := make([][]string, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		code := "-"
		if s.Code != 0 {
			code = strconv.Itoa(s.Code)
		}
		rows = append(rows, []string{strconv.Itoa(s.Line), code, string(s.Reason), s.Message()})
	}
	return Data{
		Headers:         []string{"Line", "Code", "Reason", "Detail"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignRight, AlignLeft, AlignLeft},
	}
}

// WriteMovieDetail prints the labelled detail block for one movie.
func WriteMovieDetail(w io.Writer, m movies.Movie) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Code:        %d\n", m.Code)
	fmt.Fprintf(&b, "Title:       %s\n", m.Title)
	fmt.Fprintf(&b, "Genres:      %s\n", movies.JoinGenres(m.Genres))
	fmt.Fprintf(&b, "Description: %s\n", m.Description)
	fmt.Fprintf(&b, "Director:    %s\n", m.Director)
	fmt.Fprintf(&b, "Actors:      %s\n", strings.Join(m.Actors, ", "))
	fmt.Fprintf(&b, "Year:        %d\n", m.Year)
	fmt.Fprintf(&b, "Duration:    %d minutes\n", m.Duration)
	fmt.Fprintf(&b, "Rating:      %.1f/10\n", m.Rating)
	fmt.Fprintf(&b, "Favorites:   %d\n", m.Favorite)
	fmt.Fprintf(&b, "Revenue:     %.2f million\n", m.Revenue)
	_, err := io.WriteString(w, b.String())
	return err
}
