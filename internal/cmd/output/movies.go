package output

import (
	"io"

	"github.com/agentstation/cinemania/internal/cmd/table"
	"github.com/agentstation/cinemania/pkg/movies"
)

// WriteMovies renders movies in the given format. Table formats use the list
// columns; structured formats emit the full records.
func WriteMovies(w io.Writer, format Format, ms []movies.Movie) error {
	formatter := NewFormatter(format)
	if format.IsTable() {
		return formatter.Format(w, table.MoviesToTableData(ms, format == FormatWide))
	}
	if ms == nil {
		ms = []movies.Movie{}
	}
	return formatter.Format(w, ms)
}

// WriteMovie renders a single movie. Table formats use the labelled detail
// view.
func WriteMovie(w io.Writer, format Format, m movies.Movie) error {
	if format.IsTable() {
		return table.WriteMovieDetail(w, m)
	}
	return NewFormatter(format).Format(w, m)
}
