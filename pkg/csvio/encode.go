package csvio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/agentstation/cinemania/pkg/movies"
)

// Encoder writes movies in the file format.
//
// Title and director are written verbatim. A title or director containing
// the separator produces a line that will not read back correctly; the
// format has no quoting for those columns.
type Encoder struct {
	w             *bufio.Writer
	headerWritten bool
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode writes one movie line, preceded by the header on first use.
func (e *Encoder) Encode(m movies.Movie) error {
	if !e.headerWritten {
		if _, err := e.w.WriteString(Header + "\n"); err != nil {
			return err
		}
		e.headerWritten = true
	}
	_, err := e.w.WriteString(FormatMovie(m) + "\n")
	return err
}

// Flush writes any buffered data, including the header if nothing was
// encoded yet.
func (e *Encoder) Flush() error {
	if !e.headerWritten {
		if _, err := e.w.WriteString(Header + "\n"); err != nil {
			return err
		}
		e.headerWritten = true
	}
	return e.w.Flush()
}

// FormatMovie renders a movie as a single line without the trailing newline.
func FormatMovie(m movies.Movie) string {
	cols := []string{
		strconv.Itoa(m.Code),
		m.Title,
		movies.JoinGenres(m.Genres),
		quoteIfNeeded(m.Description),
		m.Director,
		strings.Join(m.Actors, ", "),
		strconv.Itoa(m.Year),
		strconv.Itoa(m.Duration),
		FormatDecimal(m.Rating, 1),
		strconv.Itoa(m.Favorite),
		FormatDecimal(m.Revenue, 2),
	}
	return strings.Join(cols, string(Separator))
}

// FormatDecimal formats f with prec fractional digits and a comma as the
// decimal separator.
func FormatDecimal(f float64, prec int) string {
	return strings.Replace(strconv.FormatFloat(f, 'f', prec, 64), ".", ",", 1)
}

func quoteIfNeeded(s string) string {
	if !strings.ContainsAny(s, `;"`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
