package movies

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/cinemania/pkg/constants"
	"github.com/agentstation/cinemania/pkg/errors"
)

// Genre is one of the fixed catalog categories. The zero value is Action;
// there is no "none" member, absent genres are reported by the boolean
// result of the lookup functions.
type Genre int

// Genre catalog, in display order.
const (
	GenreAction Genre = iota
	GenreAdventure
	GenreAnimation
	GenreBiography
	GenreComedy
	GenreCrime
	GenreDrama
	GenreFamily
	GenreFantasy
	GenreHistory
	GenreHorror
	GenreMusic
	GenreMusical
	GenreMystery
	GenreRomance
	GenreSciFi
	GenreSport
	GenreThriller
	GenreWar
	GenreWestern
)

// NumGenres is the size of the catalog.
const NumGenres = int(GenreWestern) + 1

var genreNames = [NumGenres]string{
	"Action", "Adventure", "Animation", "Biography", "Comedy",
	"Crime", "Drama", "Family", "Fantasy", "History",
	"Horror", "Music", "Musical", "Mystery", "Romance",
	"Sci-Fi", "Sport", "Thriller", "War", "Western",
}

// String returns the display name of the genre.
func (g Genre) String() string {
	if !g.Valid() {
		return "Unknown"
	}
	return genreNames[g]
}

// Valid reports whether g is a member of the catalog.
func (g Genre) Valid() bool {
	return g >= GenreAction && g <= GenreWestern
}

// MarshalText encodes the genre as its display name.
func (g Genre) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, errors.NewValidationError("genre", int(g), "not a catalog genre")
	}
	return []byte(genreNames[g]), nil
}

// UnmarshalText decodes a genre display name, case-insensitively.
func (g *Genre) UnmarshalText(text []byte) error {
	parsed, ok := ParseGenre(string(text))
	if !ok {
		return errors.NewValidationError("genre", string(text), "unknown genre")
	}
	*g = parsed
	return nil
}

// Genres returns the catalog in display order.
func Genres() []Genre {
	all := make([]Genre, NumGenres)
	for i := range all {
		all[i] = Genre(i)
	}
	return all
}

// ParseGenre resolves a genre name, ignoring surrounding whitespace and
// ASCII case.
func ParseGenre(name string) (Genre, bool) {
	key := lowerASCII(strings.TrimSpace(name))
	for i, n := range genreNames {
		if lowerASCII(n) == key {
			return Genre(i), true
		}
	}
	return 0, false
}

// GenreByNumber resolves the 1-indexed position shown by WriteGenreList.
func GenreByNumber(n int) (Genre, bool) {
	g := Genre(n - 1)
	if !g.Valid() {
		return 0, false
	}
	return g, true
}

// ParseGenreList splits a comma separated list of genre names. Unknown names
// are returned separately instead of failing the whole list; parsing stops
// once the per-movie limit is reached.
func ParseGenreList(s string) (genres []Genre, unknown []string) {
	for _, token := range strings.Split(s, ",") {
		if len(genres) >= constants.MaxGenresPerMovie {
			break
		}
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if g, ok := ParseGenre(token); ok {
			genres = append(genres, g)
		} else {
			unknown = append(unknown, token)
		}
	}
	return genres, unknown
}

// JoinGenres renders genres as a ", " separated list of names.
func JoinGenres(genres []Genre) string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.String()
	}
	return strings.Join(names, ", ")
}

// WriteGenreList prints the catalog, three numbered entries per line.
func WriteGenreList(w io.Writer) error {
	var b strings.Builder
	for i, name := range genreNames {
		fmt.Fprintf(&b, "%2d. %-15s", i+1, name)
		if (i+1)%3 == 0 {
			b.WriteByte('\n')
		}
	}
	if NumGenres%3 != 0 {
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
