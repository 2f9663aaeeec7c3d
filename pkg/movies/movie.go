// Package movies holds the in-memory movie catalog: the record type, the
// genre catalog, field validation, the bounded record store and the queries
// that run over it.
package movies

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agentstation/cinemania/pkg/constants"
)

// Movie is a single catalog record. Field order matches the CSV column order.
type Movie struct {
	Code        int      `json:"code" yaml:"code"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Genres      []Genre  `json:"genres" yaml:"genres" validate:"min=1,max=20,dive,movie_genre"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Director    string   `json:"director" yaml:"director" validate:"required"`
	Actors      []string `json:"actors,omitempty" yaml:"actors,omitempty" validate:"max=50"`
	Year        int      `json:"year" yaml:"year" validate:"movie_year"`
	Duration    int      `json:"duration" yaml:"duration" validate:"movie_duration"`
	Rating      float64  `json:"rating" yaml:"rating" validate:"movie_rating"`
	Favorite    int      `json:"favorite" yaml:"favorite" validate:"gte=0"`
	Revenue     float64  `json:"revenue" yaml:"revenue" validate:"movie_revenue"`
}

// Clone returns a deep copy of the movie.
func (m Movie) Clone() Movie {
	c := m
	if m.Genres != nil {
		c.Genres = append([]Genre(nil), m.Genres...)
	}
	if m.Actors != nil {
		c.Actors = append([]string(nil), m.Actors...)
	}
	return c
}

// HasGenre reports whether g is one of the movie's genres.
func (m Movie) HasGenre(g Genre) bool {
	for _, mg := range m.Genres {
		if mg == g {
			return true
		}
	}
	return false
}

// normalized returns a deep copy with every text field cut to its storage
// bound.
func (m Movie) normalized() Movie {
	c := m.Clone()
	c.Title = truncate(c.Title, constants.MaxStringLength)
	c.Description = truncate(c.Description, constants.MaxDescriptionLength)
	c.Director = truncate(c.Director, constants.MaxStringLength)
	for i, a := range c.Actors {
		c.Actors[i] = truncate(a, constants.MaxActorNameLength)
	}
	return c
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// ParseDecimal parses a decimal number that may use a comma as the decimal
// separator.
func ParseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

// lowerASCII lowers only A-Z, leaving every other byte untouched.
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// ParseActorList splits a comma separated cast list. Blank names are
// dropped and the list is capped at the per-movie limit.
func ParseActorList(s string) []string {
	var actors []string
	for _, name := range strings.Split(s, ",") {
		if len(actors) >= constants.MaxActorsPerMovie {
			break
		}
		if name = strings.TrimSpace(name); name != "" {
			actors = append(actors, name)
		}
	}
	return actors
}
