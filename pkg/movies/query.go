package movies

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/agentstation/cinemania/pkg/errors"
)

// SortOrder selects the direction of SortByCode.
type SortOrder int

// Sort orders.
const (
	Ascending SortOrder = iota
	Descending
)

// SearchKind selects the attribute Search matches against.
type SearchKind string

// Search kinds.
const (
	ByTitle    SearchKind = "title"
	ByGenre    SearchKind = "genre"
	ByDirector SearchKind = "director"
	ByActor    SearchKind = "actor"
)

// SearchKinds returns the supported search kinds.
func SearchKinds() []SearchKind {
	return []SearchKind{ByTitle, ByGenre, ByDirector, ByActor}
}

// ParseSearchKind resolves a search kind name.
func ParseSearchKind(name string) (SearchKind, error) {
	key := SearchKind(lowerASCII(strings.TrimSpace(name)))
	if slices.Contains(SearchKinds(), key) {
		return key, nil
	}
	return "", errors.NewValidationError("search", name, "unknown search kind")
}

// Search runs the search selected by kind. An empty term is rejected. For
// genre searches the term may be a genre name or its 1-indexed number.
func (s *Store) Search(kind SearchKind, term string, limit int) ([]int, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errors.NewValidationError(string(kind), term, "search term cannot be empty")
	}

	switch kind {
	case ByTitle:
		return s.SearchByTitle(term, limit), nil
	case ByDirector:
		return s.SearchByDirector(term, limit), nil
	case ByActor:
		return s.SearchByActor(term, limit), nil
	case ByGenre:
		g, ok := ParseGenre(term)
		if !ok {
			n, err := strconv.Atoi(term)
			if err == nil {
				g, ok = GenreByNumber(n)
			}
		}
		if !ok {
			return nil, errors.NewValidationError("genre", term, fmt.Sprintf("unknown genre %q", term))
		}
		return s.SearchByGenre(g, limit)
	}
	return nil, errors.NewValidationError("search", string(kind), "unknown search kind")
}

// SearchByTitle returns the positions of movies whose title contains term,
// ignoring ASCII case.
func (s *Store) SearchByTitle(term string, limit int) []int {
	needle := lowerASCII(term)
	return s.search(limit, func(m *Movie) bool {
		return strings.Contains(lowerASCII(m.Title), needle)
	})
}

// SearchByGenre returns the positions of movies tagged with g.
func (s *Store) SearchByGenre(g Genre, limit int) ([]int, error) {
	if !g.Valid() {
		return nil, errors.NewValidationError("genre", int(g), "not a catalog genre")
	}
	return s.search(limit, func(m *Movie) bool {
		return m.HasGenre(g)
	}), nil
}

// SearchByDirector returns the positions of movies whose director equals
// name, ignoring ASCII case.
func (s *Store) SearchByDirector(name string, limit int) []int {
	needle := lowerASCII(name)
	return s.search(limit, func(m *Movie) bool {
		return lowerASCII(m.Director) == needle
	})
}

// SearchByActor returns the positions of movies with an actor whose name
// contains term, ignoring ASCII case.
func (s *Store) SearchByActor(term string, limit int) []int {
	needle := lowerASCII(term)
	return s.search(limit, func(m *Movie) bool {
		for _, a := range m.Actors {
			if strings.Contains(lowerASCII(a), needle) {
				return true
			}
		}
		return false
	})
}

// search scans in store order and stops after limit matches. A non-positive
// limit means the store capacity.
func (s *Store) search(limit int, match func(*Movie) bool) []int {
	if limit <= 0 {
		limit = s.capacity
	}
	results := make([]int, 0)
	for i := range s.movies {
		if len(results) >= limit {
			break
		}
		if match(&s.movies[i]) {
			results = append(results, i)
		}
	}
	return results
}

// SortByCode reorders the store by code.
func (s *Store) SortByCode(order SortOrder) {
	slices.SortFunc(s.movies, func(a, b Movie) int {
		if order == Descending {
			return cmp.Compare(b.Code, a.Code)
		}
		return cmp.Compare(a.Code, b.Code)
	})
}

// SortByTitle reorders indices by the ASCII-lowered title of the movies they
// point at. The store itself is not modified.
func (s *Store) SortByTitle(indices []int) error {
	keys := make(map[int]string, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(s.movies) {
			return errors.NewValidationError("index", i, fmt.Sprintf("out of range [0,%d)", len(s.movies)))
		}
		keys[i] = lowerASCII(s.movies[i].Title)
	}
	slices.SortStableFunc(indices, func(a, b int) int {
		return strings.Compare(keys[a], keys[b])
	})
	return nil
}
