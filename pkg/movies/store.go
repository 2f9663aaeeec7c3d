package movies

import (
	"slices"
	"strconv"

	"github.com/agentstation/cinemania/pkg/constants"
	"github.com/agentstation/cinemania/pkg/errors"
)

const resourceMovie = "movie"

// Store is a bounded, insertion-ordered collection of movies keyed by code.
// It is not safe for concurrent use; a single owner drives it.
type Store struct {
	movies   []Movie
	capacity int
	nextCode int
}

// StoreOption defines a function that configures a Store instance.
type StoreOption func(*Store)

// WithCapacity sets the maximum number of movies the store accepts.
// Non-positive values keep the default.
func WithCapacity(capacity int) StoreOption {
	return func(s *Store) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}

// NewStore creates an empty store with optional configuration.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		capacity: constants.MaxMovies,
		nextCode: constants.FirstCode,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Capacity returns the maximum number of movies the store holds.
func (s *Store) Capacity() int {
	return s.capacity
}

// Len returns the number of movies.
func (s *Store) Len() int {
	return len(s.movies)
}

// Available returns how many more movies fit.
func (s *Store) Available() int {
	return s.capacity - len(s.movies)
}

// IsFull reports whether another insert would exceed the capacity.
func (s *Store) IsFull() bool {
	return len(s.movies) >= s.capacity
}

// Clear removes all movies and resets the code hint.
func (s *Store) Clear() {
	s.movies = nil
	s.nextCode = constants.FirstCode
}

// FindByCode returns the position of the movie with the given code.
func (s *Store) FindByCode(code int) (int, bool) {
	for i := range s.movies {
		if s.movies[i].Code == code {
			return i, true
		}
	}
	return -1, false
}

// Exists checks if a movie exists without returning it.
func (s *Store) Exists(code int) bool {
	_, ok := s.FindByCode(code)
	return ok
}

// Get returns a copy of the movie with the given code.
func (s *Store) Get(code int) (Movie, error) {
	i, ok := s.FindByCode(code)
	if !ok {
		return Movie{}, errors.NewNotFoundError(resourceMovie, strconv.Itoa(code))
	}
	return s.movies[i].Clone(), nil
}

// At returns a copy of the movie at position i. It panics if i is out of
// range, like a slice index.
func (s *Store) At(i int) Movie {
	return s.movies[i].Clone()
}

// Movies returns copies of all movies in store order.
func (s *Store) Movies() []Movie {
	result := make([]Movie, len(s.movies))
	for i := range s.movies {
		result[i] = s.movies[i].Clone()
	}
	return result
}

// NextAvailableCode returns the smallest unused code at or above the hint.
func (s *Store) NextAvailableCode() int {
	code := s.nextCode
	for s.Exists(code) {
		code++
	}
	return code
}

// Insert validates and appends a copy of m. Text fields longer than their
// storage bound are truncated. On failure the store is left unchanged.
func (s *Store) Insert(m Movie) error {
	if s.IsFull() {
		return errors.NewCapacityError(resourceMovie, s.capacity)
	}
	if s.Exists(m.Code) {
		return errors.NewAlreadyExistsError(resourceMovie, strconv.Itoa(m.Code))
	}
	if err := Validate(m); err != nil {
		return err
	}

	s.movies = append(s.movies, m.normalized())
	if m.Code >= s.nextCode {
		s.nextCode = m.Code + 1
	}
	return nil
}

// Delete removes the movie with the given code, keeping the order of the rest.
func (s *Store) Delete(code int) error {
	i, ok := s.FindByCode(code)
	if !ok {
		return errors.NewNotFoundError(resourceMovie, strconv.Itoa(code))
	}
	s.movies = slices.Delete(s.movies, i, i+1)
	return nil
}
