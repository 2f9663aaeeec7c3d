package movies

import (
	"strconv"
	"strings"

	"github.com/agentstation/cinemania/pkg/errors"
)

// Field names a movie attribute, using its CSV column name.
type Field string

// Movie fields, in column order.
const (
	FieldCode        Field = "code"
	FieldTitle       Field = "title"
	FieldGenres      Field = "genres"
	FieldDescription Field = "description"
	FieldDirector    Field = "director"
	FieldActors      Field = "actors"
	FieldYear        Field = "year"
	FieldDuration    Field = "duration"
	FieldRating      Field = "rating"
	FieldFavorite    Field = "favorite"
	FieldRevenue     Field = "revenue"
)

var allFields = []Field{
	FieldCode, FieldTitle, FieldGenres, FieldDescription, FieldDirector, FieldActors,
	FieldYear, FieldDuration, FieldRating, FieldFavorite, FieldRevenue,
}

// EditableFields lists the fields EditField accepts, in menu order.
func EditableFields() []Field {
	return []Field{FieldTitle, FieldGenres, FieldYear, FieldDuration, FieldRating, FieldFavorite, FieldRevenue}
}

// Editable reports whether the field can change after creation.
func (f Field) Editable() bool {
	switch f {
	case FieldTitle, FieldGenres, FieldYear, FieldDuration, FieldRating, FieldFavorite, FieldRevenue:
		return true
	}
	return false
}

// String returns the field name.
func (f Field) String() string {
	return string(f)
}

// ParseField resolves a field name, case-insensitively. "favorites" is
// accepted for the favorite count.
func ParseField(name string) (Field, error) {
	key := lowerASCII(strings.TrimSpace(name))
	if key == "favorites" {
		return FieldFavorite, nil
	}
	for _, f := range allFields {
		if string(f) == key {
			return f, nil
		}
	}
	return "", errors.NewValidationError("field", name, "unknown field")
}

// EditField replaces one editable field of the movie with the given code.
// The value is text as typed by a user; numbers are parsed and genres are
// resolved through ParseGenreList. The edited record must pass Validate
// before it replaces the stored one.
func (s *Store) EditField(code int, field Field, value string) error {
	i, ok := s.FindByCode(code)
	if !ok {
		return errors.NewNotFoundError(resourceMovie, strconv.Itoa(code))
	}
	if !field.Editable() {
		return errors.NewNotEditableError(string(field))
	}

	updated := s.movies[i].Clone()
	if err := applyField(&updated, field, value); err != nil {
		return err
	}
	if err := Validate(updated); err != nil {
		return err
	}

	s.movies[i] = updated.normalized()
	return nil
}

func applyField(m *Movie, field Field, value string) error {
	value = strings.TrimSpace(value)

	switch field {
	case FieldTitle:
		m.Title = value
	case FieldGenres:
		genres, _ := ParseGenreList(value)
		if len(genres) == 0 {
			return errors.NewValidationError(string(field), value, "At least one valid genre is required")
		}
		m.Genres = genres
	case FieldYear, FieldDuration, FieldFavorite:
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.NewValidationError(string(field), value, "not a whole number")
		}
		switch field {
		case FieldYear:
			m.Year = n
		case FieldDuration:
			m.Duration = n
		default:
			m.Favorite = n
		}
	case FieldRating, FieldRevenue:
		f, err := ParseDecimal(value)
		if err != nil {
			return errors.NewValidationError(string(field), value, "not a number")
		}
		if field == FieldRating {
			m.Rating = f
		} else {
			m.Revenue = f
		}
	}
	return nil
}
