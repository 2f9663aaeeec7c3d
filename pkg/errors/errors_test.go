package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/cinemania/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "movie",
			ID:       "42",
		}
		assert.Equal(t, "movie with code 42 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("movie", "7")
		wrapped := fmt.Errorf("delete: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
		assert.False(t, pkgerrors.IsAlreadyExists(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	err := pkgerrors.NewAlreadyExistsError("movie", "3")
	assert.Equal(t, "movie with code 3 already exists", err.Error())
	assert.True(t, pkgerrors.IsAlreadyExists(err))
	assert.False(t, pkgerrors.IsNotFound(err))
}

func TestCapacityError(t *testing.T) {
	err := pkgerrors.NewCapacityError("movie", 2000)
	assert.Contains(t, err.Error(), "2000")
	assert.True(t, pkgerrors.IsCapacityExceeded(err))
	assert.True(t, errors.Is(errors.Join(errors.New("insert"), err), pkgerrors.ErrCapacityExceeded))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "title",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field title: cannot be empty", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad record"}
		assert.Equal(t, "validation failed: bad record", err.Error())
	})

	t.Run("wrap helper", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapValidation("year", nil))
		err := pkgerrors.WrapValidation("year", errors.New("out of range"))
		var vErr *pkgerrors.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "year", vErr.Field)
	})
}

func TestNotEditableError(t *testing.T) {
	err := pkgerrors.NewNotEditableError("director")
	assert.Contains(t, err.Error(), "director")
	assert.True(t, pkgerrors.IsNotEditable(err))
	assert.False(t, pkgerrors.IsValidationError(err))
}

func TestParseError(t *testing.T) {
	t.Run("with file and line", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "csv",
			File:    "movies.csv",
			Line:    10,
			Message: "invalid year",
		}
		assert.Equal(t, "parse error in csv at movies.csv:10: invalid year", err.Error())
	})

	t.Run("with column", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "csv", File: "m.csv", Line: 2, Column: 7, Message: "x"}
		assert.Contains(t, err.Error(), "m.csv:2:7")
	})

	t.Run("without file", func(t *testing.T) {
		base := errors.New("bad number")
		err := pkgerrors.NewParseError("csv", "", "bad number", base)
		assert.Equal(t, "csv parse error: bad number", err.Error())
		assert.Equal(t, base, errors.Unwrap(err))
	})
}

func TestIOError(t *testing.T) {
	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/data/out.csv", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
		assert.Contains(t, err.Error(), "/data/out.csv")
	})

	t.Run("wrap helper", func(t *testing.T) {
		err := pkgerrors.WrapIO("create", "movies.csv", pkgerrors.ErrAlreadyExists)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "create", ioErr.Operation)
		assert.True(t, pkgerrors.IsAlreadyExists(err))
	})
}

func TestResourceError(t *testing.T) {
	err := pkgerrors.WrapResource("load", "movies", "a.csv", pkgerrors.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to load movies a.csv")
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.Nil(t, pkgerrors.WrapResource("load", "movies", "", nil))
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("store", "max_movies must be positive", nil)
	assert.Equal(t, "configuration error in store: max_movies must be positive", err.Error())
}
