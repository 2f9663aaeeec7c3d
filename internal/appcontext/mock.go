package appcontext

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/cinemania/pkg/constants"
	"github.com/agentstation/cinemania/pkg/movies"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	StoreFunc        func(context.Context) (*movies.Store, error)
	NewStoreFunc     func() *movies.Store
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	PageSizeFunc     func() int
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string

	store *movies.Store
}

// NewMock returns a mock whose Store is the given store.
func NewMock(store *movies.Store) *Mock {
	return &Mock{store: store}
}

// Store returns the store from StoreFunc, or a store kept for the life of
// the mock.
func (m *Mock) Store(ctx context.Context) (*movies.Store, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx)
	}
	if m.store == nil {
		m.store = m.NewStore()
	}
	return m.store, nil
}

// NewStore returns a store from NewStoreFunc or an empty default store.
func (m *Mock) NewStore() *movies.Store {
	if m.NewStoreFunc != nil {
		return m.NewStoreFunc()
	}
	return movies.NewStore()
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format from the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// PageSize returns the page size from the mock function or the default.
func (m *Mock) PageSize() int {
	if m.PageSizeFunc != nil {
		return m.PageSizeFunc()
	}
	return constants.LinesPerPage
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
