// Package app provides the application context and dependency management
// for the cinemania CLI. It centralizes configuration, logging and the
// movie store shared by every command.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/cinemania/pkg/csvio"
	"github.com/agentstation/cinemania/pkg/errors"
	"github.com/agentstation/cinemania/pkg/logging"
	"github.com/agentstation/cinemania/pkg/movies"
)

// App represents the cinemania application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Movie store (lazy-initialized, singleton)
	mu         sync.RWMutex
	store      *movies.Store
	loadResult *csvio.ImportResult
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// and config file, which functional options can replace.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// PageSize returns the interactive list page size.
func (a *App) PageSize() int {
	return a.config.PageSize
}

// NewStore returns an empty store with the configured capacity.
func (a *App) NewStore() *movies.Store {
	return movies.NewStore(movies.WithCapacity(a.config.MaxMovies))
}

// Store returns the movie store, creating it on first use. When a movies
// file is configured it is imported into the new store; lines it rejects
// are logged and reported by LoadResult, only an unreadable file fails.
func (a *App) Store(ctx context.Context) (*movies.Store, error) {
	a.mu.RLock()
	if a.store != nil {
		store := a.store
		a.mu.RUnlock()
		return store, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.store != nil {
		return a.store, nil
	}

	store := a.NewStore()
	if a.config.File != "" {
		ctx = logging.WithLogger(ctx, a.logger)
		result, err := csvio.Import(ctx, store, a.config.File)
		if err != nil {
			return nil, errors.WrapResource("load", "movies", a.config.File, err)
		}
		a.loadResult = result
		a.logger.Debug().
			Str("file", a.config.File).
			Int("movies", store.Len()).
			Msg("movies loaded")
	}

	a.store = store
	return store, nil
}

// LoadResult returns the report of the import performed by Store, or nil if
// no file was loaded.
func (a *App) LoadResult() *csvio.ImportResult {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loadResult
}

// Shutdown releases application resources.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.store = nil
	a.loadResult = nil
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets a preloaded store (useful for testing).
func WithStore(store *movies.Store) Option {
	return func(a *App) error {
		a.store = store
		return nil
	}
}
