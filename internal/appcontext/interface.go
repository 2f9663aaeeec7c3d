// Package appcontext provides the shared application context interface
// used by all commands. Commands depend on this interface rather than on
// the concrete App so they can be tested with a mock.
package appcontext

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/cinemania/pkg/movies"
)

// Interface defines the application context interface that commands need.
type Interface interface {
	// Store returns the session's movie store, creating it on first use and
	// importing the configured movies file into it.
	Store(ctx context.Context) (*movies.Store, error)

	// NewStore returns an empty store with the configured capacity.
	NewStore() *movies.Store

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// PageSize returns the number of rows per page in the interactive list.
	PageSize() int

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
