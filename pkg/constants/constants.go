// Package constants provides shared constants used throughout the cinemania
// codebase: store capacity, field bounds, value ranges, and file permissions.
package constants

// Store limits
const (
	// MaxMovies is the default capacity ceiling of a movie store
	MaxMovies = 2000

	// FirstCode is the code handed out by an empty store
	FirstCode = 1
)

// Field bounds. Longer text is truncated on insert, never rejected.
const (
	// MaxStringLength bounds title and director, in bytes
	MaxStringLength = 255

	// MaxDescriptionLength bounds the description, in bytes
	MaxDescriptionLength = 1023

	// MaxActorNameLength bounds each actor name, in bytes
	MaxActorNameLength = 99

	// MaxGenresPerMovie is the largest genre list a movie may carry
	MaxGenresPerMovie = 20

	// MaxActorsPerMovie is the largest actor list a movie may carry
	MaxActorsPerMovie = 50
)

// Value ranges
const (
	MinYear = 1888
	MaxYear = 2100

	MaxDuration = 600

	MinRating = 0.0
	MaxRating = 10.0

	// MaxFavorite, MaxRevenue and MaxCodeInput bound interactive input only
	MaxFavorite  = 999999999
	MaxRevenue   = 999999.0
	MaxCodeInput = 999999
)

// Shell pagination
const (
	// LinesPerPage is the default number of rows per page in the shell
	LinesPerPage = 25
)

// File permission constants
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
