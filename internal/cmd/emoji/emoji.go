// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols printed in front of alert messages.
const (
	// Success marks a completed operation.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Warning marks a non-fatal problem, such as skipped import lines.
	Warning = "!"

	// Info marks a neutral notice.
	Info = "i"

	// Unknown marks an unrecognized alert level.
	Unknown = "?"
)
