// Package rarlens provides public constants for external tools
// integrating with rarlens.
package rarlens

// Exit codes returned by the rarlens CLI.
// These constants allow scripts and CI wrappers to check exit codes
// symbolically rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (write error, unexpected failure, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid config, bad flag value, etc.).
	ExitConfigError = 2

	// ExitInputError indicates the tree document could not be read or is invalid.
	ExitInputError = 3
)
