package cli

import "fmt"

// Exit codes for the deployctl CLI.
// These codes support scripting and CI integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a general runtime failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingDependencies indicates required tools or files are missing
	ExitMissingDependencies = 4

	// ExitTimeout indicates command execution timed out
	ExitTimeout = 5
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError returns an error carrying the given exit code. Commands
// return it after printing their own diagnostics.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitFailure
}
