package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned to the operating system.
const (
	// ExitSuccess indicates the run completed, regardless of how many
	// individual mode files were skipped.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (bad flags, invalid
	// configuration, failed validation).
	ExitUser = 1

	// ExitSystem indicates a system-related error (unreadable modes
	// directory, unwritable output file).
	ExitSystem = 2
)

// ErrInvalidConfig indicates configuration validation failed.
// Domain-specific sentinels live next to the code that raises them.
var ErrInvalidConfig = errors.New("invalid configuration")

// ExitError wraps an error with an exit code and optional suggestion.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
