// Package errors provides error handling conventions for the modegen CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions.
//
// # Exit Codes
//
//   - ExitSuccess (0): Run completed; skipped files do not change the code
//   - ExitUser (1): User-related error (flags, configuration, validation)
//   - ExitSystem (2): System-related error (I/O, permissions)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [errors.Unwrap] and [errors.As]:
//
//	var exitErr *modegenerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
//
// Per-file parse failures are never wrapped in ExitError: a skipped mode
// document is logged and excluded, and the run still exits zero.
package errors
