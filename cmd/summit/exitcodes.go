package main

import "fmt"

// Exit codes for the summit CLI.
const (
	ExitOK            = 0 // Command succeeded.
	ExitInvalidArgs   = 1 // Invalid arguments or unusable config.
	ExitValidation    = 2 // Data validation found inconsistencies.
	ExitServerFailure = 3 // Server or export failed at runtime.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. An empty format yields a silent
// non-zero exit, for commands that already printed their diagnostics.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
