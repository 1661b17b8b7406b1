package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (validation failed, restore incomplete, etc.)
	ExitCommandError = 2 // Command error (invalid flags, unreadable paths, database not found)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Formatter handles JSON vs text output for CLI commands.
type Formatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostic output; defaults to Writer
	Verbose   bool
}

// Response is the JSON envelope every command emits under --format json.
type Response struct {
	Status string `json:"status"`          // "ok" or "error"
	Data   any    `json:"data,omitempty"`  // success payload
	Error  string `json:"error,omitempty"` // error message
}

// Success emits a result in the configured format. The text argument is
// the human-readable line; data is the JSON payload.
func (f *Formatter) Success(text string, data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
	}
	if text != "" {
		fmt.Fprintln(f.Writer, text)
	}
	return nil
}

// Error emits an error in the configured format.
func (f *Formatter) Error(message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "error", Error: message})
	}
	fmt.Fprintf(f.Writer, "Error: %s\n", message)
	return nil
}

// VerboseLog emits a diagnostic line only when verbose mode is on.
// Goes to ErrWriter so JSON output on Writer stays parseable.
func (f *Formatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
