package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dmelton/spmat/internal/matfile"
	"github.com/dmelton/spmat/internal/sparse"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (dimension mismatch, malformed input)
	ExitCommandError = 2 // Command error (bad flags, unreadable files, invalid choice)
)

// Stable error codes reported in responses.
const (
	ErrCodeMalformedInput    = "MALFORMED_INPUT"
	ErrCodeDimensionMismatch = "DIMENSION_MISMATCH"
	ErrCodeInvalidOperation  = "INVALID_OPERATION"
	ErrCodeIO                = "IO_ERROR"
)

// ExitError pairs an error with the process exit code main should use.
// Err is optional context; when present it stays reachable through Unwrap
// so errors.Is/As still see the underlying cause.
type ExitError struct {
	Code    int
	Message string
	Err     error
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

// NewExitError builds an ExitError with no underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code and context to an existing error.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode reports the exit code carried by err, defaulting to
// ExitFailure for anything that is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classify maps a domain error to its response code and exit code. Anything
// that is neither a parse nor a shape error is treated as an I/O failure.
func classify(err error) (errCode string, exitCode int) {
	switch {
	case sparse.IsDimensionError(err):
		return ErrCodeDimensionMismatch, ExitFailure
	case matfile.IsMalformed(err):
		return ErrCodeMalformedInput, ExitFailure
	default:
		return ErrCodeIO, ExitCommandError
	}
}

// Formatter renders command results as plain text or JSON.
type Formatter struct {
	Format  string
	Writer  io.Writer
	TraceID string // correlates JSON responses with verbose logs
}

// Response is the JSON envelope for every command.
type Response struct {
	Status  string         `json:"status"` // "ok" or "error"
	TraceID string         `json:"trace_id,omitempty"`
	Data    any            `json:"data,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}

// ResponseError carries the stable code plus a human-readable message.
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success renders data (JSON) or the preformatted text lines.
func (f *Formatter) Success(data any, text string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{
			Status:  "ok",
			TraceID: f.TraceID,
			Data:    data,
		})
	}
	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// failf reports an error in the configured format and returns the ExitError
// the command should propagate. No result file is ever written after this.
func (f *Formatter) failf(exitCode int, errCode, context string, cause error) error {
	message := context
	if cause != nil {
		message = fmt.Sprintf("%s: %v", context, cause)
	}
	if f.Format == "json" {
		_ = json.NewEncoder(f.Writer).Encode(Response{
			Status:  "error",
			TraceID: f.TraceID,
			Error: &ResponseError{
				Code:    errCode,
				Message: message,
			},
		})
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", errCode, message)
	}
	return WrapExitError(exitCode, context, cause)
}

// fail reports a classified domain error.
func (f *Formatter) fail(context string, err error) error {
	errCode, exitCode := classify(err)
	return f.failf(exitCode, errCode, context, err)
}
