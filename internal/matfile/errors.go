package matfile

import (
	"errors"
	"fmt"
)

// ParseErrorCode categorizes reader failures.
type ParseErrorCode string

const (
	// ErrCodeMalformedInput indicates a missing or unparseable header, or a
	// file with fewer than three non-blank lines.
	ErrCodeMalformedInput ParseErrorCode = "MALFORMED_INPUT"
)

// ParseError reports a matrix file that cannot be understood. I/O failures
// are not ParseErrors; they propagate as wrapped OS errors.
type ParseError struct {
	Code    ParseErrorCode
	Message string

	// Line is the 1-based source line, or 0 when the failure is not tied to
	// a single line (e.g. a truncated file).
	Line int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Code, e.Message, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsMalformed returns true if err is (or wraps) a malformed-input ParseError.
func IsMalformed(err error) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code == ErrCodeMalformedInput
	}
	return false
}

func malformed(line int, format string, args ...any) *ParseError {
	return &ParseError{
		Code:    ErrCodeMalformedInput,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	}
}
