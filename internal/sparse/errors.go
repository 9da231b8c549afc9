package sparse

import (
	"errors"
	"fmt"
)

// DimensionError reports operand shapes incompatible with the requested
// operation. It carries both shapes so callers can format a precise message.
type DimensionError struct {
	// Op is the operation that rejected the operands ("add", "sub", "mul").
	Op string

	// ARows, ACols describe the left operand.
	ARows, ACols int

	// BRows, BCols describe the right operand.
	BRows, BCols int
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("sparse: %s: dimension mismatch: %dx%d vs %dx%d",
		e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

// IsDimensionError returns true if err is (or wraps) a *DimensionError.
func IsDimensionError(err error) bool {
	var de *DimensionError
	return errors.As(err, &de)
}

func newDimensionError(op string, a, b *Matrix) *DimensionError {
	return &DimensionError{
		Op:    op,
		ARows: a.rows, ACols: a.cols,
		BRows: b.rows, BCols: b.cols,
	}
}
