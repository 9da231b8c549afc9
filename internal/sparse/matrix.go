package sparse

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNegativeDimension is returned by New for a negative row or column count.
var ErrNegativeDimension = errors.New("sparse: negative matrix dimension")

// ErrIndexOutOfRange is returned by Set for coordinates outside the declared
// shape. Reads are never range-checked; everything outside the stored
// support is implicitly zero.
var ErrIndexOutOfRange = errors.New("sparse: index out of range")

// index is the map key for one stored cell. A struct key avoids both string
// formatting on the multiply hot path and the overflow/aliasing hazards of a
// row*cols+col composite.
type index struct {
	row, col int
}

// Entry is one non-zero cell yielded during iteration.
type Entry struct {
	Row, Col int
	Val      int64
}

// Matrix is a sparse integer matrix in dictionary-of-keys form.
// The zero value is not usable; construct with New.
type Matrix struct {
	rows, cols int
	data       map[index]int64
}

// New returns an empty rows×cols matrix. Zero-sized dimensions are legal;
// negative ones are not.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeDimension, rows, cols)
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make(map[index]int64),
	}, nil
}

// Dims returns the declared shape.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the value at (row, col), or 0 when no entry is stored there.
// Out-of-range coordinates also read as 0.
func (m *Matrix) At(row, col int) int64 {
	return m.data[index{row, col}]
}

// Set stores v at (row, col). Storing 0 removes any existing entry, so the
// map never holds an explicit zero. Any prior value is overwritten.
func (m *Matrix) Set(row, col int, v int64) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrIndexOutOfRange, row, col, m.rows, m.cols)
	}
	m.set(row, col, v)
	return nil
}

// set is the unchecked write path used internally once coordinates are known
// to be valid.
func (m *Matrix) set(row, col int, v int64) {
	k := index{row, col}
	if v == 0 {
		delete(m.data, k)
		return
	}
	m.data[k] = v
}

// NNZ returns the number of stored (non-zero) entries.
func (m *Matrix) NNZ() int {
	return len(m.data)
}

// All returns an iterator over every non-zero entry, each exactly once.
// Order is unspecified; a fresh call restarts from the beginning.
func (m *Matrix) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for k, v := range m.data {
			if !yield(Entry{Row: k.row, Col: k.col, Val: v}) {
				return
			}
		}
	}
}

// Clone returns a deep copy sharing no storage with m.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		rows: m.rows,
		cols: m.cols,
		data: make(map[index]int64, len(m.data)),
	}
	for k, v := range m.data {
		c.data[k] = v
	}
	return c
}

// Equal reports whether m and o have the same shape and the same support
// with the same values.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols || len(m.data) != len(o.data) {
		return false
	}
	for k, v := range m.data {
		if o.data[k] != v {
			return false
		}
	}
	return true
}

// String renders the shape and entry count, not the contents.
func (m *Matrix) String() string {
	return fmt.Sprintf("sparse.Matrix(%dx%d, nnz=%d)", m.rows, m.cols, len(m.data))
}
