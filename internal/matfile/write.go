package matfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/dmelton/spmat/internal/sparse"
)

// Write serializes m in the flat text format, entries in row-major order.
// Zero-valued entries never appear; the store elides them before we get
// here.
func Write(w io.Writer, m *sparse.Matrix) error {
	bw := bufio.NewWriter(w)

	rows, cols := m.Dims()
	fmt.Fprintf(bw, "rows=%d\n", rows)
	fmt.Fprintf(bw, "cols=%d\n", cols)

	for _, e := range sortedEntries(m) {
		fmt.Fprintf(bw, "(%d, %d, %d)\n", e.Row, e.Col, e.Val)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing matrix: %w", err)
	}
	return nil
}

// WriteFile serializes m to path, creating or truncating it.
func WriteFile(path string, m *sparse.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating matrix file: %w", err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing matrix file: %w", err)
	}
	return nil
}

// sortedEntries snapshots m's support in row-major order. The store
// iterates in map order, so serialization imposes its own ordering to keep
// output stable across runs.
func sortedEntries(m *sparse.Matrix) []sparse.Entry {
	entries := make([]sparse.Entry, 0, m.NNZ())
	for e := range m.All() {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b sparse.Entry) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return entries
}
