package sparse

// Add returns a + b. Both operands must share the same shape; the result has
// that shape and holds exactly the non-zero pointwise sums. Coordinates
// whose sum cancels to zero carry no entry in the result.
func Add(a, b *Matrix) (*Matrix, error) {
	return combine("add", a, b, 1)
}

// Sub returns a - b under the same shape contract as Add.
func Sub(a, b *Matrix) (*Matrix, error) {
	return combine("sub", a, b, -1)
}

// combine implements both pointwise operations: start from a copy of a, then
// fold every entry of b in with the given sign. The zero-elision invariant
// holds because set deletes entries that cancel.
func combine(op string, a, b *Matrix, sign int64) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, newDimensionError(op, a, b)
	}
	c := a.Clone()
	for k, v := range b.data {
		c.set(k.row, k.col, c.data[k]+sign*v)
	}
	return c, nil
}

// Mul returns the matrix product a × b, requiring a.cols == b.rows. The
// result shape is a.rows × b.cols.
//
// b's entries are indexed by row first, so each entry (i, k, v) of a only
// scans row k of b instead of all of b. Cost is O(nnz(a) * maxRowNNZ(b))
// rather than the naive O(nnz(a) * nnz(b)).
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, newDimensionError("mul", a, b)
	}

	byRow := make(map[int][]Entry)
	for k, v := range b.data {
		byRow[k.row] = append(byRow[k.row], Entry{Row: k.row, Col: k.col, Val: v})
	}

	acc := make(map[index]int64)
	for k, v := range a.data {
		for _, e := range byRow[k.col] {
			acc[index{k.row, e.Col}] += v * e.Val
		}
	}

	c := &Matrix{
		rows: a.rows,
		cols: b.cols,
		data: make(map[index]int64, len(acc)),
	}
	for k, v := range acc {
		if v != 0 {
			c.data[k] = v
		}
	}
	return c, nil
}
