// Package sparse implements an integer sparse matrix in dictionary-of-keys
// (DOK) form, plus the algebraic operations over it.
//
// Storage model:
//   - Only non-zero entries are stored, keyed by (row, col)
//   - Setting a cell to zero deletes its entry (zero elision)
//   - Reads outside the stored support return 0, including out-of-range
//     coordinates; writes are bounds-checked
//
// Operations (Add, Sub, Mul) are pure: they never mutate their operands and
// always allocate a fresh result matrix. Shape incompatibility is reported
// as *DimensionError before any result is built.
package sparse
