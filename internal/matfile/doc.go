// Package matfile reads and writes sparse matrices in the flat text format:
//
//	rows=3
//	cols=4
//	(0, 1, 7)
//	(2, 3, -2)
//
// The first two non-blank lines declare the shape. Every later non-blank
// line is matched against the triple pattern; lines that do not match are
// skipped silently, which keeps the reader tolerant of comments and junk.
// Writers emit entries in row-major order so output is deterministic.
//
// The format cannot round-trip a matrix with no entries: Write emits just
// the two header lines, and Read requires at least three non-blank lines.
// Both rules come from the format definition, so an all-cancelled result
// (e.g. adding a matrix to its negation) serializes to a file the reader
// rejects as malformed.
package matfile
