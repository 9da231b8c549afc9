package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew builds a matrix and seeds it with entries, failing the test on any
// error.
func mustNew(t *testing.T, rows, cols int, entries ...Entry) *Matrix {
	t.Helper()
	m, err := New(rows, cols)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, m.Set(e.Row, e.Col, e.Val))
	}
	return m
}

// collect drains an iterator into a coordinate-keyed map, failing on
// duplicate entries.
func collect(t *testing.T, m *Matrix) map[[2]int]int64 {
	t.Helper()
	out := make(map[[2]int]int64)
	for e := range m.All() {
		k := [2]int{e.Row, e.Col}
		_, dup := out[k]
		require.False(t, dup, "entry (%d, %d) yielded twice", e.Row, e.Col)
		out[k] = e.Val
	}
	return out
}

func TestNewRejectsNegativeDimensions(t *testing.T) {
	_, err := New(-1, 3)
	assert.ErrorIs(t, err, ErrNegativeDimension)

	_, err = New(3, -1)
	assert.ErrorIs(t, err, ErrNegativeDimension)
}

func TestNewAllowsZeroSize(t *testing.T) {
	m, err := New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NNZ())
}

func TestFreshMatrixReadsZeroEverywhere(t *testing.T) {
	m := mustNew(t, 3, 4)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			assert.Zero(t, m.At(r, c))
		}
	}
	// Out-of-range reads are implicitly zero too, never a failure.
	assert.Zero(t, m.At(-1, 0))
	assert.Zero(t, m.At(100, 100))
}

func TestSetZeroRemovesEntry(t *testing.T) {
	m := mustNew(t, 2, 2, Entry{Row: 1, Col: 1, Val: 9})
	before := m.NNZ()

	require.NoError(t, m.Set(0, 1, 5))
	assert.Equal(t, before+1, m.NNZ())

	require.NoError(t, m.Set(0, 1, 0))
	assert.Equal(t, before, m.NNZ())
	assert.Zero(t, m.At(0, 1))
}

func TestSetOverwrites(t *testing.T) {
	m := mustNew(t, 2, 2)
	require.NoError(t, m.Set(0, 0, 3))
	require.NoError(t, m.Set(0, 0, -7))
	assert.Equal(t, int64(-7), m.At(0, 0))
	assert.Equal(t, 1, m.NNZ())
}

func TestSetOutOfRange(t *testing.T) {
	m := mustNew(t, 2, 2)
	assert.ErrorIs(t, m.Set(2, 0, 1), ErrIndexOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), ErrIndexOutOfRange)
	assert.Equal(t, 0, m.NNZ())
}

func TestAllEnumeratesEveryEntryOnce(t *testing.T) {
	m := mustNew(t, 3, 3,
		Entry{Row: 0, Col: 0, Val: 1},
		Entry{Row: 1, Col: 2, Val: -4},
		Entry{Row: 2, Col: 1, Val: 7},
	)
	got := collect(t, m)
	want := map[[2]int]int64{
		{0, 0}: 1,
		{1, 2}: -4,
		{2, 1}: 7,
	}
	assert.Equal(t, want, got)
}

func TestAllIsRestartable(t *testing.T) {
	m := mustNew(t, 2, 2,
		Entry{Row: 0, Col: 0, Val: 1},
		Entry{Row: 1, Col: 1, Val: 2},
	)
	assert.Equal(t, collect(t, m), collect(t, m))
}

func TestAllEarlyStop(t *testing.T) {
	m := mustNew(t, 2, 2,
		Entry{Row: 0, Col: 0, Val: 1},
		Entry{Row: 1, Col: 1, Val: 2},
	)
	seen := 0
	for range m.All() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestCloneIsIndependent(t *testing.T) {
	m := mustNew(t, 2, 2, Entry{Row: 0, Col: 0, Val: 5})
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(1, 1, 3))
	assert.Zero(t, m.At(1, 1))
	assert.False(t, m.Equal(c))
}

func TestEqual(t *testing.T) {
	a := mustNew(t, 2, 3, Entry{Row: 0, Col: 1, Val: 2})
	b := mustNew(t, 2, 3, Entry{Row: 0, Col: 1, Val: 2})
	assert.True(t, a.Equal(b))

	// Same support, different shape.
	c := mustNew(t, 3, 2, Entry{Row: 0, Col: 1, Val: 2})
	assert.False(t, a.Equal(c))

	// Same shape, different value.
	d := mustNew(t, 2, 3, Entry{Row: 0, Col: 1, Val: 3})
	assert.False(t, a.Equal(d))
}
