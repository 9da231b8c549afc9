package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeScriptedAdd(t *testing.T) {
	dir := t.TempDir()
	a, b := exampleFiles(t, dir)
	out := filepath.Join(dir, "out.txt")

	stdout, err := execute(t, "1\n"+a+"\n"+b+"\n", "compute", "-o", out)
	require.NoError(t, err)

	// Piped stdin is not a terminal, so no prompts appear.
	assert.NotContains(t, stdout, "Choose operation")
	assert.Contains(t, stdout, "add: 2x2 result, 4 non-zero entries")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "rows=2\ncols=2\n(0, 0, 6)\n(0, 1, 2)\n(1, 0, 3)\n(1, 1, 10)\n", string(data))
}

func TestComputeScriptedMultiply(t *testing.T) {
	dir := t.TempDir()
	a, b := exampleFiles(t, dir)
	out := filepath.Join(dir, "out.txt")

	_, err := execute(t, "3\n"+a+"\n"+b+"\n", "compute", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "rows=2\ncols=2\n(0, 0, 5)\n(0, 1, 12)\n(1, 0, 15)\n(1, 1, 24)\n", string(data))
}

func TestComputeInvalidChoice(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	stdout, err := execute(t, "9\n", "compute", "-o", out)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, ErrCodeInvalidOperation)

	_, statErr := os.Stat(out)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "invalid choice must not produce output")
}

func TestComputeTruncatedInput(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "2\n", "compute", "-o", filepath.Join(dir, "out.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestComputeSubtract(t *testing.T) {
	dir := t.TempDir()
	a, b := exampleFiles(t, dir)
	out := filepath.Join(dir, "out.txt")

	_, err := execute(t, "2\n"+a+"\n"+b+"\n", "compute", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "rows=2\ncols=2\n(0, 0, -4)\n(0, 1, 2)\n(1, 0, 3)\n(1, 1, -2)\n", string(data))
}
