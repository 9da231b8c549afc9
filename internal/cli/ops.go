package cli

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmelton/spmat/internal/matfile"
	"github.com/dmelton/spmat/internal/sparse"
)

// opFunc is one of the pure matrix operations.
type opFunc func(a, b *sparse.Matrix) (*sparse.Matrix, error)

// OpOptions holds flags for the add/sub/mul commands.
type OpOptions struct {
	*RootOptions
	Output string // result file path; empty falls back to config
}

// OpResult is the success payload for an operation command.
type OpResult struct {
	Operation string `json:"operation"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	NNZ       int    `json:"nnz"`
	Output    string `json:"output"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return newOpCommand(rootOpts, "add", "Add two matrices", sparse.Add)
}

// NewSubCommand creates the sub command.
func NewSubCommand(rootOpts *RootOptions) *cobra.Command {
	return newOpCommand(rootOpts, "sub", "Subtract the second matrix from the first", sparse.Sub)
}

// NewMulCommand creates the mul command.
func NewMulCommand(rootOpts *RootOptions) *cobra.Command {
	return newOpCommand(rootOpts, "mul", "Multiply two matrices", sparse.Mul)
}

// newOpCommand builds one binary-operation command. All three share the
// read-combine-write pipeline; only the kernel differs.
func newOpCommand(rootOpts *RootOptions, name, short string, op opFunc) *cobra.Command {
	opts := &OpOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <a-file> <b-file>", name),
		Short: short,
		Long: fmt.Sprintf(`%s reads two sparse matrices from flat text files and writes the
result in the same format.

Example:
  spmat %s a.txt b.txt -o out.txt`, short, name),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(opts, name, op, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "result file path (defaults to config)")

	return cmd
}

func runOp(opts *OpOptions, name string, op opFunc, aPath, bPath string, cmd *cobra.Command) error {
	formatter := &Formatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		TraceID: uuid.NewString(),
	}
	slog.Debug("operation starting",
		"trace_id", formatter.TraceID, "op", name, "a", aPath, "b", bPath)

	a, err := matfile.ReadFile(aPath)
	if err != nil {
		return formatter.fail("reading first matrix", err)
	}
	b, err := matfile.ReadFile(bPath)
	if err != nil {
		return formatter.fail("reading second matrix", err)
	}

	c, err := op(a, b)
	if err != nil {
		return formatter.fail(name, err)
	}

	output := opts.Output
	if output == "" {
		output = opts.cfg.Output
	}
	if err := matfile.WriteFile(output, c); err != nil {
		return formatter.fail("writing result", err)
	}

	rows, cols := c.Dims()
	slog.Debug("operation finished",
		"trace_id", formatter.TraceID, "rows", rows, "cols", cols, "nnz", c.NNZ())

	return formatter.Success(
		OpResult{Operation: name, Rows: rows, Cols: cols, NNZ: c.NNZ(), Output: output},
		fmt.Sprintf("%s: %dx%d result, %d non-zero entries\nWrote %s",
			name, rows, cols, c.NNZ(), output),
	)
}
