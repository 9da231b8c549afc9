package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmelton/spmat/internal/matfile"
	"github.com/dmelton/spmat/internal/sparse"
)

// ComputeOptions holds flags for the compute command.
type ComputeOptions struct {
	*RootOptions
	Output string
}

// NewComputeCommand creates the interactive compute command.
func NewComputeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComputeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Interactive session: pick an operation and two input files",
		Long: `compute prompts for an operation choice (1=add, 2=subtract, 3=multiply)
and two input file paths, then writes the result to the configured output
file (` + DefaultOutput + ` unless overridden by -o or spmat.yaml).

Prompts are suppressed when stdin is not a terminal, so the session can be
scripted:

  printf '3\na.txt\nb.txt\n' | spmat compute`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "result file path (defaults to config)")

	return cmd
}

func runCompute(opts *ComputeOptions, cmd *cobra.Command) error {
	formatter := &Formatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		TraceID: uuid.NewString(),
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	interactive := isTerminal(cmd.InOrStdin())

	prompt(cmd, interactive, "Choose operation (1=add, 2=subtract, 3=multiply): ")
	choice, err := readLine(in)
	if err != nil {
		return formatter.failf(ExitCommandError, ErrCodeIO, "reading operation choice", err)
	}

	name, op, ok := opForChoice(choice)
	if !ok {
		// Terminate without writing any output file.
		return formatter.failf(ExitCommandError, ErrCodeInvalidOperation,
			fmt.Sprintf("unrecognized operation choice %q", choice), nil)
	}
	slog.Debug("operation selected", "trace_id", formatter.TraceID, "op", name)

	prompt(cmd, interactive, "First matrix file: ")
	aPath, err := readLine(in)
	if err != nil {
		return formatter.failf(ExitCommandError, ErrCodeIO, "reading first file path", err)
	}
	prompt(cmd, interactive, "Second matrix file: ")
	bPath, err := readLine(in)
	if err != nil {
		return formatter.failf(ExitCommandError, ErrCodeIO, "reading second file path", err)
	}

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
	return formatter.Success(
		OpResult{Operation: name, Rows: rows, Cols: cols, NNZ: c.NNZ(), Output: output},
		fmt.Sprintf("%s: %dx%d result, %d non-zero entries\nWrote %s",
			name, rows, cols, c.NNZ(), output),
	)
}

// opForChoice maps the interactive selector to an operation.
func opForChoice(choice string) (string, opFunc, bool) {
	switch choice {
	case "1":
		return "add", sparse.Add, true
	case "2":
		return "sub", sparse.Sub, true
	case "3":
		return "mul", sparse.Mul, true
	default:
		return "", nil, false
	}
}

// prompt writes the prompt text only for terminal sessions, keeping piped
// input/output clean.
func prompt(cmd *cobra.Command, interactive bool, text string) {
	if interactive {
		fmt.Fprint(cmd.OutOrStdout(), text)
	}
}

// readLine returns the next input line, trimmed.
func readLine(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(in.Text()), nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
