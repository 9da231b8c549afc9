package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmelton/spmat/internal/matfile"
)

// InfoResult is the success payload for the info command.
type InfoResult struct {
	File string `json:"file"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
	NNZ  int    `json:"nnz"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "info <file>",
		Short:         "Show shape and non-zero count of a matrix file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, args[0], cmd)
		},
	}
}

func runInfo(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &Formatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		TraceID: uuid.NewString(),
	}

	m, err := matfile.ReadFile(path)
	if err != nil {
		return formatter.fail("reading matrix", err)
	}

	rows, cols := m.Dims()
	return formatter.Success(
		InfoResult{File: path, Rows: rows, Cols: cols, NNZ: m.NNZ()},
		fmt.Sprintf("%s: %dx%d, %d non-zero entries", path, rows, cols, m.NNZ()),
	)
}
