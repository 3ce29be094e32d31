// Package app wires the dbgraph subcommands.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dbgraph/internal/cmdutil"
	"dbgraph/internal/writers"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globals{stderr: stderr}
	root := &cobra.Command{
		Use:   "dbgraph",
		Short: "Build bidirected de Bruijn graphs from bcalm2 unitigs",
		Long: `dbgraph reads bcalm2 unitig FASTA, reconstructs the bidirected
de Bruijn graph and writes it back as bcalm2 or graphviz dot.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: g.load,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	g.bind(root)

	root.AddCommand(
		newConvertCmd(g),
		newCheckCmd(g),
		newStatsCmd(g),
		newVersionCmd(),
	)
	return root
}

// RunContext executes argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(parent)
	if err == nil && parent.Err() != nil {
		err = parent.Err()
	}
	code := cmdutil.ExitCode(err)
	if err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, "error:", err)
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
