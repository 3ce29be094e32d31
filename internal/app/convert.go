package app

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dbgraph/internal/cmdutil"
	"dbgraph/internal/writers"
)

func newConvertCmd(g *globals) *cobra.Command {
	var (
		output      string
		format      string
		nodeCentric bool
	)
	cmd := &cobra.Command{
		Use:   "convert <unitigs.fa>",
		Short: "Build the graph and write it as bcalm2 or dot",
		Long: `Reads bcalm2 unitigs (plain, .gz, .zst or - for stdin), builds the
bidirected graph and writes it in the chosen format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ctx := cmd.Context()

			render := func(bw *bufio.Writer) error {
				if nodeCentric {
					ng, err := g.readNode(ctx, args[0])
					if err != nil {
						return err
					}
					return cmdutil.Output(writers.WriteNodeGraph(format, bw, ng))
				}
				eg, st, err := g.readEdge(ctx, args[0])
				if err != nil {
					return err
				}
				g.log.Info("graph built", "input", args[0], "nodes", st.Nodes, "edges", st.Edges)
				return cmdutil.Output(writers.WriteEdgeGraph(format, bw, eg))
			}

			if output == "" || output == "-" {
				bw := bufio.NewWriter(cmd.OutOrStdout())
				if err := render(bw); err != nil {
					return err
				}
				return cmdutil.Output(bw.Flush())
			}
			return writeFile(output, render)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	f.StringVarP(&format, "format", "f", "bcalm2", "output format (bcalm2|dot)")
	f.BoolVar(&nodeCentric, "node-centric", false, "one node per unitig instead of one edge per unitig")
	return cmd
}

// createOutput opens the -o target. Tests replace it.
var createOutput = func(path string) (io.WriteCloser, error) { return os.Create(path) }

// writeFile renders into path. A failed Close is an output error.
func writeFile(path string, render func(*bufio.Writer) error) error {
	f, err := createOutput(path)
	if err != nil {
		return cmdutil.Output(err)
	}
	bw := bufio.NewWriter(f)
	if err := render(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return cmdutil.Output(err)
	}
	return cmdutil.Output(f.Close())
}
