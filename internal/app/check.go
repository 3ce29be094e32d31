package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"dbgraph/core/bigraph"
	"dbgraph/core/dbg"
	"dbgraph/internal/cmdutil"
	"dbgraph/internal/writers"
	"dbgraph/pkg/api"
)

var errCheckFailed = errors.New("check failed")

func newCheckCmd(g *globals) *cobra.Command {
	var (
		jobs        int
		asJSON      bool
		nodeCentric bool
	)
	cmd := &cobra.Command{
		Use:   "check <unitigs.fa>...",
		Short: "Validate inputs and verify the mirror invariants of their graphs",
		Long: `For each input: validate ids and adjacency symmetry, build the graph,
require every endpoint to be resolved, then verify node pairing and the
mirror property of every edge. Inputs are checked concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs <= 0 {
				jobs = runtime.NumCPU()
			}
			results := make([]api.CheckResultV1, len(args))

			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(jobs)
			for i, path := range args {
				i, path := i, path
				eg.Go(func() error {
					r := api.CheckResultV1{Input: path}
					var err error
					if nodeCentric {
						r.Nodes, r.Edges, err = checkNode(ctx, g, path)
					} else {
						r.Nodes, r.Edges, err = checkEdge(ctx, g, path)
					}
					if ctx.Err() != nil {
						return ctx.Err()
					}
					if err != nil {
						r.Error = err.Error()
						g.log.Warn("check failed", "input", path, "err", err)
					} else {
						r.OK = true
					}
					results[i] = r
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			format := "text"
			if asJSON {
				format = "jsonl"
			}
			in, done := writers.StartCheckWriter(cmd.OutOrStdout(), format, len(results))
			failed := 0
			for _, r := range results {
				if !r.OK {
					failed++
				}
				in <- r
			}
			close(in)
			if err := <-done; err != nil {
				return cmdutil.Output(err)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d inputs", errCheckFailed, failed, len(results))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&jobs, "jobs", "j", 0, "inputs checked in parallel (default: CPUs)")
	f.BoolVar(&asJSON, "json", false, "print one api.CheckResultV1 JSON line per input")
	f.BoolVar(&nodeCentric, "node-centric", false, "check the node-centric graph")
	return cmd
}

func checkEdge(ctx context.Context, g *globals, path string) (nodes, edges int, err error) {
	eg, _, err := g.readEdge(ctx, path, dbg.WithValidation(true), dbg.WithCompletenessCheck(true))
	if err != nil {
		return 0, 0, err
	}
	if err := eg.VerifyNodePairing(); err != nil {
		return 0, 0, err
	}
	if err := bigraph.VerifyEdgeMirrorProperty(eg); err != nil {
		return 0, 0, err
	}
	return eg.NodeCount(), eg.EdgeCount(), nil
}

func checkNode(ctx context.Context, g *globals, path string) (nodes, edges int, err error) {
	ng, err := g.readNode(ctx, path)
	if err != nil {
		return 0, 0, err
	}
	if err := ng.VerifyNodePairing(); err != nil {
		return 0, 0, err
	}
	if err := bigraph.VerifyNodeMirrorProperty(ng); err != nil {
		return 0, 0, err
	}
	return ng.NodeCount(), ng.EdgeCount(), nil
}
