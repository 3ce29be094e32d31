package app

import (
	"github.com/spf13/cobra"

	"dbgraph/core/bigraph"
	"dbgraph/internal/cmdutil"
	"dbgraph/internal/writers"
	"dbgraph/pkg/api"
)

func newStatsCmd(g *globals) *cobra.Command {
	var (
		asJSON      bool
		nodeCentric bool
	)
	cmd := &cobra.Command{
		Use:   "stats <unitigs.fa>",
		Short: "Print node, edge and self-mirror counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := api.GraphStatsV1{Input: args[0], Layout: layout(nodeCentric)}
			if nodeCentric {
				ng, err := g.readNode(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				s.Records = ng.NodeCount() / 2
				s.Nodes = ng.NodeCount()
				s.Edges = ng.EdgeCount()
				for i := 0; i < ng.EdgeCount(); i++ {
					ep := ng.Endpoints(bigraph.EdgeID(i))
					if m, ok := ng.MirrorNode(ep.From); ok && m == ep.To {
						s.SelfMirrorEdges++
					}
				}
			} else {
				_, st, err := g.readEdge(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				s.Strategy = string(g.cfg.Strategy)
				s.KmerSize = g.cfg.KmerSize
				s.Records = st.Records
				s.Nodes = st.Nodes
				s.Edges = st.Edges
				s.SelfMirrorNodes = st.SelfMirrorNodes
				s.SelfMirrorEdges = st.SelfMirrorEdges
			}
			format := "text"
			if asJSON {
				format = "json"
			}
			return cmdutil.Output(writers.WriteStats(cmd.OutOrStdout(), format, s))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print api.GraphStatsV1 JSON")
	cmd.Flags().BoolVar(&nodeCentric, "node-centric", false, "count the node-centric graph")
	return cmd
}
