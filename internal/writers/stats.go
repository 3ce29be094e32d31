package writers

import (
	"fmt"
	"io"
	"text/tabwriter"

	"dbgraph/internal/jsonutil"
	"dbgraph/pkg/api"
)

// WriteStats renders s as "text" (aligned key/value lines) or "json".
func WriteStats(w io.Writer, format string, s api.GraphStatsV1) error {
	switch format {
	case "json":
		return jsonutil.WriteDocument(w, s)
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
		rows := []struct {
			k string
			v any
		}{
			{"input", s.Input},
			{"layout", s.Layout},
			{"records", s.Records},
			{"nodes", s.Nodes},
			{"edges", s.Edges},
			{"self_mirror_nodes", s.SelfMirrorNodes},
			{"self_mirror_edges", s.SelfMirrorEdges},
		}
		for _, r := range rows {
			if _, err := fmt.Fprintf(tw, "%s\t%v\n", r.k, r.v); err != nil {
				return err
			}
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown stats format %q", format)
	}
}
