package writers

import (
	"fmt"
	"io"
	"slices"

	"dbgraph/core/bcalm2"
)

// GraphWriter renders both graph layouts in one format. Either func may be
// nil when the format does not support that layout.
type GraphWriter struct {
	Edge func(io.Writer, *bcalm2.EdgeGraph) error
	Node func(io.Writer, *bcalm2.NodeGraph) error
}

// GraphWriters maps format -> writer. Entries are registered in init() blocks.
var GraphWriters = map[string]GraphWriter{}

// RegisterGraph adds or replaces the writer for format.
func RegisterGraph(format string, gw GraphWriter) { GraphWriters[format] = gw }

// GraphFormats lists the registered formats, sorted.
func GraphFormats() []string {
	out := make([]string, 0, len(GraphWriters))
	for f := range GraphWriters {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

func WriteEdgeGraph(format string, w io.Writer, g *bcalm2.EdgeGraph) error {
	gw, ok := GraphWriters[format]
	if !ok || gw.Edge == nil {
		return fmt.Errorf("unknown edge-centric format %q (no writer registered)", format)
	}
	return gw.Edge(w, g)
}

func WriteNodeGraph(format string, w io.Writer, g *bcalm2.NodeGraph) error {
	gw, ok := GraphWriters[format]
	if !ok || gw.Node == nil {
		return fmt.Errorf("unknown node-centric format %q (no writer registered)", format)
	}
	return gw.Node(w, g)
}
