package writers

import (
	"dbgraph/core/bcalm2"
	"dbgraph/internal/dot"
)

func init() {
	RegisterGraph("bcalm2", GraphWriter{Edge: bcalm2.WriteEdgeCentric, Node: bcalm2.WriteNodeCentric})
	RegisterGraph("dot", GraphWriter{Edge: dot.WriteEdgeCentric, Node: dot.WriteNodeCentric})
}
