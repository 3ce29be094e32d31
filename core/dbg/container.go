package dbg

import "dbgraph/core/bigraph"

// Container is the graph storage the builders write into.
// *bigraph.Graph satisfies it.
type Container[N, E any] interface {
	AddNode(data N) bigraph.NodeID
	// AddEdge must keep parallel edges.
	AddEdge(from, to bigraph.NodeID, data E) bigraph.EdgeID
	// SetMirrorNodes registers a and b as mirrors; a == b is a self-mirror node.
	SetMirrorNodes(a, b bigraph.NodeID)
	MirrorNode(n bigraph.NodeID) (bigraph.NodeID, bool)
}

var _ Container[bigraph.Unit, bigraph.Unit] = (*bigraph.Graph[bigraph.Unit, bigraph.Unit])(nil)
