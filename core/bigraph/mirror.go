package bigraph

import "fmt"

// MirrorEdge returns the mirror of e in an edge-centric graph: the edge
// mirror(to) -> mirror(from) carrying the mirrored data of e.
func MirrorEdge[N any, E Bidirected[E]](g *Graph[N, E], e EdgeID) (EdgeID, bool) {
	cands := mirrorCandidates(g, e)
	if len(cands) == 0 {
		return 0, false
	}
	return cands[0], true
}

func mirrorCandidates[N any, E Bidirected[E]](g *Graph[N, E], e EdgeID) []EdgeID {
	ep := g.Endpoints(e)
	from, ok1 := g.MirrorNode(ep.To)
	to, ok2 := g.MirrorNode(ep.From)
	if !ok1 || !ok2 {
		return nil
	}
	want := g.EdgeData(e).Mirror()
	var out []EdgeID
	for _, c := range g.EdgesBetween(from, to) {
		if g.EdgeData(c).Equal(want) {
			out = append(out, c)
		}
	}
	return out
}

// VerifyEdgeMirrorProperty checks that every edge has exactly one mirror edge
// and that the mirror of the mirror is the edge itself.
func VerifyEdgeMirrorProperty[N any, E Bidirected[E]](g *Graph[N, E]) error {
	for i := 0; i < g.EdgeCount(); i++ {
		e := EdgeID(i)
		cands := mirrorCandidates(g, e)
		if len(cands) != 1 {
			return fmt.Errorf("edge %d: %d mirror candidates: %w", e, len(cands), ErrEdgeNotMirrored)
		}
		if back, ok := MirrorEdge(g, cands[0]); !ok || back != e {
			return fmt.Errorf("edge %d: mirror %d does not map back: %w", e, cands[0], ErrEdgeNotMirrored)
		}
	}
	return nil
}

// AddMirrorNodes gives every unpaired node a fresh mirror node holding the
// mirrored data.
func AddMirrorNodes[N Bidirected[N], E any](g *Graph[N, E]) {
	n := g.NodeCount()
	for i := 0; i < n; i++ {
		id := NodeID(i)
		if _, ok := g.MirrorNode(id); ok {
			continue
		}
		m := g.AddNode(g.NodeData(id).Mirror())
		g.SetMirrorNodes(id, m)
	}
}

// AddNodeCentricMirrorEdges adds mirror(to) -> mirror(from) for every edge
// from -> to that does not have one yet. All nodes must be paired.
func AddNodeCentricMirrorEdges[N any, E Bidirected[E]](g *Graph[N, E]) error {
	n := g.EdgeCount()
	for i := 0; i < n; i++ {
		e := EdgeID(i)
		ep := g.Endpoints(e)
		from, ok1 := g.MirrorNode(ep.To)
		to, ok2 := g.MirrorNode(ep.From)
		if !ok1 || !ok2 {
			return fmt.Errorf("edge %d: %w", e, ErrNodeNotPaired)
		}
		if len(g.EdgesBetween(from, to)) == 0 {
			g.AddEdge(from, to, g.EdgeData(e).Mirror())
		}
	}
	return nil
}

// VerifyNodeMirrorProperty checks that every edge from -> to of a node-centric
// graph has an edge mirror(to) -> mirror(from).
func VerifyNodeMirrorProperty[N, E any](g *Graph[N, E]) error {
	for i := 0; i < g.EdgeCount(); i++ {
		e := EdgeID(i)
		ep := g.Endpoints(e)
		from, ok1 := g.MirrorNode(ep.To)
		to, ok2 := g.MirrorNode(ep.From)
		if !ok1 || !ok2 || len(g.EdgesBetween(from, to)) == 0 {
			return fmt.Errorf("edge %d (%d -> %d): %w", e, ep.From, ep.To, ErrEdgeNotMirrored)
		}
	}
	return nil
}
