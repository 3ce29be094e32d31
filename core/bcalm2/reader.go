package bcalm2

import (
	"context"
	"fmt"
	"io"

	"dbgraph/core/bigraph"
	"dbgraph/core/dbg"
	"dbgraph/core/fasta"
)

// ReadEdgeCentric builds an edge-centric graph from bcalm2 FASTA produced
// with k-mer size k.
func ReadEdgeCentric(ctx context.Context, r io.Reader, k int, strategy dbg.Strategy, opts ...dbg.Option) (*EdgeGraph, dbg.Stats, error) {
	if k < 2 {
		return nil, dbg.Stats{}, fmt.Errorf("k=%d: %w", k, dbg.ErrInvalidKmerSize)
	}
	src := NewSource(r, k)
	switch strategy {
	case dbg.StrategyContent:
		return dbg.BuildGraphByContent[Unitig](ctx, src, k, opts...)
	case dbg.StrategyPropagate, "":
		return dbg.BuildGraph[Unitig](ctx, src, opts...)
	default:
		return nil, dbg.Stats{}, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// ReadEdgeCentricFile is ReadEdgeCentric on a path; see fasta.Open.
func ReadEdgeCentricFile(ctx context.Context, path string, k int, strategy dbg.Strategy, opts ...dbg.Option) (*EdgeGraph, dbg.Stats, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, dbg.Stats{}, err
	}
	defer rc.Close()
	g, st, err := ReadEdgeCentric(ctx, rc, k, strategy, opts...)
	if err != nil {
		return nil, st, fmt.Errorf("%s: %w", path, err)
	}
	return g, st, nil
}

// ReadNodeCentric maps unitig i to node i, adds a mirror node for every
// unitig and one edge per L: token.
func ReadNodeCentric(ctx context.Context, r io.Reader) (*NodeGraph, error) {
	type link struct {
		from int
		dbg.Adjacency
	}
	g := bigraph.New[Unitig, bigraph.Unit]()
	var links []link
	err := fasta.StreamCtx(ctx, r, func(fr fasta.Record) error {
		u, err := ParseRecord(fr)
		if err != nil {
			return err
		}
		if u.ID != g.NodeCount() {
			return fmt.Errorf("record %d at position %d: %w", u.ID, g.NodeCount(), dbg.ErrNonConsecutiveID)
		}
		for _, a := range u.Adjacency {
			links = append(links, link{from: u.ID, Adjacency: a})
		}
		g.AddNode(u)
		return nil
	})
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	bigraph.AddMirrorNodes(g)
	for _, l := range links {
		if l.To >= n {
			return nil, fmt.Errorf("record %d: %s: %w", l.from, l.Adjacency, dbg.ErrIncompleteAdjacency)
		}
		from, to := bigraph.NodeID(l.from), bigraph.NodeID(l.To)
		if !l.FromSide {
			from, _ = g.MirrorNode(from)
		}
		if !l.ToSide {
			to, _ = g.MirrorNode(to)
		}
		g.AddEdge(from, to, bigraph.Unit{})
	}
	if err := bigraph.AddNodeCentricMirrorEdges(g); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadNodeCentricFile is ReadNodeCentric on a path; see fasta.Open.
func ReadNodeCentricFile(ctx context.Context, path string) (*NodeGraph, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	g, err := ReadNodeCentric(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
