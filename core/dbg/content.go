package dbg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"dbgraph/core/bigraph"
	"dbgraph/core/seq"
)

// Sequenced is an edge payload that exposes the unitig sequence in the
// orientation it is read.
type Sequenced[E any] interface {
	bigraph.Bidirected[E]
	Sequence() []byte
}

// BuildByContent builds the same graph as Builder but keys nodes by the
// (k-1)-mer at each end of a unitig. A (k-1)-mer equal to its own reverse
// complement becomes a self-mirror node. Adjacency lists are ignored except
// by the optional validation pass.
func BuildByContent[N any, E Sequenced[E]](ctx context.Context, c Container[N, E], src Source[E], k int, opts ...Option) (st Stats, err error) {
	o := applyOptions(opts)
	buildID := uuid.NewString()
	log := o.logger.With("build_id", buildID, "strategy", StrategyContent)
	ctx, span := startBuildSpan(ctx, "dbg.BuildByContent", StrategyContent, buildID)
	start := time.Now()
	defer func() {
		setBuildSpanResult(span, st, err)
		span.End()
		recordBuildMetrics(ctx, StrategyContent, time.Since(start), st, err == nil)
	}()

	if k < 2 {
		return st, fmt.Errorf("k=%d: %w", k, ErrInvalidKmerSize)
	}
	log.Debug("build started", "k", k, "validate", o.validate)
	if o.validate {
		recs, err := Collect(src)
		if err != nil {
			return st, err
		}
		if err := Validate(recs); err != nil {
			return st, err
		}
		src = NewSliceSource(recs)
	}

	ids := make(map[string]bigraph.NodeID)
	node := func(kmer []byte) bigraph.NodeID {
		if n, ok := ids[string(kmer)]; ok {
			return n
		}
		var zero N
		n := c.AddNode(zero)
		st.Nodes++
		rc := seq.RevComp(kmer)
		if bytes.Equal(rc, kmer) {
			c.SetMirrorNodes(n, n)
			st.SelfMirrorNodes++
		} else {
			m := c.AddNode(zero)
			st.Nodes++
			ids[string(rc)] = m
			c.SetMirrorNodes(n, m)
		}
		ids[string(kmer)] = n
		return n
	}

	w := k - 1
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, err
		}
		s := rec.Payload.Sequence()
		if len(s) < w {
			return st, fmt.Errorf("record %d: length %d, k=%d: %w", rec.ID, len(s), k, ErrSequenceTooShort)
		}
		prefix, suffix := s[:w], s[len(s)-w:]
		prePlus := node(prefix)
		preMinus := node(seq.RevComp(suffix))
		succPlus := node(suffix)
		succMinus := node(seq.RevComp(prefix))

		c.AddEdge(prePlus, succPlus, rec.Payload)
		c.AddEdge(preMinus, succMinus, rec.Payload.Mirror())
		st.Records++
		st.Edges += 2
		if m, _ := c.MirrorNode(prePlus); m == succPlus {
			st.SelfMirrorEdges++
		}
	}
	log.Info("build finished",
		"records", st.Records, "nodes", st.Nodes, "edges", st.Edges,
		"self_mirror_nodes", st.SelfMirrorNodes, "self_mirror_edges", st.SelfMirrorEdges)
	return st, nil
}

// BuildGraphByContent is BuildByContent into a fresh graph.
func BuildGraphByContent[E Sequenced[E]](ctx context.Context, src Source[E], k int, opts ...Option) (*bigraph.Graph[bigraph.Unit, E], Stats, error) {
	g := bigraph.New[bigraph.Unit, E]()
	st, err := BuildByContent[bigraph.Unit, E](ctx, g, src, k, opts...)
	return g, st, err
}
