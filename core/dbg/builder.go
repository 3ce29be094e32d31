package dbg

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"dbgraph/core/bigraph"
)

// Stats summarizes one build.
type Stats struct {
	Records         int
	Nodes           int
	Edges           int
	SelfMirrorNodes int
	// SelfMirrorEdges counts records whose forward edge ends on the mirror of
	// its start node.
	SelfMirrorEdges int
}

// Builder turns a record stream into an edge-centric bidirected graph using
// adjacency propagation.
type Builder[N any, E bigraph.Bidirected[E]] struct {
	opts options
}

func NewBuilder[N any, E bigraph.Bidirected[E]](opts ...Option) *Builder[N, E] {
	return &Builder[N, E]{opts: applyOptions(opts)}
}

// Build reads src to the end and writes nodes and edges into c. On error the
// container holds a partial graph and must be discarded.
func (b *Builder[N, E]) Build(ctx context.Context, c Container[N, E], src Source[E]) (st Stats, err error) {
	buildID := uuid.NewString()
	log := b.opts.logger.With("build_id", buildID, "strategy", StrategyPropagate)
	ctx, span := startBuildSpan(ctx, "dbg.Build", StrategyPropagate, buildID)
	start := time.Now()
	defer func() {
		setBuildSpanResult(span, st, err)
		span.End()
		recordBuildMetrics(ctx, StrategyPropagate, time.Since(start), st, err == nil)
	}()
	log.Debug("build started", "validate", b.opts.validate)

	if b.opts.validate {
		recs, err := Collect(src)
		if err != nil {
			return st, err
		}
		if err := Validate(recs); err != nil {
			return st, err
		}
		src = NewSliceSource(recs)
	}

	res := NewResolver(c, b.opts.maxRecordID)
	var seen []bool
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

		head, tail, err := b.resolveRecord(res, rec)
		if err != nil {
			return st, err
		}
		headF, headB := head.Handles()
		tailF, tailB := tail.Handles()
		c.AddEdge(headF, tailF, rec.Payload)
		c.AddEdge(tailB, headB, rec.Payload.Mirror())

		st.Records++
		st.Edges += 2
		if tailF == headB {
			st.SelfMirrorEdges++
		}
		for rec.ID >= len(seen) {
			seen = append(seen, false)
		}
		seen[rec.ID] = true
	}

	st.Nodes = res.Allocated()
	st.SelfMirrorNodes = res.SelfMirrorAllocated()
	if b.opts.checkComplete {
		if err := checkComplete(res, seen); err != nil {
			return st, err
		}
	}
	log.Info("build finished",
		"records", st.Records, "nodes", st.Nodes, "edges", st.Edges,
		"self_mirror_nodes", st.SelfMirrorNodes, "self_mirror_edges", st.SelfMirrorEdges)
	return st, nil
}

func (b *Builder[N, E]) resolveRecord(res *Resolver[N, E], rec Record[E]) (head, tail MappedNode, err error) {
	head = res.Lookup(HeadOf(rec.ID))
	if !head.IsMapped() {
		if head, err = res.Resolve(HeadOf(rec.ID), rec); err != nil {
			return head, tail, err
		}
	}
	tail = res.Lookup(TailOf(rec.ID))
	if !tail.IsMapped() {
		if tail, err = res.Resolve(TailOf(rec.ID), rec); err != nil {
			return head, tail, err
		}
	}
	return head, tail, nil
}

func checkComplete[N, E any](res *Resolver[N, E], seen []bool) error {
	if un := res.Unresolved(); len(un) > 0 {
		return fmt.Errorf("%d endpoints unmapped, first %s: %w", len(un), un[0], ErrIncompleteAdjacency)
	}
	for id, ok := range seen {
		if !ok {
			return fmt.Errorf("record %d referenced but never read: %w", id, ErrIncompleteAdjacency)
		}
	}
	if n := len(seen); 2*n < len(res.slots) {
		return fmt.Errorf("record %d referenced but never read: %w", n, ErrIncompleteAdjacency)
	}
	return nil
}

// BuildGraph builds into a fresh graph with empty node data.
func BuildGraph[E bigraph.Bidirected[E]](ctx context.Context, src Source[E], opts ...Option) (*bigraph.Graph[bigraph.Unit, E], Stats, error) {
	g := bigraph.New[bigraph.Unit, E]()
	st, err := NewBuilder[bigraph.Unit, E](opts...).Build(ctx, g, src)
	return g, st, err
}
