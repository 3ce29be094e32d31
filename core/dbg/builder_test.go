package dbg

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbgraph/core/bigraph"
)

func build(t *testing.T, recs []Record[unitig], opts ...Option) (*bigraph.Graph[bigraph.Unit, unitig], Stats) {
	t.Helper()
	g, st, err := BuildGraph[unitig](context.Background(), NewSliceSource(recs), opts...)
	require.NoError(t, err)
	require.NoError(t, g.VerifyNodePairing())
	require.NoError(t, bigraph.VerifyEdgeMirrorProperty(g))
	return g, st
}

func TestBuild_Path(t *testing.T) {
	g, st := build(t, path0to2())
	assert.Equal(t, 8, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, Stats{Records: 3, Nodes: 8, Edges: 6}, st)

	// Consecutive unitigs share the node between them.
	e0 := g.Endpoints(0)
	e1 := g.Endpoints(2)
	assert.Equal(t, e0.To, e1.From)
}

func TestBuild_Cycle(t *testing.T) {
	g, st := build(t, cycle0to2())
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, 3, st.Records)

	// Forward edges are emitted at indices 0, 2, 4 and form a cycle.
	assert.Equal(t, g.Endpoints(0).To, g.Endpoints(2).From)
	assert.Equal(t, g.Endpoints(2).To, g.Endpoints(4).From)
	assert.Equal(t, g.Endpoints(4).To, g.Endpoints(0).From)
}

func TestBuild_EdgePairPerRecord(t *testing.T) {
	g, _ := build(t, cycle0to2())
	for i := 0; i < g.EdgeCount(); i += 2 {
		fwd := g.EdgeData(bigraph.EdgeID(i))
		bwd := g.EdgeData(bigraph.EdgeID(i + 1))
		assert.True(t, fwd.fwd)
		assert.True(t, bwd.Equal(fwd.Mirror()))
		m, ok := bigraph.MirrorEdge(g, bigraph.EdgeID(i))
		require.True(t, ok)
		assert.Equal(t, bigraph.EdgeID(i+1), m)
	}
}

func TestBuild_ParallelEdgesKept(t *testing.T) {
	g, st := build(t, multi())
	assert.Equal(t, 4, st.Nodes)
	assert.Equal(t, 6, st.Edges)
	e := g.Endpoints(0)
	assert.Len(t, g.EdgesBetween(e.From, e.To), 2)
}

func TestBuild_SelfComplementalAlone(t *testing.T) {
	g, st := build(t, []Record[unitig]{rec(0, "ACGT", 3)})
	// One node pair shared by both endpoints.
	assert.Equal(t, 2, g.NodeCount())
	e := g.Endpoints(0)
	m, _ := g.MirrorNode(e.From)
	assert.Equal(t, m, e.To)
	assert.Equal(t, 1, st.SelfMirrorEdges)
}

func TestBuild_SelfMirrorNode(t *testing.T) {
	g, st := build(t, []Record[unitig]{rec(0, "CAT", 3, L(minus, 0, plus))})
	assert.Equal(t, 1, st.SelfMirrorNodes)
	assert.Equal(t, 3, g.NodeCount())
	assert.True(t, g.IsSelfMirrorNode(g.Endpoints(0).From))
}

func TestBuild_PrepopulatedContainer(t *testing.T) {
	g := bigraph.New[bigraph.Unit, unitig]()
	pre := g.AddNode(bigraph.Unit{})
	g.SetMirrorNodes(pre, pre)
	a := g.AddNode(bigraph.Unit{})
	b := g.AddNode(bigraph.Unit{})
	g.SetMirrorNodes(a, b)

	recs := []Record[unitig]{rec(0, "CAT", 3, L(minus, 0, plus))}
	st, err := NewBuilder[bigraph.Unit, unitig]().Build(context.Background(), g, NewSliceSource(recs))
	require.NoError(t, err)

	// Only the build's own allocations are counted.
	assert.Equal(t, 3, st.Nodes)
	assert.Equal(t, 1, st.SelfMirrorNodes)
	assert.Equal(t, 6, g.NodeCount())
	assert.True(t, g.IsSelfMirrorNode(g.Endpoints(0).From))
}

func TestBuild_SelfMirrorNodeAndEdge(t *testing.T) {
	recs := []Record[unitig]{
		rec(0, "ATTAT", 3,
			L(plus, 0, minus), L(plus, 0, plus), L(plus, 1, plus), L(plus, 2, minus),
			L(minus, 0, minus), L(minus, 0, plus), L(minus, 1, plus), L(minus, 2, minus)),
		rec(1, "ATGTC", 3, L(minus, 0, minus), L(minus, 0, plus), L(minus, 1, plus), L(minus, 2, minus)),
		rec(2, "GGAT", 3, L(plus, 0, minus), L(plus, 0, plus), L(plus, 1, plus), L(plus, 2, minus)),
	}
	g, st := build(t, recs, WithValidation(true))
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 1, st.SelfMirrorNodes)
	assert.Equal(t, 6, g.EdgeCount())
}

func TestBuild_IncompleteAdjacency(t *testing.T) {
	recs := []Record[unitig]{rec(0, "AGT", 3, L(plus, 1, plus))}
	_, _, err := BuildGraph[unitig](context.Background(), NewSliceSource(recs))
	require.ErrorIs(t, err, ErrIncompleteAdjacency)

	_, st, err := BuildGraph[unitig](context.Background(), NewSliceSource(recs), WithCompletenessCheck(false))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Records)
}

func TestBuild_MissingRecordBothSidesReferenced(t *testing.T) {
	// Record 1 is referenced from both faces, so all slots get mapped; the
	// gap is still reported.
	recs := []Record[unitig]{
		rec(0, "AGT", 3, L(plus, 1, plus), L(minus, 1, minus)),
		rec(2, "AGT", 3),
	}
	_, _, err := BuildGraph[unitig](context.Background(), NewSliceSource(recs))
	require.ErrorIs(t, err, ErrIncompleteAdjacency)
}

func TestBuild_ValidationRejects(t *testing.T) {
	gap := []Record[unitig]{rec(0, "AGT", 3), rec(2, "AGT", 3)}
	_, _, err := BuildGraph[unitig](context.Background(), NewSliceSource(gap), WithValidation(true))
	require.ErrorIs(t, err, ErrNonConsecutiveID)

	oneWay := []Record[unitig]{rec(0, "AGT", 3, L(plus, 1, plus)), rec(1, "GTC", 3)}
	_, _, err = BuildGraph[unitig](context.Background(), NewSliceSource(oneWay), WithValidation(true))
	require.ErrorIs(t, err, ErrAsymmetricAdjacency)
}

func TestBuild_MaxRecordID(t *testing.T) {
	recs := []Record[unitig]{rec(0, "AGT", 3, L(plus, 100, plus))}
	_, _, err := BuildGraph[unitig](context.Background(), NewSliceSource(recs), WithMaxRecordID(10))
	require.ErrorIs(t, err, ErrRecordIDOutOfRange)
}

func TestBuild_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := BuildGraph[unitig](ctx, NewSliceSource(path0to2()))
	require.ErrorIs(t, err, context.Canceled)
}

type failingSource struct{}

func (failingSource) Next() (Record[unitig], error) { return Record[unitig]{}, errors.New("boom") }

func TestBuild_SourceErrorPropagates(t *testing.T) {
	_, _, err := BuildGraph[unitig](context.Background(), failingSource{})
	require.EqualError(t, err, "boom")
}

// plainNode is a caller-side node-centric unitig for the generic converter.
type plainNode struct {
	id    int
	edges []Adjacency
}

func (n plainNode) ID() int                  { return n.id }
func (n plainNode) IsSelfComplemental() bool { return false }
func (n plainNode) Edges() []Adjacency       { return n.edges }
func (n plainNode) Mirror() plainNode        { return plainNode{id: -n.id - 1, edges: n.edges} }
func (n plainNode) Equal(o plainNode) bool   { return n.id == o.id }

func TestBuild_FromNodes(t *testing.T) {
	nodes := []plainNode{
		{id: 0, edges: []Adjacency{L(plus, 1, plus)}},
		{id: 1, edges: []Adjacency{L(minus, 0, minus)}},
	}
	g, st, err := BuildGraph[plainNode](context.Background(), FromNodes(nodes))
	require.NoError(t, err)
	assert.Equal(t, 6, st.Nodes)
	assert.Equal(t, 4, g.EdgeCount())
	require.NoError(t, bigraph.VerifyEdgeMirrorProperty(g))
	assert.Equal(t, 1, g.EdgeData(2).ID())
}
