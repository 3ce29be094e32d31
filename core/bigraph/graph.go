// Package bigraph is an index-based bidirected multigraph.
//
// Every node has a mirror node (its reverse complement); a node may be its own
// mirror. Handles are dense indices that stay valid for the lifetime of the
// graph since nothing is ever removed.
package bigraph

import (
	"errors"
	"fmt"
)

type (
	NodeID int
	EdgeID int
)

// NoNode marks a node whose mirror has not been registered yet.
const NoNode NodeID = -1

var (
	ErrNodeNotPaired   = errors.New("node without mirror")
	ErrEdgeNotMirrored = errors.New("edge without mirror")
)

// Bidirected is data that has a reverse complement counterpart.
type Bidirected[T any] interface {
	Mirror() T
	Equal(T) bool
}

// Unit is the empty payload for graphs that carry data on only one side.
type Unit struct{}

func (Unit) Mirror() Unit    { return Unit{} }
func (Unit) Equal(Unit) bool { return true }

// Edge holds the endpoints of a directed edge.
type Edge struct {
	From NodeID
	To   NodeID
}

// Neighbor is one out-edge together with the node it points to.
type Neighbor struct {
	Edge EdgeID
	Node NodeID
}

type node[N any] struct {
	data   N
	mirror NodeID
	out    []EdgeID
}

type edge[E any] struct {
	Edge
	data E
}

// Graph stores node data N and edge data E. The zero value is not usable; call New.
type Graph[N, E any] struct {
	nodes []node[N]
	edges []edge[E]
}

func New[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{}
}

func (g *Graph[N, E]) AddNode(data N) NodeID {
	g.nodes = append(g.nodes, node[N]{data: data, mirror: NoNode})
	return NodeID(len(g.nodes) - 1)
}

// AddEdge appends a directed edge. Parallel edges are kept.
func (g *Graph[N, E]) AddEdge(from, to NodeID, data E) EdgeID {
	g.mustNode(from)
	g.mustNode(to)
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, edge[E]{Edge: Edge{From: from, To: to}, data: data})
	g.nodes[from].out = append(g.nodes[from].out, id)
	return id
}

// SetMirrorNodes registers a and b as mirrors of each other; a == b marks a
// self-mirror node.
func (g *Graph[N, E]) SetMirrorNodes(a, b NodeID) {
	g.mustNode(a)
	g.mustNode(b)
	g.nodes[a].mirror = b
	g.nodes[b].mirror = a
}

func (g *Graph[N, E]) MirrorNode(n NodeID) (NodeID, bool) {
	if !g.validNode(n) || g.nodes[n].mirror == NoNode {
		return NoNode, false
	}
	return g.nodes[n].mirror, true
}

func (g *Graph[N, E]) IsSelfMirrorNode(n NodeID) bool {
	m, ok := g.MirrorNode(n)
	return ok && m == n
}

func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }

func (g *Graph[N, E]) NodeData(n NodeID) N { return g.nodes[n].data }
func (g *Graph[N, E]) EdgeData(e EdgeID) E { return g.edges[e].data }

func (g *Graph[N, E]) Endpoints(e EdgeID) Edge { return g.edges[e].Edge }

// OutNeighbors lists the out-edges of n in insertion order.
func (g *Graph[N, E]) OutNeighbors(n NodeID) []Neighbor {
	out := make([]Neighbor, 0, len(g.nodes[n].out))
	for _, e := range g.nodes[n].out {
		out = append(out, Neighbor{Edge: e, Node: g.edges[e].To})
	}
	return out
}

// EdgesBetween lists the edges from -> to in insertion order.
func (g *Graph[N, E]) EdgesBetween(from, to NodeID) []EdgeID {
	var out []EdgeID
	for _, e := range g.nodes[from].out {
		if g.edges[e].To == to {
			out = append(out, e)
		}
	}
	return out
}

// VerifyNodePairing checks that every node has a mirror and that mirroring
// twice is the identity.
func (g *Graph[N, E]) VerifyNodePairing() error {
	for i := range g.nodes {
		n := NodeID(i)
		m, ok := g.MirrorNode(n)
		if !ok {
			return fmt.Errorf("node %d: %w", n, ErrNodeNotPaired)
		}
		if mm, _ := g.MirrorNode(m); mm != n {
			return fmt.Errorf("node %d: mirror %d maps back to %d: %w", n, m, mm, ErrNodeNotPaired)
		}
	}
	return nil
}

func (g *Graph[N, E]) validNode(n NodeID) bool {
	return n >= 0 && int(n) < len(g.nodes)
}

func (g *Graph[N, E]) mustNode(n NodeID) {
	if !g.validNode(n) {
		panic(fmt.Sprintf("bigraph: node %d out of range [0,%d)", n, len(g.nodes)))
	}
}
