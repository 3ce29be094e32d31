package bcalm2

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"dbgraph/core/bigraph"
	"dbgraph/core/fasta"
)

// token is one L: entry as written.
type token struct {
	side   bool
	id     int
	toSide bool
}

func (t token) String() string {
	return "L:" + sign(t.side) + ":" + strconv.Itoa(t.id) + ":" + sign(t.toSide)
}

func sign(b bool) string {
	if b {
		return "+"
	}
	return "-"
}

// sortTokens orders by neighbour id, '-' before '+'.
func sortTokens(ts []token) {
	slices.SortFunc(ts, func(a, b token) int {
		if c := cmp.Compare(a.id, b.id); c != 0 {
			return c
		}
		switch {
		case a.toSide == b.toSide:
			return 0
		case !a.toSide:
			return -1
		default:
			return 1
		}
	})
}

// description renders the header parameters: LN, KC, km, then the '+' links
// followed by the '-' links.
func description(u Unitig, plus, minus []token) string {
	var parts []string
	if u.Length != nil {
		parts = append(parts, "LN:i:"+strconv.Itoa(*u.Length))
	}
	if u.TotalAbundance != nil {
		parts = append(parts, "KC:i:"+strconv.Itoa(*u.TotalAbundance))
	}
	if u.MeanAbundance != nil {
		parts = append(parts, fmt.Sprintf("km:f:%.1f", *u.MeanAbundance))
	}
	sortTokens(plus)
	sortTokens(minus)
	for _, t := range plus {
		parts = append(parts, t.String())
	}
	for _, t := range minus {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}

// WriteEdgeCentric writes one record per mirror pair of edges: the pair
// member with the lower index is written, reverse complemented if it is the
// backward strand.
func WriteEdgeCentric(w io.Writer, g *EdgeGraph) error {
	n := g.EdgeCount()
	mirrors := make([]bigraph.EdgeID, n)
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		m, ok := bigraph.MirrorEdge(g, bigraph.EdgeID(i))
		if !ok {
			return fmt.Errorf("edge %d: %w", i, ErrEdgeWithoutMirror)
		}
		mirrors[i] = m
		if !out[m] {
			out[i] = true
		}
	}

	links := func(side bool, at bigraph.NodeID) []token {
		var ts []token
		for _, nb := range g.OutNeighbors(at) {
			e := nb.Edge
			if !out[e] {
				e = mirrors[e]
			}
			ts = append(ts, token{side: side, id: g.EdgeData(e).ID, toSide: out[nb.Edge]})
		}
		return ts
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		if !out[i] {
			continue
		}
		e := bigraph.EdgeID(i)
		u := g.EdgeData(e)
		plus := links(true, g.Endpoints(e).To)
		minus := links(false, g.Endpoints(mirrors[i]).To)
		rec := fasta.Record{ID: strconv.Itoa(u.ID), Desc: description(u, plus, minus), Seq: u.Sequence()}
		if err := fasta.WriteRecord(bw, rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteNodeCentric writes one record per mirror pair of nodes, taking the
// pair member with the lower index.
func WriteNodeCentric(w io.Writer, g *NodeGraph) error {
	n := g.NodeCount()
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		m, ok := g.MirrorNode(bigraph.NodeID(i))
		if !ok {
			return fmt.Errorf("node %d: %w", i, ErrNodeWithoutMirror)
		}
		if !out[m] {
			out[i] = true
		}
	}

	links := func(side bool, at bigraph.NodeID) []token {
		var ts []token
		for _, nb := range g.OutNeighbors(at) {
			to := nb.Node
			if !out[to] {
				to, _ = g.MirrorNode(to)
			}
			ts = append(ts, token{side: side, id: g.NodeData(to).ID, toSide: out[nb.Node]})
		}
		return ts
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		if !out[i] {
			continue
		}
		v := bigraph.NodeID(i)
		m, _ := g.MirrorNode(v)
		u := g.NodeData(v)
		rec := fasta.Record{ID: strconv.Itoa(u.ID), Desc: description(u, links(true, v), links(false, m)), Seq: u.Sequence()}
		if err := fasta.WriteRecord(bw, rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}
