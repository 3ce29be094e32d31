// Package dot exports bidirected graphs as graphviz digraphs for inspection.
package dot

import (
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"dbgraph/core/bcalm2"
	"dbgraph/core/bigraph"
)

const graphName = "G"

func newGraph() (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}
	if err := g.SetStrict(false); err != nil {
		return nil, err
	}
	return g, nil
}

func nodeName(n bigraph.NodeID) string { return "n" + strconv.Itoa(int(n)) }

func quote(s string) string { return "\"" + s + "\"" }

func strand(forwards bool) string {
	if forwards {
		return "+"
	}
	return "-"
}

// nodeAttrs labels n with its mirror; self-mirror nodes are drawn as octagons.
func nodeAttrs[N, E any](g *bigraph.Graph[N, E], n bigraph.NodeID, label string) map[string]string {
	attr := map[string]string{"shape": "box"}
	m, ok := g.MirrorNode(n)
	switch {
	case !ok:
		attr["color"] = "red"
	case m == n:
		attr["shape"] = "doubleoctagon"
	}
	if ok {
		label += " ~" + strconv.Itoa(int(m))
	}
	attr["label"] = quote(label)
	return attr
}

// WriteEdgeCentric renders g with one dot edge per graph edge, labelled with
// the unitig id and strand. Backward strands are dashed.
func WriteEdgeCentric(w io.Writer, g *bcalm2.EdgeGraph) error {
	out, err := newGraph()
	if err != nil {
		return err
	}
	for i := 0; i < g.NodeCount(); i++ {
		n := bigraph.NodeID(i)
		if err := out.AddNode(graphName, nodeName(n), nodeAttrs(g, n, strconv.Itoa(i))); err != nil {
			return err
		}
	}
	for i := 0; i < g.EdgeCount(); i++ {
		e := bigraph.EdgeID(i)
		ep := g.Endpoints(e)
		u := g.EdgeData(e)
		attr := map[string]string{
			"label": quote(strconv.Itoa(u.ID) + strand(u.Forwards) + " len:" + strconv.Itoa(len(u.Seq))),
		}
		if !u.Forwards {
			attr["style"] = "dashed"
		}
		if err := out.AddEdge(nodeName(ep.From), nodeName(ep.To), true, attr); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, out.String())
	return err
}

// WriteNodeCentric renders g with one dot node per unitig strand.
func WriteNodeCentric(w io.Writer, g *bcalm2.NodeGraph) error {
	out, err := newGraph()
	if err != nil {
		return err
	}
	for i := 0; i < g.NodeCount(); i++ {
		n := bigraph.NodeID(i)
		u := g.NodeData(n)
		attr := nodeAttrs(g, n, strconv.Itoa(u.ID)+strand(u.Forwards))
		if !u.Forwards {
			attr["style"] = "dashed"
		}
		if err := out.AddNode(graphName, nodeName(n), attr); err != nil {
			return err
		}
	}
	for i := 0; i < g.EdgeCount(); i++ {
		ep := g.Endpoints(bigraph.EdgeID(i))
		if err := out.AddEdge(nodeName(ep.From), nodeName(ep.To), true, nil); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, out.String())
	return err
}
