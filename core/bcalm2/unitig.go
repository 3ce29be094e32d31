package bcalm2

import (
	"dbgraph/core/bigraph"
	"dbgraph/core/dbg"
	"dbgraph/core/seq"
)

// Unitig is one parsed bcalm2 record. In a graph it is either a node
// (node-centric) or an edge (edge-centric); its mirror is the same unitig
// read on the reverse strand.
type Unitig struct {
	ID int
	// Seq is the sequence as read from the file, regardless of Forwards.
	Seq      []byte
	Forwards bool

	Length         *int
	TotalAbundance *int
	MeanAbundance  *float64

	Adjacency []dbg.Adjacency
}

func (u Unitig) Mirror() Unitig {
	u.Forwards = !u.Forwards
	return u
}

// Equal compares identity and strand only.
func (u Unitig) Equal(o Unitig) bool {
	return u.ID == o.ID && u.Forwards == o.Forwards
}

// Sequence returns the sequence in the unitig's orientation.
func (u Unitig) Sequence() []byte {
	if u.Forwards {
		return u.Seq
	}
	return seq.RevComp(u.Seq)
}

type (
	// EdgeGraph carries unitigs on edges.
	EdgeGraph = bigraph.Graph[bigraph.Unit, Unitig]
	// NodeGraph carries unitigs on nodes.
	NodeGraph = bigraph.Graph[Unitig, bigraph.Unit]
)
