package dbg

import (
	"dbgraph/core/seq"
)

// unitig is a minimal payload: record id plus strand.
type unitig struct {
	id  int
	seq string
	fwd bool
}

func (u unitig) Mirror() unitig {
	u.fwd = !u.fwd
	return u
}

func (u unitig) Equal(o unitig) bool { return u.id == o.id && u.fwd == o.fwd }

func (u unitig) Sequence() []byte {
	if u.fwd {
		return []byte(u.seq)
	}
	return seq.RevComp([]byte(u.seq))
}

func L(from bool, to int, toSide bool) Adjacency {
	return Adjacency{FromSide: from, To: to, ToSide: toSide}
}

func rec(id int, s string, k int, adj ...Adjacency) Record[unitig] {
	b := []byte(s)
	return Record[unitig]{
		ID:               id,
		Adjacency:        adj,
		SelfComplemental: seq.IsSelfComplemental(b) || seq.BoundaryIsSelfMirror(b, k),
		Payload:          unitig{id: id, seq: s, fwd: true},
	}
}

const (
	plus  = true
	minus = false
)

// path0to2 is 0 -> 1 -> 2, four distinct boundaries.
func path0to2() []Record[unitig] {
	return []Record[unitig]{
		rec(0, "AGT", 3, L(plus, 1, plus)),
		rec(1, "GTCC", 3, L(minus, 0, minus), L(plus, 2, plus)),
		rec(2, "CCAA", 3, L(minus, 1, minus)),
	}
}

// cycle0to2 closes 0 -> 1 -> 2 -> 0, three distinct boundaries.
func cycle0to2() []Record[unitig] {
	return []Record[unitig]{
		rec(0, "AGT", 3, L(plus, 1, plus), L(minus, 2, minus)),
		rec(1, "GTCC", 3, L(minus, 0, minus), L(plus, 2, plus)),
		rec(2, "CCAG", 3, L(minus, 1, minus), L(plus, 0, plus)),
	}
}

// multi has two unitigs between the same pair of nodes.
func multi() []Record[unitig] {
	return []Record[unitig]{
		rec(0, "AGTTCTC", 3, L(plus, 2, plus), L(minus, 2, minus)),
		rec(1, "AGTCTCGGGTAATC", 3, L(plus, 2, plus), L(minus, 2, minus)),
		rec(2, "TCGAAG", 3, L(plus, 0, plus), L(plus, 1, plus), L(minus, 0, minus), L(minus, 1, minus)),
	}
}
