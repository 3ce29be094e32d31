package bcalm2

import (
	"io"

	"dbgraph/core/dbg"
	"dbgraph/core/fasta"
	"dbgraph/core/seq"
)

// Source adapts a bcalm2 FASTA stream to dbg.Source. k is the k-mer size the
// unitigs were built with; it decides whether a unitig's (k-1)-boundary is
// self-complemental.
type Source struct {
	rd *fasta.Reader
	k  int
}

func NewSource(r io.Reader, k int) *Source {
	return &Source{rd: fasta.NewReader(r), k: k}
}

func (s *Source) Next() (dbg.Record[Unitig], error) {
	fr, err := s.rd.Read()
	if err != nil {
		return dbg.Record[Unitig]{}, err
	}
	u, err := ParseRecord(fr)
	if err != nil {
		return dbg.Record[Unitig]{}, err
	}
	return ToRecord(u, s.k), nil
}

// ToRecord wraps u for the builders.
func ToRecord(u Unitig, k int) dbg.Record[Unitig] {
	return dbg.Record[Unitig]{
		ID:               u.ID,
		Adjacency:        u.Adjacency,
		SelfComplemental: seq.BoundaryIsSelfMirror(u.Seq, k),
		Payload:          u,
	}
}
