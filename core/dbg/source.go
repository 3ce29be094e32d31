package dbg

import "io"

// Source yields records in arrival order and returns io.EOF when drained.
// Adjacency order must be reproducible: it decides which neighbour the
// resolver adopts an identity from.
type Source[E any] interface {
	Next() (Record[E], error)
}

// SliceSource serves records from memory.
type SliceSource[E any] struct {
	recs []Record[E]
	pos  int
}

func NewSliceSource[E any](recs []Record[E]) *SliceSource[E] {
	return &SliceSource[E]{recs: recs}
}

func (s *SliceSource[E]) Next() (Record[E], error) {
	if s.pos >= len(s.recs) {
		return Record[E]{}, io.EOF
	}
	r := s.recs[s.pos]
	s.pos++
	return r, nil
}

// Collect drains src into a slice.
func Collect[E any](src Source[E]) ([]Record[E], error) {
	var out []Record[E]
	for {
		r, err := src.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
}

// Node is a caller-defined node-centric unitig that can be converted to the
// edge-centric form.
type Node interface {
	ID() int
	IsSelfComplemental() bool
	Edges() []Adjacency
}

// NodeSource adapts a list of Node values; each node becomes the payload of
// its own record.
type NodeSource[T Node] struct {
	nodes []T
	pos   int
}

func FromNodes[T Node](nodes []T) *NodeSource[T] {
	return &NodeSource[T]{nodes: nodes}
}

func (s *NodeSource[T]) Next() (Record[T], error) {
	if s.pos >= len(s.nodes) {
		return Record[T]{}, io.EOF
	}
	n := s.nodes[s.pos]
	s.pos++
	return Record[T]{
		ID:               n.ID(),
		Adjacency:        n.Edges(),
		SelfComplemental: n.IsSelfComplemental(),
		Payload:          n,
	}, nil
}
