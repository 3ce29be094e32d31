package dbg

import "fmt"

// DefaultMaxRecordID bounds the endpoint arena so a malformed id cannot
// trigger a huge allocation.
const DefaultMaxRecordID = 1 << 26

// Resolver maps virtual endpoints to graph nodes. Each endpoint slot is
// written once; a fresh identity is copied into the slots of all neighbours
// that are still unmapped, so a neighbour record visited later finds it.
type Resolver[N, E any] struct {
	c         Container[N, E]
	slots     []MappedNode
	maxID      int
	allocated  int
	selfMirror int
}

func NewResolver[N, E any](c Container[N, E], maxRecordID int) *Resolver[N, E] {
	if maxRecordID <= 0 {
		maxRecordID = DefaultMaxRecordID
	}
	return &Resolver[N, E]{c: c, maxID: maxRecordID}
}

// Lookup returns the identity of ep, Unmapped if unknown.
func (r *Resolver[N, E]) Lookup(ep Endpoint) MappedNode {
	if ep < 0 || int(ep) >= len(r.slots) {
		return MappedNode{}
	}
	return r.slots[ep]
}

// Allocated is the number of container nodes created so far.
func (r *Resolver[N, E]) Allocated() int { return r.allocated }

// SelfMirrorAllocated is the number of self-mirror nodes created so far.
func (r *Resolver[N, E]) SelfMirrorAllocated() int { return r.selfMirror }

// Resolve assigns ep an identity. The tail of a self-complemental record is
// the mirror of its head; otherwise the first mapped neighbour along ep's side
// wins, in adjacency order, and a new node (pair) is allocated if none is.
func (r *Resolver[N, E]) Resolve(ep Endpoint, rec Record[E]) (MappedNode, error) {
	if ep.Record() != rec.ID {
		return MappedNode{}, fmt.Errorf("endpoint %s, record %d: %w", ep, rec.ID, ErrForeignEndpoint)
	}
	if err := r.reserve(rec.ID); err != nil {
		return MappedNode{}, err
	}
	if r.slots[ep].IsMapped() {
		return MappedNode{}, fmt.Errorf("endpoint %s: %w", ep, ErrEndpointResolved)
	}
	side := ep.Side()
	for _, a := range rec.Adjacency {
		if a.FromSide == side {
			if err := r.reserve(a.To); err != nil {
				return MappedNode{}, err
			}
		}
	}

	var val MappedNode
	if side && rec.SelfComplemental {
		head := r.slots[HeadOf(rec.ID)]
		if !head.IsMapped() {
			return MappedNode{}, fmt.Errorf("record %d: %w", rec.ID, ErrHeadUnresolved)
		}
		val = head.Mirror()
	} else {
		for _, a := range rec.Adjacency {
			if a.FromSide != side {
				continue
			}
			if m := r.slots[a.Target()]; m.IsMapped() {
				val = orient(m, a, side)
				break
			}
		}
		if !val.IsMapped() {
			selfMirror := rec.HeadSelfMirror()
			if side {
				selfMirror = rec.TailSelfMirror()
			}
			val = r.allocate(selfMirror)
		}
	}

	r.slots[ep] = val
	for _, a := range rec.Adjacency {
		if a.FromSide != side {
			continue
		}
		if t := a.Target(); !r.slots[t].IsMapped() {
			r.slots[t] = orient(val, a, side)
		}
	}
	return val, nil
}

// Unresolved lists endpoints that are still unmapped.
func (r *Resolver[N, E]) Unresolved() []Endpoint {
	var out []Endpoint
	for i, m := range r.slots {
		if !m.IsMapped() {
			out = append(out, Endpoint(i))
		}
	}
	return out
}

// orient converts an identity seen from ep's side into the identity of the
// neighbour endpoint (and back): crossing to the other face mirrors it.
func orient(m MappedNode, a Adjacency, side bool) MappedNode {
	if a.ToSide != side {
		return m.Mirror()
	}
	return m
}

func (r *Resolver[N, E]) allocate(selfMirror bool) MappedNode {
	var zero N
	if selfMirror {
		n := r.c.AddNode(zero)
		r.c.SetMirrorNodes(n, n)
		r.allocated++
		r.selfMirror++
		return SelfMirrorNode(n)
	}
	f := r.c.AddNode(zero)
	b := r.c.AddNode(zero)
	r.c.SetMirrorNodes(f, b)
	r.allocated += 2
	return NormalNode(f, b)
}

// reserve grows the arena to hold both endpoints of record id.
func (r *Resolver[N, E]) reserve(id int) error {
	if id < 0 || id > r.maxID {
		return fmt.Errorf("record %d (max %d): %w", id, r.maxID, ErrRecordIDOutOfRange)
	}
	if need := int(TailOf(id)) + 1; need > len(r.slots) {
		r.slots = append(r.slots, make([]MappedNode, need-len(r.slots))...)
	}
	return nil
}
