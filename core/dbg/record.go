package dbg

import "strconv"

// Adjacency is one adjacency token of a record: the edge leaves the record
// through FromSide and enters record To through ToSide. true is '+'.
type Adjacency struct {
	FromSide bool
	To       int
	ToSide   bool
}

// Target is the neighbour endpoint the overlap lands on: entering '+' means
// entering at the neighbour's head.
func (a Adjacency) Target() Endpoint {
	if a.ToSide {
		return HeadOf(a.To)
	}
	return TailOf(a.To)
}

// Reverse is the token the neighbour must carry for the adjacency to be
// symmetric.
func (a Adjacency) Reverse(from int) Adjacency {
	return Adjacency{FromSide: !a.ToSide, To: from, ToSide: !a.FromSide}
}

func (a Adjacency) String() string {
	return "L:" + sideSign(a.FromSide) + ":" + strconv.Itoa(a.To) + ":" + sideSign(a.ToSide)
}

// Record is the uniform unitig shape the builder consumes.
type Record[E any] struct {
	ID        int
	Adjacency []Adjacency
	// SelfComplemental is set when the unitig, or its (k-1)-boundary, reads the
	// same on both strands: the tail node is then the mirror of the head node.
	SelfComplemental bool
	Payload          E
}

// HeadSelfMirror reports a loop from the head back onto the record's own '+'.
func (r Record[E]) HeadSelfMirror() bool {
	return r.has(Adjacency{FromSide: false, To: r.ID, ToSide: true})
}

// TailSelfMirror reports a loop from the tail back onto the record's own '-'.
func (r Record[E]) TailSelfMirror() bool {
	return r.has(Adjacency{FromSide: true, To: r.ID, ToSide: false})
}

func (r Record[E]) has(want Adjacency) bool {
	for _, a := range r.Adjacency {
		if a == want {
			return true
		}
	}
	return false
}

func sideSign(side bool) string {
	if side {
		return "+"
	}
	return "-"
}
