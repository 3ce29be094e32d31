package dbg

import "fmt"

type directedToken struct {
	from int
	Adjacency
}

// Validate checks the two preconditions of the propagation builder: ids run
// 0,1,2,... in arrival order, and every adjacency token has its reverse token
// on the neighbour, with matching multiplicity.
func Validate[E any](recs []Record[E]) error {
	counts := make(map[directedToken]int)
	for i, r := range recs {
		if r.ID != i {
			return fmt.Errorf("record at position %d has id %d: %w", i, r.ID, ErrNonConsecutiveID)
		}
		for _, a := range r.Adjacency {
			if a.To < 0 || a.To >= len(recs) {
				return fmt.Errorf("record %d: %s references missing record: %w", r.ID, a, ErrIncompleteAdjacency)
			}
			counts[directedToken{from: r.ID, Adjacency: a}]++
		}
	}
	for _, r := range recs {
		for _, a := range r.Adjacency {
			tok := directedToken{from: r.ID, Adjacency: a}
			rev := directedToken{from: a.To, Adjacency: a.Reverse(r.ID)}
			if n, m := counts[tok], counts[rev]; n != m {
				return fmt.Errorf("record %d: %s appears %d times, reverse %s on record %d appears %d times: %w",
					r.ID, a, n, rev.Adjacency, rev.from, m, ErrAsymmetricAdjacency)
			}
		}
	}
	return nil
}
