// core/seq/rc.go
package seq

var complement [256]byte

func init() {
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, {'S', 'S'}, {'W', 'W'},
		{'K', 'M'}, {'B', 'V'}, {'D', 'H'},
		{'N', 'N'},
	}
	for _, p := range pairs {
		complement[p.a], complement[p.b] = p.b, p.a
		// soft-masked bases keep their case
		complement[p.a+'a'-'A'], complement[p.b+'a'-'A'] = p.b+'a'-'A', p.a+'a'-'A'
	}
}

// Complement returns the complement of a single base; unknown bytes map to 'N'.
func Complement(b byte) byte {
	if c := complement[b]; c != 0 {
		return c
	}
	return 'N'
}

// RevComp returns the reverse complement of seq as a new slice.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return out
}

// IsSelfComplemental reports whether seq equals its own reverse complement.
func IsSelfComplemental(seq []byte) bool {
	return prefixMatchesRevComp(seq, len(seq))
}

// BoundaryIsSelfMirror reports whether the first k-1 bases of seq equal the
// reverse complement of its last k-1 bases, i.e. the unitig's two (k-1)-overlaps
// are the same node read on opposite strands. A sequence shorter than k-1 is
// compared as a whole.
func BoundaryIsSelfMirror(seq []byte, k int) bool {
	n := k - 1
	if n <= 0 || len(seq) == 0 {
		return false
	}
	if n > len(seq) {
		n = len(seq)
	}
	return prefixMatchesRevComp(seq, n)
}

func prefixMatchesRevComp(seq []byte, n int) bool {
	last := len(seq) - 1
	for i := 0; i < n; i++ {
		if seq[i] != Complement(seq[last-i]) {
			return false
		}
	}
	return true
}
