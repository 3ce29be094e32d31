package dbg

import "strconv"

// Endpoint indexes a virtual endpoint: 2*id is the head, 2*id+1 the tail.
type Endpoint int

func HeadOf(id int) Endpoint { return Endpoint(2 * id) }
func TailOf(id int) Endpoint { return Endpoint(2*id + 1) }

func (e Endpoint) Record() int  { return int(e) / 2 }
func (e Endpoint) IsTail() bool { return e%2 == 1 }

// Side is the adjacency side the endpoint is left through: false ('-') for
// the head, true ('+') for the tail.
func (e Endpoint) Side() bool { return e.IsTail() }

func (e Endpoint) String() string {
	if e.IsTail() {
		return strconv.Itoa(e.Record()) + "+"
	}
	return strconv.Itoa(e.Record()) + "-"
}
