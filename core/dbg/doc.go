// Package dbg rebuilds a bidirected de Bruijn graph from unitig records.
//
// Each record is one unitig with two virtual endpoints: the head (2*id) where
// the unitig is entered and the tail (2*id+1) where it is left. Endpoints that
// share a (k-1)-overlap must end up on the same graph node. Resolver assigns
// node identities in a single forward pass by copying identities along the
// adjacency lists; Builder drives it and emits every unitig as an edge pair
// (forward and reverse complement).
//
// BuildByContent is the slower reference strategy that keys nodes by their
// (k-1)-mer content. Both strategies produce the same serialized graph.
package dbg
