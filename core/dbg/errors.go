package dbg

import "errors"

var (
	// ErrIncompleteAdjacency means an endpoint stayed unresolved after the
	// full pass, usually because a record references an id that was never read.
	ErrIncompleteAdjacency = errors.New("incomplete adjacency")

	ErrNonConsecutiveID    = errors.New("record ids are not consecutive from 0")
	ErrAsymmetricAdjacency = errors.New("adjacency is not symmetric")
	ErrRecordIDOutOfRange  = errors.New("record id out of range")
	ErrEndpointResolved    = errors.New("endpoint already resolved")
	ErrForeignEndpoint     = errors.New("endpoint does not belong to record")
	ErrHeadUnresolved      = errors.New("head must be resolved before a self-mirror tail")
	ErrSequenceTooShort    = errors.New("sequence shorter than k-1")
	ErrInvalidKmerSize     = errors.New("k-mer size must be at least 2")
)
