package dbg

import (
	"fmt"

	"dbgraph/core/bigraph"
)

type MappingKind uint8

const (
	Unmapped MappingKind = iota
	Normal
	SelfMirror
)

// MappedNode is the resolved identity of a virtual endpoint. The zero value
// is Unmapped.
type MappedNode struct {
	Kind     MappingKind
	Forward  bigraph.NodeID
	Backward bigraph.NodeID
}

func NormalNode(forward, backward bigraph.NodeID) MappedNode {
	return MappedNode{Kind: Normal, Forward: forward, Backward: backward}
}

func SelfMirrorNode(n bigraph.NodeID) MappedNode {
	return MappedNode{Kind: SelfMirror, Forward: n, Backward: n}
}

func (m MappedNode) IsMapped() bool { return m.Kind != Unmapped }

// Mirror swaps forward and backward. Unmapped and self-mirror values are
// their own mirror.
func (m MappedNode) Mirror() MappedNode {
	if m.Kind != Normal {
		return m
	}
	return MappedNode{Kind: Normal, Forward: m.Backward, Backward: m.Forward}
}

// Handles returns the forward and backward graph nodes; a self-mirror value
// returns the same node twice.
func (m MappedNode) Handles() (forward, backward bigraph.NodeID) {
	if m.Kind == Unmapped {
		return bigraph.NoNode, bigraph.NoNode
	}
	return m.Forward, m.Backward
}

func (m MappedNode) String() string {
	switch m.Kind {
	case Normal:
		return fmt.Sprintf("Normal{%d,%d}", m.Forward, m.Backward)
	case SelfMirror:
		return fmt.Sprintf("SelfMirror(%d)", m.Forward)
	default:
		return "Unmapped"
	}
}
