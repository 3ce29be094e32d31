package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dbgraph/core/bigraph"
)

func TestMappedNode_Mirror(t *testing.T) {
	n := NormalNode(3, 4)
	assert.Equal(t, NormalNode(4, 3), n.Mirror())
	assert.Equal(t, n, n.Mirror().Mirror())

	s := SelfMirrorNode(7)
	assert.Equal(t, s, s.Mirror())

	var u MappedNode
	assert.False(t, u.IsMapped())
	assert.Equal(t, u, u.Mirror())
	f, b := u.Handles()
	assert.Equal(t, bigraph.NoNode, f)
	assert.Equal(t, bigraph.NoNode, b)

	f, b = s.Handles()
	assert.Equal(t, bigraph.NodeID(7), f)
	assert.Equal(t, bigraph.NodeID(7), b)
}

func TestEndpoint(t *testing.T) {
	assert.Equal(t, Endpoint(6), HeadOf(3))
	assert.Equal(t, Endpoint(7), TailOf(3))
	assert.Equal(t, 3, TailOf(3).Record())
	assert.True(t, TailOf(3).IsTail())
	assert.False(t, HeadOf(3).Side())
	assert.Equal(t, "3+", TailOf(3).String())
	assert.Equal(t, "3-", HeadOf(3).String())
}

func TestAdjacency_TargetAndReverse(t *testing.T) {
	a := L(plus, 4, minus)
	assert.Equal(t, TailOf(4), a.Target())
	assert.Equal(t, HeadOf(4), L(plus, 4, plus).Target())
	assert.Equal(t, L(plus, 9, minus), a.Reverse(9))
	assert.Equal(t, "L:+:4:-", a.String())
}

func TestRecord_SelfMirrorFlags(t *testing.T) {
	r := rec(2, "CAT", 3, L(minus, 2, plus))
	assert.True(t, r.HeadSelfMirror())
	assert.False(t, r.TailSelfMirror())

	r = rec(2, "CAT", 3, L(plus, 2, minus))
	assert.False(t, r.HeadSelfMirror())
	assert.True(t, r.TailSelfMirror())
}
