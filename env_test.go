package mila

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvGetWalksParentChain(t *testing.T) {
	root := NewEnv(nil)
	root.SetLocal("x", NewInt(1))
	child := NewEnv(root)
	v := child.Get("x")
	require.NotNil(t, v)
	assert.Equal(t, int64(1), v.Int())
}

func TestEnvSetReassignsNearestOwningFrame(t *testing.T) {
	root := NewEnv(nil)
	root.SetLocal("s", NewInt(0))
	child := NewEnv(root)
	child.Set("s", NewInt(5))
	assert.Equal(t, int64(5), root.Get("s").Int())
	_, ok := child.vars["s"]
	assert.False(t, ok)
}

func TestEnvSetInsertsLocallyWhenUnbound(t *testing.T) {
	root := NewEnv(nil)
	child := NewEnv(root)
	child.Set("y", NewInt(9))
	assert.Nil(t, root.Get("y"))
	assert.Equal(t, int64(9), child.Get("y").Int())
}

func TestEnvGetUnboundReturnsNil(t *testing.T) {
	root := NewEnv(nil)
	assert.Nil(t, root.Get("missing"))
}

func TestInterpPropagatesThroughChain(t *testing.T) {
	it := New(Options{})
	child := NewEnv(it.Global)
	grandchild := NewEnv(child)
	assert.Same(t, it, grandchild.Interp())
}
