package mila

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueTruthiness(t *testing.T) {
	assert.False(t, NewNull().IsTruthy())
	assert.False(t, NewNone().IsTruthy())
	assert.False(t, NewInt(0).IsTruthy())
	assert.True(t, NewInt(1).IsTruthy())
	assert.False(t, NewFloat(0).IsTruthy())
	assert.True(t, NewString("").IsTruthy())
	assert.True(t, NewBool(true).IsTruthy())
	assert.False(t, NewBool(false).IsTruthy())
}

func TestRetainRelease(t *testing.T) {
	v := NewInt(7)
	require.Equal(t, 1, v.refcount)
	v.Retain()
	require.Equal(t, 2, v.refcount)
	v.Release()
	require.Equal(t, 1, v.refcount)
}

func TestOpaqueDestructorFiresOnce(t *testing.T) {
	calls := 0
	v := NewOpaqueTagged(struct{}{}, nil, "probe", func(any) { calls++ })
	v.Retain()
	v.Release()
	assert.Equal(t, 0, calls)
	v.Release()
	assert.Equal(t, 1, calls)
}

func TestNilOpaqueDowngradesToNull(t *testing.T) {
	v := NewOpaque(nil)
	assert.Equal(t, KindNull, v.Kind())
}

func TestReturnWrapsAndReleasesInner(t *testing.T) {
	inner := NewInt(42)
	r := NewReturn(inner)
	require.Equal(t, 2, inner.refcount)
	assert.Equal(t, int64(42), r.Inner().Int())
	r.Release()
	assert.Equal(t, 1, inner.refcount)
}

func TestStringRepr(t *testing.T) {
	s := NewString("hi")
	assert.Equal(t, "hi", s.String())
	assert.Equal(t, `"hi"`, s.Repr())
}

func TestDisplayCallbackWrappedInReprNotEscaped(t *testing.T) {
	v := NewOpaqueTagged(struct{}{}, func(v *Value) string { return `a"b` }, "probe", nil)
	assert.Equal(t, `"a"b"`, v.Repr())
}
