package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qewer33/quetite/value"
)

func TestDefineAndLookup(t *testing.T) {
	e := New(nil)
	e.Define("x", value.Num(1))
	v, ok := e.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Num(1), v)
}

func TestLookup_WalksOuterFrames(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Num(1))
	inner := New(outer)
	v, ok := inner.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Num(1), v)
}

func TestLookup_MissingNameFails(t *testing.T) {
	e := New(nil)
	_, ok := e.Lookup("nope")
	assert.False(t, ok)
}

func TestDefine_ShadowsOuterFrame(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Num(1))
	inner := New(outer)
	inner.Define("x", value.Num(2))

	innerVal, _ := inner.Lookup("x")
	outerVal, _ := outer.Lookup("x")
	assert.Equal(t, value.Num(2), innerVal)
	assert.Equal(t, value.Num(1), outerVal, "shadowing in inner frame must not mutate outer frame")
}

func TestAssign_UpdatesNearestDefiningFrame(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Num(1))
	inner := New(outer)

	ok := inner.Assign("x", value.Num(5))
	require.True(t, ok)

	v, _ := outer.Lookup("x")
	assert.Equal(t, value.Num(5), v, "assign with no local binding must update the outer frame in place")
}

func TestAssign_UndeclaredNameFails(t *testing.T) {
	e := New(nil)
	ok := e.Assign("never_defined", value.Num(1))
	assert.False(t, ok)
}

func TestNames_ListsOnlyDirectBindings(t *testing.T) {
	outer := New(nil)
	outer.Define("a", value.Num(1))
	inner := New(outer)
	inner.Define("b", value.Num(2))

	names := inner.Names()
	assert.ElementsMatch(t, []string{"b"}, names)
}

func TestParentAndGlobal(t *testing.T) {
	root := New(nil)
	mid := New(root)
	leaf := New(mid)

	assert.Nil(t, root.Parent())
	assert.Equal(t, mid, leaf.Parent())
	assert.Equal(t, root, leaf.Global())
	assert.Equal(t, root, root.Global())
}

func TestClosureSharesFrameByPointer(t *testing.T) {
	// env is captured by shared pointer, not copied — a closure must
	// observe later mutations to the same frame it captured.
	frame := New(nil)
	frame.Define("count", value.Num(0))

	captured := frame // simulates a Closure.ClosureEnv capture
	frame.Assign("count", value.Num(1))

	v, _ := captured.Lookup("count")
	assert.Equal(t, value.Num(1), v)
}
