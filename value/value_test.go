package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Null))
	assert.False(t, Truthy(Bool(false)))
	assert.True(t, Truthy(Bool(true)))
	assert.False(t, Truthy(Num(0)))
	assert.True(t, Truthy(Num(-1)))
	assert.True(t, Truthy(Str("")))
	assert.True(t, Truthy(NewList(nil)))
}

func TestEqual_StructuralForPrimitives(t *testing.T) {
	assert.True(t, Equal(Num(3), Num(3)))
	assert.False(t, Equal(Num(3), Num(4)))
	assert.True(t, Equal(Str("a"), Str("a")))
	assert.True(t, Equal(Null, Null))
	assert.False(t, Equal(Num(3), Str("3")))
}

func TestEqual_IdentityForHeapKinds(t *testing.T) {
	a := NewList([]Value{Num(1)})
	b := NewList([]Value{Num(1)})
	assert.False(t, Equal(a, b), "distinct Lists with equal contents are not Equal")
	assert.True(t, Equal(a, a))
}

func TestNum_StringFormatting(t *testing.T) {
	assert.Equal(t, "3", Num(3).String())
	assert.Equal(t, "3.5", Num(3.5).String())
	assert.Equal(t, "-2", Num(-2).String())
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "Num", TypeName(Num(1)))
	assert.Equal(t, "Str", TypeName(Str("x")))
	inst := NewInstance(NewObj("Point"))
	assert.Equal(t, "Point", TypeName(inst))
}

func TestDict_SetGetPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set(Str("b"), Num(2))
	d.Set(Str("a"), Num(1))
	entries := d.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, Str("b"), entries[0].Key)
	assert.Equal(t, Str("a"), entries[1].Key)
}

func TestDict_SetOverwritesWithoutDuplicatingOrder(t *testing.T) {
	d := NewDict()
	d.Set(Str("a"), Num(1))
	d.Set(Str("a"), Num(2))
	assert.Equal(t, 1, d.Len())
	v, ok := d.Get(Str("a"))
	require.True(t, ok)
	assert.Equal(t, Num(2), v)
}

func TestDict_UnhashableKeyRejected(t *testing.T) {
	d := NewDict()
	ok := d.Set(NewList(nil), Num(1))
	assert.False(t, ok)
}

func TestOps_Add(t *testing.T) {
	v, err := Add(Num(1), Num(2))
	require.NoError(t, err)
	assert.Equal(t, Num(3), v)

	v, err = Add(Str("a"), Str("b"))
	require.NoError(t, err)
	assert.Equal(t, Str("ab"), v)

	_, err = Add(Num(1), Str("b"))
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, TypeErr, rerr.ErrKind)
}

func TestOps_DivisionByZeroYieldsInfinity(t *testing.T) {
	v, err := Div(Num(1), Num(0))
	require.NoError(t, err)
	assert.Equal(t, "Infinity", v.String())
}

func TestOps_Compare(t *testing.T) {
	v, err := Compare("<", Num(1), Num(2))
	require.NoError(t, err)
	assert.Equal(t, Bool(true), v)

	_, err = Compare("<", Str("a"), Num(2))
	require.Error(t, err)
}

func TestOps_BuildRange_InclusiveExclusive(t *testing.T) {
	v, err := BuildRange(0, 3, 1, false)
	require.NoError(t, err)
	l := v.(*List)
	require.Len(t, l.Elems, 3)
	assert.Equal(t, Num(0), l.Elems[0])
	assert.Equal(t, Num(2), l.Elems[2])

	v, err = BuildRange(0, 3, 1, true)
	require.NoError(t, err)
	l = v.(*List)
	require.Len(t, l.Elems, 4)
	assert.Equal(t, Num(3), l.Elems[3])
}

func TestOps_BuildRange_ZeroStepIsError(t *testing.T) {
	_, err := BuildRange(0, 3, 0, false)
	require.Error(t, err)
}

func TestOps_IndexList(t *testing.T) {
	l := NewList([]Value{Num(10), Num(20), Num(30)})
	v, err := Index(l, Num(1))
	require.NoError(t, err)
	assert.Equal(t, Num(20), v)

	_, err = Index(l, Num(5))
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ValueErr, rerr.ErrKind)
}

func TestOps_IndexList_NonIntegralIsTypeErr(t *testing.T) {
	l := NewList([]Value{Num(10)})
	_, err := Index(l, Num(0.5))
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, TypeErr, rerr.ErrKind)
}

func TestOps_IndexSet(t *testing.T) {
	l := NewList([]Value{Num(1), Num(2)})
	require.NoError(t, IndexSet(l, Num(0), Num(99)))
	assert.Equal(t, Num(99), l.Elems[0])

	err := IndexSet(Str("abc"), Num(0), Num(1))
	require.Error(t, err)
}

func TestOps_IndexDict_MissingKeyIsValueErr(t *testing.T) {
	d := NewDict()
	_, err := Index(d, Str("missing"))
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ValueErr, rerr.ErrKind)
}
