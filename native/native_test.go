package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qewer33/quetite/env"
	"github.com/qewer33/quetite/eval"
	"github.com/qewer33/quetite/value"
)

// find locates a Builtin by name within a table, failing the test if
// absent — keeps the per-method tests terse while still pinpointing a
// renamed/removed method instead of a generic nil-pointer panic.
func find(t *testing.T, table []Builtin, name string) Builtin {
	t.Helper()
	for _, b := range table {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("no builtin named %q in table", name)
	return Builtin{}
}

func TestStrMethods_Len(t *testing.T) {
	b := find(t, strMethods, "len")
	v, err := b.Fn([]value.Value{value.Str("hello")})
	require.NoError(t, err)
	assert.Equal(t, value.Num(5), v)
}

func TestStrMethods_UpperLower(t *testing.T) {
	upper := find(t, strMethods, "upper")
	v, err := upper.Fn([]value.Value{value.Str("abc")})
	require.NoError(t, err)
	assert.Equal(t, value.Str("ABC"), v)

	lower := find(t, strMethods, "lower")
	v, err = lower.Fn([]value.Value{value.Str("ABC")})
	require.NoError(t, err)
	assert.Equal(t, value.Str("abc"), v)
}

func TestStrMethods_Split(t *testing.T) {
	b := find(t, strMethods, "split")
	v, err := b.Fn([]value.Value{value.Str("a,b,c"), value.Str(",")})
	require.NoError(t, err)
	l, ok := v.(*value.List)
	require.True(t, ok)
	require.Len(t, l.Elems, 3)
	assert.Equal(t, value.Str("b"), l.Elems[1])
}

func TestStrMethods_TypeErrorOnNonStrReceiver(t *testing.T) {
	b := find(t, strMethods, "upper")
	_, err := b.Fn([]value.Value{value.Num(1)})
	require.Error(t, err)
	var rerr *value.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, value.TypeErr, rerr.ErrKind)
}

func TestStrMethods_StartsEndsWith(t *testing.T) {
	starts := find(t, strMethods, "starts_with")
	v, err := starts.Fn([]value.Value{value.Str("hello"), value.Str("he")})
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v)

	ends := find(t, strMethods, "ends_with")
	v, err = ends.Fn([]value.Value{value.Str("hello"), value.Str("lo")})
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v)
}

func TestListMethods_PushPopMutateInPlace(t *testing.T) {
	l := value.NewList([]value.Value{value.Num(1), value.Num(2)})
	push := find(t, listMethods, "push")
	_, err := push.Fn([]value.Value{l, value.Num(3)})
	require.NoError(t, err)
	assert.Len(t, l.Elems, 3)

	pop := find(t, listMethods, "pop")
	v, err := pop.Fn([]value.Value{l})
	require.NoError(t, err)
	assert.Equal(t, value.Num(3), v)
	assert.Len(t, l.Elems, 2)
}

func TestListMethods_PopEmptyIsValueErr(t *testing.T) {
	l := value.NewList(nil)
	pop := find(t, listMethods, "pop")
	_, err := pop.Fn([]value.Value{l})
	require.Error(t, err)
	var rerr *value.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, value.ValueErr, rerr.ErrKind)
}

func TestListMethods_Sorted_DoesNotMutateOriginal(t *testing.T) {
	l := value.NewList([]value.Value{value.Num(3), value.Num(1), value.Num(2)})
	sorted := find(t, listMethods, "sorted")
	v, err := sorted.Fn([]value.Value{l})
	require.NoError(t, err)
	out := v.(*value.List)
	assert.Equal(t, []value.Value{value.Num(1), value.Num(2), value.Num(3)}, out.Elems)
	assert.Equal(t, value.Num(3), l.Elems[0], "sorted must return a new list, not reorder in place")
}

func TestListMethods_Join(t *testing.T) {
	l := value.NewList([]value.Value{value.Str("a"), value.Str("b"), value.Str("c")})
	join := find(t, listMethods, "join")
	v, err := join.Fn([]value.Value{l, value.Str("-")})
	require.NoError(t, err)
	assert.Equal(t, value.Str("a-b-c"), v)
}

func TestDictMethods_KeysValuesHas(t *testing.T) {
	d := value.NewDict()
	d.Set(value.Str("a"), value.Num(1))
	d.Set(value.Str("b"), value.Num(2))

	keys := find(t, dictMethods, "keys")
	v, err := keys.Fn([]value.Value{d})
	require.NoError(t, err)
	assert.Len(t, v.(*value.List).Elems, 2)

	has := find(t, dictMethods, "has")
	v, err = has.Fn([]value.Value{d, value.Str("a")})
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v)

	v, err = has.Fn([]value.Value{d, value.Str("z")})
	require.NoError(t, err)
	assert.Equal(t, value.Bool(false), v)
}

func TestValueMethods_TypeAndToString(t *testing.T) {
	typeOf := find(t, valueMethods, "type")
	v, err := typeOf.Fn([]value.Value{value.Num(1)})
	require.NoError(t, err)
	assert.Equal(t, value.Str("Num"), v)

	toStr := find(t, valueMethods, "to_string")
	v, err = toStr.Fn([]value.Value{value.Num(3)})
	require.NoError(t, err)
	assert.Equal(t, value.Str("3"), v)
}

func TestMathMethods_AbsFloorCeil(t *testing.T) {
	abs := find(t, mathMethods, "abs")
	v, err := abs.Fn([]value.Value{value.Num(-5)})
	require.NoError(t, err)
	assert.Equal(t, value.Num(5), v)

	floor := find(t, mathMethods, "floor")
	v, err = floor.Fn([]value.Value{value.Num(1.9)})
	require.NoError(t, err)
	assert.Equal(t, value.Num(1), v)
}

func TestMathMethods_MinMax(t *testing.T) {
	min := find(t, mathMethods, "min")
	v, err := min.Fn([]value.Value{value.Num(3), value.Num(7)})
	require.NoError(t, err)
	assert.Equal(t, value.Num(3), v)

	max := find(t, mathMethods, "max")
	v, err = max.Fn([]value.Value{value.Num(3), value.Num(7)})
	require.NoError(t, err)
	assert.Equal(t, value.Num(7), v)
}

func TestNumMethods_RoundHalfAwayFromZero(t *testing.T) {
	round := find(t, numMethods, "round")
	v, err := round.Fn([]value.Value{value.Num(2.5)})
	require.NoError(t, err)
	assert.Equal(t, value.Num(3), v)

	v, err = round.Fn([]value.Value{value.Num(-2.5)})
	require.NoError(t, err)
	assert.Equal(t, value.Num(-3), v)
}

func TestListFunctionalMethods_Map(t *testing.T) {
	ev := eval.New(env.New(nil), nil)
	double := &value.Callable{Name: "double", Arity: 1, Native: func(args []value.Value) (value.Value, error) {
		return args[0].(value.Num) * 2, nil
	}}

	mapFn := find(t, listFunctionalMethods(ev), "map")
	l := value.NewList([]value.Value{value.Num(1), value.Num(2), value.Num(3)})
	v, err := mapFn.Fn([]value.Value{l, double})
	require.NoError(t, err)
	out := v.(*value.List)
	assert.Equal(t, []value.Value{value.Num(2), value.Num(4), value.Num(6)}, out.Elems)
	assert.Equal(t, value.Num(1), l.Elems[0], "map must return a new list, not mutate the receiver")
}

func TestListFunctionalMethods_Map_PropagatesCallbackError(t *testing.T) {
	ev := eval.New(env.New(nil), nil)
	boom := &value.Callable{Name: "boom", Arity: 1, Native: func(args []value.Value) (value.Value, error) {
		return nil, value.NewError(value.UserErr, "boom")
	}}

	mapFn := find(t, listFunctionalMethods(ev), "map")
	l := value.NewList([]value.Value{value.Num(1)})
	_, err := mapFn.Fn([]value.Value{l, boom})
	require.Error(t, err)
	var rerr *value.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, value.UserErr, rerr.ErrKind)
}

func TestBuiltin_CallableHasMatchingArity(t *testing.T) {
	b := find(t, strMethods, "split")
	c := b.callable()
	assert.Equal(t, 2, c.Arity)
	assert.Equal(t, "split", c.Name)
	assert.True(t, c.IsNative())
}
