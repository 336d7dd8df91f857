package native

import (
	"sort"
	"strings"

	"github.com/qewer33/quetite/eval"
	"github.com/qewer33/quetite/value"
)

// strMethods installs Str's prototype, grounded on std/strings.go's
// stringMethods table (upper/lower/split/join/trim/...), adapted from
// GoMix's variadic Callback(args ...GoMixObject) into fixed-arity
// Quetite natives where args[0] is always the bound receiver string
// (spec.md section 4.7's `x.m(...)` dispatch).
var strMethods = []Builtin{
	{Name: "len", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		s, err := wantStr("Str.len", args, 0)
		if err != nil {
			return nil, err
		}
		return value.Num(len([]rune(s))), nil
	}},
	{Name: "upper", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		s, err := wantStr("Str.upper", args, 0)
		if err != nil {
			return nil, err
		}
		return value.Str(strings.ToUpper(s)), nil
	}},
	{Name: "lower", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		s, err := wantStr("Str.lower", args, 0)
		if err != nil {
			return nil, err
		}
		return value.Str(strings.ToLower(s)), nil
	}},
	{Name: "trim", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		s, err := wantStr("Str.trim", args, 0)
		if err != nil {
			return nil, err
		}
		return value.Str(strings.TrimSpace(s)), nil
	}},
	{Name: "split", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		s, err := wantStr("Str.split", args, 0)
		if err != nil {
			return nil, err
		}
		sep, err := wantStr("Str.split", args, 1)
		if err != nil {
			return nil, err
		}
		parts := strings.Split(s, sep)
		elems := make([]value.Value, len(parts))
		for i, p := range parts {
			elems[i] = value.Str(p)
		}
		return value.NewList(elems), nil
	}},
	{Name: "contains", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		s, err := wantStr("Str.contains", args, 0)
		if err != nil {
			return nil, err
		}
		sub, err := wantStr("Str.contains", args, 1)
		if err != nil {
			return nil, err
		}
		return value.Bool(strings.Contains(s, sub)), nil
	}},
	{Name: "replace", Arity: 3, Fn: func(args []value.Value) (value.Value, error) {
		s, err := wantStr("Str.replace", args, 0)
		if err != nil {
			return nil, err
		}
		old, err := wantStr("Str.replace", args, 1)
		if err != nil {
			return nil, err
		}
		repl, err := wantStr("Str.replace", args, 2)
		if err != nil {
			return nil, err
		}
		return value.Str(strings.ReplaceAll(s, old, repl)), nil
	}},
	{Name: "starts_with", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		s, err := wantStr("Str.starts_with", args, 0)
		if err != nil {
			return nil, err
		}
		prefix, err := wantStr("Str.starts_with", args, 1)
		if err != nil {
			return nil, err
		}
		return value.Bool(strings.HasPrefix(s, prefix)), nil
	}},
	{Name: "ends_with", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		s, err := wantStr("Str.ends_with", args, 0)
		if err != nil {
			return nil, err
		}
		suffix, err := wantStr("Str.ends_with", args, 1)
		if err != nil {
			return nil, err
		}
		return value.Bool(strings.HasSuffix(s, suffix)), nil
	}},
}

// listMethods installs List's prototype, grounded on std/arrays.go's
// arrayMethods table (push/pop/reverse/sort/contains/...), mutating
// in place where the teacher's own array builtins do (List has
// reference identity per spec.md section 3).
var listMethods = []Builtin{
	{Name: "len", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		l, err := wantList("List.len", args, 0)
		if err != nil {
			return nil, err
		}
		return value.Num(len(l.Elems)), nil
	}},
	{Name: "push", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		l, err := wantList("List.push", args, 0)
		if err != nil {
			return nil, err
		}
		l.Elems = append(l.Elems, args[1])
		return l, nil
	}},
	{Name: "pop", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		l, err := wantList("List.pop", args, 0)
		if err != nil {
			return nil, err
		}
		if len(l.Elems) == 0 {
			return nil, value.NewError(value.ValueErr, "List.pop: list is empty")
		}
		last := l.Elems[len(l.Elems)-1]
		l.Elems = l.Elems[:len(l.Elems)-1]
		return last, nil
	}},
	{Name: "contains", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		l, err := wantList("List.contains", args, 0)
		if err != nil {
			return nil, err
		}
		for _, e := range l.Elems {
			if value.Equal(e, args[1]) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	}},
	{Name: "reverse", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		l, err := wantList("List.reverse", args, 0)
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, len(l.Elems))
		for i, e := range l.Elems {
			out[len(out)-1-i] = e
		}
		return value.NewList(out), nil
	}},
	{Name: "sorted", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		l, err := wantList("List.sorted", args, 0)
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, len(l.Elems))
		copy(out, l.Elems)
		var sortErr error
		sort.SliceStable(out, func(i, j int) bool {
			ni, iok := out[i].(value.Num)
			nj, jok := out[j].(value.Num)
			if !iok || !jok {
				sortErr = value.NewError(value.TypeErr, "List.sorted: all elements must be Num")
				return false
			}
			return ni < nj
		})
		if sortErr != nil {
			return nil, sortErr
		}
		return value.NewList(out), nil
	}},
	{Name: "join", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		l, err := wantList("List.join", args, 0)
		if err != nil {
			return nil, err
		}
		sep, err := wantStr("List.join", args, 1)
		if err != nil {
			return nil, err
		}
		parts := make([]string, len(l.Elems))
		for i, e := range l.Elems {
			parts[i] = displayString(e)
		}
		return value.Str(strings.Join(parts, sep)), nil
	}},
}

// dictMethods installs Dict's prototype, grounded on std/maps.go's
// keys/values/has accessors.
var dictMethods = []Builtin{
	{Name: "len", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		d, ok := args[0].(*value.Dict)
		if !ok {
			return nil, value.NewError(value.TypeErr, "Dict.len: argument must be Dict, got %s", value.TypeName(args[0]))
		}
		return value.Num(d.Len()), nil
	}},
	{Name: "keys", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		d, ok := args[0].(*value.Dict)
		if !ok {
			return nil, value.NewError(value.TypeErr, "Dict.keys: argument must be Dict, got %s", value.TypeName(args[0]))
		}
		entries := d.Entries()
		keys := make([]value.Value, len(entries))
		for i, e := range entries {
			keys[i] = e.Key
		}
		return value.NewList(keys), nil
	}},
	{Name: "values", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		d, ok := args[0].(*value.Dict)
		if !ok {
			return nil, value.NewError(value.TypeErr, "Dict.values: argument must be Dict, got %s", value.TypeName(args[0]))
		}
		entries := d.Entries()
		vals := make([]value.Value, len(entries))
		for i, e := range entries {
			vals[i] = e.Value
		}
		return value.NewList(vals), nil
	}},
	{Name: "has", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		d, ok := args[0].(*value.Dict)
		if !ok {
			return nil, value.NewError(value.TypeErr, "Dict.has: argument must be Dict, got %s", value.TypeName(args[0]))
		}
		_, ok = d.Get(args[1])
		return value.Bool(ok), nil
	}},
}

// listFunctionalMethods installs List methods taking a Callable
// argument, grounded on std/arrays.go's mapArray (`rt.CallFunction(fn,
// elem)` for each array element). Unlike listMethods, these need the
// Evaluator itself to invoke the callback, so they're built at Install
// time instead of living in a static Builtin table.
func listFunctionalMethods(ev *eval.Evaluator) []Builtin {
	return []Builtin{
		{Name: "map", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
			l, err := wantList("List.map", args, 0)
			if err != nil {
				return nil, err
			}
			fn, err := wantCallable("List.map", args, 1)
			if err != nil {
				return nil, err
			}
			out := make([]value.Value, len(l.Elems))
			for i, e := range l.Elems {
				v, oc := ev.Call(fn, []value.Value{e})
				if oc != nil {
					return nil, outcomeErr(*oc)
				}
				out[i] = v
			}
			return value.NewList(out), nil
		}},
	}
}

// valueMethods is the shared Value prototype every kind falls through
// to when its own kind-specific table misses (spec.md section 4.7):
// type() and to_string() apply to any value whose members go through
// prototype dispatch. Instances and obj values resolve members from
// their own tables only, so these methods are not reachable on them.
var valueMethods = []Builtin{
	{Name: "type", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		return value.Str(value.TypeName(args[0])), nil
	}},
	{Name: "to_string", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		return value.Str(displayString(args[0])), nil
	}},
}
