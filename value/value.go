/*
Package value implements Quetite's runtime value model (spec.md
section 3): a tagged union over Null, Bool, Num, Str, List, Dict,
Callable, Obj, and Instance, with the truthiness, equality, arithmetic,
and indexing rules the evaluator relies on.

This consolidates what the teacher interpreter had split, by the time
of its own refactors, into three drifting copies of the same idea
(eval.GoMixObject, objects.GoMixObject, std.GoMixObject — see
DESIGN.md). Quetite keeps exactly one: every runtime value implements
Value, tagged by Kind, following std's GoMixObject/GoMixType shape
since that was the copy the teacher's own evaluator and builtins
actually exercised.
*/
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the runtime tag of a Value.
type Kind string

const (
	KindNull     Kind = "Null"
	KindBool     Kind = "Bool"
	KindNum      Kind = "Num"
	KindStr      Kind = "Str"
	KindList     Kind = "List"
	KindDict     Kind = "Dict"
	KindCallable Kind = "Callable"
	KindObj      Kind = "Obj"
	KindInstance Kind = "Instance"
)

// Value is implemented by every Quetite runtime value.
type Value interface {
	Kind() Kind
	String() string
}

// namedType is implemented by values whose type() name isn't simply
// their Kind, such as the internal Error object produced by err().
// Instances are named by their declaring Obj through a separate case
// in TypeName.
type namedType interface {
	TypeNameOverride() string
}

// TypeName reports the name type() returns for v: the Kind for
// primitives and collections, or the declaring object's name for
// instances (spec.md section 3, "Invariants").
func TypeName(v Value) string {
	if inst, ok := v.(*Instance); ok {
		return inst.Obj.Name
	}
	if nt, ok := v.(namedType); ok {
		return nt.TypeNameOverride()
	}
	return string(v.Kind())
}

// ---- Null ----

// NullValue is the single Null value; Quetite has no notion of a
// typed nil pointer, so Null is represented by one sentinel instance.
type NullValue struct{}

// Null is the shared Null value.
var Null = NullValue{}

func (NullValue) Kind() Kind     { return KindNull }
func (NullValue) String() string { return "Null" }

// ---- Bool ----

type Bool bool

func (Bool) Kind() Kind        { return KindBool }
func (b Bool) String() string  { return strconv.FormatBool(bool(b)) }

// ---- Num ----

// Num holds a 64-bit IEEE double; spec.md has no separate integer kind,
// only Num, with integral values displayed without a fractional part.
type Num float64

func (Num) Kind() Kind { return KindNum }

func (n Num) String() string {
	f := float64(n)
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ---- Str ----

// Str is an immutable, reference-shared string (spec.md: value-equal
// rather than identity-equal, unlike the other heap kinds).
type Str string

func (Str) Kind() Kind       { return KindStr }
func (s Str) String() string { return string(s) }

// ---- List ----

// List is a mutable, reference-identical vector of Values. Assignment
// of a List copies the handle, not the contents: two variables can
// hold the same *List and observe each other's mutations.
type List struct {
	Elems []Value
}

func NewList(elems []Value) *List { return &List{Elems: elems} }

func (*List) Kind() Kind { return KindList }

func (l *List) String() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = displayElem(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// displayElem quotes Str elements when nested inside a List/Dict
// display, matching common scripting-language repr conventions, while
// top-level println(str) prints the string bare.
func displayElem(v Value) string {
	if s, ok := v.(Str); ok {
		return strconv.Quote(string(s))
	}
	return v.String()
}

// ---- Dict ----

// HashKey is the comparable representation of a hashable Value (Null,
// Bool, Num, Str — spec.md section 3). Dict is keyed by HashKey so Go
// map equality can be used directly, while DictLiteral evaluation
// still carries the original Value for lookup-miss error messages.
type HashKey struct {
	kind Kind
	repr string
}

// Hashable reports whether v can be used as a Dict key, and returns
// its HashKey if so.
func Hashable(v Value) (HashKey, bool) {
	switch t := v.(type) {
	case NullValue:
		return HashKey{kind: KindNull}, true
	case Bool:
		return HashKey{kind: KindBool, repr: t.String()}, true
	case Num:
		return HashKey{kind: KindNum, repr: strconv.FormatFloat(float64(t), 'b', -1, 64)}, true
	case Str:
		return HashKey{kind: KindStr, repr: string(t)}, true
	default:
		return HashKey{}, false
	}
}

// dictEntry keeps the original key Value alongside its HashKey so
// Dict.String() and iteration can render real keys, not hashes.
type dictEntry struct {
	key HashKey
	k   Value
	v   Value
}

// Dict is a mutable, reference-identical map keyed by hashable Values.
// Insertion order is preserved for stable display and iteration.
type Dict struct {
	order []HashKey
	byKey map[HashKey]*dictEntry
}

func NewDict() *Dict {
	return &Dict{byKey: make(map[HashKey]*dictEntry)}
}

func (*Dict) Kind() Kind { return KindDict }

func (d *Dict) Get(k Value) (Value, bool) {
	hk, ok := Hashable(k)
	if !ok {
		return nil, false
	}
	e, ok := d.byKey[hk]
	if !ok {
		return nil, false
	}
	return e.v, true
}

func (d *Dict) Set(k, v Value) bool {
	hk, ok := Hashable(k)
	if !ok {
		return false
	}
	if _, exists := d.byKey[hk]; !exists {
		d.order = append(d.order, hk)
	}
	d.byKey[hk] = &dictEntry{key: hk, k: k, v: v}
	return true
}

func (d *Dict) Len() int { return len(d.order) }

// Entries returns the Dict's key/value pairs in insertion order.
func (d *Dict) Entries() []struct{ Key, Value Value } {
	out := make([]struct{ Key, Value Value }, 0, len(d.order))
	for _, hk := range d.order {
		e := d.byKey[hk]
		out = append(out, struct{ Key, Value Value }{e.k, e.v})
	}
	return out
}

func (d *Dict) String() string {
	parts := make([]string, 0, len(d.order))
	for _, e := range d.Entries() {
		parts = append(parts, fmt.Sprintf("%s: %s", displayElem(e.Key), displayElem(e.Value)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ---- equality, truthiness ----

// Truthy implements spec.md section 4.3's truthiness table: Null,
// Bool(false), and Num(0) are falsy; everything else, including the
// empty string, is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case NullValue:
		return false
	case Bool:
		return bool(t)
	case Num:
		return float64(t) != 0
	default:
		return true
	}
}

// Equal implements spec.md section 4.3's equality rules: false across
// differing kinds, structural for Null/Bool/Num/Str, identity for
// List/Dict/Instance/Callable/Obj.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case NullValue:
		return true
	case Bool:
		return av == b.(Bool)
	case Num:
		return av == b.(Num) // IEEE semantics: NaN != NaN falls out naturally
	case Str:
		return av == b.(Str)
	default:
		// Heap kinds (List, Dict, Instance, Callable, Obj, and the
		// internal Error object) compare by reference identity.
		// Comparing interface values of differing concrete pointer
		// types is well-defined in Go and simply yields false, so
		// this is safe even though several kinds share Kind()==KindInstance.
		return a == b
	}
}
