/*
ops.go implements spec.md section 4.3's arithmetic, comparison, and
indexing contracts as pure functions over Values, each returning a
*RuntimeError (never panicking) on a type/domain violation so the
evaluator can turn it into a Thrown outcome.
*/
package value

import (
	"math"
	"strings"
)

// Add implements `+`: Num+Num, Str+Str (concatenation), List+List
// (new concatenated list). Every other pairing is a TypeErr.
func Add(a, b Value) (Value, error) {
	switch av := a.(type) {
	case Num:
		if bv, ok := b.(Num); ok {
			return av + bv, nil
		}
	case Str:
		if bv, ok := b.(Str); ok {
			return av + bv, nil
		}
	case *List:
		if bv, ok := b.(*List); ok {
			out := make([]Value, 0, len(av.Elems)+len(bv.Elems))
			out = append(out, av.Elems...)
			out = append(out, bv.Elems...)
			return NewList(out), nil
		}
	}
	return nil, NewError(TypeErr, "unsupported operand types for +: %s and %s", TypeName(a), TypeName(b))
}

// numArith implements the Num-only arithmetic ops (-, *, /, %, **);
// division by zero yields IEEE infinities/NaN without error, per
// spec.md.
func numArith(op string, a, b Value, f func(x, y float64) float64) (Value, error) {
	av, aok := a.(Num)
	bv, bok := b.(Num)
	if !aok || !bok {
		return nil, NewError(TypeErr, "unsupported operand types for %s: %s and %s", op, TypeName(a), TypeName(b))
	}
	return Num(f(float64(av), float64(bv))), nil
}

func Sub(a, b Value) (Value, error) {
	return numArith("-", a, b, func(x, y float64) float64 { return x - y })
}

func Mul(a, b Value) (Value, error) {
	return numArith("*", a, b, func(x, y float64) float64 { return x * y })
}

func Div(a, b Value) (Value, error) {
	return numArith("/", a, b, func(x, y float64) float64 { return x / y })
}

func Mod(a, b Value) (Value, error) {
	return numArith("%", a, b, math.Mod)
}

func Pow(a, b Value) (Value, error) {
	return numArith("**", a, b, math.Pow)
}

// Neg implements unary `-`, Num-only.
func Neg(a Value) (Value, error) {
	av, ok := a.(Num)
	if !ok {
		return nil, NewError(TypeErr, "unsupported operand type for unary -: %s", TypeName(a))
	}
	return -av, nil
}

// Not implements unary `!`, defined on every value via truthiness.
func Not(a Value) Value {
	return Bool(!Truthy(a))
}

// Compare implements `<, <=, >, >=`, Num-only.
func Compare(op string, a, b Value) (Value, error) {
	av, aok := a.(Num)
	bv, bok := b.(Num)
	if !aok || !bok {
		return nil, NewError(TypeErr, "unsupported operand types for %s: %s and %s", op, TypeName(a), TypeName(b))
	}
	switch op {
	case "<":
		return Bool(av < bv), nil
	case "<=":
		return Bool(av <= bv), nil
	case ">":
		return Bool(av > bv), nil
	case ">=":
		return Bool(av >= bv), nil
	}
	return nil, NewError(TypeErr, "unknown comparison operator %s", op)
}

// BuildRange materializes `start..end` / `start..=end` (optionally
// stepped) into a List of Nums, per spec.md's "Range identity" law:
// 0..=n equals [0,1,...,n]; 0..n equals [0,1,...,n-1].
func BuildRange(start, end, step float64, inclusive bool) (Value, error) {
	if step == 0 {
		return nil, NewError(ValueErr, "range step must not be 0")
	}
	var elems []Value
	if step > 0 {
		for v := start; (inclusive && v <= end) || (!inclusive && v < end); v += step {
			elems = append(elems, Num(v))
		}
	} else {
		for v := start; (inclusive && v >= end) || (!inclusive && v > end); v += step {
			elems = append(elems, Num(v))
		}
	}
	return NewList(elems), nil
}

// Index implements `receiver[index]` for Str, List, and Dict.
func Index(receiver, idx Value) (Value, error) {
	switch r := receiver.(type) {
	case Str:
		return indexStr(r, idx)
	case *List:
		return indexList(r, idx)
	case *Dict:
		v, ok := r.Get(idx)
		if !ok {
			if _, hashable := Hashable(idx); !hashable {
				return nil, NewError(TypeErr, "unhashable key type: %s", TypeName(idx))
			}
			return nil, NewError(ValueErr, "key not found: %s", idx.String())
		}
		return v, nil
	default:
		return nil, NewError(TypeErr, "value of type %s is not indexable", TypeName(receiver))
	}
}

func indexStr(s Str, idx Value) (Value, error) {
	runes := []rune(string(s))
	switch iv := idx.(type) {
	case Num:
		i, err := boundedIndex(float64(iv), len(runes))
		if err != nil {
			return nil, err
		}
		return Str(string(runes[i])), nil
	case *List:
		var sb strings.Builder
		for _, e := range iv.Elems {
			n, ok := e.(Num)
			if !ok {
				return nil, NewError(TypeErr, "string index list must contain Num, got %s", TypeName(e))
			}
			i, err := boundedIndex(float64(n), len(runes))
			if err != nil {
				return nil, err
			}
			sb.WriteRune(runes[i])
		}
		return Str(sb.String()), nil
	default:
		return nil, NewError(TypeErr, "string index must be Num or List, got %s", TypeName(idx))
	}
}

func indexList(l *List, idx Value) (Value, error) {
	switch iv := idx.(type) {
	case Num:
		i, err := boundedIndex(float64(iv), len(l.Elems))
		if err != nil {
			return nil, err
		}
		return l.Elems[i], nil
	case *List:
		out := make([]Value, 0, len(iv.Elems))
		for _, e := range iv.Elems {
			n, ok := e.(Num)
			if !ok {
				return nil, NewError(TypeErr, "list index list must contain Num, got %s", TypeName(e))
			}
			i, err := boundedIndex(float64(n), len(l.Elems))
			if err != nil {
				return nil, err
			}
			out = append(out, l.Elems[i])
		}
		return NewList(out), nil
	default:
		return nil, NewError(TypeErr, "list index must be Num or List, got %s", TypeName(idx))
	}
}

// boundedIndex validates a Num index against a length, rejecting
// negative or out-of-bounds indices with ValueErr and non-integral
// indices with TypeErr, per spec.md section 4.3.
func boundedIndex(n float64, length int) (int, error) {
	if n != math.Trunc(n) {
		return 0, NewError(TypeErr, "index must be an integral Num, got %v", n)
	}
	i := int(n)
	if i < 0 || i >= length {
		return 0, NewError(ValueErr, "index %d out of bounds (length %d)", i, length)
	}
	return i, nil
}

// IndexSet implements `receiver[index] = v` for List and Dict; Str is
// immutable and not assignable through Index.
func IndexSet(receiver, idx, v Value) error {
	switch r := receiver.(type) {
	case *List:
		n, ok := idx.(Num)
		if !ok {
			return NewError(TypeErr, "list index must be Num, got %s", TypeName(idx))
		}
		i, err := boundedIndex(float64(n), len(r.Elems))
		if err != nil {
			return err
		}
		r.Elems[i] = v
		return nil
	case *Dict:
		if !r.Set(idx, v) {
			return NewError(TypeErr, "unhashable key type: %s", TypeName(idx))
		}
		return nil
	default:
		return NewError(TypeErr, "value of type %s does not support index assignment", TypeName(receiver))
	}
}
