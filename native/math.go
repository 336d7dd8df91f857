package native

import (
	"math"

	"github.com/qewer33/quetite/value"
)

// math1 wraps a single-argument math.XxxFn as a Quetite native,
// grounded on std/math.go's per-function Builtin wrappers (abs, floor,
// ceil, sqrt, sin, ...) which all share this same one-Num-in,
// one-Num-out shape.
func math1(name string, f func(float64) float64) value.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		n, err := wantNum(name, args, 0)
		if err != nil {
			return nil, err
		}
		return value.Num(f(n)), nil
	}
}

func math2(name string, f func(a, b float64) float64) value.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		a, err := wantNum(name, args, 0)
		if err != nil {
			return nil, err
		}
		b, err := wantNum(name, args, 1)
		if err != nil {
			return nil, err
		}
		return value.Num(f(a, b)), nil
	}
}

// mathMethods is the Math namespace, grounded on std/math.go's
// mathMethods table (abs/min/max/floor/ceil/round/sqrt/pow/trig/log).
var mathMethods = []Builtin{
	{Name: "abs", Arity: 1, Fn: math1("Math.abs", math.Abs)},
	{Name: "floor", Arity: 1, Fn: math1("Math.floor", math.Floor)},
	{Name: "ceil", Arity: 1, Fn: math1("Math.ceil", math.Ceil)},
	{Name: "round", Arity: 1, Fn: math1("Math.round", math.Round)},
	{Name: "sqrt", Arity: 1, Fn: math1("Math.sqrt", math.Sqrt)},
	{Name: "sin", Arity: 1, Fn: math1("Math.sin", math.Sin)},
	{Name: "cos", Arity: 1, Fn: math1("Math.cos", math.Cos)},
	{Name: "tan", Arity: 1, Fn: math1("Math.tan", math.Tan)},
	{Name: "asin", Arity: 1, Fn: math1("Math.asin", math.Asin)},
	{Name: "acos", Arity: 1, Fn: math1("Math.acos", math.Acos)},
	{Name: "atan", Arity: 1, Fn: math1("Math.atan", math.Atan)},
	{Name: "log", Arity: 1, Fn: math1("Math.log", math.Log)},
	{Name: "log10", Arity: 1, Fn: math1("Math.log10", math.Log10)},
	{Name: "exp", Arity: 1, Fn: math1("Math.exp", math.Exp)},
	{Name: "min", Arity: 2, Fn: math2("Math.min", math.Min)},
	{Name: "max", Arity: 2, Fn: math2("Math.max", math.Max)},
	{Name: "pow", Arity: 2, Fn: math2("Math.pow", math.Pow)},
	{Name: "atan2", Arity: 2, Fn: math2("Math.atan2", math.Atan2)},
	{Name: "pi", Arity: 0, Fn: func(args []value.Value) (value.Value, error) { return value.Num(math.Pi), nil }},
}

// numMethods installs Num.round() etc. as prototype methods (spec.md
// section 4.7, `x.m(...)`), resolving the spec's open question on
// Num.round() tie-breaking as half-away-from-zero (math.Round), since
// neither spec.md nor the teacher specifies banker's rounding anywhere.
var numMethods = []Builtin{
	{Name: "round", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		n, err := wantNum("Num.round", args, 0)
		if err != nil {
			return nil, err
		}
		return value.Num(math.Round(n)), nil
	}},
	{Name: "floor", Arity: 1, Fn: math1("Num.floor", math.Floor)},
	{Name: "ceil", Arity: 1, Fn: math1("Num.ceil", math.Ceil)},
	{Name: "abs", Arity: 1, Fn: math1("Num.abs", math.Abs)},
}
