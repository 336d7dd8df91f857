/*
Package native wires Quetite's standard-library natives into the
evaluator through the registration contract spec.md section 4.7
describes: RegisterGlobal, RegisterNamespace, InstallPrototype. Every
namespace here is grounded on a file in the teacher's std/ package
(see DESIGN.md), adapted from Go-Mix's own Object/Builtin value model
to Quetite's value.Value.
*/
package native

import (
	"github.com/qewer33/quetite/eval"
	"github.com/qewer33/quetite/value"
)

// Builtin pairs a name with its arity and native implementation,
// mirroring the teacher's `{Name, Callback}` table-driven registration
// (std/common.go's commonMethods, std/os.go's osMethods, etc.), adapted
// to also carry an explicit arity since spec.md section 4.6 requires
// exact arity checking rather than the teacher's variadic-everything
// Callback(args ...Object) shape.
type Builtin struct {
	Name  string
	Arity int // -1 marks a variadic native, whose Fn itself checks len(args)
	Fn    value.NativeFn
}

func (b Builtin) callable() *value.Callable {
	return &value.Callable{Name: b.Name, Native: b.Fn, Arity: b.Arity}
}

func argErr(name string, want int, got int) error {
	return value.NewError(value.ArityErr, "%s: expected %d argument(s), got %d", name, want, got)
}

func wantNum(name string, args []value.Value, i int) (float64, error) {
	n, ok := args[i].(value.Num)
	if !ok {
		return 0, value.NewError(value.TypeErr, "%s: argument %d must be Num, got %s", name, i, value.TypeName(args[i]))
	}
	return float64(n), nil
}

func wantStr(name string, args []value.Value, i int) (string, error) {
	s, ok := args[i].(value.Str)
	if !ok {
		return "", value.NewError(value.TypeErr, "%s: argument %d must be Str, got %s", name, i, value.TypeName(args[i]))
	}
	return string(s), nil
}

func wantList(name string, args []value.Value, i int) (*value.List, error) {
	l, ok := args[i].(*value.List)
	if !ok {
		return nil, value.NewError(value.TypeErr, "%s: argument %d must be List, got %s", name, i, value.TypeName(args[i]))
	}
	return l, nil
}

func wantCallable(name string, args []value.Value, i int) (*value.Callable, error) {
	c, ok := args[i].(*value.Callable)
	if !ok {
		return nil, value.NewError(value.TypeErr, "%s: argument %d must be a Callable, got %s", name, i, value.TypeName(args[i]))
	}
	return c, nil
}

// outcomeErr lifts a Thrown Outcome produced by calling back into a
// user closure (e.g. a List.map callback) into the error a native's
// own NativeFn signature requires.
func outcomeErr(oc eval.Outcome) error {
	return value.NewError(oc.ErrKind, "%s", oc.Value.String())
}

func nativeErr(format string, args ...interface{}) error {
	return value.NewError(value.NativeErr, format, args...)
}

func ioErr(format string, args ...interface{}) error {
	return value.NewError(value.IOErr, format, args...)
}

func displayString(v value.Value) string {
	if s, ok := v.(value.Str); ok {
		return string(s)
	}
	return v.String()
}
