package value

import (
	"fmt"

	"github.com/qewer33/quetite/ast"
)

// Closure holds everything a user-defined function needs to run later:
// its parameter names, its body, and the environment in effect at
// declaration time. ClosureEnv is typed interface{} rather than
// *env.Env to avoid an import cycle between value and env (env.Env
// holds value.Value bindings) — the same "interface{} to avoid import
// cycle" escape hatch the teacher's objects.GoMixStruct used for
// FieldNodes. The evaluator is the only place that type-asserts it
// back to *env.Env.
type Closure struct {
	Params     []ast.Param
	Body       *ast.Block
	ClosureEnv interface{}
}

// NativeFn is a builtin callable's implementation. args are already
// evaluated; the native returns a result Value or, on failure, a
// *RuntimeError describing what went wrong (arity/type/domain errors),
// which the caller turns into a Thrown outcome.
type NativeFn func(args []Value) (Value, error)

// Callable is a function value: either a user-defined Closure or a
// native, optionally bound to a receiver (for `self`-taking object
// methods and for prototype methods on primitives, e.g. "abc".len()).
// Arity is fixed for user closures (len(Params)) and declared
// explicitly for natives, which may be variadic (-1). BoundSelf is
// typed Value rather than *Instance so the same mechanism serves both
// obj methods (receiver an *Instance) and prototype methods installed
// on Bool/Num/Str/List/Dict (receiver the primitive itself).
type Callable struct {
	Name      string
	Closure   *Closure // nil for natives
	Native    NativeFn // nil for user closures
	Arity     int      // -1 means variadic, checked by the native itself
	BoundSelf Value    // non-nil for a bound/prototype method
}

func (*Callable) Kind() Kind { return KindCallable }

func (c *Callable) String() string {
	if c.Name == "" {
		return "<fn>"
	}
	return fmt.Sprintf("<fn %s>", c.Name)
}

// IsNative reports whether c wraps a native Go function rather than a
// user-defined Quetite closure.
func (c *Callable) IsNative() bool { return c.Native != nil }
