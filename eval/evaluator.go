/*
Package eval implements Quetite's tree-walking evaluator (spec.md
section 4.5-4.7): statement execution threading a mutable current
*env.Env, expression evaluation, call semantics for user closures,
bound/static object methods, and natives, and the try/catch/ensure
exception system.

Grounded on evaluator.Evaluator's Eval(stmt, scope)-dispatch shape
(evaluator/evaluator.go) from the teacher, with its panic-based
ReturnValue/BreakSignal/ContinueSignal control flow replaced by the
explicit Outcome value spec.md section 4.5 calls for — a statement
executor inspecting and propagating its callee's Outcome is less
surprising than recovering a panic at every call boundary, and gives
`ensure` (spec.md's addition the teacher has no equivalent of) an
unambiguous place to run on every exit path.
*/
package eval

import (
	"fmt"
	"path/filepath"

	"github.com/qewer33/quetite/ast"
	"github.com/qewer33/quetite/env"
	"github.com/qewer33/quetite/value"
)

// protoValue is the synthetic Kind key InstallPrototype uses for the
// shared Value prototype, consulted after a value's own kind-specific
// table misses (spec.md section 4.7).
const protoValue value.Kind = "Value"

// Loader lets the evaluator turn a resolved `use` path into a fresh
// token/AST pipeline without importing lexer/parser directly, keeping
// eval's only upward dependency the registry's own wiring in cmd/quetite.
type Loader func(path string) ([]ast.Stmt, error)

// Evaluator runs a parsed program against a global environment. It
// also owns the prototype-method tables natives install into (spec.md
// section 4.7) and the set of `use` paths already merged, so a cyclic
// or repeated `use` is a no-op per interpreter instance.
type Evaluator struct {
	Global *env.Env
	Load    Loader
	protos  map[value.Kind]map[string]*value.Callable
	used    map[string]bool
}

// New creates an Evaluator rooted at global. load is consulted lazily,
// only when a Use statement is actually executed.
func New(global *env.Env, load Loader) *Evaluator {
	return &Evaluator{
		Global: global,
		Load:   load,
		protos: make(map[value.Kind]map[string]*value.Callable),
		used:   make(map[string]bool),
	}
}

// InstallPrototype implements the native registry's installPrototype
// contract (spec.md section 4.7): kind is one of Value, Bool, Num, Str,
// List, Dict; Value is the shared fallback table every other kind
// falls through to.
func (ev *Evaluator) InstallPrototype(kind value.Kind, methods map[string]*value.Callable) {
	table, ok := ev.protos[kind]
	if !ok {
		table = make(map[string]*value.Callable)
		ev.protos[kind] = table
	}
	for name, m := range methods {
		table[name] = m
	}
}

func (ev *Evaluator) lookupPrototype(recv value.Value, name string) (*value.Callable, bool) {
	if table, ok := ev.protos[recv.Kind()]; ok {
		if m, ok := table[name]; ok {
			bound := *m
			bound.BoundSelf = recv
			return &bound, true
		}
	}
	if table, ok := ev.protos[protoValue]; ok {
		if m, ok := table[name]; ok {
			bound := *m
			bound.BoundSelf = recv
			return &bound, true
		}
	}
	return nil, false
}

// Run executes a top-level program directly into e (no extra frame
// push: the top-level statements already share the global frame, per
// spec.md's "global frame is the chain root").
func (ev *Evaluator) Run(stmts []ast.Stmt, e *env.Env) Outcome {
	for _, s := range stmts {
		if outcome := ev.ExecStmt(s, e); outcome.Kind != Normal {
			return outcome
		}
	}
	return normal
}

// ExecStmt dispatches on the concrete statement type, implementing
// spec.md section 4.5's per-statement Outcome rules.
func (ev *Evaluator) ExecStmt(s ast.Stmt, e *env.Env) Outcome {
	switch n := s.(type) {
	case *ast.ExprStmt:
		_, oc := ev.evalExpr(n.Expr, e)
		if oc != nil {
			return *oc
		}
		return normal

	case *ast.VarDecl:
		v := value.Value(value.Null)
		if n.Init != nil {
			val, oc := ev.evalExpr(n.Init, e)
			if oc != nil {
				return *oc
			}
			v = val
		}
		e.Define(n.Name, v)
		return normal

	case *ast.FnDecl:
		fn := &value.Callable{
			Name:    n.Name,
			Closure: &value.Closure{Params: n.Params, Body: n.Body, ClosureEnv: e},
			Arity:   len(n.Params),
		}
		e.Define(n.Name, fn)
		return normal

	case *ast.ObjDecl:
		ev.execObjDecl(n, e)
		return normal

	case *ast.Block:
		frame := env.New(e)
		for _, decl := range n.Decls {
			if outcome := ev.ExecStmt(decl, frame); outcome.Kind != Normal {
				return outcome
			}
		}
		return normal

	case *ast.If:
		cond, oc := ev.evalExpr(n.Cond, e)
		if oc != nil {
			return *oc
		}
		if value.Truthy(cond) {
			return ev.ExecStmt(n.Then, e)
		}
		if n.Else != nil {
			return ev.ExecStmt(n.Else, e)
		}
		return normal

	case *ast.While:
		return ev.execWhile(n, e)

	case *ast.For:
		return ev.execFor(n, e)

	case *ast.Match:
		return ev.execMatch(n, e)

	case *ast.Return:
		if n.Value == nil {
			return Outcome{Kind: Return, Value: value.Null}
		}
		v, oc := ev.evalExpr(n.Value, e)
		if oc != nil {
			return *oc
		}
		return Outcome{Kind: Return, Value: v}

	case *ast.Break:
		return Outcome{Kind: Break}

	case *ast.Continue:
		return Outcome{Kind: Continue}

	case *ast.Throw:
		v, oc := ev.evalExpr(n.Value, e)
		if oc != nil {
			return *oc
		}
		return throwValue(v)

	case *ast.Try:
		return ev.execTry(n, e)

	case *ast.Use:
		return ev.execUse(n, e)

	default:
		panic(fmt.Sprintf("eval: unhandled statement type %T", s))
	}
}

// execObjDecl builds an Obj's method tables (spec.md section 4.4). A
// method is bound if its first parameter is named exactly "self" — in
// which case that parameter is stripped from the stored Closure.Params,
// since self is supplied via Callable.BoundSelf, never positionally.
// `init` is always implicitly bound (instance construction invokes it
// with self bound) even when its declared parameter list doesn't name
// self explicitly, per spec.md's "invokes it with the instance as
// self plus the remaining arguments".
func (ev *Evaluator) execObjDecl(n *ast.ObjDecl, e *env.Env) {
	obj := value.NewObj(n.Name)
	for _, m := range n.Methods {
		explicitSelf := len(m.Params) > 0 && m.Params[0].Name == "self"
		bound := m.Name == "init" || explicitSelf
		params := m.Params
		if explicitSelf {
			params = m.Params[1:]
		}
		fn := &value.Callable{
			Name:    m.Name,
			Closure: &value.Closure{Params: params, Body: m.Body, ClosureEnv: e},
			Arity:   len(params),
		}
		if bound {
			obj.Bound[m.Name] = fn
			if m.Name == "init" {
				obj.Init = fn
			}
		} else {
			obj.Static[m.Name] = fn
		}
	}
	e.Define(n.Name, obj)
}

func (ev *Evaluator) execWhile(n *ast.While, e *env.Env) Outcome {
	loopEnv := e
	if n.Header != nil {
		loopEnv = env.New(e)
		if outcome := ev.ExecStmt(n.Header, loopEnv); outcome.Kind != Normal {
			return outcome
		}
	}
	for {
		cond, oc := ev.evalExpr(n.Cond, loopEnv)
		if oc != nil {
			return *oc
		}
		if !value.Truthy(cond) {
			return normal
		}
		outcome := ev.ExecStmt(n.Body, loopEnv)
		switch outcome.Kind {
		case Break:
			return normal
		case Return, Thrown:
			return outcome
		}
		if n.Step != nil {
			if _, oc := ev.evalExpr(n.Step, loopEnv); oc != nil {
				return *oc
			}
		}
	}
}

func (ev *Evaluator) execFor(n *ast.For, e *env.Env) Outcome {
	iterVal, oc := ev.evalExpr(n.Iterable, e)
	if oc != nil {
		return *oc
	}
	var elems []value.Value
	switch it := iterVal.(type) {
	case *value.List:
		elems = it.Elems
	case value.Str:
		for _, r := range string(it) {
			elems = append(elems, value.Str(string(r)))
		}
	default:
		return *outcomeFromErr(value.NewError(value.TypeErr, "value of type %s is not iterable", value.TypeName(iterVal)))
	}
	for i, elem := range elems {
		frame := env.New(e)
		frame.Define(n.ValueName, elem)
		if n.IndexName != "" {
			frame.Define(n.IndexName, value.Num(i))
		}
		outcome := ev.ExecStmt(n.Body, frame)
		switch outcome.Kind {
		case Break:
			return normal
		case Return, Thrown:
			return outcome
		}
	}
	return normal
}

func (ev *Evaluator) execMatch(n *ast.Match, e *env.Env) Outcome {
	disc, oc := ev.evalExpr(n.Discriminant, e)
	if oc != nil {
		return *oc
	}
	for _, arm := range n.Arms {
		pat, oc := ev.evalExpr(arm.Pattern, e)
		if oc != nil {
			return *oc
		}
		if value.Equal(disc, pat) {
			return ev.ExecStmt(arm.Body, env.New(e))
		}
	}
	if n.Else != nil {
		return ev.ExecStmt(n.Else, env.New(e))
	}
	return normal // open question: unmatched match with no else is a no-op
}

func (ev *Evaluator) execTry(n *ast.Try, e *env.Env) Outcome {
	outcome := ev.ExecStmt(n.Body, e)
	if outcome.Kind == Thrown {
		frame := env.New(e)
		if n.ErrName != "" {
			frame.Define(n.ErrName, value.Str(outcome.ErrKind))
		}
		if n.ValName != "" {
			frame.Define(n.ValName, outcome.Value)
		}
		outcome = ev.ExecStmt(n.Catch, frame)
	}
	if n.Ensure != nil {
		if ensureOutcome := ev.ExecStmt(n.Ensure, e); ensureOutcome.Kind != Normal {
			return ensureOutcome
		}
	}
	return outcome
}

func (ev *Evaluator) execUse(n *ast.Use, e *env.Env) Outcome {
	pathVal, oc := ev.evalExpr(n.Path, e)
	if oc != nil {
		return *oc
	}
	pathStr, ok := pathVal.(value.Str)
	if !ok {
		return *outcomeFromErr(value.NewError(value.TypeErr, "use path must be a Str, got %s", value.TypeName(pathVal)))
	}
	includingDir := filepath.Dir(n.Span().File)
	resolved := filepath.Join(includingDir, string(pathStr))
	if ev.used[resolved] {
		return normal
	}
	ev.used[resolved] = true

	stmts, err := ev.Load(resolved)
	if err != nil {
		return *outcomeFromErr(value.NewError(value.IOErr, "use %q: %v", string(pathStr), err))
	}
	return ev.Run(stmts, ev.Global)
}
