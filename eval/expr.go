package eval

import (
	"fmt"

	"github.com/qewer33/quetite/ast"
	"github.com/qewer33/quetite/env"
	"github.com/qewer33/quetite/value"
)

// evalExpr evaluates expr in e, returning either its Value or a
// non-nil Outcome (always Kind == Thrown) describing why it couldn't.
// Expressions never themselves produce Return/Break/Continue; those
// only arise from statement execution, so a non-nil Outcome here is
// always a Thrown to propagate upward unchanged.
func (ev *Evaluator) evalExpr(expr ast.Expr, e *env.Env) (value.Value, *Outcome) {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalValue(n), nil

	case *ast.ListLiteral:
		elems := make([]value.Value, 0, len(n.Elements))
		for _, el := range n.Elements {
			v, oc := ev.evalExpr(el, e)
			if oc != nil {
				return nil, oc
			}
			elems = append(elems, v)
		}
		return value.NewList(elems), nil

	case *ast.DictLiteral:
		d := value.NewDict()
		for _, entry := range n.Entries {
			k, oc := ev.evalExpr(entry.Key, e)
			if oc != nil {
				return nil, oc
			}
			v, oc := ev.evalExpr(entry.Value, e)
			if oc != nil {
				return nil, oc
			}
			if !d.Set(k, v) {
				return nil, outcomeFromErr(value.NewError(value.TypeErr, "unhashable key type: %s", value.TypeName(k)))
			}
		}
		return d, nil

	case *ast.Identifier:
		v, ok := e.Lookup(n.Name)
		if !ok {
			return nil, outcomeFromErr(value.NewError(value.NameErr, "undefined name: %s", n.Name))
		}
		return v, nil

	case *ast.Unary:
		return ev.evalUnary(n, e)

	case *ast.Binary:
		return ev.evalBinary(n, e)

	case *ast.Ternary:
		c, oc := ev.evalExpr(n.Cond, e)
		if oc != nil {
			return nil, oc
		}
		if value.Truthy(c) {
			return ev.evalExpr(n.Then, e)
		}
		return ev.evalExpr(n.Else, e)

	case *ast.Range:
		return ev.evalRange(n, e)

	case *ast.Index:
		recv, oc := ev.evalExpr(n.Receiver, e)
		if oc != nil {
			return nil, oc
		}
		idx, oc := ev.evalExpr(n.Idx, e)
		if oc != nil {
			return nil, oc
		}
		v, err := value.Index(recv, idx)
		return v, outcomeFromErr(err)

	case *ast.Call:
		return ev.evalCall(n, e)

	case *ast.Get:
		return ev.evalGet(n, e)

	case *ast.Assign:
		return ev.evalAssign(n, e)

	default:
		panic(fmt.Sprintf("eval: unhandled expression type %T", expr))
	}
}

func literalValue(n *ast.Literal) value.Value {
	switch n.Kind {
	case ast.LitNull:
		return value.Null
	case ast.LitBool:
		return value.Bool(n.Bool)
	case ast.LitNum:
		return value.Num(n.Num)
	case ast.LitStr:
		return value.Str(n.Str)
	default:
		return value.Null
	}
}

func (ev *Evaluator) evalUnary(n *ast.Unary, e *env.Env) (value.Value, *Outcome) {
	v, oc := ev.evalExpr(n.Operand, e)
	if oc != nil {
		return nil, oc
	}
	switch n.Op {
	case ast.OpNot:
		return value.Not(v), nil
	case ast.OpNeg:
		r, err := value.Neg(v)
		return r, outcomeFromErr(err)
	default:
		panic("eval: unhandled unary op " + n.Op)
	}
}

func (ev *Evaluator) evalBinary(n *ast.Binary, e *env.Env) (value.Value, *Outcome) {
	// and/or short-circuit and return the selected operand, not a Bool
	// (spec.md section 4.3).
	if n.Op == ast.OpAnd {
		l, oc := ev.evalExpr(n.Left, e)
		if oc != nil {
			return nil, oc
		}
		if !value.Truthy(l) {
			return l, nil
		}
		return ev.evalExpr(n.Right, e)
	}
	if n.Op == ast.OpOr {
		l, oc := ev.evalExpr(n.Left, e)
		if oc != nil {
			return nil, oc
		}
		if value.Truthy(l) {
			return l, nil
		}
		return ev.evalExpr(n.Right, e)
	}

	l, oc := ev.evalExpr(n.Left, e)
	if oc != nil {
		return nil, oc
	}

	if n.Op == ast.OpNullC {
		if _, isNull := l.(value.NullValue); !isNull {
			return l, nil
		}
		return ev.evalExpr(n.Right, e)
	}

	r, oc := ev.evalExpr(n.Right, e)
	if oc != nil {
		return nil, oc
	}

	switch n.Op {
	case ast.OpAdd:
		v, err := value.Add(l, r)
		return v, outcomeFromErr(err)
	case ast.OpSub:
		v, err := value.Sub(l, r)
		return v, outcomeFromErr(err)
	case ast.OpMul:
		v, err := value.Mul(l, r)
		return v, outcomeFromErr(err)
	case ast.OpDiv:
		v, err := value.Div(l, r)
		return v, outcomeFromErr(err)
	case ast.OpMod:
		v, err := value.Mod(l, r)
		return v, outcomeFromErr(err)
	case ast.OpPow:
		v, err := value.Pow(l, r)
		return v, outcomeFromErr(err)
	case ast.OpEq:
		return value.Bool(value.Equal(l, r)), nil
	case ast.OpNe:
		return value.Bool(!value.Equal(l, r)), nil
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		v, err := value.Compare(string(n.Op), l, r)
		return v, outcomeFromErr(err)
	default:
		panic("eval: unhandled binary op " + n.Op)
	}
}

func (ev *Evaluator) evalRange(n *ast.Range, e *env.Env) (value.Value, *Outcome) {
	startV, oc := ev.evalExpr(n.Start, e)
	if oc != nil {
		return nil, oc
	}
	endV, oc := ev.evalExpr(n.End, e)
	if oc != nil {
		return nil, oc
	}
	start, ok := startV.(value.Num)
	if !ok {
		return nil, outcomeFromErr(value.NewError(value.TypeErr, "range start must be Num, got %s", value.TypeName(startV)))
	}
	end, ok := endV.(value.Num)
	if !ok {
		return nil, outcomeFromErr(value.NewError(value.TypeErr, "range end must be Num, got %s", value.TypeName(endV)))
	}
	step := 1.0
	if n.Step != nil {
		stepV, oc := ev.evalExpr(n.Step, e)
		if oc != nil {
			return nil, oc
		}
		stepN, ok := stepV.(value.Num)
		if !ok {
			return nil, outcomeFromErr(value.NewError(value.TypeErr, "range step must be Num, got %s", value.TypeName(stepV)))
		}
		step = float64(stepN)
	}
	v, err := value.BuildRange(float64(start), float64(end), step, n.Inclusive)
	return v, outcomeFromErr(err)
}

func (ev *Evaluator) evalGet(n *ast.Get, e *env.Env) (value.Value, *Outcome) {
	recv, oc := ev.evalExpr(n.Receiver, e)
	if oc != nil {
		return nil, oc
	}
	switch rv := recv.(type) {
	case *value.Instance:
		if f, ok := rv.Fields[n.Name]; ok {
			return f, nil
		}
		if bound, ok := rv.Obj.Bind(n.Name, rv); ok {
			return bound, nil
		}
		return nil, outcomeFromErr(value.NewError(value.NameErr, "no member named %s on %s", n.Name, rv.Obj.Name))
	case *value.Obj:
		if m, ok := rv.Static[n.Name]; ok {
			return m, nil
		}
		return nil, outcomeFromErr(value.NewError(value.NameErr, "no static member named %s on %s", n.Name, rv.Name))
	default:
		if m, ok := ev.lookupPrototype(recv, n.Name); ok {
			return m, nil
		}
		return nil, outcomeFromErr(value.NewError(value.TypeErr, "value of type %s has no member %s", value.TypeName(recv), n.Name))
	}
}

func (ev *Evaluator) evalCall(n *ast.Call, e *env.Env) (value.Value, *Outcome) {
	callee, oc := ev.evalExpr(n.Callee, e)
	if oc != nil {
		return nil, oc
	}
	args := make([]value.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, oc := ev.evalExpr(a, e)
		if oc != nil {
			return nil, oc
		}
		args = append(args, v)
	}
	switch cv := callee.(type) {
	case *value.Obj:
		return ev.construct(cv, args)
	case *value.Callable:
		return ev.Call(cv, args)
	default:
		return nil, outcomeFromErr(value.NewError(value.TypeErr, "value of type %s is not callable", value.TypeName(callee)))
	}
}

// construct implements `ObjName(args...)` (spec.md section 4.4): an
// empty Instance is created, then, if declared, init is invoked with
// the instance bound as self.
func (ev *Evaluator) construct(obj *value.Obj, args []value.Value) (value.Value, *Outcome) {
	inst := value.NewInstance(obj)
	if obj.Init != nil {
		boundInit := *obj.Init
		boundInit.BoundSelf = inst
		if _, oc := ev.Call(&boundInit, args); oc != nil {
			return nil, oc
		}
	}
	return inst, nil
}

// Call invokes fn with already-evaluated args, implementing spec.md
// section 4.6's arity checking and bound-method self-supply.
func (ev *Evaluator) Call(fn *value.Callable, args []value.Value) (value.Value, *Outcome) {
	if fn.IsNative() {
		callArgs := args
		if fn.BoundSelf != nil {
			callArgs = append([]value.Value{fn.BoundSelf}, args...)
		}
		if fn.Arity >= 0 && len(callArgs) != fn.Arity {
			return nil, outcomeFromErr(value.NewError(value.ArityErr, "%s: expected %d argument(s), got %d", fn.Name, fn.Arity, len(callArgs)))
		}
		result, err := fn.Native(callArgs)
		if err != nil {
			return nil, outcomeFromErr(err)
		}
		return result, nil
	}

	closureEnv, _ := fn.Closure.ClosureEnv.(*env.Env)
	frame := env.New(closureEnv)
	params := fn.Closure.Params // never includes "self"; see execObjDecl
	if fn.BoundSelf != nil {
		frame.Define("self", fn.BoundSelf)
	}
	if len(params) != len(args) {
		return nil, outcomeFromErr(value.NewError(value.ArityErr, "%s: expected %d argument(s), got %d", fn.Name, len(params), len(args)))
	}
	for i, p := range params {
		frame.Define(p.Name, args[i])
	}

	outcome := ev.ExecStmt(fn.Closure.Body, frame)
	switch outcome.Kind {
	case Return:
		return outcome.Value, nil
	case Thrown:
		oc := outcome
		return nil, &oc
	default:
		return value.Null, nil
	}
}

func applyCompound(op ast.AssignOp, cur, rhs value.Value) (value.Value, error) {
	switch op {
	case ast.AsSet:
		return rhs, nil
	case ast.AsAdd:
		return value.Add(cur, rhs)
	case ast.AsSub:
		return value.Sub(cur, rhs)
	case ast.AsIncr:
		return value.Add(cur, value.Num(1))
	case ast.AsDecr:
		return value.Sub(cur, value.Num(1))
	default:
		return nil, fmt.Errorf("unknown assignment operator %s", op)
	}
}

func (ev *Evaluator) evalAssign(n *ast.Assign, e *env.Env) (value.Value, *Outcome) {
	needsRHS := n.Op != ast.AsIncr && n.Op != ast.AsDecr
	var rhs value.Value = value.Null
	if needsRHS {
		v, oc := ev.evalExpr(n.Value, e)
		if oc != nil {
			return nil, oc
		}
		rhs = v
	}

	switch target := n.Target.(type) {
	case *ast.Identifier:
		var cur value.Value
		if n.Op != ast.AsSet {
			c, ok := e.Lookup(target.Name)
			if !ok {
				return nil, outcomeFromErr(value.NewError(value.NameErr, "undefined name: %s", target.Name))
			}
			cur = c
		}
		nv, err := applyCompound(n.Op, cur, rhs)
		if err != nil {
			return nil, outcomeFromErr(err)
		}
		if !e.Assign(target.Name, nv) {
			return nil, outcomeFromErr(value.NewError(value.NameErr, "undefined name: %s", target.Name))
		}
		return nv, nil

	case *ast.Get:
		recv, oc := ev.evalExpr(target.Receiver, e)
		if oc != nil {
			return nil, oc
		}
		inst, ok := recv.(*value.Instance)
		if !ok {
			if _, isObj := recv.(*value.Obj); isObj {
				return nil, outcomeFromErr(value.NewError(value.TypeErr, "cannot assign static member %s", target.Name))
			}
			return nil, outcomeFromErr(value.NewError(value.TypeErr, "value of type %s has no assignable member %s", value.TypeName(recv), target.Name))
		}
		var cur value.Value
		if n.Op != ast.AsSet {
			c, ok := inst.Fields[target.Name]
			if !ok {
				return nil, outcomeFromErr(value.NewError(value.NameErr, "no field named %s on %s", target.Name, inst.Obj.Name))
			}
			cur = c
		}
		nv, err := applyCompound(n.Op, cur, rhs)
		if err != nil {
			return nil, outcomeFromErr(err)
		}
		inst.Fields[target.Name] = nv
		return nv, nil

	case *ast.Index:
		recv, oc := ev.evalExpr(target.Receiver, e)
		if oc != nil {
			return nil, oc
		}
		idx, oc := ev.evalExpr(target.Idx, e)
		if oc != nil {
			return nil, oc
		}
		var cur value.Value
		if n.Op != ast.AsSet {
			c, err := value.Index(recv, idx)
			if err != nil {
				return nil, outcomeFromErr(err)
			}
			cur = c
		}
		nv, err := applyCompound(n.Op, cur, rhs)
		if err != nil {
			return nil, outcomeFromErr(err)
		}
		if err := value.IndexSet(recv, idx, nv); err != nil {
			return nil, outcomeFromErr(err)
		}
		return nv, nil

	default:
		return nil, outcomeFromErr(value.NewError(value.TypeErr, "invalid assignment target"))
	}
}
