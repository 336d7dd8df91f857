package eval

import "github.com/qewer33/quetite/value"

// Kind tags what kind of result executing a statement produced
// (spec.md section 4.5). Every statement executor inspects and
// propagates the first non-Normal outcome it receives from a nested
// statement, which is how return/break/continue/throw unwind without
// Go panics.
type Kind int

const (
	Normal Kind = iota
	Return
	Break
	Continue
	Thrown
)

// Outcome is the result of executing a Stmt. Value carries the
// returned value (Return) or the thrown payload (Thrown); ErrKind is
// only meaningful when Kind == Thrown.
type Outcome struct {
	Kind    Kind
	Value   value.Value
	ErrKind value.ErrKind
}

var normal = Outcome{Kind: Normal}

// outcomeFromErr lifts a value-package error (always a *value.RuntimeError
// in practice) into a Thrown Outcome, or returns nil for a nil error —
// letting call sites write `v, err := value.Add(a, b); return v, outcomeFromErr(err)`
// uniformly.
func outcomeFromErr(err error) *Outcome {
	if err == nil {
		return nil
	}
	if re, ok := err.(*value.RuntimeError); ok {
		return &Outcome{Kind: Thrown, ErrKind: re.ErrKind, Value: value.Str(re.Message)}
	}
	return &Outcome{Kind: Thrown, ErrKind: value.NativeErr, Value: value.Str(err.Error())}
}

// throwValue implements spec.md section 4.5's Throw rule: a thrown
// *value.ErrObject (from the err() native) carries its own kind and
// message; any other thrown value is wrapped as UserErr.
func throwValue(v value.Value) Outcome {
	if eo, ok := v.(*value.ErrObject); ok {
		return Outcome{Kind: Thrown, ErrKind: eo.ErrKind, Value: value.Str(eo.Message)}
	}
	return Outcome{Kind: Thrown, ErrKind: value.UserErr, Value: v}
}
