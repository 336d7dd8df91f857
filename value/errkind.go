package value

import "fmt"

// ErrKind is Quetite's closed set of runtime error kinds (spec.md
// section 7). SyntaxError is deliberately absent here: it is raised
// only by the lexer/parser, never as a runtime value.
type ErrKind string

const (
	NameErr   ErrKind = "NameErr"
	TypeErr   ErrKind = "TypeErr"
	ArityErr  ErrKind = "ArityErr"
	ValueErr  ErrKind = "ValueErr"
	NativeErr ErrKind = "NativeErr"
	IOErr     ErrKind = "IOErr"
	UserErr   ErrKind = "UserErr"
)

// RuntimeError is a Go error carrying a Quetite ErrKind and message. It
// is how value-model operations (arithmetic, indexing, hashing) signal
// a failure up to the evaluator, which turns it into a Thrown outcome
// via outcomeFromErr. Natives return it for their own failures too; the
// err() native instead produces an ErrObject (below).
type RuntimeError struct {
	ErrKind ErrKind
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrKind, e.Message)
}

func NewError(kind ErrKind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{ErrKind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrObject is the value produced by the err(kind, msg) native. When
// thrown, the evaluator reads ErrKind/Message directly instead of
// defaulting to UserErr (spec.md section 4.5, "Throw").
type ErrObject struct {
	ErrKind ErrKind
	Message string
}

func (*ErrObject) Kind() Kind { return KindInstance }

func (e *ErrObject) String() string { return fmt.Sprintf("%s: %s", e.ErrKind, e.Message) }

// TypeNameOverride reports the type name the err() object is displayed as.
func (e *ErrObject) TypeNameOverride() string { return "Error" }
