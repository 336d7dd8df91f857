/*
Package ast defines Quetite's abstract syntax tree: tagged-variant
expression and statement nodes, each carrying the source.Span it was
parsed from (spec.md section 3). Nodes are pure data — parsed once and
then shared, immutably, between the top-level program, captured
function bodies, and instance methods. The evaluator dispatches on the
concrete Go type with a type switch rather than a visitor interface,
since Quetite's grammar is small enough that one switch per concern
(statement execution, expression evaluation) reads more plainly than a
visitor with one method for each of the 27 node types would.
*/
package ast

import "github.com/qewer33/quetite/source"

// Node is the common root of every expression and statement node.
type Node interface {
	Span() source.Span
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

type Base struct{ Sp source.Span }

func (b Base) Span() source.Span { return b.Sp }

// ---- Literals and primaries ----

// LitKind tags the kind of value a Literal expression carries.
type LitKind int

const (
	LitNull LitKind = iota
	LitBool
	LitNum
	LitStr
)

// Literal is a constant Null, Bool, Num, or Str value baked into the AST.
type Literal struct {
	Base
	Kind LitKind
	Bool bool
	Num  float64
	Str  string
}

func (*Literal) exprNode() {}

// ListLiteral is a `[e1, e2, ...]` expression.
type ListLiteral struct {
	Base
	Elements []Expr
}

func (*ListLiteral) exprNode() {}

// DictEntry is one `key: value` pair inside a DictLiteral.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// DictLiteral is a `{k1: v1, k2: v2, ...}` expression.
type DictLiteral struct {
	Base
	Entries []DictEntry
}

func (*DictLiteral) exprNode() {}

// Identifier is a bare name reference, resolved against the environment.
type Identifier struct {
	Base
	Name string
}

func (*Identifier) exprNode() {}

// UnaryOp enumerates the unary operators.
type UnaryOp string

const (
	OpNot UnaryOp = "!"
	OpNeg UnaryOp = "-"
)

// Unary is `!expr` or `-expr`.
type Unary struct {
	Base
	Op      UnaryOp
	Operand Expr
}

func (*Unary) exprNode() {}

// BinOp enumerates binary operators: arithmetic, comparison, logical,
// and the nullish-coalescing `??`.
type BinOp string

const (
	OpAdd   BinOp = "+"
	OpSub   BinOp = "-"
	OpMul   BinOp = "*"
	OpDiv   BinOp = "/"
	OpMod   BinOp = "%"
	OpPow   BinOp = "**"
	OpEq    BinOp = "=="
	OpNe    BinOp = "!="
	OpLt    BinOp = "<"
	OpLe    BinOp = "<="
	OpGt    BinOp = ">"
	OpGe    BinOp = ">="
	OpAnd   BinOp = "and"
	OpOr    BinOp = "or"
	OpNullC BinOp = "??"
)

// Binary is `left op right`.
type Binary struct {
	Base
	Op    BinOp
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}

// Ternary is `cond ? then : else` (right-associative per spec.md).
type Ternary struct {
	Base
	Cond Expr
	Then Expr
	Else Expr
}

func (*Ternary) exprNode() {}

// Range is `start..end`, `start..=end`, optionally `step s`.
type Range struct {
	Base
	Start     Expr
	End       Expr
	Inclusive bool
	Step      Expr // nil if not given
}

func (*Range) exprNode() {}

// Index is `receiver[index]`.
type Index struct {
	Base
	Receiver Expr
	Idx      Expr
}

func (*Index) exprNode() {}

// Call is `callee(args...)`.
type Call struct {
	Base
	Callee Expr
	Args   []Expr
}

func (*Call) exprNode() {}

// Get is `receiver.name`, dotted property/method access.
type Get struct {
	Base
	Receiver Expr
	Name     string
}

func (*Get) exprNode() {}

// AssignOp enumerates assignment-expression operators.
type AssignOp string

const (
	AsSet    AssignOp = "="
	AsAdd    AssignOp = "+="
	AsSub    AssignOp = "-="
	AsIncr   AssignOp = "++"
	AsDecr   AssignOp = "--"
)

// Assign is an assignment expression; Target is an *Identifier, *Get,
// or *Index. Value is nil for the unary ++ / -- forms.
type Assign struct {
	Base
	Target Expr
	Op     AssignOp
	Value  Expr
}

func (*Assign) exprNode() {}

// ---- Statements ----

// ExprStmt is a bare expression evaluated for effect.
type ExprStmt struct {
	Base
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// VarDecl is `var name` or `var name = init`.
type VarDecl struct {
	Base
	Name string
	Init Expr // nil if not given
}

func (*VarDecl) stmtNode() {}

// Param is a single declared function parameter name.
type Param struct {
	Name string
}

// FnDecl is `fn name(params) block`.
type FnDecl struct {
	Base
	Name   string
	Params []Param
	Body   *Block
}

func (*FnDecl) stmtNode() {}

// ObjDecl is `obj name do method* end`.
type ObjDecl struct {
	Base
	Name    string
	Methods []*FnDecl
}

func (*ObjDecl) stmtNode() {}

// Block is `do declaration* end`, a statement sequence with its own scope.
type Block struct {
	Base
	Decls []Stmt
}

func (*Block) stmtNode() {}

// If is `if cond block (else (if|block))?`.
type If struct {
	Base
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

func (*If) stmtNode() {}

// While is `(var name = init)? while cond (step assign)? block`.
type While struct {
	Base
	Header *VarDecl // nil if absent
	Cond   Expr
	Step   Expr // an *Assign, nil if absent
	Body   Stmt
}

func (*While) stmtNode() {}

// For is `for valueName (, indexName)? in iterable block`.
type For struct {
	Base
	ValueName string
	IndexName string // "" if absent
	Iterable  Expr
	Body      Stmt
}

func (*For) stmtNode() {}

// MatchArm is one `pattern statement` arm of a Match.
type MatchArm struct {
	Pattern Expr
	Body    Stmt
}

// Match is `match discriminant do arm* (else statement)? end`.
type Match struct {
	Base
	Discriminant Expr
	Arms         []MatchArm
	Else         Stmt // nil if absent
}

func (*Match) stmtNode() {}

// Return is `return expr`.
type Return struct {
	Base
	Value Expr
}

func (*Return) stmtNode() {}

// Break is a bare `break`.
type Break struct{ Base }

func (*Break) stmtNode() {}

// Continue is a bare `continue`.
type Continue struct{ Base }

func (*Continue) stmtNode() {}

// Throw is `throw expr`.
type Throw struct {
	Base
	Value Expr
}

func (*Throw) stmtNode() {}

// Try is `try block catch (errName (, valName)?)? block (ensure block)?`.
type Try struct {
	Base
	Body    Stmt
	ErrName string // "" if absent
	ValName string // "" if absent
	Catch   Stmt
	Ensure  Stmt // nil if absent
}

func (*Try) stmtNode() {}

// Use is `use path`.
type Use struct {
	Base
	Path Expr
}

func (*Use) stmtNode() {}

// NewBase constructs the embeddable span-holder for a node; exported
// so the parser can build nodes spanning exactly the tokens consumed.
func NewBase(sp source.Span) Base { return Base{Sp: sp} }
