package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qewer33/quetite/ast"
	"github.com/qewer33/quetite/lexer"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, err := lexer.Tokenize("t.qt", src)
	require.NoError(t, err)
	stmts, err := Parse(tokens)
	require.NoError(t, err)
	return stmts
}

func TestParse_NumberLiteral(t *testing.T) {
	stmts := parse(t, "12")
	require.Len(t, stmts, 1)
	es, ok := stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	lit, ok := es.Expr.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.LitNum, lit.Kind)
	assert.Equal(t, 12.0, lit.Num)
}

func TestParse_PrecedenceMulBeforeSub(t *testing.T) {
	stmts := parse(t, "28 - 13 * 2")
	es := stmts[0].(*ast.ExprStmt)
	bin, ok := es.Expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpSub, bin.Op)
	_, leftIsLit := bin.Left.(*ast.Literal)
	assert.True(t, leftIsLit)
	right, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, right.Op)
}

func TestParse_PowIsRightAssociative(t *testing.T) {
	// 2 ** 3 ** 2 should parse as 2 ** (3 ** 2)
	stmts := parse(t, "2 ** 3 ** 2")
	bin := stmts[0].(*ast.ExprStmt).Expr.(*ast.Binary)
	assert.Equal(t, ast.OpPow, bin.Op)
	_, leftIsLit := bin.Left.(*ast.Literal)
	assert.True(t, leftIsLit)
	rightBin, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, rightBin.Op)
}

func TestParse_TernaryIsRightAssociative(t *testing.T) {
	stmts := parse(t, "a ? b : c ? d : e")
	tern := stmts[0].(*ast.ExprStmt).Expr.(*ast.Ternary)
	_, elseIsTernary := tern.Else.(*ast.Ternary)
	assert.True(t, elseIsTernary)
}

func TestParse_CallChain(t *testing.T) {
	stmts := parse(t, `thing.method(1, 2)[0]`)
	idx := stmts[0].(*ast.ExprStmt).Expr.(*ast.Index)
	call, ok := idx.Receiver.(*ast.Call)
	require.True(t, ok)
	get, ok := call.Callee.(*ast.Get)
	require.True(t, ok)
	assert.Equal(t, "method", get.Name)
	assert.Len(t, call.Args, 2)
}

func TestParse_RangeWithStep(t *testing.T) {
	stmts := parse(t, "0..=10 step 2")
	rng := stmts[0].(*ast.ExprStmt).Expr.(*ast.Range)
	assert.True(t, rng.Inclusive)
	assert.NotNil(t, rng.Step)
}

func TestParse_WhileWithCountedLoopHeader(t *testing.T) {
	stmts := parse(t, "var i = 0 while i < 3 step i += 1 do end")
	w, ok := stmts[0].(*ast.While)
	require.True(t, ok)
	require.NotNil(t, w.Header)
	assert.Equal(t, "i", w.Header.Name)
	assert.NotNil(t, w.Step)
}

func TestParse_PlainVarDeclIsStillAVarDecl(t *testing.T) {
	// A "var" not followed by "while" on the same line is a standalone
	// declaration, not misrouted into whileStmt's header parsing.
	stmts := parse(t, "var x = 1\nwhile x do end")
	require.Len(t, stmts, 2)
	_, ok := stmts[0].(*ast.VarDecl)
	require.True(t, ok)
	w, ok := stmts[1].(*ast.While)
	require.True(t, ok)
	assert.Nil(t, w.Header)
}

func TestParse_WhileWithHeaderButNoStep(t *testing.T) {
	stmts := parse(t, "var i = 0 while i < 3 do end")
	w, ok := stmts[0].(*ast.While)
	require.True(t, ok)
	require.NotNil(t, w.Header)
	assert.Nil(t, w.Step)
}

func TestParse_IfElseIf(t *testing.T) {
	stmts := parse(t, "if a do end else if b do end else do end")
	ifStmt := stmts[0].(*ast.If)
	elseIf, ok := ifStmt.Else.(*ast.If)
	require.True(t, ok)
	_, ok = elseIf.Else.(*ast.Block)
	assert.True(t, ok)
}

func TestParse_FnDecl(t *testing.T) {
	stmts := parse(t, "fn add(a, b) do return a + b end")
	fn, ok := stmts[0].(*ast.FnDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	require.Len(t, fn.Body.Decls, 1)
	_, ok = fn.Body.Decls[0].(*ast.Return)
	assert.True(t, ok)
}

func TestParse_ObjDeclWithBoundAndStaticMethods(t *testing.T) {
	src := `
obj Counter do
	init(start) do
		self.n = start
	end
	bump(self) do
		self.n += 1
	end
	zero() do
		return 0
	end
end
`
	stmts := parse(t, src)
	obj, ok := stmts[0].(*ast.ObjDecl)
	require.True(t, ok)
	assert.Equal(t, "Counter", obj.Name)
	require.Len(t, obj.Methods, 3)
	assert.Equal(t, "init", obj.Methods[0].Name)
	assert.Equal(t, "bump", obj.Methods[1].Name)
	assert.Equal(t, "zero", obj.Methods[2].Name)
}

func TestParse_TryCatchEnsure(t *testing.T) {
	src := `
try do
	throw "boom"
end
catch kind, msg do
	println(msg)
end
ensure do
	println("cleanup")
end
`
	stmts := parse(t, src)
	tryStmt, ok := stmts[0].(*ast.Try)
	require.True(t, ok)
	assert.Equal(t, "kind", tryStmt.ErrName)
	assert.Equal(t, "msg", tryStmt.ValName)
	assert.NotNil(t, tryStmt.Ensure)
}

func TestParse_MatchWithElse(t *testing.T) {
	src := `
match x do
	1 println("one")
	2 println("two")
	else println("other")
end
`
	stmts := parse(t, src)
	m, ok := stmts[0].(*ast.Match)
	require.True(t, ok)
	require.Len(t, m.Arms, 2)
	assert.NotNil(t, m.Else)
}

func TestParse_BreakOutsideLoopIsSyntaxError(t *testing.T) {
	tokens, err := lexer.Tokenize("t.qt", "break")
	require.NoError(t, err)
	_, err = Parse(tokens)
	require.Error(t, err)
}

func TestParse_ForLoopWithIndex(t *testing.T) {
	stmts := parse(t, "for v, i in list do end")
	f, ok := stmts[0].(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "v", f.ValueName)
	assert.Equal(t, "i", f.IndexName)
}
