package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qewer33/quetite/ast"
	"github.com/qewer33/quetite/env"
	"github.com/qewer33/quetite/lexer"
	"github.com/qewer33/quetite/parser"
	"github.com/qewer33/quetite/value"
)

// noLoader rejects any `use` statement; tests that don't exercise `use`
// pass this in so an accidental `use` fails loudly instead of panicking
// on a nil func value.
func noLoader(path string) ([]ast.Stmt, error) {
	return nil, assertNever{path}
}

type assertNever struct{ path string }

func (a assertNever) Error() string { return "unexpected use of " + a.path }

func run(t *testing.T, src string) (*env.Env, Outcome) {
	t.Helper()
	tokens, err := lexer.Tokenize("t.qt", src)
	require.NoError(t, err)
	stmts, err := parser.Parse(tokens)
	require.NoError(t, err)
	global := env.New(nil)
	ev := New(global, noLoader)
	outcome := ev.Run(stmts, global)
	return global, outcome
}

func TestEval_VarDeclAndArithmetic(t *testing.T) {
	global, outcome := run(t, "var x = 2 + 3 * 4")
	require.Equal(t, Normal, outcome.Kind)
	v, ok := global.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Num(14), v)
}

func TestEval_FnCallAndReturn(t *testing.T) {
	global, outcome := run(t, `
fn add(a, b) do
	return a + b
end
var sum = add(2, 3)
`)
	require.Equal(t, Normal, outcome.Kind)
	v, _ := global.Lookup("sum")
	assert.Equal(t, value.Num(5), v)
}

func TestEval_ClosureCapturesByReference(t *testing.T) {
	// spec.md scenario 3: a counter closure observes later mutations
	// of the captured frame, not a snapshot taken at declaration time.
	global, outcome := run(t, `
fn make_counter() do
	var n = 0
	fn inc() do
		n += 1
		return n
	end
	return inc
end
var counter = make_counter()
var a = counter()
var b = counter()
`)
	require.Equal(t, Normal, outcome.Kind)
	a, _ := global.Lookup("a")
	b, _ := global.Lookup("b")
	assert.Equal(t, value.Num(1), a)
	assert.Equal(t, value.Num(2), b)
}

func TestEval_IfElse(t *testing.T) {
	global, _ := run(t, `
var x = 0
if 1 > 2 do
	x = 1
end else do
	x = 2
end
`)
	v, _ := global.Lookup("x")
	assert.Equal(t, value.Num(2), v)
}

func TestEval_WhileManualIncrement(t *testing.T) {
	global, outcome := run(t, `
var i = 0
var total = 0
while i < 5 do
	total += i
	i += 1
end
`)
	require.Equal(t, Normal, outcome.Kind)
	total, _ := global.Lookup("total")
	assert.Equal(t, value.Num(10), total)
}

func TestEval_WhileWithHeaderAndStep(t *testing.T) {
	// spec.md's counted-loop form: a "var" header scoped to the loop's
	// own frame, advanced by a "step" clause after every iteration.
	global, outcome := run(t, `
var total = 0
var i = 0 while i < 5 step i += 1 do
	total += i
end
`)
	require.Equal(t, Normal, outcome.Kind)
	total, _ := global.Lookup("total")
	assert.Equal(t, value.Num(10), total)

	// The header variable is scoped to the loop, not leaked into the
	// enclosing frame it runs in.
	_, ok := global.Lookup("i")
	assert.False(t, ok)
}

func TestEval_ForLoopOverRange(t *testing.T) {
	global, outcome := run(t, `
var total = 0
for v in 0..=3 do
	total += v
end
`)
	require.Equal(t, Normal, outcome.Kind)
	total, _ := global.Lookup("total")
	assert.Equal(t, value.Num(6), total)
}

func TestEval_ForLoopBreak(t *testing.T) {
	global, _ := run(t, `
var seen = 0
for v in 0..10 do
	if v == 3 do
		break
	end
	seen = v
end
`)
	seen, _ := global.Lookup("seen")
	assert.Equal(t, value.Num(2), seen)
}

func TestEval_MatchNoArmNoElseIsNoOp(t *testing.T) {
	global, outcome := run(t, `
var hit = 0
match 99 do
	1 hit = 1
	2 hit = 2
end
`)
	require.Equal(t, Normal, outcome.Kind)
	hit, _ := global.Lookup("hit")
	assert.Equal(t, value.Num(0), hit)
}

func TestEval_TryCatchEnsureAlwaysRuns(t *testing.T) {
	global, outcome := run(t, `
var cleaned = 0
var caught = ""
try do
	throw "boom"
end
catch kind, msg do
	caught = msg
end
ensure do
	cleaned = 1
end
`)
	require.Equal(t, Normal, outcome.Kind)
	caught, _ := global.Lookup("caught")
	cleaned, _ := global.Lookup("cleaned")
	assert.Equal(t, value.Str("boom"), caught)
	assert.Equal(t, value.Num(1), cleaned)
}

func TestEval_EnsureRunsEvenWithoutThrow(t *testing.T) {
	global, outcome := run(t, `
var cleaned = 0
try do
	var x = 1
end
catch kind, msg do
end
ensure do
	cleaned = 1
end
`)
	require.Equal(t, Normal, outcome.Kind)
	cleaned, _ := global.Lookup("cleaned")
	assert.Equal(t, value.Num(1), cleaned)
}

func TestEval_UncaughtThrowPropagatesAsThrownOutcome(t *testing.T) {
	_, outcome := run(t, `throw "boom"`)
	assert.Equal(t, Thrown, outcome.Kind)
	assert.Equal(t, value.UserErr, outcome.ErrKind)
	assert.Equal(t, value.Str("boom"), outcome.Value)
}

func TestEval_ObjBoundMethodImplicitSelf(t *testing.T) {
	global, outcome := run(t, `
obj Counter do
	init(start) do
		self.n = start
	end
	bump(self) do
		self.n += 1
	end
end
var c = Counter(5)
c.bump()
c.bump()
`)
	require.Equal(t, Normal, outcome.Kind)
	c, ok := global.Lookup("c")
	require.True(t, ok)
	inst, ok := c.(*value.Instance)
	require.True(t, ok)
	assert.Equal(t, value.Num(7), inst.Fields["n"])
}

func TestEval_ObjStaticMethodHasNoSelf(t *testing.T) {
	global, outcome := run(t, `
obj Util do
	zero() do
		return 0
	end
end
var z = Util.zero()
`)
	require.Equal(t, Normal, outcome.Kind)
	z, _ := global.Lookup("z")
	assert.Equal(t, value.Num(0), z)
}

func TestEval_NameErrOnUndefinedAssign(t *testing.T) {
	_, outcome := run(t, `undefined_var = 1`)
	assert.Equal(t, Thrown, outcome.Kind)
	assert.Equal(t, value.NameErr, outcome.ErrKind)
}

func TestEval_IndexOutOfBoundsIsValueErr(t *testing.T) {
	_, outcome := run(t, `
var xs = [1, 2, 3]
var y = xs[10]
`)
	assert.Equal(t, Thrown, outcome.Kind)
	assert.Equal(t, value.ValueErr, outcome.ErrKind)
}
