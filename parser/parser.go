/*
Package parser implements Quetite's recursive-descent parser
(spec.md section 4.2): a consumer of the lexer's token stream that
produces a list of top-level statements, reporting syntax errors with
spans and refusing to hand back a program while any are outstanding.

Grounded on parser.Parser's driver-loop/error-batching shape
(parser/parser.go) and the split-by-concern file layout
(parser_expressions.go, parser_controls.go, parser_loops.go,
parser_functions.go, parser_structs.go) from the teacher, adapted to
spec.md's smaller grammar (no let/const typing, no switch/enum, structs
renamed to `obj`).
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/qewer33/quetite/ast"
	"github.com/qewer33/quetite/lexer"
)

// ParseErrors aggregates every syntax error found during a parse,
// reported as a group per spec.md section 4.2.
type ParseErrors struct {
	Errors []*lexer.SyntaxError
}

func (p *ParseErrors) Error() string {
	var sb strings.Builder
	for i, e := range p.Errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Parser consumes a fixed token slice produced by the lexer.
type Parser struct {
	tokens  []lexer.Token
	pos     int
	errors  []*lexer.SyntaxError
	loopDepth int // >0 inside a while/for body, enables break/continue
	fnDepth   int // >0 inside a function body, enables return
}

// New creates a Parser over an already-tokenized source.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a whole program: declaration* EOF. It always returns
// every statement it could recover, but also returns a non-nil
// *ParseErrors when any syntax errors were found — the caller must
// refuse to evaluate in that case (spec.md section 4.2).
func Parse(tokens []lexer.Token) ([]ast.Stmt, error) {
	p := New(tokens)
	var stmts []ast.Stmt
	for !p.check(lexer.EOF) {
		p.skipEOLs()
		if p.check(lexer.EOF) {
			break
		}
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if len(p.errors) > 0 {
		return stmts, &ParseErrors{Errors: p.errors}
	}
	return stmts, nil
}

// ---- token stream helpers ----

func (p *Parser) current() lexer.Token { return p.tokens[p.pos] }

func (p *Parser) check(k lexer.Kind) bool { return p.current().Kind == k }

func (p *Parser) checkAny(ks ...lexer.Kind) bool {
	for _, k := range ks {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if tok.Kind != lexer.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) match(ks ...lexer.Kind) bool {
	if p.checkAny(ks...) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind k, else records a
// syntax error and returns the current token without consuming it.
func (p *Parser) expect(k lexer.Kind, context string) lexer.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorf("expected %s %s, got %s %q", k, context, p.current().Kind, p.current().Lexeme)
	return p.current()
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, &lexer.SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Span:    p.current().Span,
	})
}

// skipEOLs consumes any run of EOL tokens; declarations and blocks may
// be separated by blank lines.
func (p *Parser) skipEOLs() {
	for p.check(lexer.EOL) {
		p.advance()
	}
}

// endOfStatement consumes the EOL that terminates a simple statement.
// EOF, or a following end/else/catch/ensure keyword, also ends the
// statement and is left unconsumed; anything else records a syntax error.
func (p *Parser) endOfStatement() {
	if p.check(lexer.EOL) {
		p.advance()
		return
	}
	if p.check(lexer.EOF) || p.checkAny(lexer.KwEnd, lexer.KwElse, lexer.KwCatch, lexer.KwEnsure) {
		return
	}
	p.errorf("expected end of statement, got %q", p.current().Lexeme)
	p.synchronize()
}

// synchronize discards tokens until the next EOL or a statement-
// starting keyword, so one syntax error doesn't cascade into dozens
// (spec.md section 4.2, "Error recovery").
func (p *Parser) synchronize() {
	for !p.check(lexer.EOF) {
		if p.check(lexer.EOL) {
			p.advance()
			return
		}
		switch p.current().Kind {
		case lexer.KwFn, lexer.KwObj, lexer.KwVar, lexer.KwIf, lexer.KwFor,
			lexer.KwWhile, lexer.KwReturn, lexer.KwTry, lexer.KwMatch,
			lexer.KwThrow, lexer.KwUse, lexer.KwEnd:
			return
		}
		p.advance()
	}
}

// ---- top-level dispatch ----

func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.check(lexer.KwFn):
		return p.fnDecl()
	case p.check(lexer.KwObj):
		return p.objDecl()
	case p.check(lexer.KwVar):
		// A leading "var" is ambiguous: it's either a standalone var
		// statement, or a while loop's counted-loop header (spec.md
		// section 4.2: "var IDENT = expression while ..."), which
		// whileStmt itself parses.
		if p.startsWhileHeader() {
			return p.whileStmt()
		}
		return p.varDecl()
	default:
		return p.statement()
	}
}

// startsWhileHeader reports whether the "var" declaration starting at
// the current token is actually a while loop's header by scanning
// ahead, within the same statement, for a "while" keyword before the
// next EOL/EOF. "while" is a reserved keyword that can never appear
// inside an expression, so this lookahead never needs to backtrack.
func (p *Parser) startsWhileHeader() bool {
	for i := p.pos; i < len(p.tokens); i++ {
		switch p.tokens[i].Kind {
		case lexer.KwWhile:
			return true
		case lexer.EOL, lexer.EOF:
			return false
		}
	}
	return false
}

func (p *Parser) varDecl() ast.Stmt {
	start := p.advance() // 'var'
	nameTok := p.expect(lexer.IDENT, "after 'var'")
	var init ast.Expr
	if p.match(lexer.Assign) {
		init = p.expression()
	}
	p.endOfStatement()
	return &ast.VarDecl{Base: ast.NewBase(start.Span), Name: nameTok.Lexeme, Init: init}
}

func (p *Parser) params() []ast.Param {
	p.expect(lexer.LParen, "to start parameter list")
	var params []ast.Param
	if !p.check(lexer.RParen) {
		for {
			// "self" lexes as the reserved KwSelf, not IDENT, but a bound
			// method's first parameter must literally be named self
			// (spec.md's bound-method rule), so it's accepted here too.
			var tok lexer.Token
			if p.check(lexer.KwSelf) {
				tok = p.advance()
			} else {
				tok = p.expect(lexer.IDENT, "in parameter list")
			}
			params = append(params, ast.Param{Name: tok.Lexeme})
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.expect(lexer.RParen, "to close parameter list")
	return params
}

func (p *Parser) fnDecl() ast.Stmt {
	start := p.advance() // 'fn'
	nameTok := p.expect(lexer.IDENT, "after 'fn'")
	params := p.params()
	p.fnDepth++
	body := p.fnBody()
	p.fnDepth--
	return &ast.FnDecl{Base: ast.NewBase(start.Span), Name: nameTok.Lexeme, Params: params, Body: body}
}

// fnBody parses either a `do ... end` block or, per spec.md's grammar
// (funDecl → ... ( block | statement )), a single trailing statement,
// which is wrapped in a Block for uniform evaluation.
func (p *Parser) fnBody() *ast.Block {
	if p.check(lexer.KwDo) {
		return p.block()
	}
	start := p.current().Span
	stmt := p.statement()
	decls := []ast.Stmt{}
	if stmt != nil {
		decls = append(decls, stmt)
	}
	return &ast.Block{Base: ast.NewBase(start), Decls: decls}
}

func (p *Parser) objDecl() ast.Stmt {
	start := p.advance() // 'obj'
	nameTok := p.expect(lexer.IDENT, "after 'obj'")
	p.expect(lexer.KwDo, "to start obj body")
	var methods []*ast.FnDecl
	p.skipEOLs()
	for !p.check(lexer.KwEnd) && !p.check(lexer.EOF) {
		mStart := p.current()
		mNameTok := p.expect(lexer.IDENT, "as method name")
		mParams := p.params()
		p.fnDepth++
		mBody := p.block()
		p.fnDepth--
		methods = append(methods, &ast.FnDecl{Base: ast.NewBase(mStart.Span), Name: mNameTok.Lexeme, Params: mParams, Body: mBody})
		p.skipEOLs()
	}
	p.expect(lexer.KwEnd, "to close obj body")
	return &ast.ObjDecl{Base: ast.NewBase(start.Span), Name: nameTok.Lexeme, Methods: methods}
}

// block → "do" declaration* "end"
func (p *Parser) block() *ast.Block {
	start := p.expect(lexer.KwDo, "to start block")
	var decls []ast.Stmt
	p.skipEOLs()
	for !p.check(lexer.KwEnd) && !p.check(lexer.EOF) {
		if d := p.declaration(); d != nil {
			decls = append(decls, d)
		}
		p.skipEOLs()
	}
	p.expect(lexer.KwEnd, "to close block")
	return &ast.Block{Base: ast.NewBase(start.Span), Decls: decls}
}

func (p *Parser) statement() ast.Stmt {
	switch p.current().Kind {
	case lexer.KwIf:
		return p.ifStmt()
	case lexer.KwMatch:
		return p.matchStmt()
	case lexer.KwFor:
		return p.forStmt()
	case lexer.KwVar, lexer.KwWhile:
		return p.whileStmt()
	case lexer.KwReturn:
		return p.returnStmt()
	case lexer.KwBreak:
		return p.breakStmt()
	case lexer.KwContinue:
		return p.continueStmt()
	case lexer.KwThrow:
		return p.throwStmt()
	case lexer.KwTry:
		return p.tryStmt()
	case lexer.KwUse:
		return p.useStmt()
	case lexer.KwDo:
		return p.block()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) exprStmt() ast.Stmt {
	start := p.current().Span
	expr := p.expression()
	p.endOfStatement()
	return &ast.ExprStmt{Base: ast.NewBase(start), Expr: expr}
}

func (p *Parser) ifStmt() ast.Stmt {
	start := p.advance() // 'if'
	cond := p.expression()
	then := p.block()
	var elseStmt ast.Stmt
	if p.match(lexer.KwElse) {
		if p.check(lexer.KwIf) {
			elseStmt = p.ifStmt()
		} else {
			elseStmt = p.block()
		}
	}
	return &ast.If{Base: ast.NewBase(start.Span), Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) returnStmt() ast.Stmt {
	start := p.advance() // 'return'
	if p.fnDepth == 0 {
		p.errors = append(p.errors, &lexer.SyntaxError{Message: "'return' outside a function", Span: start.Span})
	}
	var value ast.Expr
	if !p.check(lexer.EOL) && !p.check(lexer.EOF) {
		value = p.expression()
	}
	p.endOfStatement()
	return &ast.Return{Base: ast.NewBase(start.Span), Value: value}
}

func (p *Parser) breakStmt() ast.Stmt {
	start := p.advance()
	if p.loopDepth == 0 {
		p.errors = append(p.errors, &lexer.SyntaxError{Message: "'break' outside a loop", Span: start.Span})
	}
	p.endOfStatement()
	return &ast.Break{Base: ast.NewBase(start.Span)}
}

func (p *Parser) continueStmt() ast.Stmt {
	start := p.advance()
	if p.loopDepth == 0 {
		p.errors = append(p.errors, &lexer.SyntaxError{Message: "'continue' outside a loop", Span: start.Span})
	}
	p.endOfStatement()
	return &ast.Continue{Base: ast.NewBase(start.Span)}
}

func (p *Parser) throwStmt() ast.Stmt {
	start := p.advance() // 'throw'
	value := p.expression()
	p.endOfStatement()
	return &ast.Throw{Base: ast.NewBase(start.Span), Value: value}
}

func (p *Parser) useStmt() ast.Stmt {
	start := p.advance() // 'use'
	path := p.expression()
	p.endOfStatement()
	return &ast.Use{Base: ast.NewBase(start.Span), Path: path}
}

// tryStmt → "try" block "catch" ( IDENT ( "," IDENT )? )? block ( "ensure" block )?
func (p *Parser) tryStmt() ast.Stmt {
	start := p.advance() // 'try'
	body := p.block()
	p.skipEOLs()
	p.expect(lexer.KwCatch, "after try block")
	var errName, valName string
	if p.check(lexer.IDENT) {
		errName = p.advance().Lexeme
		if p.match(lexer.Comma) {
			valName = p.expect(lexer.IDENT, "as second catch binding").Lexeme
		}
	}
	catch := p.block()
	p.skipEOLs()
	var ensure ast.Stmt
	if p.match(lexer.KwEnsure) {
		ensure = p.block()
	}
	return &ast.Try{Base: ast.NewBase(start.Span), Body: body, ErrName: errName, ValName: valName, Catch: catch, Ensure: ensure}
}

