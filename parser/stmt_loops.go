package parser

import (
	"github.com/qewer33/quetite/ast"
	"github.com/qewer33/quetite/lexer"
)

// whileStmt → ( "var" IDENT "=" expression )? "while" expression
//             ( "step" assignment )? block
func (p *Parser) whileStmt() ast.Stmt {
	start := p.current()
	var header *ast.VarDecl
	if p.check(lexer.KwVar) {
		// Parsed inline rather than via varDecl(): the header has no
		// statement terminator of its own, it runs straight into the
		// "while" keyword that follows on the same line.
		varStart := p.advance() // 'var'
		nameTok := p.expect(lexer.IDENT, "after 'var'")
		var init ast.Expr
		if p.match(lexer.Assign) {
			init = p.expression()
		}
		header = &ast.VarDecl{Base: ast.NewBase(varStart.Span), Name: nameTok.Lexeme, Init: init}
	}
	p.expect(lexer.KwWhile, "to start a while loop")
	cond := p.expression()
	var step ast.Expr
	if p.match(lexer.KwStep) {
		step = p.assignment()
	}
	p.loopDepth++
	body := p.block()
	p.loopDepth--
	return &ast.While{Base: ast.NewBase(start.Span), Header: header, Cond: cond, Step: step, Body: body}
}

// forStmt → "for" IDENT ( "," IDENT )? "in" expression block
func (p *Parser) forStmt() ast.Stmt {
	start := p.advance() // 'for'
	valueTok := p.expect(lexer.IDENT, "as for-loop variable")
	indexName := ""
	if p.match(lexer.Comma) {
		indexName = p.expect(lexer.IDENT, "as for-loop index variable").Lexeme
	}
	p.expect(lexer.KwIn, "in for loop")
	iterable := p.expression()
	p.loopDepth++
	body := p.block()
	p.loopDepth--
	return &ast.For{Base: ast.NewBase(start.Span), ValueName: valueTok.Lexeme, IndexName: indexName, Iterable: iterable, Body: body}
}

// matchStmt → "match" expression "do" ( expression statement )*
//             ( "else" statement )? "end"
func (p *Parser) matchStmt() ast.Stmt {
	start := p.advance() // 'match'
	discriminant := p.expression()
	p.expect(lexer.KwDo, "to start match body")
	p.skipEOLs()
	var arms []ast.MatchArm
	var elseStmt ast.Stmt
	for !p.check(lexer.KwEnd) && !p.check(lexer.EOF) {
		if p.match(lexer.KwElse) {
			elseStmt = p.statement()
		} else {
			pattern := p.expression()
			body := p.statement()
			arms = append(arms, ast.MatchArm{Pattern: pattern, Body: body})
		}
		p.skipEOLs()
	}
	p.expect(lexer.KwEnd, "to close match body")
	return &ast.Match{Base: ast.NewBase(start.Span), Discriminant: discriminant, Arms: arms, Else: elseStmt}
}
