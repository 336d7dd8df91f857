/*
expr.go implements spec.md section 4.2's expression grammar by
precedence climbing:

	expression → assignment
	assignment → ternary ( ( "=" | "+=" | "-=" ) assignment | "++" | "--" )?
	ternary    → logicalOr ( "?" expression ":" ternary )?
	logicalOr  → logicalAnd ( "or" logicalAnd )*
	logicalAnd → equality ( "and" equality )*
	equality   → comparison ( ( "==" | "!=" ) comparison )*
	comparison → range ( ( "<" | "<=" | ">" | ">=" ) range )*
	range      → term ( ( ".." | "..=" ) term ( "step" term )? )?
	term       → factor ( ( "+" | "-" ) factor )*
	factor     → unary ( ( "*" | "/" | "%" | "**" | "??" ) unary )*
	unary      → ( "!" | "-" ) unary | call
	call       → primary ( "(" args? ")" | "." IDENT | "[" expr "]" )*
	primary    → NUM | STR | "true" | "false" | "Null" | IDENT | "self"
	           | "(" expression ")" | "[" list? "]" | "{" dict? "}"

`**` is parsed right-associative; every other binary operator here is
left-associative, matching spec.md section 4.2.
*/
package parser

import (
	"strconv"

	"github.com/qewer33/quetite/ast"
	"github.com/qewer33/quetite/lexer"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignableTarget reports whether expr is a legal assignment target:
// an Identifier, a Get, or an Index (spec.md section 3).
func assignableTarget(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.Get, *ast.Index:
		return true
	default:
		return false
	}
}

func (p *Parser) assignment() ast.Expr {
	left := p.ternary()

	if p.checkAny(lexer.PlusPlus, lexer.MinusMin) {
		op := ast.AsIncr
		if p.current().Kind == lexer.MinusMin {
			op = ast.AsDecr
		}
		tok := p.advance()
		if !assignableTarget(left) {
			p.errorf("invalid assignment target")
		}
		return &ast.Assign{Base: ast.NewBase(tok.Span), Target: left, Op: op}
	}

	if p.checkAny(lexer.Assign, lexer.PlusEq, lexer.MinusEq) {
		var op ast.AssignOp
		switch p.current().Kind {
		case lexer.Assign:
			op = ast.AsSet
		case lexer.PlusEq:
			op = ast.AsAdd
		case lexer.MinusEq:
			op = ast.AsSub
		}
		tok := p.advance()
		if !assignableTarget(left) {
			p.errorf("invalid assignment target")
		}
		value := p.assignment() // right-associative
		return &ast.Assign{Base: ast.NewBase(tok.Span), Target: left, Op: op, Value: value}
	}

	return left
}

func (p *Parser) ternary() ast.Expr {
	cond := p.logicalOr()
	if p.match(lexer.Question) {
		then := p.expression()
		p.expect(lexer.Colon, "in ternary expression")
		els := p.ternary() // right-associative
		return &ast.Ternary{Base: ast.NewBase(cond.Span()), Cond: cond, Then: then, Else: els}
	}
	return cond
}

func (p *Parser) logicalOr() ast.Expr {
	left := p.logicalAnd()
	for p.match(lexer.KwOr) {
		right := p.logicalAnd()
		left = &ast.Binary{Base: ast.NewBase(left.Span()), Op: ast.OpOr, Left: left, Right: right}
	}
	return left
}

func (p *Parser) logicalAnd() ast.Expr {
	left := p.equality()
	for p.match(lexer.KwAnd) {
		right := p.equality()
		left = &ast.Binary{Base: ast.NewBase(left.Span()), Op: ast.OpAnd, Left: left, Right: right}
	}
	return left
}

func (p *Parser) equality() ast.Expr {
	left := p.comparison()
	for p.checkAny(lexer.Eq, lexer.Ne) {
		op := ast.OpEq
		if p.current().Kind == lexer.Ne {
			op = ast.OpNe
		}
		p.advance()
		right := p.comparison()
		left = &ast.Binary{Base: ast.NewBase(left.Span()), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) comparison() ast.Expr {
	left := p.rangeExpr()
	for p.checkAny(lexer.Lt, lexer.Le, lexer.Gt, lexer.Ge) {
		var op ast.BinOp
		switch p.current().Kind {
		case lexer.Lt:
			op = ast.OpLt
		case lexer.Le:
			op = ast.OpLe
		case lexer.Gt:
			op = ast.OpGt
		case lexer.Ge:
			op = ast.OpGe
		}
		p.advance()
		right := p.rangeExpr()
		left = &ast.Binary{Base: ast.NewBase(left.Span()), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) rangeExpr() ast.Expr {
	left := p.term()
	if p.checkAny(lexer.DotDot, lexer.DotDotEq) {
		inclusive := p.current().Kind == lexer.DotDotEq
		p.advance()
		end := p.term()
		var step ast.Expr
		if p.match(lexer.KwStep) {
			step = p.term()
		}
		return &ast.Range{Base: ast.NewBase(left.Span()), Start: left, End: end, Inclusive: inclusive, Step: step}
	}
	return left
}

func (p *Parser) term() ast.Expr {
	left := p.factor()
	for p.checkAny(lexer.Plus, lexer.Minus) {
		op := ast.OpAdd
		if p.current().Kind == lexer.Minus {
			op = ast.OpSub
		}
		p.advance()
		right := p.factor()
		left = &ast.Binary{Base: ast.NewBase(left.Span()), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) factor() ast.Expr {
	left := p.unary()
	for p.checkAny(lexer.Star, lexer.Slash, lexer.Percent, lexer.StarStar, lexer.QQ) {
		switch p.current().Kind {
		case lexer.StarStar:
			// right-associative: recurse into factor() for the RHS
			p.advance()
			right := p.factor()
			left = &ast.Binary{Base: ast.NewBase(left.Span()), Op: ast.OpPow, Left: left, Right: right}
		default:
			var op ast.BinOp
			switch p.current().Kind {
			case lexer.Star:
				op = ast.OpMul
			case lexer.Slash:
				op = ast.OpDiv
			case lexer.Percent:
				op = ast.OpMod
			case lexer.QQ:
				op = ast.OpNullC
			}
			p.advance()
			right := p.unary()
			left = &ast.Binary{Base: ast.NewBase(left.Span()), Op: op, Left: left, Right: right}
		}
	}
	return left
}

func (p *Parser) unary() ast.Expr {
	if p.checkAny(lexer.Bang, lexer.Minus) {
		op := ast.OpNot
		if p.current().Kind == lexer.Minus {
			op = ast.OpNeg
		}
		tok := p.advance()
		operand := p.unary()
		return &ast.Unary{Base: ast.NewBase(tok.Span), Op: op, Operand: operand}
	}
	return p.callChain()
}

func (p *Parser) callChain() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.check(lexer.LParen):
			expr = p.finishCall(expr)
		case p.match(lexer.Dot):
			nameTok := p.expect(lexer.IDENT, "after '.'")
			expr = &ast.Get{Base: ast.NewBase(expr.Span()), Receiver: expr, Name: nameTok.Lexeme}
		case p.match(lexer.LBracket):
			idx := p.expression()
			p.expect(lexer.RBracket, "to close index")
			expr = &ast.Index{Base: ast.NewBase(expr.Span()), Receiver: expr, Idx: idx}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	start := p.advance() // '('
	var args []ast.Expr
	if !p.check(lexer.RParen) {
		for {
			args = append(args, p.expression())
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.expect(lexer.RParen, "to close call arguments")
	return &ast.Call{Base: ast.NewBase(start.Span), Callee: callee, Args: args}
}

func (p *Parser) primary() ast.Expr {
	tok := p.current()
	switch tok.Kind {
	case lexer.NUM:
		p.advance()
		f, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.Literal{Base: ast.NewBase(tok.Span), Kind: ast.LitNum, Num: f}
	case lexer.STR:
		p.advance()
		return &ast.Literal{Base: ast.NewBase(tok.Span), Kind: ast.LitStr, Str: tok.Lexeme}
	case lexer.KwTrue:
		p.advance()
		return &ast.Literal{Base: ast.NewBase(tok.Span), Kind: ast.LitBool, Bool: true}
	case lexer.KwFalse:
		p.advance()
		return &ast.Literal{Base: ast.NewBase(tok.Span), Kind: ast.LitBool, Bool: false}
	case lexer.KwNull:
		p.advance()
		return &ast.Literal{Base: ast.NewBase(tok.Span), Kind: ast.LitNull}
	case lexer.KwSelf, lexer.IDENT:
		p.advance()
		return &ast.Identifier{Base: ast.NewBase(tok.Span), Name: tok.Lexeme}
	case lexer.LParen:
		p.advance()
		p.skipEOLs()
		expr := p.expression()
		p.skipEOLs()
		p.expect(lexer.RParen, "to close parenthesized expression")
		return expr
	case lexer.LBracket:
		return p.listLiteral()
	case lexer.LBrace:
		return p.dictLiteral()
	default:
		p.errorf("unexpected token %q in expression", tok.Lexeme)
		p.advance()
		return &ast.Literal{Base: ast.NewBase(tok.Span), Kind: ast.LitNull}
	}
}

func (p *Parser) listLiteral() ast.Expr {
	start := p.advance() // '['
	p.skipEOLs()
	var elems []ast.Expr
	for !p.check(lexer.RBracket) && !p.check(lexer.EOF) {
		elems = append(elems, p.expression())
		p.skipEOLs()
		if !p.match(lexer.Comma) {
			break
		}
		p.skipEOLs()
	}
	p.expect(lexer.RBracket, "to close list literal")
	return &ast.ListLiteral{Base: ast.NewBase(start.Span), Elements: elems}
}

func (p *Parser) dictLiteral() ast.Expr {
	start := p.advance() // '{'
	p.skipEOLs()
	var entries []ast.DictEntry
	for !p.check(lexer.RBrace) && !p.check(lexer.EOF) {
		key := p.expression()
		p.expect(lexer.Colon, "in dict literal")
		value := p.expression()
		entries = append(entries, ast.DictEntry{Key: key, Value: value})
		p.skipEOLs()
		if !p.match(lexer.Comma) {
			break
		}
		p.skipEOLs()
	}
	p.expect(lexer.RBrace, "to close dict literal")
	return &ast.DictLiteral{Base: ast.NewBase(start.Span), Entries: entries}
}
