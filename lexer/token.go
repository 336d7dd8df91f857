/*
Package lexer implements lexical analysis for Quetite source files.

It turns a UTF-8 source buffer into a linear stream of Token values,
terminated by a synthetic EOF token, following the grammar described in
spec.md section 4.1: numeric and string literals, identifiers, the
fixed keyword set, longest-match multi-character operators, `#`
comments, and EOL sentinels that collapse runs of blank lines into a
single statement terminator.
*/
package lexer

import (
	"fmt"

	"github.com/qewer33/quetite/source"
)

// Kind identifies the lexical category of a Token. It is a string type
// (rather than an int enum) so that tokens print readably during
// --dump-tokens without a separate stringer.
type Kind string

const (
	NUM   Kind = "NUM"
	STR   Kind = "STR"
	IDENT Kind = "IDENT"
	EOL   Kind = "EOL"
	EOF   Kind = "EOF"

	// Keywords, matched by exact identifier text.
	KwDo       Kind = "do"
	KwEnd      Kind = "end"
	KwIf       Kind = "if"
	KwElse     Kind = "else"
	KwFor      Kind = "for"
	KwWhile    Kind = "while"
	KwReturn   Kind = "return"
	KwBreak    Kind = "break"
	KwContinue Kind = "continue"
	KwUse      Kind = "use"
	KwSelf     Kind = "self"
	KwVar      Kind = "var"
	KwAnd      Kind = "and"
	KwOr       Kind = "or"
	KwStep     Kind = "step"
	KwIn       Kind = "in"
	KwFn       Kind = "fn"
	KwObj      Kind = "obj"
	KwThrow    Kind = "throw"
	KwTry      Kind = "try"
	KwCatch    Kind = "catch"
	KwEnsure   Kind = "ensure"
	KwMatch    Kind = "match"
	KwTrue     Kind = "true"
	KwFalse    Kind = "false"
	KwNull     Kind = "Null"

	// Punctuation and operators.
	LParen    Kind = "("
	RParen    Kind = ")"
	LBracket  Kind = "["
	RBracket  Kind = "]"
	LBrace    Kind = "{"
	RBrace    Kind = "}"
	Comma     Kind = ","
	Dot       Kind = "."
	Colon     Kind = ":"
	Question  Kind = "?"
	Plus      Kind = "+"
	Minus     Kind = "-"
	Star      Kind = "*"
	Slash     Kind = "/"
	Percent   Kind = "%"
	StarStar  Kind = "**"
	Bang      Kind = "!"
	Assign    Kind = "="
	Eq        Kind = "=="
	Ne        Kind = "!="
	Lt        Kind = "<"
	Le        Kind = "<="
	Gt        Kind = ">"
	Ge        Kind = ">="
	PlusEq    Kind = "+="
	MinusEq   Kind = "-="
	PlusPlus  Kind = "++"
	MinusMin  Kind = "--"
	DotDot    Kind = ".."
	DotDotEq  Kind = "..="
	QQ        Kind = "??"
)

// keywords maps reserved identifier text to its keyword Kind. "nil" is
// an alternate spelling of the Null keyword, per spec.md section 4.1.
var keywords = map[string]Kind{
	"do": KwDo, "end": KwEnd, "if": KwIf, "else": KwElse,
	"for": KwFor, "while": KwWhile, "return": KwReturn,
	"break": KwBreak, "continue": KwContinue, "use": KwUse,
	"self": KwSelf, "var": KwVar, "and": KwAnd, "or": KwOr,
	"step": KwStep, "in": KwIn, "fn": KwFn, "obj": KwObj,
	"throw": KwThrow, "try": KwTry, "catch": KwCatch,
	"ensure": KwEnsure, "match": KwMatch, "true": KwTrue,
	"false": KwFalse, "Null": KwNull, "nil": KwNull,
}

// Token is a single lexical unit: its kind, the exact source text it
// was scanned from, and the span it occupies for error reporting.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   source.Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) @%d:%d", t.Kind, t.Lexeme, t.Span.Line, t.Span.Column)
}

// SyntaxError is raised by the lexer (and parser) for lexical and
// grammatical violations. It is never catchable by try/catch — per
// spec.md section 7, SyntaxError only ever occurs during parsing.
type SyntaxError struct {
	Message string
	Span    source.Span
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SyntaxError: %s\n  at %s:%d:%d", e.Message, e.Span.File, e.Span.Line, e.Span.Column)
}
