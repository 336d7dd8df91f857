package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinds strips a token slice down to just its Kind sequence so test
// tables can assert on shape without repeating lexeme text.
func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_Numbers(t *testing.T) {
	tokens, err := Tokenize("t.qt", "123 + 3.14 - 0")
	require.NoError(t, err)
	assert.Equal(t, []Kind{NUM, Plus, NUM, Minus, NUM, EOF}, kinds(tokens))
	assert.Equal(t, "3.14", tokens[2].Lexeme)
}

func TestTokenize_KeywordsAndIdentifiers(t *testing.T) {
	tokens, err := Tokenize("t.qt", "fn add(a, b) do return a + b end")
	require.NoError(t, err)
	assert.Equal(t, []Kind{
		KwFn, IDENT, LParen, IDENT, Comma, IDENT, RParen,
		KwDo, KwReturn, IDENT, Plus, IDENT, KwEnd, EOF,
	}, kinds(tokens))
}

func TestTokenize_LongestMatchOperators(t *testing.T) {
	tokens, err := Tokenize("t.qt", "a ** b ??c x+=1 y++ i..=n")
	require.NoError(t, err)
	assert.Equal(t, []Kind{
		IDENT, StarStar, IDENT, QQ, IDENT, IDENT, PlusEq, NUM,
		IDENT, PlusPlus, IDENT, DotDotEq, IDENT, EOF,
	}, kinds(tokens))
}

func TestTokenize_StringLiteral(t *testing.T) {
	tokens, err := Tokenize("t.qt", `"hello world"`)
	require.NoError(t, err)
	require.Equal(t, []Kind{STR, EOF}, kinds(tokens))
	assert.Equal(t, "hello world", tokens[0].Lexeme)
}

func TestTokenize_UnterminatedStringIsSyntaxError(t *testing.T) {
	_, err := Tokenize("t.qt", `"oops`)
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestTokenize_CommentsAreSkipped(t *testing.T) {
	tokens, err := Tokenize("t.qt", "1 # this is a comment\n2")
	require.NoError(t, err)
	assert.Equal(t, []Kind{NUM, EOL, NUM, EOF}, kinds(tokens))
}

func TestTokenize_NilIsNullAlias(t *testing.T) {
	tokens, err := Tokenize("t.qt", "nil Null")
	require.NoError(t, err)
	assert.Equal(t, []Kind{KwNull, KwNull, EOF}, kinds(tokens))
}

func TestTokenize_BlankLinesCollapseToOneEOL(t *testing.T) {
	tokens, err := Tokenize("t.qt", "1\n\n\n2")
	require.NoError(t, err)
	assert.Equal(t, []Kind{NUM, EOL, NUM, EOF}, kinds(tokens))
}
