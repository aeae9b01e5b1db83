package lambdaparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexerPunctuation(t *testing.T) {
	tokens := Tokenize(`( ) \ .`)
	expected := []TokenKind{
		TokenOpenParen, TokenCloseParen, TokenLambda, TokenDot, TokenEOF,
	}
	assert.Equal(t, expected, kinds(tokens))
	assert.Equal(t, `\`, tokens[2].Literal)
}

func TestLexerWhitespaceOnly(t *testing.T) {
	for _, src := range []string{"", " ", "\t\n  \r\n", "\u00a0"} {
		tokens := Tokenize(src)
		require.Len(t, tokens, 1, "input: %q", src)
		assert.Equal(t, TokenEOF, tokens[0].Kind, "input: %q", src)
	}
}

func TestLexerNamesAreMaximalMunch(t *testing.T) {
	cases := []string{"abc", "x", "Foo", "camelCase"}
	for _, id := range cases {
		tokens := Tokenize(id)
		require.Len(t, tokens, 2, "input: %s", id) // name + EOF
		assert.Equal(t, TokenName, tokens[0].Kind, "input: %s", id)
		assert.Equal(t, id, tokens[0].Literal, "input: %s", id)
	}
}

func TestLexerDigitSplitsName(t *testing.T) {
	tokens := Tokenize("a1")
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenName, tokens[0].Kind)
	assert.Equal(t, "a", tokens[0].Literal)
	assert.Equal(t, TokenError, tokens[1].Kind)
	assert.Empty(t, tokens[1].Literal)
	assert.Equal(t, TokenEOF, tokens[2].Kind)
}

func TestLexerNonLettersAreErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"a_b", []TokenKind{TokenName, TokenError, TokenName, TokenEOF}},
		{"f/x", []TokenKind{TokenName, TokenError, TokenName, TokenEOF}},
		{"λx.x", []TokenKind{TokenError, TokenName, TokenDot, TokenName, TokenEOF}},
		{"é", []TokenKind{TokenError, TokenEOF}},
		{"\xff", []TokenKind{TokenError, TokenEOF}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, kinds(Tokenize(tt.input)), "input: %q", tt.input)
	}
}

func TestLexerNameFlushedBeforePunctuation(t *testing.T) {
	tokens := Tokenize(`\f.f(x)`)
	expected := []TokenKind{
		TokenLambda, TokenName, TokenDot, TokenName,
		TokenOpenParen, TokenName, TokenCloseParen, TokenEOF,
	}
	require.Equal(t, expected, kinds(tokens))
	assert.Equal(t, "f", tokens[1].Literal)
	assert.Equal(t, "f", tokens[3].Literal)
	assert.Equal(t, "x", tokens[5].Literal)
}

func TestLexerPositions(t *testing.T) {
	tokens := Tokenize("\\x.\n  xy")
	require.Len(t, tokens, 5)

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Pos)
	assert.Equal(t, Position{Line: 1, Column: 2, Offset: 1}, tokens[1].Pos)
	assert.Equal(t, Position{Line: 1, Column: 3, Offset: 2}, tokens[2].Pos)
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 6}, tokens[3].Pos)
	assert.Equal(t, "xy", tokens[3].Literal)
	assert.Equal(t, Position{Line: 2, Column: 5, Offset: 8}, tokens[4].Pos)
}

func TestLexerPositionsCountRunes(t *testing.T) {
	tokens := Tokenize("é x")
	require.Len(t, tokens, 3)
	assert.Equal(t, 3, tokens[1].Pos.Column)
	assert.Equal(t, 3, tokens[1].Pos.Offset)
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lex := NewLexer([]byte("f x"))

	peeked := lex.Peek()
	assert.Equal(t, TokenName, peeked.Kind)
	assert.Equal(t, "f", peeked.Literal)

	assert.Equal(t, peeked, lex.Next())
	assert.Equal(t, "x", lex.Next().Literal)
	assert.Equal(t, TokenEOF, lex.Next().Kind)
	assert.Equal(t, TokenEOF, lex.Next().Kind, "EOF repeats once input is exhausted")
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "name", TokenName.String())
	assert.Equal(t, `'\'`, TokenLambda.String())
	assert.Equal(t, "EOF", TokenEOF.String())
	assert.Equal(t, "unknown", TokenKind(99).String())
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("x"))
	assert.True(t, IsIdentifier("Foo"))
	assert.False(t, IsIdentifier(""))
	assert.False(t, IsIdentifier("x1"))
	assert.False(t, IsIdentifier("a_b"))
	assert.False(t, IsIdentifier("é"))
}
