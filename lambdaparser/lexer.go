package lambdaparser

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes lambda-calculus source text into a stream of tokens.
// It never fails: characters it does not recognize become TokenError tokens
// and are left for the parser to reject.
type Lexer struct {
	src    []byte
	pos    int // current byte offset
	line   int // current line (1-based)
	col    int // current column (1-based, in runes)
	peeked *Token
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Tokenize returns every token in src, terminated by a single TokenEOF.
func Tokenize(src string) []Token {
	lex := NewLexer([]byte(src))
	var tokens []Token
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	if l.peeked == nil {
		tok := l.scan()
		l.peeked = &tok
	}
	return *l.peeked
}

// Next returns the next token and advances the lexer. Once the input is
// exhausted every call returns TokenEOF.
func (l *Lexer) Next() Token {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok
	}
	return l.scan()
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(l.src[l.pos:])
	return r
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRune(l.src[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) scan() Token {
	l.skipWhitespace()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: l.currentPos()}
	}

	pos := l.currentPos()
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return Token{Kind: TokenOpenParen, Literal: "(", Pos: pos}
	case ')':
		l.advance()
		return Token{Kind: TokenCloseParen, Literal: ")", Pos: pos}
	case '\\':
		l.advance()
		return Token{Kind: TokenLambda, Literal: `\`, Pos: pos}
	case '.':
		l.advance()
		return Token{Kind: TokenDot, Literal: ".", Pos: pos}
	}

	if isLetter(ch) {
		return l.scanName()
	}

	l.advance()
	return Token{Kind: TokenError, Pos: pos}
}

// scanName consumes a maximal run of letters.
func (l *Lexer) scanName() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isLetter(l.peek()) {
		l.advance()
	}

	return Token{Kind: TokenName, Literal: string(l.src[start:l.pos]), Pos: pos}
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// IsIdentifier reports whether s is a well-formed name: one or more letters.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isLetter(r) {
			return false
		}
	}
	return true
}
