package lambdaparser

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF        TokenKind = iota
	TokenOpenParen  // (
	TokenCloseParen // )
	TokenLambda     // \
	TokenName       // [A-Za-z]+
	TokenDot        // .
	TokenError      // any other non-space character
)

var tokenNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenOpenParen:  "'('",
	TokenCloseParen: "')'",
	TokenLambda:     "'\\'",
	TokenName:       "name",
	TokenDot:        "'.'",
	TokenError:      "error",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // identifier text for names, the character for punctuation, empty otherwise
	Pos     Position
}

// canStartAtom reports whether a token of this kind may begin an Atom.
func (k TokenKind) canStartAtom() bool {
	return k == TokenName || k == TokenLambda || k == TokenOpenParen
}
