package lambdaparser

// Option configures a single Parse call.
type Option func(*parser)

// WithEvents reports grammar-rule entries and scope changes to e.
func WithEvents(e *EventEmitter) Option {
	return func(p *parser) { p.events = e }
}

// ParseString tokenizes and parses src.
func ParseString(src string, opts ...Option) (Term, error) {
	return Parse(Tokenize(src), opts...)
}

// Parse parses a token sequence into a Term, checking that every name is
// bound by an enclosing abstraction and that no abstraction rebinds a name
// an enclosing one still binds.
// Returns a *SyntaxError, *LexError, *ShadowError or *UnboundReferenceError
// describing the first violation, in token order, on failure.
func Parse(tokens []Token, opts ...Option) (Term, error) {
	p := &parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	t, err := p.parseProgram()
	if err != nil {
		p.emit(ParseFailedEvent(err))
		return nil, err
	}
	return t, nil
}

type parser struct {
	tokens []Token
	pos    int // index of the current token
	scopes scopes
	events *EventEmitter
}

func (p *parser) emit(e Event) {
	if p.events != nil {
		p.events.Emit(e)
	}
}

func (p *parser) enter(rule string) {
	if p.events != nil {
		p.events.Emit(RuleEnteredEvent(rule, p.peek()))
	}
}

// peek returns the current token. Running off the end of the sequence reads
// as TokenEOF, so a sequence without its sentinel still terminates.
func (p *parser) peek() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	eof := Token{Kind: TokenEOF, Pos: Position{Line: 1, Column: 1}}
	if n := len(p.tokens); n > 0 {
		eof.Pos = p.tokens[n-1].Pos
	}
	return eof
}

func (p *parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// unexpected builds the error for tok appearing where expected was required.
// Error tokens are always reported as lexical errors.
func unexpected(expected string, tok Token) error {
	if tok.Kind == TokenError {
		return newLexError(tok)
	}
	return newSyntaxError(expected, tok)
}

func (p *parser) expect(kind TokenKind, expected string) (Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return Token{}, unexpected(expected, tok)
	}
	return tok, nil
}

func (p *parser) parseProgram() (Term, error) {
	t, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, unexpected("end of input", tok)
	}
	return t, nil
}

// parseExpr parses one or more atoms and folds them left into applications.
// It stops at the first token that cannot start an atom without consuming it.
func (p *parser) parseExpr() (Term, error) {
	p.enter(RuleExpr)

	var result Term
	for {
		tok := p.peek()
		if !tok.Kind.canStartAtom() {
			if result == nil {
				return nil, unexpected("name/lambda/bracket", tok)
			}
			return result, nil
		}

		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = atom
		} else {
			result = &Application{Fn: result, Arg: atom}
		}
	}
}

func (p *parser) parseAtom() (Term, error) {
	p.enter(RuleAtom)

	tok := p.peek()
	switch tok.Kind {
	case TokenName:
		return p.parseReference()
	case TokenLambda:
		return p.parseLambda()
	case TokenOpenParen:
		return p.parseGroup()
	default:
		return nil, unexpected("name/lambda/bracket", tok)
	}
}

// parseLambda parses '\' Name '.' Expr. The binder is in scope for exactly
// the body; the body extends as far right as possible.
func (p *parser) parseLambda() (Term, error) {
	p.enter(RuleLambda)

	lam, err := p.expect(TokenLambda, "lambda")
	if err != nil {
		return nil, err
	}

	p.scopes.push()
	param, err := p.parseBinder()
	if err != nil {
		return nil, err
	}
	p.emit(ScopePushedEvent(param.ID, p.scopes.depth()))

	if _, err := p.expect(TokenDot, "separator"); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	p.emit(ScopePoppedEvent(param.ID, p.scopes.depth()))
	p.scopes.pop()

	return &Abstraction{Param: param, Body: body, Position: lam.Pos}, nil
}

func (p *parser) parseBinder() (*Name, error) {
	p.enter(RuleBinder)

	tok, err := p.expect(TokenName, "name")
	if err != nil {
		return nil, err
	}
	if !p.scopes.define(tok.Literal, tok.Pos) {
		return nil, newShadowError(tok)
	}
	return &Name{ID: tok.Literal, Position: tok.Pos}, nil
}

func (p *parser) parseReference() (Term, error) {
	p.enter(RuleName)

	tok, err := p.expect(TokenName, "name")
	if err != nil {
		return nil, err
	}
	if _, ok := p.scopes.lookup(tok.Literal); !ok {
		return nil, newUnboundReferenceError(tok)
	}
	return &Name{ID: tok.Literal, Position: tok.Pos}, nil
}

// parseGroup parses '(' Expr ')'. Grouping leaves no node of its own.
func (p *parser) parseGroup() (Term, error) {
	p.enter(RuleGroup)

	if _, err := p.expect(TokenOpenParen, "bracket"); err != nil {
		return nil, err
	}

	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenCloseParen, "bracket"); err != nil {
		return nil, err
	}
	return inner, nil
}
