package lambdaparser

import "fmt"

// ParseError is the base error type for all lambdaparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Token   Token // offending token
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Position returns where the error occurred. Every lambdaparser error type
// embeds ParseError, so callers can recover it with errors.As on an
// interface{ Position() Position } target.
func (e *ParseError) Position() Position { return e.Pos }

// LexError reports an Error token reached by the parser (unrecognized character).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error (unexpected token).
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// ScopeError is the common shape of binding violations.
type ScopeError struct {
	ParseError
	Name string
}

// ShadowError is returned when a binder reuses a name that an enclosing
// abstraction still binds.
type ShadowError struct{ ScopeError }

// UnboundReferenceError is returned when a name is referenced outside of
// every abstraction that binds it.
type UnboundReferenceError struct{ ScopeError }

func describe(tok Token) string {
	return fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal)
}

func newSyntaxError(expected string, tok Token) *SyntaxError {
	return &SyntaxError{
		ParseError: ParseError{Pos: tok.Pos, Token: tok},
		Expected:   expected,
		Got:        describe(tok),
	}
}

func newLexError(tok Token) *LexError {
	return &LexError{ParseError{
		Message: fmt.Sprintf("unrecognized character, got %s", describe(tok)),
		Pos:     tok.Pos,
		Token:   tok,
	}}
}

func newShadowError(tok Token) *ShadowError {
	return &ShadowError{ScopeError{
		ParseError: ParseError{
			Message: fmt.Sprintf("shadow: %s is already bound", describe(tok)),
			Pos:     tok.Pos,
			Token:   tok,
		},
		Name: tok.Literal,
	}}
}

func newUnboundReferenceError(tok Token) *UnboundReferenceError {
	return &UnboundReferenceError{ScopeError{
		ParseError: ParseError{
			Message: fmt.Sprintf("bad reference: %s is not bound", describe(tok)),
			Pos:     tok.Pos,
			Token:   tok,
		},
		Name: tok.Literal,
	}}
}
