// Package lambdaparser implements a validating parser for untyped
// lambda-calculus expressions.
//
// The accepted syntax is the classic one: a backslash introduces an
// abstraction, a dot separates its parameter from its body, application is
// juxtaposition, and parentheses group. Names are runs of ASCII letters.
//
//	Expr   := Atom (Atom)*
//	Atom   := Name | Lambda | '(' Expr ')'
//	Lambda := '\' Name '.' Expr
//
// Application associates left and an abstraction body extends as far right
// as possible, so \f.\x.f f x reads as \f.(\x.((f f) x)).
//
// The parser is structured as a hand-rolled recursive-descent parser with
// three layers:
//
//   - Lexer: converts raw bytes into a token stream, skipping whitespace.
//     It never fails; unrecognized characters become TokenError tokens.
//   - Parser: consumes tokens according to the grammar, builds the AST and
//     checks scoping in the same pass.
//   - AST types: the output data structures (Abstraction, Application, Name).
//
// Scoping is strict. Every referenced name must be bound by an enclosing
// abstraction, so terms have no free variables, and an abstraction may not
// rebind a name that an enclosing abstraction already binds. Sibling
// abstractions may reuse a name: (\x.x)(\x.x) is accepted.
//
// Usage:
//
//	term, err := lambdaparser.ParseString(`\f.\x.f (f x)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(term) // \f.\x.f (f x)
//
// Failures are typed: *LexError, *SyntaxError, *ShadowError and
// *UnboundReferenceError, all carrying the offending token and its position.
package lambdaparser
