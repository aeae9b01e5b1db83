package lambdaparser

import "strings"

// Format renders t as canonical source text. Parsing the result yields a
// term Equal to t.
//
// Abstraction bodies extend as far right as possible and application
// associates left, so parentheses are only emitted around an abstraction
// in function position and around an application or abstraction in
// argument position.
func Format(t Term) string {
	var b strings.Builder
	writeTerm(&b, t)
	return b.String()
}

func writeTerm(b *strings.Builder, t Term) {
	switch n := t.(type) {
	case *Name:
		b.WriteString(n.ID)
	case *Abstraction:
		b.WriteByte('\\')
		b.WriteString(n.paramID())
		b.WriteByte('.')
		writeTerm(b, n.Body)
	case *Application:
		_, fnIsLambda := n.Fn.(*Abstraction)
		writeOperand(b, n.Fn, fnIsLambda)
		b.WriteByte(' ')
		_, argIsName := n.Arg.(*Name)
		writeOperand(b, n.Arg, !argIsName)
	}
}

func writeOperand(b *strings.Builder, t Term, parens bool) {
	if !parens {
		writeTerm(b, t)
		return
	}
	b.WriteByte('(')
	writeTerm(b, t)
	b.WriteByte(')')
}
