package lambdaparser

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// Term is a node of the lambda-calculus AST: *Abstraction, *Application or *Name.
type Term interface {
	Pos() Position
	String() string
	term()
}

// Abstraction binds Param over Body.
type Abstraction struct {
	Param    *Name
	Body     Term
	Position Position // position of the '\'
}

// Application applies Fn to Arg.
type Application struct {
	Fn  Term
	Arg Term
}

// Name is a variable, either a binder (Abstraction.Param) or a reference.
type Name struct {
	ID       string
	Position Position
}

func (a *Abstraction) Pos() Position { return a.Position }
func (a *Application) Pos() Position { return a.Fn.Pos() }
func (n *Name) Pos() Position        { return n.Position }

func (a *Abstraction) String() string { return Format(a) }
func (a *Application) String() string { return Format(a) }
func (n *Name) String() string        { return n.ID }

// paramID tolerates hand-built abstractions with no Param.
func (a *Abstraction) paramID() string {
	if a.Param == nil {
		return ""
	}
	return a.Param.ID
}

func (*Abstraction) term() {}
func (*Application) term() {}
func (*Name) term()        {}

// Equal reports whether a and b have the same structure and identifiers.
// Positions are ignored.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case *Name:
		y, ok := b.(*Name)
		return ok && x.ID == y.ID
	case *Abstraction:
		y, ok := b.(*Abstraction)
		return ok && x.paramID() == y.paramID() && Equal(x.Body, y.Body)
	case *Application:
		y, ok := b.(*Application)
		return ok && Equal(x.Fn, y.Fn) && Equal(x.Arg, y.Arg)
	default:
		return a == nil && b == nil
	}
}

// Walk visits t and its descendants in pre-order. Children of a node are
// skipped when fn returns false for it. An abstraction's Param is visited
// before its Body.
func Walk(t Term, fn func(Term) bool) {
	if t == nil || !fn(t) {
		return
	}
	switch n := t.(type) {
	case *Abstraction:
		if n.Param != nil {
			Walk(n.Param, fn)
		}
		Walk(n.Body, fn)
	case *Application:
		Walk(n.Fn, fn)
		Walk(n.Arg, fn)
	}
}

// FreeNames returns the names referenced in t that no enclosing abstraction
// binds, in first-occurrence order.
func FreeNames(t Term) []string {
	var out []string
	seen := make(map[string]bool)
	var visit func(t Term, bound map[string]int)
	visit = func(t Term, bound map[string]int) {
		switch n := t.(type) {
		case *Name:
			if bound[n.ID] == 0 && !seen[n.ID] {
				seen[n.ID] = true
				out = append(out, n.ID)
			}
		case *Abstraction:
			id := n.paramID()
			bound[id]++
			visit(n.Body, bound)
			bound[id]--
		case *Application:
			visit(n.Fn, bound)
			visit(n.Arg, bound)
		}
	}
	visit(t, make(map[string]int))
	return out
}
