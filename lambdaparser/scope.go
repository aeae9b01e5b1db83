package lambdaparser

// scope holds the names bound by one abstraction.
type scope map[string]Position

// scopes is the stack of scopes for the abstractions whose bodies are
// currently being parsed, innermost last.
type scopes struct {
	stack []scope
}

func (s *scopes) push() scope {
	next := scope{}
	s.stack = append(s.stack, next)
	return next
}

func (s *scopes) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *scopes) depth() int {
	return len(s.stack)
}

// lookup reports where name was bound, searching every open scope.
func (s *scopes) lookup(name string) (Position, bool) {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if pos, ok := s.stack[i][name]; ok {
			return pos, true
		}
	}
	return Position{}, false
}

// define binds name in the innermost scope. It returns false, binding
// nothing, if any open scope already binds name.
func (s *scopes) define(name string, pos Position) bool {
	if _, exists := s.lookup(name); exists {
		return false
	}
	s.stack[len(s.stack)-1][name] = pos
	return true
}
