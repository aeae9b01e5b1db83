package lambdaparser

import (
	"fmt"
	"slices"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the term breaks a binding or naming rule the parser enforces.
	Error Severity = iota
	// Warning means the term is well-formed but probably not what was meant.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "no_shadow")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Name     string   // related identifier (optional)
	Pos      Position // position of the related node, zero for hand-built terms
	Fix      string   // suggested fix (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Pos.Line > 0 {
		fmt.Fprintf(&b, " (line %d, col %d)", d.Pos.Line, d.Pos.Column)
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule is the interface for a single validation rule.
type LintRule interface {
	Name() string
	Apply(t Term) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against a finished
// term, typically one built by hand rather than by Parse. Terms returned by
// Parse never produce error-severity diagnostics.
// Returns all diagnostics regardless of severity.
func Validate(t Term, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(t)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(t Term, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(t, extraRules...)

	var errors []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errors = append(errors, d)
		}
	}
	if len(errors) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errors}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		identifierSyntaxRule{},
		noShadowRule{},
		boundReferenceRule{},
		unusedBinderRule{},
	}
}

// walkScoped visits every node of t in pre-order along with the binders of
// the abstractions enclosing it, outermost first. An abstraction's own
// binder is not in its enclosing list but is in its body's.
func walkScoped(t Term, fn func(t Term, enclosing []string)) {
	var visit func(t Term, enclosing []string)
	visit = func(t Term, enclosing []string) {
		if t == nil {
			return
		}
		fn(t, enclosing)
		switch n := t.(type) {
		case *Abstraction:
			visit(n.Body, append(slices.Clip(enclosing), n.paramID()))
		case *Application:
			visit(n.Fn, enclosing)
			visit(n.Arg, enclosing)
		}
	}
	visit(t, nil)
}

// identifier_syntax: every name must be a non-empty run of letters.
type identifierSyntaxRule struct{}

func (identifierSyntaxRule) Name() string { return "identifier_syntax" }

func (identifierSyntaxRule) Apply(t Term) []Diagnostic {
	var diags []Diagnostic
	check := func(n *Name, pos Position) {
		if n == nil {
			diags = append(diags, Diagnostic{
				Rule:     "identifier_syntax",
				Severity: Error,
				Message:  "abstraction has no parameter",
				Pos:      pos,
				Fix:      "give the abstraction a parameter name",
			})
			return
		}
		if !IsIdentifier(n.ID) {
			diags = append(diags, Diagnostic{
				Rule:     "identifier_syntax",
				Severity: Error,
				Message:  fmt.Sprintf("%q is not a valid name; names are one or more letters", n.ID),
				Name:     n.ID,
				Pos:      n.Position,
				Fix:      "use only the letters a-z and A-Z",
			})
		}
	}
	walkScoped(t, func(t Term, _ []string) {
		switch n := t.(type) {
		case *Abstraction:
			check(n.Param, n.Position)
		case *Name:
			check(n, n.Position)
		}
	})
	return diags
}

// no_shadow: an abstraction may not rebind a name an enclosing abstraction binds.
type noShadowRule struct{}

func (noShadowRule) Name() string { return "no_shadow" }

func (noShadowRule) Apply(t Term) []Diagnostic {
	var diags []Diagnostic
	walkScoped(t, func(t Term, enclosing []string) {
		abs, ok := t.(*Abstraction)
		if !ok || abs.Param == nil || !slices.Contains(enclosing, abs.Param.ID) {
			return
		}
		diags = append(diags, Diagnostic{
			Rule:     "no_shadow",
			Severity: Error,
			Message:  fmt.Sprintf("binder %q shadows an enclosing binder of the same name", abs.Param.ID),
			Name:     abs.Param.ID,
			Pos:      abs.Param.Position,
			Fix:      fmt.Sprintf("rename the inner %q", abs.Param.ID),
		})
	})
	return diags
}

// bound_reference: every referenced name must be bound by an enclosing abstraction.
type boundReferenceRule struct{}

func (boundReferenceRule) Name() string { return "bound_reference" }

func (boundReferenceRule) Apply(t Term) []Diagnostic {
	var diags []Diagnostic
	walkScoped(t, func(t Term, enclosing []string) {
		n, ok := t.(*Name)
		if !ok || slices.Contains(enclosing, n.ID) {
			return
		}
		diags = append(diags, Diagnostic{
			Rule:     "bound_reference",
			Severity: Error,
			Message:  fmt.Sprintf("%q is not bound by any enclosing abstraction", n.ID),
			Name:     n.ID,
			Pos:      n.Position,
			Fix:      fmt.Sprintf("wrap the term in \\%s. or bind %q where it is used", n.ID, n.ID),
		})
	})
	return diags
}

// unused_binder: a binder that its body never references.
type unusedBinderRule struct{}

func (unusedBinderRule) Name() string { return "unused_binder" }

func (unusedBinderRule) Apply(t Term) []Diagnostic {
	var diags []Diagnostic
	walkScoped(t, func(t Term, _ []string) {
		abs, ok := t.(*Abstraction)
		if !ok || abs.Param == nil {
			return
		}
		if slices.Contains(FreeNames(abs.Body), abs.Param.ID) {
			return
		}
		diags = append(diags, Diagnostic{
			Rule:     "unused_binder",
			Severity: Warning,
			Message:  fmt.Sprintf("binder %q is never referenced in its body", abs.Param.ID),
			Name:     abs.Param.ID,
			Pos:      abs.Param.Position,
		})
	})
	return diags
}
