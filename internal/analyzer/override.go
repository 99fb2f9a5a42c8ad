package analyzer

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/symbols"
	"github.com/funvibe/minijava/internal/typesystem"
)

// checkOverride validates a method declaration against the nearest
// same-named method up the superclass chain, if any. An override must
// agree on return kind, return type and arity, and each formal must be
// compatible with its counterpart. On success the Overrides link is
// set; on the first mismatch the search stops, no further ancestors are
// consulted.
func (w *walker) checkOverride(m *ast.MethodDeclaration) {
	if m.Class == nil || m.Class.Super == nil {
		return
	}

	var overridden *ast.MethodDeclaration
	symbols.Ancestors(m.Class.Super, func(c *ast.ClassDeclaration) bool {
		if md, ok := c.MethodTable[m.Name]; ok {
			overridden = md
			return true
		}
		return false
	})
	if overridden == nil {
		return // fresh, non-overriding method
	}

	if m.IsVoid() != overridden.IsVoid() {
		w.addError(diagnostics.NewErrorf(
			diagnostics.ErrA007, m.Token,
			"override signature mismatch: %s.%s and %s.%s disagree on returning a value",
			m.Class.Name, m.Name, overridden.Class.Name, overridden.Name))
		return
	}
	if !m.IsVoid() && !typesystem.Equals(m.ReturnType, overridden.ReturnType) {
		w.addError(diagnostics.NewErrorf(
			diagnostics.ErrA007, m.ReturnTok,
			"override signature mismatch: return type %s differs from %s declared in %s",
			m.ReturnType, overridden.ReturnType, overridden.Class.Name))
		return
	}
	if len(m.Formals) != len(overridden.Formals) {
		w.addError(diagnostics.NewErrorf(
			diagnostics.ErrA007, m.Token,
			"override signature mismatch: %d parameters, %s declares %d",
			len(m.Formals), overridden.Class.Name, len(overridden.Formals)))
		return
	}

	ok := true
	for i, f := range m.Formals {
		if !w.matchAssign(f.DeclType, overridden.Formals[i].DeclType, f.Token, true) {
			ok = false
		}
	}
	if ok {
		m.Overrides = overridden
	}
}
