package symbols

import "github.com/funvibe/minijava/internal/ast"

// Scope is a lexical scope for formals and locals during the binding
// pass. Scopes nest per block; instance variables are not kept here,
// the binder falls back to the class chain when a name is not in scope.
type Scope struct {
	parent *Scope
	vars   map[string]*ast.VarDeclaration
}

func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, vars: make(map[string]*ast.VarDeclaration)}
}

func (s *Scope) Parent() *Scope { return s.parent }

// Define binds a name in this scope. Returns false when the name is
// already bound here (shadowing an outer scope is allowed).
func (s *Scope) Define(vd *ast.VarDeclaration) bool {
	if _, ok := s.vars[vd.Name]; ok {
		return false
	}
	s.vars[vd.Name] = vd
	return true
}

// Resolve finds a name in this scope or any enclosing one.
func (s *Scope) Resolve(name string) (*ast.VarDeclaration, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if vd, ok := sc.vars[name]; ok {
			return vd, true
		}
	}
	return nil, false
}
