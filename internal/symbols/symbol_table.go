// Package symbols holds the global class table and the ancestor-chain
// lookups shared by assignability, member resolution and override
// validation. Lookups here never report; the analyzer attaches
// diagnostics at its call sites.
package symbols

import (
	"sort"

	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/typesystem"
)

// Table is the global mapping from class name to declaration. It is
// built once by the declarations pass and read-only afterwards.
type Table struct {
	classes map[string]*ast.ClassDeclaration
}

func NewTable() *Table {
	return &Table{classes: make(map[string]*ast.ClassDeclaration)}
}

// Define registers a class. Returns false when the name is taken.
func (t *Table) Define(cd *ast.ClassDeclaration) bool {
	if _, ok := t.classes[cd.Name]; ok {
		return false
	}
	t.classes[cd.Name] = cd
	return true
}

// Lookup finds a class by name.
func (t *Table) Lookup(name string) (*ast.ClassDeclaration, bool) {
	cd, ok := t.classes[name]
	return cd, ok
}

// Names returns all registered class names, sorted for deterministic
// iteration.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.classes))
	for name := range t.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ancestors walks the superclass chain starting at cls itself, calling
// fn at each step until fn returns true or the chain is exhausted.
// Iterative on purpose: lookup depth is bounded by the hierarchy, not
// the stack.
func Ancestors(cls *ast.ClassDeclaration, fn func(*ast.ClassDeclaration) bool) {
	for c := cls; c != nil; c = c.Super {
		if fn(c) {
			return
		}
	}
}

// FindInstanceVariable searches cls and its ancestors for an instance
// variable.
func FindInstanceVariable(name string, cls *ast.ClassDeclaration) (*ast.VarDeclaration, bool) {
	var found *ast.VarDeclaration
	Ancestors(cls, func(c *ast.ClassDeclaration) bool {
		if vd, ok := c.VarTable[name]; ok {
			found = vd
			return true
		}
		return false
	})
	return found, found != nil
}

// FindMethod searches cls and its ancestors for a method.
func FindMethod(name string, cls *ast.ClassDeclaration) (*ast.MethodDeclaration, bool) {
	var found *ast.MethodDeclaration
	Ancestors(cls, func(c *ast.ClassDeclaration) bool {
		if md, ok := c.MethodTable[name]; ok {
			found = md
			return true
		}
		return false
	})
	return found, found != nil
}

// ClassOf resolves an identifier type to its linked class declaration.
// Returns false for non-object types and for identifiers whose link was
// never resolved.
func ClassOf(t typesystem.Type) (*ast.ClassDeclaration, bool) {
	id, ok := t.(*typesystem.Identifier)
	if !ok || id.Link == nil {
		return nil, false
	}
	cd, ok := id.Link.(*ast.ClassDeclaration)
	return cd, ok
}
