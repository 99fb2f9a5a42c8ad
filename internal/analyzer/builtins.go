package analyzer

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/config"
	"github.com/funvibe/minijava/internal/symbols"
)

// RegisterBuiltins installs the built-in classes into a fresh class
// table: Object, the universal root, and String, the type of string
// literals. Both are memberless; user classes may still extend them.
func RegisterBuiltins(table *symbols.Table) {
	object := &ast.ClassDeclaration{
		Name:        config.RootClassName,
		VarTable:    make(map[string]*ast.VarDeclaration),
		MethodTable: make(map[string]*ast.MethodDeclaration),
		Builtin:     true,
	}
	str := &ast.ClassDeclaration{
		Name:        config.StringClassName,
		Super:       object,
		SuperName:   config.RootClassName,
		VarTable:    make(map[string]*ast.VarDeclaration),
		MethodTable: make(map[string]*ast.MethodDeclaration),
		Builtin:     true,
	}
	table.Define(object)
	table.Define(str)
}
