package analyzer

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/config"
	"github.com/funvibe/minijava/internal/diagnostics"
)

// declareClasses registers every class of the unit in the table and
// populates the per-class member tables, reporting duplicates.
func (w *walker) declareClasses(program *ast.Program) {
	for _, cd := range program.Classes {
		cd.VarTable = make(map[string]*ast.VarDeclaration)
		cd.MethodTable = make(map[string]*ast.MethodDeclaration)

		if !w.classes.Define(cd) {
			w.addError(diagnostics.NewErrorf(
				diagnostics.ErrA002, cd.Token, "duplicate class %s", cd.Name))
		}

		for _, vd := range cd.Vars {
			if _, ok := cd.VarTable[vd.Name]; ok {
				w.addError(diagnostics.NewErrorf(
					diagnostics.ErrA002, vd.Token, "duplicate instance variable %s", vd.Name))
				continue
			}
			cd.VarTable[vd.Name] = vd
		}

		for _, md := range cd.Methods {
			md.Class = cd
			if _, ok := cd.MethodTable[md.Name]; ok {
				w.addError(diagnostics.NewErrorf(
					diagnostics.ErrA002, md.Token, "duplicate method %s", md.Name))
				continue
			}
			cd.MethodTable[md.Name] = md
		}
	}
}

// linkHierarchy resolves every superclass link. Classes without an
// extends clause implicitly extend Object. Afterwards the class graph is
// guaranteed to be a tree: undefined superclasses and inheritance cycles
// are reported and the offending link is cut, so later passes may assume
// chains terminate.
func (w *walker) linkHierarchy(program *ast.Program) {
	object, _ := w.classes.Lookup(config.RootClassName)

	for _, cd := range program.Classes {
		if cd.SuperName == "" {
			if cd != object {
				cd.Super = object
			}
			continue
		}
		super, ok := w.classes.Lookup(cd.SuperName)
		if !ok {
			w.addError(diagnostics.NewErrorf(
				diagnostics.ErrA009, cd.SuperTok, "undefined class %s", cd.SuperName))
			cd.Super = object
			continue
		}
		cd.Super = super
	}

	// Cut cycles so every chain terminates. Each class has one parent
	// link, so walking a chain and marking nodes in-progress finds a
	// cycle exactly when the walk re-enters an in-progress node; that
	// node is on the cycle, gets the diagnostic and becomes a root,
	// which also repairs the chains of the remaining cycle members.
	const (
		walking = 1
		done    = 2
	)
	state := make(map[*ast.ClassDeclaration]int)
	for _, name := range w.classes.Names() {
		start, _ := w.classes.Lookup(name)
		var chain []*ast.ClassDeclaration
		for c := start; c != nil; c = c.Super {
			if state[c] == done {
				break
			}
			if state[c] == walking {
				w.addError(diagnostics.NewErrorf(
					diagnostics.ErrA010, c.Token, "circular inheritance involving %s", c.Name))
				c.Super = nil
				break
			}
			state[c] = walking
			chain = append(chain, c)
		}
		for _, c := range chain {
			state[c] = done
		}
	}
}
