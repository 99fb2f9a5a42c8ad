package analyzer

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/symbols"
	"github.com/funvibe/minijava/internal/token"
	"github.com/funvibe/minijava/internal/typesystem"
)

// The three compatibility judgments. Each takes a report flag so a
// caller probing both directions of a relation can suppress the inner
// diagnostics and report once itself. An absent operand type (nil)
// always fails silently: the subexpression already carries a
// diagnostic, repeating it would only cascade.

// matchExact demands structural equality, for contexts that require a
// precise type: operator operands, conditions, array sizes, case labels.
// unresolved reports whether t mentions a class name that never linked
// to a declaration. The binding pass already reported that name, so the
// matchers treat such types like absent ones and stay silent.
func unresolved(t typesystem.Type) bool {
	switch tt := t.(type) {
	case *typesystem.Identifier:
		return tt.Link == nil
	case *typesystem.ArrayType:
		return unresolved(tt.Elem)
	}
	return false
}

func (w *walker) matchExact(have, need typesystem.Type, tok token.Token, report bool) bool {
	if have == nil || need == nil || unresolved(have) || unresolved(need) {
		return false
	}
	if typesystem.Equals(have, need) {
		return true
	}
	if report {
		w.addError(diagnostics.NewErrorf(
			diagnostics.ErrA003, tok, "incompatible types: have %s, need %s", have, need))
	}
	return false
}

// matchAssign is the width relation for assignment, parameter passing,
// casts and instanceof. Void fails immediately on either side.
func (w *walker) matchAssign(src, target typesystem.Type, tok token.Token, report bool) bool {
	if src == nil || target == nil || unresolved(src) || unresolved(target) {
		return false
	}
	if typesystem.IsVoid(src) || typesystem.IsVoid(target) {
		if report {
			w.addError(diagnostics.NewErrorf(
				diagnostics.ErrA003, tok, "incompatible types: %s is not assignable to %s", src, target))
		}
		return false
	}
	if typesystem.Assignable(src, target) {
		return true
	}
	if report {
		w.addError(diagnostics.NewErrorf(
			diagnostics.ErrA003, tok, "incompatible types: %s is not assignable to %s", src, target))
	}
	return false
}

// matchEqCompare allows == when each side is assignable to the other.
// Both inner checks run suppressed; a failing comparison produces
// exactly one diagnostic, not two.
func (w *walker) matchEqCompare(t1, t2 typesystem.Type, tok token.Token, report bool) bool {
	if t1 == nil || t2 == nil || unresolved(t1) || unresolved(t2) {
		return false
	}
	if w.matchAssign(t1, t2, tok, false) && w.matchAssign(t2, t1, tok, false) {
		return true
	}
	if report {
		w.addError(diagnostics.NewErrorf(
			diagnostics.ErrA003, tok, "incompatible types: %s and %s are not comparable", t1, t2))
	}
	return false
}

// instVarLookup resolves an instance variable on cls or an ancestor,
// reporting when the chain is exhausted.
func (w *walker) instVarLookup(name string, cls *ast.ClassDeclaration, tok token.Token) *ast.VarDeclaration {
	if vd, ok := symbols.FindInstanceVariable(name, cls); ok {
		return vd
	}
	w.addError(diagnostics.NewErrorf(
		diagnostics.ErrA004, tok, "undefined instance variable %s", name))
	return nil
}

// instVarLookupType is the Type-receiver convenience: nil receiver
// types stay silent (already reported), non-object receiver types are
// reported here.
func (w *walker) instVarLookupType(name string, t typesystem.Type, tok token.Token) *ast.VarDeclaration {
	if t == nil {
		return nil
	}
	cls, ok := w.receiverClass(t, tok)
	if !ok {
		return nil
	}
	return w.instVarLookup(name, cls, tok)
}

// methodLookup resolves a method on cls or an ancestor, reporting when
// the chain is exhausted.
func (w *walker) methodLookup(name string, cls *ast.ClassDeclaration, tok token.Token) *ast.MethodDeclaration {
	if md, ok := symbols.FindMethod(name, cls); ok {
		return md
	}
	w.addError(diagnostics.NewErrorf(
		diagnostics.ErrA005, tok, "undefined method %s", name))
	return nil
}

func (w *walker) methodLookupType(name string, t typesystem.Type, tok token.Token) *ast.MethodDeclaration {
	if t == nil {
		return nil
	}
	cls, ok := w.receiverClass(t, tok)
	if !ok {
		return nil
	}
	return w.methodLookup(name, cls, tok)
}

// receiverClass maps a receiver type to its class declaration. A
// non-object type is reported; an identifier whose class never resolved
// is not (the binding pass already did).
func (w *walker) receiverClass(t typesystem.Type, tok token.Token) (*ast.ClassDeclaration, bool) {
	id, ok := t.(*typesystem.Identifier)
	if !ok {
		w.addError(diagnostics.NewErrorf(
			diagnostics.ErrA008, tok, "not an object type: %s", t))
		return nil, false
	}
	cls, ok := symbols.ClassOf(id)
	if !ok {
		return nil, false
	}
	return cls, true
}
