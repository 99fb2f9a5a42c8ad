package typesystem

import "github.com/funvibe/minijava/internal/config"

// Assignable is the width relation governing assignment, parameter
// passing, casts and instanceof. It is a pure predicate; diagnostics for
// failed checks are the caller's business. Rules, in order:
//
//  1. void on either side is never assignable;
//  2. structurally equal types are assignable;
//  3. null is assignable to any reference type;
//  4. an array is assignable to the root object type (arrays are objects);
//  5. an object type is assignable to any type named by one of its
//     class's ancestors (nominal subtyping).
func Assignable(src, target Type) bool {
	if src == nil || target == nil {
		return false
	}
	if IsVoid(src) || IsVoid(target) {
		return false
	}
	if Equals(src, target) {
		return true
	}
	if _, ok := src.(*NullType); ok && IsReference(target) {
		return true
	}
	tid, targetIsClass := target.(*Identifier)
	if _, ok := src.(*ArrayType); ok {
		return targetIsClass && tid.Name == config.RootClassName
	}
	if sid, ok := src.(*Identifier); ok && targetIsClass {
		for c := sid.Link; c != nil; c = c.SuperRef() {
			if c.ClassName() == tid.Name {
				return true
			}
		}
	}
	return false
}

// EqualityComparable reports whether values of the two types may be
// compared with ==: each must be assignable to the other. Symmetric by
// construction.
func EqualityComparable(t1, t2 Type) bool {
	return Assignable(t1, t2) && Assignable(t2, t1)
}
