// Package typesystem defines the closed set of MiniJava types and the
// structural/nominal compatibility relations over them. Types are values;
// the only mutable piece is the class link on an Identifier, written once
// by the binding pass.
package typesystem

// Type is the interface for all types in our system.
type Type interface {
	String() string
	typeNode()
}

// ClassRef is the view of a class declaration the type system needs for
// the nominal-subtyping walk. Implemented by ast.ClassDeclaration; kept
// as an interface so typesystem stays below ast in the import graph.
type ClassRef interface {
	ClassName() string
	SuperRef() ClassRef
}

// IntegerType is the primitive int type.
type IntegerType struct{}

func (t *IntegerType) String() string { return "int" }
func (t *IntegerType) typeNode()      {}

// BooleanType is the primitive boolean type.
type BooleanType struct{}

func (t *BooleanType) String() string { return "boolean" }
func (t *BooleanType) typeNode()      {}

// VoidType marks the absence of a return value. It is not assignable
// in either direction.
type VoidType struct{}

func (t *VoidType) String() string { return "void" }
func (t *VoidType) typeNode()      {}

// NullType is the type of the null literal, assignable to any reference type.
type NullType struct{}

func (t *NullType) String() string { return "null" }
func (t *NullType) typeNode()      {}

// Identifier is a named reference type denoting a declared class.
// Link is resolved by the binding pass and read-only afterwards.
type Identifier struct {
	Name string
	Link ClassRef
}

func (t *Identifier) String() string { return t.Name }
func (t *Identifier) typeNode()      {}

// ArrayType is an array of Elem. Elem is itself a Type, so arrays of
// arrays nest naturally.
type ArrayType struct {
	Elem Type
}

func (t *ArrayType) String() string { return t.Elem.String() + "[]" }
func (t *ArrayType) typeNode()      {}

// Shared instances for the fixed types. Identifier and ArrayType values
// are created per occurrence because they carry links and element types.
var (
	Int  = &IntegerType{}
	Bool = &BooleanType{}
	Void = &VoidType{}
	Null = &NullType{}
)

// Equals reports structural equality: primitives by kind, identifiers by
// class name, arrays by element type, recursively.
func Equals(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}
	switch at := a.(type) {
	case *IntegerType:
		_, ok := b.(*IntegerType)
		return ok
	case *BooleanType:
		_, ok := b.(*BooleanType)
		return ok
	case *VoidType:
		_, ok := b.(*VoidType)
		return ok
	case *NullType:
		_, ok := b.(*NullType)
		return ok
	case *Identifier:
		bt, ok := b.(*Identifier)
		return ok && at.Name == bt.Name
	case *ArrayType:
		bt, ok := b.(*ArrayType)
		return ok && Equals(at.Elem, bt.Elem)
	}
	return false
}

// IsReference reports whether t is an object or array type.
func IsReference(t Type) bool {
	switch t.(type) {
	case *Identifier, *ArrayType:
		return true
	}
	return false
}

// IsVoid reports whether t is the void marker.
func IsVoid(t Type) bool {
	_, ok := t.(*VoidType)
	return ok
}
