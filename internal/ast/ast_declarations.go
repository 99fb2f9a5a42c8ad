package ast

import (
	"github.com/funvibe/minijava/internal/token"
	"github.com/funvibe/minijava/internal/typesystem"
)

// ClassDeclaration is a class with its members. The superclass link and
// the member tables are populated by the declarations pass and read-only
// afterwards.
type ClassDeclaration struct {
	Token     token.Token // the class name token
	Name      string
	SuperName string      // "" for classes without an extends clause
	SuperTok  token.Token // the extends-name token, for diagnostics

	Super       *ClassDeclaration
	Vars        []*VarDeclaration
	Methods     []*MethodDeclaration
	VarTable    map[string]*VarDeclaration
	MethodTable map[string]*MethodDeclaration

	Builtin bool // Object and String
}

func (cd *ClassDeclaration) Accept(v Visitor)     { v.VisitClassDeclaration(cd) }
func (cd *ClassDeclaration) TokenLiteral() string { return cd.Token.Lexeme }
func (cd *ClassDeclaration) GetToken() token.Token {
	if cd == nil {
		return token.Token{}
	}
	return cd.Token
}

// ClassName implements typesystem.ClassRef.
func (cd *ClassDeclaration) ClassName() string { return cd.Name }

// SuperRef implements typesystem.ClassRef.
func (cd *ClassDeclaration) SuperRef() typesystem.ClassRef {
	if cd.Super == nil {
		return nil
	}
	return cd.Super
}

// Type returns the identifier type denoting this class, linked back to
// the declaration.
func (cd *ClassDeclaration) Type() *typesystem.Identifier {
	return &typesystem.Identifier{Name: cd.Name, Link: cd}
}

// VarKind distinguishes where a variable was declared.
type VarKind int

const (
	InstanceVar VarKind = iota
	FormalVar
	LocalVar
)

// VarDeclaration is an instance variable, formal parameter or local
// variable declaration.
type VarDeclaration struct {
	Token    token.Token // the variable name token
	Name     string
	DeclType typesystem.Type
	TypeTok  token.Token // the first token of the type annotation
	Kind     VarKind
}

func (vd *VarDeclaration) Accept(v Visitor)     { v.VisitVarDeclaration(vd) }
func (vd *VarDeclaration) TokenLiteral() string { return vd.Token.Lexeme }
func (vd *VarDeclaration) GetToken() token.Token {
	if vd == nil {
		return token.Token{}
	}
	return vd.Token
}

// MethodDeclaration is a method with its formals and body. ReturnType is
// typesystem.Void for void methods. Class is the declaring class, set by
// the declarations pass; Overrides is set by override validation when the
// method replaces a same-named ancestor method.
type MethodDeclaration struct {
	Token      token.Token // the method name token
	Name       string
	ReturnType typesystem.Type
	ReturnTok  token.Token // the return-type (or void) token
	Formals    []*VarDeclaration
	Body       *BlockStatement

	Class     *ClassDeclaration
	Overrides *MethodDeclaration
}

func (md *MethodDeclaration) Accept(v Visitor)     { v.VisitMethodDeclaration(md) }
func (md *MethodDeclaration) TokenLiteral() string { return md.Token.Lexeme }
func (md *MethodDeclaration) GetToken() token.Token {
	if md == nil {
		return token.Token{}
	}
	return md.Token
}

// IsVoid reports whether the method has no return value.
func (md *MethodDeclaration) IsVoid() bool {
	return typesystem.IsVoid(md.ReturnType)
}
