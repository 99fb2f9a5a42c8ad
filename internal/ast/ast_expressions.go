package ast

import (
	"github.com/funvibe/minijava/internal/token"
	"github.com/funvibe/minijava/internal/typesystem"
)

// IntegerLiteral: 42
type IntegerLiteral struct {
	typed
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) Accept(v Visitor)      { v.VisitIntegerLiteral(il) }
func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }

// BooleanLiteral: true / false
type BooleanLiteral struct {
	typed
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) Accept(v Visitor)      { v.VisitBooleanLiteral(bl) }
func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }

// StringLiteral: "text"
type StringLiteral struct {
	typed
	Token token.Token
	Value string
}

func (sl *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }

// NullLiteral: null
type NullLiteral struct {
	typed
	Token token.Token
}

func (nl *NullLiteral) Accept(v Visitor)      { v.VisitNullLiteral(nl) }
func (nl *NullLiteral) expressionNode()       {}
func (nl *NullLiteral) TokenLiteral() string  { return nl.Token.Lexeme }
func (nl *NullLiteral) GetToken() token.Token { return nl.Token }

// ThisExpression: this
type ThisExpression struct {
	typed
	Token token.Token
}

func (te *ThisExpression) Accept(v Visitor)      { v.VisitThisExpression(te) }
func (te *ThisExpression) expressionNode()       {}
func (te *ThisExpression) TokenLiteral() string  { return te.Token.Lexeme }
func (te *ThisExpression) GetToken() token.Token { return te.Token }

// SuperExpression: super
type SuperExpression struct {
	typed
	Token token.Token
}

func (se *SuperExpression) Accept(v Visitor)      { v.VisitSuperExpression(se) }
func (se *SuperExpression) expressionNode()       {}
func (se *SuperExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SuperExpression) GetToken() token.Token { return se.Token }

// IdentifierExp is a bare variable reference. Decl is resolved by the
// binding pass.
type IdentifierExp struct {
	typed
	Token token.Token
	Name  string
	Decl  *VarDeclaration
}

func (ie *IdentifierExp) Accept(v Visitor)      { v.VisitIdentifierExp(ie) }
func (ie *IdentifierExp) expressionNode()       {}
func (ie *IdentifierExp) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *IdentifierExp) GetToken() token.Token { return ie.Token }

// InfixExpression: Left Operator Right
// Operators: + - * / % < > == && ||
type InfixExpression struct {
	typed
	Token    token.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) Accept(v Visitor)      { v.VisitInfixExpression(ie) }
func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }

// PrefixExpression: Operator Right. The only prefix operator is !.
type PrefixExpression struct {
	typed
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) Accept(v Visitor)      { v.VisitPrefixExpression(pe) }
func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }

// ArrayLength: Receiver.length
type ArrayLength struct {
	typed
	Token    token.Token // the length token
	Receiver Expression
}

func (al *ArrayLength) Accept(v Visitor)      { v.VisitArrayLength(al) }
func (al *ArrayLength) expressionNode()       {}
func (al *ArrayLength) TokenLiteral() string  { return al.Token.Lexeme }
func (al *ArrayLength) GetToken() token.Token { return al.Token }

// ArrayLookup: Receiver[Index]
type ArrayLookup struct {
	typed
	Token    token.Token // the [ token
	Receiver Expression
	Index    Expression
}

func (al *ArrayLookup) Accept(v Visitor)      { v.VisitArrayLookup(al) }
func (al *ArrayLookup) expressionNode()       {}
func (al *ArrayLookup) TokenLiteral() string  { return al.Token.Lexeme }
func (al *ArrayLookup) GetToken() token.Token { return al.Token }

// InstVarAccess: Receiver.Name. Decl is resolved by the type-check pass
// against the receiver's class and its ancestors.
type InstVarAccess struct {
	typed
	Token    token.Token // the member name token
	Receiver Expression
	Name     string
	Decl     *VarDeclaration
}

func (iv *InstVarAccess) Accept(v Visitor)      { v.VisitInstVarAccess(iv) }
func (iv *InstVarAccess) expressionNode()       {}
func (iv *InstVarAccess) TokenLiteral() string  { return iv.Token.Lexeme }
func (iv *InstVarAccess) GetToken() token.Token { return iv.Token }

// CastExpression: (Target) Exp
type CastExpression struct {
	typed
	Token     token.Token // the ( token
	Target    typesystem.Type
	TargetTok token.Token
	Exp       Expression
}

func (ce *CastExpression) Accept(v Visitor)      { v.VisitCastExpression(ce) }
func (ce *CastExpression) expressionNode()       {}
func (ce *CastExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CastExpression) GetToken() token.Token { return ce.Token }

// InstanceOfExpression: Exp instanceof Target
type InstanceOfExpression struct {
	typed
	Token     token.Token // the instanceof token
	Exp       Expression
	Target    typesystem.Type
	TargetTok token.Token
}

func (io *InstanceOfExpression) Accept(v Visitor)      { v.VisitInstanceOfExpression(io) }
func (io *InstanceOfExpression) expressionNode()       {}
func (io *InstanceOfExpression) TokenLiteral() string  { return io.Token.Lexeme }
func (io *InstanceOfExpression) GetToken() token.Token { return io.Token }

// NewObject: new ClassName()
type NewObject struct {
	typed
	Token   token.Token // the new token
	NameTok token.Token
	ObjType *typesystem.Identifier
}

func (no *NewObject) Accept(v Visitor)      { v.VisitNewObject(no) }
func (no *NewObject) expressionNode()       {}
func (no *NewObject) TokenLiteral() string  { return no.Token.Lexeme }
func (no *NewObject) GetToken() token.Token { return no.Token }

// NewArray: new ElemType[Size]
type NewArray struct {
	typed
	Token    token.Token // the new token
	ElemType typesystem.Type
	TypeTok  token.Token
	Size     Expression
}

func (na *NewArray) Accept(v Visitor)      { v.VisitNewArray(na) }
func (na *NewArray) expressionNode()       {}
func (na *NewArray) TokenLiteral() string  { return na.Token.Lexeme }
func (na *NewArray) GetToken() token.Token { return na.Token }

// CallExpression: Receiver.Method(Args). MethodLink is resolved by the
// type-check pass.
type CallExpression struct {
	typed
	Token      token.Token // the method name token
	Receiver   Expression
	Method     string
	Args       []Expression
	MethodLink *MethodDeclaration
}

func (ce *CallExpression) Accept(v Visitor)      { v.VisitCallExpression(ce) }
func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }
