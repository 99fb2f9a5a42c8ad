package ast

import (
	"github.com/funvibe/minijava/internal/token"
	"github.com/funvibe/minijava/internal/typesystem"
)

// TokenProvider is an interface for any AST node that can provide its
// primary token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression. Every expression
// carries a write-once type slot filled by the type-check pass.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
	TypeSlot() *TypeSlot
}

// Visitor has one method per node kind. Adding a node kind without a
// rule in every pass is a compile error.
type Visitor interface {
	VisitProgram(n *Program)
	VisitClassDeclaration(n *ClassDeclaration)
	VisitVarDeclaration(n *VarDeclaration)
	VisitMethodDeclaration(n *MethodDeclaration)

	VisitBlockStatement(n *BlockStatement)
	VisitIfStatement(n *IfStatement)
	VisitWhileStatement(n *WhileStatement)
	VisitSwitchStatement(n *SwitchStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitLocalVarDeclStatement(n *LocalVarDeclStatement)
	VisitAssignStatement(n *AssignStatement)
	VisitExpressionStatement(n *ExpressionStatement)

	VisitIntegerLiteral(n *IntegerLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitNullLiteral(n *NullLiteral)
	VisitThisExpression(n *ThisExpression)
	VisitSuperExpression(n *SuperExpression)
	VisitIdentifierExp(n *IdentifierExp)
	VisitInfixExpression(n *InfixExpression)
	VisitPrefixExpression(n *PrefixExpression)
	VisitArrayLength(n *ArrayLength)
	VisitArrayLookup(n *ArrayLookup)
	VisitInstVarAccess(n *InstVarAccess)
	VisitCastExpression(n *CastExpression)
	VisitInstanceOfExpression(n *InstanceOfExpression)
	VisitNewObject(n *NewObject)
	VisitNewArray(n *NewArray)
	VisitCallExpression(n *CallExpression)
}

type slotState int

const (
	slotUnresolved slotState = iota
	slotInvalid
	slotResolved
)

// TypeSlot is the resolved-type output slot of an expression node.
// It distinguishes "not visited yet", "visited but erroneous" and
// "resolved". Writes after the first are ignored, so a re-run of the
// annotator cannot clobber an already-correct type.
type TypeSlot struct {
	state slotState
	typ   typesystem.Type
}

// Resolve records the expression's type. No-op if the slot was already
// written.
func (s *TypeSlot) Resolve(t typesystem.Type) {
	if s.state != slotUnresolved {
		return
	}
	s.state = slotResolved
	s.typ = t
}

// MarkInvalid records that the expression is erroneous and its type is
// intentionally absent. Downstream rules treat the absence as "already
// reported, do not re-report".
func (s *TypeSlot) MarkInvalid() {
	if s.state != slotUnresolved {
		return
	}
	s.state = slotInvalid
}

// Type returns the resolved type, or nil when the slot is unresolved or
// invalid.
func (s *TypeSlot) Type() typesystem.Type {
	if s.state != slotResolved {
		return nil
	}
	return s.typ
}

// Visited reports whether the slot has been written (resolved or invalid).
func (s *TypeSlot) Visited() bool {
	return s.state != slotUnresolved
}

// typed is embedded by every expression node to provide its type slot.
type typed struct {
	slot TypeSlot
}

func (t *typed) TypeSlot() *TypeSlot { return &t.slot }

// ResolvedType is a convenience for reading an expression's type;
// nil means absent.
func (t *typed) ResolvedType() typesystem.Type { return t.slot.Type() }

// Program is the root node of every AST our parser produces.
type Program struct {
	File      string // Source file path
	Classes   []*ClassDeclaration
	Annotated bool // set after the type-check pass; guards re-annotation
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Classes) > 0 {
		return p.Classes[0].TokenLiteral()
	}
	return ""
}
