package analyzer

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/symbols"
	"github.com/funvibe/minijava/internal/token"
	"github.com/funvibe/minijava/internal/typesystem"
)

// binder resolves names: every type annotation gets its class link,
// every bare identifier gets a link to the variable declaration it
// refers to (local, formal or inherited instance variable). Member
// accesses and calls are left for the type-check pass, which needs the
// receiver's type first.
type binder struct {
	*walker

	currentClass *ast.ClassDeclaration
	scope        *symbols.Scope
}

// resolveType links every class name occurring in t, reporting unknown
// classes at tok. Array types are resolved through their element type.
func (b *binder) resolveType(t typesystem.Type, tok token.Token) {
	switch tt := t.(type) {
	case *typesystem.Identifier:
		if tt.Link != nil {
			return
		}
		cd, ok := b.classes.Lookup(tt.Name)
		if !ok {
			b.addError(diagnostics.NewErrorf(
				diagnostics.ErrA009, tok, "undefined class %s", tt.Name))
			return
		}
		tt.Link = cd
	case *typesystem.ArrayType:
		b.resolveType(tt.Elem, tok)
	}
}

func (b *binder) VisitProgram(n *ast.Program) {
	for _, cd := range n.Classes {
		cd.Accept(b)
	}
}

func (b *binder) VisitClassDeclaration(n *ast.ClassDeclaration) {
	b.currentClass = n
	for _, vd := range n.Vars {
		vd.Accept(b)
	}
	for _, md := range n.Methods {
		md.Accept(b)
	}
	b.currentClass = nil
}

func (b *binder) VisitVarDeclaration(n *ast.VarDeclaration) {
	b.resolveType(n.DeclType, n.TypeTok)
}

func (b *binder) VisitMethodDeclaration(n *ast.MethodDeclaration) {
	b.resolveType(n.ReturnType, n.ReturnTok)

	b.scope = symbols.NewScope(nil)
	for _, f := range n.Formals {
		b.resolveType(f.DeclType, f.TypeTok)
		if !b.scope.Define(f) {
			b.addError(diagnostics.NewErrorf(
				diagnostics.ErrA002, f.Token, "duplicate parameter %s", f.Name))
		}
	}
	if n.Body != nil {
		n.Body.Accept(b)
	}
	b.scope = nil
}

func (b *binder) VisitBlockStatement(n *ast.BlockStatement) {
	b.scope = symbols.NewScope(b.scope)
	for _, s := range n.Statements {
		s.Accept(b)
	}
	b.scope = b.scope.Parent()
}

func (b *binder) VisitIfStatement(n *ast.IfStatement) {
	n.Cond.Accept(b)
	n.Then.Accept(b)
	if n.Else != nil {
		n.Else.Accept(b)
	}
}

func (b *binder) VisitWhileStatement(n *ast.WhileStatement) {
	n.Cond.Accept(b)
	n.Body.Accept(b)
}

func (b *binder) VisitSwitchStatement(n *ast.SwitchStatement) {
	n.Subject.Accept(b)
	for _, c := range n.Cases {
		if c.Label != nil {
			c.Label.Accept(b)
		}
		for _, s := range c.Body {
			s.Accept(b)
		}
	}
}

func (b *binder) VisitBreakStatement(n *ast.BreakStatement) {}

func (b *binder) VisitReturnStatement(n *ast.ReturnStatement) {
	if n.Value != nil {
		n.Value.Accept(b)
	}
}

func (b *binder) VisitLocalVarDeclStatement(n *ast.LocalVarDeclStatement) {
	b.resolveType(n.Decl.DeclType, n.Decl.TypeTok)
	// The initializer is bound before the name is in scope:
	// "int x = x + 1;" refers to an outer x or is undeclared.
	n.Init.Accept(b)
	if !b.scope.Define(n.Decl) {
		b.addError(diagnostics.NewErrorf(
			diagnostics.ErrA002, n.Decl.Token, "duplicate variable %s", n.Decl.Name))
	}
}

func (b *binder) VisitAssignStatement(n *ast.AssignStatement) {
	n.Lhs.Accept(b)
	n.Rhs.Accept(b)
}

func (b *binder) VisitExpressionStatement(n *ast.ExpressionStatement) {
	n.Exp.Accept(b)
}

func (b *binder) VisitIntegerLiteral(n *ast.IntegerLiteral) {}
func (b *binder) VisitBooleanLiteral(n *ast.BooleanLiteral) {}
func (b *binder) VisitStringLiteral(n *ast.StringLiteral)   {}
func (b *binder) VisitNullLiteral(n *ast.NullLiteral)       {}
func (b *binder) VisitThisExpression(n *ast.ThisExpression)   {}
func (b *binder) VisitSuperExpression(n *ast.SuperExpression) {}

func (b *binder) VisitIdentifierExp(n *ast.IdentifierExp) {
	if b.scope != nil {
		if vd, ok := b.scope.Resolve(n.Name); ok {
			n.Decl = vd
			return
		}
	}
	if b.currentClass != nil {
		if vd, ok := symbols.FindInstanceVariable(n.Name, b.currentClass); ok {
			n.Decl = vd
			return
		}
	}
	b.addError(diagnostics.NewErrorf(
		diagnostics.ErrA001, n.Token, "undeclared variable %s", n.Name))
}

func (b *binder) VisitInfixExpression(n *ast.InfixExpression) {
	n.Left.Accept(b)
	n.Right.Accept(b)
}

func (b *binder) VisitPrefixExpression(n *ast.PrefixExpression) {
	n.Right.Accept(b)
}

func (b *binder) VisitArrayLength(n *ast.ArrayLength) {
	n.Receiver.Accept(b)
}

func (b *binder) VisitArrayLookup(n *ast.ArrayLookup) {
	n.Receiver.Accept(b)
	n.Index.Accept(b)
}

func (b *binder) VisitInstVarAccess(n *ast.InstVarAccess) {
	n.Receiver.Accept(b)
}

func (b *binder) VisitCastExpression(n *ast.CastExpression) {
	b.resolveType(n.Target, n.TargetTok)
	n.Exp.Accept(b)
}

func (b *binder) VisitInstanceOfExpression(n *ast.InstanceOfExpression) {
	n.Exp.Accept(b)
	b.resolveType(n.Target, n.TargetTok)
}

func (b *binder) VisitNewObject(n *ast.NewObject) {
	b.resolveType(n.ObjType, n.NameTok)
}

func (b *binder) VisitNewArray(n *ast.NewArray) {
	b.resolveType(n.ElemType, n.TypeTok)
	n.Size.Accept(b)
}

func (b *binder) VisitCallExpression(n *ast.CallExpression) {
	n.Receiver.Accept(b)
	for _, arg := range n.Args {
		arg.Accept(b)
	}
}
