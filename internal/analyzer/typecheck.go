package analyzer

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/config"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/typesystem"
)

// checker is the annotating type-check pass: a single bottom-up walk
// that computes a type for every expression, validates every typing
// rule, resolves member accesses and calls, and validates overrides.
// Each visit reads the already-computed child types, writes the node's
// own slot once, and reports through the walker without ever aborting.
type checker struct {
	*walker

	currentClass     *ast.ClassDeclaration
	currentClassType *typesystem.Identifier
	currentSuperType *typesystem.Identifier
	currentMethod    *ast.MethodDeclaration

	stringType *typesystem.Identifier
}

func newChecker(w *walker) *checker {
	c := &checker{walker: w}
	c.stringType = &typesystem.Identifier{Name: config.StringClassName}
	if cd, ok := w.classes.Lookup(config.StringClassName); ok {
		c.stringType.Link = cd
	}
	return c
}

// typeOf reads an expression's resolved type; nil means the node is
// absent or already erroneous and its consumers must stay silent.
func typeOf(e ast.Expression) typesystem.Type {
	if e == nil {
		return nil
	}
	return e.TypeSlot().Type()
}

func (c *checker) VisitProgram(n *ast.Program) {
	for _, cd := range n.Classes {
		cd.Accept(c)
	}
}

func (c *checker) VisitClassDeclaration(n *ast.ClassDeclaration) {
	c.currentClass = n
	c.currentClassType = n.Type()
	if n.Super != nil {
		c.currentSuperType = n.Super.Type()
	} else {
		c.currentSuperType = nil
	}

	for _, md := range n.Methods {
		md.Accept(c)
	}

	c.currentClass = nil
	c.currentClassType = nil
	c.currentSuperType = nil
}

func (c *checker) VisitVarDeclaration(n *ast.VarDeclaration) {}

func (c *checker) VisitMethodDeclaration(n *ast.MethodDeclaration) {
	c.currentMethod = n
	if n.Body != nil {
		n.Body.Accept(c)
	}
	c.currentMethod = nil

	c.checkOverride(n)
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func (c *checker) VisitBlockStatement(n *ast.BlockStatement) {
	for _, s := range n.Statements {
		s.Accept(c)
	}
}

func (c *checker) VisitIfStatement(n *ast.IfStatement) {
	n.Cond.Accept(c)
	c.matchExact(typeOf(n.Cond), typesystem.Bool, n.Cond.GetToken(), true)
	n.Then.Accept(c)
	if n.Else != nil {
		n.Else.Accept(c)
	}
}

func (c *checker) VisitWhileStatement(n *ast.WhileStatement) {
	n.Cond.Accept(c)
	c.matchExact(typeOf(n.Cond), typesystem.Bool, n.Cond.GetToken(), true)
	n.Body.Accept(c)
}

func (c *checker) VisitSwitchStatement(n *ast.SwitchStatement) {
	n.Subject.Accept(c)
	c.matchExact(typeOf(n.Subject), typesystem.Int, n.Subject.GetToken(), true)

	for _, cl := range n.Cases {
		if cl.Label != nil {
			cl.Label.Accept(c)
			c.matchExact(typeOf(cl.Label), typesystem.Int, cl.Label.GetToken(), true)
		}
		for _, s := range cl.Body {
			s.Accept(c)
		}
	}
}

func (c *checker) VisitBreakStatement(n *ast.BreakStatement) {}

func (c *checker) VisitReturnStatement(n *ast.ReturnStatement) {
	if n.Value != nil {
		n.Value.Accept(c)
	}
	m := c.currentMethod
	if m == nil {
		return
	}

	if m.IsVoid() {
		if n.Value != nil && typeOf(n.Value) != nil {
			c.addError(diagnostics.NewErrorf(
				diagnostics.ErrA003, n.Value.GetToken(),
				"incompatible types: cannot return a value from void method %s", m.Name))
		}
		return
	}
	if n.Value == nil {
		c.addError(diagnostics.NewErrorf(
			diagnostics.ErrA003, n.Token,
			"incompatible types: missing return value in method %s", m.Name))
		return
	}
	c.matchAssign(typeOf(n.Value), m.ReturnType, n.Value.GetToken(), true)
}

func (c *checker) VisitLocalVarDeclStatement(n *ast.LocalVarDeclStatement) {
	n.Init.Accept(c)
	c.matchAssign(typeOf(n.Init), n.Decl.DeclType, n.Init.GetToken(), true)
}

func (c *checker) VisitAssignStatement(n *ast.AssignStatement) {
	n.Lhs.Accept(c)
	n.Rhs.Accept(c)

	switch n.Lhs.(type) {
	case *ast.IdentifierExp, *ast.ArrayLookup, *ast.InstVarAccess:
	default:
		// not an lvalue; the parser only produces this shape from
		// recovered input, so stay silent
		return
	}
	c.matchAssign(typeOf(n.Rhs), typeOf(n.Lhs), n.Rhs.GetToken(), true)
}

func (c *checker) VisitExpressionStatement(n *ast.ExpressionStatement) {
	n.Exp.Accept(c)
}

// ---------------------------------------------------------------------------
// Expressions. Every rule is guarded by the node's type slot: a slot
// that was already written (by an earlier run) is left untouched and
// produces no further diagnostics.
// ---------------------------------------------------------------------------

func (c *checker) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	n.TypeSlot().Resolve(typesystem.Int)
}

func (c *checker) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	n.TypeSlot().Resolve(typesystem.Bool)
}

func (c *checker) VisitStringLiteral(n *ast.StringLiteral) {
	n.TypeSlot().Resolve(c.stringType)
}

func (c *checker) VisitNullLiteral(n *ast.NullLiteral) {
	n.TypeSlot().Resolve(typesystem.Null)
}

func (c *checker) VisitThisExpression(n *ast.ThisExpression) {
	if c.currentClassType != nil {
		n.TypeSlot().Resolve(c.currentClassType)
	} else {
		n.TypeSlot().MarkInvalid()
	}
}

func (c *checker) VisitSuperExpression(n *ast.SuperExpression) {
	if c.currentSuperType != nil {
		n.TypeSlot().Resolve(c.currentSuperType)
	} else {
		n.TypeSlot().MarkInvalid()
	}
}

func (c *checker) VisitIdentifierExp(n *ast.IdentifierExp) {
	if n.TypeSlot().Visited() {
		return
	}
	if n.Decl != nil {
		n.TypeSlot().Resolve(n.Decl.DeclType)
	} else {
		n.TypeSlot().MarkInvalid()
	}
}

func (c *checker) VisitInfixExpression(n *ast.InfixExpression) {
	if n.TypeSlot().Visited() {
		return
	}
	n.Left.Accept(c)
	n.Right.Accept(c)
	lt, rt := typeOf(n.Left), typeOf(n.Right)

	switch n.Operator {
	case "+", "-", "*", "/", "%":
		c.matchExact(lt, typesystem.Int, n.Left.GetToken(), true)
		c.matchExact(rt, typesystem.Int, n.Right.GetToken(), true)
		n.TypeSlot().Resolve(typesystem.Int)
	case "<", ">":
		c.matchExact(lt, typesystem.Int, n.Left.GetToken(), true)
		c.matchExact(rt, typesystem.Int, n.Right.GetToken(), true)
		n.TypeSlot().Resolve(typesystem.Bool)
	case "==":
		c.matchEqCompare(lt, rt, n.Token, true)
		n.TypeSlot().Resolve(typesystem.Bool)
	case "&&", "||":
		c.matchExact(lt, typesystem.Bool, n.Left.GetToken(), true)
		c.matchExact(rt, typesystem.Bool, n.Right.GetToken(), true)
		n.TypeSlot().Resolve(typesystem.Bool)
	default:
		n.TypeSlot().MarkInvalid()
	}
}

func (c *checker) VisitPrefixExpression(n *ast.PrefixExpression) {
	if n.TypeSlot().Visited() {
		return
	}
	n.Right.Accept(c)
	c.matchExact(typeOf(n.Right), typesystem.Bool, n.Right.GetToken(), true)
	n.TypeSlot().Resolve(typesystem.Bool)
}

func (c *checker) VisitArrayLength(n *ast.ArrayLength) {
	if n.TypeSlot().Visited() {
		return
	}
	n.Receiver.Accept(c)
	rt := typeOf(n.Receiver)
	if _, ok := rt.(*typesystem.ArrayType); !ok {
		n.TypeSlot().MarkInvalid()
		return
	}
	n.TypeSlot().Resolve(typesystem.Int)
}

func (c *checker) VisitArrayLookup(n *ast.ArrayLookup) {
	if n.TypeSlot().Visited() {
		return
	}
	n.Receiver.Accept(c)
	n.Index.Accept(c)

	c.matchExact(typeOf(n.Index), typesystem.Int, n.Index.GetToken(), true)

	arr, ok := typeOf(n.Receiver).(*typesystem.ArrayType)
	if !ok {
		n.TypeSlot().MarkInvalid()
		return
	}
	n.TypeSlot().Resolve(arr.Elem)
}

func (c *checker) VisitInstVarAccess(n *ast.InstVarAccess) {
	if n.TypeSlot().Visited() {
		return
	}
	n.Receiver.Accept(c)

	rt := typeOf(n.Receiver)
	if rt == nil {
		n.TypeSlot().MarkInvalid()
		return
	}
	n.Decl = c.instVarLookupType(n.Name, rt, n.Token)
	if n.Decl == nil {
		n.TypeSlot().MarkInvalid()
		return
	}
	n.TypeSlot().Resolve(n.Decl.DeclType)
}

func (c *checker) VisitCastExpression(n *ast.CastExpression) {
	if n.TypeSlot().Visited() {
		return
	}
	n.Exp.Accept(c)

	// A cast is legal when either direction of the hierarchy is
	// structurally plausible; only a cast with no plausible direction
	// is reported, once.
	et := typeOf(n.Exp)
	if et != nil && !unresolved(et) && !unresolved(n.Target) &&
		!c.matchAssign(et, n.Target, n.Exp.GetToken(), false) &&
		!c.matchAssign(n.Target, et, n.Exp.GetToken(), false) {
		c.addError(diagnostics.NewErrorf(
			diagnostics.ErrA003, n.Exp.GetToken(),
			"incompatible types: cannot cast %s to %s", et, n.Target))
	}
	n.TypeSlot().Resolve(n.Target)
}

func (c *checker) VisitInstanceOfExpression(n *ast.InstanceOfExpression) {
	if n.TypeSlot().Visited() {
		return
	}
	n.Exp.Accept(c)

	et := typeOf(n.Exp)
	if et != nil && !unresolved(et) && !unresolved(n.Target) &&
		!c.matchAssign(et, n.Target, n.Exp.GetToken(), false) &&
		!c.matchAssign(n.Target, et, n.Exp.GetToken(), false) {
		c.addError(diagnostics.NewErrorf(
			diagnostics.ErrA003, n.Exp.GetToken(),
			"incompatible types: %s can never be an instance of %s", et, n.Target))
	}
	n.TypeSlot().Resolve(typesystem.Bool)
}

func (c *checker) VisitNewObject(n *ast.NewObject) {
	if n.TypeSlot().Visited() {
		return
	}
	n.TypeSlot().Resolve(n.ObjType)
}

func (c *checker) VisitNewArray(n *ast.NewArray) {
	if n.TypeSlot().Visited() {
		return
	}
	n.Size.Accept(c)
	c.matchExact(typeOf(n.Size), typesystem.Int, n.Size.GetToken(), true)
	n.TypeSlot().Resolve(&typesystem.ArrayType{Elem: n.ElemType})
}

func (c *checker) VisitCallExpression(n *ast.CallExpression) {
	if n.TypeSlot().Visited() {
		return
	}
	n.Receiver.Accept(c)
	for _, arg := range n.Args {
		arg.Accept(c)
	}

	rt := typeOf(n.Receiver)
	if rt == nil {
		n.TypeSlot().MarkInvalid()
		return
	}
	n.MethodLink = c.methodLookupType(n.Method, rt, n.Token)
	if n.MethodLink == nil {
		n.TypeSlot().MarkInvalid()
		return
	}

	if len(n.Args) != len(n.MethodLink.Formals) {
		c.addError(diagnostics.NewErrorf(
			diagnostics.ErrA006, n.Token,
			"wrong number of arguments to %s: have %d, want %d",
			n.Method, len(n.Args), len(n.MethodLink.Formals)))
		n.TypeSlot().MarkInvalid()
		return
	}
	for i, arg := range n.Args {
		c.matchAssign(typeOf(arg), n.MethodLink.Formals[i].DeclType, arg.GetToken(), true)
	}

	n.TypeSlot().Resolve(n.MethodLink.ReturnType)
}
