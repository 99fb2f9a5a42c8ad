package ast

import "github.com/funvibe/minijava/internal/token"

// BlockStatement is a braced sequence of statements.
type BlockStatement struct {
	Token      token.Token // the { token
	Statements []Statement
}

func (bs *BlockStatement) Accept(v Visitor)     { v.VisitBlockStatement(bs) }
func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// IfStatement: if (Cond) Then [else Else]
type IfStatement struct {
	Token token.Token // the if token
	Cond  Expression
	Then  Statement
	Else  Statement // nil when absent
}

func (is *IfStatement) Accept(v Visitor)      { v.VisitIfStatement(is) }
func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token { return is.Token }

// WhileStatement: while (Cond) Body
type WhileStatement struct {
	Token token.Token // the while token
	Cond  Expression
	Body  Statement
}

func (ws *WhileStatement) Accept(v Visitor)      { v.VisitWhileStatement(ws) }
func (ws *WhileStatement) statementNode()        {}
func (ws *WhileStatement) TokenLiteral() string  { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token { return ws.Token }

// CaseClause is one case (or default, when Label is nil) arm of a switch.
type CaseClause struct {
	Token token.Token // the case or default token
	Label Expression  // nil for default
	Body  []Statement
}

// SwitchStatement: switch (Subject) { case n: ... default: ... }
type SwitchStatement struct {
	Token   token.Token // the switch token
	Subject Expression
	Cases   []*CaseClause
}

func (ss *SwitchStatement) Accept(v Visitor)      { v.VisitSwitchStatement(ss) }
func (ss *SwitchStatement) statementNode()        {}
func (ss *SwitchStatement) TokenLiteral() string  { return ss.Token.Lexeme }
func (ss *SwitchStatement) GetToken() token.Token { return ss.Token }

// BreakStatement: break;
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) Accept(v Visitor)      { v.VisitBreakStatement(bs) }
func (bs *BreakStatement) statementNode()        {}
func (bs *BreakStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BreakStatement) GetToken() token.Token { return bs.Token }

// ReturnStatement: return [Value];
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil for bare return
}

func (rs *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) statementNode()        {}
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }

// LocalVarDeclStatement: Type name = Init;
type LocalVarDeclStatement struct {
	Token token.Token // the variable name token
	Decl  *VarDeclaration
	Init  Expression
}

func (lv *LocalVarDeclStatement) Accept(v Visitor)      { v.VisitLocalVarDeclStatement(lv) }
func (lv *LocalVarDeclStatement) statementNode()        {}
func (lv *LocalVarDeclStatement) TokenLiteral() string  { return lv.Token.Lexeme }
func (lv *LocalVarDeclStatement) GetToken() token.Token { return lv.Token }

// AssignStatement: Lhs = Rhs;
type AssignStatement struct {
	Token token.Token // the = token
	Lhs   Expression
	Rhs   Expression
}

func (as *AssignStatement) Accept(v Visitor)      { v.VisitAssignStatement(as) }
func (as *AssignStatement) statementNode()        {}
func (as *AssignStatement) TokenLiteral() string  { return as.Token.Lexeme }
func (as *AssignStatement) GetToken() token.Token { return as.Token }

// ExpressionStatement wraps an expression (a call) in statement position.
type ExpressionStatement struct {
	Token token.Token
	Exp   Expression
}

func (es *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(es) }
func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }
