package parser

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/token"
)

// Statement parsers enter with the current token on the first token of
// the construct and leave with it on the first token after it.

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			p.syncStatement()
			continue
		}
		block.Statements = append(block.Statements, stmt)
	}

	if p.curTokenIs(token.RBRACE) {
		p.nextToken()
	}
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		if p.looksLikeLocalDecl() {
			return p.parseLocalVarDecl()
		}
		return p.parseExpressionOrAssign()
	}
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Cond = p.parseExpression(LOWEST)
	if stmt.Cond == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()

	stmt.Then = p.parseStatement()
	if stmt.Then == nil {
		return nil
	}

	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		stmt.Else = p.parseStatement()
		if stmt.Else == nil {
			return nil
		}
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Cond = p.parseExpression(LOWEST)
	if stmt.Cond == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()

	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	stmt := &ast.SwitchStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Subject = p.parseExpression(LOWEST)
	if stmt.Subject == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()

	for p.curTokenIs(token.CASE) || p.curTokenIs(token.DEFAULT) {
		clause := &ast.CaseClause{Token: p.curToken}
		if p.curTokenIs(token.CASE) {
			p.nextToken()
			clause.Label = p.parseExpression(LOWEST)
			if clause.Label == nil {
				return nil
			}
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()

		for !p.curTokenIs(token.CASE) && !p.curTokenIs(token.DEFAULT) &&
			!p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			s := p.parseStatement()
			if s == nil {
				p.syncStatement()
				continue
			}
			clause.Body = append(clause.Body, s)
		}
		stmt.Cases = append(stmt.Cases, clause)
	}

	if !p.curTokenIs(token.RBRACE) {
		p.unexpected("switch body")
		return nil
	}
	p.nextToken()
	return stmt
}

func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.BreakStatement{Token: p.curToken}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	p.nextToken()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil || !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	p.nextToken()
	return stmt
}

// parseLocalVarDecl parses "Type name = init;". An initializer is
// mandatory; the language has no default values.
func (p *Parser) parseLocalVarDecl() ast.Statement {
	declType, typeTok, ok := p.parseType()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt := &ast.LocalVarDeclStatement{
		Token: p.curToken,
		Decl: &ast.VarDeclaration{
			Token:    p.curToken,
			Name:     p.curToken.Lexeme,
			DeclType: declType,
			TypeTok:  typeTok,
			Kind:     ast.LocalVar,
		},
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	stmt.Init = p.parseExpression(LOWEST)
	if stmt.Init == nil || !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	p.nextToken()
	return stmt
}

// parseExpressionOrAssign parses either an assignment or a bare
// expression statement (a call).
func (p *Parser) parseExpressionOrAssign() ast.Statement {
	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		stmt := &ast.AssignStatement{Token: p.curToken, Lhs: exp}
		p.nextToken()
		stmt.Rhs = p.parseExpression(LOWEST)
		if stmt.Rhs == nil || !p.expectPeek(token.SEMICOLON) {
			return nil
		}
		p.nextToken()
		return stmt
	}

	stmt := &ast.ExpressionStatement{Token: exp.GetToken(), Exp: exp}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	p.nextToken()
	return stmt
}
