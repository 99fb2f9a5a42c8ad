package parser

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/token"
	"github.com/funvibe/minijava/internal/typesystem"
)

// parseClassDeclaration parses
//
//	class Name [extends Super] { member* }
//
// with the current token on the class keyword.
func (p *Parser) parseClassDeclaration() *ast.ClassDeclaration {
	if !p.expectPeek(token.IDENT) {
		return nil
	}

	cd := &ast.ClassDeclaration{
		Token: p.curToken,
		Name:  p.curToken.Lexeme,
	}

	if p.peekTokenIs(token.EXTENDS) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		cd.SuperName = p.curToken.Lexeme
		cd.SuperTok = p.curToken
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if !p.parseMember(cd) {
			p.syncStatement()
		}
	}

	if p.curTokenIs(token.RBRACE) {
		p.nextToken()
	}

	return cd
}

// parseMember parses one instance variable or method declaration and
// appends it to cd. Returns false on a syntax error.
func (p *Parser) parseMember(cd *ast.ClassDeclaration) bool {
	if p.curTokenIs(token.PUBLIC) {
		p.nextToken()
	}

	// void methods have no variable counterpart.
	if p.curTokenIs(token.VOID) {
		retTok := p.curToken
		if !p.expectPeek(token.IDENT) {
			return false
		}
		md := p.parseMethodRest(typesystem.Void, retTok)
		if md == nil {
			return false
		}
		cd.Methods = append(cd.Methods, md)
		return true
	}

	declType, typeTok, ok := p.parseType()
	if !ok {
		return false
	}
	if !p.expectPeek(token.IDENT) {
		return false
	}

	if p.peekTokenIs(token.LPAREN) {
		md := p.parseMethodRest(declType, typeTok)
		if md == nil {
			return false
		}
		cd.Methods = append(cd.Methods, md)
		return true
	}

	vd := &ast.VarDeclaration{
		Token:    p.curToken,
		Name:     p.curToken.Lexeme,
		DeclType: declType,
		TypeTok:  typeTok,
		Kind:     ast.InstanceVar,
	}
	if !p.expectPeek(token.SEMICOLON) {
		return false
	}
	p.nextToken()
	cd.Vars = append(cd.Vars, vd)
	return true
}

// parseMethodRest parses formals and body with the current token on the
// method name.
func (p *Parser) parseMethodRest(returnType typesystem.Type, returnTok token.Token) *ast.MethodDeclaration {
	md := &ast.MethodDeclaration{
		Token:      p.curToken,
		Name:       p.curToken.Lexeme,
		ReturnType: returnType,
		ReturnTok:  returnTok,
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	if !p.peekTokenIs(token.RPAREN) {
		for {
			p.nextToken()
			declType, typeTok, ok := p.parseType()
			if !ok {
				return nil
			}
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			md.Formals = append(md.Formals, &ast.VarDeclaration{
				Token:    p.curToken,
				Name:     p.curToken.Lexeme,
				DeclType: declType,
				TypeTok:  typeTok,
				Kind:     ast.FormalVar,
			})
			if !p.peekTokenIs(token.COMMA) {
				break
			}
			p.nextToken()
		}
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	md.Body = p.parseBlockStatement()
	return md
}
