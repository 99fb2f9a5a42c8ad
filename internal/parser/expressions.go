package parser

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/token"
	"github.com/funvibe/minijava/internal/typesystem"
)

// Operator precedence, lowest first.
const (
	LOWEST = iota
	OR_PREC
	AND_PREC
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
)

var precedences = map[token.TokenType]int{
	token.OR:       OR_PREC,
	token.AND:      AND_PREC,
	token.EQ:       EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
}

// parseExpression parses an expression with the current token on its
// first token, leaving the current token on its last token.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrimary()

	for left != nil {
		switch {
		case p.peekTokenIs(token.DOT):
			left = p.parseMemberAccess(left)
		case p.peekTokenIs(token.LBRACKET):
			left = p.parseArrayLookup(left)
		case p.peekTokenIs(token.INSTANCEOF) && precedence < LESSGREATER:
			left = p.parseInstanceOf(left)
		default:
			opPrec, ok := precedences[p.peekToken.Type]
			if !ok || precedence >= opPrec {
				return left
			}
			p.nextToken()
			left = p.parseInfix(left)
		}
	}
	return nil
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.curToken.Type {
	case token.INT:
		return &ast.IntegerLiteral{Token: p.curToken, Value: p.curToken.Literal.(int64)}
	case token.STRING:
		return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
	case token.TRUE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: true}
	case token.FALSE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: false}
	case token.NULL:
		return &ast.NullLiteral{Token: p.curToken}
	case token.THIS:
		return &ast.ThisExpression{Token: p.curToken}
	case token.SUPER:
		return &ast.SuperExpression{Token: p.curToken}
	case token.IDENT:
		return &ast.IdentifierExp{Token: p.curToken, Name: p.curToken.Lexeme}
	case token.BANG:
		exp := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Lexeme}
		p.nextToken()
		exp.Right = p.parseExpression(PREFIX)
		if exp.Right == nil {
			return nil
		}
		return exp
	case token.LPAREN:
		return p.parseParenOrCast()
	case token.NEW:
		return p.parseNew()
	default:
		p.unexpected("expression")
		return nil
	}
}

// castFollow are the token types that may begin the operand of a cast.
// "(Name) x" is a cast exactly when Name parses as a type and the token
// after the closing paren is in this set; otherwise the parens are a
// grouping.
var castFollow = map[token.TokenType]bool{
	token.IDENT:  true,
	token.INT:    true,
	token.STRING: true,
	token.TRUE:   true,
	token.FALSE:  true,
	token.NULL:   true,
	token.THIS:   true,
	token.SUPER:  true,
	token.NEW:    true,
	token.BANG:   true,
	token.LPAREN: true,
}

func (p *Parser) parseParenOrCast() ast.Expression {
	if end := p.typeEnd(1); end > 0 &&
		p.peekAt(end).Type == token.RPAREN && castFollow[p.peekAt(end+1).Type] {
		cast := &ast.CastExpression{Token: p.curToken}
		p.nextToken()
		target, targetTok, ok := p.parseType()
		if !ok {
			return nil
		}
		cast.Target = target
		cast.TargetTok = targetTok
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		p.nextToken()
		cast.Exp = p.parseExpression(PREFIX)
		if cast.Exp == nil {
			return nil
		}
		return cast
	}

	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if exp == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseNew() ast.Expression {
	newTok := p.curToken
	p.nextToken()

	if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.LPAREN) {
		obj := &ast.NewObject{
			Token:   newTok,
			NameTok: p.curToken,
			ObjType: &typesystem.Identifier{Name: p.curToken.Lexeme},
		}
		p.nextToken()
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return obj
	}

	var elem typesystem.Type
	switch p.curToken.Type {
	case token.INT_TYPE:
		elem = typesystem.Int
	case token.BOOL_TYPE:
		elem = typesystem.Bool
	case token.IDENT:
		elem = &typesystem.Identifier{Name: p.curToken.Lexeme}
	default:
		p.unexpected("new expression")
		return nil
	}

	arr := &ast.NewArray{Token: newTok, ElemType: elem, TypeTok: p.curToken}
	if !p.expectPeek(token.LBRACKET) {
		return nil
	}
	p.nextToken()
	arr.Size = p.parseExpression(LOWEST)
	if arr.Size == nil || !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return arr
}

// parseMemberAccess parses ".length", ".name" or ".name(args)" with the
// receiver already parsed and the dot still in peek position.
func (p *Parser) parseMemberAccess(receiver ast.Expression) ast.Expression {
	p.nextToken() // the dot

	if p.peekTokenIs(token.LENGTH) {
		p.nextToken()
		return &ast.ArrayLength{Token: p.curToken, Receiver: receiver}
	}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	nameTok := p.curToken

	if !p.peekTokenIs(token.LPAREN) {
		return &ast.InstVarAccess{Token: nameTok, Receiver: receiver, Name: nameTok.Lexeme}
	}

	call := &ast.CallExpression{Token: nameTok, Receiver: receiver, Method: nameTok.Lexeme}
	p.nextToken() // the (

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return call
	}

	for {
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return call
}

func (p *Parser) parseArrayLookup(receiver ast.Expression) ast.Expression {
	p.nextToken() // the [
	lookup := &ast.ArrayLookup{Token: p.curToken, Receiver: receiver}
	p.nextToken()
	lookup.Index = p.parseExpression(LOWEST)
	if lookup.Index == nil || !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return lookup
}

func (p *Parser) parseInstanceOf(exp ast.Expression) ast.Expression {
	p.nextToken() // the instanceof keyword
	node := &ast.InstanceOfExpression{Token: p.curToken, Exp: exp}
	p.nextToken()
	target, targetTok, ok := p.parseType()
	if !ok {
		return nil
	}
	node.Target = target
	node.TargetTok = targetTok
	return node
}

func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	exp := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}
	precedence := precedences[p.curToken.Type]
	p.nextToken()
	exp.Right = p.parseExpression(precedence)
	if exp.Right == nil {
		return nil
	}
	return exp
}
