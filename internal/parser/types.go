package parser

import (
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/token"
	"github.com/funvibe/minijava/internal/typesystem"
)

// parseType parses a type annotation starting at the current token:
// int, boolean or a class name, each followed by any number of []
// pairs. Returns the type and its first token.
func (p *Parser) parseType() (typesystem.Type, token.Token, bool) {
	first := p.curToken

	var t typesystem.Type
	switch p.curToken.Type {
	case token.INT_TYPE:
		t = typesystem.Int
	case token.BOOL_TYPE:
		t = typesystem.Bool
	case token.IDENT:
		t = &typesystem.Identifier{Name: p.curToken.Lexeme}
	default:
		p.errors = append(p.errors, diagnostics.NewErrorf(
			diagnostics.ErrP003, p.curToken, "expected type, got %q", p.curToken.Lexeme))
		return nil, first, false
	}

	for p.peekTokenIs(token.LBRACKET) && p.peekAt(2).Type == token.RBRACKET {
		p.nextToken()
		p.nextToken()
		t = &typesystem.ArrayType{Elem: t}
	}

	return t, first, true
}

// isTypeStart reports whether a token can begin a type annotation.
func isTypeStart(t token.TokenType) bool {
	return t == token.INT_TYPE || t == token.BOOL_TYPE || t == token.IDENT
}

// typeEnd scans a syntactic type starting n tokens ahead and returns
// the offset just past it, or -1 when no type starts there. Pure
// lookahead, consumes nothing.
func (p *Parser) typeEnd(n int) int {
	if !isTypeStart(p.peekAt(n).Type) {
		return -1
	}
	n++
	for p.peekAt(n).Type == token.LBRACKET && p.peekAt(n+1).Type == token.RBRACKET {
		n += 2
	}
	return n
}

// looksLikeLocalDecl reports whether the statement starting at the
// current token is a local variable declaration ("Type name = ..."),
// distinguishing "A[] x = ..." from the index expression "a[i] = ...".
func (p *Parser) looksLikeLocalDecl() bool {
	if p.curTokenIs(token.INT_TYPE) || p.curTokenIs(token.BOOL_TYPE) {
		return true
	}
	if !p.curTokenIs(token.IDENT) {
		return false
	}
	end := p.typeEnd(0)
	return end > 0 && p.peekAt(end).Type == token.IDENT
}
