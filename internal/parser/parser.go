// Package parser turns a token stream into the MiniJava AST. The parser
// is hand-written recursive descent; it recovers at statement and member
// boundaries so one syntax error does not hide the rest of the file.
package parser

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/lexer"
	"github.com/funvibe/minijava/internal/token"
)

type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	errors []*diagnostics.DiagnosticError
}

// New drains the lexer and positions the parser at the first token.
// Draining up front gives us the cheap multi-token lookahead the
// declaration/expression ambiguities in the grammar need.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{}
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			p.errors = append(p.errors, diagnostics.NewErrorf(
				diagnostics.ErrL001, tok, "illegal token %q", tok.Lexeme))
			continue
		}
		p.tokens = append(p.tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	p.pos = 0
	p.curToken = p.tokens[0]
	p.peekToken = p.tokenAt(1)
	return p
}

func (p *Parser) Errors() []*diagnostics.DiagnosticError {
	return p.errors
}

func (p *Parser) tokenAt(i int) token.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[i]
}

func (p *Parser) nextToken() {
	if p.curToken.Type != token.EOF {
		p.pos++
	}
	p.curToken = p.tokenAt(p.pos)
	p.peekToken = p.tokenAt(p.pos + 1)
}

// peekAt looks n tokens past the current one (peekAt(1) == peekToken).
func (p *Parser) peekAt(n int) token.Token {
	return p.tokenAt(p.pos + n)
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances when the next token has the expected type,
// otherwise reports a diagnostic and stays put.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errors = append(p.errors, diagnostics.NewErrorf(
		diagnostics.ErrP002, p.peekToken, "expected %s, got %q", t, p.peekToken.Lexeme))
	return false
}

func (p *Parser) unexpected(context string) {
	p.errors = append(p.errors, diagnostics.NewErrorf(
		diagnostics.ErrP001, p.curToken, "unexpected token %q in %s", p.curToken.Lexeme, context))
}

// ParseProgram parses a whole compilation unit.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if !p.curTokenIs(token.CLASS) {
			p.unexpected("top level")
			p.syncToClass()
			continue
		}
		cd := p.parseClassDeclaration()
		if cd == nil {
			p.syncToClass()
			continue
		}
		program.Classes = append(program.Classes, cd)
	}

	return program
}

// syncToClass skips to the next class keyword (or EOF) after a
// top-level error.
func (p *Parser) syncToClass() {
	p.nextToken()
	for !p.curTokenIs(token.CLASS) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// syncStatement skips past the current statement after an error:
// consume up to and including the next semicolon, or stop before a
// closing brace.
func (p *Parser) syncStatement() {
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}
