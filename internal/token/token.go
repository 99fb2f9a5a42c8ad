package token

import "fmt"

type TokenType string

// Token is a single lexical unit with its source position.
// Literal holds the decoded value for literals (int64 for INT,
// the unescaped string for STRING), otherwise the lexeme itself.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	STRING TokenType = "STRING"

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	PERCENT  TokenType = "%"
	BANG     TokenType = "!"
	LT       TokenType = "<"
	GT       TokenType = ">"
	EQ       TokenType = "=="
	AND      TokenType = "&&"
	OR       TokenType = "||"
	DOT      TokenType = "."

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"

	// Keywords
	CLASS      TokenType = "CLASS"
	EXTENDS    TokenType = "EXTENDS"
	PUBLIC     TokenType = "PUBLIC"
	VOID       TokenType = "VOID"
	INT_TYPE   TokenType = "INT_TYPE"
	BOOL_TYPE  TokenType = "BOOL_TYPE"
	IF         TokenType = "IF"
	ELSE       TokenType = "ELSE"
	WHILE      TokenType = "WHILE"
	SWITCH     TokenType = "SWITCH"
	CASE       TokenType = "CASE"
	DEFAULT    TokenType = "DEFAULT"
	BREAK      TokenType = "BREAK"
	RETURN     TokenType = "RETURN"
	NEW        TokenType = "NEW"
	THIS       TokenType = "THIS"
	SUPER      TokenType = "SUPER"
	NULL       TokenType = "NULL"
	TRUE       TokenType = "TRUE"
	FALSE      TokenType = "FALSE"
	INSTANCEOF TokenType = "INSTANCEOF"
	LENGTH     TokenType = "LENGTH"
)

var keywords = map[string]TokenType{
	"class":      CLASS,
	"extends":    EXTENDS,
	"public":     PUBLIC,
	"void":       VOID,
	"int":        INT_TYPE,
	"boolean":    BOOL_TYPE,
	"if":         IF,
	"else":       ELSE,
	"while":      WHILE,
	"switch":     SWITCH,
	"case":       CASE,
	"default":    DEFAULT,
	"break":      BREAK,
	"return":     RETURN,
	"new":        NEW,
	"this":       THIS,
	"super":      SUPER,
	"null":       NULL,
	"true":       TRUE,
	"false":      FALSE,
	"instanceof": INSTANCEOF,
	"length":     LENGTH,
}

// LookupIdent maps an identifier lexeme to its keyword type, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Pos renders the token position for diagnostics ("line:column").
func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}
