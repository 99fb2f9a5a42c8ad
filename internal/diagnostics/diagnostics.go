// Package diagnostics defines the coded errors produced by the compiler
// front end. Diagnostics are data, not control flow: every phase collects
// them and keeps going, so a single run reports everything it found.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/minijava/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // illegal character or malformed literal

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // expected token not found
	ErrP003 ErrorCode = "P003" // malformed type
	ErrP004 ErrorCode = "P004" // malformed declaration

	// Analyzer
	ErrA001 ErrorCode = "A001" // undeclared variable
	ErrA002 ErrorCode = "A002" // duplicate declaration
	ErrA003 ErrorCode = "A003" // incompatible types
	ErrA004 ErrorCode = "A004" // undefined instance variable
	ErrA005 ErrorCode = "A005" // undefined method
	ErrA006 ErrorCode = "A006" // wrong number of arguments
	ErrA007 ErrorCode = "A007" // override signature mismatch
	ErrA008 ErrorCode = "A008" // not an object type
	ErrA009 ErrorCode = "A009" // undefined class
	ErrA010 ErrorCode = "A010" // circular inheritance
)

// DiagnosticError is a single positioned diagnostic.
type DiagnosticError struct {
	Code    ErrorCode   `json:"code"`
	Token   token.Token `json:"token"`
	File    string      `json:"file,omitempty"`
	Message string      `json:"message"`
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", e.File, e.Token.Line, e.Token.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: [%s] %s", e.Token.Line, e.Token.Column, e.Code, e.Message)
}

// NewError creates a diagnostic at the given token.
func NewError(code ErrorCode, tok token.Token, msg string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

// NewErrorf creates a diagnostic with a formatted message.
func NewErrorf(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: fmt.Sprintf(format, args...)}
}
