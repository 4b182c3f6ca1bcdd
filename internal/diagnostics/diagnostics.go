// Package diagnostics defines the error model shared by all pipeline
// stages. Every recoverable problem is reported as a DiagnosticError
// with a stable code, so tests and tools can match on the code rather
// than the message text.
package diagnostics

import (
	"fmt"

	"github.com/treewright/treewright/internal/token"
)

type ErrorCode string

const (
	// Lexer errors
	ErrL001 ErrorCode = "L001" // unterminated string or character literal
	ErrL002 ErrorCode = "L002" // illegal character
	ErrL003 ErrorCode = "L003" // malformed numeric literal

	// Parser errors
	ErrP000 ErrorCode = "P000" // internal: missing pipeline input
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // expected token missing
	ErrP003 ErrorCode = "P003" // invalid assignment target
	ErrP004 ErrorCode = "P004" // expression too deeply nested

	// Attribution errors
	ErrA001 ErrorCode = "A001" // duplicate declaration in the same scope
)

// DiagnosticError is a positioned, coded diagnostic. It satisfies the
// error interface but is normally collected, not returned.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
	Column  int
}

func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("[%s] %s:%d:%d: %s", e.Code, e.File, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("[%s] %d:%d: %s", e.Code, e.Line, e.Column, e.Message)
}
