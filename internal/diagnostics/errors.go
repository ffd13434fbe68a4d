package diagnostics

import (
	"errors"
	"fmt"

	"github.com/funvibe/simplelang/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // illegal character

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // unbalanced parentheses
	ErrP003 ErrorCode = "P003" // missing statement terminator
	ErrP004 ErrorCode = "P004" // expression nested too deeply

	// Declarations
	ErrA001 ErrorCode = "A001" // redeclaration

	// Runtime
	ErrR001 ErrorCode = "R001" // undeclared variable
	ErrR002 ErrorCode = "R002" // invalid assignment target
	ErrR003 ErrorCode = "R003" // division by zero
	ErrR004 ErrorCode = "R004" // negative exponent
	ErrR005 ErrorCode = "R005" // malformed literal

	// Internal
	ErrI001 ErrorCode = "I001" // node kind unknown to the evaluator
	ErrI002 ErrorCode = "I002" // stage run without its inputs
)

var kinds = map[ErrorCode]string{
	ErrL001: "SyntaxError",
	ErrP001: "SyntaxError",
	ErrP002: "SyntaxError",
	ErrP003: "SyntaxError",
	ErrP004: "SyntaxError",
	ErrA001: "RedeclarationError",
	ErrR001: "UndeclaredVariableError",
	ErrR002: "InvalidAssignmentTargetError",
	ErrR003: "DivisionByZeroError",
	ErrR004: "InvalidExponentError",
	ErrR005: "MalformedLiteralError",
	ErrI001: "InternalConsistencyError",
	ErrI002: "InternalConsistencyError",
}

// DiagnosticError is the single error type surfaced by every stage.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
}

func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Location(), e.Code, e.Message)
}

// Location formats the position as file:line:col, or line N when the
// position is only partially known.
func (e *DiagnosticError) Location() string {
	pos := fmt.Sprintf("line %d", e.Token.Line)
	if e.Token.Column > 0 {
		pos = fmt.Sprintf("%d:%d", e.Token.Line, e.Token.Column)
	}
	if e.File == "" {
		return pos
	}
	if e.Token.Column > 0 {
		return e.File + ":" + pos
	}
	return e.File + ": " + pos
}

// Kind names the error class the code belongs to, e.g. "SyntaxError".
func (e *DiagnosticError) Kind() string {
	if k, ok := kinds[e.Code]; ok {
		return k
	}
	return "Error"
}

// IsInternal reports a defect in the interpreter rather than bad input.
func (e *DiagnosticError) IsInternal() bool {
	return len(e.Code) > 0 && e.Code[0] == 'I'
}

// From returns err as a DiagnosticError. Errors of any other type are
// wrapped as internal errors: every user-facing failure is expected to
// carry a code already.
func From(err error) *DiagnosticError {
	var diag *DiagnosticError
	if errors.As(err, &diag) {
		return diag
	}
	return NewError(ErrI002, token.Token{}, "%s", err.Error())
}
