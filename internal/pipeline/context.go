package pipeline

import (
	"io"
	"os"

	"github.com/funvibe/simplelang/internal/ast"
	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/operators"
	"github.com/funvibe/simplelang/internal/symbols"
	"github.com/funvibe/simplelang/internal/token"
)

// TokenStream is the token source the parser consumes.
type TokenStream interface {
	// Any reports whether tokens other than EOF remain.
	Any() bool
	Peek() token.Token
	Next() token.Token
	// Expect consumes the next token, failing when its type differs.
	Expect(t token.TokenType) (token.Token, error)
	// Remaining returns the unconsumed tokens, EOF last.
	Remaining() []token.Token
}

// PipelineContext carries the state of one run between stages.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	// Language configuration.
	Operators            *operators.Table
	ExpressionStatements bool

	TokenStream TokenStream
	AstRoot     *ast.Program
	SymbolTable *symbols.SymbolTable

	// Out receives print output.
	Out io.Writer

	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{
		SourceCode:  sourceCode,
		Operators:   operators.Default(),
		SymbolTable: symbols.NewSymbolTable(),
		Out:         os.Stdout,
	}
}

// AddError records err, filling in the file path.
func (ctx *PipelineContext) AddError(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, err)
}
