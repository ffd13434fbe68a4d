package backend

import (
	"github.com/funvibe/simplelang/internal/ast"
	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/evaluator"
	"github.com/funvibe/simplelang/internal/parser"
	"github.com/funvibe/simplelang/internal/pipeline"
	"github.com/funvibe/simplelang/internal/symbols"
	"github.com/funvibe/simplelang/internal/token"
)

// StreamBackend evaluates each statement as soon as it is parsed. Output of
// statements before a failing one is already written when the error is
// reported. Variables are declared before the first statement runs, as they
// are when the whole program is parsed first.
type StreamBackend struct{}

func NewStream() *StreamBackend {
	return &StreamBackend{}
}

func (b *StreamBackend) Name() string   { return "stream" }
func (b *StreamBackend) NeedsAST() bool { return false }

// Run parses from ctx.TokenStream. The statements executed so far are kept
// in ctx.AstRoot.
func (b *StreamBackend) Run(ctx *pipeline.PipelineContext) error {
	if ctx.TokenStream == nil {
		return diagnostics.NewError(diagnostics.ErrI002, token.Token{}, "no token stream to execute")
	}

	if ctx.SymbolTable == nil {
		ctx.SymbolTable = symbols.NewSymbolTable()
	}
	env := ctx.SymbolTable
	predeclare(env, ctx.TokenStream.Remaining())

	// The parser checks redeclarations against a table of its own, filled
	// in statement order.
	parseCtx := *ctx
	parseCtx.SymbolTable = symbols.NewSymbolTable()
	p := parser.New(ctx.TokenStream, &parseCtx)

	eval := evaluator.New()
	if ctx.Out != nil {
		eval.Out = ctx.Out
	}

	program := &ast.Program{File: ctx.FilePath}
	ctx.AstRoot = program
	for p.More() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return err
		}
		program.AddStatement(stmt)
		if _, err := eval.Eval(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

// predeclare declares every name that follows a 'var' keyword, keeping the
// first line for repeated names. Redeclarations are left to the parser.
func predeclare(env *symbols.SymbolTable, tokens []token.Token) {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Type != token.VAR || tokens[i+1].Type != token.IDENT {
			continue
		}
		name := tokens[i+1]
		_ = env.Declare(name.Lexeme, name.Line)
	}
}
