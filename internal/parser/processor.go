package parser

import (
	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/pipeline"
	"github.com/funvibe/simplelang/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// The lexer stage failed to run.
		ctx.AddError(diagnostics.NewError(diagnostics.ErrI002, token.Token{}, "parser: token stream is nil"))
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	program, err := parser.ParseProgram()
	program.File = ctx.FilePath
	ctx.AstRoot = program
	if err != nil {
		ctx.AddError(diagnostics.From(err))
	}
	return ctx
}
