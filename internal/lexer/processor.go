package lexer

import (
	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/pipeline"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	tokens, illegal := Tokenize(New(ctx.SourceCode))
	if illegal != nil {
		err := diagnostics.NewError(diagnostics.ErrL001, *illegal, "illegal character %q", illegal.Lexeme)
		ctx.AddError(err)
		return ctx
	}
	ctx.TokenStream = NewTokenStream(tokens)
	return ctx
}
