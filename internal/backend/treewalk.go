package backend

import (
	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/evaluator"
	"github.com/funvibe/simplelang/internal/pipeline"
	"github.com/funvibe/simplelang/internal/token"
)

// TreeWalkBackend evaluates the fully parsed program once.
type TreeWalkBackend struct{}

// NewTreeWalk creates a new tree-walk backend
func NewTreeWalk() *TreeWalkBackend {
	return &TreeWalkBackend{}
}

func (b *TreeWalkBackend) Name() string   { return "tree" }
func (b *TreeWalkBackend) NeedsAST() bool { return true }

// Run executes the program using tree-walk interpretation
func (b *TreeWalkBackend) Run(ctx *pipeline.PipelineContext) error {
	if ctx.AstRoot == nil {
		return diagnostics.NewError(diagnostics.ErrI002, token.Token{}, "no AST to execute")
	}

	eval := evaluator.New()
	if ctx.Out != nil {
		eval.Out = ctx.Out
	}
	_, err := eval.Eval(ctx.AstRoot, ctx.SymbolTable)
	return err
}
