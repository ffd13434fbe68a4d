package parser

import (
	"github.com/funvibe/simplelang/internal/ast"
	"github.com/funvibe/simplelang/internal/operators"
	"github.com/funvibe/simplelang/internal/pipeline"
	"github.com/funvibe/simplelang/internal/symbols"
)

// MaxRecursionDepth bounds parseExpression nesting. Every parenthesis costs
// MaxLevel()+1 frames, and every operator in a right-associative chain costs
// one, so `1 ** 1 ** ...` with about MaxRecursionDepth operators is rejected
// with P004 although it is well formed.
const MaxRecursionDepth = 10000

type Parser struct {
	stream  pipeline.TokenStream
	ctx     *pipeline.PipelineContext
	ops     *operators.Table
	symbols *symbols.SymbolTable

	depth int
}

// New creates a parser over stream. Operator table, symbol table and
// language options come from ctx; declarations are recorded in
// ctx.SymbolTable while parsing.
func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{
		stream:  stream,
		ctx:     ctx,
		ops:     ctx.Operators,
		symbols: ctx.SymbolTable,
	}
	if p.ops == nil {
		p.ops = operators.Default()
	}
	if p.symbols == nil {
		p.symbols = symbols.NewSymbolTable()
		ctx.SymbolTable = p.symbols
	}
	return p
}

// ParseProgram consumes the whole stream. On error the statements parsed so
// far are returned with it.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}
	for p.stream.Any() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return program, err
		}
		program.AddStatement(stmt)
	}
	return program, nil
}

// More reports whether another statement follows.
func (p *Parser) More() bool {
	return p.stream.Any()
}
