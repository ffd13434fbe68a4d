package parser

import (
	"github.com/funvibe/simplelang/internal/ast"
	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/token"
)

// ParseStatement parses one statement including its ';'.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	var stmt ast.Statement
	var err error

	switch tok := p.stream.Peek(); tok.Type {
	case token.VAR:
		stmt, err = p.parseVarStatement()
	case token.PRINT:
		stmt, err = p.parsePrintStatement()
	default:
		if !p.ctx.ExpressionStatements {
			return nil, diagnostics.NewError(
				diagnostics.ErrP001,
				tok,
				"unexpected token %s at start of statement: expected 'var' or 'print'",
				tok.Describe(),
			)
		}
		stmt, err = p.parseExpressionStatement()
	}
	if err != nil {
		return nil, err
	}

	switch end := p.stream.Peek(); end.Type {
	case token.SEMICOLON:
		p.stream.Next()
		return stmt, nil
	case token.RPAREN:
		return nil, diagnostics.NewError(diagnostics.ErrP002, end, "unbalanced parentheses: unexpected ')'")
	default:
		return nil, diagnostics.NewError(diagnostics.ErrP003, end, "missing ';' after statement, got %s", end.Describe())
	}
}

// var <ident> = <expression>
func (p *Parser) parseVarStatement() (*ast.VarStatement, error) {
	varToken := p.stream.Next()

	idToken, err := p.stream.Expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if err := p.symbols.Declare(idToken.Lexeme, idToken.Line); err != nil {
		return nil, diagnostics.NewError(diagnostics.ErrA001, idToken, "%s", err.Error())
	}

	assignToken, err := p.stream.Expect(token.ASSIGN)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression(p.ops.MaxLevel())
	if err != nil {
		return nil, err
	}

	return &ast.VarStatement{
		Token: varToken,
		Assignment: &ast.AssignExpression{
			Token: assignToken,
			Left:  &ast.Identifier{Token: idToken, Value: idToken.Lexeme},
			Right: value,
		},
	}, nil
}

// print <expression>
func (p *Parser) parsePrintStatement() (*ast.PrintStatement, error) {
	printToken := p.stream.Next()
	value, err := p.parseExpression(p.ops.MaxLevel())
	if err != nil {
		return nil, err
	}
	return &ast.PrintStatement{Token: printToken, Value: value}, nil
}

func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	first := p.stream.Peek()
	exp, err := p.parseExpression(p.ops.MaxLevel())
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Token: first, Expression: exp}, nil
}
