package parser

import (
	"github.com/funvibe/simplelang/internal/ast"
	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/operators"
	"github.com/funvibe/simplelang/internal/token"
)

// parseExpression parses everything that binds at least as tightly as
// level. Level 0 is a single term.
func (p *Parser) parseExpression(level int) (ast.Expression, error) {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		return nil, diagnostics.NewError(
			diagnostics.ErrP004,
			p.stream.Peek(),
			"expression too complex: recursion depth limit exceeded",
		)
	}

	if level == 0 {
		return p.parseTerm()
	}

	// Tighter levels first: the left operand never contains an operator
	// of this level.
	left, err := p.parseExpression(level - 1)
	if err != nil {
		return nil, err
	}

	for {
		info, err := p.peekOperator()
		if err != nil {
			return nil, err
		}
		if info.Level != level {
			return left, nil
		}
		opToken := p.stream.Next()

		// Right-associative operators may re-enter this level on the right,
		// left-associative ones may not.
		rightLevel := level - 1
		if info.Assoc == operators.Right {
			rightLevel = level
		}
		right, err := p.parseExpression(rightLevel)
		if err != nil {
			return nil, err
		}

		node := newBinary(opToken, left, right)
		if info.Assoc == operators.Right {
			return node, nil
		}
		left = node
	}
}

// peekOperator looks up the next token in the operator table. Operator
// tokens the table does not define are P001.
func (p *Parser) peekOperator() (operators.Info, error) {
	tok := p.stream.Peek()
	if tok.Type != token.OPERATOR && tok.Type != token.ASSIGN {
		return operators.Info{Level: operators.NoOpLevel}, nil
	}
	info := p.ops.Lookup(tok.Lexeme)
	if !info.IsOperator() {
		return info, diagnostics.NewError(
			diagnostics.ErrP001,
			tok,
			"operator %s is not defined by the language profile",
			tok.Describe(),
		)
	}
	return info, nil
}

func newBinary(opToken token.Token, left, right ast.Expression) ast.Expression {
	if opToken.Type == token.ASSIGN {
		return &ast.AssignExpression{Token: opToken, Left: left, Right: right}
	}
	return &ast.InfixExpression{
		Token:    opToken,
		Operator: opToken.Lexeme,
		Left:     left,
		Right:    right,
	}
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	tok := p.stream.Peek()
	switch tok.Type {
	case token.IDENT:
		p.stream.Next()
		return &ast.Identifier{Token: tok, Value: tok.Lexeme}, nil
	case token.NUMBER:
		p.stream.Next()
		return &ast.IntegerLiteral{Token: tok}, nil
	case token.LPAREN:
		return p.parseGroupedExpression()
	}
	return nil, diagnostics.NewError(diagnostics.ErrP001, tok, "unexpected token %s", tok.Describe())
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	open := p.stream.Next() // consume '('
	exp, err := p.parseExpression(p.ops.MaxLevel())
	if err != nil {
		return nil, err
	}
	if closing := p.stream.Peek(); closing.Type != token.RPAREN {
		return nil, diagnostics.NewError(
			diagnostics.ErrP002,
			closing,
			"unbalanced parentheses: expected ')' to close '(' opened on line %d, got %s",
			open.Line,
			closing.Describe(),
		)
	}
	p.stream.Next()
	return exp, nil
}
