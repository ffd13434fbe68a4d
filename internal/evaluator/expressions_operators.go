package evaluator

import (
	"github.com/funvibe/simplelang/internal/ast"
	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/symbols"
)

// Arithmetic wraps around on int64 overflow.
func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *symbols.SymbolTable) (int64, error) {
	leftVal, err := e.Eval(node.Left, env)
	if err != nil {
		return 0, err
	}
	rightVal, err := e.Eval(node.Right, env)
	if err != nil {
		return 0, err
	}

	switch node.Operator {
	case "+":
		return leftVal + rightVal, nil
	case "-":
		return leftVal - rightVal, nil
	case "*":
		return leftVal * rightVal, nil
	case "/":
		if rightVal == 0 {
			return 0, diagnostics.NewError(diagnostics.ErrR003, node.Token, "division by zero")
		}
		return leftVal / rightVal, nil
	case "**":
		if rightVal < 0 {
			return 0, diagnostics.NewError(
				diagnostics.ErrR004,
				node.Token,
				"negative exponent %d is not supported",
				rightVal,
			)
		}
		return intPow(leftVal, rightVal), nil
	}
	return 0, diagnostics.NewError(
		diagnostics.ErrI001,
		node.Token,
		"no evaluation rule for operator '%s'",
		node.Operator,
	)
}
