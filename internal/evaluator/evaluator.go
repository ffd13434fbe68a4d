package evaluator

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/funvibe/simplelang/internal/ast"
	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/symbols"
	"github.com/funvibe/simplelang/internal/token"
)

// Evaluator walks the AST. It holds no variable state of its own; every
// read and write goes through the symbol table passed to Eval.
type Evaluator struct {
	Out io.Writer
}

func New() *Evaluator {
	return &Evaluator{Out: os.Stdout}
}

// Eval evaluates node and returns its integer value. Statements and the
// program block return 0.
func (e *Evaluator) Eval(node ast.Node, env *symbols.SymbolTable) (int64, error) {
	switch node := node.(type) {
	// Statements
	case *ast.Program:
		return e.evalProgram(node, env)
	case *ast.VarStatement:
		return e.Eval(node.Assignment, env)
	case *ast.PrintStatement:
		return e.evalPrintStatement(node, env)
	case *ast.ExpressionStatement:
		if _, err := e.Eval(node.Expression, env); err != nil {
			return 0, err
		}
		return 0, nil

	// Expressions
	case *ast.AssignExpression:
		return e.evalAssignExpression(node, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)
	case *ast.Identifier:
		return e.evalIdentifier(node, env)
	case *ast.IntegerLiteral:
		return e.evalIntegerLiteral(node)
	}
	return 0, unknownNodeError(node)
}

func (e *Evaluator) evalProgram(program *ast.Program, env *symbols.SymbolTable) (int64, error) {
	for _, stmt := range program.Statements {
		if _, err := e.Eval(stmt, env); err != nil {
			return 0, err
		}
	}
	return 0, nil
}

func (e *Evaluator) evalPrintStatement(node *ast.PrintStatement, env *symbols.SymbolTable) (int64, error) {
	val, err := e.Eval(node.Value, env)
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(e.Out, val)
	return 0, nil
}

// The right side is evaluated before the target is checked.
func (e *Evaluator) evalAssignExpression(node *ast.AssignExpression, env *symbols.SymbolTable) (int64, error) {
	val, err := e.Eval(node.Right, env)
	if err != nil {
		return 0, err
	}
	ident, ok := node.Left.(*ast.Identifier)
	if !ok {
		return 0, diagnostics.NewError(
			diagnostics.ErrR002,
			node.Token,
			"cannot assign a value to '%s'",
			node.Left.TokenLiteral(),
		)
	}
	if err := env.Write(ident.Value, val); err != nil {
		return 0, diagnostics.NewError(diagnostics.ErrR001, ident.Token, "%s", err.Error())
	}
	return val, nil
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *symbols.SymbolTable) (int64, error) {
	val, err := env.Read(node.Value)
	if err != nil {
		return 0, diagnostics.NewError(diagnostics.ErrR001, node.Token, "%s", err.Error())
	}
	return val, nil
}

func (e *Evaluator) evalIntegerLiteral(node *ast.IntegerLiteral) (int64, error) {
	val, err := strconv.ParseInt(node.Token.Lexeme, 10, 64)
	if err != nil {
		return 0, diagnostics.NewError(
			diagnostics.ErrR005,
			node.Token,
			"malformed integer literal '%s'",
			node.Token.Lexeme,
		)
	}
	return val, nil
}

func unknownNodeError(node ast.Node) *diagnostics.DiagnosticError {
	var tok token.Token
	if provider, ok := node.(ast.TokenProvider); ok {
		tok = provider.GetToken()
	}
	if node == nil {
		return diagnostics.NewError(diagnostics.ErrI001, tok, "cannot evaluate nil node")
	}
	return diagnostics.NewError(
		diagnostics.ErrI001,
		tok,
		"don't know how to evaluate %T (token '%s')",
		node,
		node.TokenLiteral(),
	)
}
