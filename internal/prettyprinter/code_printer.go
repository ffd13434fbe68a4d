package prettyprinter

import (
	"bytes"

	"github.com/funvibe/simplelang/internal/ast"
	"github.com/funvibe/simplelang/internal/operators"
)

// --- Code Printer (Output looks like source code) ---

// CodePrinter reconstructs source text, one statement per line, with only
// the parentheses the operator table requires. Parsing its output yields
// the same tree.
type CodePrinter struct {
	buf bytes.Buffer
	ops *operators.Table
}

func NewCodePrinter(ops *operators.Table) *CodePrinter {
	if ops == nil {
		ops = operators.Default()
	}
	return &CodePrinter{ops: ops}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) VisitProgram(node *ast.Program) {
	for _, stmt := range node.Statements {
		stmt.Accept(p)
		p.write(";\n")
	}
}

func (p *CodePrinter) VisitVarStatement(node *ast.VarStatement) {
	p.write("var ")
	p.printExpr(node.Assignment.Left, topLevel, false)
	p.write(" = ")
	p.printExpr(node.Assignment.Right, topLevel, true)
}

func (p *CodePrinter) VisitPrintStatement(node *ast.PrintStatement) {
	p.write("print ")
	p.printExpr(node.Value, topLevel, false)
}

func (p *CodePrinter) VisitExpressionStatement(node *ast.ExpressionStatement) {
	p.printExpr(node.Expression, topLevel, false)
}

func (p *CodePrinter) VisitAssignExpression(node *ast.AssignExpression) {
	p.printExpr(node, topLevel, false)
}

func (p *CodePrinter) VisitInfixExpression(node *ast.InfixExpression) {
	p.printExpr(node, topLevel, false)
}

func (p *CodePrinter) VisitIdentifier(node *ast.Identifier) {
	p.write(node.Value)
}

func (p *CodePrinter) VisitIntegerLiteral(node *ast.IntegerLiteral) {
	p.write(node.Token.Lexeme)
}

// topLevel is looser than any operator: nothing needs parentheses.
const topLevel = operators.NoOpLevel

// printExpr prints an expression, adding parentheses only if needed.
// parentLevel is the level of the enclosing operator; isRight tells which
// operand expr is.
func (p *CodePrinter) printExpr(expr ast.Expression, parentLevel int, isRight bool) {
	var op string
	var left, right ast.Expression
	switch e := expr.(type) {
	case *ast.InfixExpression:
		op, left, right = e.Operator, e.Left, e.Right
	case *ast.AssignExpression:
		op, left, right = e.Token.Lexeme, e.Left, e.Right
	default:
		expr.Accept(p)
		return
	}

	info := p.ops.Lookup(op)
	needParens := info.Level > parentLevel
	if info.Level == parentLevel && parentLevel != topLevel {
		// Same level: only the operand on the associativity side may stay bare.
		needParens = isRight != (info.Assoc == operators.Right)
	}
	if needParens {
		p.write("(")
	}
	p.printExpr(left, info.Level, false)
	p.write(" " + op + " ")
	p.printExpr(right, info.Level, true)
	if needParens {
		p.write(")")
	}
}
