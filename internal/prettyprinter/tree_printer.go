package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/simplelang/internal/ast"
)

// --- Tree Printer (one node per line, children indented) ---

// TreePrinter dumps each node's token lexeme, children indented two spaces
// below their parent. Expression statements are transparent.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) node(n ast.Node) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	p.buf.WriteString(n.TokenLiteral())
	p.buf.WriteByte('\n')
	p.indent++
	for _, child := range ast.Children(n) {
		child.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitProgram(node *ast.Program)                   { p.node(node) }
func (p *TreePrinter) VisitVarStatement(node *ast.VarStatement)         { p.node(node) }
func (p *TreePrinter) VisitPrintStatement(node *ast.PrintStatement)     { p.node(node) }
func (p *TreePrinter) VisitAssignExpression(node *ast.AssignExpression) { p.node(node) }
func (p *TreePrinter) VisitInfixExpression(node *ast.InfixExpression)   { p.node(node) }
func (p *TreePrinter) VisitIdentifier(node *ast.Identifier)             { p.node(node) }
func (p *TreePrinter) VisitIntegerLiteral(node *ast.IntegerLiteral)     { p.node(node) }

func (p *TreePrinter) VisitExpressionStatement(node *ast.ExpressionStatement) {
	node.Expression.Accept(p)
}
