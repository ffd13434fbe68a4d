package ast

type Visitor interface {
	VisitProgram(node *Program)
	VisitVarStatement(node *VarStatement)
	VisitPrintStatement(node *PrintStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitAssignExpression(node *AssignExpression)
	VisitInfixExpression(node *InfixExpression)
	VisitIdentifier(node *Identifier)
	VisitIntegerLiteral(node *IntegerLiteral)
}

// Children returns the direct children of n in evaluation order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		out := make([]Node, len(n.Statements))
		for i, s := range n.Statements {
			out[i] = s
		}
		return out
	case *VarStatement:
		return []Node{n.Assignment}
	case *PrintStatement:
		return []Node{n.Value}
	case *ExpressionStatement:
		return []Node{n.Expression}
	case *AssignExpression:
		return []Node{n.Left, n.Right}
	case *InfixExpression:
		return []Node{n.Left, n.Right}
	}
	return nil
}
