package ast

import "github.com/funvibe/simplelang/internal/token"

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root block. Statements are appended in source order.
type Program struct {
	File       string
	Statements []Statement
}

// RootToken is the token carried by every Program.
var RootToken = token.Token{Type: token.ILLEGAL, Lexeme: "ROOT"}

func (p *Program) Accept(v Visitor)      { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string  { return RootToken.Lexeme }
func (p *Program) GetToken() token.Token { return RootToken }

func (p *Program) AddStatement(s Statement) {
	p.Statements = append(p.Statements, s)
}

// VarStatement declares a variable and initialises it.
// var x = 1 + 2;
type VarStatement struct {
	Token      token.Token // The 'var' token
	Assignment *AssignExpression
}

func (vs *VarStatement) Accept(v Visitor)      { v.VisitVarStatement(vs) }
func (vs *VarStatement) statementNode()        {}
func (vs *VarStatement) TokenLiteral() string  { return vs.Token.Lexeme }
func (vs *VarStatement) GetToken() token.Token { return vs.Token }

// PrintStatement writes the value of its expression.
// print x * 2;
type PrintStatement struct {
	Token token.Token // The 'print' token
	Value Expression
}

func (ps *PrintStatement) Accept(v Visitor)      { v.VisitPrintStatement(ps) }
func (ps *PrintStatement) statementNode()        {}
func (ps *PrintStatement) TokenLiteral() string  { return ps.Token.Lexeme }
func (ps *PrintStatement) GetToken() token.Token { return ps.Token }

// ExpressionStatement is a statement that consists of a single expression.
// Only produced when the language profile allows it; its value is dropped.
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(es) }
func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }
