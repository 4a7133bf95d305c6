// Package ast defines the Axion abstract syntax tree: a closed set of
// tagged node types, immutable once built. Evaluation dispatches on the
// concrete Go type of each node via a type switch rather than a
// separate visitor interface — Axion's evaluator is the only consumer
// that walks the tree, so a direct type switch keeps one fewer moving
// part than a Visitor.
package ast

import "github.com/axion-lang/axion/token"

// Node is the base interface every AST node implements.
type Node interface {
	Pos() token.Token
}

// Statement is any node that can appear in a statement list.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every parsed Axion source file.
type Program struct {
	Body []Statement
}

func (p *Program) Pos() token.Token {
	if len(p.Body) == 0 {
		return token.Token{}
	}
	return p.Body[0].Pos()
}

// ---- Declarations ----

// VarDecl is `set NAME (= expr)? ;`.
type VarDecl struct {
	Token Token
	Name  string
	Init  Expression // nil if no initializer
}

// ConstDecl is `const NAME = expr ;`. Init is always required by the
// grammar, but the field stays an Expression (not guaranteed non-nil)
// so the evaluator can report a clean RuntimeError when a caller
// constructs one without an initializer.
type ConstDecl struct {
	Token Token
	Name  string
	Init  Expression
}

// FuncDecl is `func NAME ( params ) { body }`. Function declarations
// register in the evaluator's process-scoped Function Table rather
// than binding a value in the variable namespace (spec.md §3/§4.3).
type FuncDecl struct {
	Token  Token
	Name   string
	Params []string
	Body   []Statement
}

func (n *VarDecl) statementNode()  {}
func (n *ConstDecl) statementNode() {}
func (n *FuncDecl) statementNode() {}

func (n *VarDecl) Pos() token.Token   { return n.Token }
func (n *ConstDecl) Pos() token.Token { return n.Token }
func (n *FuncDecl) Pos() token.Token  { return n.Token }

// Token is a convenience alias so node fields read naturally; it is the
// same type as token.Token.
type Token = token.Token
