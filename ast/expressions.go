package ast

// Number is an integer or floating-point literal. The lexeme's textual
// form decides integer vs. float at evaluation time (spec.md §3/§4.3):
// no `.` means integer.
type Number struct {
	Token Token
	Value string // raw lexeme, e.g. "42" or "3.14"
}

// String is a string literal with its surrounding quotes already
// stripped by the parser. Interpolation of `{...}` spans happens at
// evaluation time against the literal's Value.
type String struct {
	Token Token
	Value string
}

// Identifier is a bare name reference.
type Identifier struct {
	Token Token
	Name  string
}

// BinaryOp is `left op right`.
type BinaryOp struct {
	Token Token
	Op    string
	Left  Expression
	Right Expression
}

// UnaryOp is a prefix operator applied to Operand: `invert`, `~`, `-`.
type UnaryOp struct {
	Token   Token
	Op      string
	Operand Expression
}

// Assignment is `target op value`, where target is an lvalue
// (Identifier or Index) and op is one of = += -= *= /= %=.
type Assignment struct {
	Token  Token
	Target Expression
	Op     string
	Value  Expression
}

// Call is `callee ( args )`.
type Call struct {
	Token  Token
	Callee Expression
	Args   []Expression
}

// Index is `target [ index ]`.
type Index struct {
	Token  Token
	Target Expression
	Idx    Expression
}

// MemberAccess is `object . property`.
type MemberAccess struct {
	Token    Token
	Object   Expression
	Property string
}

// ArrayLiteral is `[ elements ]`.
type ArrayLiteral struct {
	Token    Token
	Elements []Expression
}

func (n *Number) expressionNode()       {}
func (n *String) expressionNode()       {}
func (n *Identifier) expressionNode()   {}
func (n *BinaryOp) expressionNode()     {}
func (n *UnaryOp) expressionNode()      {}
func (n *Assignment) expressionNode()   {}
func (n *Call) expressionNode()         {}
func (n *Index) expressionNode()        {}
func (n *MemberAccess) expressionNode() {}
func (n *ArrayLiteral) expressionNode() {}

// Expressions may also appear as statements (ExpressionStatement wraps
// them), but the Expression interface itself only requires
// expressionNode(); statementNode() is intentionally not implemented on
// expression nodes directly — ExpressionStatement is the bridge,
// matching spec.md's AST table which keeps ExpressionStatement distinct
// from bare expression nodes.

func (n *Number) Pos() Token       { return n.Token }
func (n *String) Pos() Token       { return n.Token }
func (n *Identifier) Pos() Token   { return n.Token }
func (n *BinaryOp) Pos() Token     { return n.Token }
func (n *UnaryOp) Pos() Token      { return n.Token }
func (n *Assignment) Pos() Token   { return n.Token }
func (n *Call) Pos() Token         { return n.Token }
func (n *Index) Pos() Token        { return n.Token }
func (n *MemberAccess) Pos() Token { return n.Token }
func (n *ArrayLiteral) Pos() Token { return n.Token }
