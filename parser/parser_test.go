package parser

import (
	"testing"

	"github.com/axion-lang/axion/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse(src)
	require.NoError(t, err)
	return prog
}

func TestParse_VarDeclWithAndWithoutInit(t *testing.T) {
	prog := parseOK(t, "set x = 2; set y;")
	require.Len(t, prog.Body, 2)

	v1 := prog.Body[0].(*ast.VarDecl)
	assert.Equal(t, "x", v1.Name)
	assert.NotNil(t, v1.Init)

	v2 := prog.Body[1].(*ast.VarDecl)
	assert.Equal(t, "y", v2.Name)
	assert.Nil(t, v2.Init)
}

func TestParse_ConstDecl(t *testing.T) {
	prog := parseOK(t, "const pi = 3;")
	c := prog.Body[0].(*ast.ConstDecl)
	assert.Equal(t, "pi", c.Name)
	assert.NotNil(t, c.Init)
}

func TestParse_FuncDecl(t *testing.T) {
	prog := parseOK(t, "func add(a, b) { return a + b; }")
	f := prog.Body[0].(*ast.FuncDecl)
	assert.Equal(t, "add", f.Name)
	assert.Equal(t, []string{"a", "b"}, f.Params)
	require.Len(t, f.Body, 1)
}

func TestParse_IfElseIfElse(t *testing.T) {
	prog := parseOK(t, `
		if (x < 2) then { return 1; }
		else if (x < 4) then { return 2; }
		else { return 3; }
	`)
	ifs := prog.Body[0].(*ast.IfStatement)
	require.Len(t, ifs.ElseIfs, 1)
	require.NotNil(t, ifs.Else)
}

func TestParse_IfSingleStatementBody(t *testing.T) {
	prog := parseOK(t, "if (x < 2) then return 1; else return 2;")
	ifs := prog.Body[0].(*ast.IfStatement)
	assert.Len(t, ifs.Body, 1)
	assert.Len(t, ifs.Else, 1)
}

func TestParse_ForLoop(t *testing.T) {
	prog := parseOK(t, "loop (i from 1 to 3 step 1) { log(i); }")
	loop := prog.Body[0].(*ast.ForLoop)
	assert.Equal(t, "i", loop.Var)
	require.Len(t, loop.Body, 1)
}

func TestParse_WhileLoop(t *testing.T) {
	prog := parseOK(t, "while (x < 3) { x = x + 1; }")
	_, ok := prog.Body[0].(*ast.WhileLoop)
	assert.True(t, ok)
}

func TestParse_DoWhileLoop(t *testing.T) {
	prog := parseOK(t, "repeat { x = x + 1; } while (x < 3);")
	_, ok := prog.Body[0].(*ast.DoWhileLoop)
	assert.True(t, ok)
}

func TestParse_MatchWithElse(t *testing.T) {
	prog := parseOK(t, `
		match (x) {
			1 -> log(1);
			2 -> log(2);
			else -> log(0);
		}
	`)
	m := prog.Body[0].(*ast.MatchStatement)
	require.Len(t, m.Cases, 2)
	require.NotNil(t, m.Else)
}

func TestParse_IOStatements(t *testing.T) {
	prog := parseOK(t, `log(1); logln(2); input(x, "prompt");`)
	require.Len(t, prog.Body, 3)

	logIO := prog.Body[0].(*ast.IO)
	assert.Equal(t, ast.IOLog, logIO.Action)

	loglnIO := prog.Body[1].(*ast.IO)
	assert.Equal(t, ast.IOLogln, loglnIO.Action)

	inputIO := prog.Body[2].(*ast.IO)
	assert.Equal(t, ast.IOInput, inputIO.Action)
	require.NotNil(t, inputIO.Message)
	assert.Equal(t, "prompt", inputIO.Message.(*ast.String).Value)
}

func TestParse_Include(t *testing.T) {
	prog := parseOK(t, `include "math";`)
	inc := prog.Body[0].(*ast.Include)
	assert.Equal(t, "math", inc.Path)
}

func TestParse_BreakAndSkip(t *testing.T) {
	prog := parseOK(t, "break; skip;")
	_, ok1 := prog.Body[0].(*ast.BreakStatement)
	_, ok2 := prog.Body[1].(*ast.SkipStatement)
	assert.True(t, ok1)
	assert.True(t, ok2)
}

func TestParse_PostfixChain(t *testing.T) {
	prog := parseOK(t, "a[0].name(1, 2);")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	call := stmt.Expr.(*ast.Call)
	assert.Len(t, call.Args, 2)

	member := call.Callee.(*ast.MemberAccess)
	assert.Equal(t, "name", member.Property)

	_, ok := member.Object.(*ast.Index)
	assert.True(t, ok)
}

func TestParse_ArrayLiteral(t *testing.T) {
	prog := parseOK(t, "set a = [1, 2, 3];")
	v := prog.Body[0].(*ast.VarDecl)
	arr := v.Init.(*ast.ArrayLiteral)
	assert.Len(t, arr.Elements, 3)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	prog := parseOK(t, "a = b = 1;")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	assign := stmt.Expr.(*ast.Assignment)
	assert.Equal(t, "=", assign.Op)
	_, ok := assign.Value.(*ast.Assignment)
	assert.True(t, ok)
}

func TestParse_PrecedenceMultiplicationBeforeAddition(t *testing.T) {
	prog := parseOK(t, "set x = 1 + 2 * 3;")
	v := prog.Body[0].(*ast.VarDecl)
	add := v.Init.(*ast.BinaryOp)
	assert.Equal(t, "+", add.Op)
	_, leftIsNum := add.Left.(*ast.Number)
	assert.True(t, leftIsNum)
	mul := add.Right.(*ast.BinaryOp)
	assert.Equal(t, "*", mul.Op)
}

func TestParse_ParenthesesOverridePrecedence(t *testing.T) {
	prog := parseOK(t, "set x = (1 + 2) * 3;")
	v := prog.Body[0].(*ast.VarDecl)
	mul := v.Init.(*ast.BinaryOp)
	assert.Equal(t, "*", mul.Op)
	_, leftIsAdd := mul.Left.(*ast.BinaryOp)
	assert.True(t, leftIsAdd)
}

func TestParse_CompoundAssignmentOperators(t *testing.T) {
	for _, op := range []string{"+=", "-=", "*=", "/=", "%="} {
		prog := parseOK(t, "x "+op+" 1;")
		stmt := prog.Body[0].(*ast.ExpressionStatement)
		assign := stmt.Expr.(*ast.Assignment)
		assert.Equal(t, op, assign.Op)
	}
}

func TestParse_UnaryOperators(t *testing.T) {
	prog := parseOK(t, "set a = -1; set b = ~1; set c = invert 1;")
	for i, op := range []string{"-", "~", "invert"} {
		v := prog.Body[i].(*ast.VarDecl)
		u := v.Init.(*ast.UnaryOp)
		assert.Equal(t, op, u.Op)
	}
}

func TestParse_MissingSemicolonIsSyntaxError(t *testing.T) {
	_, err := Parse("set x = 1")
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
}

func TestParse_ConstWithoutInitializerIsSyntaxError(t *testing.T) {
	// Grammar requires `=` after const NAME; a bare `const pi;` is a
	// syntax error at the missing `=`.
	_, err := Parse("const pi;")
	assert.Error(t, err)
}

func TestParse_ScenarioFibonacci(t *testing.T) {
	prog := parseOK(t, `func fib(n) { if (n < 2) then { return n; } return fib(n-1) + fib(n-2); } logln(fib(10));`)
	require.Len(t, prog.Body, 2)
	_, ok := prog.Body[0].(*ast.FuncDecl)
	assert.True(t, ok)
}
