package interp

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/axion-lang/axion/ast"
	"github.com/axion-lang/axion/environ"
	"github.com/axion-lang/axion/value"
)

// execBlock runs a statement list against env, stopping at the first
// error or control-flow signal.
func (i *Interp) execBlock(stmts []ast.Statement, env *environ.Environment) error {
	for _, stmt := range stmts {
		if err := i.execStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

// execStatement dispatches on the concrete statement type (spec.md
// §4.3).
func (i *Interp) execStatement(stmt ast.Statement, env *environ.Environment) error {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return i.execVarDecl(s, env)
	case *ast.ConstDecl:
		return i.execConstDecl(s, env)
	case *ast.FuncDecl:
		i.Functions[s.Name] = s
		return nil
	case *ast.IfStatement:
		return i.execIf(s, env)
	case *ast.ForLoop:
		return i.execForLoop(s, env)
	case *ast.WhileLoop:
		return i.execWhileLoop(s, env)
	case *ast.DoWhileLoop:
		return i.execDoWhileLoop(s, env)
	case *ast.MatchStatement:
		return i.execMatch(s, env)
	case *ast.ReturnStatement:
		v, err := i.evalExpression(s.Value, env)
		if err != nil {
			return err
		}
		return &returnSignal{Value: v}
	case *ast.BreakStatement:
		return &breakSignal{}
	case *ast.SkipStatement:
		return &skipSignal{}
	case *ast.Include:
		return i.handleInclude(s, env)
	case *ast.IO:
		return i.execIO(s, env)
	case *ast.ExpressionStatement:
		_, err := i.evalExpression(s.Expr, env)
		return err
	}
	return newError(stmt.Pos(), RuntimeErrorKind, "unhandled statement type")
}

func (i *Interp) execVarDecl(s *ast.VarDecl, env *environ.Environment) error {
	var v value.Value = value.NullValue
	if s.Init != nil {
		var err error
		v, err = i.evalExpression(s.Init, env)
		if err != nil {
			return err
		}
	}
	if err := env.Declare(s.Name, v, false); err != nil {
		return newError(s.Token, NameErrorKind, "%s", err.Error())
	}
	return nil
}

func (i *Interp) execConstDecl(s *ast.ConstDecl, env *environ.Environment) error {
	if s.Init == nil {
		return newError(s.Token, RuntimeErrorKind, "constant '%s' declared without initializer", s.Name)
	}
	v, err := i.evalExpression(s.Init, env)
	if err != nil {
		return err
	}
	if err := env.Declare(s.Name, v, true); err != nil {
		return newError(s.Token, NameErrorKind, "%s", err.Error())
	}
	return nil
}

// execIf evaluates the condition, elseif chain, and optional else
// clause, each body running in its own child scope (spec.md §4.3).
func (i *Interp) execIf(s *ast.IfStatement, env *environ.Environment) error {
	cond, err := i.evalExpression(s.Condition, env)
	if err != nil {
		return err
	}
	if toBool(cond) {
		return i.execBlock(s.Body, environ.NewEnclosed(env))
	}
	for _, elif := range s.ElseIfs {
		v, err := i.evalExpression(elif.Condition, env)
		if err != nil {
			return err
		}
		if toBool(v) {
			return i.execBlock(elif.Body, environ.NewEnclosed(env))
		}
	}
	if s.Else != nil {
		return i.execBlock(s.Else, environ.NewEnclosed(env))
	}
	return nil
}

// execForLoop evaluates start/end/step once, then iterates a fresh
// child scope per iteration, declaring the loop variable fresh each
// time (spec.md §4.3 ForLoop). Step's sign is not checked: with
// start > end the body never runs, whatever the step, and with
// start <= end a step <= 0 never carries the counter past end, so the
// literal `cur <= end` condition never stops the loop.
func (i *Interp) execForLoop(s *ast.ForLoop, env *environ.Environment) error {
	startV, err := i.evalExpression(s.Start, env)
	if err != nil {
		return err
	}
	endV, err := i.evalExpression(s.End, env)
	if err != nil {
		return err
	}
	stepV, err := i.evalExpression(s.Step, env)
	if err != nil {
		return err
	}
	start, sOK := asFloat(startV)
	end, eOK := asFloat(endV)
	step, stOK := asFloat(stepV)
	if !sOK || !eOK || !stOK {
		return newError(s.Token, TypeErrorKind, "loop bounds must be numeric")
	}
	allInt := isInteger(startV) && isInteger(endV) && isInteger(stepV)

	cur := start
	for cur <= end {
		child := environ.NewEnclosed(env)
		var loopVar value.Value
		if allInt {
			loopVar = &value.Integer{Val: int64(cur)}
		} else {
			loopVar = &value.Float{Val: cur}
		}
		if err := child.Declare(s.Var, loopVar, false); err != nil {
			return newError(s.Token, NameErrorKind, "%s", err.Error())
		}
		err := i.execBlock(s.Body, child)
		if err == nil {
			cur += step
			continue
		}
		if _, ok := err.(*breakSignal); ok {
			return nil
		}
		if _, ok := err.(*skipSignal); ok {
			cur += step
			continue
		}
		return err
	}
	return nil
}

// execWhileLoop re-evaluates the condition every iteration; each
// iteration runs in a fresh child scope.
func (i *Interp) execWhileLoop(s *ast.WhileLoop, env *environ.Environment) error {
	for {
		cond, err := i.evalExpression(s.Condition, env)
		if err != nil {
			return err
		}
		if !toBool(cond) {
			return nil
		}
		err = i.execBlock(s.Body, environ.NewEnclosed(env))
		if err == nil {
			continue
		}
		if _, ok := err.(*breakSignal); ok {
			return nil
		}
		if _, ok := err.(*skipSignal); ok {
			continue
		}
		return err
	}
}

// execDoWhileLoop runs the body once unconditionally, then re-checks
// the condition; Skip proceeds straight to the condition check.
func (i *Interp) execDoWhileLoop(s *ast.DoWhileLoop, env *environ.Environment) error {
	for {
		err := i.execBlock(s.Body, environ.NewEnclosed(env))
		if err != nil {
			if _, ok := err.(*breakSignal); ok {
				return nil
			}
			if _, ok := err.(*skipSignal); !ok {
				return err
			}
		}
		cond, err := i.evalExpression(s.Condition, env)
		if err != nil {
			return err
		}
		if !toBool(cond) {
			return nil
		}
	}
}

// execMatch evaluates the scrutinee once, then tries each case value
// in order by equality; first match wins; otherwise runs the else
// clause if present. Case bodies run in a fresh child scope.
func (i *Interp) execMatch(s *ast.MatchStatement, env *environ.Environment) error {
	scrutinee, err := i.evalExpression(s.Scrutinee, env)
	if err != nil {
		return err
	}
	for _, c := range s.Cases {
		v, err := i.evalExpression(c.Value, env)
		if err != nil {
			return err
		}
		if valuesEqual(scrutinee, v) {
			return i.execStatement(c.Body, environ.NewEnclosed(env))
		}
	}
	if s.Else != nil {
		return i.execStatement(s.Else, environ.NewEnclosed(env))
	}
	return nil
}

// execIO handles log/logln/input (spec.md §4.3 IO).
func (i *Interp) execIO(s *ast.IO, env *environ.Environment) error {
	switch s.Action {
	case ast.IOLog:
		v, err := i.evalExpression(s.Expr, env)
		if err != nil {
			return err
		}
		_, _ = i.Writer.Write([]byte(v.Display()))
		return nil

	case ast.IOLogln:
		v, err := i.evalExpression(s.Expr, env)
		if err != nil {
			return err
		}
		_, _ = i.Writer.Write([]byte(v.Display() + "\n"))
		return nil

	case ast.IOInput:
		if s.Message != nil {
			msg, err := i.evalExpression(s.Message, env)
			if err != nil {
				return err
			}
			_, _ = i.Writer.Write([]byte(msg.Display()))
		}
		line, err := i.readLine()
		if err != nil {
			return newError(s.Token, RuntimeErrorKind, "input: %s", err.Error())
		}
		return i.assignTo(s.Target, parseInputValue(line), env)
	}
	return newError(s.Token, RuntimeErrorKind, "unhandled IO action")
}

func (i *Interp) readLine() (string, error) {
	if i.Reader == nil {
		i.Reader = bufio.NewReader(strings.NewReader(""))
	}
	line, err := i.Reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// parseInputValue coerces a raw input line to integer, then float,
// then leaves it as a string (spec.md §4.3 input).
func parseInputValue(s string) value.Value {
	if !strings.Contains(s, ".") {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return &value.Integer{Val: n}
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return &value.Float{Val: f}
	}
	return &value.String{Val: s}
}
