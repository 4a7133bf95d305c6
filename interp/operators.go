package interp

import (
	"math"
	"strings"

	"github.com/axion-lang/axion/ast"
	"github.com/axion-lang/axion/environ"
	"github.com/axion-lang/axion/token"
	"github.com/axion-lang/axion/value"
)

func (i *Interp) evalBinaryOp(b *ast.BinaryOp, env *environ.Environment) (value.Value, error) {
	left, err := i.evalExpression(b.Left, env)
	if err != nil {
		return nil, err
	}
	// both/any are eager (spec.md §9 Open Question #3): the right
	// operand is always evaluated, never short-circuited.
	right, err := i.evalExpression(b.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinaryOp(b.Token, b.Op, left, right)
}

// applyBinaryOp implements spec.md §4.3 BinaryOp semantics, shared by
// plain binary expressions and compound-assignment operators.
func applyBinaryOp(tok token.Token, op string, left, right value.Value) (value.Value, error) {
	switch op {
	case "+":
		if ls, ok := left.(*value.String); ok {
			if rs, ok := right.(*value.String); ok {
				return &value.String{Val: ls.Val + rs.Val}, nil
			}
		}
		return arith(tok, op, left, right)
	case "-", "*", "/", "%":
		return arith(tok, op, left, right)
	case "==":
		return &value.Boolean{Val: valuesEqual(left, right)}, nil
	case "!=":
		return &value.Boolean{Val: !valuesEqual(left, right)}, nil
	case "<", "<=", ">", ">=":
		return compare(tok, op, left, right)
	case "both":
		return &value.Boolean{Val: toBool(left) && toBool(right)}, nil
	case "any":
		return &value.Boolean{Val: toBool(left) || toBool(right)}, nil
	case "&", "|", "^", "<<", ">>":
		return bitwise(tok, op, left, right)
	}
	return nil, newError(tok, RuntimeErrorKind, "unknown operator '%s'", op)
}

// arith implements + - * / % with Go-native int/float promotion: if
// both operands are Integer the result stays Integer (including `/`,
// which truncates like Go's native integer division); if either is
// Float the result is Float. This is a deliberate, documented
// divergence from the Python reference, which silently promotes `/`
// to a float result even for two ints — Axion keeps Integer and Float
// as genuinely distinct runtime types, so truncating `/` between two
// Integers is the more consistent choice (see DESIGN.md).
func arith(tok token.Token, op string, left, right value.Value) (value.Value, error) {
	li, lIsInt := left.(*value.Integer)
	ri, rIsInt := right.(*value.Integer)
	if lIsInt && rIsInt {
		switch op {
		case "+":
			return &value.Integer{Val: li.Val + ri.Val}, nil
		case "-":
			return &value.Integer{Val: li.Val - ri.Val}, nil
		case "*":
			return &value.Integer{Val: li.Val * ri.Val}, nil
		case "/":
			if ri.Val == 0 {
				return nil, newError(tok, RuntimeErrorKind, "division by zero")
			}
			return &value.Integer{Val: li.Val / ri.Val}, nil
		case "%":
			if ri.Val == 0 {
				return nil, newError(tok, RuntimeErrorKind, "division by zero")
			}
			return &value.Integer{Val: li.Val % ri.Val}, nil
		}
	}
	lf, lOK := asFloat(left)
	rf, rOK := asFloat(right)
	if !lOK || !rOK {
		return nil, newError(tok, TypeErrorKind, "arithmetic '%s' requires numeric operands", op)
	}
	switch op {
	case "+":
		return &value.Float{Val: lf + rf}, nil
	case "-":
		return &value.Float{Val: lf - rf}, nil
	case "*":
		return &value.Float{Val: lf * rf}, nil
	case "/":
		if rf == 0 {
			return nil, newError(tok, RuntimeErrorKind, "division by zero")
		}
		return &value.Float{Val: lf / rf}, nil
	case "%":
		if rf == 0 {
			return nil, newError(tok, RuntimeErrorKind, "division by zero")
		}
		return &value.Float{Val: math.Mod(lf, rf)}, nil
	}
	return nil, newError(tok, RuntimeErrorKind, "unknown operator '%s'", op)
}

// compare implements < <= > >=: numeric ordering for numbers,
// lexicographic ordering for strings.
func compare(tok token.Token, op string, left, right value.Value) (value.Value, error) {
	if ls, ok := left.(*value.String); ok {
		if rs, ok := right.(*value.String); ok {
			return &value.Boolean{Val: compareOrdered(op, strings.Compare(ls.Val, rs.Val))}, nil
		}
	}
	lf, lOK := asFloat(left)
	rf, rOK := asFloat(right)
	if !lOK || !rOK {
		return nil, newError(tok, TypeErrorKind, "comparison '%s' requires numeric or string operands", op)
	}
	cmp := 0
	switch {
	case lf < rf:
		cmp = -1
	case lf > rf:
		cmp = 1
	}
	return &value.Boolean{Val: compareOrdered(op, cmp)}, nil
}

func compareOrdered(op string, cmp int) bool {
	switch op {
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	}
	return false
}

func bitwise(tok token.Token, op string, left, right value.Value) (value.Value, error) {
	l, lOK := asInt(left)
	r, rOK := asInt(right)
	if !lOK || !rOK {
		return nil, newError(tok, TypeErrorKind, "bitwise '%s' requires integer-coercible operands", op)
	}
	switch op {
	case "&":
		return &value.Integer{Val: l & r}, nil
	case "|":
		return &value.Integer{Val: l | r}, nil
	case "^":
		return &value.Integer{Val: l ^ r}, nil
	case "<<":
		return &value.Integer{Val: l << uint(r)}, nil
	case ">>":
		return &value.Integer{Val: l >> uint(r)}, nil
	}
	return nil, newError(tok, RuntimeErrorKind, "unknown operator '%s'", op)
}

func (i *Interp) evalUnaryOp(u *ast.UnaryOp, env *environ.Environment) (value.Value, error) {
	v, err := i.evalExpression(u.Operand, env)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case "~":
		n, ok := asInt(v)
		if !ok {
			return nil, newError(u.Token, TypeErrorKind, "'~' requires an integer-coercible operand")
		}
		return &value.Integer{Val: ^n}, nil
	case "invert":
		return &value.Boolean{Val: !toBool(v)}, nil
	case "-":
		if n, ok := v.(*value.Integer); ok {
			return &value.Integer{Val: -n.Val}, nil
		}
		if f, ok := asFloat(v); ok {
			return &value.Float{Val: -f}, nil
		}
		return nil, newError(u.Token, TypeErrorKind, "'-' requires a numeric operand")
	}
	return nil, newError(u.Token, RuntimeErrorKind, "unknown unary operator '%s'", u.Op)
}

// evalAssignment implements spec.md §4.3 Assignment: target is an
// identifier or an index expression; compound ops read the current
// value, apply the operator, and write back; the root identifier must
// not be const.
func (i *Interp) evalAssignment(a *ast.Assignment, env *environ.Environment) (value.Value, error) {
	rhs, err := i.evalExpression(a.Value, env)
	if err != nil {
		return nil, err
	}
	newVal := rhs
	if a.Op != "=" {
		current, err := i.evalExpression(a.Target, env)
		if err != nil {
			return nil, err
		}
		op := strings.TrimSuffix(a.Op, "=")
		newVal, err = applyBinaryOp(a.Token, op, current, rhs)
		if err != nil {
			return nil, err
		}
	}
	if err := i.assignTo(a.Target, newVal, env); err != nil {
		return nil, err
	}
	return newVal, nil
}

// assignTo writes v to an lvalue (Identifier or Index, possibly
// chained), auto-extending arrays on indexed assignment.
func (i *Interp) assignTo(target ast.Expression, v value.Value, env *environ.Environment) error {
	switch t := target.(type) {
	case *ast.Identifier:
		if env.IsConst(t.Name) {
			return newError(t.Token, ConstErrorKind, "cannot assign to constant '%s'", t.Name)
		}
		if err := env.Assign(t.Name, v); err != nil {
			return newError(t.Token, NameErrorKind, "%s", err.Error())
		}
		return nil

	case *ast.Index:
		if root := rootIdentifier(t); root != "" && env.IsConst(root) {
			return newError(t.Token, ConstErrorKind, "cannot assign to an index of constant '%s'", root)
		}
		targetV, err := i.evalExpression(t.Target, env)
		if err != nil {
			return err
		}
		arr, ok := targetV.(*value.Array)
		if !ok {
			return newError(t.Token, TypeErrorKind, "index on non-array")
		}
		idxV, err := i.evalExpression(t.Idx, env)
		if err != nil {
			return err
		}
		n, ok := asInt(idxV)
		if !ok || n < 0 {
			return newError(t.Token, TypeErrorKind, "array index must be a non-negative integer")
		}
		arr.EnsureLen(int(n))
		arr.Elements[n] = v
		return nil
	}
	return newError(target.Pos(), RuntimeErrorKind, "invalid assignment target")
}

// rootIdentifier walks an Index chain down to its bottom Identifier,
// for const-root checking; returns "" if the chain's root is not a
// bare identifier.
func rootIdentifier(expr ast.Expression) string {
	for {
		switch t := expr.(type) {
		case *ast.Identifier:
			return t.Name
		case *ast.Index:
			expr = t.Target
		default:
			return ""
		}
	}
}
