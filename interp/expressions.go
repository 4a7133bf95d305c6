package interp

import (
	"strconv"
	"strings"

	"github.com/axion-lang/axion/ast"
	"github.com/axion-lang/axion/environ"
	"github.com/axion-lang/axion/parser"
	"github.com/axion-lang/axion/value"
)

// evalExpression dispatches on the concrete expression type (spec.md
// §4.3).
func (i *Interp) evalExpression(expr ast.Expression, env *environ.Environment) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return evalNumber(e), nil
	case *ast.String:
		return i.evalString(e, env)
	case *ast.Identifier:
		return i.evalIdentifier(e, env)
	case *ast.BinaryOp:
		return i.evalBinaryOp(e, env)
	case *ast.UnaryOp:
		return i.evalUnaryOp(e, env)
	case *ast.Assignment:
		return i.evalAssignment(e, env)
	case *ast.Call:
		return i.evalCall(e, env)
	case *ast.Index:
		return i.evalIndex(e, env)
	case *ast.MemberAccess:
		return i.evalMemberAccess(e, env)
	case *ast.ArrayLiteral:
		return i.evalArrayLiteral(e, env)
	}
	return nil, newError(expr.Pos(), RuntimeErrorKind, "unhandled expression type")
}

func evalNumber(n *ast.Number) value.Value {
	if strings.Contains(n.Value, ".") {
		f, _ := strconv.ParseFloat(n.Value, 64)
		return &value.Float{Val: f}
	}
	v, _ := strconv.ParseInt(n.Value, 10, 64)
	return &value.Integer{Val: v}
}

// evalString performs string interpolation: any `{...}` substring is
// re-lexed and parsed as a single expression, evaluated in the current
// scope, and substituted with its display form (spec.md §4.3).
func (i *Interp) evalString(s *ast.String, env *environ.Environment) (value.Value, error) {
	var out strings.Builder
	src := s.Value
	for j := 0; j < len(src); j++ {
		c := src[j]
		if c != '{' {
			out.WriteByte(c)
			continue
		}
		depth := 1
		k := j + 1
		for k < len(src) && depth > 0 {
			switch src[k] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth > 0 {
				k++
			}
		}
		if depth != 0 {
			return nil, newError(s.Token, SyntaxErrorKind, "unbalanced '{' in string interpolation")
		}
		fragment := src[j+1 : k]
		expr, err := parser.ParseExpressionFragment(fragment)
		if err != nil {
			return nil, err
		}
		v, err := i.evalExpression(expr, env)
		if err != nil {
			return nil, err
		}
		out.WriteString(v.Display())
		j = k
	}
	return &value.String{Val: out.String()}, nil
}

func (i *Interp) evalIdentifier(id *ast.Identifier, env *environ.Environment) (value.Value, error) {
	v, err := env.Get(id.Name)
	if err != nil {
		return nil, newError(id.Token, NameErrorKind, "%s", err.Error())
	}
	return v.(value.Value), nil
}

func (i *Interp) evalArrayLiteral(a *ast.ArrayLiteral, env *environ.Environment) (value.Value, error) {
	elements := make([]value.Value, len(a.Elements))
	for idx, el := range a.Elements {
		v, err := i.evalExpression(el, env)
		if err != nil {
			return nil, err
		}
		elements[idx] = v
	}
	return value.NewArray(elements), nil
}

func (i *Interp) evalIndex(ix *ast.Index, env *environ.Environment) (value.Value, error) {
	target, err := i.evalExpression(ix.Target, env)
	if err != nil {
		return nil, err
	}
	idxV, err := i.evalExpression(ix.Idx, env)
	if err != nil {
		return nil, err
	}
	arr, ok := target.(*value.Array)
	if !ok {
		return nil, newError(ix.Token, TypeErrorKind, "index on non-array")
	}
	n, ok := asInt(idxV)
	if !ok {
		return nil, newError(ix.Token, TypeErrorKind, "array index must be an integer")
	}
	if n < 0 || n >= int64(len(arr.Elements)) {
		return nil, newError(ix.Token, RuntimeErrorKind, "array index %d out of range", n)
	}
	return arr.Elements[n], nil
}

func (i *Interp) evalMemberAccess(m *ast.MemberAccess, env *environ.Environment) (value.Value, error) {
	obj, err := i.evalExpression(m.Object, env)
	if err != nil {
		return nil, err
	}
	rec, ok := obj.(*value.Record)
	if !ok {
		return nil, newError(m.Token, TypeErrorKind, "member access on non-record")
	}
	v, ok := rec.Get(m.Property)
	if !ok {
		return nil, newError(m.Token, NameErrorKind, "'%s' has no field '%s'", m.Object.Pos().Lexeme, m.Property)
	}
	return v, nil
}

// ---- truthiness, equality, numeric coercion ----

// toBool implements spec.md §4.3 truthiness: booleans as themselves,
// numbers nonzero, strings "true"/"false" (case-insensitive) or
// numeric-parseable or nonempty, arrays/records nonempty.
func toBool(v value.Value) bool {
	switch t := v.(type) {
	case *value.Boolean:
		return t.Val
	case *value.Integer:
		return t.Val != 0
	case *value.Float:
		return t.Val != 0
	case *value.String:
		lower := strings.ToLower(t.Val)
		if lower == "true" {
			return true
		}
		if lower == "false" {
			return false
		}
		if f, err := strconv.ParseFloat(t.Val, 64); err == nil {
			return f != 0
		}
		return t.Val != ""
	case *value.Array:
		return len(t.Elements) > 0
	case *value.Record:
		return len(t.Keys) > 0
	case *value.Null:
		return false
	}
	return true
}

func valuesEqual(a, b value.Value) bool {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf
		}
	}
	if as, ok := a.(*value.String); ok {
		if bs, ok := b.(*value.String); ok {
			return as.Val == bs.Val
		}
	}
	if ab, ok := a.(*value.Boolean); ok {
		if bb, ok := b.(*value.Boolean); ok {
			return ab.Val == bb.Val
		}
	}
	_, aNull := a.(*value.Null)
	_, bNull := b.(*value.Null)
	if aNull && bNull {
		return true
	}
	return false
}

func isInteger(v value.Value) bool {
	_, ok := v.(*value.Integer)
	return ok
}

func asFloat(v value.Value) (float64, bool) {
	switch t := v.(type) {
	case *value.Integer:
		return float64(t.Val), true
	case *value.Float:
		return t.Val, true
	}
	return 0, false
}

func asInt(v value.Value) (int64, bool) {
	switch t := v.(type) {
	case *value.Integer:
		return t.Val, true
	case *value.Float:
		return int64(t.Val), true
	}
	return 0, false
}
