package interp

import (
	"github.com/axion-lang/axion/ast"
	"github.com/axion-lang/axion/environ"
	"github.com/axion-lang/axion/token"
	"github.com/axion-lang/axion/value"
)

// evalCall implements spec.md §4.3 Call: an Identifier callee checks
// the Function Table first, then builtins, then falls back to a
// variable expected to hold a callable value; a MemberAccess callee
// looks up a record field; an Index callee looks up an array element.
func (i *Interp) evalCall(c *ast.Call, env *environ.Environment) (value.Value, error) {
	args, err := i.evalArgs(c.Args, env)
	if err != nil {
		return nil, err
	}

	if id, ok := c.Callee.(*ast.Identifier); ok {
		if decl, ok := i.Functions[id.Name]; ok {
			return i.callFuncDecl(decl, env, args)
		}
		if b, ok := i.Builtins[id.Name]; ok {
			v, err := b.Fn(args)
			if err != nil {
				return nil, newError(id.Token, RuntimeErrorKind, "%s", err.Error())
			}
			return v, nil
		}
		callee, err := env.Get(id.Name)
		if err != nil {
			return nil, newError(id.Token, NameErrorKind, "%s", err.Error())
		}
		return i.callValue(callee.(value.Value), args, id.Token)
	}

	callee, err := i.evalExpression(c.Callee, env)
	if err != nil {
		return nil, err
	}
	return i.callValue(callee, args, c.Token)
}

func (i *Interp) evalArgs(exprs []ast.Expression, env *environ.Environment) ([]value.Value, error) {
	args := make([]value.Value, len(exprs))
	for idx, e := range exprs {
		v, err := i.evalExpression(e, env)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	return args, nil
}

// callFuncDecl invokes a Function-Table entry: a new scope whose
// parent is the call-site scope (spec.md §4.3 Call/Identifier
// callee), evaluated against this same interpreter. Self-recursion
// needs no extra binding: a recursive call inside the body is itself
// an Identifier Call that checks the Function Table first, which
// already holds this declaration under its own name — unlike the
// Python reference, which binds the function's own name into the call
// scope because its call path doesn't consult a table first.
func (i *Interp) callFuncDecl(decl *ast.FuncDecl, callSiteEnv *environ.Environment, args []value.Value) (value.Value, error) {
	return i.invokeFunction(decl, callSiteEnv, args)
}

// callValue calls a first-class callable value: a UserFunction
// (closure captured at declaration time, e.g. a module's exposed
// function) or a BuiltinFunction.
func (i *Interp) callValue(callee value.Value, args []value.Value, tok token.Token) (value.Value, error) {
	switch fn := callee.(type) {
	case *value.UserFunction:
		decl := fn.Decl.(*ast.FuncDecl)
		closureEnv := fn.Env.(*environ.Environment)
		owner := fn.Owner.(*Interp)
		return owner.invokeFunction(decl, closureEnv, args)
	case *value.BuiltinFunction:
		v, err := fn.Fn(args)
		if err != nil {
			return nil, newError(tok, RuntimeErrorKind, "%s", err.Error())
		}
		return v, nil
	}
	return nil, newError(tok, TypeErrorKind, "value is not callable")
}

// invokeFunction binds params positionally into a scope enclosed by
// closureEnv, evaluates the body against this interpreter, and unwraps
// a return signal (spec.md §4.3).
func (i *Interp) invokeFunction(decl *ast.FuncDecl, closureEnv *environ.Environment, args []value.Value) (value.Value, error) {
	if len(args) != len(decl.Params) {
		return nil, newError(decl.Token, RuntimeErrorKind, "function '%s' expects %d argument(s), got %d", decl.Name, len(decl.Params), len(args))
	}
	scope := environ.NewEnclosed(closureEnv)
	for idx, param := range decl.Params {
		if err := scope.Declare(param, args[idx], false); err != nil {
			return nil, newError(decl.Token, NameErrorKind, "%s", err.Error())
		}
	}
	err := i.execBlock(decl.Body, scope)
	if err == nil {
		return value.NullValue, nil
	}
	if rs, ok := err.(*returnSignal); ok {
		return rs.Value, nil
	}
	if _, ok := err.(*breakSignal); ok {
		return nil, newError(decl.Token, RuntimeErrorKind, "break used outside a loop")
	}
	if _, ok := err.(*skipSignal); ok {
		return nil, newError(decl.Token, RuntimeErrorKind, "skip used outside a loop")
	}
	return nil, err
}
