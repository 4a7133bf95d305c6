package value

import "fmt"

// UserFunction is a reference to a user-declared function plus the
// environment its body runs against (spec.md §3). Function
// declarations are registered in the evaluator's process-scoped
// Function Table (spec.md §4.3/§4.4), not bound to a declaration-site
// scope; UserFunction values are created only by the Module Loader,
// one per function a module defines, with the module's own top-level
// environment as Env (spec.md §4.5 step 6). Decl, Env, and Owner are opaque
// (`any`) here to avoid value importing ast/environ/interp back; the
// interp package knows their concrete types (*ast.FuncDecl,
// *environ.Environment, *interp.Interp). Owner is the interpreter that
// should evaluate the function's body — for a module-exposed function
// this is the module's own child interpreter, so nested calls inside
// the function resolve against the module's function table, not the
// include site's.
type UserFunction struct {
	Name  string
	Decl  any
	Env   any
	Owner any
}

func (f *UserFunction) Type() Type      { return FunctionType }
func (f *UserFunction) Display() string { return fmt.Sprintf("<function %s>", f.Name) }
