package interp

import (
	"errors"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/axion-lang/axion/ast"
	"github.com/axion-lang/axion/environ"
	"github.com/axion-lang/axion/parser"
	"github.com/axion-lang/axion/stdlib"
	"github.com/axion-lang/axion/value"
)

// handleInclude implements spec.md §4.5's Module Loader algorithm.
func (i *Interp) handleInclude(inc *ast.Include, env *environ.Environment) error {
	path := inc.Path

	// Step 1: idempotence — a module already in the shared loaded-set
	// returns immediately with no declaration at all, matching the
	// Python reference's literal early `return` (not an empty-Record
	// declaration): a repeated or cyclic include is silently inert at
	// the second site.
	if i.Loaded[path] {
		return nil
	}

	// Step 2: resolve source text.
	src, err := resolveModuleSource(path)
	if err != nil {
		return newError(inc.Token, RuntimeErrorKind, "%s", err.Error())
	}

	// Step 3: mark loaded before evaluating, so a cyclic include
	// (A includes B includes A) sees the in-progress module as already
	// loaded and returns without re-entering it.
	i.Loaded[path] = true

	// Step 4: a fresh child interpreter sharing the loaded-set by
	// reference but with its own, independent Function Table (spec.md
	// §5: "share the loaded-set by reference, not the function table").
	child := &Interp{
		Global:    environ.New(),
		Functions: make(map[string]*ast.FuncDecl),
		Builtins:  i.Builtins,
		Loaded:    i.Loaded,
		Writer:    i.Writer,
		Reader:    i.Reader,
	}

	prog, err := parser.Parse(src)
	if err != nil {
		return err
	}

	// Step 5: evaluate the module body in its own parentless
	// environment, never linked to the including scope.
	if err := child.execBlock(prog.Body, child.Global); err != nil {
		return child.unwrapTopLevelSignal(err)
	}

	// Step 6: build a Record exposing the module's top-level bindings
	// and, for each of its functions, a callable closing over the
	// module's own environment and owned by the module's interpreter.
	// Names are added in sorted order so the Record's display order does
	// not depend on Go's randomized map iteration.
	rec := value.NewRecord()
	top := child.Global.Top()
	for _, name := range slices.Sorted(maps.Keys(top)) {
		rec.Set(name, top[name].(value.Value))
	}
	for _, name := range slices.Sorted(maps.Keys(child.Functions)) {
		decl := child.Functions[name]
		rec.Set(name, &value.UserFunction{
			Name:  name,
			Decl:  decl,
			Env:   child.Global,
			Owner: child,
		})
	}

	// Step 7: declare the record in the caller's scope under the
	// filename stem.
	if err := env.Declare(moduleStem(path), rec, false); err != nil {
		return newError(inc.Token, NameErrorKind, "%s", err.Error())
	}
	return nil
}

// resolveModuleSource implements spec.md §4.5 step 2: a path ending in
// `.ax` or beginning with `.`/`/` is a local file; otherwise it names a
// bundled standard-library module.
func resolveModuleSource(path string) (string, error) {
	if strings.HasSuffix(path, ".ax") || strings.HasPrefix(path, ".") || strings.HasPrefix(path, "/") {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.New("module not found: " + path)
		}
		return string(data), nil
	}
	src, ok := stdlib.Lookup(path)
	if !ok {
		return "", errors.New("module not found: " + path)
	}
	return src, nil
}

// moduleStem returns the filename stem used as the declared module
// name: the base name with any `.ax` extension and directory removed.
func moduleStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, ".ax")
}
