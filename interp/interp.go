// Package interp implements Axion's evaluator: it walks the AST
// against a chain of environ.Environment scopes and a process-scoped
// function table, and drives the Module Loader for Include statements
// (spec.md §4.3/§4.5).
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/axion-lang/axion/ast"
	"github.com/axion-lang/axion/builtin"
	"github.com/axion-lang/axion/environ"
	"github.com/axion-lang/axion/token"
	"github.com/axion-lang/axion/value"
)

// ErrorKind names one of spec.md §7's evaluator-level error kinds.
// LexError/SyntaxError are produced by lexer/parser, not here.
type ErrorKind string

const (
	NameErrorKind    ErrorKind = "NameError"
	ConstErrorKind   ErrorKind = "ConstError"
	TypeErrorKind    ErrorKind = "TypeError"
	RuntimeErrorKind ErrorKind = "RuntimeError"
	// SyntaxErrorKind covers the one syntax error the evaluator itself
	// can raise: an unbalanced `{` during string interpolation
	// (spec.md §4.3), discovered only once the string literal is
	// evaluated rather than at parse time.
	SyntaxErrorKind ErrorKind = "SyntaxError"
)

// EvalError is the evaluator's single error type: a kind plus a
// [line:col] source position.
type EvalError struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s (line %d:%d)", e.Kind, e.Message, e.Line, e.Column)
}

func newError(tok token.Token, kind ErrorKind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Message: fmt.Sprintf(format, args...), Line: tok.Line, Column: tok.Column}
}

// ---- control-flow signals (spec.md §4.3 "Control-flow signals") ----
//
// Return/Break/Skip are modeled as sentinel errors returned up through
// execStatement/execBlock, rather than panics: an ordinary Go idiom,
// and distinct from the Python reference's string/dict-tag signals.
// Unlike that reference, a loop's dispatch here checks for a return
// signal after every iteration, not only Break/Skip — the reference
// has a latent bug where `return` inside a loop body is swallowed
// instead of propagating to the enclosing function frame; spec.md
// §4.3 ReturnStatement is explicit that Return "propagates upward
// through enclosing blocks/loops until caught by a function-call
// frame", so this implementation honors that text literally.

type returnSignal struct{ Value value.Value }

func (r *returnSignal) Error() string { return "return" }

type breakSignal struct{}

func (b *breakSignal) Error() string { return "break" }

type skipSignal struct{}

func (s *skipSignal) Error() string { return "skip" }

// Interp is one interpreter instance: a global environment, a
// process-scoped function table, the registered builtins, and the
// loaded-module set (spec.md §3 "Lifecycles"). Module loading creates
// a fresh child Interp sharing the loaded-set by reference but with
// its own function table (spec.md §5).
type Interp struct {
	Global    *environ.Environment
	Functions map[string]*ast.FuncDecl
	Builtins  map[string]*builtin.Builtin
	Loaded    map[string]bool
	Writer    io.Writer
	Reader    *bufio.Reader
}

// New creates a root interpreter with a fresh global scope, an empty
// function table, every registered builtin, a new loaded-set, and
// stdout/stdin as the default I/O streams.
func New() *Interp {
	builtins := make(map[string]*builtin.Builtin)
	for _, b := range builtin.All() {
		builtins[b.Name] = b
	}
	return &Interp{
		Global:    environ.New(),
		Functions: make(map[string]*ast.FuncDecl),
		Builtins:  builtins,
		Loaded:    make(map[string]bool),
		Writer:    os.Stdout,
		Reader:    bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects IO output, e.g. to a buffer under test.
func (i *Interp) SetWriter(w io.Writer) { i.Writer = w }

// SetReader redirects IO input, e.g. to a fixed script under test.
func (i *Interp) SetReader(r io.Reader) { i.Reader = bufio.NewReader(r) }

// Run evaluates a parsed program's top-level statements against the
// interpreter's global environment.
func (i *Interp) Run(prog *ast.Program) error {
	err := i.execBlock(prog.Body, i.Global)
	if err == nil {
		return nil
	}
	return i.unwrapTopLevelSignal(err)
}

// unwrapTopLevelSignal converts a control-flow signal that escaped
// every enclosing loop/function frame into the RuntimeError spec.md §7
// names ("internal unwind misuse"); any other error passes through.
func (i *Interp) unwrapTopLevelSignal(err error) error {
	switch err.(type) {
	case *returnSignal:
		return &EvalError{Kind: RuntimeErrorKind, Message: "return used outside a function"}
	case *breakSignal:
		return &EvalError{Kind: RuntimeErrorKind, Message: "break used outside a loop"}
	case *skipSignal:
		return &EvalError{Kind: RuntimeErrorKind, Message: "skip used outside a loop"}
	}
	return err
}
