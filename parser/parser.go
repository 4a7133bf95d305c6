// Package parser implements Axion's recursive-descent parser: one
// method per grammar production, one-token lookahead, immediate error
// reporting on the offending token (spec.md §4.2). The expression
// ladder is a direct, literal port of the Python reference's
// method-per-tier call graph (_examples/original_source/axion/parser.py)
// rather than a Pratt/function-table approach — spec.md's precedence
// ladder has an intentional asymmetry (the comparison tier descends
// through bitwise on its left operand but additive on its right) that
// only a literal one-method-per-tier port reproduces faithfully.
package parser

import (
	"fmt"

	"github.com/axion-lang/axion/ast"
	"github.com/axion-lang/axion/lexer"
	"github.com/axion-lang/axion/token"
)

// Error is a syntax error at a specific token: an unexpected token or a
// missing terminator. An unclosed string is reported by lexer.Error and
// an unbalanced `{` in string interpolation by the evaluator's
// EvalError, both also rendered as SyntaxError.
type Error struct {
	Tok     token.Token
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("SyntaxError: %s (line %d:%d)", e.Message, e.Tok.Line, e.Tok.Column)
}

// Parser holds the token stream and current read position.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over an already-tokenized stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes and parses src in one step, the entry point used by
// the Module Loader and the CLI/REPL.
func Parse(src string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(tokens).ParseProgram()
}

// ParseExpressionFragment tokenizes and parses src as a single
// expression with no trailing terminator, used by the evaluator to
// re-lex and re-parse `{...}` spans during string interpolation
// (spec.md §4.3).
func ParseExpressionFragment(src string) (ast.Expression, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(tokens).parseExpression()
}

func (p *Parser) current() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return token.Token{Kind: token.EOF}
}

func (p *Parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	return token.Token{Kind: token.EOF}
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// check reports whether the current token's lexeme or kind equals
// expected, without consuming it.
func (p *Parser) check(expected string) bool {
	return p.current().Is(expected)
}

// match advances past the current token if it equals expected
// (lexeme or kind); otherwise it fails with a syntax error, the same
// dual-comparison `match` primitive spec.md §4.2 describes.
func (p *Parser) match(expected string) (token.Token, error) {
	tok := p.current()
	if tok.Is(expected) {
		p.advance()
		return tok, nil
	}
	return token.Token{}, &Error{Tok: tok, Message: fmt.Sprintf("expected %s, got %q", expected, tok.Lexeme)}
}

// ParseProgram parses the full token stream into a Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.current().Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
	return prog, nil
}

// parseStatement dispatches on the current lexeme (spec.md §4.2's
// Statement table).
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current().Lexeme {
	case "set":
		return p.parseVarDecl()
	case "const":
		return p.parseConstDecl()
	case "func":
		return p.parseFuncDecl()
	case "if":
		return p.parseIf()
	case "loop":
		return p.parseForLoop()
	case "while":
		return p.parseWhileLoop()
	case "repeat":
		return p.parseDoWhileLoop()
	case "match":
		return p.parseMatch()
	case "return":
		return p.parseReturn()
	case "break":
		return p.parseBreak()
	case "skip":
		return p.parseSkip()
	case "include":
		return p.parseInclude()
	case "log", "logln", "input":
		return p.parseIO()
	default:
		return p.parseExpressionStatement()
	}
}

// parseBlock parses `{ stmt* }`.
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.match("{"); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for !p.check("}") && p.current().Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.match("}"); err != nil {
		return nil, err
	}
	return stmts, nil
}

// parseBodyOrSingleStatement parses a braced block, or — if the
// current token is not `{` — a single statement wrapped in a
// one-element slice. Used for the bodies of `if`, `else if` and `else`;
// loop bodies always go through parseBlock.
func (p *Parser) parseBodyOrSingleStatement() ([]ast.Statement, error) {
	if p.check("{") {
		return p.parseBlock()
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return []ast.Statement{stmt}, nil
}

// parseElements parses a comma-separated expression list, used by
// call arguments and array literals.
func (p *Parser) parseElements() ([]ast.Expression, error) {
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	elements := []ast.Expression{first}
	for p.check(",") {
		p.advance()
		next, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, next)
	}
	return elements, nil
}
