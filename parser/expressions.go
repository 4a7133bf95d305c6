package parser

import (
	"github.com/axion-lang/axion/ast"
	"github.com/axion-lang/axion/token"
)

var assignmentOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
}
var logicalOps = map[string]bool{"both": true, "any": true}
var equalityOps = map[string]bool{"==": true, "!=": true}
var comparisonOps = map[string]bool{"<": true, "<=": true, ">": true, ">=": true}
var bitwiseOps = map[string]bool{"&": true, "|": true, "^": true, "<<": true, ">>": true}
var shiftOps = map[string]bool{"<<": true, ">>": true}
var additiveOps = map[string]bool{"+": true, "-": true}
var multiplicativeOps = map[string]bool{"*": true, "/": true, "%": true}
var unaryOps = map[string]bool{"invert": true, "~": true, "-": true}

// parseExpression is the ladder's entry point (spec.md §4.2).
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

// parseAssignment is the lowest-precedence tier: right-associative
// `=`, `+=`, `-=`, `*=`, `/=`, `%=`.
func (p *Parser) parseAssignment() (ast.Expression, error) {
	expr, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	if assignmentOps[p.current().Lexeme] {
		opTok := p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Token: opTok, Target: expr, Op: opTok.Lexeme, Value: value}, nil
	}
	return expr, nil
}

// parseLogical handles `both`/`any`, left-associative.
func (p *Parser) parseLogical() (ast.Expression, error) {
	expr, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for logicalOps[p.current().Lexeme] {
		opTok := p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryOp{Token: opTok, Op: opTok.Lexeme, Left: expr, Right: right}
	}
	return expr, nil
}

// parseEquality handles `==`, `!=`.
func (p *Parser) parseEquality() (ast.Expression, error) {
	expr, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for equalityOps[p.current().Lexeme] {
		opTok := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryOp{Token: opTok, Op: opTok.Lexeme, Left: expr, Right: right}
	}
	return expr, nil
}

// parseComparison handles `<`, `<=`, `>`, `>=`. Intentionally
// asymmetric (preserved from the source grammar, see SPEC_FULL.md
// §4.2/§9): the left operand descends through the bitwise tier but
// the right operand skips it, descending straight to additive.
func (p *Parser) parseComparison() (ast.Expression, error) {
	expr, err := p.parseBitwise()
	if err != nil {
		return nil, err
	}
	for comparisonOps[p.current().Lexeme] {
		opTok := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryOp{Token: opTok, Op: opTok.Lexeme, Left: expr, Right: right}
	}
	return expr, nil
}

// parseBitwise handles `&`, `|`, `^`, `<<`, `>>`. Both operands
// descend through additive; in practice the shift tokens are almost
// always already consumed one level down inside additive's call into
// shift, so this tier's own `<<`/`>>` branch rarely fires — preserved
// as-is rather than corrected (SPEC_FULL.md §4.2).
func (p *Parser) parseBitwise() (ast.Expression, error) {
	expr, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for bitwiseOps[p.current().Lexeme] {
		opTok := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryOp{Token: opTok, Op: opTok.Lexeme, Left: expr, Right: right}
	}
	return expr, nil
}

// parseAdditive handles `+`, `-`. Asymmetric like comparison: the left
// operand descends through shift, the right through multiplicative
// directly.
func (p *Parser) parseAdditive() (ast.Expression, error) {
	expr, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for additiveOps[p.current().Lexeme] {
		opTok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryOp{Token: opTok, Op: opTok.Lexeme, Left: expr, Right: right}
	}
	return expr, nil
}

// parseShift handles `<<`, `>>` at the tier actually reached first on
// descent from additive.
func (p *Parser) parseShift() (ast.Expression, error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for shiftOps[p.current().Lexeme] {
		opTok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryOp{Token: opTok, Op: opTok.Lexeme, Left: expr, Right: right}
	}
	return expr, nil
}

// parseMultiplicative handles `*`, `/`, `%`.
func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for multiplicativeOps[p.current().Lexeme] {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryOp{Token: opTok, Op: opTok.Lexeme, Left: expr, Right: right}
	}
	return expr, nil
}

// parseUnary handles prefix `invert`, `~`, `-`, right-recursive so
// `- - x` parses as nested UnaryOps.
func (p *Parser) parseUnary() (ast.Expression, error) {
	if unaryOps[p.current().Lexeme] {
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Token: opTok, Op: opTok.Lexeme, Operand: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles NUMBER, STRING, IDENTIFIER (with its postfix
// chain), parenthesized expressions, and array literals.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.current()

	switch tok.Kind {
	case token.Number:
		p.advance()
		return &ast.Number{Token: tok, Value: tok.Lexeme}, nil

	case token.String:
		p.advance()
		return &ast.String{Token: tok, Value: stripQuotes(tok.Lexeme)}, nil

	case token.Identifier:
		p.advance()
		var expr ast.Expression = &ast.Identifier{Token: tok, Name: tok.Lexeme}
		return p.parsePostfixChain(expr)
	}

	switch tok.Lexeme {
	case "(":
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(")"); err != nil {
			return nil, err
		}
		return expr, nil

	case "[":
		return p.parseArrayLiteral()
	}

	return nil, &Error{Tok: tok, Message: "unexpected token in expression"}
}

// parsePostfixChain applies zero or more of `[expr]` (Index), `.IDENT`
// (MemberAccess), `(args)` (Call) after a primary expression.
func (p *Parser) parsePostfixChain(expr ast.Expression) (ast.Expression, error) {
	for {
		switch p.current().Lexeme {
		case "[":
			tok := p.advance()
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.match("]"); err != nil {
				return nil, err
			}
			expr = &ast.Index{Token: tok, Target: expr, Idx: idx}

		case ".":
			tok := p.advance()
			prop, err := p.match(string(token.Identifier))
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberAccess{Token: tok, Object: expr, Property: prop.Lexeme}

		case "(":
			tok := p.advance()
			var args []ast.Expression
			if !p.check(")") {
				var err error
				args, err = p.parseElements()
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.match(")"); err != nil {
				return nil, err
			}
			expr = &ast.Call{Token: tok, Callee: expr, Args: args}

		default:
			return expr, nil
		}
	}
}

// parseArrayLiteral parses `[ elements ]`.
func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	tok, _ := p.match("[")
	var elements []ast.Expression
	if !p.check("]") {
		var err error
		elements, err = p.parseElements()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.match("]"); err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Token: tok, Elements: elements}, nil
}
