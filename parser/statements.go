package parser

import (
	"strings"

	"github.com/axion-lang/axion/ast"
	"github.com/axion-lang/axion/token"
)

// parseVarDecl parses `set NAME ( = expr )? ;`.
func (p *Parser) parseVarDecl() (ast.Statement, error) {
	tok, _ := p.match("set")
	name, err := p.match(string(token.Identifier))
	if err != nil {
		return nil, err
	}
	var init ast.Expression
	if p.check("=") {
		p.advance()
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.match(";"); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Token: tok, Name: name.Lexeme, Init: init}, nil
}

// parseConstDecl parses `const NAME = expr ;`.
func (p *Parser) parseConstDecl() (ast.Statement, error) {
	tok, _ := p.match("const")
	name, err := p.match(string(token.Identifier))
	if err != nil {
		return nil, err
	}
	if _, err := p.match("="); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(";"); err != nil {
		return nil, err
	}
	return &ast.ConstDecl{Token: tok, Name: name.Lexeme, Init: init}, nil
}

// parseFuncDecl parses `func NAME ( params ) { body }`.
func (p *Parser) parseFuncDecl() (ast.Statement, error) {
	tok, _ := p.match("func")
	name, err := p.match(string(token.Identifier))
	if err != nil {
		return nil, err
	}
	if _, err := p.match("("); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Token: tok, Name: name.Lexeme, Params: params, Body: body}, nil
}

func (p *Parser) parseParams() ([]string, error) {
	var params []string
	if p.current().Kind != token.Identifier {
		return params, nil
	}
	first, err := p.match(string(token.Identifier))
	if err != nil {
		return nil, err
	}
	params = append(params, first.Lexeme)
	for p.check(",") {
		p.advance()
		next, err := p.match(string(token.Identifier))
		if err != nil {
			return nil, err
		}
		params = append(params, next.Lexeme)
	}
	return params, nil
}

// parseIf parses `if (cond) then body (else if (cond) then body)* (else body)?`.
func (p *Parser) parseIf() (ast.Statement, error) {
	tok, _ := p.match("if")
	if _, err := p.match("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(")"); err != nil {
		return nil, err
	}
	if _, err := p.match("then"); err != nil {
		return nil, err
	}
	body, err := p.parseBodyOrSingleStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStatement{Token: tok, Condition: cond, Body: body}

	for p.check("else") && p.peekAt(1).Lexeme == "if" {
		p.advance() // else
		p.advance() // if
		if _, err := p.match("("); err != nil {
			return nil, err
		}
		elifCond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(")"); err != nil {
			return nil, err
		}
		if _, err := p.match("then"); err != nil {
			return nil, err
		}
		elifBody, err := p.parseBodyOrSingleStatement()
		if err != nil {
			return nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, ast.ElseIf{Condition: elifCond, Body: elifBody})
	}

	if p.check("else") {
		p.advance()
		elseBody, err := p.parseBodyOrSingleStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBody
	}

	return stmt, nil
}

// parseForLoop parses `loop ( NAME from start to end step step ) { body }`.
func (p *Parser) parseForLoop() (ast.Statement, error) {
	tok, _ := p.match("loop")
	if _, err := p.match("("); err != nil {
		return nil, err
	}
	name, err := p.match(string(token.Identifier))
	if err != nil {
		return nil, err
	}
	if _, err := p.match("from"); err != nil {
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match("to"); err != nil {
		return nil, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match("step"); err != nil {
		return nil, err
	}
	step, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForLoop{Token: tok, Var: name.Lexeme, Start: start, End: end, Step: step, Body: body}, nil
}

// parseWhileLoop parses `while ( cond ) { body }`.
func (p *Parser) parseWhileLoop() (ast.Statement, error) {
	tok, _ := p.match("while")
	if _, err := p.match("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileLoop{Token: tok, Condition: cond, Body: body}, nil
}

// parseDoWhileLoop parses `repeat { body } while ( cond ) ;`.
func (p *Parser) parseDoWhileLoop() (ast.Statement, error) {
	tok, _ := p.match("repeat")
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.match("while"); err != nil {
		return nil, err
	}
	if _, err := p.match("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(")"); err != nil {
		return nil, err
	}
	if _, err := p.match(";"); err != nil {
		return nil, err
	}
	return &ast.DoWhileLoop{Token: tok, Body: body, Condition: cond}, nil
}

// parseMatch parses `match ( expr ) { (expr -> stmt)* (else -> stmt)? }`.
func (p *Parser) parseMatch() (ast.Statement, error) {
	tok, _ := p.match("match")
	if _, err := p.match("("); err != nil {
		return nil, err
	}
	scrutinee, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(")"); err != nil {
		return nil, err
	}
	if _, err := p.match("{"); err != nil {
		return nil, err
	}

	stmt := &ast.MatchStatement{Token: tok, Scrutinee: scrutinee}
	for !p.check("}") && p.current().Kind != token.EOF {
		if p.check("else") {
			p.advance()
			if _, err := p.match("->"); err != nil {
				return nil, err
			}
			body, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			stmt.Else = body
			continue
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.match("->"); err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, ast.MatchCase{Value: value, Body: body})
	}
	if _, err := p.match("}"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseReturn parses `return expr ;`.
func (p *Parser) parseReturn() (ast.Statement, error) {
	tok, _ := p.match("return")
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(";"); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Token: tok, Value: value}, nil
}

func (p *Parser) parseBreak() (ast.Statement, error) {
	tok, _ := p.match("break")
	if _, err := p.match(";"); err != nil {
		return nil, err
	}
	return &ast.BreakStatement{Token: tok}, nil
}

func (p *Parser) parseSkip() (ast.Statement, error) {
	tok, _ := p.match("skip")
	if _, err := p.match(";"); err != nil {
		return nil, err
	}
	return &ast.SkipStatement{Token: tok}, nil
}

// parseInclude parses `include STRING ;`.
func (p *Parser) parseInclude() (ast.Statement, error) {
	tok, _ := p.match("include")
	pathTok, err := p.match(string(token.String))
	if err != nil {
		return nil, err
	}
	if _, err := p.match(";"); err != nil {
		return nil, err
	}
	return &ast.Include{Token: tok, Path: stripQuotes(pathTok.Lexeme)}, nil
}

// parseIO parses `log(expr);`, `logln(expr);`, or `input(target, STRING?);`.
func (p *Parser) parseIO() (ast.Statement, error) {
	tok := p.current()
	switch tok.Lexeme {
	case "log", "logln":
		p.advance()
		if _, err := p.match("("); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(")"); err != nil {
			return nil, err
		}
		if _, err := p.match(";"); err != nil {
			return nil, err
		}
		action := ast.IOLog
		if tok.Lexeme == "logln" {
			action = ast.IOLogln
		}
		return &ast.IO{Token: tok, Action: action, Expr: expr}, nil

	case "input":
		p.advance()
		if _, err := p.match("("); err != nil {
			return nil, err
		}
		target, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		var message ast.Expression
		if p.check(",") {
			p.advance()
			msgTok, err := p.match(string(token.String))
			if err != nil {
				return nil, err
			}
			message = &ast.String{Token: msgTok, Value: stripQuotes(msgTok.Lexeme)}
		}
		if _, err := p.match(")"); err != nil {
			return nil, err
		}
		if _, err := p.match(";"); err != nil {
			return nil, err
		}
		return &ast.IO{Token: tok, Action: ast.IOInput, Target: target, Message: message}, nil
	}
	return nil, &Error{Tok: tok, Message: "unexpected I/O statement"}
}

// parseExpressionStatement parses `expr ;`, the fallthrough statement
// form.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	tok := p.current()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(";"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Token: tok, Expr: expr}, nil
}

// stripQuotes removes a single pair of matching leading/trailing quote
// characters from a string lexeme (spec.md §4.1: the lexer preserves
// them, the parser strips them when building the literal's value).
func stripQuotes(lexeme string) string {
	if len(lexeme) >= 2 {
		first, last := lexeme[0], lexeme[len(lexeme)-1]
		if (first == '"' || first == '\'') && first == last {
			return lexeme[1 : len(lexeme)-1]
		}
	}
	return strings.Trim(lexeme, "\"'")
}
