// Package token defines the lexical token kinds produced by the Axion
// lexer and consumed by the parser.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind string

const (
	// EOF marks the end of the input stream.
	EOF Kind = "EOF"

	// Number is an integer or floating-point literal, e.g. "42" or "3.14".
	Number Kind = "NUMBER"
	// Identifier is a name that is not a reserved keyword.
	Identifier Kind = "IDENTIFIER"
	// Keyword is a reserved word (see Keywords below).
	Keyword Kind = "KEYWORD"
	// String is a quoted string literal; Lexeme retains its surrounding
	// quote characters, unprocessed.
	String Kind = "STRING"
	// Operator is any arithmetic, comparison, logical, bitwise, or
	// assignment operator, including the word-operators both/any/invert.
	Operator Kind = "OPERATOR"
	// Punctuation is one of . , ; ( ) { } [ ].
	Punctuation Kind = "PUNCTUATION"
)

// Keywords is the set of reserved words that cannot be used as
// identifiers (spec.md §6).
var Keywords = map[string]bool{
	"if": true, "else": true, "while": true, "return": true,
	"func": true, "set": true, "const": true, "then": true,
	"loop": true, "from": true, "to": true, "step": true,
	"do": true, "match": true, "case": true, "default": true,
	"break": true, "repeat": true, "input": true, "log": true,
	"logln": true, "skip": true, "include": true,
}

// Token is a single lexeme/kind pair with its source position.
type Token struct {
	Lexeme string
	Kind   Kind
	Line   int
	Column int
}

// New builds a Token with no source position (Line and Column are 0).
// The lexer itself always uses NewAt, including for re-lexed
// interpolation fragments, whose positions are relative to the fragment.
func New(kind Kind, lexeme string) Token {
	return Token{Lexeme: lexeme, Kind: kind}
}

// NewAt builds a Token with an explicit source position.
func NewAt(kind Kind, lexeme string, line, column int) Token {
	return Token{Lexeme: lexeme, Kind: kind, Line: line, Column: column}
}

// Is reports whether the token's lexeme or kind matches expected, the
// same dual lexeme-or-kind comparison the parser's match() uses
// throughout (spec.md §4.2).
func (t Token) Is(expected string) bool {
	return t.Lexeme == expected || string(t.Kind) == expected
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}
