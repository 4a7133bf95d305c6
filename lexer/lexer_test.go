package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axion-lang/axion/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func lexemes(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Lexeme
	}
	return out
}

func TestTokenize_Numbers(t *testing.T) {
	toks, err := Tokenize("42 3.14 0")
	assert.NoError(t, err)
	assert.Equal(t, []string{"42", "3.14", "0", ""}, lexemes(toks))
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, token.Number, toks[1].Kind)
	assert.Equal(t, token.EOF, toks[3].Kind)
}

func TestTokenize_KeywordsVsIdentifiers(t *testing.T) {
	toks, err := Tokenize("set x = func;")
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.Keyword, token.Identifier, token.Operator, token.Keyword, token.Punctuation, token.EOF,
	}, kinds(toks))
}

func TestTokenize_StringPreservesQuotes(t *testing.T) {
	toks, err := Tokenize(`"hi {name}" 'lo'`)
	assert.NoError(t, err)
	assert.Equal(t, `"hi {name}"`, toks[0].Lexeme)
	assert.Equal(t, `'lo'`, toks[1].Lexeme)
	assert.Equal(t, token.String, toks[0].Kind)
}

func TestTokenize_MultiCharOperators(t *testing.T) {
	toks, err := Tokenize("== != <= >= << >> += -= *= /= %= ->")
	assert.NoError(t, err)
	want := []string{"==", "!=", "<=", ">=", "<<", ">>", "+=", "-=", "*=", "/=", "%=", "->", ""}
	assert.Equal(t, want, lexemes(toks))
	for _, tok := range toks[:len(toks)-1] {
		assert.Equal(t, token.Operator, tok.Kind)
	}
}

func TestTokenize_WordOperators(t *testing.T) {
	toks, err := Tokenize("both any invert")
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{token.Operator, token.Operator, token.Operator, token.EOF}, kinds(toks))
}

func TestTokenize_Punctuation(t *testing.T) {
	toks, err := Tokenize(". , ; ( ) { } [ ]")
	assert.NoError(t, err)
	for _, tok := range toks[:len(toks)-1] {
		assert.Equal(t, token.Punctuation, tok.Kind)
	}
}

func TestTokenize_UnrecognizedCharacterErrors(t *testing.T) {
	_, err := Tokenize("set x = 1 @ 2;")
	assert.Error(t, err)
	var lexErr *Error
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, byte('@'), lexErr.Char)
}

func TestTokenize_UnterminatedStringErrors(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	assert.Error(t, err)
}

func TestTokenize_LineColumnTracking(t *testing.T) {
	toks, err := Tokenize("set x\n= 1;")
	assert.NoError(t, err)
	// '=' is on the second line.
	var eq token.Token
	for _, tk := range toks {
		if tk.Lexeme == "=" {
			eq = tk
		}
	}
	assert.Equal(t, 2, eq.Line)
}
