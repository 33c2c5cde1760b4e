/*
File    : pym/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-kapoor/pym/token"
)

type tokenCase struct {
	Input  string
	Tokens []token.Token
}

func TestLexer_ConcreteScenarios(t *testing.T) {
	tests := []tokenCase{
		{
			Input: "x = 42\n",
			Tokens: []token.Token{
				token.NewId("x"),
				token.NewChar('='),
				token.NewNumber(42),
				token.New(token.Newline),
				token.New(token.Eof),
			},
		},
		{
			Input: "42 15 -53",
			Tokens: []token.Token{
				token.NewNumber(42),
				token.NewNumber(15),
				token.NewChar('-'),
				token.NewNumber(53),
				token.New(token.Newline),
				token.New(token.Eof),
			},
		},
		{
			Input: "+-*/= > < != == <> <= >=",
			Tokens: []token.Token{
				token.NewChar('+'),
				token.NewChar('-'),
				token.NewChar('*'),
				token.NewChar('/'),
				token.NewChar('='),
				token.NewChar('>'),
				token.NewChar('<'),
				token.New(token.NotEq),
				token.New(token.Eq),
				token.NewChar('<'),
				token.NewChar('>'),
				token.New(token.LessOrEq),
				token.New(token.GreaterOrEq),
				token.New(token.Newline),
				token.New(token.Eof),
			},
		},
	}

	for _, tc := range tests {
		lex, err := New(tc.Input)
		require.NoError(t, err, tc.Input)
		assertTokens(t, tc.Input, lex, tc.Tokens)
	}
}

func TestLexer_IndentedBlock(t *testing.T) {
	src := "no_indent\n  indent_one\n    indent_two\nno_indent\n"
	lex, err := New(src)
	require.NoError(t, err)

	want := []token.Token{
		token.NewId("no_indent"),
		token.New(token.Newline),
		token.New(token.Indent),
		token.NewId("indent_one"),
		token.New(token.Newline),
		token.New(token.Indent),
		token.NewId("indent_two"),
		token.New(token.Newline),
		token.New(token.Dedent),
		token.New(token.Dedent),
		token.NewId("no_indent"),
		token.New(token.Newline),
		token.New(token.Eof),
	}
	assertTokens(t, src, lex, want)
}

func TestLexer_BlankAndCommentLinesDoNotEmitMarkers(t *testing.T) {
	src := "a\n\n   # a comment\nb\n"
	lex, err := New(src)
	require.NoError(t, err)

	want := []token.Token{
		token.NewId("a"),
		token.New(token.Newline),
		token.NewId("b"),
		token.New(token.Newline),
		token.New(token.Eof),
	}
	assertTokens(t, src, lex, want)
}

func TestLexer_OddIndentationIsSkippedLeniently(t *testing.T) {
	src := "a\n   b\n"
	lex, err := New(src)
	require.NoError(t, err)

	want := []token.Token{
		token.NewId("a"),
		token.New(token.Newline),
		token.NewId("b"),
		token.New(token.Newline),
		token.New(token.Eof),
	}
	assertTokens(t, src, lex, want)
}

func TestLexer_StringEscapes(t *testing.T) {
	lex, err := New(`"a\nb\tc\"d\'e\\f"` + "\n")
	require.NoError(t, err)
	assert.Equal(t, token.NewString("a\nb\tc\"d'e\\f"), lex.CurrentToken())
}

func TestLexer_StringInvalidEscapeIsError(t *testing.T) {
	_, err := New(`"bad \q escape"` + "\n")
	assert.Error(t, err)
}

func TestLexer_UnterminatedStringIsError(t *testing.T) {
	_, err := New(`"never closes` + "\n")
	assert.Error(t, err)
}

func TestLexer_NextTokenPastEndYieldsEofIndefinitely(t *testing.T) {
	lex, err := New("x\n")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		tok := lex.NextToken()
		if i >= 2 {
			assert.Equal(t, token.Eof, tok.Kind)
		}
	}
}

func TestLexer_IndentDedentBalancedAtEof(t *testing.T) {
	src := "a\n  b\n    c\n"
	lex, err := New(src)
	require.NoError(t, err)

	indents, dedents := 0, 0
	for tok := lex.CurrentToken(); tok.Kind != token.Eof; tok = lex.NextToken() {
		switch tok.Kind {
		case token.Indent:
			indents++
		case token.Dedent:
			dedents++
		}
	}
	assert.Equal(t, indents, dedents)
}

func assertTokens(t *testing.T, name string, lex *Lexer, want []token.Token) {
	t.Helper()
	got := lex.Tokens()
	require.Len(t, got, len(want), name)
	for i, w := range want {
		assert.Truef(t, got[i].Equal(w), "%s: token %d: want %s got %s", name, i, w, got[i])
	}
}
