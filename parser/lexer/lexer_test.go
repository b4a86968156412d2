package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minlisp/minlisp/parser/lexer"
	"github.com/minlisp/minlisp/parser/token"
)

type tok struct {
	typ  token.Type
	text string
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		src  string
		want []tok
	}{
		{"", []tok{{token.EOF, ""}}},
		{"   \t\n", []tok{{token.EOF, ""}}},
		{"42", []tok{{token.NUMBER, "42"}, {token.EOF, ""}}},
		{"2.5", []tok{{token.NUMBER, "2.5"}, {token.EOF, ""}}},
		{"-3", []tok{{token.NUMBER, "-3"}, {token.EOF, ""}}},
		// decimal points are consumed greedily; 1.2.3 fails at parse time,
		// not scan time.
		{"1.2.3", []tok{{token.NUMBER, "1.2.3"}, {token.EOF, ""}}},
		// a '-' not immediately followed by a digit is a symbol
		{"-", []tok{{token.SYMBOL, "-"}, {token.EOF, ""}}},
		{"- 3", []tok{{token.SYMBOL, "-"}, {token.NUMBER, "3"}, {token.EOF, ""}}},
		{"-abc", []tok{{token.SYMBOL, "-abc"}, {token.EOF, ""}}},
		{"abc1+", []tok{{token.SYMBOL, "abc1+"}, {token.EOF, ""}}},
		{"<=", []tok{{token.SYMBOL, "<="}, {token.EOF, ""}}},
		{"()", []tok{{token.PAREN_L, "("}, {token.PAREN_R, ")"}, {token.EOF, ""}}},
		{"(+ 1 2.5 -3 abc -)", []tok{
			{token.PAREN_L, "("},
			{token.SYMBOL, "+"},
			{token.NUMBER, "1"},
			{token.NUMBER, "2.5"},
			{token.NUMBER, "-3"},
			{token.SYMBOL, "abc"},
			{token.SYMBOL, "-"},
			{token.PAREN_R, ")"},
			{token.EOF, ""},
		}},
		// numbers terminate at the first rune that is neither a digit nor a
		// decimal point
		{"12abc", []tok{{token.NUMBER, "12"}, {token.SYMBOL, "abc"}, {token.EOF, ""}}},
	}
	for _, test := range tests {
		toks, err := lexer.Tokenize("test", test.src)
		require.NoError(t, err, "source: %q", test.src)
		got := make([]tok, len(toks))
		for i, tk := range toks {
			got[i] = tok{tk.Type, tk.Text}
		}
		assert.Equal(t, test.want, got, "source: %q", test.src)
	}
}

func TestTokenizeError(t *testing.T) {
	tests := []struct {
		src string
		msg string
	}{
		{"#", `test:1: unexpected character: '#'`},
		{"(a , b)", `test:1: unexpected character: ','`},
		{`(+ 1 "a")`, `test:1: unexpected character: '"'`},
	}
	for _, test := range tests {
		toks, err := lexer.Tokenize("test", test.src)
		require.Error(t, err, "source: %q", test.src)
		assert.Equal(t, test.msg, err.Error(), "source: %q", test.src)
		// a failed pass never yields a partial token sequence
		assert.Nil(t, toks, "source: %q", test.src)
		// the failure's location is carried structurally, not just in the
		// message text
		serr, ok := err.(*lexer.Error)
		require.True(t, ok, "source: %q", test.src)
		assert.Equal(t, 1, serr.Source.Line, "source: %q", test.src)
	}
}

func TestTokenizeLocations(t *testing.T) {
	toks, err := lexer.Tokenize("test", "(\n  foo\n)")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Source.Line)
	assert.Equal(t, 2, toks[1].Source.Line)
	assert.Equal(t, 3, toks[2].Source.Line)
}
