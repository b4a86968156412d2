/*
Package parser provides the minlisp recursive descent parser.

	expr   := '(' <expr>* ')' | <number> | <symbol>
	number := '-'? /[0-9][0-9.]* /
	symbol := /[[:alpha:]+\-*\/%<>=!][[:alnum:]+\-*\/%<>=!]* /
*/
package parser

import (
	"io"
	"strconv"

	"github.com/minlisp/minlisp/lisp"
	"github.com/minlisp/minlisp/parser/lexer"
	"github.com/minlisp/minlisp/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader that parses complete source streams, for
// example files passed to the run command.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (_ *reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	toks, err := lexer.Tokenize(name, string(b))
	if err != nil {
		return nil, scanError(err)
	}
	return New(toks).ParseProgram()
}

// ParseLine tokenizes one line of source text and parses exactly one
// top-level expression from it.  Trailing tokens after the first complete
// expression are silently ignored -- only the first expression on a line is
// ever evaluated.
func ParseLine(name string, line string) (*lisp.LVal, error) {
	toks, err := lexer.Tokenize(name, line)
	if err != nil {
		return nil, scanError(err)
	}
	expr := New(toks).ParseExpression()
	if expr.Type == lisp.LError {
		return nil, lisp.GoError(expr)
	}
	return expr, nil
}

// scanError converts a lexer failure into a scan-error condition.  The
// failure's location is attached as the error's source so that scan and
// parse errors format alike.
func scanError(err error) error {
	serr, ok := err.(*lexer.Error)
	if !ok {
		return lisp.GoError(lisp.ErrorConditionf(lisp.ScanError, "%s", err))
	}
	lerr := lisp.ErrorConditionf(lisp.ScanError, "%s", serr.Msg)
	lerr.Source = serr.Source
	return lisp.GoError(lerr)
}

// Parser is a recursive descent parser with one token of lookahead.  It
// holds a complete token sequence and a cursor; each parse call consumes the
// tokens of one expression and advances the cursor past them.
type Parser struct {
	toks []*token.Token
	pos  int
}

// New initializes and returns a new Parser reading toks.  The sequence is
// expected to end with an EOF token, as produced by lexer.Tokenize.
func New(toks []*token.Token) *Parser {
	return &Parser{
		toks: toks,
	}
}

// ParseProgram parses every expression remaining in the token sequence.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for !p.expect(token.EOF) {
		expr := p.ParseExpression()
		if expr.Type == lisp.LError {
			return nil, lisp.GoError(expr)
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses one expression starting at the cursor.
func (p *Parser) ParseExpression() *lisp.LVal {
	switch p.PeekType() {
	case token.NUMBER:
		return p.ParseLiteralNumber()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.PAREN_L:
		return p.ParseList()
	default:
		p.ReadToken()
		return p.errorf(lisp.ParseError, "unexpected token: %s", p.Token().Type)
	}
}

// ParseLiteralNumber parses one number literal starting at the cursor.  The
// cursor must be at a NUMBER token; ParseExpression guarantees this, callers
// invoking ParseLiteralNumber directly must check PeekType themselves.
func (p *Parser) ParseLiteralNumber() *lisp.LVal {
	if !p.expect(token.NUMBER) {
		return p.errorf(lisp.ParseError, "expected a number literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// The lexer consumes decimal points greedily so malformed literals
		// like 1.2.3 surface here.
		return p.errorf(lisp.ParseError, "invalid number literal: %v", text)
	}
	return p.Number(x)
}

func (p *Parser) ParseSymbol() *lisp.LVal {
	if !p.expect(token.SYMBOL) {
		return p.errorf(lisp.ParseError, "expected a symbol: %v", p.PeekType())
	}
	return p.Symbol(p.Token().Text)
}

func (p *Parser) ParseList() *lisp.LVal {
	if !p.expect(token.PAREN_L) {
		return p.errorf(lisp.ParseError, "invalid expression: %v", p.PeekType())
	}
	expr := p.tokenLVal(lisp.SExpr(nil))
	for {
		if p.expect(token.EOF) {
			return p.errorf(lisp.ParseError, "missing closing parenthesis")
		}
		if p.expect(token.PAREN_R) {
			break
		}
		x := p.ParseExpression()
		if x.Type == lisp.LError {
			return x
		}
		expr.Cells = append(expr.Cells, x)
	}
	return expr
}

// ReadToken advances the cursor and returns the consumed token.
func (p *Parser) ReadToken() *token.Token {
	tok := p.Peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

// Token returns the most recently consumed token.
func (p *Parser) Token() *token.Token {
	if p.pos == 0 {
		return p.Peek()
	}
	return p.toks[p.pos-1]
}

// Peek returns the token at the cursor without consuming it.
func (p *Parser) Peek() *token.Token {
	if p.pos >= len(p.toks) {
		// The trailing EOF token is never consumed past.
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *Parser) PeekType() token.Type {
	return p.Peek().Type
}

func (p *Parser) Number(x float64) *lisp.LVal {
	return p.tokenLVal(lisp.Number(x))
}

func (p *Parser) Symbol(sym string) *lisp.LVal {
	return p.tokenLVal(lisp.Symbol(sym))
}

func (p *Parser) tokenLVal(v *lisp.LVal) *lisp.LVal {
	v.Source = p.Token().Source
	return v
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.Peek().Type
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(condition string, format string, v ...interface{}) *lisp.LVal {
	err := lisp.ErrorConditionf(condition, format, v...)
	err.Source = p.Token().Source
	return err
}
