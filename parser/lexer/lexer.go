package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/minlisp/minlisp/parser/token"
)

// symbolRunes are the operator runes that may start or continue a symbol.
// This is also how the subtraction operator gets its name: a '-' that is not
// immediately followed by a digit lexes as (part of) a symbol.
const symbolRunes = "+-*/%<>=!"

// Error is a scan failure and the source location it occurred at.
type Error struct {
	Source *token.Location
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	readErr error
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// Tokenize scans the complete source text src and returns its token sequence,
// terminated by an EOF token.  If any rune fails to scan Tokenize returns an
// error and no tokens -- a failed pass never yields a partial sequence.
func Tokenize(name string, src string) ([]*token.Token, error) {
	lex := New(token.NewScanner(name, src))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		switch tok.Type {
		case token.ERROR, token.INVALID:
			return nil, &Error{Source: tok.Source, Msg: tok.Text}
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readErr = lex.skipWhitespace()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	if err := lex.readChar(); err != nil {
		return lex.emitError(err, true)
	}
	switch {
	case lex.ch == '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case lex.ch == ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case isDigit(lex.ch):
		return lex.readNumber()
	case lex.ch == '-' && isDigit(lex.peekRune()):
		// A '-' immediately followed by a digit signs a number literal.
		return lex.readNumber()
	case isSymbolStart(lex.ch):
		if err := lex.readSymbol(); err != nil {
			return lex.emitError(err, false)
		}
		return lex.scanner.EmitToken(token.SYMBOL)
	default:
		return lex.errorf("unexpected character: %q", lex.ch)
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	return lex.emitError(fmt.Errorf(format, v...), false)
}

func (lex *Lexer) readSymbol() error {
	for isSymbolRune(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	return nil
}

// readNumber consumes digits and decimal points greedily.  The returned text
// may not actually be a usable number (e.g. repeated decimal points) but we
// can find that out at parse time -- not scan time.
func (lex *Lexer) readNumber() *token.Token {
	for {
		c := lex.peekRune()
		if !isDigit(c) && c != '.' {
			return lex.scanner.EmitToken(token.NUMBER)
		}
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
	}
}

func (lex *Lexer) skipWhitespace() error {
	for unicode.IsSpace(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isSymbolStart(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(symbolRunes, c)
}

func isSymbolRune(c rune) bool {
	return unicode.IsLetter(c) || isDigit(c) || strings.ContainsRune(symbolRunes, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
