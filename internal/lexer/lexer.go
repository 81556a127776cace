// Package lexer turns source text into tokens, interning identifiers and
// operators through a session.Context as it goes.
package lexer

import (
	"errors"
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"

	"newt/internal/diag"
	"newt/internal/session"
	"newt/internal/source"
	"newt/internal/token"
)

type Lexer struct {
	file   *source.File
	cx     *session.Context
	cursor Cursor
	opts   Options
}

func New(file *source.File, cx *session.Context, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cx:     cx,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token. After EOF it keeps returning EOF.
//
// On error the returned token is Invalid and the cursor has already moved
// past the offending text, so the caller may keep pulling tokens.
func (lx *Lexer) Next() (token.Token, error) {
	if err := lx.skipTrivia(); err != nil {
		return lx.invalid(err), err
	}
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}, nil
	}

	start := lx.cursor.Mark()
	switch b := lx.cursor.Peek(); {
	case b == ':':
		return lx.punct(start, token.Colon), nil
	case b == ';':
		return lx.punct(start, token.Semicolon), nil
	case b == '(':
		return lx.punct(start, token.LParen), nil
	case b == ')':
		return lx.punct(start, token.RParen), nil
	case b == '{':
		return lx.punct(start, token.LBrace), nil
	case b == '}':
		return lx.punct(start, token.RBrace), nil
	case b == '"':
		lx.cursor.Bump()
		return lx.scanString(start, token.StringPlain)
	case isDec(b):
		return lx.scanNumber()
	case isOperatorStart(b):
		return lx.scanOperator()
	case b == '%':
		if _, b1, ok := lx.cursor.Peek2(); ok && b1 == ']' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			err := lx.fail(diag.LexUnknownChar, lx.cursor.SpanFrom(start), ErrUnrecognizedCharacter, "'%]' without matching '[%'")
			return lx.invalid(err), err
		}
	}

	if r, _ := lx.peekRune(); isIdentStartRune(r) {
		return lx.scanIdentOrKeyword()
	}

	r, sz := lx.peekRune()
	msg := quoteRune(r)
	if r == utf8.RuneError && sz == 1 {
		msg = fmt.Sprintf("invalid UTF-8 byte 0x%02X", lx.cursor.Peek())
	}
	lx.bumpRune()
	err := lx.fail(diag.LexUnknownChar, lx.cursor.SpanFrom(start), ErrUnrecognizedCharacter, msg)
	return lx.invalid(err), err
}

// All yields tokens up to and including EOF. Errors are yielded alongside
// Invalid tokens and scanning continues after them.
func (lx *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := lx.Next()
			if !yield(tok, err) || tok.Kind == token.EOF {
				return
			}
		}
	}
}

func (lx *Lexer) punct(start Mark, k token.Kind) token.Token {
	lx.cursor.Bump()
	return token.Token{Kind: k, Span: lx.cursor.SpanFrom(start)}
}

func (lx *Lexer) invalid(err error) token.Token {
	var e *Error
	if errors.As(err, &e) {
		return token.Token{Kind: token.Invalid, Span: e.Span}
	}
	return token.Token{Kind: token.Invalid, Span: lx.emptySpan()}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func quoteRune(r rune) string {
	if unicode.IsPrint(r) {
		return fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("U+%04X", r)
}
