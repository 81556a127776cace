// Package parser builds an ast.File from the token stream:
//
//	file := item* EOF
//	item := 'extern' 'func' decl ';' | 'func' decl '{' expr '}'
//	decl := Ident '(' ')' '->' type
//	type := Ident
//	expr := IntLit | Ident | StringLit
package parser

import (
	"errors"
	"fmt"

	"newt/internal/ast"
	"newt/internal/diag"
	"newt/internal/lexer"
	"newt/internal/session"
	"newt/internal/source"
	"newt/internal/token"
)

type Options struct {
	Reporter  diag.Reporter
	MaxErrors int // 0 = без лимита
}

// Error is a syntax error.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Span, e.Msg) }

// ErrTooManyErrors stops parsing once Options.MaxErrors is reached.
var ErrTooManyErrors = errors.New("too many errors")

// Parser: состояние парсера на один файл. Держит один токен lookahead.
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	look     token.Token
	hasLook  bool
	lastSpan source.Span // span последнего съеденного токена
	errs     []error
}

// ParseFile parses one file. The returned tree holds every item that parsed
// cleanly; the error joins every lexical and syntax error encountered.
func ParseFile(file *source.File, cx *session.Context, opts Options) (*ast.File, error) {
	p := &Parser{
		lx:   lexer.New(file, cx, lexer.Options{Reporter: opts.Reporter}),
		opts: opts,
	}
	out := &ast.File{Source: file.ID}
	startSpan := p.peek().Span
	for !p.at(token.EOF) && !p.enough() {
		if fn, ok := p.parseItem(); ok {
			out.Items = append(out.Items, fn)
			continue
		}
		p.resyncTop()
	}
	out.Span = startSpan.Cover(p.peek().Span)
	if p.enough() {
		p.errs = append(p.errs, ErrTooManyErrors)
	}
	return out, errors.Join(p.errs...)
}

func (p *Parser) enough() bool {
	return p.opts.MaxErrors > 0 && len(p.errs) >= p.opts.MaxErrors
}

// peek pulls the next significant token. Lexical errors are recorded (the
// lexer has already reported them) and the Invalid token is handed on.
func (p *Parser) peek() token.Token {
	if !p.hasLook {
		tok, err := p.lx.Next()
		if err != nil {
			p.errs = append(p.errs, err)
		}
		p.look, p.hasLook = tok, true
	}
	return p.look
}

func (p *Parser) at(k token.Kind) bool { return p.peek().Kind == k }

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.peek()
	p.hasLook = false
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// expect: ожидаем конкретный токен. Если нет, репортим и возвращаем (tok,false).
func (p *Parser) expect(k token.Kind, code diag.Code, what string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errorAtPeek(code, "expected "+what)
	return p.peek(), false
}

// errorAtPeek reports a syntax error at the lookahead. Invalid tokens were
// already reported by the lexer, so they only stop the item.
func (p *Parser) errorAtPeek(code diag.Code, msg string) {
	tok := p.peek()
	if tok.Kind == token.Invalid {
		return
	}
	sp := tok.Span
	if tok.Kind == token.EOF && p.lastSpan.End > 0 {
		sp = source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
		msg += ", found end of file"
	} else {
		msg += ", found " + describe(tok)
	}
	p.errs = append(p.errs, &Error{Code: code, Span: sp, Msg: msg})
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	}
}

// resyncTop skips to the next 'func' or 'extern' so one broken item does
// not hide the rest of the file.
func (p *Parser) resyncTop() {
	if p.at(token.EOF) {
		return
	}
	p.advance()
	for !p.at(token.EOF) && !p.at(token.KwFunc) && !p.at(token.KwExtern) {
		p.advance()
	}
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.Ident, token.Operator, token.IntLit:
		return fmt.Sprintf("%q", tok.Text())
	case token.StringLit:
		return "string literal"
	case token.EOF:
		return "end of file"
	}
	if s, ok := tok.Kind.Spelling(); ok {
		return "'" + s + "'"
	}
	return tok.Kind.String()
}
