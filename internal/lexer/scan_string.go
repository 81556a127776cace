package lexer

import (
	"newt/internal/diag"
	"newt/internal/token"
)

// scanString reads a literal body; the cursor is just past the opening quote
// and start marks the prefix or the quote. Newlines are allowed, escapes are not.
func (lx *Lexer) scanString(start Mark, kind token.StringKind) (token.Token, error) {
	body := lx.cursor.Mark()
	for {
		if lx.cursor.EOF() {
			err := lx.fail(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), ErrUnterminatedString,
				"missing closing '\"'")
			return lx.invalid(err), err
		}
		at := lx.cursor.Mark()
		switch lx.cursor.Bump() {
		case '"':
			text := string(lx.file.Content[uint32(body):uint32(at)])
			sp := lx.cursor.SpanFrom(start)
			lit := lx.cx.StringLiteral(text, sp)
			return token.Token{Kind: token.StringLit, Span: sp, Str: kind, Lit: lit}, nil
		case '\\':
			escSpan := lx.cursor.SpanFrom(at)
			lx.skipStringBody()
			err := lx.fail(diag.LexUnsupportedEscape, escSpan, ErrUnsupportedEscape, "")
			return lx.invalid(err), err
		}
	}
}

// skipStringBody consumes through the next '"' or to EOF.
func (lx *Lexer) skipStringBody() {
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '"' {
			return
		}
	}
}
