package lexer

import (
	"errors"
	"fmt"

	"newt/internal/canon"
	"newt/internal/diag"
	"newt/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор, интернирует его и уже по
// каноническому написанию распознаёт ключевые слова. Идентификатор, сразу за
// которым идёт '"', считается префиксом строки.
func (lx *Lexer) scanIdentOrKeyword() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.bumpRune()
	lx.skipIdentContinue()

	if lx.cursor.Peek() == '"' {
		prefix := lx.text(start)
		kind, ok := token.LookupStringPrefix(prefix)
		if !ok {
			prefixSpan := lx.cursor.SpanFrom(start)
			lx.cursor.Bump()
			lx.skipStringBody()
			err := lx.fail(diag.LexBadStringPrefix, prefixSpan, ErrUnrecognizedStringPrefix,
				fmt.Sprintf("%q (expected c or C)", prefix))
			return lx.invalid(err), err
		}
		lx.cursor.Bump()
		return lx.scanString(start, kind)
	}

	sp := lx.cursor.SpanFrom(start)
	name, err := lx.cx.Identifier(lx.text(start))
	if err != nil {
		code := diag.LexBadIdentifier
		if errors.Is(err, canon.ErrInputTooLarge) {
			code = diag.LexTokenTooLong
		}
		err = lx.fail(code, sp, err, "")
		return lx.invalid(err), err
	}
	if k, ok := token.LookupKeyword(name.Value().String()); ok {
		return token.Token{Kind: k, Span: sp}, nil
	}
	return token.Token{Kind: token.Ident, Span: sp, Name: name}, nil
}
