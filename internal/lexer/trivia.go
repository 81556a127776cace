package lexer

import (
	"unicode"

	"newt/internal/diag"
)

// skipTrivia пропускает пробелы и комментарии [% ... %] перед значимым токеном.
// Комментарии вкладываются: каждому '[%' нужен свой '%]'.
func (lx *Lexer) skipTrivia() error {
	for !lx.cursor.EOF() {
		r, _ := lx.peekRune()
		if unicode.IsSpace(r) {
			lx.bumpRune()
			continue
		}
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '[' && b1 == '%' {
			if err := lx.skipComment(); err != nil {
				return err
			}
			continue
		}
		return nil
	}
	return nil
}

func (lx *Lexer) skipComment() error {
	open := lx.cursor.Mark()
	lx.cursor.Eat2('[', '%')
	openSpan := lx.cursor.SpanFrom(open)

	depth := 1
	for depth > 0 {
		switch {
		case lx.cursor.EOF():
			return lx.fail(diag.LexUnterminatedBlockComment, openSpan, ErrUnterminatedComment,
				"'[%' is never closed")
		case lx.cursor.Eat2('[', '%'):
			depth++
		case lx.cursor.Eat2('%', ']'):
			depth--
		default:
			lx.cursor.Bump()
		}
	}
	return nil
}
