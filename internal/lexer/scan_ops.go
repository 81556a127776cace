package lexer

import (
	"newt/internal/diag"
	"newt/internal/token"
)

// scanOperator жадно собирает оператор: старт '-', продолжение '-' или '>'.
// "->" выделяется в Arrow, остальные написания интернируются как Operator.
func (lx *Lexer) scanOperator() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isOperatorContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(start)
	if text == "->" {
		return token.Token{Kind: token.Arrow, Span: sp}, nil
	}
	name, err := lx.cx.Identifier(text)
	if err != nil {
		err = lx.fail(diag.LexTokenTooLong, sp, err, "")
		return lx.invalid(err), err
	}
	return token.Token{Kind: token.Operator, Span: sp, Name: name}, nil
}
