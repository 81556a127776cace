package lexer

import (
	"fmt"
	"math/bits"

	"newt/internal/diag"
	"newt/internal/token"
)

// scanNumber:
//   - "0" + b/o/d/x (любой регистр) переключает основание, дальше нужна хотя бы одна цифра;
//   - иначе десятичное число, "07" == 7;
//   - цифра вне основания -> InvalidNumericLiteral;
//   - любой другой символ продолжения идентификатора вплотную -> AmbiguousNumeral.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()
	first := lx.cursor.Bump()

	var (
		base     uint64 = 10
		value    uint64
		overflow bool
	)
	if b := lx.cursor.Peek(); first == '0' {
		if nb, ok := baseOfLetter(b); ok {
			lx.cursor.Bump()
			base = nb
			if d := digitValue(lx.cursor.Peek()); d < 0 || uint64(d) >= base {
				lx.skipIdentContinue()
				err := lx.fail(diag.LexBadNumber, lx.cursor.SpanFrom(start), ErrInvalidNumericLiteral,
					fmt.Sprintf("expected a base-%d digit after %q", base, lx.text(start)[:2]))
				return lx.invalid(err), err
			}
		}
	} else {
		value = uint64(first - '0')
	}

	for {
		d := digitValue(lx.cursor.Peek())
		if d < 0 || uint64(d) >= base {
			break
		}
		lx.cursor.Bump()
		hi, lo := bits.Mul64(value, base)
		sum, carry := bits.Add64(lo, uint64(d), 0)
		if hi != 0 || carry != 0 {
			overflow = true
		}
		value = sum
	}

	if r, sz := lx.peekRune(); sz > 0 && isIdentContinueRune(r) {
		bad := lx.cursor.Peek()
		lx.skipIdentContinue()
		sp := lx.cursor.SpanFrom(start)
		if isDec(bad) {
			err := lx.fail(diag.LexBadNumber, sp, ErrInvalidNumericLiteral,
				fmt.Sprintf("digit %q is not valid in base %d", bad, base))
			return lx.invalid(err), err
		}
		err := lx.fail(diag.LexAmbiguousNumeral, sp, ErrAmbiguousNumeral,
			"add whitespace between the number and the identifier")
		return lx.invalid(err), err
	}

	sp := lx.cursor.SpanFrom(start)
	if overflow {
		err := lx.fail(diag.LexBadNumber, sp, ErrInvalidNumericLiteral, "value does not fit in 64 bits")
		return lx.invalid(err), err
	}
	return token.Token{Kind: token.IntLit, Span: sp, Int: value}, nil
}
