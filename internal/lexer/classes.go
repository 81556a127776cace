package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Unicode XID classes (UAX #31): ID_Start/ID_Continue from the general
// categories minus Pattern_Syntax and Pattern_White_Space, minus the code
// points NFKC maps outside the class.
var (
	idStart = rangetable.Merge(
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
	)
	idContinue = rangetable.Merge(
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
	)

	// ID_Continue \ XID_Continue
	nfkcUnstable = rangetable.New(
		0x037A, 0x309B, 0x309C,
		0xFC5E, 0xFC5F, 0xFC60, 0xFC61, 0xFC62, 0xFC63,
		0xFDFA, 0xFDFB,
		0xFE70, 0xFE72, 0xFE74, 0xFE76, 0xFE78, 0xFE7A, 0xFE7C, 0xFE7E,
	)
	// ID_Start \ XID_Start сверх nfkcUnstable
	nfkcUnstableStart = rangetable.New(0x0E33, 0x0EB3, 0xFF9E, 0xFF9F)
)

func isXIDStart(r rune) bool {
	return unicode.Is(idStart, r) &&
		!unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space, nfkcUnstable, nfkcUnstableStart)
}

func isXIDContinue(r rune) bool {
	return unicode.Is(idContinue, r) &&
		!unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space, nfkcUnstable)
}

func isIdentStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	}
	return isXIDStart(r)
}

// '-' и '\” разрешены внутри идентификатора: kebab-case, prime-имена.
func isIdentContinueRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '_' || r == '-' || r == '\'' ||
			(r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	}
	return isXIDContinue(r)
}

func isOperatorStart(b byte) bool    { return b == '-' }
func isOperatorContinue(b byte) bool { return b == '-' || b == '>' }

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// digitValue returns the numeric value of b in base 36, or -1.
func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 10
	}
	return -1
}

func baseOfLetter(b byte) (uint64, bool) {
	switch b {
	case 'b', 'B':
		return 2, true
	case 'o', 'O':
		return 8, true
	case 'd', 'D':
		return 10, true
	case 'x', 'X':
		return 16, true
	}
	return 0, false
}
