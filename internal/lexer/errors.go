package lexer

import (
	"errors"
	"fmt"

	"newt/internal/diag"
	"newt/internal/source"
)

// Lexical error classes. Every error returned by Next wraps exactly one of
// these (or a canon error for identifiers that cannot be interned).
var (
	ErrInvalidNumericLiteral    = errors.New("invalid numeric literal")
	ErrUnterminatedString       = errors.New("unterminated string literal")
	ErrUnterminatedComment      = errors.New("unterminated comment")
	ErrUnrecognizedCharacter    = errors.New("unrecognized character")
	ErrAmbiguousNumeral         = errors.New("numeral immediately followed by identifier character")
	ErrUnrecognizedStringPrefix = errors.New("unrecognized string prefix")
	ErrUnsupportedEscape        = errors.New("escape sequences are not supported")
)

// Error is a lexical error with the span of the offending text.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Span, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Span, e.Err, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }
