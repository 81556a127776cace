package token

import (
	"fmt"
	"strconv"

	"newt/internal/session"
	"newt/internal/source"
)

// Token is a single lexeme. Which payload field is set depends on Kind:
// Int for IntLit, Name for Ident/Operator, Lit and Str for StringLit.
type Token struct {
	Kind Kind
	Span source.Span
	Int  uint64
	Name session.Ident
	Str  StringKind
	Lit  *session.Literal
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	return t.Kind == IntLit || t.Kind == StringLit
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFunc, KwExtern, KwUnderscore:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is fixed punctuation or the arrow.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Arrow, Colon, Semicolon, LParen, RParen, LBrace, RBrace:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Text returns the canonical spelling of the token, or the literal text.
func (t Token) Text() string {
	switch t.Kind {
	case Ident, Operator:
		if t.Name.IsValid() {
			return t.Name.Value().String()
		}
		return ""
	case IntLit:
		return strconv.FormatUint(t.Int, 10)
	case StringLit:
		if t.Lit != nil {
			return t.Lit.Text
		}
		return ""
	}
	s, _ := t.Kind.Spelling()
	return s
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, Operator:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text())
	case IntLit:
		return fmt.Sprintf("IntLit(%d)", t.Int)
	case StringLit:
		if t.Str == StringNative {
			return fmt.Sprintf("StringLit(c%q)", t.Text())
		}
		return fmt.Sprintf("StringLit(%q)", t.Text())
	}
	return t.Kind.String()
}
