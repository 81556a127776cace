package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// IntLit represents an unsigned integer literal.
	IntLit
	// StringLit represents a string literal, plain or native.
	StringLit

	// Ident represents an identifier token.
	Ident
	// Operator represents any interned operator spelling other than '->'.
	Operator

	// KwFunc represents the 'func' keyword.
	KwFunc // func
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwUnderscore represents the '_' placeholder.
	KwUnderscore // _

	// Arrow represents the arrow operator token.
	Arrow // ->
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	IntLit:       "IntLit",
	StringLit:    "StringLit",
	Ident:        "Ident",
	Operator:     "Operator",
	KwFunc:       "KwFunc",
	KwExtern:     "KwExtern",
	KwUnderscore: "KwUnderscore",
	Arrow:        "Arrow",
	Colon:        "Colon",
	Semicolon:    "Semicolon",
	LParen:       "LParen",
	RParen:       "RParen",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

var punctSpelling = map[Kind]string{
	KwFunc:       "func",
	KwExtern:     "extern",
	KwUnderscore: "_",
	Arrow:        "->",
	Colon:        ":",
	Semicolon:    ";",
	LParen:       "(",
	RParen:       ")",
	LBrace:       "{",
	RBrace:       "}",
}

// Spelling returns the fixed source spelling of keyword and punctuation kinds.
func (k Kind) Spelling() (string, bool) {
	s, ok := punctSpelling[k]
	return s, ok
}

// StringKind tags a string literal.
type StringKind uint8

const (
	// StringPlain is an unprefixed string literal.
	StringPlain StringKind = iota
	// StringNative is a C-interop string literal (prefix c or C).
	StringNative
)

func (s StringKind) String() string {
	switch s {
	case StringPlain:
		return "plain"
	case StringNative:
		return "native"
	}
	return fmt.Sprintf("StringKind(%d)", s)
}
