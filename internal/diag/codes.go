package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005
	LexAmbiguousNumeral         Code = 1006
	LexBadStringPrefix          Code = 1007
	LexUnsupportedEscape        Code = 1008
	LexBadIdentifier            Code = 1009

	// Парсерные
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectIdentifier  Code = 2002
	SynExpectSemicolon   Code = 2003
	SynExpectArrow       Code = 2004
	SynExpectType        Code = 2005
	SynExpectBody        Code = 2006
	SynExpectExpression  Code = 2007
	SynUnclosedParen     Code = 2008
	SynUnclosedBrace     Code = 2009
	SynUnexpectedTopItem Code = 2010

	// Семантические
	SemaInfo              Code = 3000
	SemaUnknownType       Code = 3001
	SemaDuplicateFunction Code = 3002
	SemaUnknownFunction   Code = 3003
	SemaIntOutOfRange     Code = 3004
	SemaTypeMismatch      Code = 3005

	// I/O
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002

	// Проект
	ProjManifestInvalid  Code = 5001
	ProjManifestNotFound Code = 5002
	ProjEntryMissing     Code = 5003

	// Кодогенерация
	GenUnsupportedBody Code = 6001
	GenBadSymbol       Code = 6002
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unrecognized character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated comment",
	LexBadNumber:                "Invalid numeric literal",
	LexTokenTooLong:             "Token too long",
	LexAmbiguousNumeral:         "Numeral adjacent to identifier",
	LexBadStringPrefix:          "Unrecognized string prefix",
	LexUnsupportedEscape:        "Escape sequences are not supported",
	LexBadIdentifier:            "Invalid identifier",

	SynInfo:              "Syntax information",
	SynUnexpectedToken:   "Unexpected token",
	SynExpectIdentifier:  "Expected identifier",
	SynExpectSemicolon:   "Expected semicolon",
	SynExpectArrow:       "Expected '->'",
	SynExpectType:        "Expected type name",
	SynExpectBody:        "Expected function body",
	SynExpectExpression:  "Expected expression",
	SynUnclosedParen:     "Unclosed parenthesis",
	SynUnclosedBrace:     "Unclosed brace",
	SynUnexpectedTopItem: "Unexpected top-level item",

	SemaInfo:              "Semantic information",
	SemaUnknownType:       "Unknown type",
	SemaDuplicateFunction: "Duplicate function",
	SemaUnknownFunction:   "Unknown function",
	SemaIntOutOfRange:     "Integer literal out of range",
	SemaTypeMismatch:      "Type mismatch",

	IOLoadFileError: "Failed to load file",
	IOWriteError:    "Failed to write output",

	ProjManifestInvalid:  "Invalid project manifest",
	ProjManifestNotFound: "Project manifest not found",
	ProjEntryMissing:     "Entry file missing",

	GenUnsupportedBody: "Unsupported function body",
	GenBadSymbol:       "Invalid symbol name",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("GEN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
