package token

var keywords = map[string]Kind{
	"_":      KwUnderscore,
	"func":   KwFunc,
	"extern": KwExtern,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Сравнение идёт по каноническому (NFC) написанию, регистр важен.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupStringPrefix maps a string-literal prefix to its kind.
func LookupStringPrefix(prefix string) (StringKind, bool) {
	switch prefix {
	case "c", "C":
		return StringNative, true
	}
	return StringPlain, false
}
