package lexer_test

import (
	"errors"
	"testing"

	"newt/internal/diag"
	"newt/internal/lexer"
	"newt/internal/session"
	"newt/internal/source"
	"newt/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *session.Context, *diag.Bag, *source.File) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.nt", []byte(input)))
	cx := session.New()
	bag := diag.NewBag(0)
	lx := lexer.New(file, cx, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, cx, bag, file
}

// collectAllTokens собирает все токены до EOF, падая на первой ошибке
func collectAllTokens(t *testing.T, input string) []token.Token {
	t.Helper()
	lx, _, _, _ := makeTestLexer(input)
	var toks []token.Token
	for tok, err := range lx.All() {
		if err != nil {
			t.Fatalf("lex %q: unexpected error %v", input, err)
		}
		toks = append(toks, tok)
	}
	return toks
}

func render(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, tk := range toks {
		out[i] = tk.String()
	}
	return out
}

func expectTokens(t *testing.T, input string, want ...string) {
	t.Helper()
	got := render(collectAllTokens(t, input))
	if len(got) != len(want) {
		t.Fatalf("lex %q:\n got %v\nwant %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lex %q: token %d = %s, want %s\nall: %v", input, i, got[i], want[i], got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	expectTokens(t, "func hello() -> Int32 { 0 }",
		"KwFunc", `Ident("hello")`, "LParen", "RParen", "Arrow",
		`Ident("Int32")`, "LBrace", "IntLit(0)", "RBrace", "EOF")
}

func TestExternDeclaration(t *testing.T) {
	expectTokens(t, "extern func puts() -> Int32;\n_ : _x",
		"KwExtern", "KwFunc", `Ident("puts")`, "LParen", "RParen", "Arrow",
		`Ident("Int32")`, "Semicolon", "KwUnderscore", "Colon", `Ident("_x")`, "EOF")
}

func TestNumericRadix(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"7", 7},
		{"07", 7},
		{"0x1A", 26},
		{"0X1a", 26},
		{"0b101", 5},
		{"0B0", 0},
		{"0o17", 15},
		{"0d99", 99},
		{"0D0099", 99},
		{"0xFFFFFFFFFFFFFFFF", 1<<64 - 1},
		{"18446744073709551615", 1<<64 - 1},
	}
	for _, tt := range tests {
		toks := collectAllTokens(t, tt.in)
		if len(toks) != 2 || toks[0].Kind != token.IntLit || toks[0].Int != tt.want {
			t.Errorf("lex %q = %v, want IntLit(%d)", tt.in, render(toks), tt.want)
		}
	}
}

func TestNestedComments(t *testing.T) {
	expectTokens(t, "[% outer [% inner %] still-outer %]X", `Ident("X")`, "EOF")
	expectTokens(t, "a[%%]b", `Ident("a")`, `Ident("b")`, "EOF")
	expectTokens(t, "[%[%[%%]%]%]", "EOF")
}

func TestIdentifiers(t *testing.T) {
	expectTokens(t, "kebab-case it's x1 _ __ привет",
		`Ident("kebab-case")`, `Ident("it's")`, `Ident("x1")`, "KwUnderscore",
		`Ident("__")`, `Ident("привет")`, "EOF")
}

func TestNFCIdentifiersShareHandles(t *testing.T) {
	lx, cx, _, _ := makeTestLexer("\u212B \u00C5 A\u030A")
	var names []session.Ident
	for tok, err := range lx.All() {
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind == token.Ident {
			names = append(names, tok.Name)
		}
	}
	if len(names) != 3 {
		t.Fatalf("got %d identifiers", len(names))
	}
	if names[0] != names[1] || names[1] != names[2] {
		t.Fatalf("NFC-equivalent identifiers must share a handle: %v", names)
	}
	if cx.Stats().Identifiers != 1 {
		t.Fatalf("identifier arena holds %d entries", cx.Stats().Identifiers)
	}
}

func TestOperators(t *testing.T) {
	expectTokens(t, "-- - -> ->> -->",
		`Operator("--")`, `Operator("-")`, "Arrow", `Operator("->>")`, `Operator("-->")`, "EOF")

	lx, _, _, _ := makeTestLexer("-- --")
	a, _ := lx.Next()
	b, _ := lx.Next()
	if a.Name != b.Name {
		t.Fatal("identical operator spellings must share a handle")
	}
}

func TestStrings(t *testing.T) {
	expectTokens(t, `"hi" c"native" C"x" ""`,
		`StringLit("hi")`, `StringLit(c"native")`, `StringLit(c"x")`, `StringLit("")`, "EOF")
	expectTokens(t, "\"two\nlines\"", `StringLit("two\nlines")`, "EOF")

	lx, cx, _, _ := makeTestLexer(`"same" "same"`)
	a, _ := lx.Next()
	b, _ := lx.Next()
	if a.Lit == b.Lit {
		t.Fatal("string literals must not be deduplicated")
	}
	if a.Lit.Span.Start != 0 || b.Lit.Span.Start != 7 {
		t.Fatalf("literal provenance: %v %v", a.Lit.Span, b.Lit.Span)
	}
	if cx.Stats().Literals != 2 {
		t.Fatalf("literal log holds %d", cx.Stats().Literals)
	}
}

func TestWhitespace(t *testing.T) {
	expectTokens(t, "\t\r\n\u00a0\u2003func\u3000;", "KwFunc", "Semicolon", "EOF")
	expectTokens(t, "", "EOF")
	expectTokens(t, "   \n\t", "EOF")
}

func TestEOFIsSticky(t *testing.T) {
	lx, _, _, _ := makeTestLexer("x")
	lx.Next()
	for range 3 {
		tok, err := lx.Next()
		if err != nil || tok.Kind != token.EOF {
			t.Fatalf("got %v, %v after EOF", tok, err)
		}
	}
}

func TestSpans(t *testing.T) {
	input := `extern  c"s" ->x-y 0x1F`
	lx, _, _, file := makeTestLexer(input)
	want := []string{"extern", `c"s"`, "->", "x-y", "0x1F", ""}
	for i := 0; ; i++ {
		tok, err := lx.Next()
		if err != nil {
			t.Fatal(err)
		}
		got := string(file.Content[tok.Span.Start:tok.Span.End])
		if got != want[i] {
			t.Fatalf("token %d (%v) spans %q, want %q", i, tok, got, want[i])
		}
		if tok.Kind == token.EOF {
			break
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
		code diag.Code
		span string
	}{
		{"unterminated string", `"abc`, lexer.ErrUnterminatedString, diag.LexUnterminatedString, `"abc`},
		{"ambiguous", "5x", lexer.ErrAmbiguousNumeral, diag.LexAmbiguousNumeral, "5x"},
		{"ambiguous dash", "5-3", lexer.ErrAmbiguousNumeral, diag.LexAmbiguousNumeral, "5-3"},
		{"ambiguous hex", "0x1G", lexer.ErrAmbiguousNumeral, diag.LexAmbiguousNumeral, "0x1G"},
		{"missing digits", "0x", lexer.ErrInvalidNumericLiteral, diag.LexBadNumber, "0x"},
		{"missing digits before ident", "0xg1", lexer.ErrInvalidNumericLiteral, diag.LexBadNumber, "0xg1"},
		{"bad binary digit", "0b102", lexer.ErrInvalidNumericLiteral, diag.LexBadNumber, "0b102"},
		{"bad octal digit", "0o8", lexer.ErrInvalidNumericLiteral, diag.LexBadNumber, "0o8"},
		{"overflow", "18446744073709551616", lexer.ErrInvalidNumericLiteral, diag.LexBadNumber, "18446744073709551616"},
		{"bad prefix", `x"hi"`, lexer.ErrUnrecognizedStringPrefix, diag.LexBadStringPrefix, "x"},
		{"escape", `"a\nb"`, lexer.ErrUnsupportedEscape, diag.LexUnsupportedEscape, `\`},
		{"open comment", "[% open", lexer.ErrUnterminatedComment, diag.LexUnterminatedBlockComment, "[%"},
		{"unbalanced comment", "[% a [% b %]", lexer.ErrUnterminatedComment, diag.LexUnterminatedBlockComment, "[%"},
		{"stray closer", "%]", lexer.ErrUnrecognizedCharacter, diag.LexUnknownChar, "%]"},
		{"stray bracket", "[", lexer.ErrUnrecognizedCharacter, diag.LexUnknownChar, "["},
		{"unknown char", "@", lexer.ErrUnrecognizedCharacter, diag.LexUnknownChar, "@"},
		{"greater", ">", lexer.ErrUnrecognizedCharacter, diag.LexUnknownChar, ">"},
		{"invalid utf8", "\xff", lexer.ErrUnrecognizedCharacter, diag.LexUnknownChar, "\xff"},
		{"not xid start", "\u037A", lexer.ErrUnrecognizedCharacter, diag.LexUnknownChar, "\u037A"},
		{"pattern syntax letter", "\u2E2F", lexer.ErrUnrecognizedCharacter, diag.LexUnknownChar, "\u2E2F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, _, bag, file := makeTestLexer(tt.in)
			tok, err := lx.Next()
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if tok.Kind != token.Invalid {
				t.Fatalf("token kind = %v, want Invalid", tok.Kind)
			}
			var lexErr *lexer.Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("error %T is not *lexer.Error", err)
			}
			if lexErr.Code != tt.code {
				t.Fatalf("code = %v, want %v", lexErr.Code.ID(), tt.code.ID())
			}
			if got := string(file.Content[lexErr.Span.Start:lexErr.Span.End]); got != tt.span {
				t.Fatalf("span covers %q, want %q", got, tt.span)
			}
			if bag.Len() != 1 || bag.Items()[0].Code != tt.code {
				t.Fatalf("reporter got %+v", bag.Items())
			}
			if next, err := lx.Next(); err != nil || next.Kind != token.EOF {
				t.Fatalf("after error: %v, %v; want EOF", next, err)
			}
		})
	}
}

func TestContinueAfterError(t *testing.T) {
	lx, _, bag, _ := makeTestLexer(`5x foo x"bad" "ok" @ ;`)
	var kinds []string
	var errs int
	for tok, err := range lx.All() {
		if err != nil {
			errs++
		}
		kinds = append(kinds, tok.String())
	}
	want := []string{"Invalid", `Ident("foo")`, "Invalid", `StringLit("ok")`, "Invalid", "Semicolon", "EOF"}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("got %v, want %v", kinds, want)
		}
	}
	if errs != 3 || bag.Len() != 3 {
		t.Fatalf("errors = %d, diagnostics = %d", errs, bag.Len())
	}
}

func TestNoReporter(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.nt", []byte("@")))
	lx := lexer.New(file, session.New(), lexer.Options{})
	if _, err := lx.Next(); !errors.Is(err, lexer.ErrUnrecognizedCharacter) {
		t.Fatalf("err = %v", err)
	}
}
