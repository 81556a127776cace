package lexer

import (
	"testing"

	"newt/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.nt", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte("a\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() || cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("expected EOF")
	}
}

func TestMarkResetSpan(t *testing.T) {
	cursor := NewCursor(createFile("[%x%]"))
	m := cursor.Mark()
	if !cursor.Eat2('[', '%') {
		t.Fatal("Eat2 must consume [%")
	}
	if cursor.Eat2('%', ']') {
		t.Fatal("Eat2 must not consume a mismatch")
	}
	if !cursor.Eat('x') || cursor.Eat('x') {
		t.Fatal("Eat")
	}
	if sp := cursor.SpanFrom(m); sp.Start != 0 || sp.End != 3 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Fatalf("Reset left Off = %d", cursor.Off)
	}
	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != '[' || b1 != '%' {
		t.Fatal("Peek2")
	}
	cursor.Off = cursor.Limit - 1
	if _, _, ok := cursor.Peek2(); ok {
		t.Fatal("Peek2 past end must fail")
	}
}

func TestClasses(t *testing.T) {
	starts := []rune{'a', 'Z', '_', 'я', '\u00C5', '\u4E2D', '\u01C5', '\u216B'}
	for _, r := range starts {
		if !isIdentStartRune(r) || !isIdentContinueRune(r) {
			t.Errorf("%q must start and continue identifiers", r)
		}
	}
	continues := []rune{'0', '9', '-', '\'', '\u0301', '\u0663', '\u203F'}
	for _, r := range continues {
		if isIdentStartRune(r) && r != '_' {
			t.Errorf("%q must not start identifiers", r)
		}
		if !isIdentContinueRune(r) {
			t.Errorf("%q must continue identifiers", r)
		}
	}
	for _, r := range []rune{' ', '"', '(', '>', '%', '[', '@', '\u20AC', '\u00A0'} {
		if isIdentContinueRune(r) {
			t.Errorf("%q must not be part of identifiers", r)
		}
	}
}
