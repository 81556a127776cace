package fuzztests

import (
	"testing"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"newt/internal/canon"
	"newt/internal/diag"
	"newt/internal/lexer"
	"newt/internal/session"
	"newt/internal/source"
	"newt/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.nt", input))
		size := uint32(len(file.Content)) // #nosec G115 -- clamped above

		bag := diag.NewBag(64)
		lx := lexer.New(file, session.New(), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

		var prevEnd uint32
		errs := 0
		// каждый не-EOF токен съедает хотя бы один байт
		for calls := 0; ; calls++ {
			if calls > len(file.Content)+1 {
				t.Fatalf("lexer does not make progress on %q", input)
			}
			tok, err := lx.Next()
			if err != nil {
				errs++
			}
			if tok.Span.Start > tok.Span.End || tok.Span.End > size {
				t.Fatalf("span %v out of bounds (size %d)", tok.Span, size)
			}
			if err == nil && tok.Span.Start < prevEnd {
				t.Fatalf("token %v at %v overlaps previous end %d", tok, tok.Span, prevEnd)
			}
			if err == nil {
				prevEnd = tok.Span.End
			}
			if tok.Kind == token.Ident && !norm.NFC.IsNormalString(tok.Text()) {
				t.Fatalf("identifier %q is not NFC", tok.Text())
			}
			if tok.Kind == token.EOF {
				break
			}
		}
		if got := bag.Len() + bag.Dropped(); got != errs {
			t.Fatalf("reported %d diagnostics for %d errors", got, errs)
		}
	})
}

func FuzzCanonicalText(f *testing.F) {
	f.Add("")
	f.Add("\u212B")
	f.Add("A\u030A")
	f.Add("e\u0327\u0301")
	f.Add("nul\x00")
	f.Add("\xff")
	f.Fuzz(func(t *testing.T, raw string) {
		txt, err := canon.New(raw)
		if err != nil {
			return
		}
		if !utf8.ValidString(txt.String()) || !norm.NFC.IsNormalString(txt.String()) {
			t.Fatalf("stored text %q is not valid NFC", txt.String())
		}
		cs := txt.CString()
		if len(cs) != txt.Len()+1 || cs[txt.Len()] != 0 {
			t.Fatalf("bad C string view %q", cs)
		}
		if canon.Key(raw) != txt.String() || !txt.EqualString(raw) {
			t.Fatalf("key/equality disagree for %q", raw)
		}
	})
}
