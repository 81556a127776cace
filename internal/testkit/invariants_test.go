package testkit

import (
	"strings"
	"testing"

	"newt/internal/ast"
	"newt/internal/parser"
	"newt/internal/session"
	"newt/internal/source"
)

func parse(t *testing.T, src string) (*ast.File, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("t.nt", []byte(src)))
	tree, _ := parser.ParseFile(sf, session.New(), parser.Options{})
	return tree, sf
}

func TestCheckSpanInvariantsAcceptsParserOutput(t *testing.T) {
	inputs := []string{
		"",
		"   \n",
		"extern func puts() -> Int32;\nfunc main() -> Int32 { 0 }\n",
		"func a() -> Int8 { 1 } oops func b() -> CString { c\"x\" }",
		"func broken( func ok() -> Int32 { ok }",
	}
	for _, in := range inputs {
		tree, sf := parse(t, in)
		if err := CheckSpanInvariants(tree, sf); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestCheckSpanInvariantsRejects(t *testing.T) {
	tree, sf := parse(t, "func a() -> Int8 { 1 }\nfunc b() -> Int8 { 2 }\n")

	swapped := *tree
	swapped.Items = []*ast.Func{tree.Items[1], tree.Items[0]}
	if err := CheckSpanInvariants(&swapped, sf); err == nil || !strings.Contains(err.Error(), "overlaps") {
		t.Errorf("swapped items: %v", err)
	}

	shrunk := *tree
	shrunk.Span.End = tree.Items[0].Span.End
	if err := CheckSpanInvariants(&shrunk, sf); err == nil || !strings.Contains(err.Error(), "outside file span") {
		t.Errorf("short file span: %v", err)
	}

	fn := *tree.Items[0]
	fn.Extern = true
	bodyless := *tree
	bodyless.Items = []*ast.Func{&fn}
	if err := CheckSpanInvariants(&bodyless, sf); err == nil {
		t.Error("extern with body accepted")
	}

	if err := CheckSpanInvariants(nil, sf); err == nil {
		t.Error("nil tree accepted")
	}
}
