// Package testkit holds checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"newt/internal/ast"
	"newt/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) file.Span lies within the file content; it is empty only without items
// 2) item spans are non-empty, inside file.Span and in source order
// 3) name, result and body spans lie inside their item span
func CheckSpanInvariants(f *ast.File, sf *source.File) error {
	if f == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if f.Span.File != sf.ID || f.Source != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.Start > f.Span.End || f.Span.End > lenContent {
		return fmt.Errorf("file span %v beyond content of %d bytes", f.Span, lenContent)
	}
	if len(f.Items) > 0 && f.Span.Empty() {
		return fmt.Errorf("file span is empty but has %d items", len(f.Items))
	}

	var prevEnd uint32
	for i, fn := range f.Items {
		if fn == nil {
			return fmt.Errorf("nil item #%d", i)
		}
		sp := fn.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty item span: %v", sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("item span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if sp.Start < f.Span.Start || sp.End > f.Span.End {
			return fmt.Errorf("item span %v is outside file span %v", sp, f.Span)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("item #%d at %v overlaps the previous item", i, sp)
		}
		prevEnd = sp.End

		inner := []source.Span{fn.NameSpan, fn.Result.Span}
		if fn.Body != nil {
			inner = append(inner, fn.Body.Span)
		}
		for _, in := range inner {
			if in.Start < sp.Start || in.End > sp.End || in.Start > in.End {
				return fmt.Errorf("span %v of %q is outside item span %v", in, fn.NameText(), sp)
			}
		}
		if fn.Extern != (fn.Body == nil) {
			return fmt.Errorf("item %q: extern=%v but body present=%v", fn.NameText(), fn.Extern, fn.Body != nil)
		}
	}
	return nil
}
