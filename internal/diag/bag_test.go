package diag

import (
	"testing"

	"newt/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	r := BagReporter{Bag: b}
	for i := range 4 {
		ReportError(r, LexUnknownChar, source.Span{Start: uint32(i), End: uint32(i + 1)}, "x").Emit()
	}
	if b.Len() != 2 || b.Dropped() != 2 {
		t.Fatalf("Len=%d Dropped=%d", b.Len(), b.Dropped())
	}
	if !b.HasErrors() {
		t.Fatal("expected errors")
	}

	unbounded := NewBag(0)
	for range 100 {
		unbounded.Add(NewError(LexBadNumber, source.Span{}, "n"))
	}
	if unbounded.Len() != 100 {
		t.Fatalf("unbounded bag Len = %d", unbounded.Len())
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevWarning, SemaTypeMismatch, source.Span{File: 1, Start: 0}, "w"))
	b.Add(New(SevError, LexBadNumber, source.Span{File: 0, Start: 5}, "b"))
	b.Add(New(SevError, LexUnknownChar, source.Span{File: 0, Start: 1}, "a"))
	b.Add(New(SevWarning, LexUnknownChar, source.Span{File: 0, Start: 1}, "a2"))
	b.Sort()

	want := []string{"a", "a2", "b", "w"}
	for i, d := range b.Items() {
		if d.Message != want[i] {
			t.Fatalf("item %d = %q, want %q", i, d.Message, want[i])
		}
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: b})
	sp := source.Span{Start: 1, End: 2}
	r.Report(LexUnknownChar, SevError, sp, "dup", nil)
	r.Report(LexUnknownChar, SevError, sp, "dup", nil)
	r.Report(LexUnknownChar, SevError, sp, "other", nil)
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(0)
	rb := ReportError(BagReporter{Bag: b}, SynExpectSemicolon, source.Span{}, "missing ;").
		WithNote(source.Span{Start: 3}, "declaration here")
	rb.Emit()
	rb.Emit()
	if b.Len() != 1 {
		t.Fatalf("Len = %d", b.Len())
	}
	if got := b.Items()[0].Notes; len(got) != 1 || got[0].Msg != "declaration here" {
		t.Fatalf("notes = %+v", got)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		id   string
	}{
		{LexBadNumber, "LEX1004"},
		{SynExpectSemicolon, "SYN2003"},
		{SemaUnknownType, "SEM3001"},
		{IOLoadFileError, "IO4001"},
		{ProjManifestInvalid, "PRJ5001"},
		{GenUnsupportedBody, "GEN6001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.id)
		}
	}
	if Code(1999).Title() != "Unknown error" {
		t.Errorf("unmapped codes fall back to the unknown title")
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		sev     Severity
		label   string
		isError bool
	}{
		{SevInfo, "INFO", false},
		{SevWarning, "WARNING", false},
		{SevError, "ERROR", true},
		{Severity(7), "Severity(7)", true},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.label {
			t.Errorf("String() = %q, want %q", got, tt.label)
		}
		if got := tt.sev.IsError(); got != tt.isError {
			t.Errorf("%s.IsError() = %v", tt.label, got)
		}
	}

	b := NewBag(0)
	b.Add(New(SevWarning, SemaTypeMismatch, source.Span{}, "w"))
	if b.HasErrors() {
		t.Fatalf("warnings alone count as errors")
	}
	b.Add(New(SevError, SemaTypeMismatch, source.Span{}, "e"))
	if !b.HasErrors() {
		t.Fatalf("error not detected")
	}
}
