package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"off", LevelOff, true},
		{"", LevelOff, true},
		{"phase", LevelPhase, true},
		{"DEBUG", LevelDebug, true},
		{"loud", LevelOff, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestLevelScopes(t *testing.T) {
	if LevelPhase.ShouldEmit(ScopeFile) {
		t.Errorf("phase level must not emit per-file events")
	}
	if !LevelDetail.ShouldEmit(ScopeFile) || LevelDetail.ShouldEmit(ScopeToken) {
		t.Errorf("detail level scopes wrong")
	}
	if LevelError.ShouldEmit(ScopePass) || !LevelError.ShouldRecord(ScopePass) {
		t.Errorf("error level must record passes without streaming them")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)

	driver, ctx := StartSpan(ctx, ScopeDriver, "tokenize")
	pass, _ := StartSpan(ctx, ScopePass, "lex")
	pass.WithExtra("tokens", "12").WithExtra("errors", "0").End("")
	// ScopeFile не проходит на уровне phase
	Point(ctx, ScopeFile, "file", "hello.nt")
	driver.End("ok")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "→ tokenize") || !strings.Contains(lines[1], "  → lex") {
		t.Errorf("unexpected begin lines:\n%s", out)
	}
	if !strings.HasSuffix(lines[2], "← lex {errors=0, tokens=12}") {
		t.Errorf("extras not sorted: %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "← tokenize (ok)") {
		t.Errorf("unexpected end line: %q", lines[3])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)
	span, ctx := StartSpan(ctx, ScopePass, "parse")
	Point(ctx, ScopeToken, "token", "Ident")
	span.End("")

	dec := json.NewDecoder(&buf)
	var kinds []string
	var parent uint64
	for dec.More() {
		var ev jsonEvent
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("decode: %v", err)
		}
		kinds = append(kinds, ev.Kind)
		if ev.Kind == "point" {
			parent = ev.ParentID
		}
	}
	if strings.Join(kinds, ",") != "begin,point,end" {
		t.Fatalf("kinds = %v", kinds)
	}
	if parent != span.ID() {
		t.Fatalf("point parent = %d, want %d", parent, span.ID())
	}
}

func TestRingTracerWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for i := range 5 {
		ring.Emit(&Event{Seq: uint64(i), Kind: KindPoint, Scope: ScopePass})
	}
	got := ring.Snapshot()
	if len(got) != 3 || got[0].Seq != 2 || got[2].Seq != 4 {
		t.Fatalf("snapshot = %+v", got)
	}
}

func TestNewConfig(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("off tracer: %v %v", tr, err)
	}
	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := tr.(*MultiTracer); !ok {
		t.Fatalf("ModeBoth built %T", tr)
	}
	if _, err := New(Config{Level: LevelPhase, Mode: 0}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestFromContextDefaultsToNop(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("expected Nop tracer")
	}
	span, _ := StartSpan(context.Background(), ScopeDriver, "x")
	if span.End("") != 0 {
		t.Fatalf("nop span reported a duration")
	}
}

func TestContextCarriesTracerAndSpan(t *testing.T) {
	ring := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	outer, ctx := StartSpan(ctx, ScopeDriver, "build")
	inner, innerCtx := StartSpan(ctx, ScopePass, "lex")
	if FromContext(innerCtx) != Tracer(ring) {
		t.Fatalf("span context lost the tracer")
	}
	if got := CurrentSpan(innerCtx).SpanID; got != inner.ID() {
		t.Fatalf("current span = %d, want %d", got, inner.ID())
	}
	inner.End("")
	outer.End("")

	evs := ring.Snapshot()
	if len(evs) != 4 || evs[1].ParentID != outer.ID() || evs[0].ParentID != 0 {
		t.Fatalf("events = %+v", evs)
	}

	// новый трейсер начинает новое дерево
	fresh := WithTracer(innerCtx, Nop)
	if CurrentSpan(fresh).SpanID != 0 || FromContext(fresh) != Nop {
		t.Fatalf("WithTracer kept the parent span")
	}
}

type failingTracer struct {
	nopTracer
	closed *int
}

func (f failingTracer) Close() error {
	*f.closed++
	return errors.New("close failed")
}

func TestMultiTracer(t *testing.T) {
	if m := NewMultiTracer(LevelPhase, nil, Nop); m.Enabled() {
		t.Fatalf("multi tracer without members is enabled")
	}

	closed := 0
	ring := NewRingTracer(4, LevelPhase)
	m := NewMultiTracer(LevelPhase, failingTracer{closed: &closed}, ring, failingTracer{closed: &closed})
	m.Emit(&Event{Seq: 1, Kind: KindPoint, Scope: ScopePass, Name: "lex"})
	if len(ring.Snapshot()) != 1 {
		t.Fatalf("event did not reach the ring")
	}
	err := m.Close()
	if err == nil || closed != 2 {
		t.Fatalf("Close = %v after %d closes, want joined error after 2", err, closed)
	}
	if strings.Count(err.Error(), "close failed") != 2 {
		t.Fatalf("errors not joined: %v", err)
	}
}
