package observ

import (
	"strings"
	"testing"
	"time"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerPhases(t *testing.T) {
	timer := NewTimer()
	timer.now = fakeClock(time.Millisecond)

	lex := timer.Begin("lex")
	parse := timer.Begin("parse")
	timer.End(parse, "3 items")
	timer.End(lex, "10 tokens")

	p, ok := timer.Phase("lex")
	if !ok || p.Dur != 3*time.Millisecond || p.Note != "10 tokens" {
		t.Fatalf("lex phase = %+v, %v", p, ok)
	}
	if p, _ := timer.Phase("parse"); p.Dur != time.Millisecond {
		t.Fatalf("parse took %v", p.Dur)
	}
	if _, ok := timer.Phase("emit"); ok {
		t.Fatal("unexpected emit phase")
	}
	if got := timer.Total(); got != 4*time.Millisecond {
		t.Fatalf("total = %v", got)
	}
}

func TestTimerEndIgnoresBadIndex(t *testing.T) {
	timer := NewTimer()
	timer.now = fakeClock(time.Millisecond)
	idx := timer.Begin("load")
	timer.End(idx, "first")
	timer.End(idx, "second")
	timer.End(-1, "")
	timer.End(5, "")

	p, _ := timer.Phase("load")
	if p.Note != "first" || p.Dur != time.Millisecond {
		t.Fatalf("phase = %+v", p)
	}
}

func TestTimerReportAndSummary(t *testing.T) {
	if r := NewTimer().Report(); r.Phases != nil || r.TotalMS != 0 {
		t.Fatalf("empty report = %+v", r)
	}

	timer := NewTimer()
	timer.now = fakeClock(2 * time.Millisecond)
	timer.End(timer.Begin("lex"), "5 tokens")
	timer.End(timer.Begin("parse"), "")

	r := timer.Report()
	if len(r.Phases) != 2 || r.TotalMS != 4 || r.Phases[0].DurationMS != 2 {
		t.Fatalf("report = %+v", r)
	}
	sum := timer.Summary()
	for _, want := range []string{"timings:\n", "lex", "2.00 ms  // 5 tokens", "total", "4.00 ms"} {
		if !strings.Contains(sum, want) {
			t.Errorf("summary missing %q:\n%s", want, sum)
		}
	}
}
