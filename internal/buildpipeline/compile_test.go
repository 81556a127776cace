package buildpipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"newt/internal/driver"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.nt")
	write(t, src, "func main() -> Int32 { 0 }\n")

	sink := &RecordingSink{}
	res, err := Compile(context.Background(), &CompileRequest{TargetPath: src, Progress: sink})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if res.HasErrors() || len(res.Units) != 1 {
		t.Fatalf("units = %+v", res.Units)
	}
	out := filepath.Join(dir, "hello.ll")
	if res.Units[0].Output != out {
		t.Fatalf("output = %q, want %q", res.Units[0].Output, out)
	}
	ir, err := os.ReadFile(out)
	if err != nil || !strings.Contains(string(ir), "define i32 @main()") {
		t.Fatalf("ir = %q, err = %v", ir, err)
	}

	events := sink.Events()
	if events[0].Status != StatusQueued {
		t.Fatalf("first event = %+v", events[0])
	}
	last := events[len(events)-1]
	if last.Stage != StageWrite || last.Status != StatusDone {
		t.Fatalf("last event = %+v", last)
	}
	if !res.Timings.Has(StageParse) || !res.Timings.Has(StageEmit) {
		t.Fatalf("timings missing stages")
	}
}

func TestCompileDirWithErrors(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "ok.nt"), "func a() -> Int8 { 1 }")
	write(t, filepath.Join(dir, "bad.nt"), "func b() -> Nope { 1 }")

	sink := &RecordingSink{}
	res, err := Compile(context.Background(), &CompileRequest{TargetPath: dir, Progress: sink, Jobs: 1})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !res.HasErrors() {
		t.Fatalf("expected errors")
	}
	// bad.nt < ok.nt
	if res.Units[0].Output != "" || res.Units[1].Output == "" {
		t.Fatalf("outputs = %q, %q", res.Units[0].Output, res.Units[1].Output)
	}
	var sawError bool
	for _, ev := range sink.Events() {
		if ev.Status == StatusError && strings.HasSuffix(ev.File, "bad.nt") {
			sawError = true
		}
	}
	if !sawError {
		t.Fatalf("no error event for bad.nt")
	}
}

func TestCompileRejectsOutputForDir(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.nt"), "func a() -> Int8 { 1 }")
	write(t, filepath.Join(dir, "b.nt"), "func b() -> Int8 { 1 }")
	if _, err := Compile(context.Background(), &CompileRequest{TargetPath: dir, OutputPath: "x.ll"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestExpandTargetEmptyDir(t *testing.T) {
	if _, err := ExpandTarget(t.TempDir()); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}

func TestOutputPathFor(t *testing.T) {
	if got := OutputPathFor(filepath.Join("src", "hello.nt")); got != filepath.Join("src", "hello.ll") {
		t.Fatalf("OutputPathFor = %q", got)
	}
}

func TestObserveMarksFinalStageDone(t *testing.T) {
	sink := &RecordingSink{}
	obs := Observe(sink, StageLex)
	obs(driver.PhaseEvent{Name: driver.PhaseLex, Path: "a.nt", Status: driver.PhaseStart})
	obs(driver.PhaseEvent{Name: driver.PhaseLex, Path: "a.nt", Status: driver.PhaseEnd})
	events := sink.Events()
	if len(events) != 2 || events[0].Status != StatusWorking || events[1].Status != StatusDone {
		t.Fatalf("events = %+v", events)
	}
}
