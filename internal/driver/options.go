package driver

import (
	"context"
	"time"

	"newt/internal/observ"
	"newt/internal/trace"
)

// SourceExt is the extension of newt source files.
const SourceExt = ".nt"

// Options configure every driver entry point.
type Options struct {
	MaxDiagnostics int // 0 = без лимита
	Jobs           int // TokenizeDir parallelism, 0 = GOMAXPROCS
	Observer       PhaseObserver
}

// phase ties one step to the timer, the tracer and the observer.
// timer may be nil when several goroutines share a step.
type phase struct {
	opts    *Options
	timer   *observ.Timer
	idx     int
	span    *trace.Span
	name    string
	path    string
	started time.Time
}

func beginPhase(ctx context.Context, opts *Options, timer *observ.Timer, scope trace.Scope, name, path string) (*phase, context.Context) {
	p := &phase{opts: opts, timer: timer, idx: -1, name: name, path: path, started: time.Now()}
	if timer != nil {
		p.idx = timer.Begin(name)
	}
	p.span, ctx = trace.StartSpan(ctx, scope, name)
	if path != "" {
		p.span.WithExtra("path", path)
	}
	if opts.Observer != nil {
		opts.Observer(PhaseEvent{Name: name, Path: path, Status: PhaseStart})
	}
	return p, ctx
}

func (p *phase) end(note string, err error) {
	if p.timer != nil {
		p.timer.End(p.idx, note)
	}
	detail := note
	if err != nil {
		detail = err.Error()
	}
	p.span.End(detail)
	if p.opts.Observer != nil {
		p.opts.Observer(PhaseEvent{
			Name: p.name, Path: p.path, Status: PhaseEnd,
			Elapsed: time.Since(p.started), Err: err,
		})
	}
}
