// Package trace records what the newt compiler is doing while it runs.
//
// Enable it from the command line:
//
//	newt tokenize --trace=- --trace-level=phase hello.nt
//
// # Tracers
//
//   - Nop: disabled tracing, zero cost
//   - StreamTracer: writes every event as it happens (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// A level admits scopes up to a granularity: LevelPhase shows driver
// commands and passes (load, lex, parse, build, emit), LevelDetail adds
// per-file work, LevelDebug shows everything.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "lex")
//	defer span.End("")
package trace
