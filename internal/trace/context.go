package trace

import "context"

// SpanContext identifies the innermost open span; StartSpan makes it the
// parent of the next span.
type SpanContext struct {
	SpanID uint64
	GID    uint64
}

// state is the single value trace keeps per context layer.
type state struct {
	tracer Tracer
	span   SpanContext
}

type stateKey struct{}

func stateOf(ctx context.Context) state {
	if ctx != nil {
		if st, ok := ctx.Value(stateKey{}).(state); ok {
			return st
		}
	}
	return state{tracer: Nop}
}

func withState(ctx context.Context, st state) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, stateKey{}, st)
}

// WithTracer attaches t to ctx and starts a new span tree: spans opened
// under the returned context have no parent. nil means Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return withState(ctx, state{tracer: t})
}

// FromContext returns the tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	return stateOf(ctx).tracer
}

// CurrentSpan returns the innermost span carried by ctx; zero at the root.
func CurrentSpan(ctx context.Context) SpanContext {
	return stateOf(ctx).span
}

// WithSpanContext keeps the tracer of ctx and replaces the current span.
func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	st := stateOf(ctx)
	st.span = sc
	return withState(ctx, st)
}
