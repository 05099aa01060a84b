package instrument

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// WrapAsyncFunc returns an instrumented form of an asynchronous fn.
// The wrapper starts the span and records tagged parameters exactly
// like WrapFunc, then runs fn and finalizes the span when the future
// fn returned settles. The future handed back to the caller settles
// afterwards, with the same value and error.
//
// Failure behavior: a failed inner future fails the returned future
// with the original error - the rejection is propagated, never
// swallowed. The exception event carries the timestamp at which the
// failure was observed. A panic inside fn itself (before it returns
// a future) finalizes the span and re-raises. If no tracer name can
// be resolved for the target, an already-failed future is returned
// and fn does not run.
func (c *InstrumentorClient) WrapAsyncFunc(target, method string, fn AsyncFunc, opts ...SpanOption) WrappedAsyncFunc {
	b := c.newBinding(target, method, opts...)

	return func(ctx context.Context, args ...any) *Future {
		spanCtx, span, tracerName, err := c.beginInvocation(ctx, b, args)
		if err != nil {
			c.notifyObserver(b, tracerName, 0, err)
			return FailedFuture(err)
		}

		start := time.Now()
		inner := c.invokeAsync(spanCtx, span, b, fn, args)
		if inner == nil {
			inner = CompletedFuture(nil)
		}

		out := NewFuture()
		go func() {
			value, err := inner.Await(context.Background())
			c.finalizeSpan(span, b, value, err, trace.WithTimestamp(time.Now()))
			c.notifyObserver(b, tracerName, time.Since(start), err)
			out.Complete(value, err)
		}()

		return out
	}
}

// invokeAsync runs fn with the same panic guard as the sync path.
func (c *InstrumentorClient) invokeAsync(ctx context.Context, span trace.Span, b binding, fn AsyncFunc, args []any) (future *Future) {
	defer func() {
		if r := recover(); r != nil {
			c.finalizeSpan(span, b, nil, panicError(r))
			panic(r)
		}
	}()

	return fn(ctx, span, args...)
}
