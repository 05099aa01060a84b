package instrument

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Func is a synchronous function body eligible for wrapping. The span
// argument is the active span started by the wrapper for this
// invocation; args are the caller's positional arguments, in order.
// Attribute tags registered for the method index into args.
type Func func(ctx context.Context, span trace.Span, args ...any) (any, error)

// AsyncFunc is an asynchronous function body eligible for wrapping.
// Instead of returning its outcome directly it returns a *Future that
// settles with it later. Returning nil is treated as an immediate
// success with a nil value.
type AsyncFunc func(ctx context.Context, span trace.Span, args ...any) *Future

// WrappedFunc is the instrumented form of a Func. Each call starts
// its own span; concurrent calls are independent.
type WrappedFunc func(ctx context.Context, args ...any) (any, error)

// WrappedAsyncFunc is the instrumented form of an AsyncFunc. The
// returned future settles with the original outcome after the span
// has been finalized; failures fail the future rather than being
// swallowed.
type WrappedAsyncFunc func(ctx context.Context, args ...any) *Future

// Instrumentor wraps function bodies in tracing spans driven by
// registered metadata and per-method options.
//
// This interface is implemented by the concrete *InstrumentorClient type.
type Instrumentor interface {
	// WrapFunc returns an instrumented form of fn for the given
	// target type and method name. The per-method options are
	// resolved once, at wrap time.
	WrapFunc(target, method string, fn Func, opts ...SpanOption) WrappedFunc

	// WrapAsyncFunc is WrapFunc for asynchronous bodies.
	WrapAsyncFunc(target, method string, fn AsyncFunc, opts ...SpanOption) WrappedAsyncFunc
}
