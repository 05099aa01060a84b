// Package instrument implements the span-wrapping engine.
//
// The engine takes an ordinary function and returns an instrumented
// one that, on every call, resolves the tracer identity and attribute
// tags registered for the owning target, starts a span, copies tagged
// call arguments into span attributes, runs the original function
// with the active span as an explicit parameter, and finalizes the
// span according to a per-method policy. It is the Go rendering of
// decorator-style instrumentation: what an annotation would do at
// class-definition time is done here by an explicit wrapping call at
// construction time.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Instrumentor interface: Defines the wrapping contract
//   - InstrumentorClient struct: Concrete implementation
//   - Constructor returns *InstrumentorClient (concrete type)
//   - FX module provides both the concrete type and the interface
//
// Metadata (tracer identities, attribute tags) lives in the registry
// package and is written during startup; the wrapper only reads it.
// The tracing backend is reached through a trace.TracerProvider, so
// any OpenTelemetry-compatible provider works, including the test
// SDK's recording provider.
//
// # Wrapping
//
// Two shapes are supported. Synchronous functions return their value
// or error directly:
//
//	getUser := instr.WrapFunc("UserService", "GetUser",
//	    func(ctx context.Context, span trace.Span, args ...any) (any, error) {
//	        id := args[0].(string)
//	        span.SetAttributes(attribute.Bool("cache.hit", false))
//	        return svc.load(ctx, id)
//	    },
//	)
//
//	user, err := getUser(ctx, "usr_123")
//
// Asynchronous functions return a *Future; the wrapper finalizes the
// span when the future settles and the returned future settles with
// the same outcome, errors included:
//
//	charge := instr.WrapAsyncFunc("PaymentProcessor", "Charge",
//	    func(ctx context.Context, span trace.Span, args ...any) *instrument.Future {
//	        return instrument.Go(func() (any, error) {
//	            return svc.charge(ctx, args[0].(Order))
//	        })
//	    },
//	    instrument.WithSpanName("payment.charge"),
//	)
//
//	result, err := charge(ctx, order).Await(ctx)
//
// The original function receives the active span as a typed
// parameter, so bodies that want to attach extra attributes or events
// do so directly. The same span is also carried by the context passed
// to the function, keeping child spans parented correctly.
//
// # Policy
//
// Each wrapped method carries an immutable policy resolved once at
// wrap time from defaults plus functional options: whether exceptions
// are recorded, whether failure sets ERROR status, whether success
// sets OK status, whether the return value is recorded as an
// attribute, and overrides for the tracer and span names. See
// DefaultSpanOptions for the defaults.
//
// Failures always propagate: a synchronous error is returned
// unchanged, an asynchronous error fails the returned future, and a
// panic in the original function ends the span and re-panics.
package instrument
