package instrument

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/florentulve/opentelemetry-decorator/observability"
)

// binding is the per-method state resolved once at wrap time and
// shared read-only by every invocation of the wrapped function.
type binding struct {
	target   string
	method   string
	opts     SpanOptions
	spanName string
}

func (c *InstrumentorClient) newBinding(target, method string, opts ...SpanOption) binding {
	resolved := DefaultSpanOptions()
	for _, opt := range opts {
		opt(&resolved)
	}

	spanName := resolved.SpanName
	if spanName == "" {
		spanName = defaultSpanName(target, method)
	}

	return binding{
		target:   target,
		method:   method,
		opts:     resolved,
		spanName: spanName,
	}
}

// WrapFunc returns an instrumented form of fn. On every call the
// returned function resolves the target's tracer identity and the
// method's attribute tags from the registry, starts a span named
// after the method (or the WithSpanName override), records tagged
// call arguments as "parameter.<name>" attributes, runs fn with the
// active span, and finalizes the span according to the method's
// policy.
//
// Failure behavior: fn's error is returned to the caller unchanged,
// after the span was recorded/statused per policy and ended. If no
// tracer name can be resolved for the target, the call fails with
// ErrNoTracerIdentity before fn runs. If fn panics, the span is
// finalized as a failure and the panic is re-raised.
func (c *InstrumentorClient) WrapFunc(target, method string, fn Func, opts ...SpanOption) WrappedFunc {
	b := c.newBinding(target, method, opts...)

	return func(ctx context.Context, args ...any) (any, error) {
		spanCtx, span, tracerName, err := c.beginInvocation(ctx, b, args)
		if err != nil {
			c.notifyObserver(b, tracerName, 0, err)
			return nil, err
		}

		start := time.Now()
		value, err := c.invoke(spanCtx, span, b, fn, args)
		c.finalizeSpan(span, b, value, err)
		c.notifyObserver(b, tracerName, time.Since(start), err)

		return value, err
	}
}

// beginInvocation performs the invocation-time half of the wrapping
// algorithm that is shared by the sync and async paths: tracer
// resolution, span start, and tagged-parameter recording.
func (c *InstrumentorClient) beginInvocation(ctx context.Context, b binding, args []any) (context.Context, trace.Span, string, error) {
	identity, registered := c.registry.LookupTracerIdentity(b.target)
	if !registered {
		c.logger.Debug("no tracer identity registered for target",
			zap.String("target", b.target),
			zap.String("method", b.method),
		)
	}

	tracerName := b.opts.TracerName
	if tracerName == "" {
		tracerName = identity.Name
	}
	if tracerName == "" {
		err := fmt.Errorf("%w: target %q", ErrNoTracerIdentity, b.target)
		c.logger.Error("cannot resolve tracer for wrapped method",
			zap.String("target", b.target),
			zap.String("method", b.method),
			zap.Error(err),
		)
		return ctx, nil, "", err
	}

	tracer := c.provider.Tracer(tracerName, trace.WithInstrumentationVersion(identity.Version))
	spanCtx, span := tracer.Start(ctx, b.spanName)

	// Tag order is registration order; tags whose index is out of
	// range for this call are skipped.
	for _, tag := range c.registry.AttributeTags(b.target, b.method) {
		if tag.ParameterIndex >= len(args) {
			continue
		}
		span.SetAttributes(attributeValue(ParameterAttributePrefix+tag.AttributeName, args[tag.ParameterIndex]))
	}

	return spanCtx, span, tracerName, nil
}

// invoke runs fn with a panic guard. A panic finalizes the span as a
// failure and re-raises, so no exit path leaves the span open.
func (c *InstrumentorClient) invoke(ctx context.Context, span trace.Span, b binding, fn Func, args []any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.finalizeSpan(span, b, nil, panicError(r))
			panic(r)
		}
	}()

	return fn(ctx, span, args...)
}

// finalizeSpan applies the method's policy to the settled outcome and
// ends the span. Every invocation reaches this exactly once.
func (c *InstrumentorClient) finalizeSpan(span trace.Span, b binding, value any, err error, recordOpts ...trace.EventOption) {
	if err != nil {
		if b.opts.RecordException {
			span.RecordError(err, recordOpts...)
		}
		if b.opts.SetErrorStatusOnException {
			span.SetStatus(codes.Error, errorStatusMessage)
		}
	} else {
		if b.opts.SetOKStatusOnSuccess {
			span.SetStatus(codes.Ok, "")
		}
		if b.opts.RecordResult {
			span.SetAttributes(attributeValue(ResultAttributeKey, value))
		}
	}

	span.End()
}

func (c *InstrumentorClient) notifyObserver(b binding, tracerName string, duration time.Duration, err error) {
	if c.observer == nil {
		return
	}

	c.observer.ObserveInvocation(observability.InvocationContext{
		Target:     b.target,
		Method:     b.method,
		SpanName:   b.spanName,
		TracerName: tracerName,
		Duration:   duration,
		Err:        err,
	})
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
