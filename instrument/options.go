package instrument

import (
	"go.uber.org/zap"

	"github.com/florentulve/opentelemetry-decorator/observability"
)

// Option constructors for the functional options pattern.
// SpanOption values configure one wrapped method; InstrumentorOption
// values configure the instrumentor itself.

// SpanOption mutates the per-method SpanOptions at wrap time.
type SpanOption func(*SpanOptions)

// WithTracerName overrides the tracer name for this method,
// taking precedence over the target's registered identity.
//
// Example:
//
//	instr.WrapFunc("UserService", "GetUser", fn,
//	    instrument.WithTracerName("user-read-path"))
func WithTracerName(name string) SpanOption {
	return func(opts *SpanOptions) {
		opts.TracerName = name
	}
}

// WithSpanName overrides the span name for this method. Without it
// the span is named "<Target>.<Method>".
//
// Example:
//
//	instr.WrapAsyncFunc("PaymentProcessor", "Charge", fn,
//	    instrument.WithSpanName("payment.charge"))
func WithSpanName(name string) SpanOption {
	return func(opts *SpanOptions) {
		opts.SpanName = name
	}
}

// WithRecordException controls whether failures are recorded as
// exception events on the span. Enabled by default.
func WithRecordException(enabled bool) SpanOption {
	return func(opts *SpanOptions) {
		opts.RecordException = enabled
	}
}

// WithErrorStatusOnException controls whether failures set the span
// status to ERROR. Enabled by default. Disabling it leaves the status
// untouched on failure while still recording the exception event if
// WithRecordException is enabled.
func WithErrorStatusOnException(enabled bool) SpanOption {
	return func(opts *SpanOptions) {
		opts.SetErrorStatusOnException = enabled
	}
}

// WithOKStatusOnSuccess controls whether success sets the span status
// to OK. Enabled by default. Disabling it leaves the status UNSET on
// success.
func WithOKStatusOnSuccess(enabled bool) SpanOption {
	return func(opts *SpanOptions) {
		opts.SetOKStatusOnSuccess = enabled
	}
}

// WithRecordResult controls whether the return value is recorded as
// the "result" span attribute on success. Disabled by default, since
// results may be large or sensitive.
func WithRecordResult(enabled bool) SpanOption {
	return func(opts *SpanOptions) {
		opts.RecordResult = enabled
	}
}

// InstrumentorOption configures an InstrumentorClient at construction.
type InstrumentorOption func(*InstrumentorClient)

// WithLogger sets the logger used for the instrumentor's own
// diagnostics, such as configuration errors surfaced at invocation
// time. Without it diagnostics are discarded.
func WithLogger(logger *zap.Logger) InstrumentorOption {
	return func(c *InstrumentorClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver sets the observer notified after each instrumented
// invocation completes. Without it no notification happens.
func WithObserver(observer observability.Observer) InstrumentorOption {
	return func(c *InstrumentorClient) {
		c.observer = observer
	}
}
