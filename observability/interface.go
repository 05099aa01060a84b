package observability

import "time"

// Observer is notified after each instrumented invocation completes.
// It allows external code to observe wrapped calls without coupling
// the span wrapper to a specific metrics or auditing implementation.
//
// This interface is optional - the instrumentor works without an
// observer. Implementations must be safe for concurrent use, since
// concurrent invocations of wrapped methods notify the observer
// concurrently.
type Observer interface {
	// ObserveInvocation is called once per wrapped invocation, after
	// the invocation's span has ended.
	ObserveInvocation(inv InvocationContext)
}

// InvocationContext summarizes one completed instrumented invocation.
type InvocationContext struct {
	// Target is the name of the instrumented type the method belongs
	// to, as registered with the metadata registry.
	// Examples: "UserService", "PaymentProcessor"
	Target string

	// Method is the name of the wrapped method.
	// Examples: "GetUser", "Charge"
	Method string

	// SpanName is the effective span name used for the invocation,
	// after per-method overrides were applied.
	SpanName string

	// TracerName is the effective tracer name resolved for the
	// invocation.
	TracerName string

	// Duration is how long the invocation took, measured from just
	// before the original function ran until its outcome settled.
	// For asynchronous invocations it therefore spans until the
	// returned future settled, not until the wrapper returned.
	Duration time.Duration

	// Err is the error the invocation settled with, nil on success.
	// Configuration failures (for example a missing tracer identity)
	// are reported here as well.
	Err error
}
