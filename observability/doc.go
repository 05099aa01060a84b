// Package observability defines the optional observer hook notified
// after every instrumented invocation.
//
// The span wrapper in the instrument package records everything the
// tracing backend needs on the span itself. The Observer interface
// exists for cross-cutting concerns that live outside the trace: call
// counters, duration histograms, error-rate alerting, audit logs. The
// instrumentor notifies the observer once per invocation, after the
// span has ended, with a structured summary of what happened.
//
// The hook is optional. An instrumentor without an observer behaves
// identically; a NoOpObserver is provided as an explicit default for
// tests and wiring.
//
// # Usage
//
//	type countingObserver struct{ calls, failures int }
//
//	func (c *countingObserver) ObserveInvocation(inv observability.InvocationContext) {
//	    c.calls++
//	    if inv.Err != nil {
//	        c.failures++
//	    }
//	}
//
//	instr := instrument.NewInstrumentor(provider, reg,
//	    instrument.WithObserver(&countingObserver{}),
//	)
package observability
