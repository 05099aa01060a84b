package observability

// NoOpObserver is a no-op implementation of Observer.
// It does nothing when ObserveInvocation is called.
// This can be useful for testing or as a default value.
type NoOpObserver struct{}

// ObserveInvocation does nothing (no-op).
func (n *NoOpObserver) ObserveInvocation(inv InvocationContext) {
	// No-op
}

// NewNoOpObserver creates a new NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}
