package instrument

import (
	"context"
	"sync"
)

// Future is a settle-once container for an asynchronous outcome.
// It is the awaitable produced and consumed by WrapAsyncFunc.
//
// A Future settles at most once; later Complete calls are no-ops.
// All methods are safe for concurrent use.
type Future struct {
	once  sync.Once
	done  chan struct{}
	value any
	err   error
}

// NewFuture creates an unsettled future. Settle it with Complete.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// CompletedFuture returns a future already settled with value.
func CompletedFuture(value any) *Future {
	f := NewFuture()
	f.Complete(value, nil)
	return f
}

// FailedFuture returns a future already settled with err.
func FailedFuture(err error) *Future {
	f := NewFuture()
	f.Complete(nil, err)
	return f
}

// Go runs fn in a new goroutine and returns a future that settles
// with its outcome. It is a convenience for writing AsyncFunc bodies.
func Go(fn func() (any, error)) *Future {
	f := NewFuture()
	go func() {
		f.Complete(fn())
	}()
	return f
}

// Complete settles the future. Only the first call has any effect.
func (f *Future) Complete(value any, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Done returns a channel closed when the future settles.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx is done, whichever
// comes first, and returns the settled outcome. A ctx expiry returns
// ctx.Err() and abandons the wait; it does not cancel the underlying
// work, which settles the future regardless.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
