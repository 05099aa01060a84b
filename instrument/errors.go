package instrument

import "errors"

// ErrNoTracerIdentity is returned (or fails the future) when a
// wrapped method is invoked and neither a per-method tracer name
// override nor a registered tracer identity yields a tracer name.
// The original function is not invoked in that case.
//
// Check for it with errors.Is:
//
//	if errors.Is(err, instrument.ErrNoTracerIdentity) {
//	    // registration for the target is missing
//	}
var ErrNoTracerIdentity = errors.New("no tracer identity registered and no tracer name override set")

// ErrResultType is returned by Typed-adapted functions when the
// wrapped function settles with a value of an unexpected dynamic type.
var ErrResultType = errors.New("wrapped function returned unexpected result type")
