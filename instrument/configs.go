package instrument

// Attribute keys and status text used by the span wrapper.
const (
	// ParameterAttributePrefix prefixes every attribute recorded from
	// a tagged call argument, so a tag named "userID" produces the
	// attribute "parameter.userID".
	ParameterAttributePrefix = "parameter."

	// ResultAttributeKey is the attribute the return value is
	// recorded under when RecordResult is enabled.
	ResultAttributeKey = "result"

	// errorStatusMessage is the fixed status description set on
	// failed spans when SetErrorStatusOnException is enabled.
	errorStatusMessage = "Error"
)

// SpanOptions is the per-method wrapping policy. It is resolved
// exactly once per wrapped method - at wrap time, by applying
// functional options over DefaultSpanOptions - and is immutable for
// the lifetime of the wrapped function.
type SpanOptions struct {
	// TracerName overrides the tracer name from the target's
	// registered identity. Empty means use the identity's name.
	TracerName string

	// SpanName overrides the span name. Empty means use the default
	// "<Target>.<Method>".
	SpanName string

	// RecordException controls whether a failure is recorded as an
	// exception event on the span.
	//
	// Default: true
	RecordException bool

	// SetErrorStatusOnException controls whether a failure sets the
	// span status to ERROR.
	//
	// Default: true
	SetErrorStatusOnException bool

	// SetOKStatusOnSuccess controls whether success sets the span
	// status to OK. When false the status is left UNSET.
	//
	// Default: true
	SetOKStatusOnSuccess bool

	// RecordResult controls whether the return value is recorded as
	// the "result" span attribute on success.
	//
	// Default: false
	RecordResult bool
}

// DefaultSpanOptions returns the policy applied to wrapped methods
// that set no options: exceptions recorded, ERROR status on failure,
// OK status on success, result not recorded.
func DefaultSpanOptions() SpanOptions {
	return SpanOptions{
		RecordException:           true,
		SetErrorStatusOnException: true,
		SetOKStatusOnSuccess:      true,
		RecordResult:              false,
	}
}
