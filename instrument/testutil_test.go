package instrument

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/florentulve/opentelemetry-decorator/registry"
)

// harness bundles an instrumentor with a recording tracer provider so
// tests can assert on the spans each invocation produced.
type harness struct {
	instr    *InstrumentorClient
	registry *registry.Registry
	recorder *tracetest.SpanRecorder
}

func newHarness(t *testing.T, opts ...InstrumentorOption) *harness {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	reg := registry.NewRegistry()

	return &harness{
		instr:    NewInstrumentor(provider, reg, opts...),
		registry: reg,
		recorder: recorder,
	}
}

// registerIdentity registers a default tracer identity for target.
func (h *harness) registerIdentity(target string) {
	h.registry.SetTracerIdentity(target, registry.TracerIdentity{Name: target + "-tracer", Version: "1.0.0"})
}

// endedSpan returns the single ended span the harness recorded,
// failing the test if there are zero or several.
func (h *harness) endedSpan(t *testing.T) sdktrace.ReadOnlySpan {
	t.Helper()

	ended := h.recorder.Ended()
	require.Len(t, ended, 1)
	return ended[0]
}

func findAttribute(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func hasExceptionEvent(span sdktrace.ReadOnlySpan) bool {
	for _, event := range span.Events() {
		if event.Name == "exception" {
			return true
		}
	}
	return false
}
