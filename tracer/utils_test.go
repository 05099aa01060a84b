package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func newTestClient(t *testing.T) *TracerClient {
	t.Helper()
	client, err := NewClient(Config{ServiceName: "test", AppEnv: "test", EnableExport: false})
	require.NoError(t, err)
	return client
}

func TestTracer_ReturnsUsableTracer(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	tr := client.Tracer("test-tracer", "1.0.0")
	require.NotNil(t, tr)

	ctx, span := tr.Start(context.Background(), "test-op")
	defer span.End()

	assert.True(t, trace.SpanFromContext(ctx).IsRecording())
}

func TestTracer_EmptyVersion(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	tr := client.Tracer("test-tracer", "")
	require.NotNil(t, tr)

	_, span := tr.Start(context.Background(), "test-op")
	assert.NotPanics(t, func() { span.End() })
}

func TestTracer_SameIdentitySameTracer(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	first := client.Tracer("shared", "2.0.0")
	second := client.Tracer("shared", "2.0.0")

	assert.Equal(t, first, second)
}

func TestProvider_NotNil(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	assert.NotNil(t, client.Provider())
}

func TestProvider_ChildInheritsParent(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)
	tr := client.Tracer("hierarchy", "")

	parentCtx, parentSpan := tr.Start(context.Background(), "parent")
	defer parentSpan.End()

	childCtx, childSpan := tr.Start(parentCtx, "child")
	defer childSpan.End()

	parentOT := trace.SpanFromContext(parentCtx)
	childOT := trace.SpanFromContext(childCtx)

	assert.Equal(t, parentOT.SpanContext().TraceID(), childOT.SpanContext().TraceID())
}
