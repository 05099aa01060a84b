package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedClient builds a LoggerClient over an in-memory core so
// tests can inspect emitted entries.
func newObservedClient(t *testing.T, tracingEnabled bool) (*LoggerClient, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return &LoggerClient{
		Zap:            zap.New(core),
		tracingEnabled: tracingEnabled,
	}, logs
}

func TestNewLoggerClient_Defaults(t *testing.T) {
	t.Parallel()
	client := NewLoggerClient(Config{Level: Info, ServiceName: "test-service"})

	require.NotNil(t, client)
	assert.NotNil(t, client.Zap)
	assert.False(t, client.tracingEnabled)
}

func TestNewLoggerClient_AllLevels(t *testing.T) {
	t.Parallel()
	for _, level := range []Level{Debug, Info, Warning, Error} {
		client := NewLoggerClient(Config{Level: level, ServiceName: "test-service"})
		assert.NotNil(t, client)
	}
}

func TestInfo_EmitsFields(t *testing.T) {
	t.Parallel()
	client, logs := newObservedClient(t, false)

	client.Info("user logged in", nil, map[string]interface{}{"user_id": 42})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "user logged in", entries[0].Message)
	assert.Equal(t, int64(42), entries[0].ContextMap()["user_id"])
}

func TestError_IncludesError(t *testing.T) {
	t.Parallel()
	client, logs := newObservedClient(t, false)

	client.Error("load failed", errors.New("not found"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "not found", entries[0].ContextMap()["error"])
}

func TestWithContext_NoSpan_NoTraceFields(t *testing.T) {
	t.Parallel()
	client, logs := newObservedClient(t, true)

	client.InfoWithContext(context.Background(), "no span here", nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "trace_id")
}

func TestWithContext_ActiveSpan_AddsTraceFields(t *testing.T) {
	t.Parallel()
	client, logs := newObservedClient(t, true)

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	ctx, span := tp.Tracer("logger-test").Start(context.Background(), "op")
	defer span.End()

	client.InfoWithContext(ctx, "inside span", nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
}

func TestWithContext_TracingDisabled_NoTraceFields(t *testing.T) {
	t.Parallel()
	client, logs := newObservedClient(t, false)

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	ctx, span := tp.Tracer("logger-test").Start(context.Background(), "op")
	defer span.End()

	client.InfoWithContext(ctx, "tracing off", nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "trace_id")
}

func TestConvertToZapFields_LaterMapsOverride(t *testing.T) {
	t.Parallel()
	client, logs := newObservedClient(t, false)

	client.Info("override", nil,
		map[string]interface{}{"key": "first"},
		map[string]interface{}{"key": "second"},
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[0].ContextMap()["key"])
}

func TestFXModule_ProvidesLogger(t *testing.T) {
	t.Parallel()
	var client *LoggerClient
	var iface Logger
	var raw *zap.Logger

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config {
			return Config{Level: Info, ServiceName: "fx-test"}
		}),
		fx.Populate(&client, &iface, &raw),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, client)
	assert.NotNil(t, iface)
	assert.NotNil(t, raw)
}
