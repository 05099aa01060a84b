package tracer

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Tracer implements the Provider interface by resolving a tracer for
// the given name and version from the underlying SDK provider.
//
// The name identifies the instrumentation scope - typically the
// tracer identity registered for an instrumented target. The version,
// when non-empty, is reported as the scope's instrumentation version.
// Repeated calls with the same name and version return the same
// tracer.
//
// Example:
//
//	t := tracerClient.Tracer("user-service-tracer", "1.0.0")
//	ctx, span := t.Start(ctx, "UserService.GetUser")
//	defer span.End()
func (t *TracerClient) Tracer(name, version string) trace.Tracer {
	if version == "" {
		return t.provider.Tracer(name)
	}
	return t.provider.Tracer(name, trace.WithInstrumentationVersion(version))
}

// Provider exposes the underlying trace.TracerProvider for consumers
// that take the standard OpenTelemetry interface, such as the
// instrumentation engine.
func (t *TracerClient) Provider() trace.TracerProvider {
	return t.provider
}

// Shutdown flushes pending spans and releases provider resources.
// After Shutdown returns, tracers resolved from this client stop
// recording. It is called automatically by the FX lifecycle hook;
// call it directly when not using FX.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
