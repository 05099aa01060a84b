package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// TracerClient owns the OpenTelemetry tracer provider used by the
// instrumentation engine. It configures the SDK provider with the
// service's resource attributes, optionally exports spans over OTLP
// HTTP, and resolves tracers by name and version.
//
// TracerClient is safe for concurrent use and implements the Provider
// interface.
type TracerClient struct {
	provider *sdktrace.TracerProvider
}

// NewClient creates and initializes a new TracerClient.
//
// Parameters:
//   - cfg: Service name, environment, and export settings
//
// Returns:
//   - *TracerClient: A configured client ready to resolve tracers
//
// If export is enabled, an OTLP HTTP exporter is attached as a
// batcher; exporter initialization errors are returned. The SDK
// provider is registered as the global OpenTelemetry provider, and
// W3C trace context propagation is configured globally, so code
// outside this module that uses the otel globals participates in the
// same traces.
//
// Example:
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "user-service",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewClient(cfg Config) (*TracerClient, error) {
	var options []sdktrace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	options = append(options, sdktrace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := sdktrace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &TracerClient{provider: tp}, nil
}
