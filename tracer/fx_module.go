package tracer

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that configures the tracer
// provider for the application.
//
// The module provides:
// 1. *TracerClient (concrete type) for direct use
// 2. Provider interface for dependency injection
// 3. trace.TracerProvider for standard OpenTelemetry consumers,
//    including the instrument module
// 4. Shutdown hooks that flush traces on application stop
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "my-service", AppEnv: "production", EnableExport: true}
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient, // Provides *TracerClient
		// Also provide the Provider interface
		fx.Annotate(
			func(t *TracerClient) Provider { return t },
			fx.As(new(Provider)),
		),
		// And the standard OpenTelemetry provider type
		func(t *TracerClient) trace.TracerProvider { return t.Provider() },
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer
// provider with the FX lifecycle, so pending spans are flushed when
// the application terminates.
//
// This function is automatically invoked by FXModule and normally
// doesn't need to be called directly.
func RegisterTracerLifecycle(lc fx.Lifecycle, client *TracerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer provider...")
			return client.Shutdown(ctx)
		},
	})
}
