// Package tracer sets up the OpenTelemetry tracer provider that the
// instrumentation engine obtains tracers from.
//
// The span wrapper in the instrument package resolves a tracer by
// name and version for every instrumented target. This package owns
// the provider those tracers come from: it configures the
// OpenTelemetry SDK with service resource attributes, optionally
// wires an OTLP HTTP exporter, registers the provider globally, and
// ties shutdown (with trace flushing) into the FX lifecycle.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Provider interface: the name/version tracer resolution contract
//   - TracerClient struct: Concrete implementation over the SDK provider
//   - Constructor returns *TracerClient (concrete type)
//   - FX module provides *TracerClient, the Provider interface, and
//     the raw trace.TracerProvider consumed by the instrument module
//
// # Basic Usage
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "user-service",
//		AppEnv:       "production",
//		EnableExport: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer tracerClient.Shutdown(context.Background())
//
//	instr := instrument.NewInstrumentor(tracerClient.Provider(), reg)
//
// # FX Usage
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "user-service", AppEnv: "production"}
//	    }),
//	    // registry.FXModule, instrument.FXModule, ...
//	)
package tracer
