package instrument

import (
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/florentulve/opentelemetry-decorator/observability"
	"github.com/florentulve/opentelemetry-decorator/registry"
)

// FXModule provides a Uber FX module that wires the instrumentor into
// the dependency injection graph.
//
// The module provides:
// 1. *InstrumentorClient (concrete type) for direct use
// 2. Instrumentor interface for dependency injection
//
// It requires a trace.TracerProvider and a *registry.Registry in the
// graph (see the tracer and registry packages); a *zap.Logger and an
// observability.Observer are picked up when present but are optional.
//
// Usage:
//
//	app := fx.New(
//	    registry.FXModule,
//	    tracer.FXModule,
//	    instrument.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("instrument",
	fx.Provide(
		newFXInstrumentor, // Provides *InstrumentorClient
		// Also provide the Instrumentor interface
		fx.Annotate(
			func(c *InstrumentorClient) Instrumentor { return c },
			fx.As(new(Instrumentor)),
		),
	),
)

// fxParams collects the instrumentor's dependencies from the graph.
// Logger and Observer are optional so applications without them can
// still use the module.
type fxParams struct {
	fx.In

	Provider trace.TracerProvider
	Registry *registry.Registry
	Logger   *zap.Logger            `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

func newFXInstrumentor(p fxParams) *InstrumentorClient {
	var opts []InstrumentorOption
	if p.Logger != nil {
		opts = append(opts, WithLogger(p.Logger))
	}
	if p.Observer != nil {
		opts = append(opts, WithObserver(p.Observer))
	}

	return NewInstrumentor(p.Provider, p.Registry, opts...)
}
