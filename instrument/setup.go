package instrument

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/florentulve/opentelemetry-decorator/observability"
	"github.com/florentulve/opentelemetry-decorator/registry"
)

// InstrumentorClient wraps function bodies in tracing spans. It reads
// instrumentation metadata from a registry and obtains tracers from a
// trace.TracerProvider.
//
// InstrumentorClient is safe for concurrent use: wrapping should
// happen during startup, and the wrapped functions it returns carry
// no shared mutable state beyond the read-only registry and options.
// It implements the Instrumentor interface.
type InstrumentorClient struct {
	provider trace.TracerProvider
	registry *registry.Registry
	logger   *zap.Logger
	observer observability.Observer
}

// NewInstrumentor creates an instrumentor backed by the given tracer
// provider and metadata registry.
//
// Parameters:
//   - provider: Source of tracers; nil falls back to the global
//     OpenTelemetry provider
//   - reg: Metadata registry; nil falls back to registry.Default
//   - opts: Optional logger and observer configuration
//
// Returns:
//   - *InstrumentorClient: Ready to wrap functions
//
// Example:
//
//	instr := instrument.NewInstrumentor(tracerClient.Provider(), reg,
//	    instrument.WithLogger(log.Zap),
//	)
//
//	getUser := instr.WrapFunc("UserService", "GetUser", getUserBody)
func NewInstrumentor(provider trace.TracerProvider, reg *registry.Registry, opts ...InstrumentorOption) *InstrumentorClient {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	if reg == nil {
		reg = registry.Default
	}

	client := &InstrumentorClient{
		provider: provider,
		registry: reg,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}
