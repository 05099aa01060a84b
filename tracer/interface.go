package tracer

import (
	"go.opentelemetry.io/otel/trace"
)

// Provider resolves tracers by name and version. It is the contract
// the instrumentation engine depends on to obtain the tracer for a
// target type's identity.
//
// This interface is implemented by the concrete *TracerClient type.
type Provider interface {
	// Tracer returns the tracer identified by name and version.
	// An empty version is valid and omits the instrumentation
	// version from the tracer's scope.
	Tracer(name, version string) trace.Tracer
}
