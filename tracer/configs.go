package tracer

// Config defines the configuration for the OpenTelemetry tracer
// provider. It controls service identification, environment settings,
// and whether traces should be exported to an observability backend.
type Config struct {
	// ServiceName specifies the name of the service reported in the
	// resource attributes of every exported span. It should be a
	// descriptive, stable name that uniquely identifies the service.
	//
	// Example values: "user-service", "payment-processor"
	ServiceName string

	// AppEnv indicates the deployment environment where the service
	// is running. It is set as the "deployment.environment" and
	// "environment" resource attributes on all spans.
	//
	// Common values: "development", "staging", "production"
	AppEnv string

	// EnableExport controls whether traces are exported to an
	// observability backend. When true, an OTLP HTTP exporter sends
	// traces to the configured collector endpoint. When false, spans
	// are created and recorded but never leave the process, which is
	// usually what tests and local development want.
	EnableExport bool
}
