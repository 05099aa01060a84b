package logger

// Level controls which log entries are emitted.
type Level int

// Supported log levels, in increasing order of severity.
const (
	Debug Level = iota
	Info
	Warning
	Error
)

// Config defines the configuration for the logger.
type Config struct {
	// Level is the minimum severity emitted. Entries below it are
	// dropped.
	//
	// Default: Info
	Level Level

	// ServiceName identifies the service in every log entry, emitted
	// as the "service" field.
	ServiceName string

	// CallerSkip adjusts how many wrapper frames are skipped when
	// resolving the caller location. The default of 1 is correct for
	// direct use of this package; services that wrap it again should
	// raise it accordingly.
	CallerSkip int

	// EnableTracing enables trace correlation: the WithContext
	// logging methods attach trace_id and span_id fields extracted
	// from the active span in the context.
	EnableTracing bool
}
