// Package logger provides structured logging with trace correlation.
//
// It wraps Uber's Zap logger with a simplified API and optional
// tracing integration: when tracing is enabled, the context-aware
// logging methods extract the active span from the context and attach
// trace_id and span_id fields to the entry, so logs written inside an
// instrumented invocation correlate with its span.
//
// # Basic Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		ServiceName:   "user-service",
//		EnableTracing: true,
//	})
//
//	log.Info("application started", nil, map[string]interface{}{
//		"port": 8080,
//	})
//
//	// Inside an instrumented function, ctx carries the active span:
//	log.InfoWithContext(ctx, "user loaded", nil, map[string]interface{}{
//		"user_id": id,
//	})
//
// The underlying *zap.Logger is exposed as the Zap field for code
// that needs Zap directly; the instrument package's WithLogger option
// takes it straight.
package logger
